package service

import (
	"context"
	"strings"

	"github.com/coincoast/memesboost-backend/internal/common/apperrors"
	"github.com/coincoast/memesboost-backend/internal/common/logger"
	"github.com/coincoast/memesboost-backend/internal/features/task/models"
	"github.com/coincoast/memesboost-backend/internal/features/task/repository"
	usermodels "github.com/coincoast/memesboost-backend/internal/features/user/models"
)

// UserAccount is the slice of the user repository the task feature needs to
// verify users and award points.
type UserAccount interface {
	GetByID(ctx context.Context, id int64) (*usermodels.User, error)
	AddPoints(ctx context.Context, id int64, points int64) (int64, error)
}

// ActiveTaskCache caches the public task listing. Implementations are best
// effort; a nil cache disables caching.
type ActiveTaskCache interface {
	GetActive(ctx context.Context) ([]*models.Task, error)
	SetActive(ctx context.Context, tasks []*models.Task) error
	Invalidate(ctx context.Context) error
}

type TaskService interface {
	Create(ctx context.Context, description, link string, points int64) (*models.Task, error)
	Delete(ctx context.Context, id int64) error
	Toggle(ctx context.Context, id int64, active bool) error
	ListActive(ctx context.Context) ([]*models.Task, error)
	// Complete records a (user, task) completion and awards the task's
	// stored point value exactly once per pair.
	Complete(ctx context.Context, userID, taskID int64) (*models.CompleteResponse, error)
}

type taskService struct {
	repo  repository.TaskRepository
	users UserAccount
	cache ActiveTaskCache
}

func NewTaskService(repo repository.TaskRepository, users UserAccount, cache ActiveTaskCache) TaskService {
	return &taskService{
		repo:  repo,
		users: users,
		cache: cache,
	}
}

func (s *taskService) Create(ctx context.Context, description, link string, points int64) (*models.Task, error) {
	description = strings.TrimSpace(description)
	link = strings.TrimSpace(link)
	if description == "" || link == "" {
		return nil, apperrors.Validation("description and link are required")
	}
	if points <= 0 {
		return nil, apperrors.Validation("points must be a positive integer")
	}

	task := &models.Task{
		Description: description,
		Link:        link,
		Points:      points,
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *taskService) Toggle(ctx context.Context, id int64, active bool) error {
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *taskService) ListActive(ctx context.Context) ([]*models.Task, error) {
	if s.cache != nil {
		if tasks, err := s.cache.GetActive(ctx); err == nil && tasks != nil {
			return tasks, nil
		}
	}

	tasks, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*models.Task{}
	}

	if s.cache != nil {
		if err := s.cache.SetActive(ctx, tasks); err != nil {
			logger.Warn().Err(err).Msg("Failed to cache active tasks")
		}
	}
	return tasks, nil
}

func (s *taskService) Complete(ctx context.Context, userID, taskID int64) (*models.CompleteResponse, error) {
	if userID == 0 || taskID == 0 {
		return nil, apperrors.Validation("user_id and task_id are required")
	}

	task, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	inserted, err := s.repo.InsertCompletion(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	points := user.Points
	if inserted {
		// The award is always the stored task value; any client-supplied
		// amount was discarded at the handler.
		points, err = s.users.AddPoints(ctx, userID, task.Points)
		if err != nil {
			return nil, err
		}
	}

	ids, err := s.repo.CompletedTaskIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []int64{}
	}

	return &models.CompleteResponse{Points: points, CompletedTasks: ids}, nil
}

func (s *taskService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate task cache")
	}
}
