package supabase

import (
	"context"
	"fmt"

	"github.com/coincoast/memesboost-backend/internal/common/apperrors"
	"github.com/coincoast/memesboost-backend/internal/features/task/models"
	"github.com/coincoast/memesboost-backend/internal/features/task/repository"
	platform "github.com/coincoast/memesboost-backend/internal/platform/supabase"
)

// Repository implements the task contract against the Supabase table API.
type Repository struct {
	client *platform.Client
}

func New(client *platform.Client) repository.TaskRepository {
	return &Repository{client: client}
}

const (
	tasksTable       = "tasks"
	completionsTable = "user_tasks"
)

type completionRow struct {
	UserID int64 `json:"user_id"`
	TaskID int64 `json:"task_id"`
}

func (r *Repository) Create(ctx context.Context, task *models.Task) error {
	body := map[string]interface{}{
		"description": task.Description,
		"link":        task.Link,
		"points":      task.Points,
		"is_active":   task.IsActive,
	}

	var rows []models.Task
	err := r.client.Insert(ctx, tasksTable, "", "return=representation", body, &rows)
	if err != nil {
		return apperrors.Storage("create task", err)
	}
	if len(rows) == 0 {
		return apperrors.Storage("create task", fmt.Errorf("empty representation"))
	}
	task.ID = rows[0].ID
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	var rows []models.Task
	if err := r.client.Select(ctx, tasksTable, fmt.Sprintf("id=eq.%d", id), &rows); err != nil {
		return nil, apperrors.Storage("get task", err)
	}
	if len(rows) == 0 {
		return nil, apperrors.NotFound("task")
	}
	return &rows[0], nil
}

func (r *Repository) ListActive(ctx context.Context) ([]*models.Task, error) {
	var rows []*models.Task
	query := "is_active=eq.true&order=id.asc"
	if err := r.client.Select(ctx, tasksTable, query, &rows); err != nil {
		return nil, apperrors.Storage("list active tasks", err)
	}
	return rows, nil
}

func (r *Repository) SetActive(ctx context.Context, id int64, active bool) error {
	body := map[string]bool{"is_active": active}

	var rows []models.Task
	if err := r.client.Update(ctx, tasksTable, fmt.Sprintf("id=eq.%d", id), body, &rows); err != nil {
		return apperrors.Storage("toggle task", err)
	}
	if len(rows) == 0 {
		return apperrors.NotFound("task")
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	n, err := r.client.Delete(ctx, tasksTable, fmt.Sprintf("id=eq.%d", id))
	if err != nil {
		return apperrors.Storage("delete task", err)
	}
	if n == 0 {
		return apperrors.NotFound("task")
	}
	return nil
}

func (r *Repository) InsertCompletion(ctx context.Context, userID, taskID int64) (bool, error) {
	body := completionRow{UserID: userID, TaskID: taskID}

	// ignore-duplicates turns a repeat completion into an empty
	// representation instead of a conflict error.
	var rows []completionRow
	err := r.client.Insert(ctx, completionsTable, "on_conflict=user_id,task_id",
		"resolution=ignore-duplicates,return=representation", body, &rows)
	if err != nil {
		return false, apperrors.Storage("record completion", err)
	}
	return len(rows) > 0, nil
}

func (r *Repository) CompletedTaskIDs(ctx context.Context, userID int64) ([]int64, error) {
	var rows []completionRow
	query := fmt.Sprintf("user_id=eq.%d&order=task_id.asc", userID)
	if err := r.client.Select(ctx, completionsTable, query, &rows); err != nil {
		return nil, apperrors.Storage("list completions", err)
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.TaskID)
	}
	return ids, nil
}

func (r *Repository) CompletedByUser(ctx context.Context) (map[int64][]int64, error) {
	var rows []completionRow
	if err := r.client.Select(ctx, completionsTable, "order=user_id.asc,task_id.asc", &rows); err != nil {
		return nil, apperrors.Storage("list completions", err)
	}

	completed := make(map[int64][]int64)
	for _, row := range rows {
		completed[row.UserID] = append(completed[row.UserID], row.TaskID)
	}
	return completed, nil
}
