package service

import (
	"context"
	"strings"
	"time"

	"github.com/coincoast/memesboost-backend/internal/common/apperrors"
	"github.com/coincoast/memesboost-backend/internal/features/user/models"
	"github.com/coincoast/memesboost-backend/internal/features/user/repository"
)

// CompletionReader exposes the derived completed-task sets kept by the task
// feature's join table.
type CompletionReader interface {
	CompletedTaskIDs(ctx context.Context, userID int64) ([]int64, error)
	CompletedByUser(ctx context.Context) (map[int64][]int64, error)
}

type UserService interface {
	// Register creates a user or idempotently refreshes an existing wallet's
	// X profile. The population cap only applies to new wallets.
	Register(ctx context.Context, walletAddress, xProfile string) (*models.UserWithTasks, error)
	// Boost awards one point, at most once per cooldown window.
	Boost(ctx context.Context, userID int64) (*models.BoostResponse, error)
	List(ctx context.Context) ([]*models.UserWithTasks, error)
	Delete(ctx context.Context, userID int64) error
}

type userService struct {
	repo        repository.UserRepository
	completions CompletionReader
	capLimit    int
	cooldown    time.Duration
	now         func() time.Time
}

func NewUserService(repo repository.UserRepository, completions CompletionReader, capLimit int, cooldown time.Duration) UserService {
	return &userService{
		repo:        repo,
		completions: completions,
		capLimit:    capLimit,
		cooldown:    cooldown,
		now:         time.Now,
	}
}

func (s *userService) Register(ctx context.Context, walletAddress, xProfile string) (*models.UserWithTasks, error) {
	walletAddress = strings.TrimSpace(walletAddress)
	xProfile = strings.TrimSpace(xProfile)
	if walletAddress == "" || xProfile == "" {
		return nil, apperrors.Validation("wallet_address and x_profile are required")
	}

	_, err := s.repo.GetByWallet(ctx, walletAddress)
	if err != nil {
		if !apperrors.IsCode(err, apperrors.CodeNotFound) {
			return nil, err
		}
		// New wallet: the cap is checked against the current count, not a
		// high-water mark.
		count, err := s.repo.Count(ctx)
		if err != nil {
			return nil, err
		}
		if count >= s.capLimit {
			return nil, apperrors.Capacity(s.capLimit)
		}
	}

	user, err := s.repo.Upsert(ctx, walletAddress, xProfile)
	if err != nil {
		return nil, err
	}

	return s.withTasks(ctx, user)
}

func (s *userService) Boost(ctx context.Context, userID int64) (*models.BoostResponse, error) {
	if userID == 0 {
		return nil, apperrors.Validation("user_id is required")
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if user.LastBoostTime != nil {
		if elapsed := now.Sub(*user.LastBoostTime); elapsed < s.cooldown {
			return nil, apperrors.Newf(apperrors.CodeRateLimited,
				"boost available in %s", (s.cooldown - elapsed).Round(time.Second))
		}
	}

	points, err := s.repo.RecordBoost(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	return &models.BoostResponse{Points: points, LastBoostTime: now}, nil
}

func (s *userService) List(ctx context.Context) ([]*models.UserWithTasks, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	completed, err := s.completions.CompletedByUser(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*models.UserWithTasks, 0, len(users))
	for _, u := range users {
		ids := completed[u.ID]
		if ids == nil {
			ids = []int64{}
		}
		out = append(out, &models.UserWithTasks{User: *u, CompletedTasks: ids})
	}
	return out, nil
}

func (s *userService) Delete(ctx context.Context, userID int64) error {
	return s.repo.Delete(ctx, userID)
}

func (s *userService) withTasks(ctx context.Context, user *models.User) (*models.UserWithTasks, error) {
	ids, err := s.completions.CompletedTaskIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []int64{}
	}
	return &models.UserWithTasks{User: *user, CompletedTasks: ids}, nil
}
