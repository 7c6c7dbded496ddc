package repository

import (
	"context"

	"github.com/coincoast/memesboost-backend/internal/features/task/models"
)

// TaskRepository is the persistence contract for tasks and their completion
// records. Implementations map "zero rows affected" on update/delete to a
// NOT_FOUND application error and engine failures to STORAGE_ERROR.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	ListActive(ctx context.Context) ([]*models.Task, error)
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error

	// InsertCompletion records a (user, task) completion once; it reports
	// false when the pair was already recorded.
	InsertCompletion(ctx context.Context, userID, taskID int64) (bool, error)
	CompletedTaskIDs(ctx context.Context, userID int64) ([]int64, error)
	CompletedByUser(ctx context.Context) (map[int64][]int64, error)
}
