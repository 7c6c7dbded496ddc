package repository

import (
	"context"
	"time"

	"github.com/coincoast/memesboost-backend/internal/features/user/models"
)

// UserRepository is the persistence contract for users. Implementations map
// "zero rows affected" to a NOT_FOUND application error and any engine
// failure to STORAGE_ERROR.
type UserRepository interface {
	// Upsert registers a wallet or, when it already exists, refreshes the
	// X profile while leaving points untouched.
	Upsert(ctx context.Context, walletAddress, xProfile string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByWallet(ctx context.Context, walletAddress string) (*models.User, error)
	Count(ctx context.Context) (int, error)
	// RecordBoost bumps points by one and stamps the boost time, returning
	// the new total.
	RecordBoost(ctx context.Context, id int64, at time.Time) (int64, error)
	// AddPoints awards task points and returns the new total.
	AddPoints(ctx context.Context, id int64, points int64) (int64, error)
	List(ctx context.Context) ([]*models.User, error)
	Delete(ctx context.Context, id int64) error
}
