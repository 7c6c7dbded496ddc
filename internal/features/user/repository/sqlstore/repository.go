package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/coincoast/memesboost-backend/internal/common/apperrors"
	"github.com/coincoast/memesboost-backend/internal/features/user/models"
	"github.com/coincoast/memesboost-backend/internal/features/user/repository"
)

// Repository implements the user contract over SQLite or Postgres. Queries
// use ? placeholders and are rebound for the active driver.
type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) repository.UserRepository {
	return &Repository{db: db}
}

const userColumns = "id, wallet_address, x_profile, points, last_boost_time, created_at"

func (r *Repository) Upsert(ctx context.Context, walletAddress, xProfile string) (*models.User, error) {
	query := r.db.Rebind(`
		INSERT INTO users (wallet_address, x_profile)
		VALUES (?, ?)
		ON CONFLICT (wallet_address) DO UPDATE SET x_profile = excluded.x_profile
		RETURNING ` + userColumns)

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, walletAddress, xProfile); err != nil {
		return nil, apperrors.Storage("upsert user", err)
	}
	return &user, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := r.db.Rebind("SELECT " + userColumns + " FROM users WHERE id = ?")

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("user")
		}
		return nil, apperrors.Storage("get user", err)
	}
	return &user, nil
}

func (r *Repository) GetByWallet(ctx context.Context, walletAddress string) (*models.User, error) {
	query := r.db.Rebind("SELECT " + userColumns + " FROM users WHERE wallet_address = ?")

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, walletAddress); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("user")
		}
		return nil, apperrors.Storage("get user by wallet", err)
	}
	return &user, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM users"); err != nil {
		return 0, apperrors.Storage("count users", err)
	}
	return count, nil
}

func (r *Repository) RecordBoost(ctx context.Context, id int64, at time.Time) (int64, error) {
	query := r.db.Rebind(`
		UPDATE users SET points = points + 1, last_boost_time = ?
		WHERE id = ?
		RETURNING points`)

	var points int64
	if err := r.db.GetContext(ctx, &points, query, at, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, apperrors.NotFound("user")
		}
		return 0, apperrors.Storage("record boost", err)
	}
	return points, nil
}

func (r *Repository) AddPoints(ctx context.Context, id int64, points int64) (int64, error) {
	query := r.db.Rebind(`
		UPDATE users SET points = points + ?
		WHERE id = ?
		RETURNING points`)

	var total int64
	if err := r.db.GetContext(ctx, &total, query, points, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, apperrors.NotFound("user")
		}
		return 0, apperrors.Storage("add points", err)
	}
	return total, nil
}

func (r *Repository) List(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	err := r.db.SelectContext(ctx, &users,
		"SELECT "+userColumns+" FROM users ORDER BY id")
	if err != nil {
		return nil, apperrors.Storage("list users", err)
	}
	return users, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := r.db.Rebind("DELETE FROM users WHERE id = ?")

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Storage("delete user", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Storage("delete user", err)
	}
	if affected == 0 {
		return apperrors.NotFound("user")
	}
	return nil
}
