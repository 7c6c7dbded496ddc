package supabase

import (
	"context"
	"fmt"
	"time"

	"github.com/coincoast/memesboost-backend/internal/common/apperrors"
	"github.com/coincoast/memesboost-backend/internal/features/user/models"
	"github.com/coincoast/memesboost-backend/internal/features/user/repository"
	platform "github.com/coincoast/memesboost-backend/internal/platform/supabase"
)

// Repository implements the user contract against the Supabase table API.
// PostgREST has no server-side arithmetic, so point increments are
// read-then-write; last write wins, which matches the concurrency contract.
type Repository struct {
	client *platform.Client
}

func New(client *platform.Client) repository.UserRepository {
	return &Repository{client: client}
}

const table = "users"

func (r *Repository) Upsert(ctx context.Context, walletAddress, xProfile string) (*models.User, error) {
	body := map[string]string{
		"wallet_address": walletAddress,
		"x_profile":      xProfile,
	}

	var rows []models.User
	err := r.client.Insert(ctx, table, "on_conflict=wallet_address",
		"resolution=merge-duplicates,return=representation", body, &rows)
	if err != nil {
		return nil, apperrors.Storage("upsert user", err)
	}
	if len(rows) == 0 {
		return nil, apperrors.Storage("upsert user", fmt.Errorf("empty representation"))
	}
	return &rows[0], nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var rows []models.User
	if err := r.client.Select(ctx, table, fmt.Sprintf("id=eq.%d", id), &rows); err != nil {
		return nil, apperrors.Storage("get user", err)
	}
	if len(rows) == 0 {
		return nil, apperrors.NotFound("user")
	}
	return &rows[0], nil
}

func (r *Repository) GetByWallet(ctx context.Context, walletAddress string) (*models.User, error) {
	var rows []models.User
	query := "wallet_address=eq." + walletAddress
	if err := r.client.Select(ctx, table, query, &rows); err != nil {
		return nil, apperrors.Storage("get user by wallet", err)
	}
	if len(rows) == 0 {
		return nil, apperrors.NotFound("user")
	}
	return &rows[0], nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var rows []struct {
		ID int64 `json:"id"`
	}
	if err := r.client.Select(ctx, table, "select=id", &rows); err != nil {
		return 0, apperrors.Storage("count users", err)
	}
	return len(rows), nil
}

func (r *Repository) RecordBoost(ctx context.Context, id int64, at time.Time) (int64, error) {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}

	body := map[string]interface{}{
		"points":          user.Points + 1,
		"last_boost_time": at.UTC().Format(time.RFC3339Nano),
	}

	var rows []models.User
	if err := r.client.Update(ctx, table, fmt.Sprintf("id=eq.%d", id), body, &rows); err != nil {
		return 0, apperrors.Storage("record boost", err)
	}
	if len(rows) == 0 {
		return 0, apperrors.NotFound("user")
	}
	return rows[0].Points, nil
}

func (r *Repository) AddPoints(ctx context.Context, id int64, points int64) (int64, error) {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}

	body := map[string]interface{}{"points": user.Points + points}

	var rows []models.User
	if err := r.client.Update(ctx, table, fmt.Sprintf("id=eq.%d", id), body, &rows); err != nil {
		return 0, apperrors.Storage("add points", err)
	}
	if len(rows) == 0 {
		return 0, apperrors.NotFound("user")
	}
	return rows[0].Points, nil
}

func (r *Repository) List(ctx context.Context) ([]*models.User, error) {
	var rows []*models.User
	if err := r.client.Select(ctx, table, "select=*&order=id.asc", &rows); err != nil {
		return nil, apperrors.Storage("list users", err)
	}
	return rows, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	n, err := r.client.Delete(ctx, table, fmt.Sprintf("id=eq.%d", id))
	if err != nil {
		return apperrors.Storage("delete user", err)
	}
	if n == 0 {
		return apperrors.NotFound("user")
	}
	return nil
}
