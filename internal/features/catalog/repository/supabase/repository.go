package supabase

import (
	"context"
	"fmt"

	"github.com/coincoast/memesboost-backend/internal/common/apperrors"
	"github.com/coincoast/memesboost-backend/internal/features/catalog/models"
	"github.com/coincoast/memesboost-backend/internal/features/catalog/repository"
	platform "github.com/coincoast/memesboost-backend/internal/platform/supabase"
)

// Repository implements the listing contract against the Supabase table API.
type Repository struct {
	client *platform.Client
}

func New(client *platform.Client) repository.ListingRepository {
	return &Repository{client: client}
}

const table = "listings"

func (r *Repository) Create(ctx context.Context, listing *models.Listing) error {
	body := map[string]interface{}{
		"section":          listing.Section,
		"position":         listing.Position,
		"contract_address": listing.ContractAddress,
		"name":             listing.Name,
		"ticker":           listing.Ticker,
		"boosts":           listing.Boosts,
		"mcap":             listing.MarketCap,
		"liq":              listing.Liquidity,
		"vol":              listing.Volume,
		"status":           listing.Status,
		"chain":            listing.Chain,
		"telegram_link":    listing.TelegramLink,
	}

	var rows []models.Listing
	err := r.client.Insert(ctx, table, "", "return=representation", body, &rows)
	if err != nil {
		return apperrors.Storage("create listing", err)
	}
	if len(rows) == 0 {
		return apperrors.Storage("create listing", fmt.Errorf("empty representation"))
	}
	listing.ID = rows[0].ID
	return nil
}

func (r *Repository) ListBySection(ctx context.Context, section models.Section) ([]*models.Listing, error) {
	var rows []*models.Listing
	query := fmt.Sprintf("section=eq.%s&order=position.asc,id.asc", section)
	if err := r.client.Select(ctx, table, query, &rows); err != nil {
		return nil, apperrors.Storage("list listings", err)
	}
	return rows, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	n, err := r.client.Delete(ctx, table, fmt.Sprintf("id=eq.%d", id))
	if err != nil {
		return apperrors.Storage("delete listing", err)
	}
	if n == 0 {
		return apperrors.NotFound("listing")
	}
	return nil
}
