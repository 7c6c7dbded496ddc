package sqlstore

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/coincoast/memesboost-backend/internal/common/apperrors"
	"github.com/coincoast/memesboost-backend/internal/features/catalog/models"
	"github.com/coincoast/memesboost-backend/internal/features/catalog/repository"
)

// Repository implements the listing contract over SQLite or Postgres.
type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) repository.ListingRepository {
	return &Repository{db: db}
}

const listingColumns = "id, section, position, contract_address, name, ticker, boosts, mcap, liq, vol, status, chain, telegram_link, created_at"

func (r *Repository) Create(ctx context.Context, listing *models.Listing) error {
	query := r.db.Rebind(`
		INSERT INTO listings (section, position, contract_address, name, ticker, boosts, mcap, liq, vol, status, chain, telegram_link)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`)

	err := r.db.GetContext(ctx, &listing.ID, query,
		listing.Section, listing.Position, listing.ContractAddress,
		listing.Name, listing.Ticker, listing.Boosts,
		listing.MarketCap, listing.Liquidity, listing.Volume,
		listing.Status, listing.Chain, listing.TelegramLink)
	if err != nil {
		return apperrors.Storage("create listing", err)
	}
	return nil
}

func (r *Repository) ListBySection(ctx context.Context, section models.Section) ([]*models.Listing, error) {
	query := r.db.Rebind("SELECT " + listingColumns + " FROM listings WHERE section = ? ORDER BY position, id")

	var listings []*models.Listing
	if err := r.db.SelectContext(ctx, &listings, query, section); err != nil {
		return nil, apperrors.Storage("list listings", err)
	}
	return listings, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := r.db.Rebind("DELETE FROM listings WHERE id = ?")

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Storage("delete listing", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Storage("delete listing", err)
	}
	if affected == 0 {
		return apperrors.NotFound("listing")
	}
	return nil
}
