package repository

import (
	"context"

	"github.com/coincoast/memesboost-backend/internal/features/catalog/models"
)

// ListingRepository is the persistence contract for catalog listings.
type ListingRepository interface {
	Create(ctx context.Context, listing *models.Listing) error
	// ListBySection returns a section ordered by display position.
	ListBySection(ctx context.Context, section models.Section) ([]*models.Listing, error)
	Delete(ctx context.Context, id int64) error
}
