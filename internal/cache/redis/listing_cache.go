package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	catalogmodels "github.com/coincoast/memesboost-backend/internal/features/catalog/models"
	rplatform "github.com/coincoast/memesboost-backend/internal/platform/redis"
)

// ListingCache provides Redis-based caching for catalog sections.
type ListingCache struct {
	client *rplatform.Client
	ttl    time.Duration
}

func NewListingCache(client *rplatform.Client, ttl time.Duration) *ListingCache {
	return &ListingCache{client: client, ttl: ttl}
}

func (c *ListingCache) key(section catalogmodels.Section) string {
	return fmt.Sprintf("listings:%s", section)
}

// Get returns the cached section, or (nil, nil) on a miss.
func (c *ListingCache) Get(ctx context.Context, section catalogmodels.Section) ([]*catalogmodels.Listing, error) {
	v, err := c.client.Get(ctx, c.key(section)).Bytes()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var listings []*catalogmodels.Listing
	if err := json.Unmarshal(v, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// Set stores the section under its own key.
func (c *ListingCache) Set(ctx context.Context, section catalogmodels.Section, listings []*catalogmodels.Listing) error {
	b, err := json.Marshal(listings)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(section), b, c.ttl).Err()
}

// Invalidate removes the cached section.
func (c *ListingCache) Invalidate(ctx context.Context, section catalogmodels.Section) error {
	return c.client.Del(ctx, c.key(section)).Err()
}
