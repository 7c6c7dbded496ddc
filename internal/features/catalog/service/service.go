package service

import (
	"context"
	"strings"

	"github.com/coincoast/memesboost-backend/internal/common/apperrors"
	"github.com/coincoast/memesboost-backend/internal/common/logger"
	"github.com/coincoast/memesboost-backend/internal/features/catalog/models"
	"github.com/coincoast/memesboost-backend/internal/features/catalog/repository"
	"github.com/coincoast/memesboost-backend/internal/platform/dexscreener"
)

// TokenLookup resolves token metadata for a contract address.
type TokenLookup interface {
	Lookup(ctx context.Context, contractAddress string) (*dexscreener.TokenInfo, error)
}

// SectionCache caches rendered sections. Best effort; nil disables caching.
type SectionCache interface {
	Get(ctx context.Context, section models.Section) ([]*models.Listing, error)
	Set(ctx context.Context, section models.Section, listings []*models.Listing) error
	Invalidate(ctx context.Context, section models.Section) error
}

type CatalogService interface {
	Create(ctx context.Context, req *models.CreateListingRequest) (*models.Listing, error)
	List(ctx context.Context, section models.Section) ([]*models.Listing, error)
	Delete(ctx context.Context, id int64) error
}

type catalogService struct {
	repo   repository.ListingRepository
	tokens TokenLookup
	cache  SectionCache
}

func NewCatalogService(repo repository.ListingRepository, tokens TokenLookup, cache SectionCache) CatalogService {
	return &catalogService{
		repo:   repo,
		tokens: tokens,
		cache:  cache,
	}
}

func (s *catalogService) Create(ctx context.Context, req *models.CreateListingRequest) (*models.Listing, error) {
	if !req.Section.Valid() {
		return nil, apperrors.Validation("section must be tokens, communities or airdrops")
	}
	if req.Position < 1 {
		return nil, apperrors.Validation("position must be at least 1")
	}
	if strings.TrimSpace(req.TelegramLink) == "" {
		return nil, apperrors.Validation("telegram_link is required")
	}

	listing := &models.Listing{
		Section:      req.Section,
		Position:     req.Position,
		Boosts:       req.Boosts,
		TelegramLink: strings.TrimSpace(req.TelegramLink),
	}

	if req.Section == models.SectionAirdrops {
		if req.Name == "" || req.Ticker == "" || req.Status == "" || req.Chain == "" {
			return nil, apperrors.Validation("name, ticker, status and chain are required for airdrops")
		}
		listing.Name = req.Name
		listing.Ticker = req.Ticker
		listing.Status = req.Status
		listing.Chain = req.Chain
	} else {
		address := strings.TrimSpace(req.ContractAddress)
		if address == "" {
			return nil, apperrors.Validation("contract_address is required for tokens and communities")
		}

		info, err := s.tokens.Lookup(ctx, address)
		if err != nil {
			return nil, err
		}
		listing.ContractAddress = address
		listing.Name = info.Name
		listing.Ticker = info.Ticker
		listing.MarketCap = info.MarketCap
		listing.Liquidity = info.Liquidity
		listing.Volume = info.Volume
	}

	if err := s.repo.Create(ctx, listing); err != nil {
		return nil, err
	}

	s.invalidate(ctx, listing.Section)
	return listing, nil
}

func (s *catalogService) List(ctx context.Context, section models.Section) ([]*models.Listing, error) {
	if !section.Valid() {
		return nil, apperrors.Validation("section must be tokens, communities or airdrops")
	}

	if s.cache != nil {
		if listings, err := s.cache.Get(ctx, section); err == nil && listings != nil {
			return listings, nil
		}
	}

	listings, err := s.repo.ListBySection(ctx, section)
	if err != nil {
		return nil, err
	}
	if listings == nil {
		listings = []*models.Listing{}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, section, listings); err != nil {
			logger.Warn().Err(err).Str("section", string(section)).Msg("Failed to cache section")
		}
	}
	return listings, nil
}

func (s *catalogService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	// The deleted row's section is unknown here; drop all three.
	for _, section := range []models.Section{models.SectionTokens, models.SectionCommunities, models.SectionAirdrops} {
		s.invalidate(ctx, section)
	}
	return nil
}

func (s *catalogService) invalidate(ctx context.Context, section models.Section) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, section); err != nil {
		logger.Warn().Err(err).Str("section", string(section)).Msg("Failed to invalidate section cache")
	}
}
