package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coincoast/memesboost-backend/internal/common/apperrors"
	"github.com/coincoast/memesboost-backend/internal/features/catalog/models"
	"github.com/coincoast/memesboost-backend/internal/platform/dexscreener"
)

type fakeListingRepo struct {
	listings map[int64]*models.Listing
	nextID   int64
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: map[int64]*models.Listing{}, nextID: 1}
}

func (r *fakeListingRepo) Create(_ context.Context, listing *models.Listing) error {
	listing.ID = r.nextID
	r.nextID++
	copied := *listing
	r.listings[listing.ID] = &copied
	return nil
}

func (r *fakeListingRepo) ListBySection(_ context.Context, section models.Section) ([]*models.Listing, error) {
	var out []*models.Listing
	for _, l := range r.listings {
		if l.Section == section {
			copied := *l
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeListingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.listings[id]; !ok {
		return apperrors.NotFound("listing")
	}
	delete(r.listings, id)
	return nil
}

type fakeLookup struct {
	info *dexscreener.TokenInfo
	err  error
	addr string
}

func (l *fakeLookup) Lookup(_ context.Context, contractAddress string) (*dexscreener.TokenInfo, error) {
	l.addr = contractAddress
	if l.err != nil {
		return nil, l.err
	}
	return l.info, nil
}

func TestCreateTokenListingEnriched(t *testing.T) {
	repo := newFakeListingRepo()
	lookup := &fakeLookup{info: &dexscreener.TokenInfo{
		Name:      "Pepe Classic",
		Ticker:    "PEPC",
		MarketCap: "4.2M",
		Liquidity: "150.0k",
		Volume:    "987.65",
	}}
	svc := NewCatalogService(repo, lookup, nil)

	listing, err := svc.Create(context.Background(), &models.CreateListingRequest{
		Section:         models.SectionTokens,
		Position:        1,
		ContractAddress: "  0xDEAD  ",
		Boosts:          12,
		TelegramLink:    "https://t.me/pepc",
	})
	require.NoError(t, err)
	assert.Equal(t, "0xDEAD", lookup.addr, "address is trimmed before lookup")
	assert.Equal(t, "Pepe Classic", listing.Name)
	assert.Equal(t, "PEPC", listing.Ticker)
	assert.Equal(t, "4.2M", listing.MarketCap)
	assert.Equal(t, "150.0k", listing.Liquidity)
	assert.Equal(t, int64(1), listing.ID)
}

func TestCreateTokenListingLookupFails(t *testing.T) {
	repo := newFakeListingRepo()
	lookup := &fakeLookup{err: apperrors.ExternalAPI("token lookup", assert.AnError)}
	svc := NewCatalogService(repo, lookup, nil)

	_, err := svc.Create(context.Background(), &models.CreateListingRequest{
		Section:         models.SectionTokens,
		Position:        1,
		ContractAddress: "0xDEAD",
		TelegramLink:    "https://t.me/pepc",
	})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeExternalAPI))
	assert.Empty(t, repo.listings, "nothing is stored when enrichment fails")
}

func TestCreateAirdropListing(t *testing.T) {
	repo := newFakeListingRepo()
	svc := NewCatalogService(repo, &fakeLookup{}, nil)

	listing, err := svc.Create(context.Background(), &models.CreateListingRequest{
		Section:      models.SectionAirdrops,
		Position:     2,
		Name:         "Moon Drop",
		Ticker:       "MOON",
		Status:       "live",
		Chain:        "SOL",
		TelegramLink: "https://t.me/moondrop",
	})
	require.NoError(t, err)
	assert.Equal(t, "Moon Drop", listing.Name)
	assert.Equal(t, "live", listing.Status)
	assert.Empty(t, listing.ContractAddress)
}

func TestCreateListingValidation(t *testing.T) {
	svc := NewCatalogService(newFakeListingRepo(), &fakeLookup{}, nil)

	cases := []struct {
		name string
		req  models.CreateListingRequest
	}{
		{"bad section", models.CreateListingRequest{Section: "nfts", Position: 1, TelegramLink: "https://t.me/x"}},
		{"zero position", models.CreateListingRequest{Section: models.SectionTokens, Position: 0, ContractAddress: "0x1", TelegramLink: "https://t.me/x"}},
		{"missing telegram", models.CreateListingRequest{Section: models.SectionTokens, Position: 1, ContractAddress: "0x1"}},
		{"token without address", models.CreateListingRequest{Section: models.SectionTokens, Position: 1, TelegramLink: "https://t.me/x"}},
		{"airdrop without chain", models.CreateListingRequest{Section: models.SectionAirdrops, Position: 1, Name: "A", Ticker: "A", Status: "live", TelegramLink: "https://t.me/x"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tc.req)
			assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
		})
	}
}

func TestListUnknownSection(t *testing.T) {
	svc := NewCatalogService(newFakeListingRepo(), &fakeLookup{}, nil)

	_, err := svc.List(context.Background(), "stocks")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
}

func TestListEmptySection(t *testing.T) {
	svc := NewCatalogService(newFakeListingRepo(), &fakeLookup{}, nil)

	listings, err := svc.List(context.Background(), models.SectionCommunities)
	require.NoError(t, err)
	assert.Equal(t, []*models.Listing{}, listings, "empty sections serialize as [], not null")
}

func TestDeleteListing(t *testing.T) {
	repo := newFakeListingRepo()
	svc := NewCatalogService(repo, &fakeLookup{}, nil)

	listing, err := svc.Create(context.Background(), &models.CreateListingRequest{
		Section:      models.SectionAirdrops,
		Position:     1,
		Name:         "Moon Drop",
		Ticker:       "MOON",
		Status:       "live",
		Chain:        "SOL",
		TelegramLink: "https://t.me/moondrop",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), listing.ID))
	assert.True(t, apperrors.IsCode(svc.Delete(context.Background(), listing.ID), apperrors.CodeNotFound))
}
