package models

import "time"

// Section names the three promoted lists on the site.
type Section string

const (
	SectionTokens      Section = "tokens"
	SectionCommunities Section = "communities"
	SectionAirdrops    Section = "airdrops"
)

// Valid reports whether s is one of the known sections.
func (s Section) Valid() bool {
	switch s {
	case SectionTokens, SectionCommunities, SectionAirdrops:
		return true
	}
	return false
}

// Listing is a promoted entry in one of the site sections. Position is typed
// in by the administrator and used purely for display ordering. Market
// figures are display strings captured from the token feed at creation time.
type Listing struct {
	ID              int64     `db:"id" json:"id"`
	Section         Section   `db:"section" json:"section"`
	Position        int64     `db:"position" json:"position"`
	ContractAddress string    `db:"contract_address" json:"contract_address"`
	Name            string    `db:"name" json:"name"`
	Ticker          string    `db:"ticker" json:"ticker"`
	Boosts          int64     `db:"boosts" json:"boosts"`
	MarketCap       string    `db:"mcap" json:"mcap"`
	Liquidity       string    `db:"liq" json:"liq"`
	Volume          string    `db:"vol" json:"vol"`
	Status          string    `db:"status" json:"status"`
	Chain           string    `db:"chain" json:"chain"`
	TelegramLink    string    `db:"telegram_link" json:"telegram_link"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// CreateListingRequest is the POST /api/listings payload. Tokens and
// communities are keyed by contract address and enriched from the token
// feed; airdrops carry their metadata inline.
type CreateListingRequest struct {
	Section         Section `json:"section"`
	Position        int64   `json:"position"`
	ContractAddress string  `json:"contract_address"`
	Name            string  `json:"name"`
	Ticker          string  `json:"ticker"`
	Boosts          int64   `json:"boosts"`
	Status          string  `json:"status"`
	Chain           string  `json:"chain"`
	TelegramLink    string  `json:"telegram_link"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
