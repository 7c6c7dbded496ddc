package dexscreener

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/coincoast/memesboost-backend/internal/common/apperrors"
)

// TokenInfo is the display-ready metadata for a token contract.
type TokenInfo struct {
	Name      string
	Ticker    string
	MarketCap string
	Liquidity string
	Volume    string
}

// Client looks up token metadata on the Dexscreener public API.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

type pairsResponse struct {
	Pairs []struct {
		BaseToken struct {
			Name   string `json:"name"`
			Symbol string `json:"symbol"`
		} `json:"baseToken"`
		FDV       float64 `json:"fdv"`
		Liquidity struct {
			USD float64 `json:"usd"`
		} `json:"liquidity"`
		Volume struct {
			H24 float64 `json:"h24"`
		} `json:"volume"`
	} `json:"pairs"`
}

// Lookup fetches metadata for a contract address from the first trading pair.
func (c *Client) Lookup(ctx context.Context, contractAddress string) (*TokenInfo, error) {
	url := c.baseURL + "/latest/dex/tokens/" + contractAddress

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, apperrors.ExternalAPI("dexscreener lookup", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.ExternalAPI("dexscreener lookup",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var parsed pairsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, apperrors.ExternalAPI("dexscreener lookup", err)
	}

	if len(parsed.Pairs) == 0 {
		return nil, apperrors.ExternalAPI("dexscreener lookup",
			fmt.Errorf("no trading pairs for %s", contractAddress))
	}

	pair := parsed.Pairs[0]
	info := &TokenInfo{
		Name:      pair.BaseToken.Name,
		Ticker:    pair.BaseToken.Symbol,
		MarketCap: FormatAmount(pair.FDV),
		Liquidity: FormatAmount(pair.Liquidity.USD),
		Volume:    FormatAmount(pair.Volume.H24),
	}
	if info.Name == "" {
		info.Name = "Unknown"
	}
	if info.Ticker == "" {
		info.Ticker = "N/A"
	}
	return info, nil
}

// FormatAmount renders a USD amount the way the site displays it: 1.2M, 45.1k
// or the plain number. Zero means the feed had no value.
func FormatAmount(amount float64) string {
	switch {
	case amount <= 0:
		return "N/A"
	case amount >= 1_000_000:
		return fmt.Sprintf("%.1fM", amount/1_000_000)
	case amount >= 1_000:
		return fmt.Sprintf("%.1fk", amount/1_000)
	default:
		return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", amount), "0"), ".")
	}
}
