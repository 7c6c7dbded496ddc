package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is a thin PostgREST client for the Supabase table API. Repositories
// build on the generic verbs; filters are passed as raw query strings in
// PostgREST syntax (e.g. "id=eq.7&select=*").
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Select fetches rows matching the query into out (a pointer to a slice).
func (c *Client) Select(ctx context.Context, table, query string, out interface{}) error {
	return c.request(ctx, http.MethodGet, table, query, "", nil, out)
}

// Insert adds rows. The prefer header controls conflict resolution and
// whether the created rows come back ("return=representation").
func (c *Client) Insert(ctx context.Context, table, query, prefer string, body, out interface{}) error {
	return c.request(ctx, http.MethodPost, table, query, prefer, body, out)
}

// Update patches rows matching the query and decodes the changed rows into
// out. Callers detect "zero rows affected" from the decoded slice length.
func (c *Client) Update(ctx context.Context, table, query string, body, out interface{}) error {
	return c.request(ctx, http.MethodPatch, table, query, "return=representation", body, out)
}

// Delete removes rows matching the query and returns how many were removed.
func (c *Client) Delete(ctx context.Context, table, query string) (int, error) {
	var removed []json.RawMessage
	if err := c.request(ctx, http.MethodDelete, table, query, "return=representation", nil, &removed); err != nil {
		return 0, err
	}
	return len(removed), nil
}

func (c *Client) request(ctx context.Context, method, table, query, prefer string, body, out interface{}) error {
	url := c.baseURL + "/rest/v1/" + table
	if query != "" {
		url += "?" + query
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// StatusError is a non-2xx PostgREST response.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("supabase: status %d: %s", e.Status, e.Body)
}
