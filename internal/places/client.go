// Package places provides the free-text place-lookup client and the
// process-wide pacing of its outbound requests.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/festmap/suggest/internal/models"
)

// Searcher is the place-lookup interface the coordinator consumes.
type Searcher interface {
	// Search runs a free-text place search and returns display names in
	// provider order.
	Search(ctx context.Context, query string) ([]models.PlaceResult, error)
}

// Client queries a Nominatim-compatible geocoder over HTTP.
type Client struct {
	baseURL   string
	limit     int
	userAgent string
	http      *http.Client
}

// NewClient creates a place-lookup client. baseURL is the geocoder endpoint
// (e.g. "https://nominatim.openstreetmap.org"); limit caps returned rows.
func NewClient(baseURL string, limit int, timeout time.Duration, userAgent string) *Client {
	if limit <= 0 {
		limit = 5
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:   baseURL,
		limit:     limit,
		userAgent: userAgent,
		http:      &http.Client{Timeout: timeout},
	}
}

// searchRow is the subset of the geocoder response the engine consumes.
type searchRow struct {
	DisplayName string `json:"display_name"`
}

// Search implements Searcher. Failures are returned as errors; the caller
// degrades them to zero place candidates.
func (c *Client) Search(ctx context.Context, query string) ([]models.PlaceResult, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=%d",
		c.baseURL, url.QueryEscape(query), c.limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build place lookup request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("place lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("place lookup returned status %d", resp.StatusCode)
	}

	var rows []searchRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode place lookup response: %w", err)
	}

	results := make([]models.PlaceResult, 0, len(rows))
	for _, row := range rows {
		if row.DisplayName == "" {
			continue
		}
		results = append(results, models.PlaceResult{DisplayName: row.DisplayName})
	}
	return results, nil
}
