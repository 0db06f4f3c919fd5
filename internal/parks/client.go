// Package parks fetches attraction, show and restaurant data from the park
// API, keeps the latest snapshot in memory and refreshes it on a timer.
package parks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/magicjourney/backend/internal/domain"
)

// ErrFetch is returned when the park API cannot be reached, answers with a
// non-2xx status, or sends a payload that is not a JSON array.
var ErrFetch = errors.New("park api fetch failed")

// Client reads the three record lists from the park API.
// All endpoints are unauthenticated, unpaginated GETs returning JSON arrays.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// NewClient constructs a Client for baseURL (no trailing slash).
// A nil httpClient gets a client with a 10 second timeout.
// A nil logger falls back to slog.Default().
func NewClient(baseURL string, httpClient *http.Client, log *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{baseURL: baseURL, http: httpClient, log: log}
}

// FetchAttractions calls GET /api/attractions.
func (c *Client) FetchAttractions(ctx context.Context) ([]domain.RideRecord, error) {
	items, err := c.getArray(ctx, "/api/attractions")
	if err != nil {
		return nil, fmt.Errorf("parks.Client.FetchAttractions: %w", err)
	}
	return decodeEach(c.log, "attractions", items, decodeRide), nil
}

// FetchShows calls GET /api/shows.
func (c *Client) FetchShows(ctx context.Context) ([]domain.ShowRecord, error) {
	items, err := c.getArray(ctx, "/api/shows")
	if err != nil {
		return nil, fmt.Errorf("parks.Client.FetchShows: %w", err)
	}
	return decodeEach(c.log, "shows", items, decodeShow), nil
}

// FetchRestaurants calls GET /api/restaurants.
func (c *Client) FetchRestaurants(ctx context.Context) ([]domain.RestaurantRecord, error) {
	items, err := c.getArray(ctx, "/api/restaurants")
	if err != nil {
		return nil, fmt.Errorf("parks.Client.FetchRestaurants: %w", err)
	}
	return decodeEach(c.log, "restaurants", items, decodeRestaurant), nil
}

// getArray performs the GET and splits the top-level JSON array into raw
// elements so each one can be decoded on its own.
func (c *Client) getArray(ctx context.Context, path string) ([]json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s: status %d", ErrFetch, path, resp.StatusCode)
	}

	var items []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: GET %s: decode: %v", ErrFetch, path, err)
	}
	return items, nil
}

// decodeEach decodes every element with fn, skipping the ones fn rejects.
// A skipped element is logged but never fails the whole list.
func decodeEach[T any](log *slog.Logger, list string, items []json.RawMessage, fn func(json.RawMessage) (T, error)) []T {
	out := make([]T, 0, len(items))
	skipped := 0
	for _, raw := range items {
		v, err := fn(raw)
		if err != nil {
			skipped++
			log.Debug("skipping park record", "list", list, "error", err)
			continue
		}
		out = append(out, v)
	}
	if skipped > 0 {
		log.Warn("park records skipped", "list", list, "skipped", skipped, "kept", len(out))
	}
	return out
}
