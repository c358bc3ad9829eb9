// Package geocode looks up coordinates for a city/county pair using a
// Nominatim-compatible address search service.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Coordinates is one best-match result. Values stay strings, matching how
// the store keeps them on donor rows.
type Coordinates struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// Client issues forward-geocoding requests. Lookups are scoped to
// California, USA; the campaign only tracks donors there.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient builds a geocoding client for the given service base URL.
// Nominatim's usage policy requires an identifying User-Agent.
func NewClient(baseURL, userAgent string) *Client {
	return &Client{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Lookup returns the best-match coordinates for the city/county pair, or
// (nil, nil) when the service finds no match.
func (c *Client) Lookup(ctx context.Context, city, county string) (*Coordinates, error) {
	q := url.Values{}
	q.Set("city", city)
	q.Set("county", county)
	q.Set("state", "California")
	q.Set("country", "USA")
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("geocode: build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode: service returned status %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("geocode: decode response: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	return &Coordinates{Latitude: results[0].Lat, Longitude: results[0].Lon}, nil
}
