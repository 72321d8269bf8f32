// Package geocode resolves street addresses to coordinates through the
// Nominatim search API.
package geocode

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/bayviewlabs/safetylens/internal/contract"
)

const userAgent = "sf-public-safety-dashboard"

// Client is a minimal Nominatim search client scoped to San Francisco
// addresses. A nil-safe zero value is not supported; use NewClient.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ contract.Geocoder = &Client{} // Compile-time check

// NewClient returns a client against the given Nominatim base URL. An empty
// baseURL or zero timeout falls back to the defaults.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = contract.DefaultGeocoderBaseURL
	}
	if timeout <= 0 {
		timeout = contract.DefaultGeocoderTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// nominatimResult is one entry of the Nominatim search response. The API
// returns coordinates as strings.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves an address in San Francisco to coordinates. A blank
// address or an address with no match returns (nil, nil, nil); only
// transport and decoding failures are errors.
func (c *Client) Geocode(ctx context.Context, address, zipCode string) (*float64, *float64, error) {
	if address == "" {
		return nil, nil, nil
	}

	parts := []string{address, "San Francisco", "CA"}
	if zipCode != "" {
		parts = append(parts, zipCode)
	}

	params := url.Values{}
	params.Set("q", strings.Join(parts, ", "))
	params.Set("format", "jsonv2")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("geocode request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, nil, fmt.Errorf("geocode request returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, nil, fmt.Errorf("failed to decode geocode response: %w", err)
	}
	if len(results) == 0 {
		return nil, nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse geocode latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse geocode longitude: %w", err)
	}
	return &lat, &lon, nil
}
