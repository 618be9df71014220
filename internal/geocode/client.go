// Package geocode looks up free-text locations against a Nominatim-compatible
// endpoint and provides the debounced search used while typing.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/trunghoangnt2003/memory/internal/config"
)

// ResultLimit is the maximum number of candidates requested per query
const ResultLimit = 5

// Result is one geocoding candidate. Coordinates arrive as strings on the
// wire; Coordinates parses them.
type Result struct {
	PlaceID     json.Number `json:"place_id"`
	DisplayName string      `json:"display_name"`
	Lat         string      `json:"lat"`
	Lon         string      `json:"lon"`
}

// Coordinates parses the candidate's latitude and longitude
func (r Result) Coordinates() (float64, float64, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q: %w", r.Lat, err)
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q: %w", r.Lon, err)
	}
	return lat, lon, nil
}

// Client queries the geocoding endpoint
type Client struct {
	httpClient  *http.Client
	baseURL     string
	countryCode string
	language    string
}

// NewClient creates a geocoding client from configuration
func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		baseURL:     strings.TrimRight(cfg.Geocode.BaseURL, "/"),
		countryCode: cfg.Geocode.CountryCode,
		language:    cfg.Geocode.Language,
	}
}

// Search returns up to ResultLimit country-scoped candidates for the query
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(ResultLimit))
	params.Set("countrycodes", c.countryCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocoding request: %w", err)
	}
	req.Header.Set("Accept-Language", c.language)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding request returned status %d", resp.StatusCode)
	}

	var results []Result
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	return results, nil
}
