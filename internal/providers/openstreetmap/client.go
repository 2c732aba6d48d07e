package openstreetmap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"celestial-chart/internal/providers/resilient"
	"celestial-chart/internal/types"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Reverse/
// Sample request: https://nominatim.openstreetmap.org/reverse?lat=25.03&lon=121.56&format=json
const (
	baseURL   = "https://nominatim.openstreetmap.org/reverse"
	userAgent = "celestial-chart/1.0"
)

// ErrNoPlace is returned for coordinates Nominatim cannot name, such as open ocean.
var ErrNoPlace = errors.New("no place at coordinates")

type Client struct {
	httpClient *resilient.Client
	baseURL    string
}

func NewClient() *Client {
	return NewClientWithConfig(baseURL, 5*time.Second)
}

// NewClientWithConfig creates a client for a custom endpoint, e.g. a self-hosted Nominatim.
func NewClientWithConfig(endpoint string, timeout time.Duration) *Client {
	return &Client{
		httpClient: resilient.New("nominatim", &http.Client{Timeout: timeout}, resilient.DefaultBackoff),
		baseURL:    endpoint,
	}
}

// ReverseLookup returns the place containing coords.
func (c *Client) ReverseLookup(ctx context.Context, coords types.Coords) (types.LocationInfo, error) {
	resp, err := c.lookup(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		return types.LocationInfo{}, err
	}

	return types.LocationInfo{
		Name:        resp.placeName(),
		State:       resp.Address.State,
		Country:     resp.Address.Country,
		CountryCode: strings.ToUpper(resp.Address.CountryCode),
	}, nil
}

func (c *Client) lookup(ctx context.Context, latitude, longitude float64) (*LookupAPIResponse, error) {
	// Build URL with query parameters
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("format", "json")
	q.Set("zoom", "10")
	q.Set("accept-language", "en")
	u.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(ctx, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", userAgent)
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	var apiResp LookupAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if apiResp.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrNoPlace, apiResp.Error)
	}

	return &apiResp, nil
}
