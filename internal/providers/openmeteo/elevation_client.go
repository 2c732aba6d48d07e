// Package openmeteo reads terrain elevation from the Open-Meteo API.
package openmeteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"celestial-chart/internal/providers/resilient"
	"celestial-chart/internal/types"
)

// API Docs: https://open-meteo.com/en/docs/elevation-api
// Sample request: https://api.open-meteo.com/v1/elevation?latitude=39.1178&longitude=-106.4452
const (
	baseElevationURL = "https://api.open-meteo.com/v1/elevation"
)

// ErrNoElevation is returned when the response carries no value.
var ErrNoElevation = errors.New("no elevation in response")

type ElevationClient struct {
	httpClient *resilient.Client
	baseURL    string
}

func NewElevationClient() *ElevationClient {
	return NewElevationClientWithConfig(baseElevationURL, 5*time.Second)
}

func NewElevationClientWithConfig(endpoint string, timeout time.Duration) *ElevationClient {
	return &ElevationClient{
		httpClient: resilient.New("open-meteo-elevation", &http.Client{Timeout: timeout}, resilient.DefaultBackoff),
		baseURL:    endpoint,
	}
}

// GetElevation returns the terrain elevation at coords.
func (c *ElevationClient) GetElevation(ctx context.Context, coords types.Coords) (types.Elevation, error) {
	// Build URL with query parameters
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return types.Elevation{}, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", coords.Latitude))
	q.Set("longitude", fmt.Sprintf("%f", coords.Longitude))
	u.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(ctx, func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	})
	if err != nil {
		return types.Elevation{}, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	// Parse the JSON response
	var apiResp ElevationAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return types.Elevation{}, fmt.Errorf("failed to decode response: %w", err)
	}
	if apiResp.Error {
		return types.Elevation{}, fmt.Errorf("elevation API error: %s", apiResp.Reason)
	}
	if len(apiResp.Elevation) == 0 {
		return types.Elevation{}, ErrNoElevation
	}

	return types.NewElevationFromMeters(apiResp.Elevation[0]), nil
}
