// Package sesame resolves object names to J2000 coordinates with the CDS
// Sesame name resolver.
package sesame

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"celestial-chart/internal/providers/resilient"
)

// API Docs: https://cds.unistra.fr/cgi-bin/Sesame
// Sample request: https://cds.unistra.fr/cgi-bin/nph-sesame/-oI/SNV?M31
const (
	baseURL = "https://cds.unistra.fr/cgi-bin/nph-sesame/-oI/SNV"
)

// ErrNotFound is returned when no resolver knows the name.
var ErrNotFound = errors.New("object not found")

type Client struct {
	httpClient *resilient.Client
	baseURL    string
}

func NewClient() *Client {
	return NewClientWithConfig(baseURL, 10*time.Second)
}

// NewClientWithConfig creates a client for a custom endpoint, e.g. a mirror.
func NewClientWithConfig(endpoint string, timeout time.Duration) *Client {
	return &Client{
		httpClient: resilient.New("sesame", &http.Client{Timeout: timeout}, resilient.DefaultBackoff),
		baseURL:    endpoint,
	}
}

// Resolve returns the J2000 right ascension and declination of name in degrees.
func (c *Client) Resolve(ctx context.Context, name string) (raDeg, decDeg float64, err error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, 0, ErrNotFound
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse base URL: %w", err)
	}
	// The resolver reads the raw query as the name, so '+' must not decode to a space.
	u.RawQuery = strings.ReplaceAll(url.QueryEscape(name), "+", "%20")

	resp, err := c.httpClient.Do(ctx, func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to resolve %q: %w", name, err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	raDeg, decDeg, err = parse(resp.Body)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to resolve %q: %w", name, err)
	}
	return raDeg, decDeg, nil
}

// parse reads the first "%J <ra> <dec>" line of a Sesame plain-text answer.
func parse(r io.Reader) (raDeg, decDeg float64, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "%J ") {
			continue
		}

		fields := strings.Fields(strings.TrimPrefix(line, "%J "))
		if len(fields) < 2 {
			return 0, 0, fmt.Errorf("malformed position line %q", line)
		}
		raDeg, err = strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return 0, 0, fmt.Errorf("malformed right ascension %q: %w", fields[0], err)
		}
		decDeg, err = strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return 0, 0, fmt.Errorf("malformed declination %q: %w", fields[1], err)
		}
		if raDeg < 0 || raDeg >= 360 || decDeg < -90 || decDeg > 90 {
			return 0, 0, fmt.Errorf("position out of range: %g %g", raDeg, decDeg)
		}
		return raDeg, decDeg, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, fmt.Errorf("failed to read response: %w", err)
	}
	return 0, 0, ErrNotFound
}
