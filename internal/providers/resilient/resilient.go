// Package resilient wraps outbound HTTP calls with retries, exponential
// backoff and a circuit breaker.
package resilient

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// BackoffConfig controls exponential backoff behaviour.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultBackoff is used by the providers of this module.
var DefaultBackoff = BackoffConfig{
	MaxRetries:      2,
	InitialInterval: 250 * time.Millisecond,
	MaxInterval:     2 * time.Second,
}

var (
	ErrRateLimited = errors.New("rate limited")
	ErrServerError = errors.New("server error")
	ErrUnexpected  = errors.New("unexpected status code")
	ErrCircuitOpen = errors.New("circuit breaker open")

	errNoHTTPClient  = errors.New("http client not configured")
	errInvalidConfig = errors.New("invalid backoff configuration")
)

// Client executes requests against one upstream.
type Client struct {
	http    *http.Client
	backoff BackoffConfig
	cb      *gobreaker.CircuitBreaker
}

// New creates a client whose circuit breaker is named after the upstream.
func New(name string, httpClient *http.Client, backoff BackoffConfig) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		http:    httpClient,
		backoff: backoff,
		cb:      cb,
	}
}

// Do executes the request built by buildRequest, retrying transport errors,
// rate limiting and 5xx responses. Any non-2xx status is an error. The caller
// owns the returned response body.
func (c *Client) Do(ctx context.Context, buildRequest func(ctx context.Context) (*http.Request, error)) (*http.Response, error) {
	if c.http == nil {
		return nil, errNoHTTPClient
	}
	if c.backoff.MaxRetries < 0 || c.backoff.InitialInterval <= 0 {
		return nil, errInvalidConfig
	}

	var attempt int
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := buildRequest(ctx)
		if err != nil {
			return nil, err
		}

		result, err := c.cb.Execute(func() (interface{}, error) {
			resp, execErr := c.http.Do(req)
			if execErr != nil {
				return nil, execErr
			}

			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				_ = resp.Body.Close()
				switch {
				case resp.StatusCode == http.StatusTooManyRequests:
					return nil, ErrRateLimited
				case resp.StatusCode >= 500:
					return nil, fmt.Errorf("%w: %d", ErrServerError, resp.StatusCode)
				default:
					return nil, fmt.Errorf("%w: %d", ErrUnexpected, resp.StatusCode)
				}
			}

			return resp, nil
		})
		if err == nil {
			resp, ok := result.(*http.Response)
			if !ok {
				return nil, fmt.Errorf("unexpected result type from circuit breaker")
			}
			return resp, nil
		}

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", ErrCircuitOpen, err)
		}
		// Client errors will not improve on retry.
		if errors.Is(err, ErrUnexpected) || attempt >= c.backoff.MaxRetries {
			return nil, err
		}

		delay := c.backoff.InitialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if c.backoff.MaxInterval > 0 && delay > c.backoff.MaxInterval {
			delay = c.backoff.MaxInterval
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		attempt++
	}
}
