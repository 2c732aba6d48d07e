package resilient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

var fastBackoff = BackoffConfig{MaxRetries: 2, InitialInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}

func getter(url string) func(ctx context.Context) (*http.Request, error) {
	return func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	}
}

func TestClient_Do(t *testing.T) {
	tests := []struct {
		name      string
		statuses  []int
		wantErr   error
		wantCalls int32
	}{
		{"success", []int{http.StatusOK}, nil, 1},
		{"retries server errors", []int{http.StatusBadGateway, http.StatusOK}, nil, 2},
		{"retries rate limiting", []int{http.StatusTooManyRequests, http.StatusOK}, nil, 2},
		{"gives up after retries", []int{500, 500, 500}, ErrServerError, 3},
		{"does not retry client errors", []int{http.StatusNotFound}, ErrUnexpected, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				n := calls.Add(1)
				w.WriteHeader(tt.statuses[int(n)-1])
			}))
			defer srv.Close()

			c := New(tt.name, srv.Client(), fastBackoff)
			resp, err := c.Do(context.Background(), getter(srv.URL))
			if resp != nil {
				_ = resp.Body.Close()
			}

			if tt.wantErr == nil && err != nil {
				t.Fatalf("Do() error = %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Do() error = %v, want %v", err, tt.wantErr)
			}
			if got := calls.Load(); got != tt.wantCalls {
				t.Errorf("calls = %d, want %d", got, tt.wantCalls)
			}
		})
	}
}

func TestClient_Do_CircuitOpens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New("flaky", srv.Client(), BackoffConfig{MaxRetries: 0, InitialInterval: time.Millisecond})

	var err error
	// The default breaker trips after more than five consecutive failures.
	for i := 0; i < 7; i++ {
		_, err = c.Do(context.Background(), getter(srv.URL))
	}
	if !errors.Is(err, ErrCircuitOpen) {
		t.Errorf("Do() error = %v, want %v", err, ErrCircuitOpen)
	}
}

func TestClient_Do_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New("cancelled", http.DefaultClient, fastBackoff)
	if _, err := c.Do(ctx, getter("http://127.0.0.1:1")); !errors.Is(err, context.Canceled) {
		t.Errorf("Do() error = %v, want context.Canceled", err)
	}
}
