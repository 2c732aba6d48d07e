package openstreetmap

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"celestial-chart/internal/types"
)

func TestClient_ReverseLookup(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    types.LocationInfo
		wantErr error
	}{
		{
			name: "city",
			body: `{"place_id": 1, "name": "Xinyi District", "address": {"city": "Taipei", "country": "Taiwan", "country_code": "tw"}}`,
			want: types.LocationInfo{Name: "Taipei", Country: "Taiwan", CountryCode: "TW"},
		},
		{
			name: "county fallback",
			body: `{"place_id": 2, "address": {"county": "Pitkin County", "state": "Colorado", "country": "United States", "country_code": "us"}}`,
			want: types.LocationInfo{Name: "Pitkin County", State: "Colorado", Country: "United States", CountryCode: "US"},
		},
		{
			name:    "open ocean",
			body:    `{"error": "Unable to geocode"}`,
			wantErr: ErrNoPlace,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Query().Get("format") != "json" {
					t.Errorf("format = %q, want json", r.URL.Query().Get("format"))
				}
				if r.Header.Get("User-Agent") == "" {
					t.Error("User-Agent header not set")
				}
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClientWithConfig(srv.URL, time.Second)
			got, err := c.ReverseLookup(context.Background(), types.NewCoords(25.03, 121.56))

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ReverseLookup() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReverseLookup() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ReverseLookup() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
