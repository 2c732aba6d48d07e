package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"celestial-chart/internal/config"
	"celestial-chart/internal/metrics"
	"celestial-chart/internal/timezone"
)

type staticFinder string

func (f staticFinder) GetTimezoneName(lng, lat float64) string { return string(f) }

type failingCatalog struct{}

func (failingCatalog) Resolve(ctx context.Context, name string) (float64, float64, error) {
	return 0, 0, errors.New("object not found")
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{Port: 9862, GinMode: "test", ReadTimeout: time.Second, WriteTimeout: time.Second},
		Log:    config.LogConfig{Level: "error", Format: "text"},
		Chart: config.ChartConfig{
			Samples:      24,
			DefaultHours: 24,
			MaxHours:     24,
			Width:        4,
			Height:       3,
			DPI:          50,
		},
		Artifacts: config.ArtifactConfig{
			Enabled:      true,
			Dir:          t.TempDir(),
			Retention:    time.Hour,
			ReapInterval: time.Hour,
		},
	}
}

func newTestApp(t *testing.T, svc services) *App {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if svc.timezones == nil {
		svc.timezones = timezone.NewServiceWithFinder(staticFinder("Asia/Taipei"), logger)
	}
	app, err := newApp(testConfig(t), logger, metrics.New(), svc)
	if err != nil {
		t.Fatalf("newApp() error = %v", err)
	}
	return app
}

func postChart(app *App, path, body string, mutate func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if mutate != nil {
		mutate(req)
	}
	w := httptest.NewRecorder()
	app.Handler().ServeHTTP(w, req)
	return w
}

func get(app *App, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	app.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHandlePing(t *testing.T) {
	app := newTestApp(t, services{})

	w := get(app, "/ping")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp PingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if resp.Message != "pong" {
		t.Errorf("Message = %q, want pong", resp.Message)
	}
}

func TestHandleCelestialChart_Success(t *testing.T) {
	app := newTestApp(t, services{})

	for _, path := range []string{"/celestial-chart", "/"} {
		t.Run(path, func(t *testing.T) {
			w := postChart(app, path, `{"bodies": ["sun", "moon"], "latitude": "25.03", "longitude": 121.56, "hours": 12}`, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
			}

			var resp ChartResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if resp.Status != "success" || resp.Timezone != "Asia/Taipei" || resp.TimezoneFallback {
				t.Errorf("resp = %+v", resp)
			}
			if resp.BodyResults["sun"] != "success" || resp.BodyResults["moon"] != "success" {
				t.Errorf("BodyResults = %v", resp.BodyResults)
			}

			img, err := base64.StdEncoding.DecodeString(resp.ImageBase64)
			if err != nil {
				t.Fatalf("DecodeString() error = %v", err)
			}
			if !bytes.HasPrefix(img, []byte("\x89PNG")) {
				t.Error("image_base64 is not a PNG")
			}

			if !strings.HasPrefix(resp.ImageURL, "/download/") {
				t.Fatalf("ImageURL = %q", resp.ImageURL)
			}
			dl := get(app, resp.ImageURL)
			if dl.Code != http.StatusOK {
				t.Fatalf("download status = %d", dl.Code)
			}
			if !bytes.Equal(dl.Body.Bytes(), img) {
				t.Error("downloaded chart differs from image_base64")
			}
			if cd := dl.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
				t.Errorf("Content-Disposition = %q", cd)
			}

			static := get(app, strings.Replace(resp.ImageURL, "/download/", "/static/", 1))
			if static.Code != http.StatusOK {
				t.Errorf("static status = %d", static.Code)
			}
		})
	}
}

func TestHandleCelestialChart_Rejected(t *testing.T) {
	app := newTestApp(t, services{})

	tests := []struct {
		name        string
		body        string
		mutate      func(*http.Request)
		wantMessage string
	}{
		{
			name:        "out of range",
			body:        `{"bodies": ["sun"], "latitude": 100, "longitude": 0}`,
			wantMessage: "Latitude is out of range (-90 to 90).",
		},
		{
			name:        "unsupported bodies listed",
			body:        `{"bodies": ["sun", "pluto", "vulcan"], "latitude": 0, "longitude": 0}`,
			wantMessage: "Unsupported celestial bodies: pluto, vulcan.",
		},
		{
			name:        "malformed json",
			body:        `{"bodies": "sun"`,
			wantMessage: "Request body must be valid JSON.",
		},
		{
			name:        "query language",
			body:        `{"bodies": [], "latitude": 0, "longitude": 0}`,
			mutate:      func(r *http.Request) { r.URL.RawQuery = "lang=zh" },
			wantMessage: "請至少選擇一個天體。",
		},
		{
			name:        "cookie language",
			body:        `{"bodies": [], "latitude": 0, "longitude": 0}`,
			mutate:      func(r *http.Request) { r.AddCookie(&http.Cookie{Name: langCookie, Value: "zh"}) },
			wantMessage: "請至少選擇一個天體。",
		},
		{
			name:        "accept-language",
			body:        `{"bodies": ["sun"], "latitude": 0, "longitude": 0, "hours": 48}`,
			mutate:      func(r *http.Request) { r.Header.Set("Accept-Language", "zh-TW,zh;q=0.9") },
			wantMessage: "時數必須大於 0 且不超過 24。",
		},
		{
			name: "query wins over cookie",
			body: `{"bodies": [], "latitude": 0, "longitude": 0}`,
			mutate: func(r *http.Request) {
				r.URL.RawQuery = "lang=en"
				r.AddCookie(&http.Cookie{Name: langCookie, Value: "zh"})
			},
			wantMessage: "Select at least one celestial body.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postChart(app, "/celestial-chart", tt.body, tt.mutate)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400, body = %s", w.Code, w.Body.String())
			}
			var resp ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if resp.Status != "error" || resp.Message != tt.wantMessage {
				t.Errorf("resp = %+v, want message %q", resp, tt.wantMessage)
			}
		})
	}
}

func TestHandleCelestialChart_PartialAndTotalFailure(t *testing.T) {
	app := newTestApp(t, services{catalog: failingCatalog{}})

	w := postChart(app, "/celestial-chart", `{"bodies": ["sun", "M31"], "latitude": 25, "longitude": 121}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("partial: status = %d, body = %s", w.Code, w.Body.String())
	}
	var ok ChartResponse
	if err := json.Unmarshal(w.Body.Bytes(), &ok); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if ok.BodyResults["sun"] != "success" || !strings.HasPrefix(ok.BodyResults["M31"], "Error: ") {
		t.Errorf("partial BodyResults = %v", ok.BodyResults)
	}

	w = postChart(app, "/celestial-chart", `{"bodies": ["M31", "M42"], "latitude": 25, "longitude": 121}`, nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("total: status = %d, want 500", w.Code)
	}
	var failed ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &failed); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(failed.BodyResults) != 2 || failed.Status != "error" {
		t.Errorf("total resp = %+v", failed)
	}
}

func TestHandleCelestialChart_TimezoneFallback(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := newTestApp(t, services{timezones: timezone.NewServiceWithFinder(staticFinder(""), logger)})

	w := postChart(app, "/celestial-chart", `{"bodies": ["sun"], "latitude": 0, "longitude": -150}`, nil)
	var resp ChartResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if resp.Timezone != timezone.UTCName || !resp.TimezoneFallback {
		t.Errorf("Timezone = %q fallback = %v, want UTC fallback", resp.Timezone, resp.TimezoneFallback)
	}
}

func TestHandleDownload_Errors(t *testing.T) {
	app := newTestApp(t, services{})

	tests := []struct {
		path string
		want int
	}{
		{"/download/notes.txt", http.StatusBadRequest},
		{"/download/.hidden.png", http.StatusBadRequest},
		{"/download/celestial_chart_missing.png", http.StatusNotFound},
		{"/static/celestial_chart_missing.png", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if w := get(app, tt.path); w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestHandleChangeLanguage(t *testing.T) {
	app := newTestApp(t, services{})

	w := get(app, "/change_language/zh")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != langCookie || cookies[0].Value != "zh" {
		t.Errorf("cookies = %v, want lang=zh", cookies)
	}

	if w := get(app, "/change_language/fr"); w.Code != http.StatusBadRequest {
		t.Errorf("unsupported language status = %d, want 400", w.Code)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	app := newTestApp(t, services{})

	tests := []struct {
		path string
		want string
	}{
		{"/healthz", `"status":"ok"`},
		{"/readyz", `"artifacts":"ok"`},
		{"/metrics", "celestial_chart_http_requests_total"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(app, tt.path)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.want) {
				t.Errorf("body = %s, want %q", w.Body.String(), tt.want)
			}
		})
	}
}

func TestApp_StartStop(t *testing.T) {
	app := newTestApp(t, services{})
	if err := app.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	app.Stop()
}

func TestHandleGetObserver(t *testing.T) {
	app := newTestApp(t, services{})

	tests := []struct {
		name        string
		path        string
		want        int
		wantMessage string
	}{
		{name: "valid", path: "/observer?latitude=25.03&longitude=121.56", want: http.StatusOK},
		{name: "zero coordinates", path: "/observer?latitude=0&longitude=0", want: http.StatusOK},
		{name: "missing longitude", path: "/observer?latitude=25.03", want: http.StatusBadRequest,
			wantMessage: "Longitude must be a number."},
		{name: "not a number", path: "/observer?latitude=north&longitude=0", want: http.StatusBadRequest,
			wantMessage: "Latitude must be a number."},
		{name: "out of range", path: "/observer?latitude=95&longitude=0", want: http.StatusBadRequest,
			wantMessage: "Latitude is out of range (-90 to 90)."},
		{name: "out of range in chinese", path: "/observer?latitude=95&longitude=0&lang=zh", want: http.StatusBadRequest,
			wantMessage: "緯度超出範圍（-90 至 90）。"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(app, tt.path)
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d, body = %s", w.Code, tt.want, w.Body.String())
			}
			if tt.want != http.StatusOK {
				var resp ErrorResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("Unmarshal() error = %v", err)
				}
				if resp.Message != tt.wantMessage {
					t.Errorf("message = %q, want %q", resp.Message, tt.wantMessage)
				}
				return
			}
			var resp ObserverResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if resp.Timezone != "Asia/Taipei" || resp.Elevation != nil {
				t.Errorf("resp = %+v", resp)
			}
		})
	}
}
