package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRecorder_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := New()

	router := gin.New()
	router.Use(rec.Middleware())
	router.GET("/download/:filename", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	router.GET("/metrics", gin.WrapH(rec.Handler()))

	for _, name := range []string{"a.png", "b.png"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/download/"+name, nil))
	}
	rec.BodyFailed("pluto")
	rec.TimezoneFallback()
	rec.FilesReaped(3)
	rec.ObserveRender(120 * time.Millisecond)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(w.Body)
	out := string(body)

	tests := []string{
		`celestial_chart_http_requests_total{code="404",method="GET",path="/download/:filename"} 2`,
		`celestial_chart_body_failures_total{body="pluto"} 1`,
		`celestial_chart_timezone_fallbacks_total 1`,
		`celestial_chart_files_reaped_total 3`,
		`celestial_chart_render_duration_seconds_count 1`,
	}
	for _, want := range tests {
		if !strings.Contains(out, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var rec *Recorder
	rec.BodyFailed("sun")
	rec.TimezoneFallback()
	rec.FilesReaped(1)
	rec.ObserveRender(time.Second)
	if rec.Handler() == nil {
		t.Error("Handler() = nil")
	}
}
