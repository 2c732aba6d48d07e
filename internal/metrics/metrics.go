// Package metrics exposes Prometheus collectors for the chart service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder holds the service collectors. A nil *Recorder discards everything.
type Recorder struct {
	gatherer prometheus.Gatherer

	httpRequestsTotal   *prometheus.CounterVec
	httpDurationSeconds *prometheus.HistogramVec
	renderSeconds       prometheus.Histogram
	bodyFailuresTotal   *prometheus.CounterVec
	tzFallbacksTotal    prometheus.Counter
	filesReapedTotal    prometheus.Counter
}

// New registers the collectors with a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return NewWithRegistry(reg, reg)
}

// NewWithRegistry registers the collectors with reg and serves them from gatherer.
func NewWithRegistry(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		gatherer: gatherer,
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "celestial_chart_http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"path", "method", "code"},
		),
		httpDurationSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "celestial_chart_http_duration_seconds",
				Help:    "HTTP request duration in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),
		renderSeconds: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "celestial_chart_render_duration_seconds",
				Help:    "Time spent sampling and rendering one chart.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
		),
		bodyFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "celestial_chart_body_failures_total",
				Help: "Bodies that could not be sampled.",
			},
			[]string{"body"},
		),
		tzFallbacksTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "celestial_chart_timezone_fallbacks_total",
				Help: "Charts drawn in UTC because the observer's timezone could not be resolved.",
			},
		),
		filesReapedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "celestial_chart_files_reaped_total",
				Help: "Expired chart files deleted by the reaper.",
			},
		),
	}
}

// Handler returns the Prometheus metrics HTTP handler.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}

// Middleware records request count and duration. The route template is used
// as the path label to keep cardinality low.
func (r *Recorder) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if r == nil {
			return
		}
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		code := strconv.Itoa(c.Writer.Status())

		r.httpRequestsTotal.WithLabelValues(path, c.Request.Method, code).Inc()
		r.httpDurationSeconds.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// ObserveRender records the duration of one chart pipeline run.
func (r *Recorder) ObserveRender(d time.Duration) {
	if r == nil {
		return
	}
	r.renderSeconds.Observe(d.Seconds())
}

// BodyFailed counts a body that could not be sampled. label must come from a
// bounded set; catalog objects share one label.
func (r *Recorder) BodyFailed(label string) {
	if r == nil {
		return
	}
	r.bodyFailuresTotal.WithLabelValues(label).Inc()
}

// TimezoneFallback counts a UTC fallback.
func (r *Recorder) TimezoneFallback() {
	if r == nil {
		return
	}
	r.tzFallbacksTotal.Inc()
}

// FilesReaped counts deleted artifact files.
func (r *Recorder) FilesReaped(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.filesReapedTotal.Add(float64(n))
}
