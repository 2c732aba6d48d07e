// Package chart runs the altitude chart pipeline: validate, resolve the
// timezone, sample positions, render and persist.
package chart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"celestial-chart/internal/metrics"
	"celestial-chart/internal/render"
	"celestial-chart/internal/sky"
	"celestial-chart/internal/timezone"
	"celestial-chart/internal/types"
	"celestial-chart/internal/validation"
)

var (
	// ErrNoSeries is matched by SeriesError when every requested body failed.
	ErrNoSeries = errors.New("no celestial body could be computed")
	// ErrRender wraps failures to draw the chart.
	ErrRender = errors.New("failed to render chart")
	// ErrPersist wraps failures to store the chart.
	ErrPersist = errors.New("failed to store chart")
)

// SeriesError carries the per-body results when none succeeded.
type SeriesError struct {
	Bodies []sky.BodyResult
}

func (e *SeriesError) Error() string {
	return fmt.Sprintf("%s: %d bodies failed", ErrNoSeries, len(e.Bodies))
}

func (e *SeriesError) Unwrap() error {
	return ErrNoSeries
}

// Store persists rendered charts and returns their public name.
type Store interface {
	Save(data []byte) (string, error)
}

// Geocoder names the place at a coordinate for the chart subtitle.
type Geocoder interface {
	ReverseLookup(ctx context.Context, coords types.Coords) (types.LocationInfo, error)
}

// Options configures sampling, validation limits and image output.
type Options struct {
	Samples      int
	ScaleSamples bool
	Validation   validation.Options
	Render       render.Options
}

// Result is a rendered chart and the per-body outcomes it was drawn from.
type Result struct {
	Image    []byte
	Bodies   []sky.BodyResult
	Zone     timezone.Zone
	Location types.LocationInfo
	// Artifact is the stored file name, empty when persistence is disabled.
	Artifact string
}

// Option customizes a Service.
type Option func(*Service)

// WithStore persists every rendered chart.
func WithStore(store Store) Option {
	return func(s *Service) { s.store = store }
}

// WithGeocoder adds the observer's place name as a subtitle.
func WithGeocoder(g Geocoder) Option {
	return func(s *Service) { s.geocoder = g }
}

// WithMetrics records pipeline metrics.
func WithMetrics(r *metrics.Recorder) Option {
	return func(s *Service) { s.metrics = r }
}

// WithClock overrides the clock used for the default window start.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// Service produces altitude charts.
type Service struct {
	timezones timezone.Service
	sampler   *sky.Sampler
	store     Store
	geocoder  Geocoder
	metrics   *metrics.Recorder
	opts      Options
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates a chart service.
func NewService(timezones timezone.Service, sampler *sky.Sampler, opts Options, logger *slog.Logger, options ...Option) *Service {
	s := &Service{
		timezones: timezones,
		sampler:   sampler,
		opts:      opts,
		logger:    logger.With("component", "chart-service"),
		now:       time.Now,
	}
	for _, o := range options {
		o(s)
	}
	return s
}

// Generate validates in and renders its chart. Validation failures are
// returned as validation.Errors before any computation happens.
func (s *Service) Generate(ctx context.Context, in validation.Input) (*Result, error) {
	req, err := validation.Validate(in, s.opts.Validation, s.now())
	if err != nil {
		return nil, err
	}
	return s.Compute(ctx, req)
}

// Series resolves the zone and samples every body of a validated request.
func (s *Service) Series(ctx context.Context, req validation.Request) (timezone.Zone, []sky.BodyResult) {
	zone := s.timezones.Resolve(req.Coords)
	if zone.Fallback {
		s.metrics.TimezoneFallback()
	}

	n := req.Window.SampleCount(s.opts.Samples, s.opts.ScaleSamples)
	results := s.sampler.Sample(ctx, req.Coords, req.Window, n, req.Bodies)
	for i, r := range results {
		if !r.OK() {
			s.metrics.BodyFailed(req.Bodies[i].Label())
		}
	}
	return zone, results
}

// Compute renders a chart for a validated request. When every body fails a
// *SeriesError is returned and nothing is rendered.
func (s *Service) Compute(ctx context.Context, req validation.Request) (*Result, error) {
	start := time.Now()

	zone, results := s.Series(ctx, req)
	if !anyOK(results) {
		return nil, &SeriesError{Bodies: results}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	location := s.lookupPlace(ctx, req.Coords)

	ropts := s.opts.Render
	ropts.Subtitle = location.Label()
	img, err := render.Render(zone, results, ropts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}

	result := &Result{
		Image:    img,
		Bodies:   results,
		Zone:     zone,
		Location: location,
	}

	if s.store != nil {
		name, err := s.store.Save(img)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPersist, err)
		}
		result.Artifact = name
	}

	s.metrics.ObserveRender(time.Since(start))
	s.logger.Info("chart generated",
		"bodies", len(results),
		"timezone", zone.Name,
		"timezone_fallback", zone.Fallback,
		"hours", req.Window.Hours,
		"artifact", result.Artifact,
	)
	return result, nil
}

func (s *Service) lookupPlace(ctx context.Context, coords types.Coords) types.LocationInfo {
	if s.geocoder == nil {
		return types.LocationInfo{}
	}
	info, err := s.geocoder.ReverseLookup(ctx, coords)
	if err != nil {
		s.logger.Warn("reverse geocoding failed",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return types.LocationInfo{}
	}
	return info
}

func anyOK(results []sky.BodyResult) bool {
	for _, r := range results {
		if r.OK() {
			return true
		}
	}
	return false
}

// BodyStatus is the per-body status reported to clients: "success" or
// "Error: <reason>".
func BodyStatus(r sky.BodyResult) string {
	if r.OK() {
		return "success"
	}
	err := r.Err
	var bodyErr *sky.BodyError
	if errors.As(err, &bodyErr) {
		err = bodyErr.Err
	}
	if err == nil {
		return "Error: no data"
	}
	return "Error: " + err.Error()
}

// BodyStatuses maps every body name to its BodyStatus.
func BodyStatuses(results []sky.BodyResult) map[string]string {
	out := make(map[string]string, len(results))
	for _, r := range results {
		out[r.Body] = BodyStatus(r)
	}
	return out
}
