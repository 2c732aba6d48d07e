package sky

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"celestial-chart/internal/astro"
	"celestial-chart/internal/types"
)

// ErrNoCatalog is returned for deep-sky bodies when no catalog is configured.
var ErrNoCatalog = errors.New("deep-sky catalog lookup is disabled")

// Catalog resolves a named deep-sky object to its J2000 position in degrees.
type Catalog interface {
	Resolve(ctx context.Context, name string) (raDeg, decDeg float64, err error)
}

// Sample is one point of an altitude series.
type Sample struct {
	Time        time.Time `json:"time"`
	AltitudeDeg float64   `json:"altitude"`
	AzimuthDeg  float64   `json:"azimuth"`
}

// AltitudeSeries is the altitude curve of one body over the request window.
type AltitudeSeries struct {
	Body    string
	Samples []Sample
}

// BodyError records why a single body could not be sampled.
type BodyError struct {
	Body string
	Err  error
}

func (e *BodyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Body, e.Err)
}

func (e *BodyError) Unwrap() error {
	return e.Err
}

// BodyResult is either a series or an error for one requested body.
type BodyResult struct {
	Body   string
	Series *AltitudeSeries
	Err    error
}

// OK reports whether the body was sampled successfully.
func (r BodyResult) OK() bool {
	return r.Err == nil && r.Series != nil
}

// Sampler computes altitude series for bodies seen from an observer.
type Sampler struct {
	catalog Catalog
	logger  *slog.Logger
}

// NewSampler creates a sampler. catalog may be nil, in which case deep-sky
// bodies fail with ErrNoCatalog.
func NewSampler(catalog Catalog, logger *slog.Logger) *Sampler {
	return &Sampler{
		catalog: catalog,
		logger:  logger.With("component", "sampler"),
	}
}

// Sample returns one result per body, in the order given. Every successful
// series shares the same timestamps. A failing body never affects the others.
func (s *Sampler) Sample(ctx context.Context, coords types.Coords, window types.TimeWindow, n int, bodies []Body) []BodyResult {
	timestamps := window.Timestamps(n)
	observer := astro.NewObserver(coords.Latitude, coords.Longitude)

	results := make([]BodyResult, 0, len(bodies))
	for _, body := range bodies {
		series, err := s.sampleBody(ctx, observer, timestamps, body)
		if err != nil {
			s.logger.Warn("body computation failed",
				"body", body.Name,
				"error", err,
			)
			results = append(results, BodyResult{Body: body.Name, Err: &BodyError{Body: body.Name, Err: err}})
			continue
		}
		results = append(results, BodyResult{Body: body.Name, Series: series})
	}
	return results
}

func (s *Sampler) sampleBody(ctx context.Context, observer astro.Observer, timestamps []time.Time, body Body) (series *AltitudeSeries, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ephemeris panic: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	position, err := s.positionFunc(ctx, body)
	if err != nil {
		return nil, err
	}

	samples := make([]Sample, len(timestamps))
	for k, ts := range timestamps {
		eq, err := position(astro.JulianDate(ts))
		if err != nil {
			return nil, err
		}
		h := observer.ToHorizontal(eq, ts)
		if math.IsNaN(h.AltitudeDeg) || math.IsInf(h.AltitudeDeg, 0) {
			return nil, fmt.Errorf("non-finite altitude at %s", ts.Format(time.RFC3339))
		}
		samples[k] = Sample{Time: ts, AltitudeDeg: h.AltitudeDeg, AzimuthDeg: h.AzimuthDeg}
	}

	return &AltitudeSeries{Body: body.Name, Samples: samples}, nil
}

type positionFunc func(jd float64) (astro.Equatorial, error)

func (s *Sampler) positionFunc(ctx context.Context, body Body) (positionFunc, error) {
	switch body.Kind {
	case KindSun:
		return func(jd float64) (astro.Equatorial, error) { return astro.SunPosition(jd), nil }, nil
	case KindMoon:
		return func(jd float64) (astro.Equatorial, error) { return astro.MoonPosition(jd), nil }, nil
	case KindPlanet:
		return func(jd float64) (astro.Equatorial, error) { return astro.PlanetPosition(body.planet, jd) }, nil
	case KindDeepSky:
		if s.catalog == nil {
			return nil, ErrNoCatalog
		}
		ra, dec, err := s.catalog.Resolve(ctx, body.Name)
		if err != nil {
			return nil, fmt.Errorf("catalog lookup failed: %w", err)
		}
		s.logger.Debug("resolved deep-sky object", "body", body.Name, "ra", ra, "dec", dec)
		return func(jd float64) (astro.Equatorial, error) { return astro.FixedPosition(ra, dec, jd), nil }, nil
	default:
		return nil, fmt.Errorf("unknown body kind %d", body.Kind)
	}
}
