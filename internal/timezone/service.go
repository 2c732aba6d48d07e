package timezone

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"celestial-chart/internal/types"

	"github.com/ringsaturn/tzf"
)

// UTCName is the zone used whenever a coordinate cannot be resolved.
const UTCName = "UTC"

// Zone is the outcome of resolving an observer's timezone.
type Zone struct {
	Name     string
	Location *time.Location
	// Fallback is set when the lookup failed and UTC was substituted.
	Fallback bool
	Reason   string
}

// Service provides timezone lookup functionality
type Service interface {
	// GetTimezone returns the IANA name for the coordinates or an error.
	GetTimezone(latitude, longitude float64) (string, error)
	// Resolve never fails: lookup or load failures degrade to UTC with Fallback set.
	Resolve(coords types.Coords) Zone
}

// Finder is the subset of tzf.F the service uses.
type Finder interface {
	GetTimezoneName(lng float64, lat float64) string
}

// service implements timezone lookup using tzf
type service struct {
	finder Finder
	logger *slog.Logger
	mu     sync.RWMutex
}

var (
	finder     Finder
	finderErr  error
	finderOnce sync.Once
)

// NewService creates a timezone service backed by the shared tzf finder.
// The finder is loaded once per process because it keeps the polygon data in memory.
func NewService(logger *slog.Logger) (Service, error) {
	finderOnce.Do(func() {
		f, err := tzf.NewDefaultFinder()
		if err != nil {
			finderErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		finder = f
	})
	if finderErr != nil {
		return nil, finderErr
	}
	return NewServiceWithFinder(finder, logger), nil
}

// NewServiceWithFinder creates a service with a custom finder.
// This is useful for testing fallback behaviour.
func NewServiceWithFinder(f Finder, logger *slog.Logger) Service {
	return &service{
		finder: f,
		logger: logger.With("component", "timezone-service"),
	}
}

// GetTimezone returns the IANA timezone name for the given coordinates
// Returns timezone names like "America/Denver", "Asia/Taipei", etc.
func (s *service) GetTimezone(latitude, longitude float64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := types.NewCoords(latitude, longitude).Point()
	name := s.finder.GetTimezoneName(p.Lon(), p.Lat())
	if name == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", latitude, longitude)
	}

	return name, nil
}

func (s *service) Resolve(coords types.Coords) Zone {
	name, err := s.GetTimezone(coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Warn("timezone lookup failed, using UTC",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return utcFallback(err.Error())
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		s.logger.Error("failed to load timezone, using UTC",
			"timezone", name,
			"error", err,
		)
		return utcFallback(fmt.Sprintf("failed to load timezone %q: %v", name, err))
	}

	s.logger.Debug("resolved timezone",
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
		"timezone", name,
	)
	return Zone{Name: name, Location: loc}
}

func utcFallback(reason string) Zone {
	return Zone{
		Name:     UTCName,
		Location: time.UTC,
		Fallback: true,
		Reason:   reason,
	}
}
