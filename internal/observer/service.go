// Package observer describes an observing site from its coordinates.
package observer

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"celestial-chart/internal/timezone"
	"celestial-chart/internal/types"
)

var (
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
)

// Service provides site metadata for chart observers
type Service interface {
	// Describe resolves timezone, place name and elevation for a coordinate.
	Describe(ctx context.Context, coords types.Coords) (*types.ObserverPoint, error)
}

// ElevationProvider defines the interface for elevation data providers
type ElevationProvider interface {
	GetElevation(ctx context.Context, coords types.Coords) (types.Elevation, error)
}

// ReverseGeocodeProvider defines the interface for location data providers
type ReverseGeocodeProvider interface {
	ReverseLookup(ctx context.Context, coords types.Coords) (types.LocationInfo, error)
}

// observerService implements the Service interface
type observerService struct {
	timezones         timezone.Service
	elevationProvider ElevationProvider
	locationProvider  ReverseGeocodeProvider
	logger            *slog.Logger
}

// NewObserverService creates a service. Either provider may be nil, in which
// case the matching field is left empty.
func NewObserverService(
	timezones timezone.Service,
	elevationProvider ElevationProvider,
	locationProvider ReverseGeocodeProvider,
	logger *slog.Logger,
) Service {
	return &observerService{
		timezones:         timezones,
		elevationProvider: elevationProvider,
		locationProvider:  locationProvider,
		logger:            logger.With("component", "observer-service"),
	}
}

// Describe calls the optional providers in parallel. Provider failures are
// logged and leave their field empty; only invalid coordinates are errors.
func (s *observerService) Describe(ctx context.Context, coords types.Coords) (*types.ObserverPoint, error) {
	if coords.Latitude < -90 || coords.Latitude > 90 {
		return nil, ErrInvalidLatitude
	}
	if coords.Longitude < -180 || coords.Longitude > 180 {
		return nil, ErrInvalidLongitude
	}

	var (
		wg        sync.WaitGroup
		elevation *types.Elevation
		location  types.LocationInfo
	)

	if s.elevationProvider != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e, err := s.elevationProvider.GetElevation(ctx, coords)
			if err != nil {
				s.logger.Warn("failed to get elevation", "latitude", coords.Latitude, "longitude", coords.Longitude, "error", err)
				return
			}
			elevation = &e
		}()
	}

	if s.locationProvider != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			info, err := s.locationProvider.ReverseLookup(ctx, coords)
			if err != nil {
				s.logger.Warn("failed to get location", "latitude", coords.Latitude, "longitude", coords.Longitude, "error", err)
				return
			}
			location = info
		}()
	}

	zone := s.timezones.Resolve(coords)
	wg.Wait()

	return &types.ObserverPoint{
		Coordinates:      coords,
		Elevation:        elevation,
		Location:         location,
		Timezone:         zone.Name,
		TimezoneFallback: zone.Fallback,
	}, nil
}
