// Package validation turns raw chart requests into typed, checked values.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"celestial-chart/internal/sky"
	"celestial-chart/internal/types"
)

// Input is the chart request as received from the client.
type Input struct {
	Bodies    []string `json:"bodies"`
	Latitude  RawValue `json:"latitude" swaggertype:"number"`
	Longitude RawValue `json:"longitude" swaggertype:"number"`
	Hours     RawValue `json:"hours" swaggertype:"number"`
	Start     string   `json:"start,omitempty"`
}

// Request is a validated chart request.
type Request struct {
	Coords types.Coords
	Window types.TimeWindow
	Bodies []sky.Body
}

// Options controls the limits applied by Validate.
type Options struct {
	// DefaultHours is used when hours is omitted.
	DefaultHours float64
	// MaxHours caps the window; 0 disables the cap.
	MaxHours float64
	// AllowDeepSky accepts names outside the solar system as catalog objects.
	AllowDeepSky bool
}

var validate = validator.New()

// Validate checks every field of in and returns either a Request or Errors
// listing all failures. now is the window start when in.Start is empty.
func Validate(in Input, opts Options, now time.Time) (Request, error) {
	coords, errs := coordinates(in.Latitude, in.Longitude)

	hours := opts.DefaultHours
	if in.Hours.IsSet() {
		h, err := in.Hours.Float()
		switch {
		case err != nil:
			errs = append(errs, &FieldError{Kind: InvalidNumber, Field: FieldHours})
		case h <= 0 || (opts.MaxHours > 0 && h > opts.MaxHours):
			errs = append(errs, &FieldError{Kind: InvalidWindow, Field: FieldHours, Max: opts.MaxHours})
		default:
			hours = h
		}
	}

	start := now
	if s := strings.TrimSpace(in.Start); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			errs = append(errs, &FieldError{Kind: InvalidStart, Field: FieldStart})
		} else {
			start = t
		}
	}

	bodies, bodyErr := selectBodies(in.Bodies, opts.AllowDeepSky)
	if bodyErr != nil {
		errs = append(errs, bodyErr)
	}

	if len(errs) > 0 {
		return Request{}, errs
	}

	return Request{
		Coords: coords,
		Window: types.TimeWindow{Start: start.UTC(), Hours: hours},
		Bodies: bodies,
	}, nil
}

// ValidateCoords checks a latitude/longitude pair on its own, returning Errors
// when either value is missing, not a number or out of range.
func ValidateCoords(latitude, longitude RawValue) (types.Coords, error) {
	coords, errs := coordinates(latitude, longitude)
	if len(errs) > 0 {
		return types.Coords{}, errs
	}
	return coords, nil
}

func coordinates(latitude, longitude RawValue) (types.Coords, Errors) {
	var errs Errors
	lat, err := coordinate(latitude, FieldLatitude, -90, 90)
	if err != nil {
		errs = append(errs, err)
	}
	lon, err := coordinate(longitude, FieldLongitude, -180, 180)
	if err != nil {
		errs = append(errs, err)
	}
	return types.NewCoords(lat, lon), errs
}

func coordinate(v RawValue, field string, min, max float64) (float64, *FieldError) {
	f, err := v.Float()
	if err != nil {
		return 0, &FieldError{Kind: InvalidNumber, Field: field}
	}
	if validate.Var(f, fmt.Sprintf("gte=%g,lte=%g", min, max)) != nil {
		return 0, &FieldError{Kind: OutOfRange, Field: field, Min: min, Max: max}
	}
	return f, nil
}

func selectBodies(names []string, allowDeepSky bool) ([]sky.Body, *FieldError) {
	seen := make(map[string]bool, len(names))
	var (
		bodies      []sky.Body
		unsupported []string
	)

	for _, name := range names {
		key := sky.NormalizeName(name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true

		if b, ok := sky.Lookup(key); ok {
			bodies = append(bodies, b)
			continue
		}
		if allowDeepSky {
			bodies = append(bodies, sky.DeepSky(name))
			continue
		}
		unsupported = append(unsupported, strings.TrimSpace(name))
	}

	switch {
	case len(unsupported) > 0:
		return nil, &FieldError{Kind: UnsupportedBody, Field: FieldBodies, Bodies: unsupported}
	case len(bodies) == 0:
		return nil, &FieldError{Kind: EmptySelection, Field: FieldBodies}
	default:
		return bodies, nil
	}
}
