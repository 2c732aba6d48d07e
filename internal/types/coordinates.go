package types

import "github.com/paulmach/orb"

// Coords is a validated observer position in decimal degrees.
type Coords struct {
	Latitude  float64
	Longitude float64
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Point returns the coordinates in GeoJSON order (longitude, latitude).
func (c Coords) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}
