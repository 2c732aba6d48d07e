package types

const FeetToMeters = 0.3048

// Elevation is a height above sea level
type Elevation struct {
	Feet   float64 `json:"feet"`
	Meters float64 `json:"meters"`
}

func NewElevationFromMeters(meters float64) Elevation {
	return Elevation{
		Meters: meters,
		Feet:   meters / FeetToMeters,
	}
}
