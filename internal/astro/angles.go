package astro

import "math"

const (
	deg = math.Pi / 180.0

	// earthRadiusAU is the WGS-84 equatorial radius expressed in astronomical units.
	earthRadiusAU = 6378.137 / 149597870.7
)

// normalize reduces an angle in radians to [0, 2π).
func normalize(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// normalizeSigned reduces an angle in radians to (-π, π].
func normalizeSigned(a float64) float64 {
	a = normalize(a)
	if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// Separation returns the angular distance in radians between two equatorial positions.
func Separation(a, b Equatorial) float64 {
	c := math.Sin(a.Dec)*math.Sin(b.Dec) + math.Cos(a.Dec)*math.Cos(b.Dec)*math.Cos(a.RA-b.RA)
	return math.Acos(clamp(c, -1, 1))
}
