package astro

import (
	"math"
	"time"
)

// Ecliptic holds geocentric ecliptic coordinates (radians) and distance in AU.
type Ecliptic struct {
	Lon, Lat float64
	Distance float64
}

// Equatorial holds geocentric right ascension and declination of date (radians)
// and distance in AU. A zero Distance means "at infinity" (no parallax).
type Equatorial struct {
	RA, Dec  float64
	Distance float64
}

// Horizontal holds topocentric look angles in degrees.
// Azimuth: 0 = North, clockwise. Altitude: 0 = horizon, 90 = zenith.
type Horizontal struct {
	AzimuthDeg  float64
	AltitudeDeg float64
}

// obliquity returns the mean obliquity of the ecliptic of date in radians.
func obliquity(jd float64) float64 {
	return (23.439291 - 0.0130042*centuries(jd)) * deg
}

// precessionLon returns the general precession in ecliptic longitude from J2000.0
// to the given date, in radians.
func precessionLon(jd float64) float64 {
	return 1.3969713 * deg * centuries(jd)
}

// ToEquatorial rotates ecliptic-of-date coordinates into the equatorial frame of date.
func (e Ecliptic) ToEquatorial(jd float64) Equatorial {
	eps := obliquity(jd)
	sinEps, cosEps := math.Sin(eps), math.Cos(eps)
	sinLon, cosLon := math.Sin(e.Lon), math.Cos(e.Lon)
	sinLat, cosLat := math.Sin(e.Lat), math.Cos(e.Lat)

	ra := math.Atan2(sinLon*cosEps-(sinLat/cosLat)*sinEps, cosLon)
	dec := math.Asin(clamp(sinLat*cosEps+cosLat*sinEps*sinLon, -1, 1))

	return Equatorial{RA: normalize(ra), Dec: dec, Distance: e.Distance}
}

// toEcliptic is the inverse rotation of ToEquatorial for a given obliquity.
func (q Equatorial) toEcliptic(eps float64) Ecliptic {
	sinEps, cosEps := math.Sin(eps), math.Cos(eps)
	sinRA, cosRA := math.Sin(q.RA), math.Cos(q.RA)
	sinDec, cosDec := math.Sin(q.Dec), math.Cos(q.Dec)

	lon := math.Atan2(sinRA*cosEps+(sinDec/cosDec)*sinEps, cosRA)
	lat := math.Asin(clamp(sinDec*cosEps-cosDec*sinEps*sinRA, -1, 1))

	return Ecliptic{Lon: normalize(lon), Lat: lat, Distance: q.Distance}
}

// Observer is a ground observer in geodetic coordinates (radians).
type Observer struct {
	LatRad, LonRad float64
}

// NewObserver creates an Observer from latitude and east-positive longitude in degrees.
func NewObserver(latDeg, lonDeg float64) Observer {
	return Observer{LatRad: latDeg * deg, LonRad: lonDeg * deg}
}

// ToHorizontal transforms a geocentric equatorial position into the observer's
// horizontal frame at time t. When the distance is known the altitude is
// corrected for diurnal parallax, which matters for the Moon (~1°).
func (o Observer) ToHorizontal(q Equatorial, t time.Time) Horizontal {
	h := LocalSiderealTime(t, o.LonRad) - q.RA

	sinLat, cosLat := math.Sin(o.LatRad), math.Cos(o.LatRad)
	sinDec, cosDec := math.Sin(q.Dec), math.Cos(q.Dec)
	sinH, cosH := math.Sin(h), math.Cos(h)

	alt := math.Asin(clamp(sinLat*sinDec+cosLat*cosDec*cosH, -1, 1))
	az := math.Atan2(-cosDec*sinH, sinDec*cosLat-cosDec*sinLat*cosH)

	if q.Distance > 0 {
		sinPi := clamp(earthRadiusAU/q.Distance, 0, 1)
		alt -= math.Asin(sinPi * math.Cos(alt))
	}

	return Horizontal{
		AzimuthDeg:  normalize(az) / deg,
		AltitudeDeg: clamp(alt/deg, -90, 90),
	}
}
