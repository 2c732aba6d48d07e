package astro

import (
	"math"
	"time"
)

// j2000 is the Julian Date of the J2000.0 epoch (January 1, 2000, 12:00:00 TT).
const j2000 = 2451545.0

// JulianDate converts a time.Time to Julian Date (UTC scale; the ~70 s TT-UT
// difference is below the precision of the low-order theories used here).
func JulianDate(t time.Time) float64 {
	t = t.UTC()
	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())
	h := float64(t.Hour())
	min := float64(t.Minute())
	s := float64(t.Second()) + float64(t.Nanosecond())/1e9

	// Treat Jan/Feb as months 13/14 of the previous year.
	if m <= 2 {
		y -= 1
		m += 12
	}

	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	jd := math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) + d + B - 1524.5
	jd += (h + min/60.0 + s/3600.0) / 24.0

	return jd
}

// centuries returns Julian centuries since J2000.0.
func centuries(jd float64) float64 {
	return (jd - j2000) / 36525.0
}

// GMST calculates Greenwich Mean Sidereal Time in radians (IAU-82 model).
//
//	θ_GMST = 67310.54841 + (876600h + 8640184.812866)*T + 0.093104*T² - 6.2e-6*T³
//
// where T is Julian centuries of UT1 from J2000.0, result in seconds of time.
func GMST(t time.Time) float64 {
	tUT1 := centuries(JulianDate(t))

	gmstSec := 67310.54841 +
		(3155760000.0+8640184.812866)*tUT1 +
		0.093104*tUT1*tUT1 -
		6.2e-6*tUT1*tUT1*tUT1

	gmstSec = math.Mod(gmstSec, 86400.0)
	if gmstSec < 0 {
		gmstSec += 86400.0
	}
	return gmstSec / 86400.0 * 2.0 * math.Pi
}

// LocalSiderealTime returns the local mean sidereal time in radians for an
// east-positive longitude given in radians.
func LocalSiderealTime(t time.Time, lonRad float64) float64 {
	return normalize(GMST(t) + lonRad)
}
