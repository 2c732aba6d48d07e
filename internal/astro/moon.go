package astro

import "math"

// MoonPosition returns the geocentric equatorial position of date of the Moon.
//
// Mean elements and the principal periodic terms follow Schlyter's "How to
// compute planetary positions"; accuracy is a few arc minutes, well inside a
// chart pixel. Distance is returned in AU so parallax can be applied.
func MoonPosition(jd float64) Equatorial {
	d := jd - 2451543.5

	node := (125.1228 - 0.0529538083*d) * deg
	incl := 5.1454 * deg
	peri := (318.0634 + 0.1643573223*d) * deg
	const a = 60.2666 // Earth radii
	const e = 0.054900
	mMoon := normalizeSigned((115.3654 + 13.0649929509*d) * deg)

	mSun := normalizeSigned((356.0470 + 0.9856002585*d) * deg)
	wSun := (282.9404 + 4.70935e-5*d) * deg

	E := SolveKepler(mMoon, e)
	xv := a * (math.Cos(E) - e)
	yv := a * math.Sqrt(1-e*e) * math.Sin(E)
	v := math.Atan2(yv, xv)
	r := math.Hypot(xv, yv)

	sn, cn := math.Sin(node), math.Cos(node)
	su, cu := math.Sin(v+peri), math.Cos(v+peri)
	ci := math.Cos(incl)

	xh := r * (cn*cu - sn*su*ci)
	yh := r * (sn*cu + cn*su*ci)
	zh := r * su * math.Sin(incl)

	lon := math.Atan2(yh, xh)
	lat := math.Atan2(zh, math.Hypot(xh, yh))

	lSun := mSun + wSun
	lMoon := mMoon + peri + node
	D := lMoon - lSun
	F := lMoon - node

	lon += (-1.274*math.Sin(mMoon-2*D) + // evection
		0.658*math.Sin(2*D) + // variation
		-0.186*math.Sin(mSun) + // yearly equation
		-0.059*math.Sin(2*mMoon-2*D) +
		-0.057*math.Sin(mMoon-2*D+mSun) +
		0.053*math.Sin(mMoon+2*D) +
		0.046*math.Sin(2*D-mSun) +
		0.041*math.Sin(mMoon-mSun) +
		-0.035*math.Sin(D) + // parallactic equation
		-0.031*math.Sin(mMoon+mSun) +
		-0.015*math.Sin(2*F-2*D) +
		0.011*math.Sin(mMoon-4*D)) * deg

	lat += (-0.173*math.Sin(F-2*D) +
		-0.055*math.Sin(mMoon-F-2*D) +
		-0.046*math.Sin(mMoon+F-2*D) +
		0.033*math.Sin(F+2*D) +
		0.017*math.Sin(2*mMoon+F)) * deg

	r += -0.58*math.Cos(mMoon-2*D) - 0.46*math.Cos(2*D)

	return Ecliptic{
		Lon:      normalize(lon),
		Lat:      lat,
		Distance: r * earthRadiusAU,
	}.ToEquatorial(jd)
}
