package astro

import (
	"fmt"
	"math"
)

// Planet identifies a major planet with published Keplerian elements.
type Planet int

const (
	Mercury Planet = iota
	Venus
	EarthMoonBarycenter
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
)

// elements are the J2000 mean orbital elements and their rates per Julian century
// (Standish, "Keplerian Elements for Approximate Positions of the Major Planets",
// valid 1800 AD - 2050 AD). Angles in degrees, a in AU.
type elements struct {
	a, e, i, l, peri, node                   float64
	aDot, eDot, iDot, lDot, periDot, nodeDot float64
}

var planetElements = map[Planet]elements{
	Mercury: {
		0.38709927, 0.20563593, 7.00497902, 252.25032350, 77.45779628, 48.33076593,
		0.00000037, 0.00001906, -0.00594749, 149472.67411175, 0.16047689, -0.12534081,
	},
	Venus: {
		0.72333566, 0.00677672, 3.39467605, 181.97909950, 131.60246718, 76.67984255,
		0.00000390, -0.00004107, -0.00078890, 58517.81538729, 0.00268329, -0.27769418,
	},
	EarthMoonBarycenter: {
		1.00000261, 0.01671123, -0.00001531, 100.46457166, 102.93768193, 0.0,
		0.00000562, -0.00004392, -0.01294668, 35999.37244981, 0.32327364, 0.0,
	},
	Mars: {
		1.52371034, 0.09339410, 1.84969142, -4.55343205, -23.94362959, 49.55953891,
		0.00001847, 0.00007882, -0.00813131, 19140.30268499, 0.44441088, -0.29257343,
	},
	Jupiter: {
		5.20288700, 0.04838624, 1.30439695, 34.39644051, 14.72847983, 100.47390909,
		-0.00011607, -0.00013253, -0.00183714, 3034.74612775, 0.21252668, 0.20469106,
	},
	Saturn: {
		9.53667594, 0.05386179, 2.48599187, 49.95424423, 92.59887831, 113.66242448,
		-0.00125060, -0.00050991, 0.00193609, 1222.49362201, -0.41897216, -0.28867794,
	},
	Uranus: {
		19.18916464, 0.04725744, 0.77263783, 313.23810451, 170.95427630, 74.01692503,
		-0.00196176, -0.00004397, -0.00242939, 428.48202785, 0.40805281, 0.04240589,
	},
	Neptune: {
		30.06992276, 0.00859048, 1.77004347, -55.12002969, 44.96476227, 131.78422574,
		0.00026291, 0.00005105, 0.00035372, 218.45945325, -0.32241464, -0.00508664,
	},
}

// vec3 is a rectangular heliocentric ecliptic J2000 position in AU.
type vec3 struct{ x, y, z float64 }

func (v vec3) sub(o vec3) vec3 { return vec3{v.x - o.x, v.y - o.y, v.z - o.z} }

func (v vec3) neg() vec3 { return vec3{-v.x, -v.y, -v.z} }

// SolveKepler returns the eccentric anomaly E (radians) for mean anomaly m and
// eccentricity e using Newton iteration on E - e·sin E = M.
func SolveKepler(m, e float64) float64 {
	E := m + e*math.Sin(m)*(1+e*math.Cos(m))
	for i := 0; i < 30; i++ {
		dE := (E - e*math.Sin(E) - m) / (1 - e*math.Cos(E))
		E -= dE
		if math.Abs(dE) < 1e-12 {
			break
		}
	}
	return E
}

// heliocentric returns the planet's heliocentric ecliptic J2000 position.
func heliocentric(p Planet, jd float64) (vec3, error) {
	el, ok := planetElements[p]
	if !ok {
		return vec3{}, fmt.Errorf("no orbital elements for planet %d", p)
	}
	T := centuries(jd)

	a := el.a + el.aDot*T
	e := el.e + el.eDot*T
	i := (el.i + el.iDot*T) * deg
	l := (el.l + el.lDot*T) * deg
	peri := (el.peri + el.periDot*T) * deg
	node := (el.node + el.nodeDot*T) * deg

	w := peri - node
	m := normalizeSigned(l - peri)
	E := SolveKepler(m, e)

	// Position in the orbital plane, x' toward perihelion.
	xp := a * (math.Cos(E) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(E)

	cw, sw := math.Cos(w), math.Sin(w)
	cn, sn := math.Cos(node), math.Sin(node)
	ci, si := math.Cos(i), math.Sin(i)

	return vec3{
		x: (cw*cn-sw*sn*ci)*xp + (-sw*cn-cw*sn*ci)*yp,
		y: (cw*sn+sw*cn*ci)*xp + (-sw*sn+cw*cn*ci)*yp,
		z: (sw*si)*xp + (cw*si)*yp,
	}, nil
}

// geocentricEcliptic converts a geocentric J2000 rectangular vector to
// ecliptic coordinates of date.
func geocentricEcliptic(v vec3, jd float64) Ecliptic {
	r := math.Sqrt(v.x*v.x + v.y*v.y + v.z*v.z)
	return Ecliptic{
		Lon:      normalize(math.Atan2(v.y, v.x) + precessionLon(jd)),
		Lat:      math.Atan2(v.z, math.Hypot(v.x, v.y)),
		Distance: r,
	}
}

// PlanetPosition returns the apparent geocentric equatorial position of date of
// a planet. EarthMoonBarycenter is not a valid target.
func PlanetPosition(p Planet, jd float64) (Equatorial, error) {
	if p == EarthMoonBarycenter {
		return Equatorial{}, fmt.Errorf("earth is the observer, not a target")
	}
	earth, err := heliocentric(EarthMoonBarycenter, jd)
	if err != nil {
		return Equatorial{}, err
	}
	pos, err := heliocentric(p, jd)
	if err != nil {
		return Equatorial{}, err
	}
	return geocentricEcliptic(pos.sub(earth), jd).ToEquatorial(jd), nil
}

// SunPosition returns the geocentric equatorial position of date of the Sun.
func SunPosition(jd float64) Equatorial {
	earth, _ := heliocentric(EarthMoonBarycenter, jd)
	return geocentricEcliptic(earth.neg(), jd).ToEquatorial(jd)
}

// FixedPosition precesses a J2000 catalog position (degrees) to the equator of date.
func FixedPosition(raDeg, decDeg, jd float64) Equatorial {
	j2000Pos := Equatorial{RA: raDeg * deg, Dec: decDeg * deg}
	ecl := j2000Pos.toEcliptic(obliquity(j2000))
	ecl.Lon = normalize(ecl.Lon + precessionLon(jd))
	return ecl.ToEquatorial(jd)
}
