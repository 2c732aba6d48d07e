package astro

import (
	"math"
	"testing"
	"time"
)

func TestJulianDate(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want float64
	}{
		{"J2000 epoch", time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), 2451545.0},
		{"1999 Dec 31 0h", time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC), 2451543.5},
		{"2024 Jun 21 0h", time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC), 2460482.5},
		{"non-UTC input", time.Date(2000, 1, 1, 20, 0, 0, 0, time.FixedZone("UTC+8", 8*3600)), 2451545.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JulianDate(tt.t); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("JulianDate() = %.6f, want %.6f", got, tt.want)
			}
		})
	}
}

func TestGMST_J2000(t *testing.T) {
	// GMST at 2000-01-01 12:00 UT1 is 18h41m50.548s = 280.46062°.
	got := GMST(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)) / deg
	if math.Abs(got-280.46062) > 0.001 {
		t.Errorf("GMST(J2000) = %.5f°, want 280.46062°", got)
	}
}

func TestSolveKepler(t *testing.T) {
	for _, e := range []float64{0, 0.0167, 0.2056, 0.9} {
		for _, m := range []float64{-3, -1, 0, 0.5, 2, 3.1} {
			E := SolveKepler(m, e)
			if res := E - e*math.Sin(E) - m; math.Abs(res) > 1e-10 {
				t.Errorf("SolveKepler(%v, %v) residual = %g", m, e, res)
			}
		}
	}
}

func TestSunPosition(t *testing.T) {
	t.Run("June solstice declination", func(t *testing.T) {
		jd := JulianDate(time.Date(2024, 6, 20, 20, 51, 0, 0, time.UTC))
		sun := SunPosition(jd)
		if got := sun.Dec / deg; math.Abs(got-23.44) > 0.05 {
			t.Errorf("solstice declination = %.3f°, want ~23.44°", got)
		}
		if got := sun.RA / deg; math.Abs(got-90) > 0.1 {
			t.Errorf("solstice RA = %.3f°, want ~90°", got)
		}
	})

	t.Run("perihelion distance", func(t *testing.T) {
		jd := JulianDate(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC))
		if got := SunPosition(jd).Distance; math.Abs(got-0.9833) > 0.001 {
			t.Errorf("perihelion distance = %.4f AU, want ~0.9833", got)
		}
	})
}

func TestPlanetPosition_Oppositions(t *testing.T) {
	tests := []struct {
		name    string
		planet  Planet
		date    time.Time
		minSepD float64
		maxSepD float64
	}{
		{"Jupiter opposition 2024-12-07", Jupiter, time.Date(2024, 12, 7, 21, 0, 0, 0, time.UTC), 170, 180},
		{"Mars opposition 2025-01-16", Mars, time.Date(2025, 1, 16, 3, 0, 0, 0, time.UTC), 170, 180},
		{"Saturn opposition 2025-09-21", Saturn, time.Date(2025, 9, 21, 5, 0, 0, 0, time.UTC), 170, 180},
		{"Venus greatest elongation 2025-01-10", Venus, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), 45, 49.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jd := JulianDate(tt.date)
			pos, err := PlanetPosition(tt.planet, jd)
			if err != nil {
				t.Fatalf("PlanetPosition() error = %v", err)
			}
			sep := Separation(pos, SunPosition(jd)) / deg
			if sep < tt.minSepD || sep > tt.maxSepD {
				t.Errorf("separation from Sun = %.2f°, want in [%v, %v]", sep, tt.minSepD, tt.maxSepD)
			}
		})
	}
}

func TestPlanetPosition_EarthRejected(t *testing.T) {
	if _, err := PlanetPosition(EarthMoonBarycenter, j2000); err == nil {
		t.Error("expected error for the Earth-Moon barycenter")
	}
}

func TestMoonPosition(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 60; day += 3 {
		jd := JulianDate(start.AddDate(0, 0, day))
		moon := MoonPosition(jd)

		earthRadii := moon.Distance / earthRadiusAU
		if earthRadii < 55 || earthRadii > 64.5 {
			t.Errorf("day %d: distance = %.2f Earth radii, want within lunar orbit range", day, earthRadii)
		}
		if dec := math.Abs(moon.Dec / deg); dec > 29 {
			t.Errorf("day %d: |declination| = %.2f°, exceeds maximum lunar declination", day, dec)
		}
	}

	// Full moon of 2024-01-25 17:54 UTC: elongation close to 180°.
	jd := JulianDate(time.Date(2024, 1, 25, 17, 54, 0, 0, time.UTC))
	if sep := Separation(MoonPosition(jd), SunPosition(jd)) / deg; sep < 173 {
		t.Errorf("full moon elongation = %.2f°, want > 173°", sep)
	}
}

func TestObserver_ToHorizontal(t *testing.T) {
	taipei := NewObserver(25.03, 121.56)

	t.Run("sun near zenith at local noon on the solstice", func(t *testing.T) {
		noon := time.Date(2024, 6, 21, 4, 0, 0, 0, time.UTC) // 12:00 Asia/Taipei
		h := taipei.ToHorizontal(SunPosition(JulianDate(noon)), noon)
		if h.AltitudeDeg < 85 {
			t.Errorf("noon altitude = %.2f°, want > 85°", h.AltitudeDeg)
		}
	})

	t.Run("sun below horizon at local midnight", func(t *testing.T) {
		midnight := time.Date(2024, 6, 20, 16, 0, 0, 0, time.UTC) // 00:00 Asia/Taipei
		h := taipei.ToHorizontal(SunPosition(JulianDate(midnight)), midnight)
		if h.AltitudeDeg > -30 {
			t.Errorf("midnight altitude = %.2f°, want < -30°", h.AltitudeDeg)
		}
	})

	t.Run("celestial pole altitude equals latitude", func(t *testing.T) {
		now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		pole := Equatorial{RA: 0, Dec: math.Pi / 2}
		h := taipei.ToHorizontal(pole, now)
		if math.Abs(h.AltitudeDeg-25.03) > 1e-6 {
			t.Errorf("pole altitude = %.6f°, want 25.03°", h.AltitudeDeg)
		}
		if math.Abs(h.AzimuthDeg) > 1e-6 && math.Abs(h.AzimuthDeg-360) > 1e-6 {
			t.Errorf("pole azimuth = %.6f°, want 0°", h.AzimuthDeg)
		}
	})

	t.Run("parallax lowers the moon", func(t *testing.T) {
		now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		moon := MoonPosition(JulianDate(now))
		geo := moon
		geo.Distance = 0
		topo := taipei.ToHorizontal(moon, now).AltitudeDeg
		noParallax := taipei.ToHorizontal(geo, now).AltitudeDeg
		if diff := noParallax - topo; diff < 0 || diff > 1.05 {
			t.Errorf("parallax correction = %.3f°, want in [0, 1.05]", diff)
		}
	})
}

func TestFixedPosition(t *testing.T) {
	// At J2000 the catalog position is returned unchanged.
	pos := FixedPosition(10.684708, 41.268750, j2000)
	if math.Abs(pos.RA/deg-10.684708) > 1e-6 || math.Abs(pos.Dec/deg-41.268750) > 1e-6 {
		t.Errorf("FixedPosition at J2000 = (%.6f, %.6f), want (10.684708, 41.268750)", pos.RA/deg, pos.Dec/deg)
	}
	// Twenty-five years of precession move M31 by roughly a third of a degree.
	later := FixedPosition(10.684708, 41.268750, JulianDate(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	if sep := Separation(pos, later) / deg; sep < 0.2 || sep > 0.5 {
		t.Errorf("precession shift = %.3f°, want 0.2-0.5°", sep)
	}
}
