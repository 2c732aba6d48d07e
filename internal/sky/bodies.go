package sky

import (
	"sort"
	"strings"

	"celestial-chart/internal/astro"
)

// Kind distinguishes bodies computed from orbital theory from catalog objects.
type Kind int

const (
	KindSun Kind = iota
	KindMoon
	KindPlanet
	KindDeepSky
)

// Body is a celestial body that can be sampled.
type Body struct {
	Name   string
	Kind   Kind
	planet astro.Planet
}

var solarSystem = map[string]Body{
	"sun":     {Name: "sun", Kind: KindSun},
	"moon":    {Name: "moon", Kind: KindMoon},
	"mercury": {Name: "mercury", Kind: KindPlanet, planet: astro.Mercury},
	"venus":   {Name: "venus", Kind: KindPlanet, planet: astro.Venus},
	"mars":    {Name: "mars", Kind: KindPlanet, planet: astro.Mars},
	"jupiter": {Name: "jupiter", Kind: KindPlanet, planet: astro.Jupiter},
	"saturn":  {Name: "saturn", Kind: KindPlanet, planet: astro.Saturn},
	"uranus":  {Name: "uranus", Kind: KindPlanet, planet: astro.Uranus},
	"neptune": {Name: "neptune", Kind: KindPlanet, planet: astro.Neptune},
}

// NormalizeName lower-cases and trims a user supplied body name.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup returns the supported solar-system body with the given name (case-insensitive).
func Lookup(name string) (Body, bool) {
	b, ok := solarSystem[NormalizeName(name)]
	return b, ok
}

// DeepSky returns a catalog-resolved body. The original spelling is kept
// because catalog identifiers such as "NGC 7000" are case-sensitive in display.
func DeepSky(name string) Body {
	return Body{Name: strings.TrimSpace(name), Kind: KindDeepSky}
}

// DeepSkyLabel groups every catalog object under one metrics label.
const DeepSkyLabel = "deep_sky"

// Label returns a bounded identifier for the body: the solar-system name, or
// DeepSkyLabel for any catalog object.
func (b Body) Label() string {
	if b.Kind == KindDeepSky {
		return DeepSkyLabel
	}
	return b.Name
}

// Supported returns the names of all supported solar-system bodies, sorted.
func Supported() []string {
	names := make([]string, 0, len(solarSystem))
	for name := range solarSystem {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
