package types

// ObserverPoint describes an observing site: where it is, what it is called
// and which clock it keeps.
type ObserverPoint struct {
	Coordinates      Coords
	Elevation        *Elevation // nil when unknown
	Location         LocationInfo
	Timezone         string
	TimezoneFallback bool
}
