package types

// LocationInfo contains human-readable place metadata for an observer
type LocationInfo struct {
	Name        string
	State       string
	Country     string
	CountryCode string
}

// Label returns a short "Name, Country" style label, or "" when nothing is known.
func (l LocationInfo) Label() string {
	switch {
	case l.Name != "" && l.Country != "":
		return l.Name + ", " + l.Country
	case l.Name != "":
		return l.Name
	default:
		return l.Country
	}
}
