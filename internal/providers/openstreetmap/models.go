package openstreetmap

type LookupAPIResponse struct {
	PlaceId     int    `json:"place_id"`
	Licence     string `json:"licence"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Address     struct {
		City        string `json:"city"`
		Town        string `json:"town"`
		Village     string `json:"village"`
		County      string `json:"county"`
		State       string `json:"state"`
		Country     string `json:"country"`
		CountryCode string `json:"country_code"`
	} `json:"address"`
	Error string `json:"error"`
}

// placeName picks the most specific settlement name available.
func (r *LookupAPIResponse) placeName() string {
	for _, name := range []string{r.Address.City, r.Address.Town, r.Address.Village, r.Name, r.Address.County} {
		if name != "" {
			return name
		}
	}
	return ""
}
