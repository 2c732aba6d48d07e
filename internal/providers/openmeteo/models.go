package openmeteo

type ElevationAPIResponse struct {
	Elevation []float64 `json:"elevation"`
	Error     bool      `json:"error"`
	Reason    string    `json:"reason"`
}
