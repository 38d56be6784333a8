package maps

import "context"

// Geocoder resolves freeform address text to coordinates and back. The
// matcher itself never geocodes; the service layer uses this to upgrade a
// text-only search request to the coordinate path when possible.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*GeocodeResponse, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) (*GeocodeResponse, error)
}

type GeocodeResponse struct {
	Results []GeocodeResult `json:"results"`
}

type GeocodeResult struct {
	PlaceID     string   `json:"place_id"`
	Address     string   `json:"formatted_address"`
	Coordinates Location `json:"geometry"`
	Types       []string `json:"types"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Best returns the top-ranked result, or nil when the response is empty.
func (r *GeocodeResponse) Best() *GeocodeResult {
	if r == nil || len(r.Results) == 0 {
		return nil
	}
	return &r.Results[0]
}
