package maps

import "context"

// DistanceProvider resolves addresses and measures the driving distance
// between pickup and delivery when the customer does not supply one.
type DistanceProvider interface {
	Geocode(ctx context.Context, address string) (*GeocodeResponse, error)
	DrivingDistance(ctx context.Context, origin, destination string) (*DistanceResult, error)
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

type DistanceResult struct {
	Miles           float64 `json:"miles"`
	DurationMinutes float64 `json:"duration_minutes"`
	OriginText      string  `json:"origin_text"`
	DestinationText string  `json:"destination_text"`
}
