package entities

// Coordinate is a WGS-84 position in decimal degrees.
//
// Coordinates are only ever produced by geocoding or taken from the fixed
// workshop origin; customer addresses stay free text and are re-resolved per
// request.
type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}
