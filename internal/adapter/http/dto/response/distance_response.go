package response

import (
	"mecanique_mobile/internal/domain/pricing"
)

// DistanceResponse is the distance quote for an address: the resolved
// kilometres plus the travel cost and radius verdict derived from them.
type DistanceResponse struct {
	Address             string  `json:"address"`
	DistanceKm          float64 `json:"distance_km"`
	TravelCost          float64 `json:"travel_cost"`
	WithinServiceRadius bool    `json:"within_service_radius"`
}

func FromDistance(address string, km float64) DistanceResponse {
	return DistanceResponse{
		Address:             address,
		DistanceKm:          pricing.RoundMoney(km),
		TravelCost:          pricing.RoundMoney(pricing.TravelCost(km)),
		WithinServiceRadius: pricing.WithinServiceRadius(km),
	}
}
