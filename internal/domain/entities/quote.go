package entities

import "time"

// QuoteStatus represents the lifecycle of a quote (estimation).
//
// Domain notes:
//   - A quote is created once per submission and is immutable afterwards
//     except for status transitions driven by the workshop staff.

type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusConfirmed QuoteStatus = "confirmed"
	QuoteStatusCancelled QuoteStatus = "cancelled"
)

// QuoteLineOption is a resolved option on a quote line, with the price and
// name frozen at submission time so later catalog edits cannot change an
// issued quote.
type QuoteLineOption struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

// QuoteLine is one selected service resolved against the catalog snapshot,
// with per-line totals computed at submission time.
type QuoteLine struct {
	ServiceID    string            `json:"service_id"`
	ServiceName  string            `json:"service_name"`
	BaseSelected bool              `json:"base_selected"`
	BasePrice    float64           `json:"base_price"`
	Options      []QuoteLineOption `json:"options"`
	TotalPrice   float64           `json:"total_price"`
}

// Quote is the persisted quote record (estimation).
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - Amounts are accumulated at full float64 precision; rounding to two
//     decimals happens only at the presentation boundary.
type Quote struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerPhone   string      `json:"customer_phone"`
	CustomerAddress string      `json:"customer_address"`
	VehicleInfo     string      `json:"vehicle_info"`
	VehicleVIN      string      `json:"vehicle_vin,omitempty"`
	Services        []QuoteLine `json:"services"`
	DistanceKm      float64     `json:"distance_km"`
	Subtotal        float64     `json:"subtotal"`
	TravelCost      float64     `json:"travel_cost"`
	Taxes           float64     `json:"taxes"`
	Total           float64     `json:"total"`
	PreferredDate   time.Time   `json:"preferred_date"`
	TimeSlot        string      `json:"time_slot"`
	Status          QuoteStatus `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
