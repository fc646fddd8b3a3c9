package response

import (
	"time"

	"mecanique_mobile/internal/domain/entities"
	"mecanique_mobile/internal/domain/pricing"
)

type QuoteLineOptionResponse struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

type QuoteLineResponse struct {
	ServiceID    string                    `json:"service_id"`
	ServiceName  string                    `json:"service_name"`
	BaseSelected bool                      `json:"base_selected"`
	BasePrice    float64                   `json:"base_price"`
	Options      []QuoteLineOptionResponse `json:"options"`
	TotalPrice   float64                   `json:"total_price"`
}

// QuoteResponse is the wire shape of a quote. Amounts are rounded to two
// decimals here; internally they stay at full precision.
type QuoteResponse struct {
	ID              string              `json:"id"`
	CustomerName    string              `json:"customer_name"`
	CustomerEmail   string              `json:"customer_email"`
	CustomerPhone   string              `json:"customer_phone"`
	CustomerAddress string              `json:"customer_address"`
	VehicleInfo     string              `json:"vehicle_info"`
	VehicleVIN      string              `json:"vehicle_vin,omitempty"`
	Services        []QuoteLineResponse `json:"services"`
	DistanceKm      float64             `json:"distance_km"`
	Subtotal        float64             `json:"subtotal"`
	TravelCost      float64             `json:"travel_cost"`
	Taxes           float64             `json:"taxes"`
	Total           float64             `json:"total"`
	PreferredDate   string              `json:"preferred_date"`
	TimeSlot        string              `json:"time_slot"`
	Status          string              `json:"status"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	lines := make([]QuoteLineResponse, 0, len(q.Services))
	for _, l := range q.Services {
		opts := make([]QuoteLineOptionResponse, 0, len(l.Options))
		for _, o := range l.Options {
			opts = append(opts, QuoteLineOptionResponse{
				Name:     o.Name,
				Price:    pricing.RoundMoney(o.Price),
				Quantity: o.Quantity,
				Total:    pricing.RoundMoney(o.Total),
			})
		}
		lines = append(lines, QuoteLineResponse{
			ServiceID:    l.ServiceID,
			ServiceName:  l.ServiceName,
			BaseSelected: l.BaseSelected,
			BasePrice:    pricing.RoundMoney(l.BasePrice),
			Options:      opts,
			TotalPrice:   pricing.RoundMoney(l.TotalPrice),
		})
	}

	preferred := ""
	if !q.PreferredDate.IsZero() {
		preferred = q.PreferredDate.Format(entities.DateLayout)
	}

	return QuoteResponse{
		ID:              q.ID,
		CustomerName:    q.CustomerName,
		CustomerEmail:   q.CustomerEmail,
		CustomerPhone:   q.CustomerPhone,
		CustomerAddress: q.CustomerAddress,
		VehicleInfo:     q.VehicleInfo,
		VehicleVIN:      q.VehicleVIN,
		Services:        lines,
		DistanceKm:      pricing.RoundMoney(q.DistanceKm),
		Subtotal:        pricing.RoundMoney(q.Subtotal),
		TravelCost:      pricing.RoundMoney(q.TravelCost),
		Taxes:           pricing.RoundMoney(q.Taxes),
		Total:           pricing.RoundMoney(q.Total),
		PreferredDate:   preferred,
		TimeSlot:        q.TimeSlot,
		Status:          string(q.Status),
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
	}
}

// SubmitQuoteResponse wraps the persisted quote with the non-fatal warnings
// from the booking and email side effects.
type SubmitQuoteResponse struct {
	Quote    QuoteResponse `json:"quote"`
	Warnings []string      `json:"warnings,omitempty"`
}
