package response

import (
	"time"

	"mecanique_mobile/internal/domain/entities"
	"mecanique_mobile/internal/domain/pricing"
)

type InvoiceResponse struct {
	ID             string              `json:"id"`
	InvoiceNumber  string              `json:"invoice_number"`
	QuoteID        string              `json:"quote_id,omitempty"`
	CustomerName   string              `json:"customer_name"`
	CustomerEmail  string              `json:"customer_email"`
	CustomerPhone  string              `json:"customer_phone"`
	ServiceAddress string              `json:"service_address"`
	Services       []QuoteLineResponse `json:"services"`
	DistanceKm     float64             `json:"distance_km"`
	Subtotal       float64             `json:"subtotal"`
	TravelCost     float64             `json:"travel_cost"`
	Taxes          float64             `json:"taxes"`
	Total          float64             `json:"total"`
	Status         string              `json:"status"`
	PaymentMethod  string              `json:"payment_method,omitempty"`
	ServiceDate    string              `json:"service_date,omitempty"`
	Notes          string              `json:"notes,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	lines := make([]QuoteLineResponse, 0, len(inv.Services))
	for _, l := range inv.Services {
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

	serviceDate := ""
	if !inv.ServiceDate.IsZero() {
		serviceDate = inv.ServiceDate.Format(entities.DateLayout)
	}

	return InvoiceResponse{
		ID:             inv.ID,
		InvoiceNumber:  inv.InvoiceNumber,
		QuoteID:        inv.QuoteID,
		CustomerName:   inv.CustomerName,
		CustomerEmail:  inv.CustomerEmail,
		CustomerPhone:  inv.CustomerPhone,
		ServiceAddress: inv.ServiceAddress,
		Services:       lines,
		DistanceKm:     pricing.RoundMoney(inv.DistanceKm),
		Subtotal:       pricing.RoundMoney(inv.Subtotal),
		TravelCost:     pricing.RoundMoney(inv.TravelCost),
		Taxes:          pricing.RoundMoney(inv.Taxes),
		Total:          pricing.RoundMoney(inv.Total),
		Status:         string(inv.Status),
		PaymentMethod:  inv.PaymentMethod,
		ServiceDate:    serviceDate,
		Notes:          inv.Notes,
		CreatedAt:      inv.CreatedAt,
		UpdatedAt:      inv.UpdatedAt,
	}
}

func FromInvoices(invs []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invs))
	for _, inv := range invs {
		out = append(out, FromInvoice(inv))
	}
	return out
}
