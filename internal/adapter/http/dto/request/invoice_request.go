package request

import (
	"strings"
	"time"

	"mecanique_mobile/internal/domain/entities"
)

type InvoiceCreateRequest struct {
	CustomerName  string  `json:"customer_name" binding:"required"`
	CustomerEmail string  `json:"customer_email" binding:"required,email"`
	CustomerPhone string  `json:"customer_phone"`
	QuoteID       string  `json:"quote_id"`
	InvoiceNumber string  `json:"invoice_number"`
	PaymentMethod string  `json:"payment_method"`
	ServiceDate   string  `json:"service_date"`
	Notes         string  `json:"notes"`
	Subtotal      float64 `json:"subtotal"`
	TravelCost    float64 `json:"travel_cost"`
	Taxes         float64 `json:"taxes"`
	Total         float64 `json:"total"`
	Status        string  `json:"status"`
}

func (r InvoiceCreateRequest) ToInvoice(loc *time.Location) entities.Invoice {
	inv := entities.Invoice{
		CustomerName:  strings.TrimSpace(r.CustomerName),
		CustomerEmail: strings.TrimSpace(r.CustomerEmail),
		CustomerPhone: strings.TrimSpace(r.CustomerPhone),
		QuoteID:       strings.TrimSpace(r.QuoteID),
		InvoiceNumber: strings.TrimSpace(r.InvoiceNumber),
		PaymentMethod: strings.TrimSpace(r.PaymentMethod),
		Notes:         strings.TrimSpace(r.Notes),
		Subtotal:      r.Subtotal,
		TravelCost:    r.TravelCost,
		Taxes:         r.Taxes,
		Total:         r.Total,
		Status:        entities.InvoiceStatus(strings.TrimSpace(r.Status)),
	}
	if raw := strings.TrimSpace(r.ServiceDate); raw != "" {
		if d, err := time.ParseInLocation(entities.DateLayout, raw, loc); err == nil {
			inv.ServiceDate = d
		}
	}
	return inv
}

type InvoiceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r InvoiceStatusRequest) ResolveStatus() entities.InvoiceStatus {
	return entities.InvoiceStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}
