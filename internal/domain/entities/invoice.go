package entities

import "time"

// InvoiceStatus represents the payment lifecycle of an invoice as recorded
// by the workshop. Payment processing itself happens outside this service;
// we only keep the record.

type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
	InvoiceStatusRefunded  InvoiceStatus = "refunded"
)

// Invoice is the persisted invoice record for a completed on-site visit.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Search is intentionally client-side: the table is small and the lookup
// surface (email, phone, invoice number substrings) does not justify GSIs.
type Invoice struct {
	ID             string        `json:"id"`
	InvoiceNumber  string        `json:"invoice_number"`
	QuoteID        string        `json:"quote_id,omitempty"`
	CustomerName   string        `json:"customer_name"`
	CustomerEmail  string        `json:"customer_email"`
	CustomerPhone  string        `json:"customer_phone"`
	ServiceAddress string        `json:"service_address"`
	Services       []QuoteLine   `json:"services"`
	DistanceKm     float64       `json:"distance_km"`
	Subtotal       float64       `json:"subtotal"`
	TravelCost     float64       `json:"travel_cost"`
	Taxes          float64       `json:"taxes"`
	Total          float64       `json:"total"`
	Status         InvoiceStatus `json:"status"`
	PaymentMethod  string        `json:"payment_method,omitempty"`
	ServiceDate    time.Time     `json:"service_date,omitempty"`
	Notes          string        `json:"notes,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
