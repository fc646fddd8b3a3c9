package request

import (
	"errors"
	"strings"
	"time"

	"mecanique_mobile/internal/domain/entities"
)

var (
	ErrInvalidPreferredDate = errors.New("invalid preferred date")
)

type SelectedOptionRequest struct {
	OptionIndex int `json:"option_index"`
	Quantity    int `json:"quantity"`
}

type SelectedServiceRequest struct {
	ServiceID    string                  `json:"service_id" binding:"required"`
	BaseSelected bool                    `json:"base_selected"`
	Options      []SelectedOptionRequest `json:"options"`
}

// QuoteSubmitRequest is the full quote form as posted by the customer
// portal. Dates travel as "YYYY-MM-DD" strings and are anchored to the
// business timezone on the server.
type QuoteSubmitRequest struct {
	CustomerName    string                   `json:"customer_name" binding:"required"`
	CustomerEmail   string                   `json:"customer_email" binding:"required,email"`
	CustomerPhone   string                   `json:"customer_phone" binding:"required"`
	CustomerAddress string                   `json:"customer_address" binding:"required"`
	VehicleInfo     string                   `json:"vehicle_info" binding:"required"`
	VehicleVIN      string                   `json:"vehicle_vin"`
	Services        []SelectedServiceRequest `json:"services" binding:"required"`
	PreferredDate   string                   `json:"preferred_date" binding:"required"`
	TimeSlot        string                   `json:"time_slot" binding:"required"`
	AcceptedTerms   bool                     `json:"accepted_terms"`
}

func (r QuoteSubmitRequest) ResolveServices() []entities.SelectedService {
	out := make([]entities.SelectedService, 0, len(r.Services))
	for _, s := range r.Services {
		sel := entities.SelectedService{
			ServiceID:    strings.TrimSpace(s.ServiceID),
			BaseSelected: s.BaseSelected,
		}
		for _, o := range s.Options {
			sel.Options = append(sel.Options, entities.SelectedOption{
				OptionIndex: o.OptionIndex,
				Quantity:    o.Quantity,
			})
		}
		out = append(out, sel)
	}
	return out
}

func (r QuoteSubmitRequest) ResolvePreferredDate(loc *time.Location) (time.Time, error) {
	raw := strings.TrimSpace(r.PreferredDate)
	if raw == "" {
		return time.Time{}, ErrInvalidPreferredDate
	}
	d, err := time.ParseInLocation(entities.DateLayout, raw, loc)
	if err != nil {
		return time.Time{}, ErrInvalidPreferredDate
	}
	return d, nil
}
