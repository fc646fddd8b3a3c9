package interfaces

import (
	"context"
	"time"

	"mecanique_mobile/internal/domain/entities"
)

// ICalendarGateway abstracts the workshop's calendar backend.
//
// ListBusyStarts returns the start timestamps of busy intervals on a date;
// the availability engine compares them against fixed slot starts.
// CreateAppointment books the chosen slot after a quote is persisted and is
// best-effort: its failure never invalidates the quote.

type ICalendarGateway interface {
	ListBusyStarts(ctx context.Context, date time.Time) ([]time.Time, error)
	CreateAppointment(ctx context.Context, appt entities.Appointment) error
}
