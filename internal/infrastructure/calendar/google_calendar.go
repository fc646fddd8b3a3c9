package calendar

import (
	"context"
	"fmt"
	"time"

	"mecanique_mobile/internal/domain/entities"
	"mecanique_mobile/internal/usecase/interfaces"

	gcalendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleCalendarGateway books appointments and reads busy slots from a
// Google Calendar through a service account.

type GoogleCalendarGateway struct {
	service    *gcalendar.Service
	calendarID string
	loc        *time.Location
}

var _ interfaces.ICalendarGateway = (*GoogleCalendarGateway)(nil)

// NewGoogleCalendarGateway builds the gateway from service account JSON
// credentials. calendarID is the target calendar ("primary" works for the
// account's own calendar).
func NewGoogleCalendarGateway(ctx context.Context, credentialsJSON []byte, calendarID string, loc *time.Location) (*GoogleCalendarGateway, error) {
	svc, err := gcalendar.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(gcalendar.CalendarEventsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("calendar: create service: %w", err)
	}
	if loc == nil {
		loc = time.UTC
	}
	return &GoogleCalendarGateway{
		service:    svc,
		calendarID: calendarID,
		loc:        loc,
	}, nil
}

// ListBusyStarts returns the start times of every event on the given
// calendar date. The availability engine matches these against slot starts.
func (g *GoogleCalendarGateway) ListBusyStarts(ctx context.Context, date time.Time) ([]time.Time, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, g.loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	events, err := g.service.Events.List(g.calendarID).
		Context(ctx).
		TimeMin(dayStart.Format(time.RFC3339)).
		TimeMax(dayEnd.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Do()
	if err != nil {
		return nil, fmt.Errorf("calendar: list events: %w", err)
	}

	starts := make([]time.Time, 0, len(events.Items))
	for _, ev := range events.Items {
		if ev.Start == nil || ev.Start.DateTime == "" {
			// All-day events carry only a date; they do not block slots.
			continue
		}
		start, err := time.Parse(time.RFC3339, ev.Start.DateTime)
		if err != nil {
			continue
		}
		starts = append(starts, start.In(g.loc))
	}
	return starts, nil
}

func (g *GoogleCalendarGateway) CreateAppointment(ctx context.Context, appt entities.Appointment) error {
	end := appt.Start.Add(time.Duration(appt.DurationMinutes) * time.Minute)

	event := &gcalendar.Event{
		Summary:     appt.Title,
		Description: appt.Description,
		Location:    appt.Location,
		Start: &gcalendar.EventDateTime{
			DateTime: appt.Start.Format(time.RFC3339),
			TimeZone: g.loc.String(),
		},
		End: &gcalendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: g.loc.String(),
		},
	}
	if appt.AttendeeEmail != "" {
		event.Attendees = []*gcalendar.EventAttendee{
			{Email: appt.AttendeeEmail, DisplayName: appt.AttendeeName},
		}
	}

	if _, err := g.service.Events.Insert(g.calendarID, event).Context(ctx).Do(); err != nil {
		return fmt.Errorf("calendar: insert event: %w", err)
	}
	return nil
}
