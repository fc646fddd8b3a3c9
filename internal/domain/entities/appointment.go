package entities

import "time"

// Appointment is the calendar-booking request sent to the calendar
// collaborator after a quote is persisted.
type Appointment struct {
	Title           string
	Description     string
	Location        string
	Start           time.Time
	DurationMinutes int
	AttendeeName    string
	AttendeeEmail   string
}
