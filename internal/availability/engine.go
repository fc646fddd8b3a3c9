package availability

import (
	"context"
	"log"
	"time"

	"mecanique_mobile/internal/domain/entities"
	"mecanique_mobile/internal/usecase/interfaces"
)

// Scheduling rules of the workshop. Every day is an operating day; the
// fixed slot grid lives in entities.SlotWindows.
const (
	// MinimumLeadTime gates every booking flow, provisional estimates
	// included.
	MinimumLeadTime = 72 * time.Hour

	OpeningHour = 8
	ClosingHour = 18

	// AppointmentDurationMinutes is the calendar block booked per visit.
	AppointmentDurationMinutes = 180
)

// operatingWeekdays: the workshop currently runs seven days a week.
var operatingWeekdays = map[time.Weekday]bool{
	time.Sunday: true, time.Monday: true, time.Tuesday: true, time.Wednesday: true,
	time.Thursday: true, time.Friday: true, time.Saturday: true,
}

// Engine computes per-date slot availability. Nothing is persisted; slots
// are recomputed from scratch on every date query.
type Engine struct {
	calendar interfaces.ICalendarGateway // nil when no calendar is configured
	loc      *time.Location
	now      func() time.Time
}

func NewEngine(calendar interfaces.ICalendarGateway, loc *time.Location) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	return &Engine{calendar: calendar, loc: loc, now: time.Now}
}

// SlotsForDate returns the three fixed slots on date with availability
// derived from the lead-time rule, the operating window and the calendar's
// busy starts.
func (e *Engine) SlotsForDate(ctx context.Context, date time.Time) []entities.TimeSlot {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, e.loc)
	slots := e.emptySlots(day)

	// Lead-time and operating-day rejections short-circuit before any
	// calendar traffic.
	if day.Before(e.now().Add(MinimumLeadTime)) {
		return slots
	}
	if !operatingWeekdays[day.Weekday()] {
		return slots
	}

	busyStarts, busyKnown := e.queryBusyStarts(ctx, day)

	for i := range slots {
		w := slots[i].Window
		if w.StartHour < OpeningHour || w.EndHour > ClosingHour {
			// Structurally invalid: outside operating hours, no calendar
			// check performed.
			continue
		}
		if !busyKnown {
			// Fail open: prefer the overbooking risk over refusing every
			// booking while the calendar is unreachable.
			slots[i].Available = true
			continue
		}
		slots[i].Available = !startsBusy(busyStarts, slots[i].Start)
	}
	return slots
}

func (e *Engine) emptySlots(day time.Time) []entities.TimeSlot {
	windows := entities.SlotWindows()
	slots := make([]entities.TimeSlot, len(windows))
	for i, w := range windows {
		slots[i] = entities.TimeSlot{
			Window: w,
			Start:  w.StartOn(day, e.loc),
			End:    w.EndOn(day, e.loc),
		}
	}
	return slots
}

func (e *Engine) queryBusyStarts(ctx context.Context, day time.Time) ([]time.Time, bool) {
	if e.calendar == nil {
		log.Printf("[availability][engine] calendar not configured, failing open date=%s", day.Format(entities.DateLayout))
		return nil, false
	}
	busy, err := e.calendar.ListBusyStarts(ctx, day)
	if err != nil {
		// Operator-visible: this is the overbooking-risk path.
		log.Printf("[availability][engine] calendar query failed, failing open date=%s err=%v", day.Format(entities.DateLayout), err)
		return nil, false
	}
	return busy, true
}

// startsBusy matches busy intervals by exact start equality only. A busy
// interval starting mid-slot is not detected; kept for compatibility with
// the calendar contract this engine replaced.
func startsBusy(busyStarts []time.Time, slotStart time.Time) bool {
	for _, b := range busyStarts {
		if b.Equal(slotStart) {
			return true
		}
	}
	return false
}
