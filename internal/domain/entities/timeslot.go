package entities

import (
	"fmt"
	"time"
)

// Time format constants
const (
	TimeLayout = "15:04"      // HH:MM
	DateLayout = "2006-01-02" // YYYY-MM-DD
)

// SlotWindow is one fixed daily appointment window, expressed as wall-clock
// hours/minutes independent of any date.
type SlotWindow struct {
	StartHour   int `json:"-"`
	StartMinute int `json:"-"`
	EndHour     int `json:"-"`
	EndMinute   int `json:"-"`
}

// SlotWindows returns the three fixed daily windows in display order.
// Availability is derived per date; the windows themselves never change.
func SlotWindows() []SlotWindow {
	return []SlotWindow{
		{StartHour: 8, EndHour: 11},
		{StartHour: 11, EndHour: 14},
		{StartHour: 14, EndHour: 17},
	}
}

// Key is the canonical identifier of a window ("08:00-11:00"), used on
// quotes and in requests.
func (w SlotWindow) Key() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", w.StartHour, w.StartMinute, w.EndHour, w.EndMinute)
}

func (w SlotWindow) Label() string {
	return fmt.Sprintf("%02d:%02d - %02d:%02d", w.StartHour, w.StartMinute, w.EndHour, w.EndMinute)
}

// StartOn anchors the window's start on a calendar date in loc.
func (w SlotWindow) StartOn(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), w.StartHour, w.StartMinute, 0, 0, loc)
}

// EndOn anchors the window's end on a calendar date in loc.
func (w SlotWindow) EndOn(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), w.EndHour, w.EndMinute, 0, 0, loc)
}

// SlotWindowByKey resolves a window key back to its fixed window.
func SlotWindowByKey(key string) (SlotWindow, bool) {
	for _, w := range SlotWindows() {
		if w.Key() == key {
			return w, true
		}
	}
	return SlotWindow{}, false
}

// TimeSlot is a window with its derived availability for one candidate date.
// Slots are recomputed on every date query and never persisted.
type TimeSlot struct {
	Window    SlotWindow `json:"-"`
	Start     time.Time  `json:"start"`
	End       time.Time  `json:"end"`
	Available bool       `json:"available"`
}
