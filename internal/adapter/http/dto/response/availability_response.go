package response

import (
	"time"

	"mecanique_mobile/internal/domain/entities"
)

type TimeSlotResponse struct {
	Slot      string    `json:"slot"`
	Label     string    `json:"label"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Available bool      `json:"available"`
}

type AvailabilityResponse struct {
	Date  string             `json:"date"`
	Slots []TimeSlotResponse `json:"slots"`
}

func FromTimeSlots(date time.Time, slots []entities.TimeSlot) AvailabilityResponse {
	out := make([]TimeSlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, TimeSlotResponse{
			Slot:      s.Window.Key(),
			Label:     s.Window.Label(),
			Start:     s.Start,
			End:       s.End,
			Available: s.Available,
		})
	}
	return AvailabilityResponse{
		Date:  date.Format(entities.DateLayout),
		Slots: out,
	}
}
