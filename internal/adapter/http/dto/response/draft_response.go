package response

import (
	"time"

	"mecanique_mobile/internal/domain/entities"
	"mecanique_mobile/internal/usecase"
)

// DraftResponse is the polled state of a quoting draft. Distance and slots
// reflect the latest applied resolution, which may lag a just-issued edit
// by the debounce interval.
type DraftResponse struct {
	ID        string             `json:"id"`
	Address   string             `json:"address"`
	Distance  DistanceResponse   `json:"distance"`
	Date      string             `json:"date,omitempty"`
	Slots     []TimeSlotResponse `json:"slots"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func FromDraft(d usecase.Draft) DraftResponse {
	slots := make([]TimeSlotResponse, 0, len(d.Slots))
	for _, s := range d.Slots {
		slots = append(slots, TimeSlotResponse{
			Slot:      s.Window.Key(),
			Label:     s.Window.Label(),
			Start:     s.Start,
			End:       s.End,
			Available: s.Available,
		})
	}

	date := ""
	if !d.Date.IsZero() {
		date = d.Date.Format(entities.DateLayout)
	}

	return DraftResponse{
		ID:        d.ID,
		Address:   d.Address,
		Distance:  FromDistance(d.Address, d.DistanceKm),
		Date:      date,
		Slots:     slots,
		UpdatedAt: d.UpdatedAt,
	}
}
