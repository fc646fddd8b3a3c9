package request

import (
	"strings"
	"time"

	"mecanique_mobile/internal/domain/entities"
)

type DraftAddressRequest struct {
	Address string `json:"address"`
}

type DraftDateRequest struct {
	Date string `json:"date" binding:"required"`
}

func (r DraftDateRequest) ResolveDate(loc *time.Location) (time.Time, error) {
	raw := strings.TrimSpace(r.Date)
	if raw == "" {
		return time.Time{}, ErrInvalidPreferredDate
	}
	d, err := time.ParseInLocation(entities.DateLayout, raw, loc)
	if err != nil {
		return time.Time{}, ErrInvalidPreferredDate
	}
	return d, nil
}
