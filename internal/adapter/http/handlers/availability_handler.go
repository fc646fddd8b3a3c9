package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	response "mecanique_mobile/internal/adapter/http/dto/response"
	"mecanique_mobile/internal/domain/entities"
	"mecanique_mobile/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errMissingDate = pkg.NewDomainErrorSimple("MISSING_DATE", "The date query parameter is required", http.StatusBadRequest)
	errInvalidDate = pkg.NewDomainErrorSimple("INVALID_DATE", "Dates must be formatted YYYY-MM-DD", http.StatusBadRequest)
)

// SlotProvider computes the slot grid for a candidate date.
type SlotProvider interface {
	SlotsForDate(ctx context.Context, date time.Time) []entities.TimeSlot
}

// AvailabilityHandler serves the slot grid the booking form renders for a
// candidate date. Slot computation never fails; bad input is the only error
// surface here.

type AvailabilityHandler struct {
	engine SlotProvider
	loc    *time.Location
}

func NewAvailabilityHandler(engine SlotProvider, loc *time.Location) *AvailabilityHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &AvailabilityHandler{engine: engine, loc: loc}
}

func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("date"))
	if raw == "" {
		c.JSON(errMissingDate.HTTPStatus, errMissingDate.ToHTTPError())
		return
	}

	date, err := time.ParseInLocation(entities.DateLayout, raw, h.loc)
	if err != nil {
		c.JSON(errInvalidDate.HTTPStatus, errInvalidDate.ToHTTPError())
		return
	}

	slots := h.engine.SlotsForDate(c.Request.Context(), date)
	c.JSON(http.StatusOK, response.FromTimeSlots(date, slots))
}
