package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mecanique_mobile/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

type stubSlotProvider struct {
	gotDate time.Time
	slots   []entities.TimeSlot
}

func (s *stubSlotProvider) SlotsForDate(_ context.Context, date time.Time) []entities.TimeSlot {
	s.gotDate = date
	return s.slots
}

func availabilityRouter(p SlotProvider) *gin.Engine {
	h := NewAvailabilityHandler(p, time.UTC)
	r := gin.New()
	r.GET("/v1/availability", h.GetAvailability)
	return r
}

func TestAvailabilityHandler_GetAvailability(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing date", func(t *testing.T) {
		r := availabilityRouter(&stubSlotProvider{})
		req := httptest.NewRequest(http.MethodGet, "/v1/availability", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid date format", func(t *testing.T) {
		r := availabilityRouter(&stubSlotProvider{})
		req := httptest.NewRequest(http.MethodGet, "/v1/availability?date=10/09/2026", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		windows := entities.SlotWindows()
		day := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)
		stub := &stubSlotProvider{slots: []entities.TimeSlot{
			{Window: windows[0], Start: windows[0].StartOn(day, time.UTC), End: windows[0].EndOn(day, time.UTC), Available: true},
			{Window: windows[1], Start: windows[1].StartOn(day, time.UTC), End: windows[1].EndOn(day, time.UTC), Available: false},
			{Window: windows[2], Start: windows[2].StartOn(day, time.UTC), End: windows[2].EndOn(day, time.UTC), Available: true},
		}}
		r := availabilityRouter(stub)

		req := httptest.NewRequest(http.MethodGet, "/v1/availability?date=2026-09-10", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !stub.gotDate.Equal(day) {
			t.Fatalf("expected engine called with %v, got %v", day, stub.gotDate)
		}

		var out struct {
			Date  string `json:"date"`
			Slots []struct {
				Slot      string `json:"slot"`
				Available bool   `json:"available"`
			} `json:"slots"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if out.Date != "2026-09-10" {
			t.Fatalf("unexpected date: %q", out.Date)
		}
		if len(out.Slots) != 3 || out.Slots[0].Slot != "08:00-11:00" {
			t.Fatalf("unexpected slots: %+v", out.Slots)
		}
		if out.Slots[1].Available {
			t.Fatalf("expected middle slot busy")
		}
	})
}
