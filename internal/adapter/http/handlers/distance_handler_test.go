package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mecanique_mobile/internal/adapter/http/handlers/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDistanceHandler_GetDistance(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing address", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := mocks.NewMockDistanceResolver(ctrl)
		h := NewDistanceHandler(resolver)

		r := gin.New()
		r.GET("/v1/distance", h.GetDistance)

		req := httptest.NewRequest(http.MethodGet, "/v1/distance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success with derived fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := mocks.NewMockDistanceResolver(ctrl)
		h := NewDistanceHandler(resolver)

		r := gin.New()
		r.GET("/v1/distance", h.GetDistance)

		resolver.EXPECT().ResolveKm(gomock.Any(), "123 Rue Principale, Laval").Return(40.0)

		req := httptest.NewRequest(http.MethodGet, "/v1/distance?address=123+Rue+Principale,+Laval", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var out struct {
			DistanceKm          float64 `json:"distance_km"`
			TravelCost          float64 `json:"travel_cost"`
			WithinServiceRadius bool    `json:"within_service_radius"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if out.DistanceKm != 40 || out.TravelCost != 24.4 {
			t.Fatalf("unexpected response: %+v", out)
		}
		if !out.WithinServiceRadius {
			t.Fatalf("40 km must be inside the radius")
		}
	})
}
