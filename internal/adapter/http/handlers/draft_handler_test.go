package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mecanique_mobile/internal/adapter/http/handlers/mocks"
	"mecanique_mobile/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func draftRouter(uc usecase.IDraftUseCase) *gin.Engine {
	h := NewDraftHandler(uc, time.UTC)
	r := gin.New()
	r.POST("/v1/drafts", h.CreateDraft)
	r.GET("/v1/drafts/:id", h.GetDraft)
	r.PATCH("/v1/drafts/:id/address", h.SetDraftAddress)
	r.PATCH("/v1/drafts/:id/date", h.SetDraftDate)
	r.DELETE("/v1/drafts/:id", h.DeleteDraft)
	return r
}

func TestDraftHandler_CreateAndGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDraftUseCase(ctrl)
	r := draftRouter(uc)

	uc.EXPECT().Create().Return(usecase.Draft{ID: "draft-1"})

	req := httptest.NewRequest(http.MethodPost, "/v1/drafts", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	uc.EXPECT().Get("draft-x").Return(usecase.Draft{}, usecase.ErrDraftNotFound)

	req = httptest.NewRequest(http.MethodGet, "/v1/drafts/draft-x", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDraftHandler_SetDraftAddress(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDraftUseCase(ctrl)
	r := draftRouter(uc)

	uc.EXPECT().SetAddress("draft-1", "123 Rue Principale").Return(nil)

	req := httptest.NewRequest(http.MethodPatch, "/v1/drafts/draft-1/address", bytes.NewBufferString(`{"address":"123 Rue Principale"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", w.Code)
	}
}

func TestDraftHandler_SetDraftDate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		r := draftRouter(uc)

		req := httptest.NewRequest(http.MethodPatch, "/v1/drafts/draft-1/date", bytes.NewBufferString(`{"date":"10/09/2026"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		r := draftRouter(uc)

		day := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().SetDate("draft-1", day).Return(nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/drafts/draft-1/date", bytes.NewBufferString(`{"date":"2026-09-10"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
	})
}

func TestDraftHandler_DeleteDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDraftUseCase(ctrl)
	r := draftRouter(uc)

	uc.EXPECT().Delete("draft-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/drafts/draft-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
