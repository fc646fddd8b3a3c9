package handlers

import (
	"errors"
	"net/http"
	"time"

	request "mecanique_mobile/internal/adapter/http/dto/request"
	response "mecanique_mobile/internal/adapter/http/dto/response"
	"mecanique_mobile/internal/usecase"
	"mecanique_mobile/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDraftPayload = pkg.NewDomainErrorSimple("INVALID_DRAFT_INPUT", "Invalid draft payload", http.StatusBadRequest)
)

// DraftHandler exposes the reactive quoting drafts. Address and date edits
// are acknowledged immediately; the recomputed distance and slots show up
// on a later Get once the debounced work lands.

type DraftHandler struct {
	usecase usecase.IDraftUseCase
	loc     *time.Location
}

func NewDraftHandler(uc usecase.IDraftUseCase, loc *time.Location) *DraftHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &DraftHandler{usecase: uc, loc: loc}
}

func (h *DraftHandler) CreateDraft(c *gin.Context) {
	c.JSON(http.StatusCreated, response.FromDraft(h.usecase.Create()))
}

func (h *DraftHandler) GetDraft(c *gin.Context) {
	d, err := h.usecase.Get(c.Param("id"))
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(d))
}

func (h *DraftHandler) SetDraftAddress(c *gin.Context) {
	var payload request.DraftAddressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	if err := h.usecase.SetAddress(c.Param("id"), payload.Address); err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusAccepted)
}

func (h *DraftHandler) SetDraftDate(c *gin.Context) {
	var payload request.DraftDateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	date, err := payload.ResolveDate(h.loc)
	if err != nil {
		c.JSON(errInvalidDate.HTTPStatus, errInvalidDate.ToHTTPError())
		return
	}

	if err := h.usecase.SetDate(c.Param("id"), date); err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusAccepted)
}

func (h *DraftHandler) DeleteDraft(c *gin.Context) {
	if err := h.usecase.Delete(c.Param("id")); err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapDraftError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
