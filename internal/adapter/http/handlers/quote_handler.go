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
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for quote submissions and the staff
// operations on persisted quotes.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
	loc     *time.Location
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, loc *time.Location) *QuoteHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &QuoteHandler{usecase: uc, loc: loc}
}

// SubmitQuote accepts the full quote form, prices it and persists it. A 201
// means the quote record exists; booking or email hiccups surface as
// warnings on the response, not as errors.
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	var payload request.QuoteSubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	preferred, err := payload.ResolvePreferredDate(h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_PREFERRED_DATE", "Invalid preferred date", http.StatusBadRequest).ToHTTPError())
		return
	}

	in := usecase.SubmitQuoteInput{
		CustomerName:    payload.CustomerName,
		CustomerEmail:   payload.CustomerEmail,
		CustomerPhone:   payload.CustomerPhone,
		CustomerAddress: payload.CustomerAddress,
		VehicleInfo:     payload.VehicleInfo,
		VehicleVIN:      payload.VehicleVIN,
		Services:        payload.ResolveServices(),
		PreferredDate:   preferred,
		TimeSlotKey:     payload.TimeSlot,
		AcceptedTerms:   payload.AcceptedTerms,
	}

	res, err := h.usecase.SubmitQuote(c.Request.Context(), in)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.SubmitQuoteResponse{
		Quote:    response.FromQuote(res.Quote),
		Warnings: res.Warnings,
	})
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// ListQuotes returns quotes, narrowed to one customer when the email query
// parameter is present.
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, response.FromQuote(q))
	}
	c.JSON(http.StatusOK, out)
}

func (h *QuoteHandler) ConfirmQuote(c *gin.Context) {
	q, err := h.usecase.ConfirmByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *QuoteHandler) CancelQuote(c *gin.Context) {
	q, err := h.usecase.CancelByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrNoServicesSelected),
		errors.Is(err, usecase.ErrMissingContactFields),
		errors.Is(err, usecase.ErrMissingSchedule),
		errors.Is(err, usecase.ErrInvalidTimeSlot):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTermsNotAccepted):
		return pkg.NewDomainErrorSimple("TERMS_NOT_ACCEPTED", "Terms must be accepted", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrOutsideServiceRadius):
		return pkg.NewDomainErrorSimple("OUTSIDE_SERVICE_RADIUS", "Address is outside the service area", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrLeadTimeViolated):
		return pkg.NewDomainErrorSimple("LEAD_TIME_VIOLATED", "Appointments require 72 hours notice", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
