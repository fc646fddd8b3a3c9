package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	request "mecanique_mobile/internal/adapter/http/dto/request"
	response "mecanique_mobile/internal/adapter/http/dto/response"
	"mecanique_mobile/internal/usecase"
	"mecanique_mobile/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)
)

// InvoiceHandler handles the staff-facing invoice records.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
	loc     *time.Location
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase, loc *time.Location) *InvoiceHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &InvoiceHandler{usecase: uc, loc: loc}
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.InvoiceCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	inv, err := h.usecase.Create(c.Request.Context(), payload.ToInvoice(h.loc))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(inv))
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// ListInvoices serves the staff listing. `q` narrows by substring over
// email, phone and invoice number; `email` narrows to one customer's exact
// address. `q` wins when both are present.
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		out, err := h.usecase.Search(c.Request.Context(), q)
		if err != nil {
			appErr := mapInvoiceError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromInvoices(out))
		return
	}

	if email := strings.TrimSpace(c.Query("email")); email != "" {
		out, err := h.usecase.ListByEmail(c.Request.Context(), email)
		if err != nil {
			appErr := mapInvoiceError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromInvoices(out))
		return
	}

	out, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(out))
}

func (h *InvoiceHandler) UpdateInvoiceStatus(c *gin.Context) {
	var payload request.InvoiceStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	inv, err := h.usecase.UpdateStatusByID(c.Request.Context(), c.Param("id"), payload.ResolveStatus())
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID),
		errors.Is(err, usecase.ErrInvalidInvoiceInput),
		errors.Is(err, usecase.ErrInvalidInvoiceStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
