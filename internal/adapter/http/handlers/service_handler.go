package handlers

import (
	"errors"
	"net/http"

	response "mecanique_mobile/internal/adapter/http/dto/response"
	"mecanique_mobile/internal/usecase"
	"mecanique_mobile/pkg"

	"github.com/gin-gonic/gin"
)

// ServiceHandler serves the service catalog the booking form renders.

type ServiceHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewServiceHandler(uc usecase.ICatalogUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

func (h *ServiceHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalog(h.usecase.Snapshot()))
}

// ReloadServices refreshes the catalog snapshot from storage. Used by staff
// after editing offerings; customer traffic keeps reading the old snapshot
// until the swap.
func (h *ServiceHandler) ReloadServices(c *gin.Context) {
	cat, err := h.usecase.Reload(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalog(cat))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCatalogUnavailable):
		return pkg.NewDomainErrorSimple("CATALOG_UNAVAILABLE", "Service catalog is unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
