package handlers

import (
	"net/http"
	"strings"

	response "mecanique_mobile/internal/adapter/http/dto/response"
	"mecanique_mobile/internal/usecase"
	"mecanique_mobile/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errMissingAddress = pkg.NewDomainErrorSimple("MISSING_ADDRESS", "The address query parameter is required", http.StatusBadRequest)
)

// DistanceHandler exposes the distance engine directly so the booking form
// can preview travel cost before submitting. Resolution always yields a
// number; the tier fallbacks make failures invisible here.

type DistanceHandler struct {
	resolver usecase.DistanceResolver
}

func NewDistanceHandler(resolver usecase.DistanceResolver) *DistanceHandler {
	return &DistanceHandler{resolver: resolver}
}

func (h *DistanceHandler) GetDistance(c *gin.Context) {
	address := strings.TrimSpace(c.Query("address"))
	if address == "" {
		c.JSON(errMissingAddress.HTTPStatus, errMissingAddress.ToHTTPError())
		return
	}

	km := h.resolver.ResolveKm(c.Request.Context(), address)
	c.JSON(http.StatusOK, response.FromDistance(address, km))
}
