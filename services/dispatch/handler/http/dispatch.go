package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/skycab/ridepool/internal/utils"
	"github.com/skycab/ridepool/services/dispatch"
)

// DispatchHandler exposes trip lifecycle endpoints
type DispatchHandler struct {
	dispatchUC dispatch.DispatchUC
}

func NewDispatchHandler(dispatchUC dispatch.DispatchUC) *DispatchHandler {
	return &DispatchHandler{dispatchUC: dispatchUC}
}

// RegisterRoutes registers the trip lifecycle routes
func (h *DispatchHandler) RegisterRoutes(e *echo.Echo) {
	poolGroup := e.Group("/pools")
	poolGroup.POST("/:id/start", h.StartTrip)
	poolGroup.POST("/:id/complete", h.CompleteTrip)
}

// StartTrip marks a confirmed pool's trip as started
func (h *DispatchHandler) StartTrip(c echo.Context) error {
	poolID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid pool ID")
	}

	pool, err := h.dispatchUC.StartTrip(c.Request().Context(), poolID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip started", pool)
}

// CompleteTrip marks an in-progress pool's trip as completed
func (h *DispatchHandler) CompleteTrip(c echo.Context) error {
	poolID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid pool ID")
	}

	pool, err := h.dispatchUC.CompleteTrip(c.Request().Context(), poolID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip completed", pool)
}
