package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/skycab/ridepool/internal/pkg/models"
	"github.com/skycab/ridepool/internal/utils"
	"github.com/skycab/ridepool/services/cabs"
)

// CabHandler exposes cab onboarding and telemetry endpoints
type CabHandler struct {
	cabUC cabs.CabUC
}

func NewCabHandler(cabUC cabs.CabUC) *CabHandler {
	return &CabHandler{cabUC: cabUC}
}

// RegisterRoutes registers the cab routes
func (h *CabHandler) RegisterRoutes(e *echo.Echo) {
	cabGroup := e.Group("/cabs")
	cabGroup.POST("", h.RegisterCab)
	cabGroup.GET("", h.ListCabs)
	cabGroup.GET("/:id", h.GetCab)
	cabGroup.PUT("/:id/location", h.UpdateLocation)
}

// RegisterCab onboards a cab
func (h *CabHandler) RegisterCab(c echo.Context) error {
	var registration models.CabRegistration
	if err := c.Bind(&registration); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	cab, err := h.cabUC.RegisterCab(c.Request().Context(), &registration)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Cab registered", cab)
}

// UpdateLocation records a position fix
func (h *CabHandler) UpdateLocation(c echo.Context) error {
	cabID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid cab ID")
	}

	var body models.CabLocationUpdate
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.cabUC.UpdateLocation(c.Request().Context(), cabID, body.Latitude, body.Longitude); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Cab location updated", nil)
}

// ListCabs returns the whole fleet
func (h *CabHandler) ListCabs(c echo.Context) error {
	fleet, err := h.cabUC.ListCabs(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Cabs", fleet)
}

// GetCab returns one cab
func (h *CabHandler) GetCab(c echo.Context) error {
	cabID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid cab ID")
	}

	cab, err := h.cabUC.GetCab(c.Request().Context(), cabID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Cab", cab)
}
