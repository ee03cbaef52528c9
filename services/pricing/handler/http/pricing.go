package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/skycab/ridepool/internal/pkg/models"
	"github.com/skycab/ridepool/internal/utils"
	"github.com/skycab/ridepool/services/pricing"
)

// PricingHandler exposes pricing endpoints
type PricingHandler struct {
	pricingUC pricing.PricingUC
}

func NewPricingHandler(pricingUC pricing.PricingUC) *PricingHandler {
	return &PricingHandler{pricingUC: pricingUC}
}

// RegisterRoutes registers the fare routes
func (h *PricingHandler) RegisterRoutes(e *echo.Echo) {
	fareGroup := e.Group("/fares")
	fareGroup.GET("/estimate", h.EstimateFare)
	fareGroup.GET("/rides/:id", h.GetRequestPricing)
}

// EstimateFare returns the fare ladder for a pickup/drop pair
func (h *PricingHandler) EstimateFare(c echo.Context) error {
	req := models.PriceEstimateRequest{}

	var err error
	if req.PickupLat, err = parseCoord(c, "pickup_lat"); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	if req.PickupLng, err = parseCoord(c, "pickup_lng"); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	if req.DropLat, err = parseCoord(c, "drop_lat"); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	if req.DropLng, err = parseCoord(c, "drop_lng"); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	estimate, err := h.pricingUC.EstimateFare(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Fare estimate", estimate)
}

// GetRequestPricing returns the live fare breakdown for a ride request
func (h *PricingHandler) GetRequestPricing(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	record, err := h.pricingUC.GetPricingByRequestID(c.Request().Context(), requestID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Pricing record", record)
}

func parseCoord(c echo.Context, name string) (float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return v, nil
}
