package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/skycab/ridepool/internal/pkg/models"
	"github.com/skycab/ridepool/internal/utils"
	"github.com/skycab/ridepool/services/pooling"
)

// PoolingHandler exposes booking and pool endpoints
type PoolingHandler struct {
	poolingUC pooling.PoolingUC
}

func NewPoolingHandler(poolingUC pooling.PoolingUC) *PoolingHandler {
	return &PoolingHandler{poolingUC: poolingUC}
}

// RegisterRoutes registers the booking and pool routes
func (h *PoolingHandler) RegisterRoutes(e *echo.Echo) {
	rideGroup := e.Group("/rides")
	rideGroup.POST("", h.RequestRide)
	rideGroup.GET("/:id", h.GetRequest)
	rideGroup.POST("/:id/cancel", h.CancelRide)

	poolGroup := e.Group("/pools")
	poolGroup.GET("/:id", h.GetPool)

	e.GET("/passengers/:id/rides", h.ListPassengerRides)
}

// RequestRide books a transfer
func (h *PoolingHandler) RequestRide(c echo.Context) error {
	var input models.RideRequestInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if input.PassengerID == "" {
		return utils.BadRequestResponse(c, "Passenger ID is required")
	}
	if input.IdempotencyKey == "" {
		return utils.BadRequestResponse(c, "Idempotency key is required")
	}

	request, err := h.poolingUC.RequestRide(c.Request().Context(), &input)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Ride request pooled", request)
}

// CancelRide cancels a booking
func (h *PoolingHandler) CancelRide(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	var body models.CancelRideRequest
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	request, err := h.poolingUC.CancelRide(c.Request().Context(), requestID, body.Reason)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride request cancelled", request)
}

// GetRequest returns one booking
func (h *PoolingHandler) GetRequest(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	request, err := h.poolingUC.GetRequest(c.Request().Context(), requestID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride request", request)
}

// GetPool returns a pool with its riders and assigned cab
func (h *PoolingHandler) GetPool(c echo.Context) error {
	poolID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid pool ID")
	}

	detail, err := h.poolingUC.GetPoolDetail(c.Request().Context(), poolID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Pool detail", detail)
}

// ListPassengerRides returns a passenger's booking history
func (h *PoolingHandler) ListPassengerRides(c echo.Context) error {
	passengerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid passenger ID")
	}

	requests, err := h.poolingUC.ListPassengerRequests(c.Request().Context(), passengerID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride requests", requests)
}
