package dispatch

import (
	"context"

	"github.com/google/uuid"

	"github.com/skycab/ridepool/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/skycab/ridepool/services/dispatch DispatchGW

// DispatchGW defines the interface for dispatch event publication and
// notification. Publishes are durable, notifies are fire-and-forget.
type DispatchGW interface {
	PublishPoolDispatched(ctx context.Context, event models.PoolEvent) error
	PublishPoolDissolved(ctx context.Context, event models.PoolEvent) error
	PublishTripStarted(ctx context.Context, event models.PoolEvent) error
	PublishTripCompleted(ctx context.Context, event models.PoolEvent) error

	NotifyPassenger(passengerID uuid.UUID, eventType string, payload interface{})
	NotifyDriver(cabID uuid.UUID, eventType string, payload interface{})
}
