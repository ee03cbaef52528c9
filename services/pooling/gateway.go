package pooling

import (
	"context"

	"github.com/google/uuid"

	"github.com/skycab/ridepool/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/skycab/ridepool/services/pooling PoolingGW

// PoolingGW defines the interface for pooling event publication and
// passenger notification. Publishes are durable, notifies are
// fire-and-forget.
type PoolingGW interface {
	PublishRidePooled(ctx context.Context, event models.PoolEvent) error
	PublishRideCancelled(ctx context.Context, event models.PoolEvent) error
	PublishPoolDissolved(ctx context.Context, event models.PoolEvent) error
	PublishPriceUpdated(ctx context.Context, event models.PoolEvent) error

	NotifyPassenger(passengerID uuid.UUID, eventType string, payload interface{})
	NotifyDriver(cabID uuid.UUID, eventType string, payload interface{})
}
