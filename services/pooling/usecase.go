package pooling

import (
	"context"

	"github.com/google/uuid"

	"github.com/skycab/ridepool/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/skycab/ridepool/services/pooling PoolingUC

// PoolingUC defines the interface for pooling use cases
type PoolingUC interface {
	// RequestRide books a transfer: it either joins the best compatible
	// forming pool or founds a new one. Resubmitting the same idempotency
	// key returns the original request unchanged.
	RequestRide(ctx context.Context, input *models.RideRequestInput) (*models.RideRequest, error)

	// CancelRide removes a booking, shrinks or dissolves its pool and
	// reprices the riders left behind.
	CancelRide(ctx context.Context, requestID uuid.UUID, reason string) (*models.RideRequest, error)

	GetRequest(ctx context.Context, requestID uuid.UUID) (*models.RideRequest, error)
	GetPoolDetail(ctx context.Context, poolID uuid.UUID) (*models.PoolDetail, error)
	ListPassengerRequests(ctx context.Context, passengerID uuid.UUID) ([]*models.RideRequest, error)
}
