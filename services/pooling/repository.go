package pooling

import (
	"context"

	"github.com/google/uuid"

	"github.com/skycab/ridepool/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/skycab/ridepool/services/pooling PoolingRepo

// PoolingRepo defines the interface for ride request and pool persistence
type PoolingRepo interface {
	// ride requests
	CreateRequest(ctx context.Context, request *models.RideRequest) error
	GetRequestByID(ctx context.Context, id uuid.UUID) (*models.RideRequest, error)
	GetRequestByIdempotencyKey(ctx context.Context, key string) (*models.RideRequest, error)
	HasActiveRequest(ctx context.Context, passengerID uuid.UUID) (bool, error)
	UpdateRequestStatus(ctx context.Context, id uuid.UUID, status models.RideStatus) error
	// AssignRequestToPool links a request to a pool and moves it to POOLED
	AssignRequestToPool(ctx context.Context, requestID, poolID uuid.UUID) error
	ListRequestsByPassenger(ctx context.Context, passengerID uuid.UUID) ([]*models.RideRequest, error)

	// passengers
	PassengerExists(ctx context.Context, passengerID uuid.UUID) (bool, error)

	// pools
	CreatePool(ctx context.Context, pool *models.RidePool) error
	GetPoolByID(ctx context.Context, id uuid.UUID) (*models.RidePool, error)
	// GetActiveMembers returns the pool's non-terminal member requests
	GetActiveMembers(ctx context.Context, poolID uuid.UUID) ([]*models.RideRequest, error)
	// FindFormingPoolsNear returns FORMING pools whose anchor pickup lies
	// within radiusKm of the point, nearest first.
	FindFormingPoolsNear(ctx context.Context, lat, lng, radiusKm float64) ([]*models.RidePool, error)
	// UpdatePoolVersioned applies the pool's new state only if the stored
	// version still matches; on success the pool's version is bumped.
	// Returns apperrors.ErrVersionConflict when a concurrent writer won.
	UpdatePoolVersioned(ctx context.Context, pool *models.RidePool) error
	// IndexFormingPool adds the pool's anchor to the forming-pool geo index;
	// UnindexPool removes it once the pool stops accepting joins.
	IndexFormingPool(ctx context.Context, pool *models.RidePool) error
	UnindexPool(ctx context.Context, poolID uuid.UUID) error
}
