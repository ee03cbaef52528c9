package dispatch

import (
	"context"

	"github.com/google/uuid"

	"github.com/skycab/ridepool/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/skycab/ridepool/services/dispatch DispatchRepo

// DispatchRepo defines the pool and member persistence the scheduler needs
type DispatchRepo interface {
	// ListDispatchReadyPools returns FORMING pools that are full or whose
	// formation window has expired.
	ListDispatchReadyPools(ctx context.Context) ([]*models.RidePool, error)
	// ListStalePools returns pools left in FORMING or DISPATCHING,
	// regardless of window; used by startup recovery.
	ListStalePools(ctx context.Context) ([]*models.RidePool, error)
	GetPoolByID(ctx context.Context, id uuid.UUID) (*models.RidePool, error)
	GetActiveMembers(ctx context.Context, poolID uuid.UUID) ([]*models.RideRequest, error)
	// UpdatePoolVersioned applies the pool's fields iff its version is
	// unchanged; bumps the version on success.
	UpdatePoolVersioned(ctx context.Context, pool *models.RidePool) error
	UpdateRequestStatus(ctx context.Context, requestID uuid.UUID, status models.RideStatus) error
	// UnindexPool removes the pool from the forming-pool geo index once it
	// can no longer accept joins.
	UnindexPool(ctx context.Context, poolID uuid.UUID) error
}
