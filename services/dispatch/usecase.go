package dispatch

import (
	"context"

	"github.com/google/uuid"

	"github.com/skycab/ridepool/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/skycab/ridepool/services/dispatch DispatchUC

// DispatchUC defines the interface for cab allocation and trip lifecycle
type DispatchUC interface {
	// RunRecovery dissolves pools stranded by a prior crashed run and
	// releases orphaned cabs. Must succeed before the scheduler starts.
	RunRecovery(ctx context.Context) error

	// DispatchReadyPools processes every dispatch-ready pool once.
	// Failures are isolated per pool; the first error is returned after
	// all pools were attempted.
	DispatchReadyPools(ctx context.Context) error

	// StartTrip moves a CONFIRMED pool and its members to IN_PROGRESS and
	// puts the cab ON_TRIP.
	StartTrip(ctx context.Context, poolID uuid.UUID) (*models.RidePool, error)

	// CompleteTrip moves an IN_PROGRESS pool and its members to COMPLETED
	// and returns the cab to AVAILABLE.
	CompleteTrip(ctx context.Context, poolID uuid.UUID) (*models.RidePool, error)
}
