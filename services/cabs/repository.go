package cabs

import (
	"context"

	"github.com/google/uuid"

	"github.com/skycab/ridepool/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/skycab/ridepool/services/cabs CabRepo

// CabRepo defines the interface for cab persistence and the availability
// geo index.
type CabRepo interface {
	CreateCab(ctx context.Context, cab *models.Cab) error
	GetCabByID(ctx context.Context, id uuid.UUID) (*models.Cab, error)
	ListCabs(ctx context.Context) ([]*models.Cab, error)
	// UpdateLocation moves the cab and refreshes its geo index entry
	UpdateLocation(ctx context.Context, cabID uuid.UUID, lat, lng float64) error
	// FindAvailableNear returns AVAILABLE cabs within radiusKm, nearest first
	FindAvailableNear(ctx context.Context, lat, lng, radiusKm float64) ([]models.NearbyCab, error)
	// ClaimCab flips AVAILABLE to ASSIGNED atomically. Returns false when
	// the cab was already taken; the caller tries the next candidate.
	ClaimCab(ctx context.Context, cabID uuid.UUID) (bool, error)
	// SetStatus moves the cab to the given status without availability
	// bookkeeping; used for ASSIGNED -> ON_TRIP.
	SetStatus(ctx context.Context, cabID uuid.UUID, status models.CabStatus) error
	// ReleaseCab returns the cab to AVAILABLE and re-enters it into the
	// availability set and geo index at its current position.
	ReleaseCab(ctx context.Context, cabID uuid.UUID) error
	// ListOrphanedAssignedCabIDs finds cabs stuck in ASSIGNED with no
	// active pool referencing them; used by startup recovery.
	ListOrphanedAssignedCabIDs(ctx context.Context) ([]uuid.UUID, error)
}
