package cabs

import (
	"context"

	"github.com/google/uuid"

	"github.com/skycab/ridepool/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/skycab/ridepool/services/cabs CabUC

// CabUC defines the interface for cab use cases
type CabUC interface {
	// RegisterCab onboards a cab as AVAILABLE at its reported position
	RegisterCab(ctx context.Context, registration *models.CabRegistration) (*models.Cab, error)
	// UpdateLocation reports a position fix for a cab
	UpdateLocation(ctx context.Context, cabID uuid.UUID, lat, lng float64) error
	GetCab(ctx context.Context, cabID uuid.UUID) (*models.Cab, error)
	ListCabs(ctx context.Context) ([]*models.Cab, error)
}
