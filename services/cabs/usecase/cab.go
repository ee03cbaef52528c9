package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/skycab/ridepool/internal/pkg/apperrors"
	"github.com/skycab/ridepool/internal/pkg/logger"
	"github.com/skycab/ridepool/internal/pkg/models"
	"github.com/skycab/ridepool/services/cabs"
)

type cabUC struct {
	cfg  *models.Config
	repo cabs.CabRepo
}

// NewCabUC creates a new cab usecase
func NewCabUC(cfg *models.Config, repo cabs.CabRepo) cabs.CabUC {
	return &cabUC{
		cfg:  cfg,
		repo: repo,
	}
}

// RegisterCab onboards a cab as AVAILABLE at its reported position.
// Unset capacities fall back to the standard airport-van configuration.
func (uc *cabUC) RegisterCab(ctx context.Context, registration *models.CabRegistration) (*models.Cab, error) {
	if registration.LicensePlate == "" {
		return nil, apperrors.InvalidOperationf("license plate is required")
	}
	if registration.DriverName == "" {
		return nil, apperrors.InvalidOperationf("driver name is required")
	}
	if !validCoordinates(registration.CurrentLat, registration.CurrentLng) {
		return nil, apperrors.InvalidOperationf("invalid cab coordinates")
	}

	seats := registration.TotalSeats
	if seats <= 0 {
		seats = uc.cfg.Pooling.DefaultSeats
	}
	luggage := registration.LuggageCapacity
	if luggage <= 0 {
		luggage = uc.cfg.Pooling.DefaultLuggage
	}

	now := time.Now()
	cab := &models.Cab{
		ID:              uuid.New(),
		LicensePlate:    registration.LicensePlate,
		DriverName:      registration.DriverName,
		TotalSeats:      seats,
		LuggageCapacity: luggage,
		CurrentLat:      registration.CurrentLat,
		CurrentLng:      registration.CurrentLng,
		Status:          models.CabStatusAvailable,
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.repo.CreateCab(ctx, cab); err != nil {
		logger.Error("Failed to register cab",
			logger.String("license_plate", registration.LicensePlate),
			logger.Err(err))
		return nil, err
	}

	logger.Info("Cab registered",
		logger.String("cab_id", cab.ID.String()),
		logger.String("license_plate", cab.LicensePlate),
		logger.Int("total_seats", cab.TotalSeats))
	return cab, nil
}

// UpdateLocation records a position fix for a cab
func (uc *cabUC) UpdateLocation(ctx context.Context, cabID uuid.UUID, lat, lng float64) error {
	if !validCoordinates(lat, lng) {
		return apperrors.InvalidOperationf("invalid cab coordinates")
	}
	return uc.repo.UpdateLocation(ctx, cabID, lat, lng)
}

func validCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// GetCab returns one cab
func (uc *cabUC) GetCab(ctx context.Context, cabID uuid.UUID) (*models.Cab, error) {
	return uc.repo.GetCabByID(ctx, cabID)
}

// ListCabs returns the whole fleet
func (uc *cabUC) ListCabs(ctx context.Context) ([]*models.Cab, error) {
	return uc.repo.ListCabs(ctx)
}
