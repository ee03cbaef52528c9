package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/skycab/ridepool/internal/pkg/apperrors"
	"github.com/skycab/ridepool/internal/pkg/logger"
	"github.com/skycab/ridepool/internal/pkg/models"
	"github.com/skycab/ridepool/internal/utils"
	"github.com/skycab/ridepool/services/pricing"
	"github.com/skycab/ridepool/services/pricing/engine"
)

// pricingUC implements the pricing.PricingUC interface
type pricingUC struct {
	cfg    *models.Config
	repo   pricing.PricingRepo
	engine *engine.Engine
	now    func() time.Time
}

// NewPricingUC creates a new pricing use case
func NewPricingUC(cfg *models.Config, repo pricing.PricingRepo) pricing.PricingUC {
	return &pricingUC{
		cfg:    cfg,
		repo:   repo,
		engine: engine.New(cfg.Pricing),
		now:    time.Now,
	}
}

// EstimateFare returns the fare ladder for every possible pool occupancy,
// from riding solo up to a full pool, using live demand figures.
func (uc *pricingUC) EstimateFare(ctx context.Context, req models.PriceEstimateRequest) (*models.PriceEstimate, error) {
	if err := validateCoordinates(req.PickupLat, req.PickupLng); err != nil {
		return nil, err
	}
	if err := validateCoordinates(req.DropLat, req.DropLng); err != nil {
		return nil, err
	}

	distance := utils.DistanceKm(req.PickupLat, req.PickupLng, req.DropLat, req.DropLng)
	active, available, err := uc.demandCounts(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	estimate := &models.PriceEstimate{
		DistanceKm:       distance,
		BaseFarePerKm:    uc.cfg.Pricing.BaseFarePerKm,
		DemandMultiplier: uc.engine.DemandMultiplier(active, available),
		SurgeFactor:      uc.engine.SurgeFactor(now.Hour()),
	}
	if available <= 0 {
		estimate.Notes = "no cabs available right now, showing maximum demand pricing"
	}

	for size := 1; size <= uc.cfg.Pooling.MaxPoolSize; size++ {
		result := uc.engine.Calculate(engine.Inputs{
			DistanceKm:     distance,
			PoolSize:       size,
			ActiveRequests: active,
			AvailableCabs:  available,
			Hour:           now.Hour(),
		})
		estimate.Prices = append(estimate.Prices, models.PriceOption{
			PoolSize:        size,
			Label:           poolSizeLabel(size),
			SharingDiscount: result.SharingDiscount,
			Price:           result.FinalPrice,
		})
	}
	return estimate, nil
}

// PriceRequest computes and persists the per-person fare for one request
func (uc *pricingUC) PriceRequest(ctx context.Context, request *models.RideRequest, poolSize int) (*models.PricingRecord, error) {
	active, available, err := uc.demandCounts(ctx)
	if err != nil {
		return nil, err
	}
	record, err := uc.priceOne(ctx, request, poolSize, active, available)
	if err != nil {
		return nil, err
	}

	logger.Info("Priced ride request",
		logger.String("request_id", request.ID.String()),
		logger.Int("pool_size", poolSize),
		logger.Float64("final_price", record.FinalPrice))
	return record, nil
}

// RepriceMembers recomputes every member's fare at the pool's current
// occupancy. Demand figures are sampled once so all members see the same
// multiplier.
func (uc *pricingUC) RepriceMembers(ctx context.Context, members []*models.RideRequest) ([]*models.PricingRecord, error) {
	if len(members) == 0 {
		return nil, nil
	}

	occupancy := 0
	for _, m := range members {
		occupancy += m.PassengerCount
	}

	active, available, err := uc.demandCounts(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]*models.PricingRecord, 0, len(members))
	for _, member := range members {
		record, err := uc.priceOne(ctx, member, occupancy, active, available)
		if err != nil {
			return nil, fmt.Errorf("repricing request %s: %w", member.ID, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// GetPricingByRequestID returns the live fare breakdown for a request
func (uc *pricingUC) GetPricingByRequestID(ctx context.Context, requestID uuid.UUID) (*models.PricingRecord, error) {
	return uc.repo.GetPricingByRequestID(ctx, requestID)
}

func (uc *pricingUC) priceOne(ctx context.Context, request *models.RideRequest, poolSize, active, available int) (*models.PricingRecord, error) {
	distance := utils.DistanceKm(request.PickupLat, request.PickupLng, request.DropLat, request.DropLng)
	result := uc.engine.Calculate(engine.Inputs{
		DistanceKm:     distance,
		PoolSize:       poolSize,
		ActiveRequests: active,
		AvailableCabs:  available,
		Hour:           uc.now().Hour(),
	})

	now := uc.now()
	record := &models.PricingRecord{
		ID:               uuid.New(),
		RideRequestID:    request.ID,
		BasePrice:        result.BasePrice,
		DistanceKm:       result.DistanceKm,
		DemandMultiplier: result.DemandMultiplier,
		SharingDiscount:  result.SharingDiscount,
		SurgeFactor:      result.SurgeFactor,
		FinalPrice:       result.FinalPrice,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.UpsertPricing(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (uc *pricingUC) demandCounts(ctx context.Context) (active, available int, err error) {
	cutoff := uc.now().Add(-time.Duration(uc.cfg.Pricing.ActiveWindowMinutes) * time.Minute)
	active, err = uc.repo.CountActiveRequests(ctx, cutoff)
	if err != nil {
		return 0, 0, err
	}
	available, err = uc.repo.CountAvailableCabs(ctx)
	if err != nil {
		return 0, 0, err
	}
	return active, available, nil
}

func validateCoordinates(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return apperrors.InvalidOperationf("latitude %.6f out of range", lat)
	}
	if lng < -180 || lng > 180 {
		return apperrors.InvalidOperationf("longitude %.6f out of range", lng)
	}
	return nil
}

func poolSizeLabel(size int) string {
	if size == 1 {
		return "solo"
	}
	return fmt.Sprintf("shared x%d", size)
}
