package pricing

import (
	"context"

	"github.com/google/uuid"

	"github.com/skycab/ridepool/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/skycab/ridepool/services/pricing PricingUC

// PricingUC defines the interface for pricing use cases
type PricingUC interface {
	// EstimateFare returns the fare ladder for pool sizes 1..maxPoolSize
	// using live demand figures, without persisting anything.
	EstimateFare(ctx context.Context, req models.PriceEstimateRequest) (*models.PriceEstimate, error)

	// PriceRequest computes and persists the per-person fare for one ride
	// request at the given pool occupancy.
	PriceRequest(ctx context.Context, request *models.RideRequest, poolSize int) (*models.PricingRecord, error)

	// RepriceMembers recomputes fares for every active member of a pool
	// after its membership changed. Returns one record per member, in the
	// order the members were given.
	RepriceMembers(ctx context.Context, members []*models.RideRequest) ([]*models.PricingRecord, error)

	GetPricingByRequestID(ctx context.Context, requestID uuid.UUID) (*models.PricingRecord, error)
}
