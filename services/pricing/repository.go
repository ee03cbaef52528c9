package pricing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/skycab/ridepool/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/skycab/ridepool/services/pricing PricingRepo

// PricingRepo defines the interface for pricing persistence operations
type PricingRepo interface {
	// UpsertPricing writes the fare breakdown for a request, replacing any
	// earlier record so at most one live breakdown exists per request.
	UpsertPricing(ctx context.Context, record *models.PricingRecord) error
	GetPricingByRequestID(ctx context.Context, requestID uuid.UUID) (*models.PricingRecord, error)

	// CountActiveRequests counts non-terminal ride requests created at or
	// after the given cutoff.
	CountActiveRequests(ctx context.Context, since time.Time) (int, error)
	// CountAvailableCabs counts cabs currently marked available
	CountAvailableCabs(ctx context.Context) (int, error)
}
