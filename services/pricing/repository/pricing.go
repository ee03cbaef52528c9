package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/skycab/ridepool/internal/pkg/apperrors"
	"github.com/skycab/ridepool/internal/pkg/constants"
	"github.com/skycab/ridepool/internal/pkg/database"
	"github.com/skycab/ridepool/internal/pkg/models"
)

// PricingRepo persists fare breakdowns in Postgres and reads live demand
// counters from Postgres and Redis.
type PricingRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	redis *database.RedisClient
}

func NewPricingRepository(cfg *models.Config, db *sqlx.DB, redis *database.RedisClient) *PricingRepo {
	return &PricingRepo{
		cfg:   cfg,
		db:    db,
		redis: redis,
	}
}

// UpsertPricing replaces the fare breakdown for a request. The unique
// constraint on ride_request_id keeps one live record per request.
func (r *PricingRepo) UpsertPricing(ctx context.Context, record *models.PricingRecord) error {
	query := `
		INSERT INTO pricing_records (
			id, ride_request_id, base_price, distance_km,
			demand_multiplier, sharing_discount, surge_factor, final_price,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (ride_request_id) DO UPDATE SET
			base_price = EXCLUDED.base_price,
			distance_km = EXCLUDED.distance_km,
			demand_multiplier = EXCLUDED.demand_multiplier,
			sharing_discount = EXCLUDED.sharing_discount,
			surge_factor = EXCLUDED.surge_factor,
			final_price = EXCLUDED.final_price,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		record.ID,
		record.RideRequestID,
		record.BasePrice,
		record.DistanceKm,
		record.DemandMultiplier,
		record.SharingDiscount,
		record.SurgeFactor,
		record.FinalPrice,
		record.CreatedAt,
		record.UpdatedAt,
	)
	return err
}

// GetPricingByRequestID returns the live fare breakdown for a request
func (r *PricingRepo) GetPricingByRequestID(ctx context.Context, requestID uuid.UUID) (*models.PricingRecord, error) {
	var record models.PricingRecord
	query := `SELECT * FROM pricing_records WHERE ride_request_id = $1`

	err := r.db.GetContext(ctx, &record, query, requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundf("pricing for request %s not found", requestID)
		}
		return nil, err
	}
	return &record, nil
}

// CountActiveRequests counts non-terminal requests created at or after the cutoff
func (r *PricingRepo) CountActiveRequests(ctx context.Context, since time.Time) (int, error) {
	var count int
	query := `
		SELECT COUNT(*) FROM ride_requests
		WHERE status NOT IN ($1, $2) AND created_at >= $3
	`

	err := r.db.GetContext(ctx, &count, query,
		models.RideStatusCompleted, models.RideStatusCancelled, since)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountAvailableCabs reads the available-cab set cardinality from Redis
func (r *PricingRepo) CountAvailableCabs(ctx context.Context) (int, error) {
	n, err := r.redis.SCard(ctx, constants.KeyAvailableCabs)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
