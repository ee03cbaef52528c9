package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/skycab/ridepool/internal/pkg/apperrors"
	"github.com/skycab/ridepool/internal/pkg/constants"
	"github.com/skycab/ridepool/internal/pkg/database"
	"github.com/skycab/ridepool/internal/pkg/models"
)

// PoolingRepo persists ride requests and pools in Postgres and keeps the
// forming-pool geo index in Redis.
type PoolingRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	redis *database.RedisClient
}

func NewPoolingRepository(cfg *models.Config, db *sqlx.DB, redis *database.RedisClient) *PoolingRepo {
	return &PoolingRepo{
		cfg:   cfg,
		db:    db,
		redis: redis,
	}
}

// CreateRequest inserts a new ride request
func (r *PoolingRepo) CreateRequest(ctx context.Context, request *models.RideRequest) error {
	query := `
		INSERT INTO ride_requests (
			id, passenger_id, pickup_lat, pickup_lng, drop_lat, drop_lng,
			passenger_count, luggage_count, max_detour_km, status,
			pool_id, estimated_price, idempotency_key, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		request.ID,
		request.PassengerID,
		request.PickupLat,
		request.PickupLng,
		request.DropLat,
		request.DropLng,
		request.PassengerCount,
		request.LuggageCount,
		request.MaxDetourKm,
		request.Status,
		request.PoolID,
		request.EstimatedPrice,
		request.IdempotencyKey,
		request.CreatedAt,
		request.UpdatedAt,
	)
	return err
}

// GetRequestByID returns one ride request
func (r *PoolingRepo) GetRequestByID(ctx context.Context, id uuid.UUID) (*models.RideRequest, error) {
	var request models.RideRequest
	query := `SELECT * FROM ride_requests WHERE id = $1`

	err := r.db.GetContext(ctx, &request, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundf("ride request %s not found", id)
		}
		return nil, err
	}
	return &request, nil
}

// GetRequestByIdempotencyKey returns the request previously accepted under
// the key, or ErrNotFound for a fresh key.
func (r *PoolingRepo) GetRequestByIdempotencyKey(ctx context.Context, key string) (*models.RideRequest, error) {
	var request models.RideRequest
	query := `SELECT * FROM ride_requests WHERE idempotency_key = $1`

	err := r.db.GetContext(ctx, &request, query, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundf("no request with idempotency key %s", key)
		}
		return nil, err
	}
	return &request, nil
}

// HasActiveRequest reports whether the passenger already has a non-terminal booking
func (r *PoolingRepo) HasActiveRequest(ctx context.Context, passengerID uuid.UUID) (bool, error) {
	var count int
	query := `
		SELECT COUNT(*) FROM ride_requests
		WHERE passenger_id = $1 AND status NOT IN ($2, $3)
	`

	err := r.db.GetContext(ctx, &count, query, passengerID,
		models.RideStatusCompleted, models.RideStatusCancelled)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateRequestStatus moves a request to the given status
func (r *PoolingRepo) UpdateRequestStatus(ctx context.Context, id uuid.UUID, status models.RideStatus) error {
	query := `UPDATE ride_requests SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.NotFoundf("ride request %s not found", id)
	}
	return nil
}

// AssignRequestToPool links a request to its pool and marks it POOLED
func (r *PoolingRepo) AssignRequestToPool(ctx context.Context, requestID, poolID uuid.UUID) error {
	query := `UPDATE ride_requests SET pool_id = $1, status = $2, updated_at = $3 WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query, poolID, models.RideStatusPooled, time.Now(), requestID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.NotFoundf("ride request %s not found", requestID)
	}
	return nil
}

// ListRequestsByPassenger returns the passenger's bookings, newest first
func (r *PoolingRepo) ListRequestsByPassenger(ctx context.Context, passengerID uuid.UUID) ([]*models.RideRequest, error) {
	var requests []*models.RideRequest
	query := `SELECT * FROM ride_requests WHERE passenger_id = $1 ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &requests, query, passengerID); err != nil {
		return nil, err
	}
	return requests, nil
}

// PassengerExists reports whether the passenger is registered
func (r *PoolingRepo) PassengerExists(ctx context.Context, passengerID uuid.UUID) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM passengers WHERE id = $1`

	if err := r.db.GetContext(ctx, &count, query, passengerID); err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreatePool inserts a new pool at version 1
func (r *PoolingRepo) CreatePool(ctx context.Context, pool *models.RidePool) error {
	query := `
		INSERT INTO ride_pools (
			id, cab_id, status, total_occupied_seats, total_luggage,
			route_distance_km, pickup_lat, pickup_lng, drop_lat, drop_lng,
			window_expires_at, dispatched_at, version, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		pool.ID,
		pool.CabID,
		pool.Status,
		pool.TotalOccupiedSeats,
		pool.TotalLuggage,
		pool.RouteDistanceKm,
		pool.PickupLat,
		pool.PickupLng,
		pool.DropLat,
		pool.DropLng,
		pool.WindowExpiresAt,
		pool.DispatchedAt,
		pool.Version,
		pool.CreatedAt,
		pool.UpdatedAt,
	)
	return err
}

// GetPoolByID returns one pool with its assigned cab joined in when present
func (r *PoolingRepo) GetPoolByID(ctx context.Context, id uuid.UUID) (*models.RidePool, error) {
	var pool models.RidePool
	query := `SELECT * FROM ride_pools WHERE id = $1`

	err := r.db.GetContext(ctx, &pool, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundf("pool %s not found", id)
		}
		return nil, err
	}

	if pool.CabID != nil {
		var cab models.Cab
		err = r.db.GetContext(ctx, &cab, `SELECT * FROM cabs WHERE id = $1`, *pool.CabID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		if err == nil {
			pool.Cab = &cab
		}
	}
	return &pool, nil
}

// GetActiveMembers returns the pool's non-terminal member requests,
// oldest join first.
func (r *PoolingRepo) GetActiveMembers(ctx context.Context, poolID uuid.UUID) ([]*models.RideRequest, error) {
	var members []*models.RideRequest
	query := `
		SELECT * FROM ride_requests
		WHERE pool_id = $1 AND status NOT IN ($2, $3)
		ORDER BY created_at ASC
	`

	err := r.db.SelectContext(ctx, &members, query, poolID,
		models.RideStatusCompleted, models.RideStatusCancelled)
	if err != nil {
		return nil, err
	}
	return members, nil
}

// FindFormingPoolsNear resolves nearby pool IDs from the Redis geo index,
// then loads them from Postgres and drops any that are no longer FORMING.
// Order is nearest first, as returned by the index.
func (r *PoolingRepo) FindFormingPoolsNear(ctx context.Context, lat, lng, radiusKm float64) ([]*models.RidePool, error) {
	locations, err := r.redis.GeoRadius(ctx, constants.KeyPoolGeo, lng, lat, radiusKm, "km")
	if err != nil {
		return nil, err
	}

	pools := make([]*models.RidePool, 0, len(locations))
	for _, loc := range locations {
		poolID, err := uuid.Parse(loc.Name)
		if err != nil {
			continue
		}
		pool, err := r.GetPoolByID(ctx, poolID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if pool.Status != models.PoolStatusForming {
			continue
		}
		pools = append(pools, pool)
	}
	return pools, nil
}

// UpdatePoolVersioned writes the pool's new state guarded by its version.
// The version is bumped on success; a stale version yields ErrVersionConflict.
func (r *PoolingRepo) UpdatePoolVersioned(ctx context.Context, pool *models.RidePool) error {
	query := `
		UPDATE ride_pools SET
			cab_id = $1, status = $2, total_occupied_seats = $3, total_luggage = $4,
			route_distance_km = $5, window_expires_at = $6, dispatched_at = $7,
			version = version + 1, updated_at = $8
		WHERE id = $9 AND version = $10
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		pool.CabID,
		pool.Status,
		pool.TotalOccupiedSeats,
		pool.TotalLuggage,
		pool.RouteDistanceKm,
		pool.WindowExpiresAt,
		pool.DispatchedAt,
		time.Now(),
		pool.ID,
		pool.Version,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("pool %s at version %d: %w", pool.ID, pool.Version, apperrors.ErrVersionConflict)
	}
	pool.Version++
	return nil
}

// IndexFormingPool adds the pool's anchor pickup to the forming-pool geo index
func (r *PoolingRepo) IndexFormingPool(ctx context.Context, pool *models.RidePool) error {
	return r.redis.GeoAdd(ctx, constants.KeyPoolGeo, pool.PickupLng, pool.PickupLat, pool.ID.String())
}

// UnindexPool removes the pool from the forming-pool geo index
func (r *PoolingRepo) UnindexPool(ctx context.Context, poolID uuid.UUID) error {
	return r.redis.ZRem(ctx, constants.KeyPoolGeo, poolID.String())
}
