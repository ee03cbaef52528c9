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

// DispatchRepo reads and advances pools on behalf of the scheduler
type DispatchRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	redis *database.RedisClient
}

func NewDispatchRepository(cfg *models.Config, db *sqlx.DB, redis *database.RedisClient) *DispatchRepo {
	return &DispatchRepo{
		cfg:   cfg,
		db:    db,
		redis: redis,
	}
}

// ListDispatchReadyPools returns FORMING pools that are full or past their
// formation window, oldest window first. Capacity is the pre-assignment
// default since no cab is attached while FORMING.
func (r *DispatchRepo) ListDispatchReadyPools(ctx context.Context) ([]*models.RidePool, error) {
	var pools []*models.RidePool
	query := `
		SELECT * FROM ride_pools
		WHERE status = $1
		AND (window_expires_at <= $2 OR total_occupied_seats >= $3 OR total_luggage >= $4)
		ORDER BY window_expires_at ASC
	`

	err := r.db.SelectContext(ctx, &pools, query,
		models.PoolStatusForming,
		time.Now(),
		r.cfg.Pooling.DefaultSeats,
		r.cfg.Pooling.DefaultLuggage,
	)
	if err != nil {
		return nil, err
	}
	return pools, nil
}

// ListStalePools returns every pool in FORMING or DISPATCHING
func (r *DispatchRepo) ListStalePools(ctx context.Context) ([]*models.RidePool, error) {
	var pools []*models.RidePool
	query := `SELECT * FROM ride_pools WHERE status IN ($1, $2) ORDER BY created_at ASC`

	err := r.db.SelectContext(ctx, &pools, query,
		models.PoolStatusForming, models.PoolStatusDispatching)
	if err != nil {
		return nil, err
	}
	return pools, nil
}

// GetPoolByID returns one pool, with its cab joined when assigned
func (r *DispatchRepo) GetPoolByID(ctx context.Context, id uuid.UUID) (*models.RidePool, error) {
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
func (r *DispatchRepo) GetActiveMembers(ctx context.Context, poolID uuid.UUID) ([]*models.RideRequest, error) {
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

// UpdatePoolVersioned applies the pool's fields iff its version is unchanged
func (r *DispatchRepo) UpdatePoolVersioned(ctx context.Context, pool *models.RidePool) error {
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

// UpdateRequestStatus moves a ride request to the given status
func (r *DispatchRepo) UpdateRequestStatus(ctx context.Context, requestID uuid.UUID, status models.RideStatus) error {
	query := `UPDATE ride_requests SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, status, time.Now(), requestID)
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

// UnindexPool removes the pool from the forming-pool geo index
func (r *DispatchRepo) UnindexPool(ctx context.Context, poolID uuid.UUID) error {
	return r.redis.ZRem(ctx, constants.KeyPoolGeo, poolID.String())
}
