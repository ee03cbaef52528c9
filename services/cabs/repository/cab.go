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
	"github.com/skycab/ridepool/internal/pkg/logger"
	"github.com/skycab/ridepool/internal/pkg/models"
	"github.com/skycab/ridepool/internal/utils"
)

// geohashPrecision gives ~150m cells, enough for zone grouping of cabs
const geohashPrecision = 7

// CabRepo persists cabs in Postgres and mirrors availability and position
// into Redis (geo index, availability set, per-cab location hash).
type CabRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	redis *database.RedisClient
}

func NewCabRepository(cfg *models.Config, db *sqlx.DB, redis *database.RedisClient) *CabRepo {
	return &CabRepo{
		cfg:   cfg,
		db:    db,
		redis: redis,
	}
}

// CreateCab inserts a cab and registers it in the availability structures
func (r *CabRepo) CreateCab(ctx context.Context, cab *models.Cab) error {
	query := `
		INSERT INTO cabs (
			id, license_plate, driver_name, total_seats, luggage_capacity,
			current_lat, current_lng, status, version, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		cab.ID,
		cab.LicensePlate,
		cab.DriverName,
		cab.TotalSeats,
		cab.LuggageCapacity,
		cab.CurrentLat,
		cab.CurrentLng,
		cab.Status,
		cab.Version,
		cab.CreatedAt,
		cab.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if cab.Status == models.CabStatusAvailable {
		if err := r.indexAvailable(ctx, cab.ID, cab.CurrentLat, cab.CurrentLng); err != nil {
			logger.Warn("Failed to index new cab",
				logger.String("cab_id", cab.ID.String()),
				logger.Err(err))
		}
	}
	return nil
}

// GetCabByID returns one cab
func (r *CabRepo) GetCabByID(ctx context.Context, id uuid.UUID) (*models.Cab, error) {
	var cab models.Cab
	query := `SELECT * FROM cabs WHERE id = $1`

	err := r.db.GetContext(ctx, &cab, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundf("cab %s not found", id)
		}
		return nil, err
	}
	return &cab, nil
}

// ListCabs returns the whole fleet, newest first
func (r *CabRepo) ListCabs(ctx context.Context) ([]*models.Cab, error) {
	var cabs []*models.Cab
	query := `SELECT * FROM cabs ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &cabs, query); err != nil {
		return nil, err
	}
	return cabs, nil
}

// UpdateLocation moves the cab in Postgres and refreshes its Redis entries
func (r *CabRepo) UpdateLocation(ctx context.Context, cabID uuid.UUID, lat, lng float64) error {
	query := `UPDATE cabs SET current_lat = $1, current_lng = $2, updated_at = $3 WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query, lat, lng, time.Now(), cabID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.NotFoundf("cab %s not found", cabID)
	}

	if err := r.redis.GeoAdd(ctx, constants.KeyCabGeo, lng, lat, cabID.String()); err != nil {
		return err
	}
	return r.writeLocationHash(ctx, cabID, lat, lng)
}

// FindAvailableNear queries the cab geo index and keeps only cabs still in
// the availability set, preserving nearest-first order.
func (r *CabRepo) FindAvailableNear(ctx context.Context, lat, lng, radiusKm float64) ([]models.NearbyCab, error) {
	locations, err := r.redis.GeoRadius(ctx, constants.KeyCabGeo, lng, lat, radiusKm, "km")
	if err != nil {
		return nil, err
	}

	nearby := make([]models.NearbyCab, 0, len(locations))
	for _, loc := range locations {
		cabID, err := uuid.Parse(loc.Name)
		if err != nil {
			continue
		}
		available, err := r.redis.SIsMember(ctx, constants.KeyAvailableCabs, loc.Name)
		if err != nil {
			return nil, err
		}
		if !available {
			continue
		}
		nearby = append(nearby, models.NearbyCab{ID: cabID, DistanceKm: loc.Dist})
	}
	return nearby, nil
}

// ClaimCab compare-and-swaps the cab from AVAILABLE to ASSIGNED. A false
// return means another dispatcher won the cab.
func (r *CabRepo) ClaimCab(ctx context.Context, cabID uuid.UUID) (bool, error) {
	query := `
		UPDATE cabs SET status = $1, version = version + 1, updated_at = $2
		WHERE id = $3 AND status = $4
	`

	result, err := r.db.ExecContext(ctx, query,
		models.CabStatusAssigned, time.Now(), cabID, models.CabStatusAvailable)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if rows == 0 {
		return false, nil
	}

	if err := r.unindexAvailable(ctx, cabID); err != nil {
		logger.Warn("Failed to remove claimed cab from availability index",
			logger.String("cab_id", cabID.String()),
			logger.Err(err))
	}
	return true, nil
}

// SetStatus moves the cab to the given status
func (r *CabRepo) SetStatus(ctx context.Context, cabID uuid.UUID, status models.CabStatus) error {
	query := `UPDATE cabs SET status = $1, version = version + 1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, status, time.Now(), cabID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.NotFoundf("cab %s not found", cabID)
	}
	return nil
}

// ReleaseCab returns the cab to AVAILABLE and re-enters the availability
// structures at its last known position.
func (r *CabRepo) ReleaseCab(ctx context.Context, cabID uuid.UUID) error {
	if err := r.SetStatus(ctx, cabID, models.CabStatusAvailable); err != nil {
		return err
	}

	cab, err := r.GetCabByID(ctx, cabID)
	if err != nil {
		return err
	}
	return r.indexAvailable(ctx, cabID, cab.CurrentLat, cab.CurrentLng)
}

// ListOrphanedAssignedCabIDs finds cabs stuck ASSIGNED with no live pool
// holding them; a crash between claim and confirm leaves cabs in this state.
func (r *CabRepo) ListOrphanedAssignedCabIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	query := `
		SELECT c.id FROM cabs c
		WHERE c.status = $1
		AND NOT EXISTS (
			SELECT 1 FROM ride_pools p
			WHERE p.cab_id = c.id AND p.status IN ($2, $3, $4)
		)
	`

	err := r.db.SelectContext(ctx, &ids, query, models.CabStatusAssigned,
		models.PoolStatusDispatching, models.PoolStatusConfirmed, models.PoolStatusInProgress)
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *CabRepo) indexAvailable(ctx context.Context, cabID uuid.UUID, lat, lng float64) error {
	if err := r.redis.SAdd(ctx, constants.KeyAvailableCabs, cabID.String()); err != nil {
		return err
	}
	if err := r.redis.GeoAdd(ctx, constants.KeyCabGeo, lng, lat, cabID.String()); err != nil {
		return err
	}
	return r.writeLocationHash(ctx, cabID, lat, lng)
}

func (r *CabRepo) unindexAvailable(ctx context.Context, cabID uuid.UUID) error {
	if err := r.redis.SRem(ctx, constants.KeyAvailableCabs, cabID.String()); err != nil {
		return err
	}
	return r.redis.ZRem(ctx, constants.KeyCabGeo, cabID.String())
}

// writeLocationHash keeps a per-cab hash with the raw fix and its geohash
// zone for coarse grouping.
func (r *CabRepo) writeLocationHash(ctx context.Context, cabID uuid.UUID, lat, lng float64) error {
	key := fmt.Sprintf(constants.KeyCabLocation, cabID)
	zone := utils.EncodeLocation(models.Location{Latitude: lat, Longitude: lng}, geohashPrecision)
	return r.redis.HMSet(ctx, key, map[string]interface{}{
		constants.FieldLatitude:  lat,
		constants.FieldLongitude: lng,
		constants.FieldGeohash:   zone,
		constants.FieldTimestamp: time.Now().Unix(),
	})
}
