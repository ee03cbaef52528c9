package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/skycab/ridepool/internal/pkg/apperrors"
	"github.com/skycab/ridepool/internal/pkg/models"
	"github.com/skycab/ridepool/services/dispatch/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func testConfig() *models.Config {
	return &models.Config{
		Pooling: models.PoolingConfig{DefaultSeats: 4, DefaultLuggage: 4},
	}
}

func poolColumns() []string {
	return []string{
		"id", "cab_id", "status", "total_occupied_seats", "total_luggage",
		"route_distance_km", "pickup_lat", "pickup_lng", "drop_lat", "drop_lng",
		"window_expires_at", "dispatched_at", "version", "created_at", "updated_at",
	}
}

func TestListDispatchReadyPools(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewDispatchRepository(testConfig(), db, nil)

	poolID := uuid.New()
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM ride_pools")).
		WithArgs(models.PoolStatusForming, sqlmock.AnyArg(), 4, 4).
		WillReturnRows(sqlmock.NewRows(poolColumns()).
			AddRow(poolID, nil, models.PoolStatusForming, 3, 2,
				14.5, 13.1986, 77.7066, 12.9716, 77.5946,
				now.Add(-time.Minute), nil, 2, now, now))

	pools, err := repo.ListDispatchReadyPools(context.Background())
	assert.NoError(t, err)
	assert.Len(t, pools, 1)
	assert.Equal(t, poolID, pools[0].ID)
	assert.Equal(t, int64(2), pools[0].Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListStalePools(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewDispatchRepository(testConfig(), db, nil)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM ride_pools WHERE status IN ($1, $2)")).
		WithArgs(models.PoolStatusForming, models.PoolStatusDispatching).
		WillReturnRows(sqlmock.NewRows(poolColumns()).
			AddRow(uuid.New(), nil, models.PoolStatusDispatching, 2, 1,
				10.0, 13.1986, 77.7066, 12.9716, 77.5946,
				now, nil, 5, now, now))

	pools, err := repo.ListStalePools(context.Background())
	assert.NoError(t, err)
	assert.Len(t, pools, 1)
	assert.Equal(t, models.PoolStatusDispatching, pools[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePoolVersioned_Conflict(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewDispatchRepository(testConfig(), db, nil)

	pool := &models.RidePool{
		ID:              uuid.New(),
		Status:          models.PoolStatusDispatching,
		WindowExpiresAt: time.Now(),
		Version:         3,
	}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE ride_pools SET")).
		WithArgs(nil, pool.Status, pool.TotalOccupiedSeats, pool.TotalLuggage,
			pool.RouteDistanceKm, pool.WindowExpiresAt, nil, sqlmock.AnyArg(),
			pool.ID, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePoolVersioned(context.Background(), pool)
	assert.ErrorIs(t, err, apperrors.ErrVersionConflict)
	assert.Equal(t, int64(3), pool.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRequestStatus_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewDispatchRepository(testConfig(), db, nil)

	requestID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE ride_requests SET status = $1")).
		WithArgs(models.RideStatusConfirmed, sqlmock.AnyArg(), requestID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateRequestStatus(context.Background(), requestID, models.RideStatusConfirmed)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
