package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skycab/ridepool/internal/pkg/apperrors"
	"github.com/skycab/ridepool/internal/pkg/constants"
	"github.com/skycab/ridepool/internal/pkg/database"
	"github.com/skycab/ridepool/internal/pkg/models"
	"github.com/skycab/ridepool/services/pooling/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func setupMiniredis(t *testing.T) *database.RedisClient {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	return &database.RedisClient{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
}

func TestCreateRequest_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPoolingRepository(&models.Config{}, db, nil)

	request := &models.RideRequest{
		ID:             uuid.New(),
		PassengerID:    uuid.New(),
		PickupLat:      13.1986,
		PickupLng:      77.7066,
		DropLat:        12.9716,
		DropLng:        77.5946,
		PassengerCount: 2,
		LuggageCount:   1,
		MaxDetourKm:    5,
		Status:         models.RideStatusPending,
		IdempotencyKey: "key-1",
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ride_requests")).
		WithArgs(request.ID, request.PassengerID, request.PickupLat, request.PickupLng,
			request.DropLat, request.DropLng, request.PassengerCount, request.LuggageCount,
			request.MaxDetourKm, request.Status, nil, nil, request.IdempotencyKey,
			request.CreatedAt, request.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateRequest(context.Background(), request)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRequestByIdempotencyKey_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPoolingRepository(&models.Config{}, db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM ride_requests WHERE idempotency_key = $1")).
		WithArgs("fresh-key").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetRequestByIdempotencyKey(context.Background(), "fresh-key")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestHasActiveRequest(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPoolingRepository(&models.Config{}, db, nil)

	passengerID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM ride_requests")).
		WithArgs(passengerID, models.RideStatusCompleted, models.RideStatusCancelled).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	active, err := repo.HasActiveRequest(context.Background(), passengerID)
	assert.NoError(t, err)
	assert.True(t, active)
}

func TestUpdatePoolVersioned_Conflict(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPoolingRepository(&models.Config{}, db, nil)

	pool := &models.RidePool{
		ID:      uuid.New(),
		Status:  models.PoolStatusForming,
		Version: 3,
	}

	// zero rows means a concurrent writer already bumped the version
	mock.ExpectExec(regexp.QuoteMeta("UPDATE ride_pools SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePoolVersioned(context.Background(), pool)
	assert.True(t, errors.Is(err, apperrors.ErrVersionConflict))
	assert.Equal(t, int64(3), pool.Version)
}

func TestUpdatePoolVersioned_BumpsVersion(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPoolingRepository(&models.Config{}, db, nil)

	pool := &models.RidePool{
		ID:      uuid.New(),
		Status:  models.PoolStatusForming,
		Version: 3,
	}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE ride_pools SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdatePoolVersioned(context.Background(), pool)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), pool.Version)
}

func TestAssignRequestToPool_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPoolingRepository(&models.Config{}, db, nil)

	requestID := uuid.New()
	poolID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE ride_requests SET pool_id")).
		WithArgs(poolID, models.RideStatusPooled, sqlmock.AnyArg(), requestID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.AssignRequestToPool(context.Background(), requestID, poolID)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestGetActiveMembers(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPoolingRepository(&models.Config{}, db, nil)

	poolID := uuid.New()
	memberID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "passenger_id", "status", "pool_id", "passenger_count"}).
		AddRow(memberID, uuid.New(), models.RideStatusPooled, poolID, 2)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM ride_requests")).
		WithArgs(poolID, models.RideStatusCompleted, models.RideStatusCancelled).
		WillReturnRows(rows)

	members, err := repo.GetActiveMembers(context.Background(), poolID)
	assert.NoError(t, err)
	assert.Len(t, members, 1)
	assert.Equal(t, memberID, members[0].ID)
	assert.Equal(t, 2, members[0].PassengerCount)
}

func TestFindFormingPoolsNear_DropsStaleIndexEntries(t *testing.T) {
	db, mock := setupMockDB(t)
	rc := setupMiniredis(t)
	repo := repository.NewPoolingRepository(&models.Config{}, db, rc)

	ctx := context.Background()
	forming := &models.RidePool{
		ID:        uuid.New(),
		Status:    models.PoolStatusForming,
		PickupLat: 13.1986,
		PickupLng: 77.7066,
	}
	dissolved := &models.RidePool{
		ID:        uuid.New(),
		Status:    models.PoolStatusDissolved,
		PickupLat: 13.2000,
		PickupLng: 77.7100,
	}

	require.NoError(t, repo.IndexFormingPool(ctx, forming))
	require.NoError(t, repo.IndexFormingPool(ctx, dissolved))

	// the index returns both IDs; Postgres is the status authority
	poolRow := func(p *models.RidePool) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "cab_id", "status", "total_occupied_seats", "pickup_lat", "pickup_lng", "version"}).
			AddRow(p.ID, nil, p.Status, 1, p.PickupLat, p.PickupLng, 1)
	}
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM ride_pools WHERE id = $1")).
		WithArgs(forming.ID).WillReturnRows(poolRow(forming))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM ride_pools WHERE id = $1")).
		WithArgs(dissolved.ID).WillReturnRows(poolRow(dissolved))

	pools, err := repo.FindFormingPoolsNear(ctx, 13.1986, 77.7066, 5)
	require.NoError(t, err)
	require.Len(t, pools, 1)
	assert.Equal(t, forming.ID, pools[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnindexPool_RemovesGeoEntry(t *testing.T) {
	db, _ := setupMockDB(t)
	rc := setupMiniredis(t)
	repo := repository.NewPoolingRepository(&models.Config{}, db, rc)

	ctx := context.Background()
	pool := &models.RidePool{
		ID:        uuid.New(),
		Status:    models.PoolStatusForming,
		PickupLat: 13.1986,
		PickupLng: 77.7066,
	}
	require.NoError(t, repo.IndexFormingPool(ctx, pool))
	require.NoError(t, repo.UnindexPool(ctx, pool.ID))

	locations, err := rc.GeoRadius(ctx, constants.KeyPoolGeo, pool.PickupLng, pool.PickupLat, 5, "km")
	require.NoError(t, err)
	assert.Empty(t, locations)
}
