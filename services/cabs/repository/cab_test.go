package repository_test

import (
	"context"
	"fmt"
	"regexp"
	"testing"

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
	"github.com/skycab/ridepool/services/cabs/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *database.RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	return mr, &database.RedisClient{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
}

func TestGetCabByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewCabRepository(&models.Config{}, db, nil)

	cabID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM cabs WHERE id = $1")).
		WithArgs(cabID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	cab, err := repo.GetCabByID(context.Background(), cabID)
	assert.Nil(t, cab)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimCab_LostRace(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewCabRepository(&models.Config{}, db, nil)

	cabID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE cabs SET status = $1, version = version + 1, updated_at = $2")).
		WithArgs(models.CabStatusAssigned, sqlmock.AnyArg(), cabID, models.CabStatusAvailable).
		WillReturnResult(sqlmock.NewResult(0, 0))

	claimed, err := repo.ClaimCab(context.Background(), cabID)
	assert.NoError(t, err)
	assert.False(t, claimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetStatus_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewCabRepository(&models.Config{}, db, nil)

	cabID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE cabs SET status = $1, version = version + 1, updated_at = $2 WHERE id = $3")).
		WithArgs(models.CabStatusOnTrip, sqlmock.AnyArg(), cabID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetStatus(context.Background(), cabID, models.CabStatusOnTrip)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateLocation_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewCabRepository(&models.Config{}, db, nil)

	cabID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE cabs SET current_lat = $1, current_lng = $2, updated_at = $3 WHERE id = $4")).
		WithArgs(13.20, 77.71, sqlmock.AnyArg(), cabID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateLocation(context.Background(), cabID, 13.20, 77.71)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCabs(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewCabRepository(&models.Config{}, db, nil)

	first := uuid.New()
	second := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "license_plate", "driver_name", "status"}).
		AddRow(first, "KA-01-1234", "Asha", models.CabStatusAvailable).
		AddRow(second, "KA-02-5678", "Ravi", models.CabStatusOnTrip)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM cabs ORDER BY created_at DESC")).
		WillReturnRows(rows)

	fleet, err := repo.ListCabs(context.Background())
	assert.NoError(t, err)
	assert.Len(t, fleet, 2)
	assert.Equal(t, first, fleet[0].ID)
	assert.Equal(t, models.CabStatusOnTrip, fleet[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAvailableNear_SkipsClaimedCabs(t *testing.T) {
	db, _ := setupMockDB(t)
	_, rc := setupMiniredis(t)
	repo := repository.NewCabRepository(&models.Config{}, db, rc)

	ctx := context.Background()
	available := uuid.New()
	claimed := uuid.New()

	// both cabs sit in the geo index, only one is still in the
	// availability set
	require.NoError(t, rc.GeoAdd(ctx, constants.KeyCabGeo, 77.7066, 13.1986, available.String()))
	require.NoError(t, rc.GeoAdd(ctx, constants.KeyCabGeo, 77.7100, 13.2000, claimed.String()))
	require.NoError(t, rc.SAdd(ctx, constants.KeyAvailableCabs, available.String()))

	nearby, err := repo.FindAvailableNear(ctx, 13.1986, 77.7066, 5)
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, available, nearby[0].ID)
}

func TestClaimCab_DropsAvailabilityIndex(t *testing.T) {
	db, mock := setupMockDB(t)
	_, rc := setupMiniredis(t)
	repo := repository.NewCabRepository(&models.Config{}, db, rc)

	ctx := context.Background()
	cabID := uuid.New()
	require.NoError(t, rc.GeoAdd(ctx, constants.KeyCabGeo, 77.7066, 13.1986, cabID.String()))
	require.NoError(t, rc.SAdd(ctx, constants.KeyAvailableCabs, cabID.String()))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE cabs SET status = $1, version = version + 1, updated_at = $2")).
		WithArgs(models.CabStatusAssigned, sqlmock.AnyArg(), cabID, models.CabStatusAvailable).
		WillReturnResult(sqlmock.NewResult(0, 1))

	claimed, err := repo.ClaimCab(ctx, cabID)
	require.NoError(t, err)
	assert.True(t, claimed)

	member, err := rc.SIsMember(ctx, constants.KeyAvailableCabs, cabID.String())
	require.NoError(t, err)
	assert.False(t, member)

	locations, err := rc.GeoRadius(ctx, constants.KeyCabGeo, 77.7066, 13.1986, 5, "km")
	require.NoError(t, err)
	assert.Empty(t, locations)
}

func TestReleaseCab_ReentersAvailability(t *testing.T) {
	db, mock := setupMockDB(t)
	mr, rc := setupMiniredis(t)
	repo := repository.NewCabRepository(&models.Config{}, db, rc)

	ctx := context.Background()
	cabID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE cabs SET status = $1, version = version + 1, updated_at = $2 WHERE id = $3")).
		WithArgs(models.CabStatusAvailable, sqlmock.AnyArg(), cabID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM cabs WHERE id = $1")).
		WithArgs(cabID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "current_lat", "current_lng", "status"}).
			AddRow(cabID, 13.1986, 77.7066, models.CabStatusAvailable))

	require.NoError(t, repo.ReleaseCab(ctx, cabID))

	member, err := rc.SIsMember(ctx, constants.KeyAvailableCabs, cabID.String())
	require.NoError(t, err)
	assert.True(t, member)

	nearby, err := repo.FindAvailableNear(ctx, 13.1986, 77.7066, 1)
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, cabID, nearby[0].ID)

	// the per-cab location hash carries the fresh fix
	assert.True(t, mr.Exists(fmt.Sprintf(constants.KeyCabLocation, cabID)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListOrphanedAssignedCabIDs(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewCabRepository(&models.Config{}, db, nil)

	orphanID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT c.id FROM cabs c")).
		WithArgs(models.CabStatusAssigned, models.PoolStatusDispatching,
			models.PoolStatusConfirmed, models.PoolStatusInProgress).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(orphanID))

	ids, err := repo.ListOrphanedAssignedCabIDs(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{orphanID}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
