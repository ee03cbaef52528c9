package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/skycab/ridepool/internal/pkg/apperrors"
	"github.com/skycab/ridepool/internal/pkg/models"
	"github.com/skycab/ridepool/services/pricing/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func TestUpsertPricing_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPricingRepository(&models.Config{}, db, nil)

	record := &models.PricingRecord{
		ID:               uuid.New(),
		RideRequestID:    uuid.New(),
		BasePrice:        300,
		DistanceKm:       20,
		DemandMultiplier: 1.1,
		SharingDiscount:  0.9,
		SurgeFactor:      1.0,
		FinalPrice:       297,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO pricing_records")).
		WithArgs(record.ID, record.RideRequestID, record.BasePrice, record.DistanceKm,
			record.DemandMultiplier, record.SharingDiscount, record.SurgeFactor,
			record.FinalPrice, record.CreatedAt, record.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.UpsertPricing(context.Background(), record)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPricingByRequestID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPricingRepository(&models.Config{}, db, nil)

	requestID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM pricing_records")).
		WithArgs(requestID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetPricingByRequestID(context.Background(), requestID)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestGetPricingByRequestID_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPricingRepository(&models.Config{}, db, nil)

	id := uuid.New()
	requestID := uuid.New()
	rows := sqlmock.NewRows([]string{
		"id", "ride_request_id", "base_price", "distance_km",
		"demand_multiplier", "sharing_discount", "surge_factor", "final_price",
		"created_at", "updated_at",
	}).AddRow(id, requestID, 300.0, 20.0, 1.1, 0.9, 1.0, 297.0, time.Now(), time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM pricing_records")).
		WithArgs(requestID).
		WillReturnRows(rows)

	record, err := repo.GetPricingByRequestID(context.Background(), requestID)
	assert.NoError(t, err)
	assert.Equal(t, id, record.ID)
	assert.Equal(t, 297.0, record.FinalPrice)
}

func TestCountActiveRequests(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPricingRepository(&models.Config{}, db, nil)

	cutoff := time.Now().Add(-15 * time.Minute)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM ride_requests")).
		WithArgs(models.RideStatusCompleted, models.RideStatusCancelled, cutoff).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountActiveRequests(context.Background(), cutoff)
	assert.NoError(t, err)
	assert.Equal(t, 7, count)
}
