package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/skycab/ridepool/internal/pkg/apperrors"
	"github.com/skycab/ridepool/internal/pkg/locking"
	"github.com/skycab/ridepool/internal/pkg/models"
	cabmocks "github.com/skycab/ridepool/services/cabs/mocks"
	"github.com/skycab/ridepool/services/dispatch"
	"github.com/skycab/ridepool/services/dispatch/mocks"
	"github.com/skycab/ridepool/services/dispatch/usecase"
	pricingmocks "github.com/skycab/ridepool/services/pricing/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Pooling: models.PoolingConfig{
			SearchRadiusKm:    5,
			MaxPoolSize:       4,
			PoolWindowSeconds: 60,
			DefaultSeats:      4,
			DefaultLuggage:    4,
		},
		Dispatch: models.DispatchConfig{
			IntervalMs:        5000,
			SearchRadiusKm:    5,
			RetryDelaySeconds: 10,
		},
		Concurrency: models.ConcurrencyConfig{
			LockTimeoutSeconds: 1,
			OptimisticRetryMax: 2,
		},
	}
}

type fixture struct {
	repo      *mocks.MockDispatchRepo
	cabRepo   *cabmocks.MockCabRepo
	pricingUC *pricingmocks.MockPricingUC
	gw        *mocks.MockDispatchGW
}

func newFixture(t *testing.T) (*fixture, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	return &fixture{
		repo:      mocks.NewMockDispatchRepo(ctrl),
		cabRepo:   cabmocks.NewMockCabRepo(ctrl),
		pricingUC: pricingmocks.NewMockPricingUC(ctrl),
		gw:        mocks.NewMockDispatchGW(ctrl),
	}, ctrl
}

func (f *fixture) build() dispatch.DispatchUC {
	return usecase.NewDispatchUC(testConfig(), f.repo, f.cabRepo, f.pricingUC, f.gw, locking.NewLocalManager())
}

func formingPool() *models.RidePool {
	return &models.RidePool{
		ID:                 uuid.New(),
		Status:             models.PoolStatusForming,
		TotalOccupiedSeats: 3,
		TotalLuggage:       2,
		PickupLat:          13.1986,
		PickupLng:          77.7066,
		DropLat:            12.9716,
		DropLng:            77.5946,
		WindowExpiresAt:    time.Now().Add(-time.Minute),
		Version:            2,
	}
}

func member(poolID uuid.UUID, seats int) *models.RideRequest {
	id := poolID
	return &models.RideRequest{
		ID:             uuid.New(),
		PassengerID:    uuid.New(),
		PassengerCount: seats,
		Status:         models.RideStatusPooled,
		PoolID:         &id,
	}
}

func TestDispatchReadyPools_ConfirmsPoolWithNearestCab(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()
	uc := f.build()

	pool := formingPool()
	members := []*models.RideRequest{member(pool.ID, 2), member(pool.ID, 1)}
	cabID := uuid.New()
	cab := &models.Cab{ID: cabID, TotalSeats: 4, LuggageCapacity: 4, Status: models.CabStatusAssigned}

	f.repo.EXPECT().ListDispatchReadyPools(gomock.Any()).Return([]*models.RidePool{pool}, nil)
	f.repo.EXPECT().GetPoolByID(gomock.Any(), pool.ID).Return(pool, nil)
	f.repo.EXPECT().GetActiveMembers(gomock.Any(), pool.ID).Return(members, nil)

	var statuses []models.PoolStatus
	f.repo.EXPECT().UpdatePoolVersioned(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.RidePool) error {
			statuses = append(statuses, p.Status)
			p.Version++
			return nil
		}).Times(2)

	f.cabRepo.EXPECT().FindAvailableNear(gomock.Any(), pool.PickupLat, pool.PickupLng, 5.0).
		Return([]models.NearbyCab{{ID: cabID, DistanceKm: 1.2}}, nil)
	f.cabRepo.EXPECT().ClaimCab(gomock.Any(), cabID).Return(true, nil)
	f.cabRepo.EXPECT().GetCabByID(gomock.Any(), cabID).Return(cab, nil)

	f.repo.EXPECT().UnindexPool(gomock.Any(), pool.ID).Return(nil)
	f.pricingUC.EXPECT().RepriceMembers(gomock.Any(), members).
		Return([]*models.PricingRecord{{FinalPrice: 210.50}, {FinalPrice: 180.25}}, nil)

	for _, m := range members {
		f.repo.EXPECT().UpdateRequestStatus(gomock.Any(), m.ID, models.RideStatusConfirmed).Return(nil)
		f.gw.EXPECT().NotifyPassenger(m.PassengerID, "POOL_DISPATCHED", gomock.Any())
	}
	f.gw.EXPECT().NotifyDriver(cabID, "TRIP_ASSIGNED", gomock.Any())
	f.gw.EXPECT().PublishPoolDispatched(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.DispatchReadyPools(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []models.PoolStatus{models.PoolStatusDispatching, models.PoolStatusConfirmed}, statuses)
	assert.Equal(t, &cabID, pool.CabID)
	assert.NotNil(t, pool.DispatchedAt)
}

func TestDispatchReadyPools_NoSupplyRequeuesPool(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()
	uc := f.build()

	pool := formingPool()
	members := []*models.RideRequest{member(pool.ID, 2)}
	before := time.Now()

	f.repo.EXPECT().ListDispatchReadyPools(gomock.Any()).Return([]*models.RidePool{pool}, nil)
	f.repo.EXPECT().GetPoolByID(gomock.Any(), pool.ID).Return(pool, nil)
	f.repo.EXPECT().GetActiveMembers(gomock.Any(), pool.ID).Return(members, nil)

	var statuses []models.PoolStatus
	f.repo.EXPECT().UpdatePoolVersioned(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.RidePool) error {
			statuses = append(statuses, p.Status)
			p.Version++
			return nil
		}).Times(2)

	// base radius, then the widened retry
	f.cabRepo.EXPECT().FindAvailableNear(gomock.Any(), pool.PickupLat, pool.PickupLng, 5.0).
		Return(nil, nil)
	f.cabRepo.EXPECT().FindAvailableNear(gomock.Any(), pool.PickupLat, pool.PickupLng, 15.0).
		Return(nil, nil)

	f.gw.EXPECT().NotifyPassenger(members[0].PassengerID, "POOL_WAITING", gomock.Any())

	err := uc.DispatchReadyPools(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []models.PoolStatus{models.PoolStatusDispatching, models.PoolStatusForming}, statuses)
	assert.True(t, pool.WindowExpiresAt.After(before.Add(9*time.Second)))
	assert.Nil(t, pool.CabID)
}

func TestDispatchReadyPools_CabSearchFailureRequeuesPool(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()
	uc := f.build()

	pool := formingPool()
	members := []*models.RideRequest{member(pool.ID, 2)}
	before := time.Now()

	f.repo.EXPECT().ListDispatchReadyPools(gomock.Any()).Return([]*models.RidePool{pool}, nil)
	// initial load, then the reload after the failed allocation
	f.repo.EXPECT().GetPoolByID(gomock.Any(), pool.ID).Return(pool, nil).Times(2)
	f.repo.EXPECT().GetActiveMembers(gomock.Any(), pool.ID).Return(members, nil)

	var statuses []models.PoolStatus
	f.repo.EXPECT().UpdatePoolVersioned(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.RidePool) error {
			statuses = append(statuses, p.Status)
			p.Version++
			return nil
		}).Times(2)

	f.cabRepo.EXPECT().FindAvailableNear(gomock.Any(), pool.PickupLat, pool.PickupLng, 5.0).
		Return(nil, assert.AnError)

	err := uc.DispatchReadyPools(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
	// the pool must not stay DISPATCHING, where no sweep would pick it up
	assert.Equal(t, []models.PoolStatus{models.PoolStatusDispatching, models.PoolStatusForming}, statuses)
	assert.True(t, pool.WindowExpiresAt.After(before.Add(9*time.Second)))
}

func TestDispatchReadyPools_ConfirmFailureFreesClaimedCab(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()
	uc := f.build()

	pool := formingPool()
	members := []*models.RideRequest{member(pool.ID, 2)}
	cabID := uuid.New()

	f.repo.EXPECT().ListDispatchReadyPools(gomock.Any()).Return([]*models.RidePool{pool}, nil)
	f.repo.EXPECT().GetPoolByID(gomock.Any(), pool.ID).Return(pool, nil)
	f.repo.EXPECT().GetActiveMembers(gomock.Any(), pool.ID).Return(members, nil)

	var statuses []models.PoolStatus
	f.repo.EXPECT().UpdatePoolVersioned(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.RidePool) error {
			statuses = append(statuses, p.Status)
			p.Version++
			return nil
		}).Times(2)

	f.cabRepo.EXPECT().FindAvailableNear(gomock.Any(), pool.PickupLat, pool.PickupLng, 5.0).
		Return([]models.NearbyCab{{ID: cabID, DistanceKm: 1.0}}, nil)
	f.cabRepo.EXPECT().ClaimCab(gomock.Any(), cabID).Return(true, nil)
	f.cabRepo.EXPECT().GetCabByID(gomock.Any(), cabID).Return(nil, assert.AnError)

	// the reload sees the pool still DISPATCHING with no cab attached
	stored := *pool
	stored.Status = models.PoolStatusDispatching
	f.repo.EXPECT().GetPoolByID(gomock.Any(), pool.ID).Return(&stored, nil)
	f.cabRepo.EXPECT().ReleaseCab(gomock.Any(), cabID).Return(nil)

	err := uc.DispatchReadyPools(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, []models.PoolStatus{models.PoolStatusDispatching, models.PoolStatusForming}, statuses)
}

func TestDispatchReadyPools_ClaimRaceTriesNextCandidate(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()
	uc := f.build()

	pool := formingPool()
	members := []*models.RideRequest{member(pool.ID, 2)}
	lostCab := uuid.New()
	wonCab := uuid.New()

	f.repo.EXPECT().ListDispatchReadyPools(gomock.Any()).Return([]*models.RidePool{pool}, nil)
	f.repo.EXPECT().GetPoolByID(gomock.Any(), pool.ID).Return(pool, nil)
	f.repo.EXPECT().GetActiveMembers(gomock.Any(), pool.ID).Return(members, nil)
	f.repo.EXPECT().UpdatePoolVersioned(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	f.cabRepo.EXPECT().FindAvailableNear(gomock.Any(), pool.PickupLat, pool.PickupLng, 5.0).
		Return([]models.NearbyCab{{ID: lostCab, DistanceKm: 0.8}, {ID: wonCab, DistanceKm: 1.5}}, nil)
	f.cabRepo.EXPECT().ClaimCab(gomock.Any(), lostCab).Return(false, nil)
	f.cabRepo.EXPECT().ClaimCab(gomock.Any(), wonCab).Return(true, nil)
	f.cabRepo.EXPECT().GetCabByID(gomock.Any(), wonCab).
		Return(&models.Cab{ID: wonCab, TotalSeats: 4}, nil)

	f.repo.EXPECT().UnindexPool(gomock.Any(), pool.ID).Return(nil)
	f.pricingUC.EXPECT().RepriceMembers(gomock.Any(), members).
		Return([]*models.PricingRecord{{FinalPrice: 150}}, nil)
	f.repo.EXPECT().UpdateRequestStatus(gomock.Any(), members[0].ID, models.RideStatusConfirmed).Return(nil)
	f.gw.EXPECT().NotifyPassenger(members[0].PassengerID, "POOL_DISPATCHED", gomock.Any())
	f.gw.EXPECT().NotifyDriver(wonCab, "TRIP_ASSIGNED", gomock.Any())
	f.gw.EXPECT().PublishPoolDispatched(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.DispatchReadyPools(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, &wonCab, pool.CabID)
}

func TestDispatchReadyPools_DissolvesEmptyPool(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()
	uc := f.build()

	pool := formingPool()

	f.repo.EXPECT().ListDispatchReadyPools(gomock.Any()).Return([]*models.RidePool{pool}, nil)
	f.repo.EXPECT().GetPoolByID(gomock.Any(), pool.ID).Return(pool, nil)
	f.repo.EXPECT().GetActiveMembers(gomock.Any(), pool.ID).Return(nil, nil)
	f.repo.EXPECT().UpdatePoolVersioned(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.RidePool) error {
			assert.Equal(t, models.PoolStatusDissolved, p.Status)
			assert.Zero(t, p.TotalOccupiedSeats)
			return nil
		})
	f.repo.EXPECT().UnindexPool(gomock.Any(), pool.ID).Return(nil)
	f.gw.EXPECT().PublishPoolDissolved(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.DispatchReadyPools(context.Background())
	assert.NoError(t, err)
}

func TestDispatchReadyPools_SkipsPoolNoLongerForming(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()
	uc := f.build()

	pool := formingPool()
	advanced := *pool
	advanced.Status = models.PoolStatusConfirmed

	f.repo.EXPECT().ListDispatchReadyPools(gomock.Any()).Return([]*models.RidePool{pool}, nil)
	f.repo.EXPECT().GetPoolByID(gomock.Any(), pool.ID).Return(&advanced, nil)

	err := uc.DispatchReadyPools(context.Background())
	assert.NoError(t, err)
}

func TestDispatchReadyPools_OneFailureDoesNotBlockSiblings(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()
	uc := f.build()

	broken := formingPool()
	healthy := formingPool()

	f.repo.EXPECT().ListDispatchReadyPools(gomock.Any()).
		Return([]*models.RidePool{broken, healthy}, nil)
	f.repo.EXPECT().GetPoolByID(gomock.Any(), broken.ID).
		Return(nil, assert.AnError)

	// the second pool is still processed
	confirmed := *healthy
	confirmed.Status = models.PoolStatusConfirmed
	f.repo.EXPECT().GetPoolByID(gomock.Any(), healthy.ID).Return(&confirmed, nil)

	err := uc.DispatchReadyPools(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestRunRecovery_DissolvesStalePoolsAndFreesCabs(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()
	uc := f.build()

	cabID := uuid.New()
	stale := formingPool()
	stale.Status = models.PoolStatusDispatching
	stale.CabID = &cabID
	rider := member(stale.ID, 2)
	orphanCab := uuid.New()

	f.repo.EXPECT().ListStalePools(gomock.Any()).Return([]*models.RidePool{stale}, nil)
	f.repo.EXPECT().GetActiveMembers(gomock.Any(), stale.ID).Return([]*models.RideRequest{rider}, nil)
	f.repo.EXPECT().UpdateRequestStatus(gomock.Any(), rider.ID, models.RideStatusCancelled).Return(nil)
	f.gw.EXPECT().NotifyPassenger(rider.PassengerID, "RIDE_CANCELLED", gomock.Any())
	f.cabRepo.EXPECT().ReleaseCab(gomock.Any(), cabID).Return(nil)
	f.repo.EXPECT().UpdatePoolVersioned(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.RidePool) error {
			assert.Equal(t, models.PoolStatusDissolved, p.Status)
			assert.Nil(t, p.CabID)
			return nil
		})
	f.repo.EXPECT().UnindexPool(gomock.Any(), stale.ID).Return(nil)
	f.gw.EXPECT().PublishPoolDissolved(gomock.Any(), gomock.Any()).Return(nil)

	f.cabRepo.EXPECT().ListOrphanedAssignedCabIDs(gomock.Any()).Return([]uuid.UUID{orphanCab}, nil)
	f.cabRepo.EXPECT().ReleaseCab(gomock.Any(), orphanCab).Return(nil)

	err := uc.RunRecovery(context.Background())
	assert.NoError(t, err)
}

func TestStartTrip_RejectsUnconfirmedPool(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()
	uc := f.build()

	pool := formingPool()
	f.repo.EXPECT().GetPoolByID(gomock.Any(), pool.ID).Return(pool, nil)

	result, err := uc.StartTrip(context.Background(), pool.ID)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrInvalidOperation)
}

func TestCompleteTrip_ReleasesCab(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()
	uc := f.build()

	cabID := uuid.New()
	pool := formingPool()
	pool.Status = models.PoolStatusInProgress
	pool.CabID = &cabID
	rider := member(pool.ID, 2)
	rider.Status = models.RideStatusInProgress

	f.repo.EXPECT().GetPoolByID(gomock.Any(), pool.ID).Return(pool, nil)
	f.repo.EXPECT().GetActiveMembers(gomock.Any(), pool.ID).Return([]*models.RideRequest{rider}, nil)
	f.repo.EXPECT().UpdatePoolVersioned(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.RidePool) error {
			assert.Equal(t, models.PoolStatusCompleted, p.Status)
			return nil
		})
	f.repo.EXPECT().UpdateRequestStatus(gomock.Any(), rider.ID, models.RideStatusCompleted).Return(nil)
	f.gw.EXPECT().NotifyPassenger(rider.PassengerID, "RIDE_COMPLETED", gomock.Any())
	f.cabRepo.EXPECT().UpdateLocation(gomock.Any(), cabID, pool.DropLat, pool.DropLng).Return(nil)
	f.cabRepo.EXPECT().ReleaseCab(gomock.Any(), cabID).Return(nil)
	f.gw.EXPECT().PublishTripCompleted(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.CompleteTrip(context.Background(), pool.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.PoolStatusCompleted, result.Status)
}
