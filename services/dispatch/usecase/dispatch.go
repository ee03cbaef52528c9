package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/skycab/ridepool/internal/pkg/apperrors"
	"github.com/skycab/ridepool/internal/pkg/constants"
	"github.com/skycab/ridepool/internal/pkg/locking"
	"github.com/skycab/ridepool/internal/pkg/logger"
	"github.com/skycab/ridepool/internal/pkg/models"
	"github.com/skycab/ridepool/services/cabs"
	"github.com/skycab/ridepool/services/dispatch"
	"github.com/skycab/ridepool/services/pricing"
)

// cabSearchRetryFactor widens the radius for the second search pass
const cabSearchRetryFactor = 3

type dispatchUC struct {
	cfg       *models.Config
	repo      dispatch.DispatchRepo
	cabRepo   cabs.CabRepo
	pricingUC pricing.PricingUC
	gw        dispatch.DispatchGW
	locks     locking.Manager
	now       func() time.Time
}

// NewDispatchUC creates a new dispatch usecase
func NewDispatchUC(
	cfg *models.Config,
	repo dispatch.DispatchRepo,
	cabRepo cabs.CabRepo,
	pricingUC pricing.PricingUC,
	gw dispatch.DispatchGW,
	locks locking.Manager,
) dispatch.DispatchUC {
	return &dispatchUC{
		cfg:       cfg,
		repo:      repo,
		cabRepo:   cabRepo,
		pricingUC: pricingUC,
		gw:        gw,
		locks:     locks,
		now:       time.Now,
	}
}

// RunRecovery dissolves pools stranded mid-formation or mid-dispatch by a
// prior crashed run and frees any cab they held, then releases ASSIGNED
// cabs no live pool references. A crash between cab claim and pool confirm
// would otherwise strand both sides indefinitely.
func (uc *dispatchUC) RunRecovery(ctx context.Context) error {
	stale, err := uc.repo.ListStalePools(ctx)
	if err != nil {
		return fmt.Errorf("listing stale pools: %w", err)
	}

	var firstErr error
	for _, pool := range stale {
		if err := uc.recoverStalePool(ctx, pool); err != nil {
			logger.Error("Recovery failed for pool",
				logger.String("pool_id", pool.ID.String()),
				logger.Err(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	orphans, err := uc.cabRepo.ListOrphanedAssignedCabIDs(ctx)
	if err != nil {
		return fmt.Errorf("listing orphaned cabs: %w", err)
	}
	for _, cabID := range orphans {
		if err := uc.cabRepo.ReleaseCab(ctx, cabID); err != nil {
			logger.Error("Recovery failed to release orphaned cab",
				logger.String("cab_id", cabID.String()),
				logger.Err(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	logger.Info("Startup recovery finished",
		logger.Int("stale_pools", len(stale)),
		logger.Int("orphaned_cabs", len(orphans)))
	return firstErr
}

func (uc *dispatchUC) recoverStalePool(ctx context.Context, pool *models.RidePool) error {
	members, err := uc.repo.GetActiveMembers(ctx, pool.ID)
	if err != nil {
		return err
	}
	for _, m := range members {
		if err := uc.repo.UpdateRequestStatus(ctx, m.ID, models.RideStatusCancelled); err != nil {
			return err
		}
		uc.gw.NotifyPassenger(m.PassengerID, constants.NotifyRideCancelled, m)
	}

	if pool.CabID != nil {
		if err := uc.cabRepo.ReleaseCab(ctx, *pool.CabID); err != nil {
			return err
		}
	}

	pool.Status = models.PoolStatusDissolved
	pool.CabID = nil
	pool.TotalOccupiedSeats = 0
	pool.TotalLuggage = 0
	pool.RouteDistanceKm = 0
	if err := uc.repo.UpdatePoolVersioned(ctx, pool); err != nil {
		return err
	}
	if err := uc.repo.UnindexPool(ctx, pool.ID); err != nil {
		logger.Warn("Failed to unindex dissolved pool",
			logger.String("pool_id", pool.ID.String()),
			logger.Err(err))
	}
	return uc.gw.PublishPoolDissolved(ctx, models.NewPoolDissolvedEvent(pool.ID))
}

// DispatchReadyPools processes every full or window-expired FORMING pool.
// One pool's failure never blocks its siblings; the first error is
// reported after the sweep.
func (uc *dispatchUC) DispatchReadyPools(ctx context.Context) error {
	pools, err := uc.repo.ListDispatchReadyPools(ctx)
	if err != nil {
		return err
	}

	var firstErr error
	for _, pool := range pools {
		if err := uc.dispatchPool(ctx, pool.ID); err != nil {
			logger.Error("Dispatch failed for pool",
				logger.String("pool_id", pool.ID.String()),
				logger.Err(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// dispatchPool runs the allocation protocol for one pool under its
// exclusive lock: re-check FORMING, mark DISPATCHING, claim the nearest
// available cab, then either confirm with final per-rider fares or requeue
// the pool when no cab was found.
func (uc *dispatchUC) dispatchPool(ctx context.Context, poolID uuid.UUID) error {
	lockWait := time.Duration(uc.cfg.Concurrency.LockTimeoutSeconds) * time.Second
	handle, err := uc.locks.Acquire(ctx, fmt.Sprintf(constants.KeyPoolLock, poolID), lockWait)
	if err != nil {
		return err
	}
	defer func() {
		if err := uc.locks.Release(ctx, handle); err != nil {
			logger.Warn("Failed to release pool lock",
				logger.String("pool_id", poolID.String()),
				logger.Err(err))
		}
	}()

	pool, err := uc.repo.GetPoolByID(ctx, poolID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return err
	}
	// a concurrent actor may have advanced or dissolved the pool already
	if pool.Status != models.PoolStatusForming {
		return nil
	}

	members, err := uc.repo.GetActiveMembers(ctx, poolID)
	if err != nil {
		return err
	}
	if len(members) == 0 {
		return uc.dissolveEmptyPool(ctx, pool)
	}

	// blocks new joins while the cab search is in flight
	pool.Status = models.PoolStatusDispatching
	if err := uc.repo.UpdatePoolVersioned(ctx, pool); err != nil {
		return err
	}

	cabID, found, err := uc.claimNearestCab(ctx, pool.PickupLat, pool.PickupLng)
	if err != nil {
		uc.unwindDispatch(ctx, poolID, nil)
		return err
	}
	if !found {
		return uc.requeueForSupply(ctx, pool, members)
	}

	if err := uc.confirmPool(ctx, pool, members, cabID); err != nil {
		uc.unwindDispatch(ctx, poolID, &cabID)
		return err
	}
	return nil
}

// unwindDispatch returns a pool left DISPATCHING by a failed allocation to
// the FORMING queue with its window pushed, freeing any cab the attempt
// claimed, so a later tick retries it. Pools that already reached CONFIRMED
// are left alone. Best-effort: anything that fails here is picked up by
// startup recovery.
func (uc *dispatchUC) unwindDispatch(ctx context.Context, poolID uuid.UUID, cabID *uuid.UUID) {
	stored, err := uc.repo.GetPoolByID(ctx, poolID)
	if err != nil {
		logger.Error("Failed to reload pool after dispatch failure",
			logger.String("pool_id", poolID.String()),
			logger.Err(err))
		return
	}
	if stored.Status != models.PoolStatusDispatching {
		return
	}

	if cabID != nil {
		if err := uc.cabRepo.ReleaseCab(ctx, *cabID); err != nil {
			logger.Error("Failed to release cab after dispatch failure",
				logger.String("cab_id", cabID.String()),
				logger.Err(err))
		}
	}

	stored.Status = models.PoolStatusForming
	stored.WindowExpiresAt = uc.now().Add(time.Duration(uc.cfg.Dispatch.RetryDelaySeconds) * time.Second)
	if err := uc.repo.UpdatePoolVersioned(ctx, stored); err != nil {
		logger.Error("Failed to requeue pool after dispatch failure",
			logger.String("pool_id", poolID.String()),
			logger.Err(err))
	}
}

func (uc *dispatchUC) dissolveEmptyPool(ctx context.Context, pool *models.RidePool) error {
	pool.Status = models.PoolStatusDissolved
	pool.TotalOccupiedSeats = 0
	pool.TotalLuggage = 0
	pool.RouteDistanceKm = 0
	if err := uc.repo.UpdatePoolVersioned(ctx, pool); err != nil {
		return err
	}
	if err := uc.repo.UnindexPool(ctx, pool.ID); err != nil {
		logger.Warn("Failed to unindex dissolved pool",
			logger.String("pool_id", pool.ID.String()),
			logger.Err(err))
	}

	logger.Info("Dissolved empty pool at dispatch",
		logger.String("pool_id", pool.ID.String()))
	return uc.gw.PublishPoolDissolved(ctx, models.NewPoolDissolvedEvent(pool.ID))
}

// claimNearestCab searches the base radius, then once more at triple the
// radius. Each candidate is claimed under its own cab lock so two pools
// dispatched in the same tick cannot both win the same cab; losing the CAS
// moves on to the next candidate.
func (uc *dispatchUC) claimNearestCab(ctx context.Context, lat, lng float64) (uuid.UUID, bool, error) {
	radii := []float64{
		uc.cfg.Dispatch.SearchRadiusKm,
		uc.cfg.Dispatch.SearchRadiusKm * cabSearchRetryFactor,
	}

	for _, radius := range radii {
		candidates, err := uc.cabRepo.FindAvailableNear(ctx, lat, lng, radius)
		if err != nil {
			return uuid.Nil, false, err
		}
		for _, candidate := range candidates {
			claimed, err := uc.claimCab(ctx, candidate.ID)
			if err != nil {
				return uuid.Nil, false, err
			}
			if claimed {
				return candidate.ID, true, nil
			}
		}
	}
	return uuid.Nil, false, nil
}

func (uc *dispatchUC) claimCab(ctx context.Context, cabID uuid.UUID) (bool, error) {
	lockWait := time.Duration(uc.cfg.Concurrency.LockTimeoutSeconds) * time.Second
	handle, err := uc.locks.Acquire(ctx, fmt.Sprintf(constants.KeyCabLock, cabID), lockWait)
	if err != nil {
		if apperrors.IsRetryable(err) {
			// contended cab, treat as lost and try the next one
			return false, nil
		}
		return false, err
	}
	defer func() {
		if err := uc.locks.Release(ctx, handle); err != nil {
			logger.Warn("Failed to release cab lock",
				logger.String("cab_id", cabID.String()),
				logger.Err(err))
		}
	}()

	return uc.cabRepo.ClaimCab(ctx, cabID)
}

// requeueForSupply puts the pool back in FORMING with its window pushed
// forward. Absence of supply is retried on a later tick, never treated as
// failure.
func (uc *dispatchUC) requeueForSupply(ctx context.Context, pool *models.RidePool, members []*models.RideRequest) error {
	pool.Status = models.PoolStatusForming
	pool.WindowExpiresAt = uc.now().Add(time.Duration(uc.cfg.Dispatch.RetryDelaySeconds) * time.Second)
	if err := uc.repo.UpdatePoolVersioned(ctx, pool); err != nil {
		return err
	}

	for _, m := range members {
		uc.gw.NotifyPassenger(m.PassengerID, constants.NotifyPoolWaiting, map[string]interface{}{
			"pool_id":     pool.ID,
			"retry_after": uc.cfg.Dispatch.RetryDelaySeconds,
		})
	}

	logger.Info("No cab available, pool requeued",
		logger.String("pool_id", pool.ID.String()),
		logger.Int("members", len(members)))
	return nil
}

// confirmPool attaches the claimed cab, fixes final per-rider fares at the
// group's total passenger count, and confirms every member.
func (uc *dispatchUC) confirmPool(ctx context.Context, pool *models.RidePool, members []*models.RideRequest, cabID uuid.UUID) error {
	cab, err := uc.cabRepo.GetCabByID(ctx, cabID)
	if err != nil {
		return err
	}

	dispatchedAt := uc.now()
	pool.CabID = &cabID
	pool.Cab = cab
	pool.DispatchedAt = &dispatchedAt
	pool.Status = models.PoolStatusConfirmed
	if err := uc.repo.UpdatePoolVersioned(ctx, pool); err != nil {
		return err
	}
	if err := uc.repo.UnindexPool(ctx, pool.ID); err != nil {
		logger.Warn("Failed to unindex confirmed pool",
			logger.String("pool_id", pool.ID.String()),
			logger.Err(err))
	}

	records, err := uc.pricingUC.RepriceMembers(ctx, members)
	if err != nil {
		return err
	}

	for i, m := range members {
		if err := uc.repo.UpdateRequestStatus(ctx, m.ID, models.RideStatusConfirmed); err != nil {
			return err
		}
		uc.gw.NotifyPassenger(m.PassengerID, constants.NotifyPoolDispatched, map[string]interface{}{
			"pool_id": pool.ID,
			"cab":     cab,
			"pricing": records[i],
		})
	}

	uc.gw.NotifyDriver(cabID, constants.NotifyTripAssigned, models.PoolDetail{
		Pool:   *pool,
		Riders: dereferenced(members),
		Cab:    cab,
	})

	logger.Info("Pool dispatched",
		logger.String("pool_id", pool.ID.String()),
		logger.String("cab_id", cabID.String()),
		logger.Int("members", len(members)))
	return uc.gw.PublishPoolDispatched(ctx, models.NewPoolDispatchedEvent(pool.ID, cabID))
}

// StartTrip moves a CONFIRMED pool to IN_PROGRESS and puts its cab ON_TRIP
func (uc *dispatchUC) StartTrip(ctx context.Context, poolID uuid.UUID) (*models.RidePool, error) {
	return uc.advanceTrip(ctx, poolID,
		models.PoolStatusConfirmed, models.PoolStatusInProgress,
		models.RideStatusInProgress, constants.NotifyRideStarted,
		func(ctx context.Context, pool *models.RidePool) error {
			if err := uc.cabRepo.SetStatus(ctx, *pool.CabID, models.CabStatusOnTrip); err != nil {
				return err
			}
			return uc.gw.PublishTripStarted(ctx, models.NewTripStartedEvent(pool.ID, *pool.CabID))
		})
}

// CompleteTrip moves an IN_PROGRESS pool to COMPLETED and frees its cab.
// The cab re-enters the available index at the route's drop point.
func (uc *dispatchUC) CompleteTrip(ctx context.Context, poolID uuid.UUID) (*models.RidePool, error) {
	return uc.advanceTrip(ctx, poolID,
		models.PoolStatusInProgress, models.PoolStatusCompleted,
		models.RideStatusCompleted, constants.NotifyRideCompleted,
		func(ctx context.Context, pool *models.RidePool) error {
			if err := uc.cabRepo.UpdateLocation(ctx, *pool.CabID, pool.DropLat, pool.DropLng); err != nil {
				return err
			}
			if err := uc.cabRepo.ReleaseCab(ctx, *pool.CabID); err != nil {
				return err
			}
			return uc.gw.PublishTripCompleted(ctx, models.NewTripCompletedEvent(pool.ID, *pool.CabID))
		})
}

func (uc *dispatchUC) advanceTrip(
	ctx context.Context,
	poolID uuid.UUID,
	from, to models.PoolStatus,
	memberStatus models.RideStatus,
	notifyType string,
	finish func(context.Context, *models.RidePool) error,
) (*models.RidePool, error) {
	lockWait := time.Duration(uc.cfg.Concurrency.LockTimeoutSeconds) * time.Second
	handle, err := uc.locks.Acquire(ctx, fmt.Sprintf(constants.KeyPoolLock, poolID), lockWait)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := uc.locks.Release(ctx, handle); err != nil {
			logger.Warn("Failed to release pool lock",
				logger.String("pool_id", poolID.String()),
				logger.Err(err))
		}
	}()

	pool, err := uc.repo.GetPoolByID(ctx, poolID)
	if err != nil {
		return nil, err
	}
	if pool.Status != from {
		return nil, apperrors.InvalidOperationf("pool %s is %s, expected %s", poolID, pool.Status, from)
	}
	if pool.CabID == nil {
		return nil, apperrors.InvalidOperationf("pool %s has no cab assigned", poolID)
	}

	members, err := uc.repo.GetActiveMembers(ctx, poolID)
	if err != nil {
		return nil, err
	}

	pool.Status = to
	if err := uc.repo.UpdatePoolVersioned(ctx, pool); err != nil {
		return nil, err
	}

	for _, m := range members {
		if err := uc.repo.UpdateRequestStatus(ctx, m.ID, memberStatus); err != nil {
			return nil, err
		}
		uc.gw.NotifyPassenger(m.PassengerID, notifyType, map[string]interface{}{
			"pool_id": pool.ID,
			"status":  memberStatus,
		})
	}

	if err := finish(ctx, pool); err != nil {
		return nil, err
	}
	return pool, nil
}

func dereferenced(members []*models.RideRequest) []models.RideRequest {
	out := make([]models.RideRequest, len(members))
	for i, m := range members {
		out[i] = *m
	}
	return out
}
