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
	"github.com/skycab/ridepool/services/pooling"
	"github.com/skycab/ridepool/services/pooling/matching"
	"github.com/skycab/ridepool/services/pricing"
)

// errPoolIneligible means the chosen pool stopped accepting this request
// between evaluation and commit; the caller moves on to another pool.
var errPoolIneligible = errors.New("pool no longer eligible")

// poolingUC implements the pooling.PoolingUC interface
type poolingUC struct {
	cfg       *models.Config
	repo      pooling.PoolingRepo
	cabRepo   cabs.CabRepo
	pricingUC pricing.PricingUC
	gw        pooling.PoolingGW
	locks     locking.Manager
	selector  *matching.Selector
	now       func() time.Time
}

// NewPoolingUC creates a new pooling use case
func NewPoolingUC(
	cfg *models.Config,
	repo pooling.PoolingRepo,
	cabRepo cabs.CabRepo,
	pricingUC pricing.PricingUC,
	gw pooling.PoolingGW,
	locks locking.Manager,
) pooling.PoolingUC {
	return &poolingUC{
		cfg:       cfg,
		repo:      repo,
		cabRepo:   cabRepo,
		pricingUC: pricingUC,
		gw:        gw,
		locks:     locks,
		selector:  matching.NewSelector(cfg.Pooling),
		now:       time.Now,
	}
}

// RequestRide books a transfer. The request joins the best compatible
// forming pool near its pickup, or founds a new pool when none fits.
func (uc *poolingUC) RequestRide(ctx context.Context, input *models.RideRequestInput) (*models.RideRequest, error) {
	// same key re-submitted returns the original result unchanged
	existing, err := uc.repo.GetRequestByIdempotencyKey(ctx, input.IdempotencyKey)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	request, err := uc.buildRequest(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	pool, err := uc.findOrCreatePool(ctx, request)
	if err != nil {
		// the request row is already committed; cancel it so the
		// idempotency key and the passenger's active-booking slot are
		// not left bound to a request no pool will ever serve
		if cancelErr := uc.repo.UpdateRequestStatus(ctx, request.ID, models.RideStatusCancelled); cancelErr != nil {
			logger.Error("Failed to cancel request after pooling failure",
				logger.String("request_id", request.ID.String()),
				logger.Err(cancelErr))
		}
		return nil, err
	}
	request.PoolID = &pool.ID
	request.Status = models.RideStatusPooled

	event := models.NewRidePooledEvent(request.ID, pool.ID, request.PassengerID)
	if err := uc.gw.PublishRidePooled(ctx, event); err != nil {
		logger.Warn("Failed to publish ride pooled event",
			logger.String("request_id", request.ID.String()),
			logger.Err(err))
	}
	uc.gw.NotifyPassenger(request.PassengerID, constants.NotifyPoolJoined, models.PoolDetail{Pool: *pool})

	logger.Info("Ride request pooled",
		logger.String("request_id", request.ID.String()),
		logger.String("pool_id", pool.ID.String()),
		logger.Int("pool_seats", pool.TotalOccupiedSeats))
	return request, nil
}

func (uc *poolingUC) buildRequest(ctx context.Context, input *models.RideRequestInput) (*models.RideRequest, error) {
	passengerID, err := uuid.Parse(input.PassengerID)
	if err != nil {
		return nil, apperrors.InvalidOperationf("invalid passenger id %q", input.PassengerID)
	}

	exists, err := uc.repo.PassengerExists(ctx, passengerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFoundf("passenger %s not found", passengerID)
	}

	active, err := uc.repo.HasActiveRequest(ctx, passengerID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, apperrors.InvalidOperationf("passenger %s already has an active ride request", passengerID)
	}

	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := uc.now()
	request := &models.RideRequest{
		ID:             uuid.New(),
		PassengerID:    passengerID,
		PickupLat:      input.PickupLat,
		PickupLng:      input.PickupLng,
		DropLat:        input.DropLat,
		DropLng:        input.DropLng,
		PassengerCount: input.PassengerCount,
		LuggageCount:   input.LuggageCount,
		MaxDetourKm:    input.MaxDetourKm,
		Status:         models.RideStatusPending,
		IdempotencyKey: input.IdempotencyKey,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// booking-time estimate is the solo fare; the final per-person fare is
	// fixed at dispatch
	estimate, err := uc.pricingUC.EstimateFare(ctx, models.PriceEstimateRequest{
		PickupLat: input.PickupLat, PickupLng: input.PickupLng,
		DropLat: input.DropLat, DropLng: input.DropLng,
	})
	if err != nil {
		return nil, err
	}
	if len(estimate.Prices) > 0 {
		request.EstimatedPrice = &estimate.Prices[0].Price
	}
	return request, nil
}

func validateInput(input *models.RideRequestInput) error {
	if input.PassengerCount < 1 || input.PassengerCount > 8 {
		return apperrors.InvalidOperationf("passenger count %d outside 1-8", input.PassengerCount)
	}
	if input.LuggageCount < 0 || input.LuggageCount > 10 {
		return apperrors.InvalidOperationf("luggage count %d outside 0-10", input.LuggageCount)
	}
	if input.MaxDetourKm < 0 {
		return apperrors.InvalidOperationf("max detour %.2f must not be negative", input.MaxDetourKm)
	}
	if input.IdempotencyKey == "" {
		return apperrors.InvalidOperationf("idempotency key is required")
	}
	for _, c := range []struct{ lat, lng float64 }{
		{input.PickupLat, input.PickupLng},
		{input.DropLat, input.DropLng},
	} {
		if c.lat < -90 || c.lat > 90 || c.lng < -180 || c.lng > 180 {
			return apperrors.InvalidOperationf("coordinates (%.6f, %.6f) out of range", c.lat, c.lng)
		}
	}
	return nil
}

// findOrCreatePool evaluates nearby forming pools without a lock, then
// re-validates the winner under its lock before committing. Pools that go
// stale between evaluation and commit are skipped.
func (uc *poolingUC) findOrCreatePool(ctx context.Context, request *models.RideRequest) (*models.RidePool, error) {
	nearby, err := uc.repo.FindFormingPoolsNear(ctx, request.PickupLat, request.PickupLng, uc.cfg.Pooling.SearchRadiusKm)
	if err != nil {
		return nil, err
	}

	candidates := make([]matching.Candidate, 0, len(nearby))
	for _, pool := range nearby {
		members, err := uc.repo.GetActiveMembers(ctx, pool.ID)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, matching.Candidate{Pool: pool, Members: members})
	}

	for len(candidates) > 0 {
		best := uc.selector.FindBestPool(request, candidates)
		if best == nil {
			break
		}

		pool, err := uc.joinPool(ctx, best.Pool.ID, request)
		if err == nil {
			return pool, nil
		}
		if !errors.Is(err, errPoolIneligible) && !apperrors.IsRetryable(err) {
			return nil, err
		}

		// drop the failed candidate and try the next best
		remaining := candidates[:0]
		for _, c := range candidates {
			if c.Pool.ID != best.Pool.ID {
				remaining = append(remaining, c)
			}
		}
		candidates = remaining
	}

	return uc.createPool(ctx, request)
}

// joinPool commits the join under the pool's exclusive lock with an
// optimistic version check underneath. A version race re-reads and
// re-validates before reapplying, up to the configured retry budget.
func (uc *poolingUC) joinPool(ctx context.Context, poolID uuid.UUID, request *models.RideRequest) (*models.RidePool, error) {
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

	for attempt := 0; attempt <= uc.cfg.Concurrency.OptimisticRetryMax; attempt++ {
		pool, err := uc.repo.GetPoolByID(ctx, poolID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, errPoolIneligible
			}
			return nil, err
		}
		members, err := uc.repo.GetActiveMembers(ctx, poolID)
		if err != nil {
			return nil, err
		}

		// the candidate set can go stale between evaluation and commit
		candidate := matching.Candidate{Pool: pool, Members: members}
		if pool.Status != models.PoolStatusForming ||
			!uc.selector.HasCapacity(&candidate, request) ||
			!matching.AllWithinTolerance(append(append([]*models.RideRequest{}, members...), request)) {
			return nil, errPoolIneligible
		}

		pool.TotalOccupiedSeats += request.PassengerCount
		pool.TotalLuggage += request.LuggageCount
		pool.RouteDistanceKm = matching.EstimateRouteDistance(append(append([]*models.RideRequest{}, members...), request))

		err = uc.repo.UpdatePoolVersioned(ctx, pool)
		if errors.Is(err, apperrors.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}

		if err := uc.repo.AssignRequestToPool(ctx, request.ID, pool.ID); err != nil {
			return nil, err
		}
		return pool, nil
	}
	return nil, apperrors.Conflictf("joining pool %s: retries exhausted", poolID)
}

// createPool founds a new pool anchored on the request
func (uc *poolingUC) createPool(ctx context.Context, request *models.RideRequest) (*models.RidePool, error) {
	now := uc.now()
	pool := &models.RidePool{
		ID:                 uuid.New(),
		Status:             models.PoolStatusForming,
		TotalOccupiedSeats: request.PassengerCount,
		TotalLuggage:       request.LuggageCount,
		RouteDistanceKm:    matching.EstimateRouteDistance([]*models.RideRequest{request}),
		PickupLat:          request.PickupLat,
		PickupLng:          request.PickupLng,
		DropLat:            request.DropLat,
		DropLng:            request.DropLng,
		WindowExpiresAt:    now.Add(time.Duration(uc.cfg.Pooling.PoolWindowSeconds) * time.Second),
		Version:            1,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := uc.repo.CreatePool(ctx, pool); err != nil {
		return nil, err
	}
	if err := uc.repo.IndexFormingPool(ctx, pool); err != nil {
		logger.Warn("Failed to index forming pool",
			logger.String("pool_id", pool.ID.String()),
			logger.Err(err))
	}
	if err := uc.repo.AssignRequestToPool(ctx, request.ID, pool.ID); err != nil {
		return nil, err
	}

	logger.Info("New pool founded",
		logger.String("pool_id", pool.ID.String()),
		logger.String("request_id", request.ID.String()))
	return pool, nil
}

// CancelRide removes a booking. The pool shrinks, dissolves when drained,
// and riders left behind in an already-priced pool get a fresh fare.
func (uc *poolingUC) CancelRide(ctx context.Context, requestID uuid.UUID, reason string) (*models.RideRequest, error) {
	request, err := uc.repo.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status.IsTerminal() {
		return nil, apperrors.InvalidOperationf("ride request %s already %s", requestID, request.Status)
	}
	if request.Status == models.RideStatusInProgress {
		return nil, apperrors.InvalidOperationf("ride request %s already in progress", requestID)
	}

	if request.PoolID == nil {
		if err := uc.repo.UpdateRequestStatus(ctx, requestID, models.RideStatusCancelled); err != nil {
			return nil, err
		}
		request.Status = models.RideStatusCancelled
		uc.publishCancellation(ctx, request, reason)
		return request, nil
	}

	if err := uc.leavePool(ctx, *request.PoolID, request, reason); err != nil {
		return nil, err
	}
	request.Status = models.RideStatusCancelled
	uc.publishCancellation(ctx, request, reason)
	return request, nil
}

// leavePool shrinks or dissolves the pool under its lock, with the same
// optimistic retry discipline as joins.
func (uc *poolingUC) leavePool(ctx context.Context, poolID uuid.UUID, request *models.RideRequest, reason string) error {
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

	for attempt := 0; attempt <= uc.cfg.Concurrency.OptimisticRetryMax; attempt++ {
		pool, err := uc.repo.GetPoolByID(ctx, poolID)
		if err != nil {
			return err
		}

		members, err := uc.repo.GetActiveMembers(ctx, poolID)
		if err != nil {
			return err
		}
		remaining := make([]*models.RideRequest, 0, len(members))
		for _, m := range members {
			if m.ID != request.ID {
				remaining = append(remaining, m)
			}
		}

		var freedCab *uuid.UUID
		if len(remaining) == 0 {
			pool.Status = models.PoolStatusDissolved
			pool.TotalOccupiedSeats = 0
			pool.TotalLuggage = 0
			pool.RouteDistanceKm = 0
			freedCab = pool.CabID
			pool.CabID = nil
		} else {
			seats, luggage := 0, 0
			for _, m := range remaining {
				seats += m.PassengerCount
				luggage += m.LuggageCount
			}
			pool.TotalOccupiedSeats = seats
			pool.TotalLuggage = luggage
			pool.RouteDistanceKm = matching.EstimateRouteDistance(remaining)
		}

		err = uc.repo.UpdatePoolVersioned(ctx, pool)
		if errors.Is(err, apperrors.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return err
		}

		if err := uc.repo.UpdateRequestStatus(ctx, request.ID, models.RideStatusCancelled); err != nil {
			return err
		}

		if len(remaining) == 0 {
			// an already-assigned cab goes back to the available fleet
			if freedCab != nil {
				if err := uc.cabRepo.ReleaseCab(ctx, *freedCab); err != nil {
					return err
				}
				uc.gw.NotifyDriver(*freedCab, constants.NotifyTripCancelled, map[string]interface{}{
					"pool_id": poolID,
					"reason":  reason,
				})
			}
			if err := uc.repo.UnindexPool(ctx, poolID); err != nil {
				logger.Warn("Failed to unindex dissolved pool",
					logger.String("pool_id", poolID.String()),
					logger.Err(err))
			}
			event := models.NewPoolDissolvedEvent(poolID)
			if err := uc.gw.PublishPoolDissolved(ctx, event); err != nil {
				logger.Warn("Failed to publish pool dissolved event",
					logger.String("pool_id", poolID.String()),
					logger.Err(err))
			}
			return nil
		}

		uc.afterMemberLeft(ctx, pool, remaining, request)
		return nil
	}
	return apperrors.Conflictf("leaving pool %s: retries exhausted", poolID)
}

// afterMemberLeft reprices the riders left in an already-priced pool and
// tells them a co-rider dropped out.
func (uc *poolingUC) afterMemberLeft(ctx context.Context, pool *models.RidePool, remaining []*models.RideRequest, left *models.RideRequest) {
	for _, m := range remaining {
		uc.gw.NotifyPassenger(m.PassengerID, constants.NotifyRiderLeft, map[string]interface{}{
			"pool_id":         pool.ID,
			"ride_request_id": left.ID,
		})
	}

	if pool.Status != models.PoolStatusConfirmed {
		return
	}

	records, err := uc.pricingUC.RepriceMembers(ctx, remaining)
	if err != nil {
		logger.Error("Failed to reprice pool members after cancellation",
			logger.String("pool_id", pool.ID.String()),
			logger.Err(err))
		return
	}
	for i, m := range remaining {
		event := models.NewPriceUpdatedEvent(m.ID, m.PassengerID)
		if err := uc.gw.PublishPriceUpdated(ctx, event); err != nil {
			logger.Warn("Failed to publish price updated event",
				logger.String("request_id", m.ID.String()),
				logger.Err(err))
		}
		uc.gw.NotifyPassenger(m.PassengerID, constants.NotifyPriceUpdated, records[i])
	}
}

func (uc *poolingUC) publishCancellation(ctx context.Context, request *models.RideRequest, reason string) {
	event := models.NewRideCancelledEvent(request.ID, request.PoolID, request.PassengerID, reason)
	if err := uc.gw.PublishRideCancelled(ctx, event); err != nil {
		logger.Warn("Failed to publish ride cancelled event",
			logger.String("request_id", request.ID.String()),
			logger.Err(err))
	}
	uc.gw.NotifyPassenger(request.PassengerID, constants.NotifyRideCancelled, request)
}

// GetRequest returns one ride request
func (uc *poolingUC) GetRequest(ctx context.Context, requestID uuid.UUID) (*models.RideRequest, error) {
	return uc.repo.GetRequestByID(ctx, requestID)
}

// GetPoolDetail returns a pool with its active members and assigned cab
func (uc *poolingUC) GetPoolDetail(ctx context.Context, poolID uuid.UUID) (*models.PoolDetail, error) {
	pool, err := uc.repo.GetPoolByID(ctx, poolID)
	if err != nil {
		return nil, err
	}
	members, err := uc.repo.GetActiveMembers(ctx, poolID)
	if err != nil {
		return nil, err
	}

	detail := &models.PoolDetail{Pool: *pool, Cab: pool.Cab}
	for _, m := range members {
		detail.Riders = append(detail.Riders, *m)
	}
	return detail, nil
}

// ListPassengerRequests returns the passenger's booking history
func (uc *poolingUC) ListPassengerRequests(ctx context.Context, passengerID uuid.UUID) ([]*models.RideRequest, error) {
	return uc.repo.ListRequestsByPassenger(ctx, passengerID)
}
