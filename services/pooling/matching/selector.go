package matching

import (
	"github.com/skycab/ridepool/internal/pkg/models"
	"github.com/skycab/ridepool/internal/utils"
)

const (
	pickupProximityWeight = 0.4
	dropProximityWeight   = 0.4
	memberCountReward     = 2.0
)

// Candidate couples a forming pool with its active members for evaluation
type Candidate struct {
	Pool    *models.RidePool
	Members []*models.RideRequest
}

// Selector scores candidate pools for a new request. Evaluation is read-only;
// the winner must be re-validated under the pool lock before committing.
type Selector struct {
	cfg models.PoolingConfig
}

func NewSelector(cfg models.PoolingConfig) *Selector {
	return &Selector{cfg: cfg}
}

// FindBestPool filters candidates to those with spare capacity, under the
// member cap, and whose simulated shared route keeps every affected rider
// within their own detour tolerance. Among survivors the lowest score wins.
// Returns nil when no candidate survives.
func (s *Selector) FindBestPool(request *models.RideRequest, candidates []Candidate) *Candidate {
	var best *Candidate
	bestScore := 0.0

	for i := range candidates {
		c := &candidates[i]
		if !s.HasCapacity(c, request) {
			continue
		}
		if !AllWithinTolerance(append(append([]*models.RideRequest{}, c.Members...), request)) {
			continue
		}
		score := s.Score(c, request)
		if best == nil || score < bestScore {
			best, bestScore = c, score
		}
	}
	return best
}

// HasCapacity checks seats, luggage and the member cap against the pool's
// effective capacity.
func (s *Selector) HasCapacity(c *Candidate, request *models.RideRequest) bool {
	if len(c.Members) >= s.cfg.MaxPoolSize {
		return false
	}
	if request.PassengerCount > c.Pool.RemainingSeats(s.cfg.DefaultSeats) {
		return false
	}
	if request.LuggageCount > c.Pool.RemainingLuggage(s.cfg.DefaultLuggage) {
		return false
	}
	return true
}

// Score is 0.4*pickupProximity + 0.4*avgDropProximity - 2.0*memberCount;
// lower is better. Pickup proximity is the assigned cab's distance to the
// new pickup, zero while no cab is attached. The member-count term rewards
// joining larger pools.
func (s *Selector) Score(c *Candidate, request *models.RideRequest) float64 {
	pickupProx := 0.0
	if c.Pool.Cab != nil {
		pickupProx = utils.DistanceKm(c.Pool.Cab.CurrentLat, c.Pool.Cab.CurrentLng, request.PickupLat, request.PickupLng)
	}

	dropProx := 0.0
	if len(c.Members) > 0 {
		sum := 0.0
		for _, m := range c.Members {
			sum += utils.DistanceKm(request.DropLat, request.DropLng, m.DropLat, m.DropLng)
		}
		dropProx = sum / float64(len(c.Members))
	}

	return pickupProximityWeight*pickupProx + dropProximityWeight*dropProx - memberCountReward*float64(len(c.Members))
}
