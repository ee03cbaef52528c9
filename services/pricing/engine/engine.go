package engine

import (
	"math"

	"github.com/skycab/ridepool/internal/pkg/models"
)

// Inputs carries everything a fare computation depends on. The caller
// resolves demand counts and the local hour so the engine stays pure.
type Inputs struct {
	DistanceKm     float64
	PoolSize       int
	ActiveRequests int
	AvailableCabs  int
	Hour           int
}

// Result is the full per-person fare breakdown
type Result struct {
	BasePrice        float64
	DistanceKm       float64
	DemandMultiplier float64
	SharingDiscount  float64
	SurgeFactor      float64
	FinalPrice       float64
}

// Engine computes per-person fares from the configured pricing constants
type Engine struct {
	cfg models.PricingConfig
}

func New(cfg models.PricingConfig) *Engine {
	return &Engine{cfg: cfg}
}

// Calculate produces the per-person fare for one rider.
// final = baseFarePerKm * distance * demand * sharingDiscount * surge,
// rounded to two decimals.
func (e *Engine) Calculate(in Inputs) Result {
	base := e.cfg.BaseFarePerKm * in.DistanceKm
	demand := e.DemandMultiplier(in.ActiveRequests, in.AvailableCabs)
	discount := e.SharingDiscount(in.PoolSize)
	surge := e.SurgeFactor(in.Hour)

	return Result{
		BasePrice:        round2(base),
		DistanceKm:       in.DistanceKm,
		DemandMultiplier: demand,
		SharingDiscount:  discount,
		SurgeFactor:      surge,
		FinalPrice:       round2(base * demand * discount * surge),
	}
}

// DemandMultiplier scales fares with the ratio of active requests to
// available cabs. It never drops below 1, and with no supply at all it
// settles on the maximum of 1 + sensitivity.
func (e *Engine) DemandMultiplier(activeRequests, availableCabs int) float64 {
	if availableCabs <= 0 {
		return 1 + e.cfg.DemandSensitivity
	}
	ratio := float64(activeRequests) / float64(availableCabs)
	mult := 1 + (ratio-e.cfg.DemandThreshold)*e.cfg.DemandSensitivity
	if mult < 1 {
		return 1
	}
	return mult
}

// SharingDiscount rewards each co-rider beyond the first, down to the
// configured floor. A solo rider pays full price.
func (e *Engine) SharingDiscount(poolSize int) float64 {
	if poolSize <= 1 {
		return 1
	}
	discount := 1 - float64(poolSize-1)*e.cfg.DiscountPerCoRider
	if discount < e.cfg.MinSharingDiscount {
		return e.cfg.MinSharingDiscount
	}
	return discount
}

// SurgeFactor returns the peak factor during either peak window
// (start inclusive, end exclusive) and the off-peak factor otherwise.
func (e *Engine) SurgeFactor(hour int) float64 {
	if hour >= e.cfg.PeakHoursStart && hour < e.cfg.PeakHoursEnd {
		return e.cfg.PeakSurgeFactor
	}
	if hour >= e.cfg.EveningPeakStart && hour < e.cfg.EveningPeakEnd {
		return e.cfg.PeakSurgeFactor
	}
	return e.cfg.OffPeakSurgeFactor
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
