package models

import (
	"time"

	"github.com/google/uuid"
)

// PricingRecord is the latest per-person fare breakdown for one ride request.
// At most one live record exists per request; recalculation overwrites it.
type PricingRecord struct {
	ID               uuid.UUID `json:"pricing_id" db:"id"`
	RideRequestID    uuid.UUID `json:"ride_request_id" db:"ride_request_id"`
	BasePrice        float64   `json:"base_price" db:"base_price"`
	DistanceKm       float64   `json:"distance_km" db:"distance_km"`
	DemandMultiplier float64   `json:"demand_multiplier" db:"demand_multiplier"`
	SharingDiscount  float64   `json:"sharing_discount" db:"sharing_discount"`
	SurgeFactor      float64   `json:"surge_factor" db:"surge_factor"`
	FinalPrice       float64   `json:"final_price" db:"final_price"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// PriceEstimateRequest is the inbound estimate payload
type PriceEstimateRequest struct {
	PickupLat float64 `json:"pickup_lat"`
	PickupLng float64 `json:"pickup_lng"`
	DropLat   float64 `json:"drop_lat"`
	DropLng   float64 `json:"drop_lng"`
}

// PriceOption is one rung of the estimate ladder
type PriceOption struct {
	PoolSize        int     `json:"pool_size"`
	Label           string  `json:"label"`
	SharingDiscount float64 `json:"sharing_discount"`
	Price           float64 `json:"price"`
}

// PriceEstimate is the fare ladder for pool sizes 1..4
type PriceEstimate struct {
	DistanceKm       float64       `json:"distance_km"`
	BaseFarePerKm    float64       `json:"base_fare_per_km"`
	DemandMultiplier float64       `json:"demand_multiplier"`
	SurgeFactor      float64       `json:"surge_factor"`
	Prices           []PriceOption `json:"prices"`
	Notes            string        `json:"notes,omitempty"`
}
