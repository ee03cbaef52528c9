package models

import (
	"time"

	"github.com/google/uuid"
)

// PoolStatus represents the status of a ride pool
type PoolStatus string

const (
	PoolStatusForming     PoolStatus = "FORMING"
	PoolStatusDispatching PoolStatus = "DISPATCHING"
	PoolStatusConfirmed   PoolStatus = "CONFIRMED"
	PoolStatusInProgress  PoolStatus = "IN_PROGRESS"
	PoolStatusCompleted   PoolStatus = "COMPLETED"
	PoolStatusDissolved   PoolStatus = "DISSOLVED"
)

// RidePool represents a batch of ride requests sharing one cab
type RidePool struct {
	ID                 uuid.UUID  `json:"pool_id" db:"id"`
	CabID              *uuid.UUID `json:"cab_id,omitempty" db:"cab_id"`
	Status             PoolStatus `json:"status" db:"status"`
	TotalOccupiedSeats int        `json:"total_occupied_seats" db:"total_occupied_seats"`
	TotalLuggage       int        `json:"total_luggage" db:"total_luggage"`
	RouteDistanceKm    float64    `json:"route_distance_km" db:"route_distance_km"`
	PickupLat          float64    `json:"pickup_lat" db:"pickup_lat"`
	PickupLng          float64    `json:"pickup_lng" db:"pickup_lng"`
	DropLat            float64    `json:"drop_lat" db:"drop_lat"`
	DropLng            float64    `json:"drop_lng" db:"drop_lng"`
	WindowExpiresAt    time.Time  `json:"window_expires_at" db:"window_expires_at"`
	DispatchedAt       *time.Time `json:"dispatched_at,omitempty" db:"dispatched_at"`
	Version            int64      `json:"-" db:"version"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at" db:"updated_at"`

	// Cab is populated on reads that join the assigned cab; nil while FORMING.
	Cab *Cab `json:"cab,omitempty" db:"-"`
}

// EffectiveSeatCapacity returns the seat limit the pool is held to:
// the fixed default before a cab is assigned, the cab's real capacity after.
func (p *RidePool) EffectiveSeatCapacity(defaultSeats int) int {
	if p.Cab != nil {
		return p.Cab.TotalSeats
	}
	return defaultSeats
}

// EffectiveLuggageCapacity returns the luggage limit the pool is held to.
func (p *RidePool) EffectiveLuggageCapacity(defaultLuggage int) int {
	if p.Cab != nil {
		return p.Cab.LuggageCapacity
	}
	return defaultLuggage
}

// RemainingSeats returns free seats against the effective capacity
func (p *RidePool) RemainingSeats(defaultSeats int) int {
	return p.EffectiveSeatCapacity(defaultSeats) - p.TotalOccupiedSeats
}

// RemainingLuggage returns free luggage slots against the effective capacity
func (p *RidePool) RemainingLuggage(defaultLuggage int) int {
	return p.EffectiveLuggageCapacity(defaultLuggage) - p.TotalLuggage
}

// WindowExpired reports whether the formation window has elapsed at t
func (p *RidePool) WindowExpired(t time.Time) bool {
	return !p.WindowExpiresAt.IsZero() && t.After(p.WindowExpiresAt)
}

// PoolDetail is the read model for a pool with its members
type PoolDetail struct {
	Pool    RidePool      `json:"pool"`
	Riders  []RideRequest `json:"riders"`
	Cab     *Cab          `json:"cab,omitempty"`
}
