package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the status of a ride request
type RideStatus string

const (
	RideStatusPending    RideStatus = "PENDING"
	RideStatusPooled     RideStatus = "POOLED"
	RideStatusConfirmed  RideStatus = "CONFIRMED"
	RideStatusInProgress RideStatus = "IN_PROGRESS"
	RideStatusCompleted  RideStatus = "COMPLETED"
	RideStatusCancelled  RideStatus = "CANCELLED"
)

// IsTerminal reports whether no further transitions are allowed
func (s RideStatus) IsTerminal() bool {
	return s == RideStatusCompleted || s == RideStatusCancelled
}

// IsActive reports whether the request still occupies pool capacity
func (s RideStatus) IsActive() bool {
	return !s.IsTerminal()
}

// RideRequest represents one passenger's transfer booking
type RideRequest struct {
	ID             uuid.UUID  `json:"ride_id" db:"id"`
	PassengerID    uuid.UUID  `json:"passenger_id" db:"passenger_id"`
	PickupLat      float64    `json:"pickup_lat" db:"pickup_lat"`
	PickupLng      float64    `json:"pickup_lng" db:"pickup_lng"`
	DropLat        float64    `json:"drop_lat" db:"drop_lat"`
	DropLng        float64    `json:"drop_lng" db:"drop_lng"`
	PassengerCount int        `json:"passenger_count" db:"passenger_count"`
	LuggageCount   int        `json:"luggage_count" db:"luggage_count"`
	MaxDetourKm    float64    `json:"max_detour_km" db:"max_detour_km"`
	Status         RideStatus `json:"status" db:"status"`
	PoolID         *uuid.UUID `json:"pool_id,omitempty" db:"pool_id"`
	EstimatedPrice *float64   `json:"estimated_price,omitempty" db:"estimated_price"`
	IdempotencyKey string     `json:"idempotency_key" db:"idempotency_key"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// RideRequestInput is the inbound booking payload
type RideRequestInput struct {
	PassengerID    string  `json:"passenger_id" validate:"required"`
	PickupLat      float64 `json:"pickup_lat"`
	PickupLng      float64 `json:"pickup_lng"`
	DropLat        float64 `json:"drop_lat"`
	DropLng        float64 `json:"drop_lng"`
	PassengerCount int     `json:"passenger_count"`
	LuggageCount   int     `json:"luggage_count"`
	MaxDetourKm    float64 `json:"max_detour_km"`
	IdempotencyKey string  `json:"idempotency_key" validate:"required"`
}

// CancelRideRequest is the inbound cancellation payload
type CancelRideRequest struct {
	Reason string `json:"reason"`
}
