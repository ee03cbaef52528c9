package models

import (
	"time"

	"github.com/google/uuid"
)

// Passenger represents a registered rider
type Passenger struct {
	ID        uuid.UUID `json:"passenger_id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// PassengerDashboard aggregates a passenger's active ride with its pool
// and the ride history, newest first.
type PassengerDashboard struct {
	ActiveRide *RideRequest  `json:"active_ride,omitempty"`
	ActivePool *PoolDetail   `json:"active_pool,omitempty"`
	History    []RideRequest `json:"history"`
}
