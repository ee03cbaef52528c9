package models

import (
	"time"

	"github.com/google/uuid"
)

// PoolEventKind discriminates the pool event union
type PoolEventKind string

const (
	EventRidePooled     PoolEventKind = "RIDE_POOLED"
	EventRideCancelled  PoolEventKind = "RIDE_CANCELLED"
	EventPoolDissolved  PoolEventKind = "POOL_DISSOLVED"
	EventPoolDispatched PoolEventKind = "POOL_DISPATCHED"
	EventPriceUpdated   PoolEventKind = "PRICE_UPDATED"
	EventTripStarted    PoolEventKind = "TRIP_STARTED"
	EventTripCompleted  PoolEventKind = "TRIP_COMPLETED"
)

// PoolEvent is the durable event published for downstream processing.
// Each constructor fills exactly the fields its kind carries.
type PoolEvent struct {
	Kind          PoolEventKind `json:"event_type"`
	RideRequestID *uuid.UUID    `json:"ride_request_id,omitempty"`
	PoolID        *uuid.UUID    `json:"pool_id,omitempty"`
	PassengerID   *uuid.UUID    `json:"passenger_id,omitempty"`
	CabID         *uuid.UUID    `json:"cab_id,omitempty"`
	Reason        string        `json:"reason,omitempty"`
	Timestamp     time.Time     `json:"timestamp"`
}

// NewRidePooledEvent is emitted when a request joins or founds a pool
func NewRidePooledEvent(rideID, poolID, passengerID uuid.UUID) PoolEvent {
	return PoolEvent{
		Kind:          EventRidePooled,
		RideRequestID: &rideID,
		PoolID:        &poolID,
		PassengerID:   &passengerID,
		Timestamp:     time.Now(),
	}
}

// NewRideCancelledEvent is emitted when a booking is cancelled
func NewRideCancelledEvent(rideID uuid.UUID, poolID *uuid.UUID, passengerID uuid.UUID, reason string) PoolEvent {
	return PoolEvent{
		Kind:          EventRideCancelled,
		RideRequestID: &rideID,
		PoolID:        poolID,
		PassengerID:   &passengerID,
		Reason:        reason,
		Timestamp:     time.Now(),
	}
}

// NewPoolDissolvedEvent is emitted when the last member leaves a pool
func NewPoolDissolvedEvent(poolID uuid.UUID) PoolEvent {
	return PoolEvent{
		Kind:      EventPoolDissolved,
		PoolID:    &poolID,
		Timestamp: time.Now(),
	}
}

// NewPoolDispatchedEvent is emitted when a cab is assigned to a pool
func NewPoolDispatchedEvent(poolID, cabID uuid.UUID) PoolEvent {
	return PoolEvent{
		Kind:      EventPoolDispatched,
		PoolID:    &poolID,
		CabID:     &cabID,
		Timestamp: time.Now(),
	}
}

// NewPriceUpdatedEvent is emitted when a rider's fare was recalculated
func NewPriceUpdatedEvent(rideID, passengerID uuid.UUID) PoolEvent {
	return PoolEvent{
		Kind:          EventPriceUpdated,
		RideRequestID: &rideID,
		PassengerID:   &passengerID,
		Timestamp:     time.Now(),
	}
}

// NewTripStartedEvent is emitted when the driver starts the shared trip
func NewTripStartedEvent(poolID, cabID uuid.UUID) PoolEvent {
	return PoolEvent{
		Kind:      EventTripStarted,
		PoolID:    &poolID,
		CabID:     &cabID,
		Timestamp: time.Now(),
	}
}

// NewTripCompletedEvent is emitted when all drops are done
func NewTripCompletedEvent(poolID, cabID uuid.UUID) PoolEvent {
	return PoolEvent{
		Kind:      EventTripCompleted,
		PoolID:    &poolID,
		CabID:     &cabID,
		Timestamp: time.Now(),
	}
}
