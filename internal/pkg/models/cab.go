package models

import (
	"time"

	"github.com/google/uuid"
)

// CabStatus represents the status of a cab
type CabStatus string

const (
	CabStatusAvailable CabStatus = "AVAILABLE"
	CabStatusAssigned  CabStatus = "ASSIGNED"
	CabStatusOnTrip    CabStatus = "ON_TRIP"
)

// Cab represents a physical vehicle
type Cab struct {
	ID              uuid.UUID `json:"cab_id" db:"id"`
	LicensePlate    string    `json:"license_plate" db:"license_plate"`
	DriverName      string    `json:"driver_name" db:"driver_name"`
	TotalSeats      int       `json:"total_seats" db:"total_seats"`
	LuggageCapacity int       `json:"luggage_capacity" db:"luggage_capacity"`
	CurrentLat      float64   `json:"current_lat" db:"current_lat"`
	CurrentLng      float64   `json:"current_lng" db:"current_lng"`
	Status          CabStatus `json:"status" db:"status"`
	Version         int64     `json:"-" db:"version"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// NearbyCab is a cab returned from the geo index with its distance
type NearbyCab struct {
	ID         uuid.UUID `json:"cab_id"`
	DistanceKm float64   `json:"distance_km"`
}

// CabRegistration is the inbound cab onboarding payload
type CabRegistration struct {
	LicensePlate    string  `json:"license_plate" validate:"required"`
	DriverName      string  `json:"driver_name" validate:"required"`
	TotalSeats      int     `json:"total_seats"`
	LuggageCapacity int     `json:"luggage_capacity"`
	CurrentLat      float64 `json:"current_lat"`
	CurrentLng      float64 `json:"current_lng"`
}
