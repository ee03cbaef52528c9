package models

import "time"

// Location represents a geographical point
type Location struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// CabLocationUpdate represents a cab position report
type CabLocationUpdate struct {
	CabID     string  `json:"cab_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
