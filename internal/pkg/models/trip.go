package models

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus represents the current status of a trip
type TripStatus string

const (
	TripStatusPending   TripStatus = "PENDING"
	TripStatusActive    TripStatus = "ACTIVE"
	TripStatusCompleted TripStatus = "COMPLETED"
	TripStatusCancelled TripStatus = "CANCELLED"
)

// IsReservable reports whether new reservations may target the trip.
func (s TripStatus) IsReservable() bool {
	return s == TripStatusPending || s == TripStatusActive
}

// Waypoint is an origin or destination descriptor of a trip.
type Waypoint struct {
	Address   string  `json:"address" db:"address"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	Geohash   string  `json:"geohash" db:"geohash"`
}

// Trip represents a scheduled ride offer published by a driver.
//
// OriginalDeparture is written once at creation and never updated; departure
// edits are bounded against it.
type Trip struct {
	ID                uuid.UUID  `json:"id" db:"id"`
	DriverID          uuid.UUID  `json:"driver_id" db:"driver_id"`
	Origin            Waypoint   `json:"origin"`
	Destination       Waypoint   `json:"destination"`
	DepartureTime     time.Time  `json:"departure_time" db:"departure_time"`
	OriginalDeparture time.Time  `json:"original_departure" db:"original_departure"`
	SeatsOffered      int        `json:"seats_offered" db:"seats_offered"`
	Status            TripStatus `json:"status" db:"status"`
	IsFull            bool       `json:"is_full" db:"is_full"`
	AutoApprove       bool       `json:"auto_approve" db:"auto_approve"`
	AllowWaitlist     bool       `json:"allow_waitlist" db:"allow_waitlist"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at" db:"updated_at"`
}
