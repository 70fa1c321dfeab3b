package models

import (
	"time"

	"github.com/google/uuid"
)

// SweepCandidate is a reservation the unpaid sweep may expire, joined with
// the payment and trip columns the expiry decision needs.
type SweepCandidate struct {
	ReservationID uuid.UUID     `db:"reservation_id"`
	TripID        uuid.UUID     `db:"trip_id"`
	PassengerID   uuid.UUID     `db:"passenger_id"`
	PaymentID     uuid.UUID     `db:"payment_id"`
	PaymentStatus PaymentStatus `db:"payment_status"`
	DepartureTime time.Time     `db:"departure_time"`
}

// SweepResult summarizes one pass of a sweep job.
type SweepResult struct {
	Scanned int `json:"scanned"`
	Applied int `json:"applied"`
	Failed  int `json:"failed"`
}
