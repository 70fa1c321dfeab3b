package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ReservationStatus represents the status of a passenger's seat claim
type ReservationStatus string

const (
	ReservationStatusPendingApproval ReservationStatus = "PENDING_APPROVAL"
	ReservationStatusApproved        ReservationStatus = "APPROVED"
	ReservationStatusConfirmed       ReservationStatus = "CONFIRMED"
	ReservationStatusWaitlisted      ReservationStatus = "WAITLISTED"

	ReservationStatusRejected               ReservationStatus = "REJECTED"
	ReservationStatusCancelledEarly         ReservationStatus = "CANCELLED_EARLY"
	ReservationStatusCancelledMedium        ReservationStatus = "CANCELLED_MEDIUM"
	ReservationStatusCancelledLate          ReservationStatus = "CANCELLED_LATE"
	ReservationStatusCancelledByDriverEarly ReservationStatus = "CANCELLED_BY_DRIVER_EARLY"
	ReservationStatusCancelledByDriverLate  ReservationStatus = "CANCELLED_BY_DRIVER_LATE"
	ReservationStatusNoShow                 ReservationStatus = "NO_SHOW"
	ReservationStatusExpired                ReservationStatus = "EXPIRED"
	ReservationStatusCompleted              ReservationStatus = "COMPLETED"
)

// reservationTransitions is the closed set of legal status transitions.
// A status absent from the map, or mapped to an empty slice, is terminal.
var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationStatusPendingApproval: {
		ReservationStatusApproved,
		ReservationStatusRejected,
	},
	ReservationStatusApproved: {
		ReservationStatusConfirmed,
		ReservationStatusCancelledEarly,
		ReservationStatusCancelledMedium,
		ReservationStatusCancelledLate,
		ReservationStatusCancelledByDriverEarly,
		ReservationStatusCancelledByDriverLate,
		ReservationStatusExpired,
		ReservationStatusNoShow,
	},
	ReservationStatusConfirmed: {
		ReservationStatusCompleted,
		ReservationStatusCancelledEarly,
		ReservationStatusCancelledMedium,
		ReservationStatusCancelledLate,
		ReservationStatusCancelledByDriverEarly,
		ReservationStatusCancelledByDriverLate,
		ReservationStatusNoShow,
	},
	// Waitlist promotion is an explicit driver action, never automatic.
	// Exits are always the early variants; a waitlisted row holds no seat,
	// so no lateness penalty applies.
	ReservationStatusWaitlisted: {
		ReservationStatusPendingApproval,
		ReservationStatusApproved,
		ReservationStatusRejected,
		ReservationStatusCancelledEarly,
		ReservationStatusCancelledByDriverEarly,
	},
}

// IsSeatHolding reports whether the status counts against trip capacity.
// WAITLISTED does not hold a seat; it only blocks duplicate reservations.
func (s ReservationStatus) IsSeatHolding() bool {
	switch s {
	case ReservationStatusPendingApproval, ReservationStatusApproved, ReservationStatusConfirmed:
		return true
	}
	return false
}

// BlocksDuplicate reports whether an existing reservation in this status
// prevents the same passenger from creating another on the trip.
func (s ReservationStatus) BlocksDuplicate() bool {
	return s.IsSeatHolding() || s == ReservationStatusWaitlisted
}

// IsReReservable reports whether a terminal status permits the passenger to
// reserve the same trip again without penalty. The existing row is reused.
func (s ReservationStatus) IsReReservable() bool {
	switch s {
	case ReservationStatusRejected, ReservationStatusCancelledEarly, ReservationStatusCancelledByDriverEarly:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is expected.
func (s ReservationStatus) IsTerminal() bool {
	return len(reservationTransitions[s]) == 0
}

// CanTransitionReservation checks if a status transition is allowed.
func CanTransitionReservation(from, to ReservationStatus) bool {
	for _, next := range reservationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateReservationTransition returns an error if the transition is not allowed.
func ValidateReservationTransition(from, to ReservationStatus) error {
	if !CanTransitionReservation(from, to) {
		return fmt.Errorf("reservation cannot move from %s to %s", from, to)
	}
	return nil
}

// Reservation represents a passenger's claim on seats of a trip.
// Rows are never deleted; history is retained through the status column.
type Reservation struct {
	ID            uuid.UUID         `json:"id" db:"id"`
	TripID        uuid.UUID         `json:"trip_id" db:"trip_id"`
	PassengerID   uuid.UUID         `json:"passenger_id" db:"passenger_id"`
	SeatsReserved int               `json:"seats_reserved" db:"seats_reserved"`
	TotalPrice    float64           `json:"total_price" db:"total_price"`
	Status        ReservationStatus `json:"status" db:"status"`
	Message       string            `json:"message,omitempty" db:"message"`
	ApprovedAt    *time.Time        `json:"approved_at,omitempty" db:"approved_at"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at" db:"updated_at"`
}

// CreateReservationRequest is the inbound payload for reserving seats.
type CreateReservationRequest struct {
	TripID        uuid.UUID `json:"trip_id"`
	SeatsReserved int       `json:"seats_reserved"`
	TotalPrice    float64   `json:"total_price"`
	Message       string    `json:"message,omitempty"`
}

// CancelReservationRequest is the inbound payload for cancelling.
type CancelReservationRequest struct {
	Reason string `json:"reason"`
}

// CancelReservationResponse reports the cancellation outcome.
type CancelReservationResponse struct {
	ReservationID   uuid.UUID         `json:"reservation_id"`
	Status          ReservationStatus `json:"status"`
	RefundPercent   float64           `json:"refund_percent"`
	RefundProcessed bool              `json:"refund_processed"`
}

// RejectReservationsRequest is the inbound payload for bulk rejection.
type RejectReservationsRequest struct {
	ReservationIDs []uuid.UUID `json:"reservation_ids"`
}

// RescheduleTripRequest is the inbound payload for a departure edit.
type RescheduleTripRequest struct {
	DepartureTime time.Time `json:"departure_time"`
}
