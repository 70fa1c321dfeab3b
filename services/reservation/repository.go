package reservation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/tumpangan/internal/pkg/models"
)

// ReservationRepo defines the interface for reservation data access.
// Seat-affecting writes run in a transaction that locks the trip row,
// revalidates capacity and updates the full flag atomically.
type ReservationRepo interface {
	GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
	GetTripReservations(ctx context.Context, tripID uuid.UUID) ([]models.Reservation, error)
	GetReservation(ctx context.Context, id uuid.UUID) (*models.Reservation, error)
	FindByTripAndPassenger(ctx context.Context, tripID, passengerID uuid.UUID) (*models.Reservation, error)

	// GetReservationPayment returns the payment linked to a reservation, or
	// nil when none has been created yet.
	GetReservationPayment(ctx context.Context, reservationID uuid.UUID) (*models.Payment, error)

	// CreateReservation inserts a new reservation, or reuses the passenger's
	// prior row when reuseID is non-nil. Capacity is rechecked under the trip
	// row lock; a full trip fails with a validation error. When payment is
	// non-nil (auto-approved entry) the pending payment row is created in the
	// same transaction.
	CreateReservation(ctx context.Context, res *models.Reservation, reuseID *uuid.UUID, payment *models.Payment) (*models.Reservation, error)

	// TransitionReservation moves a reservation from expectedStatus to
	// newStatus and recomputes the trip's full flag in the same transaction.
	// When the new status abandons the seat (any cancellation, expiry or
	// no-show), a still-open payment on the reservation is cancelled with it.
	// A zero-row update surfaces as a conflict error.
	TransitionReservation(ctx context.Context, id uuid.UUID, expectedStatus, newStatus models.ReservationStatus) error

	// ApproveReservation marks the reservation approved, stamps approved_at
	// and creates the pending payment row in one transaction.
	ApproveReservation(ctx context.Context, res *models.Reservation, payment *models.Payment) error

	// RejectReservations bulk-transitions pending reservations to REJECTED
	// and refreshes the full flag of every affected trip in one transaction.
	RejectReservations(ctx context.Context, ids []uuid.UUID) (int, error)

	UpdateTripDeparture(ctx context.Context, tripID uuid.UUID, departure time.Time) error
}
