// Package seats derives a trip's seat availability from its reservations.
// The ledger is pure; callers recompute it inside the same transaction as any
// seat-affecting write.
package seats

import (
	"github.com/google/uuid"
	"github.com/piresc/tumpangan/internal/pkg/models"
)

// ReservedSeats sums seats over reservations in seat-holding states.
func ReservedSeats(reservations []models.Reservation) int {
	total := 0
	for _, r := range reservations {
		if r.Status.IsSeatHolding() {
			total += r.SeatsReserved
		}
	}
	return total
}

// AvailableSeats returns how many offered seats remain unclaimed.
func AvailableSeats(trip *models.Trip, reservations []models.Reservation) int {
	return trip.SeatsOffered - ReservedSeats(reservations)
}

// IsFull reports whether the trip has no seats left.
func IsFull(trip *models.Trip, reservations []models.Reservation) bool {
	return AvailableSeats(trip, reservations) <= 0
}

// ActiveReservationFor returns the passenger's reservation that blocks a
// duplicate, if any. WAITLISTED blocks duplicates even though it holds no seat.
func ActiveReservationFor(reservations []models.Reservation, passengerID uuid.UUID) *models.Reservation {
	for i := range reservations {
		r := &reservations[i]
		if r.PassengerID == passengerID && r.Status.BlocksDuplicate() {
			return r
		}
	}
	return nil
}
