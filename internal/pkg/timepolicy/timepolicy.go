// Package timepolicy decides which lifecycle actions are legal at a given
// moment relative to a trip's departure. All functions are pure: they take
// the wall clock as an argument and compare absolute UTC instants, never
// calendar days.
package timepolicy

import (
	"fmt"
	"time"

	"github.com/piresc/tumpangan/internal/pkg/models"
)

// Protection windows for driver-initiated removal of an approved passenger,
// tiered by how far away departure is at evaluation time.
const (
	farTierHours   = 24.0 // above this: 8h protection since approval
	midTierHours   = 12.0 // [12,24]: 4h protection
	nearTierHours  = 3.0  // [3,12): 2h protection; below 3h removal is never allowed
	farProtection  = 8.0
	midProtection  = 4.0
	nearProtection = 2.0

	// Departure drift bounds for rescheduling.
	maxDepartureDriftHours = 6.0
	rescheduleLockHours    = 36.0
)

// Decision is the outcome of a time-policy check. For expiry checks Allowed
// signals that the expiry condition holds, not that an action is permitted.
type Decision struct {
	Allowed             bool    `json:"is_allowed"`
	Reason              string  `json:"reason,omitempty"`
	HoursUntilDeparture float64 `json:"hours_until_departure"`
}

// HoursUntil returns the signed number of hours from now until departure.
func HoursUntil(departure, now time.Time) float64 {
	return departure.Sub(now).Hours()
}

// Evaluator holds the configurable lead-time windows.
type Evaluator struct {
	cfg models.ReservationConfig
}

// NewEvaluator creates an evaluator from reservation configuration.
func NewEvaluator(cfg models.ReservationConfig) Evaluator {
	return Evaluator{cfg: cfg}
}

// CanCreateReservation reports whether a reservation may still be created.
func (e Evaluator) CanCreateReservation(departure, now time.Time) Decision {
	h := HoursUntil(departure, now)
	if h < e.cfg.CreateWindowHours {
		return Decision{
			Reason:              fmt.Sprintf("reservations close %.0f hours before departure", e.cfg.CreateWindowHours),
			HoursUntilDeparture: h,
		}
	}
	return Decision{Allowed: true, HoursUntilDeparture: h}
}

// CanApproveReservation reports whether a pending reservation may still be approved.
func (e Evaluator) CanApproveReservation(departure, now time.Time) Decision {
	h := HoursUntil(departure, now)
	if h < e.cfg.ApproveWindowHours {
		return Decision{
			Reason:              fmt.Sprintf("approvals close %.0f hours before departure", e.cfg.ApproveWindowHours),
			HoursUntilDeparture: h,
		}
	}
	return Decision{Allowed: true, HoursUntilDeparture: h}
}

// ShouldExpireUnpaidReservation reports whether an approved-but-unpaid
// reservation has run out of time. A completed payment never expires.
func (e Evaluator) ShouldExpireUnpaidReservation(departure time.Time, paymentStatus models.PaymentStatus, now time.Time) Decision {
	h := HoursUntil(departure, now)
	if paymentStatus != models.PaymentStatusPending {
		return Decision{Reason: "payment is not pending", HoursUntilDeparture: h}
	}
	if h < e.cfg.ExpiryWindowHours {
		return Decision{
			Allowed:             true,
			Reason:              fmt.Sprintf("payment still pending under %.0f hours before departure", e.cfg.ExpiryWindowHours),
			HoursUntilDeparture: h,
		}
	}
	return Decision{HoursUntilDeparture: h}
}

// CanDriverRemoveApprovedPassenger applies the tiered protection window: the
// closer departure is, the shorter the grace period since approval, down to a
// hard stop inside the final three hours.
func CanDriverRemoveApprovedPassenger(departure, approvedAt, now time.Time) Decision {
	h := HoursUntil(departure, now)
	if h < nearTierHours {
		return Decision{
			Reason:              "passengers cannot be removed in the final hours before departure",
			HoursUntilDeparture: h,
		}
	}

	var protection float64
	switch {
	case h > farTierHours:
		protection = farProtection
	case h >= midTierHours:
		protection = midProtection
	default:
		protection = nearProtection
	}

	sinceApproval := now.Sub(approvedAt).Hours()
	if sinceApproval < protection {
		return Decision{
			Reason:              fmt.Sprintf("passenger is protected for %.0f hours after approval", protection),
			HoursUntilDeparture: h,
		}
	}
	return Decision{Allowed: true, HoursUntilDeparture: h}
}

// CanRescheduleTrip bounds departure edits to a fixed drift from the original
// departure, and locks edits entirely when confirmed passengers exist close
// to departure.
func CanRescheduleTrip(original, current, proposed time.Time, hasConfirmed bool, now time.Time) Decision {
	h := HoursUntil(current, now)
	if hasConfirmed && h < rescheduleLockHours {
		return Decision{
			Reason:              fmt.Sprintf("departure is locked within %.0f hours when confirmed passengers exist", rescheduleLockHours),
			HoursUntilDeparture: h,
		}
	}
	drift := proposed.Sub(original).Hours()
	if drift < -maxDepartureDriftHours || drift > maxDepartureDriftHours {
		return Decision{
			Reason:              fmt.Sprintf("departure may drift at most %.0f hours from the original time", maxDepartureDriftHours),
			HoursUntilDeparture: h,
		}
	}
	return Decision{Allowed: true, HoursUntilDeparture: h}
}
