// Package cancellation computes the refund tier and terminal reservation
// status for a cancellation, from hours-until-departure at the moment the
// cancellation is requested. Tier cutoffs and percentages are configuration;
// the policy only enforces structure.
package cancellation

import (
	"fmt"
	"time"

	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/piresc/tumpangan/internal/pkg/timepolicy"
)

// Initiator identifies who is cancelling the reservation.
type Initiator string

const (
	InitiatorPassenger Initiator = "passenger"
	InitiatorDriver    Initiator = "driver"
)

// Tier names the refund bracket for audit trails.
type Tier string

const (
	TierEarly  Tier = "early"
	TierMedium Tier = "medium"
	TierLate   Tier = "late"
)

// Outcome is the computed result of a cancellation request. RefundDue signals
// that a refund action should be triggered downstream; the orchestrator still
// checks that a completed payment exists before acting on it.
type Outcome struct {
	Status              models.ReservationStatus `json:"status"`
	Tier                Tier                     `json:"tier"`
	RefundPercent       float64                  `json:"refund_percent"`
	RefundDue           bool                     `json:"refund_due"`
	HoursUntilDeparture float64                  `json:"hours_until_departure"`
}

// Policy evaluates cancellations against configured tier boundaries.
type Policy struct {
	cfg models.CancellationConfig
}

// NewPolicy validates the configuration and returns a policy. The refund
// percentage must be non-increasing as cancellation approaches departure, and
// the early cutoff must sit above the medium cutoff.
func NewPolicy(cfg models.CancellationConfig) (*Policy, error) {
	if cfg.EarlyHours <= cfg.MediumHours {
		return nil, fmt.Errorf("early cutoff (%.1fh) must exceed medium cutoff (%.1fh)", cfg.EarlyHours, cfg.MediumHours)
	}
	if cfg.EarlyRefundPercent < cfg.MediumRefundPercent || cfg.MediumRefundPercent < cfg.LateRefundPercent {
		return nil, fmt.Errorf("refund percentages must not increase toward departure")
	}
	return &Policy{cfg: cfg}, nil
}

// Evaluate computes the tier, terminal status and refund share for a
// cancellation happening now. Driver-initiated cancellations always refund the
// passenger in full; the tier only selects between the early and late driver
// statuses so the audit history stays unambiguous.
func (p *Policy) Evaluate(departure, now time.Time, initiator Initiator) Outcome {
	h := timepolicy.HoursUntil(departure, now)

	tier := TierLate
	switch {
	case h >= p.cfg.EarlyHours:
		tier = TierEarly
	case h >= p.cfg.MediumHours:
		tier = TierMedium
	}

	if initiator == InitiatorDriver {
		status := models.ReservationStatusCancelledByDriverLate
		if tier == TierEarly {
			status = models.ReservationStatusCancelledByDriverEarly
		}
		return Outcome{
			Status:              status,
			Tier:                tier,
			RefundPercent:       100,
			RefundDue:           true,
			HoursUntilDeparture: h,
		}
	}

	var status models.ReservationStatus
	var percent float64
	switch tier {
	case TierEarly:
		status, percent = models.ReservationStatusCancelledEarly, p.cfg.EarlyRefundPercent
	case TierMedium:
		status, percent = models.ReservationStatusCancelledMedium, p.cfg.MediumRefundPercent
	default:
		status, percent = models.ReservationStatusCancelledLate, p.cfg.LateRefundPercent
	}

	return Outcome{
		Status:              status,
		Tier:                tier,
		RefundPercent:       percent,
		RefundDue:           percent > 0,
		HoursUntilDeparture: h,
	}
}

// EvaluateWaitlisted handles reservations that never held a seat. Leaving the
// waitlist carries no penalty at any point before departure, so the early
// statuses apply regardless of the tier the clock would select.
func (p *Policy) EvaluateWaitlisted(departure, now time.Time, initiator Initiator) Outcome {
	h := timepolicy.HoursUntil(departure, now)

	if initiator == InitiatorDriver {
		return Outcome{
			Status:              models.ReservationStatusCancelledByDriverEarly,
			Tier:                TierEarly,
			RefundPercent:       100,
			RefundDue:           true,
			HoursUntilDeparture: h,
		}
	}

	return Outcome{
		Status:              models.ReservationStatusCancelledEarly,
		Tier:                TierEarly,
		RefundPercent:       p.cfg.EarlyRefundPercent,
		RefundDue:           p.cfg.EarlyRefundPercent > 0,
		HoursUntilDeparture: h,
	}
}
