package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/tumpangan/internal/pkg/apperrors"
	"github.com/piresc/tumpangan/internal/pkg/cancellation"
	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/piresc/tumpangan/internal/pkg/seats"
	"github.com/piresc/tumpangan/internal/pkg/timepolicy"
	"github.com/piresc/tumpangan/services/reservation"
)

const (
	serviceFeeRate  = 0.05
	defaultCurrency = "IDR"
)

type reservationUC struct {
	cfg          *models.Config
	repo         reservation.ReservationRepo
	gw           reservation.ReservationGW
	timePolicy   timepolicy.Evaluator
	cancelPolicy *cancellation.Policy
}

// NewReservationUC creates a new reservation use case
func NewReservationUC(
	cfg *models.Config,
	repo reservation.ReservationRepo,
	gw reservation.ReservationGW,
) (reservation.ReservationUC, error) {
	cancelPolicy, err := cancellation.NewPolicy(cfg.Cancellation)
	if err != nil {
		return nil, fmt.Errorf("invalid cancellation policy: %w", err)
	}
	return &reservationUC{
		cfg:          cfg,
		repo:         repo,
		gw:           gw,
		timePolicy:   timepolicy.NewEvaluator(cfg.Reservation),
		cancelPolicy: cancelPolicy,
	}, nil
}

// CreateReservation validates and creates a passenger's seat claim on a trip.
// A prior reservation in a re-reservable terminal state is reused in place.
func (uc *reservationUC) CreateReservation(ctx context.Context, actorID uuid.UUID, req models.CreateReservationRequest) (*models.Reservation, error) {
	if req.SeatsReserved < uc.cfg.Reservation.MinSeats || req.SeatsReserved > uc.cfg.Reservation.MaxSeats {
		return nil, apperrors.Validation(fmt.Sprintf("seats must be between %d and %d",
			uc.cfg.Reservation.MinSeats, uc.cfg.Reservation.MaxSeats))
	}
	if req.TotalPrice <= 0 {
		return nil, apperrors.Validation("total price must be positive")
	}

	trip, err := uc.repo.GetTrip(ctx, req.TripID)
	if err != nil {
		return nil, err
	}
	if trip.DriverID == actorID {
		return nil, apperrors.Validation("drivers cannot reserve seats on their own trip")
	}
	if !trip.Status.IsReservable() {
		return nil, apperrors.Validation(fmt.Sprintf("trip is %s and cannot be reserved", trip.Status))
	}

	now := time.Now().UTC()
	if d := uc.timePolicy.CanCreateReservation(trip.DepartureTime, now); !d.Allowed {
		return nil, apperrors.Validation(d.Reason)
	}

	var reuseID *uuid.UUID
	existing, err := uc.repo.FindByTripAndPassenger(ctx, req.TripID, actorID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if !existing.Status.IsReReservable() {
			return nil, apperrors.Conflict("an active or finalized reservation already exists for this trip")
		}
		reuseID = &existing.ID
	}

	reservations, err := uc.repo.GetTripReservations(ctx, req.TripID)
	if err != nil {
		return nil, err
	}

	status := models.ReservationStatusPendingApproval
	if trip.AutoApprove {
		status = models.ReservationStatusApproved
	}

	if seats.AvailableSeats(trip, reservations) < req.SeatsReserved {
		if !trip.AllowWaitlist {
			return nil, apperrors.Validation("no seats available")
		}
		status = models.ReservationStatusWaitlisted
	}

	res := &models.Reservation{
		TripID:        req.TripID,
		PassengerID:   actorID,
		SeatsReserved: req.SeatsReserved,
		TotalPrice:    req.TotalPrice,
		Status:        status,
		Message:       req.Message,
	}

	// Auto-approved entries start their payment clock immediately.
	var payment *models.Payment
	if status == models.ReservationStatusApproved {
		payment = uc.newPendingPayment(req.TotalPrice)
		res.ApprovedAt = &now
	}

	created, err := uc.repo.CreateReservation(ctx, res, reuseID, payment)
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, trip.DriverID, "New seat request",
		fmt.Sprintf("A passenger requested %d seat(s) on your trip", created.SeatsReserved),
		"reservation.created", created.ID)
	uc.audit(ctx, actorID, "reservation.create", "success",
		fmt.Sprintf("reservation %s on trip %s (%s)", created.ID, trip.ID, created.Status))

	return created, nil
}

// CancelReservation cancels a reservation on behalf of its passenger or the
// trip's driver, applying the refund tier for the moment of cancellation.
func (uc *reservationUC) CancelReservation(ctx context.Context, actorID, reservationID uuid.UUID, reason string) (*models.CancelReservationResponse, error) {
	res, err := uc.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	trip, err := uc.repo.GetTrip(ctx, res.TripID)
	if err != nil {
		return nil, err
	}

	var initiator cancellation.Initiator
	switch actorID {
	case res.PassengerID:
		initiator = cancellation.InitiatorPassenger
	case trip.DriverID:
		initiator = cancellation.InitiatorDriver
	default:
		return nil, apperrors.Authorization("only the passenger or the trip driver may cancel this reservation")
	}

	now := time.Now().UTC()

	// Driver removals of approved or paid passengers pass through the tiered
	// protection window first; refund tiering is a separate gate.
	if initiator == cancellation.InitiatorDriver &&
		(res.Status == models.ReservationStatusApproved || res.Status == models.ReservationStatusConfirmed) {
		approvedAt := res.CreatedAt
		if res.ApprovedAt != nil {
			approvedAt = *res.ApprovedAt
		}
		if d := timepolicy.CanDriverRemoveApprovedPassenger(trip.DepartureTime, approvedAt, now); !d.Allowed {
			return nil, apperrors.Validation(d.Reason)
		}
	}

	var outcome cancellation.Outcome
	if res.Status == models.ReservationStatusWaitlisted {
		outcome = uc.cancelPolicy.EvaluateWaitlisted(trip.DepartureTime, now, initiator)
	} else {
		outcome = uc.cancelPolicy.Evaluate(trip.DepartureTime, now, initiator)
	}
	if err := models.ValidateReservationTransition(res.Status, outcome.Status); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	payment, err := uc.repo.GetReservationPayment(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.TransitionReservation(ctx, reservationID, res.Status, outcome.Status); err != nil {
		return nil, err
	}

	refundProcessed := outcome.RefundDue && payment != nil && payment.Status == models.PaymentStatusCompleted

	counterparty := trip.DriverID
	if initiator == cancellation.InitiatorDriver {
		counterparty = res.PassengerID
	}
	uc.notify(ctx, counterparty, "Reservation cancelled",
		fmt.Sprintf("Reservation was cancelled (%s tier): %s", outcome.Tier, reason),
		"reservation.cancelled", reservationID)
	uc.audit(ctx, actorID, "reservation.cancel", "success",
		fmt.Sprintf("reservation %s -> %s, refund %.0f%%, processed=%t",
			reservationID, outcome.Status, outcome.RefundPercent, refundProcessed))

	return &models.CancelReservationResponse{
		ReservationID:   reservationID,
		Status:          outcome.Status,
		RefundPercent:   outcome.RefundPercent,
		RefundProcessed: refundProcessed,
	}, nil
}

// ApproveReservation lets the trip's driver approve a pending request, which
// also opens the pending payment.
func (uc *reservationUC) ApproveReservation(ctx context.Context, actorID, reservationID uuid.UUID) (*models.Reservation, error) {
	return uc.approve(ctx, actorID, reservationID, models.ReservationStatusPendingApproval)
}

// PromoteWaitlisted lets the trip's driver move a waitlisted passenger into an
// approved seat, capacity permitting.
func (uc *reservationUC) PromoteWaitlisted(ctx context.Context, actorID, reservationID uuid.UUID) (*models.Reservation, error) {
	return uc.approve(ctx, actorID, reservationID, models.ReservationStatusWaitlisted)
}

func (uc *reservationUC) approve(ctx context.Context, actorID, reservationID uuid.UUID, expectedStatus models.ReservationStatus) (*models.Reservation, error) {
	res, err := uc.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	trip, err := uc.repo.GetTrip(ctx, res.TripID)
	if err != nil {
		return nil, err
	}
	if trip.DriverID != actorID {
		return nil, apperrors.Authorization("only the trip driver may approve reservations")
	}
	if res.Status != expectedStatus {
		return nil, apperrors.Validation(fmt.Sprintf("reservation is %s, expected %s", res.Status, expectedStatus))
	}

	now := time.Now().UTC()
	if d := uc.timePolicy.CanApproveReservation(trip.DepartureTime, now); !d.Allowed {
		return nil, apperrors.Validation(d.Reason)
	}

	// A promotion claims a seat the waitlisted reservation did not hold yet.
	if expectedStatus == models.ReservationStatusWaitlisted {
		reservations, err := uc.repo.GetTripReservations(ctx, res.TripID)
		if err != nil {
			return nil, err
		}
		if seats.AvailableSeats(trip, reservations) < res.SeatsReserved {
			return nil, apperrors.Validation("no seats available for promotion")
		}
	}

	payment := uc.newPendingPayment(res.TotalPrice)
	if err := uc.repo.ApproveReservation(ctx, res, payment); err != nil {
		return nil, err
	}

	uc.notify(ctx, res.PassengerID, "Reservation approved",
		"Your seat request was approved. Complete the payment to confirm your seat.",
		"reservation.approved", res.ID)
	uc.audit(ctx, actorID, "reservation.approve", "success",
		fmt.Sprintf("reservation %s approved, payment %s opened", res.ID, payment.ID))

	return res, nil
}

// RejectReservations bulk-rejects pending requests. Automated invocations
// (the sweeper) are all-or-nothing on their trigger-window precondition;
// per-item notification failures after the transition never revert it.
func (uc *reservationUC) RejectReservations(ctx context.Context, actorID uuid.UUID, ids []uuid.UUID, isAutomated bool) (int, error) {
	if len(ids) == 0 {
		return 0, apperrors.Validation("no reservation ids supplied")
	}

	now := time.Now().UTC()
	targets := make([]*models.Reservation, 0, len(ids))

	for _, id := range ids {
		res, err := uc.repo.GetReservation(ctx, id)
		if err != nil {
			return 0, err
		}
		if res.Status != models.ReservationStatusPendingApproval {
			return 0, apperrors.Validation(fmt.Sprintf("reservation %s is not pending approval", id))
		}

		trip, err := uc.repo.GetTrip(ctx, res.TripID)
		if err != nil {
			return 0, err
		}

		if isAutomated {
			if trip.Status != models.TripStatusActive {
				return 0, apperrors.Validation(fmt.Sprintf("trip %s is not active", trip.ID))
			}
			h := timepolicy.HoursUntil(trip.DepartureTime, now)
			if h >= uc.cfg.Reservation.ExpiryWindowHours {
				return 0, apperrors.Validation(fmt.Sprintf(
					"trip %s departs in %.1f hours, outside the automation window", trip.ID, h))
			}
		} else if trip.DriverID != actorID {
			return 0, apperrors.Authorization("only the trip driver may reject reservations")
		}

		targets = append(targets, res)
	}

	rejected, err := uc.repo.RejectReservations(ctx, ids)
	if err != nil {
		return 0, err
	}

	for _, res := range targets {
		uc.notify(ctx, res.PassengerID, "Reservation rejected",
			"Your seat request was rejected.", "reservation.rejected", res.ID)
		uc.audit(ctx, actorID, "reservation.reject", "success",
			fmt.Sprintf("reservation %s rejected (automated=%t)", res.ID, isAutomated))
	}

	return rejected, nil
}

// RescheduleTrip applies a bounded departure edit for the trip's driver.
func (uc *reservationUC) RescheduleTrip(ctx context.Context, actorID, tripID uuid.UUID, departure time.Time) (*models.Trip, error) {
	trip, err := uc.repo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.DriverID != actorID {
		return nil, apperrors.Authorization("only the trip driver may reschedule the trip")
	}

	reservations, err := uc.repo.GetTripReservations(ctx, tripID)
	if err != nil {
		return nil, err
	}
	hasConfirmed := false
	for _, res := range reservations {
		if res.Status == models.ReservationStatusConfirmed {
			hasConfirmed = true
			break
		}
	}

	now := time.Now().UTC()
	if d := timepolicy.CanRescheduleTrip(trip.OriginalDeparture, trip.DepartureTime, departure, hasConfirmed, now); !d.Allowed {
		return nil, apperrors.Validation(d.Reason)
	}

	if err := uc.repo.UpdateTripDeparture(ctx, tripID, departure); err != nil {
		return nil, err
	}
	trip.DepartureTime = departure

	for _, res := range reservations {
		if res.Status.IsSeatHolding() {
			uc.notify(ctx, res.PassengerID, "Trip rescheduled",
				fmt.Sprintf("Departure moved to %s", departure.Format(time.RFC3339)),
				"trip.rescheduled", tripID)
		}
	}
	uc.audit(ctx, actorID, "trip.reschedule", "success",
		fmt.Sprintf("trip %s departure moved to %s", tripID, departure.Format(time.RFC3339)))

	return trip, nil
}

func (uc *reservationUC) newPendingPayment(totalPrice float64) *models.Payment {
	return &models.Payment{
		TotalAmount: totalPrice,
		ServiceFee:  totalPrice * serviceFeeRate,
		Currency:    defaultCurrency,
	}
}

// notify publishes a user notification after commit, best-effort.
func (uc *reservationUC) notify(ctx context.Context, userID uuid.UUID, title, message, eventType string, entityID uuid.UUID) {
	err := uc.gw.NotifyUser(ctx, models.UserNotification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		EventType: eventType,
		Data:      map[string]string{"entity_id": entityID.String()},
		IssuedAt:  time.Now().UTC(),
	})
	if err != nil {
		logger.Warn("failed to deliver notification",
			logger.String("user_id", userID.String()),
			logger.String("event_type", eventType),
			logger.Err(err))
	}
}

// audit publishes an audit event, best-effort.
func (uc *reservationUC) audit(ctx context.Context, userID uuid.UUID, action, status, details string) {
	err := uc.gw.PublishAudit(ctx, models.AuditEvent{
		UserID:   userID,
		Action:   action,
		Status:   status,
		Details:  details,
		IssuedAt: time.Now().UTC(),
	})
	if err != nil {
		logger.Warn("failed to publish audit event",
			logger.String("action", action),
			logger.Err(err))
	}
}
