package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/tumpangan/internal/pkg/apperrors"
	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/piresc/tumpangan/services/payment"
)

const minRejectReasonLength = 10

type paymentUC struct {
	cfg  *models.Config
	repo payment.PaymentRepo
	gw   payment.PaymentGW
}

// NewPaymentUC creates a new payment use case
func NewPaymentUC(cfg *models.Config, repo payment.PaymentRepo, gw payment.PaymentGW) payment.PaymentUC {
	return &paymentUC{
		cfg:  cfg,
		repo: repo,
		gw:   gw,
	}
}

// GetPayment returns a payment by ID with its proof record, when one exists.
func (uc *paymentUC) GetPayment(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	p, err := uc.repo.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}
	transfer, err := uc.repo.GetBankTransfer(ctx, id)
	if err != nil {
		return nil, err
	}
	p.BankTransfer = transfer
	return p, nil
}

// ApprovePayment verifies the proof of transfer, completes the payment and
// confirms the reservation in one transaction.
func (uc *paymentUC) ApprovePayment(ctx context.Context, actorID, paymentID uuid.UUID, proofFileRef string) (*models.Payment, error) {
	if strings.TrimSpace(proofFileRef) == "" {
		return nil, apperrors.Validation("proof of transfer reference is required")
	}

	p, err := uc.repo.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if err := models.ValidatePaymentTransition(p.Status, models.PaymentStatusCompleted); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	res, err := uc.repo.GetReservation(ctx, p.ReservationID)
	if err != nil {
		return nil, err
	}
	if res.Status != models.ReservationStatusApproved {
		return nil, apperrors.Conflict(fmt.Sprintf("reservation is %s, not awaiting payment", res.Status))
	}

	if err := uc.repo.CompletePayment(ctx, p, proofFileRef, actorID); err != nil {
		return nil, err
	}

	uc.notify(ctx, res.PassengerID, "Payment confirmed",
		"Your payment was verified. Your seat is confirmed.",
		"payment.completed", p.ID)
	uc.audit(ctx, actorID, "payment.approve", "success",
		fmt.Sprintf("payment %s completed, reservation %s confirmed", p.ID, res.ID))

	return p, nil
}

// RejectPayment marks the payment FAILED with a reason. The reservation keeps
// its status so the passenger can try again with new proof.
func (uc *paymentUC) RejectPayment(ctx context.Context, actorID, paymentID uuid.UUID, reason string) (*models.Payment, error) {
	if len(strings.TrimSpace(reason)) < minRejectReasonLength {
		return nil, apperrors.Validation(fmt.Sprintf("rejection reason must be at least %d characters", minRejectReasonLength))
	}

	p, err := uc.repo.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if err := models.ValidatePaymentTransition(p.Status, models.PaymentStatusFailed); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	res, err := uc.repo.GetReservation(ctx, p.ReservationID)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.FailPayment(ctx, p, reason, actorID); err != nil {
		return nil, err
	}

	uc.notify(ctx, res.PassengerID, "Payment rejected",
		"Your proof of transfer was rejected: "+reason+". You may resubmit.",
		"payment.failed", p.ID)
	uc.audit(ctx, actorID, "payment.reject", "success",
		fmt.Sprintf("payment %s failed: %s", p.ID, reason))

	return p, nil
}

func (uc *paymentUC) notify(ctx context.Context, userID uuid.UUID, title, message, eventType string, entityID uuid.UUID) {
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

func (uc *paymentUC) audit(ctx context.Context, userID uuid.UUID, action, status, details string) {
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
