package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/tumpangan/internal/pkg/apperrors"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/piresc/tumpangan/services/payment"
)

const paymentColumns = `
	id, reservation_id, total_amount, service_fee, currency, status,
	completed_at, created_at, updated_at`

// PaymentRepo implements the payment repository interface
type PaymentRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(cfg *models.Config, db *sqlx.DB) payment.PaymentRepo {
	return &PaymentRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetPayment retrieves a payment by ID
func (r *PaymentRepo) GetPayment(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	query := `SELECT` + paymentColumns + ` FROM payments WHERE id = $1`

	p := &models.Payment{}
	var completedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.ReservationID, &p.TotalAmount, &p.ServiceFee, &p.Currency,
		&p.Status, &completedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("payment not found")
		}
		return nil, fmt.Errorf("failed to query payment: %w", err)
	}
	if completedAt.Valid {
		p.CompletedAt = &completedAt.Time
	}
	return p, nil
}

// GetReservation retrieves the reservation a payment belongs to
func (r *PaymentRepo) GetReservation(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	query := `
		SELECT id, trip_id, passenger_id, seats_reserved, total_price, status,
		       message, approved_at, created_at, updated_at
		FROM reservations WHERE id = $1`

	res := &models.Reservation{}
	var message sql.NullString
	var approvedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&res.ID, &res.TripID, &res.PassengerID, &res.SeatsReserved,
		&res.TotalPrice, &res.Status, &message, &approvedAt,
		&res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("reservation not found")
		}
		return nil, fmt.Errorf("failed to query reservation: %w", err)
	}
	res.Message = message.String
	if approvedAt.Valid {
		res.ApprovedAt = &approvedAt.Time
	}
	return res, nil
}

// GetBankTransfer returns the proof record for a payment, nil when none exists
func (r *PaymentRepo) GetBankTransfer(ctx context.Context, paymentID uuid.UUID) (*models.BankTransfer, error) {
	query := `
		SELECT id, payment_id, proof_file_ref, verified_at, verified_by,
		       failure_reason, created_at, updated_at
		FROM bank_transfers WHERE payment_id = $1`

	bt := &models.BankTransfer{}
	var verifiedAt sql.NullTime
	var verifiedBy sql.NullString
	var failureReason sql.NullString
	err := r.db.QueryRowContext(ctx, query, paymentID).Scan(
		&bt.ID, &bt.PaymentID, &bt.ProofFileRef, &verifiedAt, &verifiedBy,
		&failureReason, &bt.CreatedAt, &bt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query bank transfer: %w", err)
	}
	if verifiedAt.Valid {
		bt.VerifiedAt = &verifiedAt.Time
	}
	if verifiedBy.Valid {
		id, err := uuid.Parse(verifiedBy.String)
		if err != nil {
			return nil, fmt.Errorf("corrupt verified_by on bank transfer %s: %w", bt.ID, err)
		}
		bt.VerifiedBy = &id
	}
	if failureReason.Valid {
		bt.FailureReason = &failureReason.String
	}
	return bt, nil
}

// CompletePayment marks the payment COMPLETED, confirms the reservation and
// stamps the verification fields, all in one transaction. Either guarded
// update hitting zero rows aborts with a conflict.
func (r *PaymentRepo) CompletePayment(ctx context.Context, p *models.Payment, proofFileRef string, verifiedBy uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()

	result, err := tx.ExecContext(ctx, `
		UPDATE payments
		SET status = $1, completed_at = $2, updated_at = $2
		WHERE id = $3 AND status = $4`,
		models.PaymentStatusCompleted, now, p.ID, p.Status)
	if err != nil {
		return fmt.Errorf("failed to complete payment: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return apperrors.Conflict("payment was modified concurrently")
	}

	result, err = tx.ExecContext(ctx, `
		UPDATE reservations
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4`,
		models.ReservationStatusConfirmed, now, p.ReservationID, models.ReservationStatusApproved)
	if err != nil {
		return fmt.Errorf("failed to confirm reservation: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return apperrors.Conflict("reservation is no longer awaiting payment")
	}

	if err := upsertBankTransferTx(ctx, tx, p.ID, proofFileRef, &now, &verifiedBy, nil, now); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit payment completion: %w", err)
	}

	p.Status = models.PaymentStatusCompleted
	p.CompletedAt = &now
	return nil
}

// FailPayment marks the payment FAILED and records the rejection reason.
// The reservation keeps its status so the passenger can resubmit proof.
func (r *PaymentRepo) FailPayment(ctx context.Context, p *models.Payment, reason string, verifiedBy uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()

	result, err := tx.ExecContext(ctx, `
		UPDATE payments
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4`,
		models.PaymentStatusFailed, now, p.ID, p.Status)
	if err != nil {
		return fmt.Errorf("failed to fail payment: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return apperrors.Conflict("payment was modified concurrently")
	}

	if err := upsertBankTransferTx(ctx, tx, p.ID, "", nil, &verifiedBy, &reason, now); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit payment failure: %w", err)
	}

	p.Status = models.PaymentStatusFailed
	return nil
}

// upsertBankTransferTx writes the verification outcome onto the payment's
// bank transfer row, creating it if proof was never attached. An empty
// proofFileRef keeps whatever ref is already stored.
func upsertBankTransferTx(ctx context.Context, tx *sqlx.Tx, paymentID uuid.UUID, proofFileRef string, verifiedAt *time.Time, verifiedBy *uuid.UUID, failureReason *string, now time.Time) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO bank_transfers (id, payment_id, proof_file_ref, verified_at, verified_by, failure_reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (payment_id) DO UPDATE SET
			proof_file_ref = CASE WHEN EXCLUDED.proof_file_ref = '' THEN bank_transfers.proof_file_ref ELSE EXCLUDED.proof_file_ref END,
			verified_at = EXCLUDED.verified_at,
			verified_by = EXCLUDED.verified_by,
			failure_reason = EXCLUDED.failure_reason,
			updated_at = EXCLUDED.updated_at`,
		uuid.New(), paymentID, proofFileRef, verifiedAt, verifiedBy, failureReason, now)
	if err != nil {
		return fmt.Errorf("failed to upsert bank transfer: %w", err)
	}
	return nil
}
