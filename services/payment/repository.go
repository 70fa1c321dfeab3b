package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/tumpangan/internal/pkg/models"
)

// PaymentRepo defines the interface for payment data access.
// Verification writes pair the payment, its reservation and the bank
// transfer record in a single transaction.
type PaymentRepo interface {
	GetPayment(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	GetReservation(ctx context.Context, id uuid.UUID) (*models.Reservation, error)

	// GetBankTransfer returns the proof record for a payment, or nil when
	// no proof has been attached yet.
	GetBankTransfer(ctx context.Context, paymentID uuid.UUID) (*models.BankTransfer, error)

	// CompletePayment atomically marks the payment COMPLETED, confirms the
	// APPROVED reservation and stamps the bank transfer verification fields.
	// Concurrent modification of either row fails the whole transaction.
	CompletePayment(ctx context.Context, payment *models.Payment, proofFileRef string, verifiedBy uuid.UUID) error

	// FailPayment marks the payment FAILED and records the failure reason on
	// the bank transfer. The reservation is left untouched so the passenger
	// can resubmit proof.
	FailPayment(ctx context.Context, payment *models.Payment, reason string, verifiedBy uuid.UUID) error
}
