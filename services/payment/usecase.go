package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/tumpangan/internal/pkg/models"
)

// PaymentUC defines the interface for payment business logic
type PaymentUC interface {
	GetPayment(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	ApprovePayment(ctx context.Context, actorID, paymentID uuid.UUID, proofFileRef string) (*models.Payment, error)
	RejectPayment(ctx context.Context, actorID, paymentID uuid.UUID, reason string) (*models.Payment, error)
}
