package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusProcessing PaymentStatus = "PROCESSING"
	PaymentStatusCompleted  PaymentStatus = "COMPLETED"
	PaymentStatusCancelled  PaymentStatus = "CANCELLED"
	PaymentStatusFailed     PaymentStatus = "FAILED"
)

// paymentTransitions is the closed set of legal payment transitions.
// FAILED is recoverable: the passenger may resubmit proof, so approval and
// re-rejection both remain legal from it.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending: {
		PaymentStatusProcessing,
		PaymentStatusCompleted,
		PaymentStatusCancelled,
		PaymentStatusFailed,
	},
	PaymentStatusProcessing: {
		PaymentStatusCompleted,
		PaymentStatusCancelled,
		PaymentStatusFailed,
	},
	PaymentStatusFailed: {
		PaymentStatusCompleted,
		PaymentStatusCancelled,
		PaymentStatusFailed,
	},
}

// IsTerminal reports whether no further transition is expected.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusCancelled
}

// CanTransitionPayment checks if a payment transition is allowed.
func CanTransitionPayment(from, to PaymentStatus) bool {
	for _, next := range paymentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidatePaymentTransition returns an error if the transition is not allowed.
func ValidatePaymentTransition(from, to PaymentStatus) error {
	if !CanTransitionPayment(from, to) {
		return fmt.Errorf("payment cannot move from %s to %s", from, to)
	}
	return nil
}

// Payment represents the monetary transaction tied one-to-one to a reservation
type Payment struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	ReservationID uuid.UUID     `json:"reservation_id" db:"reservation_id"`
	TotalAmount   float64       `json:"total_amount" db:"total_amount"`
	ServiceFee    float64       `json:"service_fee" db:"service_fee"`
	Currency      string        `json:"currency" db:"currency"`
	Status        PaymentStatus `json:"status" db:"status"`
	CompletedAt   *time.Time    `json:"completed_at,omitempty" db:"completed_at"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`

	// BankTransfer is hydrated on reads, not a column.
	BankTransfer *BankTransfer `json:"bank_transfer,omitempty" db:"-"`
}

// BankTransfer is the proof-of-payment record attached lazily to a payment
type BankTransfer struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	PaymentID     uuid.UUID  `json:"payment_id" db:"payment_id"`
	ProofFileRef  string     `json:"proof_file_ref" db:"proof_file_ref"`
	VerifiedAt    *time.Time `json:"verified_at,omitempty" db:"verified_at"`
	VerifiedBy    *uuid.UUID `json:"verified_by,omitempty" db:"verified_by"`
	FailureReason *string    `json:"failure_reason,omitempty" db:"failure_reason"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// ApprovePaymentRequest is the inbound payload for payment approval.
type ApprovePaymentRequest struct {
	ProofFileRef string `json:"proof_file_ref"`
}

// RejectPaymentRequest is the inbound payload for payment rejection.
type RejectPaymentRequest struct {
	Reason string `json:"reason"`
}
