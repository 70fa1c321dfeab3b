package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/tumpangan/internal/pkg/apperrors"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/piresc/tumpangan/services/payment/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUC(t *testing.T) (*mocks.MockPaymentRepo, *mocks.MockPaymentGW, *paymentUC) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(&models.Config{}, mockRepo, mockGW)
	return mockRepo, mockGW, uc.(*paymentUC)
}

func pendingPayment() *models.Payment {
	return &models.Payment{
		ID:            uuid.New(),
		ReservationID: uuid.New(),
		TotalAmount:   50000,
		ServiceFee:    2500,
		Currency:      "IDR",
		Status:        models.PaymentStatusPending,
	}
}

func TestGetPayment_AttachesBankTransfer(t *testing.T) {
	mockRepo, _, uc := newTestUC(t)

	p := pendingPayment()
	transfer := &models.BankTransfer{
		ID:           uuid.New(),
		PaymentID:    p.ID,
		ProofFileRef: "transfers/abc123.jpg",
	}

	mockRepo.EXPECT().GetPayment(gomock.Any(), p.ID).Return(p, nil)
	mockRepo.EXPECT().GetBankTransfer(gomock.Any(), p.ID).Return(transfer, nil)

	got, err := uc.GetPayment(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, transfer, got.BankTransfer)
}

func TestGetPayment_NoProofYet(t *testing.T) {
	mockRepo, _, uc := newTestUC(t)

	p := pendingPayment()

	mockRepo.EXPECT().GetPayment(gomock.Any(), p.ID).Return(p, nil)
	mockRepo.EXPECT().GetBankTransfer(gomock.Any(), p.ID).Return(nil, nil)

	got, err := uc.GetPayment(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.BankTransfer)
}

func TestApprovePayment_Success(t *testing.T) {
	mockRepo, mockGW, uc := newTestUC(t)

	adminID := uuid.New()
	p := pendingPayment()
	res := &models.Reservation{
		ID:          p.ReservationID,
		PassengerID: uuid.New(),
		Status:      models.ReservationStatusApproved,
	}

	mockRepo.EXPECT().GetPayment(gomock.Any(), p.ID).Return(p, nil)
	mockRepo.EXPECT().GetReservation(gomock.Any(), p.ReservationID).Return(res, nil)
	mockRepo.EXPECT().
		CompletePayment(gomock.Any(), p, "transfers/abc123.jpg", adminID).
		DoAndReturn(func(_ context.Context, payment *models.Payment, _ string, _ uuid.UUID) error {
			payment.Status = models.PaymentStatusCompleted
			return nil
		})
	mockGW.EXPECT().NotifyUser(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishAudit(gomock.Any(), gomock.Any()).Return(nil)

	approved, err := uc.ApprovePayment(context.Background(), adminID, p.ID, "transfers/abc123.jpg")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, approved.Status)
}

func TestApprovePayment_MissingProof(t *testing.T) {
	_, _, uc := newTestUC(t)

	_, err := uc.ApprovePayment(context.Background(), uuid.New(), uuid.New(), "  ")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
}

func TestApprovePayment_AlreadyCompleted(t *testing.T) {
	mockRepo, _, uc := newTestUC(t)

	p := pendingPayment()
	p.Status = models.PaymentStatusCompleted

	mockRepo.EXPECT().GetPayment(gomock.Any(), p.ID).Return(p, nil)

	_, err := uc.ApprovePayment(context.Background(), uuid.New(), p.ID, "transfers/abc123.jpg")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
}

func TestApprovePayment_CancelledPayment(t *testing.T) {
	mockRepo, _, uc := newTestUC(t)

	p := pendingPayment()
	p.Status = models.PaymentStatusCancelled

	mockRepo.EXPECT().GetPayment(gomock.Any(), p.ID).Return(p, nil)

	_, err := uc.ApprovePayment(context.Background(), uuid.New(), p.ID, "transfers/abc123.jpg")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
}

func TestApprovePayment_RetryAfterFailure(t *testing.T) {
	mockRepo, mockGW, uc := newTestUC(t)

	adminID := uuid.New()
	p := pendingPayment()
	p.Status = models.PaymentStatusFailed
	res := &models.Reservation{
		ID:          p.ReservationID,
		PassengerID: uuid.New(),
		Status:      models.ReservationStatusApproved,
	}

	mockRepo.EXPECT().GetPayment(gomock.Any(), p.ID).Return(p, nil)
	mockRepo.EXPECT().GetReservation(gomock.Any(), p.ReservationID).Return(res, nil)
	mockRepo.EXPECT().CompletePayment(gomock.Any(), p, "transfers/retry.jpg", adminID).Return(nil)
	mockGW.EXPECT().NotifyUser(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishAudit(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.ApprovePayment(context.Background(), adminID, p.ID, "transfers/retry.jpg")
	require.NoError(t, err)
}

func TestApprovePayment_ReservationNotAwaitingPayment(t *testing.T) {
	mockRepo, _, uc := newTestUC(t)

	p := pendingPayment()
	res := &models.Reservation{
		ID:     p.ReservationID,
		Status: models.ReservationStatusCancelledEarly,
	}

	mockRepo.EXPECT().GetPayment(gomock.Any(), p.ID).Return(p, nil)
	mockRepo.EXPECT().GetReservation(gomock.Any(), p.ReservationID).Return(res, nil)

	_, err := uc.ApprovePayment(context.Background(), uuid.New(), p.ID, "transfers/abc123.jpg")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeConflict, apperrors.CodeOf(err))
}

func TestRejectPayment_Success(t *testing.T) {
	mockRepo, mockGW, uc := newTestUC(t)

	adminID := uuid.New()
	p := pendingPayment()
	res := &models.Reservation{
		ID:          p.ReservationID,
		PassengerID: uuid.New(),
		Status:      models.ReservationStatusApproved,
	}
	reason := "amount does not match the invoice"

	mockRepo.EXPECT().GetPayment(gomock.Any(), p.ID).Return(p, nil)
	mockRepo.EXPECT().GetReservation(gomock.Any(), p.ReservationID).Return(res, nil)
	mockRepo.EXPECT().
		FailPayment(gomock.Any(), p, reason, adminID).
		DoAndReturn(func(_ context.Context, payment *models.Payment, _ string, _ uuid.UUID) error {
			payment.Status = models.PaymentStatusFailed
			return nil
		})
	mockGW.EXPECT().NotifyUser(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishAudit(gomock.Any(), gomock.Any()).Return(nil)

	rejected, err := uc.RejectPayment(context.Background(), adminID, p.ID, reason)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, rejected.Status)
}

func TestRejectPayment_ReasonTooShort(t *testing.T) {
	_, _, uc := newTestUC(t)

	_, err := uc.RejectPayment(context.Background(), uuid.New(), uuid.New(), "bad")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
}

func TestRejectPayment_AlreadyCompleted(t *testing.T) {
	mockRepo, _, uc := newTestUC(t)

	p := pendingPayment()
	p.Status = models.PaymentStatusCompleted

	mockRepo.EXPECT().GetPayment(gomock.Any(), p.ID).Return(p, nil)

	_, err := uc.RejectPayment(context.Background(), uuid.New(), p.ID, "duplicate transfer reference")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
}
