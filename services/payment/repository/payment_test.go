package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/tumpangan/internal/pkg/apperrors"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func TestGetPayment_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPaymentRepository(&models.Config{}, db)

	paymentID := uuid.New()
	reservationID := uuid.New()
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "reservation_id", "total_amount", "service_fee", "currency",
		"status", "completed_at", "created_at", "updated_at",
	}).AddRow(paymentID, reservationID, 50000.0, 2500.0, "IDR",
		string(models.PaymentStatusPending), nil, now, now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(paymentID).
		WillReturnRows(rows)

	p, err := repo.GetPayment(context.Background(), paymentID)
	require.NoError(t, err)
	assert.Equal(t, paymentID, p.ID)
	assert.Equal(t, models.PaymentStatusPending, p.Status)
	assert.Nil(t, p.CompletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPayment_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPaymentRepository(&models.Config{}, db)

	paymentID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(paymentID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetPayment(context.Background(), paymentID)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
}

func TestCompletePayment_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPaymentRepository(&models.Config{}, db)

	p := &models.Payment{
		ID:            uuid.New(),
		ReservationID: uuid.New(),
		Status:        models.PaymentStatusPending,
	}
	adminID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE payments")).
		WithArgs(string(models.PaymentStatusCompleted), sqlmock.AnyArg(), p.ID, string(models.PaymentStatusPending)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations")).
		WithArgs(string(models.ReservationStatusConfirmed), sqlmock.AnyArg(), p.ReservationID, string(models.ReservationStatusApproved)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bank_transfers")).
		WithArgs(sqlmock.AnyArg(), p.ID, "transfers/ok.jpg", sqlmock.AnyArg(), sqlmock.AnyArg(), nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.CompletePayment(context.Background(), p, "transfers/ok.jpg", adminID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, p.Status)
	assert.NotNil(t, p.CompletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompletePayment_ReservationConflictRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPaymentRepository(&models.Config{}, db)

	p := &models.Payment{
		ID:            uuid.New(),
		ReservationID: uuid.New(),
		Status:        models.PaymentStatusPending,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE payments")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.CompletePayment(context.Background(), p, "transfers/ok.jpg", uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeConflict, apperrors.CodeOf(err))
	assert.Equal(t, models.PaymentStatusPending, p.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompletePayment_ConcurrentPaymentChange(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPaymentRepository(&models.Config{}, db)

	p := &models.Payment{
		ID:            uuid.New(),
		ReservationID: uuid.New(),
		Status:        models.PaymentStatusPending,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE payments")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.CompletePayment(context.Background(), p, "transfers/ok.jpg", uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeConflict, apperrors.CodeOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFailPayment_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPaymentRepository(&models.Config{}, db)

	p := &models.Payment{
		ID:            uuid.New(),
		ReservationID: uuid.New(),
		Status:        models.PaymentStatusProcessing,
	}
	adminID := uuid.New()
	reason := "transfer amount mismatch"

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE payments")).
		WithArgs(string(models.PaymentStatusFailed), sqlmock.AnyArg(), p.ID, string(models.PaymentStatusProcessing)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bank_transfers")).
		WithArgs(sqlmock.AnyArg(), p.ID, "", nil, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.FailPayment(context.Background(), p, reason, adminID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, p.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
