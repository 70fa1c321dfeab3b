package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/tumpangan/internal/pkg/apperrors"
	"github.com/piresc/tumpangan/internal/pkg/database"
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

func setupMockRedis(t *testing.T) (*database.RedisClient, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to create miniredis: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &database.RedisClient{Client: client}, mr
}

func tripRow(tripID, driverID uuid.UUID, seatsOffered int) *sqlmock.Rows {
	now := time.Now().UTC()
	departure := now.Add(72 * time.Hour)
	return sqlmock.NewRows([]string{
		"id", "driver_id",
		"origin_address", "origin_latitude", "origin_longitude", "origin_geohash",
		"destination_address", "destination_latitude", "destination_longitude", "destination_geohash",
		"departure_time", "original_departure", "seats_offered", "status", "is_full",
		"auto_approve", "allow_waitlist", "created_at", "updated_at",
	}).AddRow(
		tripID, driverID,
		"Blok M", -6.244, 106.800, "qqggy7x",
		"Bandung", -6.917, 107.619, "qqx5rjh",
		departure, departure, seatsOffered, string(models.TripStatusActive), false,
		false, false, now, now,
	)
}

func TestCreateReservation_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	redisClient, mr := setupMockRedis(t)
	defer mr.Close()

	repo := NewReservationRepository(&models.Config{}, db, redisClient)

	tripID := uuid.New()
	res := &models.Reservation{
		TripID:        tripID,
		PassengerID:   uuid.New(),
		SeatsReserved: 1,
		TotalPrice:    50000,
		Status:        models.ReservationStatusPendingApproval,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(tripID).
		WillReturnRows(tripRow(tripID, uuid.New(), 2))
	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(seats_reserved), 0)")).
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reservations")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE trips")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, err := repo.CreateReservation(context.Background(), res, nil, nil)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())

	// Availability cache is refreshed after commit.
	cached, err := mr.Get("trip:" + tripID.String() + ":availability")
	require.NoError(t, err)
	assert.Equal(t, "0", cached)
}

func TestCreateReservation_LastSeatTakenFails(t *testing.T) {
	db, mock := setupMockDB(t)
	redisClient, mr := setupMockRedis(t)
	defer mr.Close()

	repo := NewReservationRepository(&models.Config{}, db, redisClient)

	tripID := uuid.New()
	res := &models.Reservation{
		TripID:        tripID,
		PassengerID:   uuid.New(),
		SeatsReserved: 1,
		Status:        models.ReservationStatusPendingApproval,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(tripID).
		WillReturnRows(tripRow(tripID, uuid.New(), 2))
	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(seats_reserved), 0)")).
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(2))
	mock.ExpectRollback()

	_, err := repo.CreateReservation(context.Background(), res, nil, nil)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
	assert.Contains(t, err.Error(), "no seats available")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservation_WaitlistedSkipsCapacityCheck(t *testing.T) {
	db, mock := setupMockDB(t)
	redisClient, mr := setupMockRedis(t)
	defer mr.Close()

	repo := NewReservationRepository(&models.Config{}, db, redisClient)

	tripID := uuid.New()
	res := &models.Reservation{
		TripID:        tripID,
		PassengerID:   uuid.New(),
		SeatsReserved: 1,
		Status:        models.ReservationStatusWaitlisted,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(tripID).
		WillReturnRows(tripRow(tripID, uuid.New(), 2))
	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(seats_reserved), 0)")).
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(2))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reservations")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE trips")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err := repo.CreateReservation(context.Background(), res, nil, nil)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservation_AutoApproveInsertsPayment(t *testing.T) {
	db, mock := setupMockDB(t)
	redisClient, mr := setupMockRedis(t)
	defer mr.Close()

	repo := NewReservationRepository(&models.Config{}, db, redisClient)

	tripID := uuid.New()
	res := &models.Reservation{
		TripID:        tripID,
		PassengerID:   uuid.New(),
		SeatsReserved: 1,
		TotalPrice:    50000,
		Status:        models.ReservationStatusApproved,
	}
	payment := &models.Payment{TotalAmount: 50000, ServiceFee: 2500, Currency: "IDR"}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(tripID).
		WillReturnRows(tripRow(tripID, uuid.New(), 2))
	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(seats_reserved), 0)")).
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reservations")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payments")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE trips")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, err := repo.CreateReservation(context.Background(), res, nil, payment)
	require.NoError(t, err)
	assert.Equal(t, created.ID, payment.ReservationID)
	assert.Equal(t, models.PaymentStatusPending, payment.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionReservation_CancelAbandonsSeatAndPayment(t *testing.T) {
	db, mock := setupMockDB(t)
	redisClient, mr := setupMockRedis(t)
	defer mr.Close()

	repo := NewReservationRepository(&models.Config{}, db, redisClient)

	reservationID := uuid.New()
	tripID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE reservations")).
		WithArgs(string(models.ReservationStatusCancelledEarly), sqlmock.AnyArg(),
			reservationID, string(models.ReservationStatusConfirmed)).
		WillReturnRows(sqlmock.NewRows([]string{"trip_id"}).AddRow(tripID))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE payments")).
		WithArgs(string(models.PaymentStatusCancelled), sqlmock.AnyArg(), reservationID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE trips")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.TransitionReservation(context.Background(), reservationID,
		models.ReservationStatusConfirmed, models.ReservationStatusCancelledEarly)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionReservation_ConfirmKeepsPayment(t *testing.T) {
	db, mock := setupMockDB(t)
	redisClient, mr := setupMockRedis(t)
	defer mr.Close()

	repo := NewReservationRepository(&models.Config{}, db, redisClient)

	reservationID := uuid.New()
	tripID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE reservations")).
		WillReturnRows(sqlmock.NewRows([]string{"trip_id"}).AddRow(tripID))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE trips")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.TransitionReservation(context.Background(), reservationID,
		models.ReservationStatusApproved, models.ReservationStatusConfirmed)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionReservation_StaleStatusConflicts(t *testing.T) {
	db, mock := setupMockDB(t)
	redisClient, mr := setupMockRedis(t)
	defer mr.Close()

	repo := NewReservationRepository(&models.Config{}, db, redisClient)

	reservationID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE reservations")).
		WillReturnRows(sqlmock.NewRows([]string{"trip_id"}))
	mock.ExpectRollback()

	err := repo.TransitionReservation(context.Background(), reservationID,
		models.ReservationStatusApproved, models.ReservationStatusExpired)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeConflict, apperrors.CodeOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveReservation_InsertsPaymentAndStampsApproval(t *testing.T) {
	db, mock := setupMockDB(t)
	redisClient, mr := setupMockRedis(t)
	defer mr.Close()

	repo := NewReservationRepository(&models.Config{}, db, redisClient)

	res := &models.Reservation{
		ID:     uuid.New(),
		TripID: uuid.New(),
		Status: models.ReservationStatusPendingApproval,
	}
	payment := &models.Payment{TotalAmount: 75000, ServiceFee: 3750, Currency: "IDR"}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(res.TripID).
		WillReturnRows(tripRow(res.TripID, uuid.New(), 2))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations")).
		WithArgs(string(models.ReservationStatusApproved), sqlmock.AnyArg(),
			res.ID, string(models.ReservationStatusPendingApproval)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payments")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE trips")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.ApproveReservation(context.Background(), res, payment)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusApproved, res.Status)
	assert.NotNil(t, res.ApprovedAt)
	assert.Equal(t, models.PaymentStatusPending, payment.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveReservation_PromotionRechecksCapacityUnderLock(t *testing.T) {
	db, mock := setupMockDB(t)
	redisClient, mr := setupMockRedis(t)
	defer mr.Close()

	repo := NewReservationRepository(&models.Config{}, db, redisClient)

	res := &models.Reservation{
		ID:            uuid.New(),
		TripID:        uuid.New(),
		SeatsReserved: 1,
		Status:        models.ReservationStatusWaitlisted,
	}
	payment := &models.Payment{TotalAmount: 75000, ServiceFee: 3750, Currency: "IDR"}

	// A concurrent promotion took the last seat between the usecase pre-check
	// and this transaction.
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(res.TripID).
		WillReturnRows(tripRow(res.TripID, uuid.New(), 2))
	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(seats_reserved), 0)")).
		WithArgs(res.TripID).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(2))
	mock.ExpectRollback()

	err := repo.ApproveReservation(context.Background(), res, payment)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
	assert.Contains(t, err.Error(), "no seats available")
	assert.Equal(t, models.ReservationStatusWaitlisted, res.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveReservation_PromotionTakesSeatWhenAvailable(t *testing.T) {
	db, mock := setupMockDB(t)
	redisClient, mr := setupMockRedis(t)
	defer mr.Close()

	repo := NewReservationRepository(&models.Config{}, db, redisClient)

	res := &models.Reservation{
		ID:            uuid.New(),
		TripID:        uuid.New(),
		SeatsReserved: 1,
		Status:        models.ReservationStatusWaitlisted,
	}
	payment := &models.Payment{TotalAmount: 75000, ServiceFee: 3750, Currency: "IDR"}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(res.TripID).
		WillReturnRows(tripRow(res.TripID, uuid.New(), 2))
	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(seats_reserved), 0)")).
		WithArgs(res.TripID).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations")).
		WithArgs(string(models.ReservationStatusApproved), sqlmock.AnyArg(),
			res.ID, string(models.ReservationStatusWaitlisted)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payments")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE trips")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.ApproveReservation(context.Background(), res, payment)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusApproved, res.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRejectReservations_RefreshesAffectedTrips(t *testing.T) {
	db, mock := setupMockDB(t)
	redisClient, mr := setupMockRedis(t)
	defer mr.Close()

	repo := NewReservationRepository(&models.Config{}, db, redisClient)

	ids := []uuid.UUID{uuid.New(), uuid.New()}
	tripID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE reservations")).
		WillReturnRows(sqlmock.NewRows([]string{"trip_id"}).AddRow(tripID).AddRow(tripID))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE trips")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rejected, err := repo.RejectReservations(context.Background(), ids)
	require.NoError(t, err)
	assert.Equal(t, 2, rejected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTripDeparture_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	redisClient, mr := setupMockRedis(t)
	defer mr.Close()

	repo := NewReservationRepository(&models.Config{}, db, redisClient)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE trips")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateTripDeparture(context.Background(), uuid.New(), time.Now().UTC())
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
}
