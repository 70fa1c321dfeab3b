package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/tumpangan/internal/pkg/apperrors"
	"github.com/piresc/tumpangan/internal/pkg/constants"
	"github.com/piresc/tumpangan/internal/pkg/database"
	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/piresc/tumpangan/internal/utils"
	"github.com/piresc/tumpangan/services/reservation"
)

// seatHoldingStatuses is inlined into queries that derive seat usage.
const seatHoldingStatuses = `'PENDING_APPROVAL', 'APPROVED', 'CONFIRMED'`

const tripColumns = `
	id, driver_id,
	origin_address, origin_latitude, origin_longitude, origin_geohash,
	destination_address, destination_latitude, destination_longitude, destination_geohash,
	departure_time, original_departure, seats_offered, status, is_full,
	auto_approve, allow_waitlist, created_at, updated_at`

const reservationColumns = `
	id, trip_id, passenger_id, seats_reserved, total_price, status, message,
	approved_at, created_at, updated_at`

// ReservationRepo implements the reservation repository interface
type ReservationRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) reservation.ReservationRepo {
	return &ReservationRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// GetTrip retrieves a trip by ID
func (r *ReservationRepo) GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`
	return r.scanTrip(r.db.QueryRowContext(ctx, query, tripID))
}

// GetTripReservations retrieves all reservations of a trip
func (r *ReservationRepo) GetTripReservations(ctx context.Context, tripID uuid.UUID) ([]models.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE trip_id = $1 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trip reservations: %w", err)
	}
	defer rows.Close()

	var reservations []models.Reservation
	for rows.Next() {
		res, err := scanReservationRow(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, *res)
	}
	return reservations, rows.Err()
}

// GetReservation retrieves a reservation by ID
func (r *ReservationRepo) GetReservation(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	res, err := scanReservationRow(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("reservation not found")
		}
		return nil, err
	}
	return res, nil
}

// FindByTripAndPassenger retrieves the passenger's reservation on a trip.
// Returns nil without error when no row exists.
func (r *ReservationRepo) FindByTripAndPassenger(ctx context.Context, tripID, passengerID uuid.UUID) (*models.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE trip_id = $1 AND passenger_id = $2`

	res, err := scanReservationRow(r.db.QueryRowContext(ctx, query, tripID, passengerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return res, nil
}

// GetReservationPayment returns the payment row of a reservation, nil when
// none exists yet.
func (r *ReservationRepo) GetReservationPayment(ctx context.Context, reservationID uuid.UUID) (*models.Payment, error) {
	query := `
		SELECT id, reservation_id, total_amount, service_fee, currency, status,
		       completed_at, created_at, updated_at
		FROM payments WHERE reservation_id = $1
		ORDER BY created_at DESC LIMIT 1`

	p := &models.Payment{}
	var completedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, reservationID).Scan(
		&p.ID, &p.ReservationID, &p.TotalAmount, &p.ServiceFee, &p.Currency,
		&p.Status, &completedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query reservation payment: %w", err)
	}
	if completedAt.Valid {
		p.CompletedAt = &completedAt.Time
	}
	return p, nil
}

// CreateReservation inserts or reuses a reservation row inside a transaction
// that holds the trip row lock, so two concurrent attempts on the last seat
// cannot both succeed.
func (r *ReservationRepo) CreateReservation(ctx context.Context, res *models.Reservation, reuseID *uuid.UUID, payment *models.Payment) (*models.Reservation, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	trip, err := r.lockTrip(ctx, tx, res.TripID)
	if err != nil {
		return nil, err
	}

	reserved, err := reservedSeatsTx(ctx, tx, res.TripID)
	if err != nil {
		return nil, err
	}

	if res.Status.IsSeatHolding() && reserved+res.SeatsReserved > trip.SeatsOffered {
		return nil, apperrors.Validation("no seats available")
	}

	now := time.Now().UTC()
	res.UpdatedAt = now

	if reuseID != nil {
		res.ID = *reuseID
		query := `
			UPDATE reservations
			SET seats_reserved = $1, total_price = $2, status = $3, message = $4,
			    approved_at = NULL, updated_at = $5
			WHERE id = $6`
		if _, err := tx.ExecContext(ctx, query,
			res.SeatsReserved, res.TotalPrice, res.Status, res.Message, now, res.ID); err != nil {
			return nil, fmt.Errorf("failed to reuse reservation row: %w", err)
		}
	} else {
		res.ID = uuid.New()
		res.CreatedAt = now
		query := `
			INSERT INTO reservations (
				id, trip_id, passenger_id, seats_reserved, total_price,
				status, message, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
		if _, err := tx.ExecContext(ctx, query,
			res.ID, res.TripID, res.PassengerID, res.SeatsReserved, res.TotalPrice,
			res.Status, res.Message, res.CreatedAt, res.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to insert reservation: %w", err)
		}
	}

	if payment != nil {
		if err := insertPendingPaymentTx(ctx, tx, res.ID, payment, now); err != nil {
			return nil, err
		}
	}

	if err := refreshTripFullFlagTx(ctx, tx, res.TripID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit reservation: %w", err)
	}

	r.cacheAvailability(ctx, trip, reserved+boolToSeats(res.Status.IsSeatHolding(), res.SeatsReserved))
	return res, nil
}

// TransitionReservation applies a guarded status update and refreshes the
// trip's full flag in the same transaction.
func (r *ReservationRepo) TransitionReservation(ctx context.Context, id uuid.UUID, expectedStatus, newStatus models.ReservationStatus) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var tripID uuid.UUID
	query := `
		UPDATE reservations
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
		RETURNING trip_id`
	err = tx.QueryRowContext(ctx, query, newStatus, time.Now().UTC(), id, expectedStatus).Scan(&tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.Conflict(fmt.Sprintf("reservation is no longer %s", expectedStatus))
		}
		return fmt.Errorf("failed to transition reservation: %w", err)
	}

	if abandonsSeat(newStatus) {
		if _, err := tx.ExecContext(ctx, `
			UPDATE payments
			SET status = $1, updated_at = $2
			WHERE reservation_id = $3 AND status IN ('PENDING', 'PROCESSING', 'FAILED')`,
			models.PaymentStatusCancelled, time.Now().UTC(), id); err != nil {
			return fmt.Errorf("failed to cancel open payment: %w", err)
		}
	}

	if err := refreshTripFullFlagTx(ctx, tx, tripID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transition: %w", err)
	}

	r.invalidateAvailability(ctx, tripID)
	return nil
}

// ApproveReservation stamps the approval and creates the pending payment in
// one transaction.
func (r *ReservationRepo) ApproveReservation(ctx context.Context, res *models.Reservation, payment *models.Payment) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	trip, err := r.lockTrip(ctx, tx, res.TripID)
	if err != nil {
		return err
	}

	// A promotion claims a seat the waitlisted row never held; the pre-check
	// in the usecase ran outside the lock, so recheck here.
	if res.Status == models.ReservationStatusWaitlisted {
		reserved, err := reservedSeatsTx(ctx, tx, res.TripID)
		if err != nil {
			return err
		}
		if reserved+res.SeatsReserved > trip.SeatsOffered {
			return apperrors.Validation("no seats available for promotion")
		}
	}

	now := time.Now().UTC()
	result, err := tx.ExecContext(ctx, `
		UPDATE reservations
		SET status = $1, approved_at = $2, updated_at = $2
		WHERE id = $3 AND status = $4`,
		models.ReservationStatusApproved, now, res.ID, res.Status)
	if err != nil {
		return fmt.Errorf("failed to approve reservation: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return apperrors.Conflict("reservation was modified concurrently")
	}

	if err := insertPendingPaymentTx(ctx, tx, res.ID, payment, now); err != nil {
		return err
	}

	// Waitlist promotions start holding a seat here.
	if err := refreshTripFullFlagTx(ctx, tx, res.TripID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit approval: %w", err)
	}

	res.Status = models.ReservationStatusApproved
	res.ApprovedAt = &now
	r.invalidateAvailability(ctx, res.TripID)
	return nil
}

// RejectReservations sets every targeted pending reservation to REJECTED and
// refreshes the affected trips' full flags atomically.
func (r *ReservationRepo) RejectReservations(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query, args, err := sqlx.In(`
		UPDATE reservations
		SET status = ?, updated_at = ?
		WHERE id IN (?) AND status = ?
		RETURNING trip_id`,
		models.ReservationStatusRejected, time.Now().UTC(), ids, models.ReservationStatusPendingApproval)
	if err != nil {
		return 0, fmt.Errorf("failed to build rejection query: %w", err)
	}
	query = tx.Rebind(query)

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to reject reservations: %w", err)
	}

	tripIDs := map[uuid.UUID]struct{}{}
	rejected := 0
	for rows.Next() {
		var tripID uuid.UUID
		if err := rows.Scan(&tripID); err != nil {
			rows.Close()
			return 0, err
		}
		tripIDs[tripID] = struct{}{}
		rejected++
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}

	for tripID := range tripIDs {
		if err := refreshTripFullFlagTx(ctx, tx, tripID); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit rejections: %w", err)
	}

	for tripID := range tripIDs {
		r.invalidateAvailability(ctx, tripID)
	}
	return rejected, nil
}

// UpdateTripDeparture updates the departure timestamp of a trip. The original
// departure column is never touched.
func (r *ReservationRepo) UpdateTripDeparture(ctx context.Context, tripID uuid.UUID, departure time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE trips SET departure_time = $1, updated_at = $2 WHERE id = $3`,
		departure, time.Now().UTC(), tripID)
	if err != nil {
		return fmt.Errorf("failed to update departure: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return apperrors.NotFound("trip not found")
	}
	return nil
}

// lockTrip reads the trip under FOR UPDATE inside the transaction.
func (r *ReservationRepo) lockTrip(ctx context.Context, tx *sqlx.Tx, tripID uuid.UUID) (*models.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1 FOR UPDATE`
	trip, err := r.scanTrip(tx.QueryRowContext(ctx, query, tripID))
	if err != nil {
		return nil, err
	}
	return trip, nil
}

func reservedSeatsTx(ctx context.Context, tx *sqlx.Tx, tripID uuid.UUID) (int, error) {
	var reserved int
	query := `
		SELECT COALESCE(SUM(seats_reserved), 0)
		FROM reservations
		WHERE trip_id = $1 AND status IN (` + seatHoldingStatuses + `)`
	if err := tx.QueryRowContext(ctx, query, tripID).Scan(&reserved); err != nil {
		return 0, fmt.Errorf("failed to sum reserved seats: %w", err)
	}
	return reserved, nil
}

// refreshTripFullFlagTx recomputes is_full from the seat-holding reservations.
func refreshTripFullFlagTx(ctx context.Context, tx *sqlx.Tx, tripID uuid.UUID) error {
	query := `
		UPDATE trips t
		SET is_full = (
			SELECT COALESCE(SUM(r.seats_reserved), 0)
			FROM reservations r
			WHERE r.trip_id = t.id AND r.status IN (` + seatHoldingStatuses + `)
		) >= t.seats_offered,
		updated_at = $1
		WHERE t.id = $2`
	if _, err := tx.ExecContext(ctx, query, time.Now().UTC(), tripID); err != nil {
		return fmt.Errorf("failed to refresh trip full flag: %w", err)
	}
	return nil
}

func insertPendingPaymentTx(ctx context.Context, tx *sqlx.Tx, reservationID uuid.UUID, payment *models.Payment, now time.Time) error {
	payment.ID = uuid.New()
	payment.ReservationID = reservationID
	payment.Status = models.PaymentStatusPending
	payment.CreatedAt = now
	payment.UpdatedAt = now
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO payments (
			id, reservation_id, total_amount, service_fee, currency,
			status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		payment.ID, payment.ReservationID, payment.TotalAmount, payment.ServiceFee,
		payment.Currency, payment.Status, payment.CreatedAt, payment.UpdatedAt); err != nil {
		return fmt.Errorf("failed to create pending payment: %w", err)
	}
	return nil
}

// abandonsSeat reports whether the status ends the reservation's claim while
// leaving any open payment orphaned.
func abandonsSeat(status models.ReservationStatus) bool {
	switch status {
	case models.ReservationStatusCancelledEarly, models.ReservationStatusCancelledMedium,
		models.ReservationStatusCancelledLate, models.ReservationStatusCancelledByDriverEarly,
		models.ReservationStatusCancelledByDriverLate, models.ReservationStatusExpired,
		models.ReservationStatusNoShow, models.ReservationStatusRejected:
		return true
	}
	return false
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *ReservationRepo) scanTrip(row rowScanner) (*models.Trip, error) {
	trip := &models.Trip{}
	err := row.Scan(
		&trip.ID, &trip.DriverID,
		&trip.Origin.Address, &trip.Origin.Latitude, &trip.Origin.Longitude, &trip.Origin.Geohash,
		&trip.Destination.Address, &trip.Destination.Latitude, &trip.Destination.Longitude, &trip.Destination.Geohash,
		&trip.DepartureTime, &trip.OriginalDeparture, &trip.SeatsOffered, &trip.Status, &trip.IsFull,
		&trip.AutoApprove, &trip.AllowWaitlist, &trip.CreatedAt, &trip.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("trip not found")
		}
		return nil, fmt.Errorf("failed to scan trip: %w", err)
	}
	// Rows written before the descriptor column was populated.
	if trip.Origin.Geohash == "" {
		trip.Origin.Geohash = utils.EncodeWaypoint(trip.Origin.Latitude, trip.Origin.Longitude)
	}
	if trip.Destination.Geohash == "" {
		trip.Destination.Geohash = utils.EncodeWaypoint(trip.Destination.Latitude, trip.Destination.Longitude)
	}
	return trip, nil
}

func scanReservationRow(row rowScanner) (*models.Reservation, error) {
	res := &models.Reservation{}
	var message sql.NullString
	var approvedAt sql.NullTime
	err := row.Scan(
		&res.ID, &res.TripID, &res.PassengerID, &res.SeatsReserved, &res.TotalPrice,
		&res.Status, &message, &approvedAt, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if message.Valid {
		res.Message = message.String
	}
	if approvedAt.Valid {
		res.ApprovedAt = &approvedAt.Time
	}
	return res, nil
}

// cacheAvailability stores remaining seats in Redis, best-effort.
func (r *ReservationRepo) cacheAvailability(ctx context.Context, trip *models.Trip, reserved int) {
	if r.redisClient == nil {
		return
	}
	key := fmt.Sprintf(constants.KeyTripAvailability, trip.ID)
	available := trip.SeatsOffered - reserved
	if err := r.redisClient.Set(ctx, key, strconv.Itoa(available), constants.TripAvailabilityTTLSeconds*time.Second); err != nil {
		logger.Warn("failed to cache trip availability",
			logger.String("trip_id", trip.ID.String()),
			logger.Err(err))
	}
}

func (r *ReservationRepo) invalidateAvailability(ctx context.Context, tripID uuid.UUID) {
	if r.redisClient == nil {
		return
	}
	key := fmt.Sprintf(constants.KeyTripAvailability, tripID)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		logger.Warn("failed to invalidate trip availability cache",
			logger.String("trip_id", tripID.String()),
			logger.Err(err))
	}
}

func boolToSeats(holding bool, seats int) int {
	if holding {
		return seats
	}
	return 0
}
