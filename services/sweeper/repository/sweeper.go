package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/tumpangan/internal/pkg/apperrors"
	"github.com/piresc/tumpangan/internal/pkg/database"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/piresc/tumpangan/services/sweeper"
)

// SweeperRepo implements the sweeper repository interface
type SweeperRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewSweeperRepository creates a new sweeper repository
func NewSweeperRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) sweeper.SweeperRepo {
	return &SweeperRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// FindExpirableUnpaid selects the unpaid-sweep candidates. Filtering on
// status columns here keeps the per-item transactions small; the usecase
// re-applies the time policy before expiring.
func (r *SweeperRepo) FindExpirableUnpaid(ctx context.Context, horizon time.Time, limit int) ([]models.SweepCandidate, error) {
	query := `
		SELECT r.id AS reservation_id, r.trip_id, r.passenger_id,
		       p.id AS payment_id, p.status AS payment_status,
		       t.departure_time
		FROM reservations r
		JOIN payments p ON p.reservation_id = r.id
		JOIN trips t ON t.id = r.trip_id
		WHERE r.status = $1
		  AND p.status = $2
		  AND t.status NOT IN ($3, $4)
		  AND t.departure_time < $5
		ORDER BY t.departure_time
		LIMIT $6`

	var candidates []models.SweepCandidate
	err := r.db.SelectContext(ctx, &candidates, query,
		models.ReservationStatusApproved, models.PaymentStatusPending,
		models.TripStatusCompleted, models.TripStatusCancelled,
		horizon, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query expirable reservations: %w", err)
	}
	return candidates, nil
}

// ExpireReservation expires one candidate in its own transaction. The status
// guards make a repeat pass over an already-expired row a no-op conflict, not
// a double write.
func (r *SweeperRepo) ExpireReservation(ctx context.Context, candidate models.SweepCandidate) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()

	result, err := tx.ExecContext(ctx, `
		UPDATE reservations
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4`,
		models.ReservationStatusExpired, now, candidate.ReservationID, models.ReservationStatusApproved)
	if err != nil {
		return fmt.Errorf("failed to expire reservation: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return apperrors.Conflict("reservation was modified concurrently")
	}

	result, err = tx.ExecContext(ctx, `
		UPDATE payments
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4`,
		models.PaymentStatusCancelled, now, candidate.PaymentID, models.PaymentStatusPending)
	if err != nil {
		return fmt.Errorf("failed to cancel payment: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return apperrors.Conflict("payment was modified concurrently")
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE trips
		SET is_full = (
			SELECT COALESCE(SUM(seats_reserved), 0) >= seats_offered
			FROM reservations
			WHERE trip_id = trips.id
			  AND status IN ('PENDING_APPROVAL', 'APPROVED', 'CONFIRMED')
		), updated_at = $1
		WHERE id = $2`,
		now, candidate.TripID)
	if err != nil {
		return fmt.Errorf("failed to refresh trip full flag: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit expiry: %w", err)
	}
	return nil
}

// FindPendingApprovalsNearDeparture selects ids for the automated rejection sweep
func (r *SweeperRepo) FindPendingApprovalsNearDeparture(ctx context.Context, horizon time.Time, limit int) ([]uuid.UUID, error) {
	query := `
		SELECT r.id
		FROM reservations r
		JOIN trips t ON t.id = r.trip_id
		WHERE r.status = $1
		  AND t.status = $2
		  AND t.departure_time < $3
		ORDER BY t.departure_time
		LIMIT $4`

	var ids []uuid.UUID
	err := r.db.SelectContext(ctx, &ids, query,
		models.ReservationStatusPendingApproval, models.TripStatusActive,
		horizon, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale pending approvals: %w", err)
	}
	return ids, nil
}

// releaseLockScript deletes the lock only when the stored token matches, so
// a pass that ran past the TTL cannot drop a lock another replica now holds.
const releaseLockScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`

// AcquireLock takes the cross-replica advisory lock via SETNX. The returned
// token identifies this acquisition; empty means another replica holds it.
func (r *SweeperRepo) AcquireLock(ctx context.Context, key string, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	acquired, err := r.redisClient.SetNX(ctx, key, token, ttl)
	if err != nil {
		return "", err
	}
	if !acquired {
		return "", nil
	}
	return token, nil
}

// ReleaseLock drops the advisory lock while the token still owns it
func (r *SweeperRepo) ReleaseLock(ctx context.Context, key, token string) error {
	return r.redisClient.Client.Eval(ctx, releaseLockScript, []string{key}, token).Err()
}
