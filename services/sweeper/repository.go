package sweeper

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/tumpangan/internal/pkg/models"
)

// SweeperRepo defines data access for the expiration sweeps. Each expiry runs
// in its own transaction with status guards, so overlapping sweep passes stay
// safe under at-least-once delivery.
type SweeperRepo interface {
	// FindExpirableUnpaid returns APPROVED reservations with a PENDING
	// payment on trips that are neither completed nor cancelled, departing
	// before the horizon.
	FindExpirableUnpaid(ctx context.Context, horizon time.Time, limit int) ([]models.SweepCandidate, error)

	// ExpireReservation moves one candidate to EXPIRED, cancels its pending
	// payment and releases the seats, in a single guarded transaction.
	ExpireReservation(ctx context.Context, candidate models.SweepCandidate) error

	// FindPendingApprovalsNearDeparture returns PENDING_APPROVAL reservation
	// ids on ACTIVE trips departing before the horizon.
	FindPendingApprovalsNearDeparture(ctx context.Context, horizon time.Time, limit int) ([]uuid.UUID, error)

	// AcquireLock takes the cross-replica sweep lock and returns the token
	// guarding this acquisition, empty when another replica holds it.
	AcquireLock(ctx context.Context, key string, ttl time.Duration) (string, error)

	// ReleaseLock drops the lock only while the token still owns it, so a
	// pass that outlived the TTL cannot delete a successor's lock.
	ReleaseLock(ctx context.Context, key, token string) error
}
