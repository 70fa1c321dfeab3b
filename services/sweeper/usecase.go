package sweeper

import (
	"context"

	"github.com/piresc/tumpangan/internal/pkg/models"
)

// SweeperUC defines the interface for the periodic expiration jobs
type SweeperUC interface {
	// SweepExpiredUnpaid expires approved-but-unpaid reservations close to
	// departure. Per-item failures are counted, never raised.
	SweepExpiredUnpaid(ctx context.Context) (models.SweepResult, error)

	// SweepExpiredPendingApprovals bulk-rejects stale pending requests on
	// trips about to depart.
	SweepExpiredPendingApprovals(ctx context.Context) (models.SweepResult, error)

	// Run ticks both sweeps until the context is cancelled, holding the
	// cross-replica lock for each pass.
	Run(ctx context.Context) error
}
