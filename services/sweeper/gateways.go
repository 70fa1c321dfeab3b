package sweeper

import (
	"context"

	"github.com/piresc/tumpangan/internal/pkg/models"
)

// SweeperGW defines outbound side effects triggered after each expiry.
// Both are best-effort; failures are logged, never propagated.
type SweeperGW interface {
	NotifyUser(ctx context.Context, notification models.UserNotification) error
	PublishAudit(ctx context.Context, event models.AuditEvent) error
}
