package reservation

import (
	"context"

	"github.com/piresc/tumpangan/internal/pkg/models"
)

// ReservationGW defines outbound side effects triggered after commit.
// Both are best-effort; failures are logged, never propagated.
type ReservationGW interface {
	NotifyUser(ctx context.Context, notification models.UserNotification) error
	PublishAudit(ctx context.Context, event models.AuditEvent) error
}
