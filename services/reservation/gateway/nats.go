package gateway

import (
	"context"
	"encoding/json"

	"github.com/piresc/tumpangan/internal/pkg/constants"
	"github.com/piresc/tumpangan/internal/pkg/models"
	natspkg "github.com/piresc/tumpangan/internal/pkg/nats"
	"github.com/piresc/tumpangan/internal/pkg/retry"
	"github.com/piresc/tumpangan/services/reservation"
)

// ReservationGW handles NATS publishing for reservation side effects
type ReservationGW struct {
	natsClient *natspkg.Client
	retryCfg   retry.Config
}

// NewReservationGW creates a new reservation gateway
func NewReservationGW(client *natspkg.Client) reservation.ReservationGW {
	return &ReservationGW{
		natsClient: client,
		retryCfg:   retry.DefaultConfig(),
	}
}

// NotifyUser publishes a user notification to NATS
func (g *ReservationGW) NotifyUser(ctx context.Context, notification models.UserNotification) error {
	data, err := json.Marshal(notification)
	if err != nil {
		return err
	}
	return retry.Do(ctx, g.retryCfg, func() error {
		return g.natsClient.Publish(constants.SubjectUserNotification, data)
	})
}

// PublishAudit publishes an audit event to NATS
func (g *ReservationGW) PublishAudit(ctx context.Context, event models.AuditEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return retry.Do(ctx, g.retryCfg, func() error {
		return g.natsClient.Publish(constants.SubjectAuditLog, data)
	})
}
