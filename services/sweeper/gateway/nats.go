package gateway

import (
	"context"
	"encoding/json"

	"github.com/piresc/tumpangan/internal/pkg/constants"
	"github.com/piresc/tumpangan/internal/pkg/models"
	natspkg "github.com/piresc/tumpangan/internal/pkg/nats"
	"github.com/piresc/tumpangan/internal/pkg/retry"
	"github.com/piresc/tumpangan/services/sweeper"
)

// SweeperGW handles NATS publishing for sweep side effects
type SweeperGW struct {
	natsClient *natspkg.Client
	retryCfg   retry.Config
}

// NewSweeperGW creates a new sweeper gateway
func NewSweeperGW(client *natspkg.Client) sweeper.SweeperGW {
	return &SweeperGW{
		natsClient: client,
		retryCfg:   retry.DefaultConfig(),
	}
}

// NotifyUser publishes a user notification to NATS
func (g *SweeperGW) NotifyUser(ctx context.Context, notification models.UserNotification) error {
	data, err := json.Marshal(notification)
	if err != nil {
		return err
	}
	return retry.Do(ctx, g.retryCfg, func() error {
		return g.natsClient.Publish(constants.SubjectUserNotification, data)
	})
}

// PublishAudit publishes an audit event to NATS
func (g *SweeperGW) PublishAudit(ctx context.Context, event models.AuditEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return retry.Do(ctx, g.retryCfg, func() error {
		return g.natsClient.Publish(constants.SubjectAuditLog, data)
	})
}
