package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/tumpangan/internal/pkg/constants"
	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/piresc/tumpangan/internal/pkg/timepolicy"
	"github.com/piresc/tumpangan/services/reservation"
	"github.com/piresc/tumpangan/services/sweeper"
)

const (
	unpaidJobName          = "unpaid"
	pendingApprovalJobName = "pending-approval"
)

type sweeperUC struct {
	cfg           *models.Config
	repo          sweeper.SweeperRepo
	gw            sweeper.SweeperGW
	reservationUC reservation.ReservationUC
	timePolicy    timepolicy.Evaluator
}

// NewSweeperUC creates a new sweeper use case
func NewSweeperUC(
	cfg *models.Config,
	repo sweeper.SweeperRepo,
	gw sweeper.SweeperGW,
	reservationUC reservation.ReservationUC,
) sweeper.SweeperUC {
	return &sweeperUC{
		cfg:           cfg,
		repo:          repo,
		gw:            gw,
		reservationUC: reservationUC,
		timePolicy:    timepolicy.NewEvaluator(cfg.Reservation),
	}
}

// SweepExpiredUnpaid expires approved reservations whose payment is still
// pending close to departure. Each candidate is its own transaction; a
// failure is counted and the pass moves on.
func (uc *sweeperUC) SweepExpiredUnpaid(ctx context.Context) (models.SweepResult, error) {
	now := time.Now().UTC()
	horizon := now.Add(time.Duration(uc.cfg.Reservation.ExpiryWindowHours * float64(time.Hour)))

	candidates, err := uc.repo.FindExpirableUnpaid(ctx, horizon, uc.cfg.Sweeper.BatchSize)
	if err != nil {
		return models.SweepResult{}, err
	}

	result := models.SweepResult{Scanned: len(candidates)}
	for _, c := range candidates {
		decision := uc.timePolicy.ShouldExpireUnpaidReservation(c.DepartureTime, c.PaymentStatus, now)
		if !decision.Allowed {
			continue
		}

		if err := uc.repo.ExpireReservation(ctx, c); err != nil {
			result.Failed++
			logger.Warn("failed to expire unpaid reservation",
				logger.String("reservation_id", c.ReservationID.String()),
				logger.Err(err))
			continue
		}
		result.Applied++

		uc.notify(ctx, c.PassengerID, "Reservation expired",
			"Your reservation expired because payment was not completed in time.",
			"reservation.expired", c.ReservationID)
		uc.audit(ctx, "sweeper.expire_unpaid", "success",
			fmt.Sprintf("reservation %s expired, payment %s cancelled", c.ReservationID, c.PaymentID))
	}

	logger.Info("unpaid sweep finished",
		logger.Int("scanned", result.Scanned),
		logger.Int("applied", result.Applied),
		logger.Int("failed", result.Failed))
	return result, nil
}

// SweepExpiredPendingApprovals bulk-rejects stale pending requests on active
// trips about to depart, through the reservation orchestrator so passengers
// are notified the same way a manual rejection would.
func (uc *sweeperUC) SweepExpiredPendingApprovals(ctx context.Context) (models.SweepResult, error) {
	now := time.Now().UTC()
	horizon := now.Add(time.Duration(uc.cfg.Reservation.ExpiryWindowHours * float64(time.Hour)))

	ids, err := uc.repo.FindPendingApprovalsNearDeparture(ctx, horizon, uc.cfg.Sweeper.BatchSize)
	if err != nil {
		return models.SweepResult{}, err
	}

	result := models.SweepResult{Scanned: len(ids)}
	if len(ids) == 0 {
		return result, nil
	}

	rejected, err := uc.reservationUC.RejectReservations(ctx, uuid.Nil, ids, true)
	if err != nil {
		result.Failed = len(ids)
		logger.Warn("automated rejection batch failed",
			logger.Int("batch_size", len(ids)),
			logger.Err(err))
		return result, nil
	}
	result.Applied = rejected

	logger.Info("pending-approval sweep finished",
		logger.Int("scanned", result.Scanned),
		logger.Int("applied", result.Applied))
	return result, nil
}

// Run drives both sweeps on a fixed ticker until ctx is cancelled.
func (uc *sweeperUC) Run(ctx context.Context) error {
	interval := time.Duration(uc.cfg.Sweeper.IntervalSeconds) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("sweeper started", logger.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			logger.Info("sweeper stopped")
			return ctx.Err()
		case <-ticker.C:
			uc.runLocked(ctx, unpaidJobName, func(ctx context.Context) error {
				_, err := uc.SweepExpiredUnpaid(ctx)
				return err
			})
			uc.runLocked(ctx, pendingApprovalJobName, func(ctx context.Context) error {
				_, err := uc.SweepExpiredPendingApprovals(ctx)
				return err
			})
		}
	}
}

// runLocked runs one job under the cross-replica advisory lock. Losing the
// lock race just skips the pass; the next tick retries.
func (uc *sweeperUC) runLocked(ctx context.Context, job string, fn func(context.Context) error) {
	key := fmt.Sprintf(constants.KeySweeperLock, job)
	ttl := time.Duration(uc.cfg.Sweeper.LockTTLSeconds) * time.Second

	token, err := uc.repo.AcquireLock(ctx, key, ttl)
	if err != nil {
		logger.Warn("failed to acquire sweep lock", logger.String("job", job), logger.Err(err))
		return
	}
	if token == "" {
		logger.Debug("sweep lock held by another replica", logger.String("job", job))
		return
	}
	defer func() {
		if err := uc.repo.ReleaseLock(ctx, key, token); err != nil {
			logger.Warn("failed to release sweep lock", logger.String("job", job), logger.Err(err))
		}
	}()

	if err := fn(ctx); err != nil {
		logger.Error("sweep pass failed", logger.String("job", job), logger.Err(err))
	}
}

func (uc *sweeperUC) notify(ctx context.Context, userID uuid.UUID, title, message, eventType string, entityID uuid.UUID) {
	err := uc.gw.NotifyUser(ctx, models.UserNotification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		EventType: eventType,
		Data:      map[string]string{"entity_id": entityID.String()},
		IssuedAt:  time.Now().UTC(),
	})
	if err != nil {
		logger.Warn("failed to deliver notification",
			logger.String("user_id", userID.String()),
			logger.String("event_type", eventType),
			logger.Err(err))
	}
}

func (uc *sweeperUC) audit(ctx context.Context, action, status, details string) {
	err := uc.gw.PublishAudit(ctx, models.AuditEvent{
		Action:   action,
		Status:   status,
		Details:  details,
		IssuedAt: time.Now().UTC(),
	})
	if err != nil {
		logger.Warn("failed to publish audit event",
			logger.String("action", action),
			logger.Err(err))
	}
}
