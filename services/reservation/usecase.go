package reservation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/tumpangan/internal/pkg/models"
)

// ReservationUC defines the interface for reservation business logic
type ReservationUC interface {
	CreateReservation(ctx context.Context, actorID uuid.UUID, req models.CreateReservationRequest) (*models.Reservation, error)
	CancelReservation(ctx context.Context, actorID, reservationID uuid.UUID, reason string) (*models.CancelReservationResponse, error)
	ApproveReservation(ctx context.Context, actorID, reservationID uuid.UUID) (*models.Reservation, error)
	PromoteWaitlisted(ctx context.Context, actorID, reservationID uuid.UUID) (*models.Reservation, error)
	RejectReservations(ctx context.Context, actorID uuid.UUID, ids []uuid.UUID, isAutomated bool) (int, error)
	RescheduleTrip(ctx context.Context, actorID, tripID uuid.UUID, departure time.Time) (*models.Trip, error)
}
