package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/tumpangan/internal/pkg/middleware"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/piresc/tumpangan/services/reservation"
	httpHandler "github.com/piresc/tumpangan/services/reservation/handler/http"
)

// Handler combines all handlers for the reservation service
type Handler struct {
	reservationHTTP *httpHandler.ReservationHandler
	cfg             *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(reservationUC reservation.ReservationUC, cfg *models.Config) *Handler {
	return &Handler{
		reservationHTTP: httpHandler.NewReservationHandler(reservationUC),
		cfg:             cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authenticated := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))

	reservations := authenticated.Group("/reservations")
	reservations.POST("", h.reservationHTTP.CreateReservation)
	reservations.POST("/:reservationID/cancel", h.reservationHTTP.CancelReservation)
	reservations.POST("/:reservationID/approve", h.reservationHTTP.ApproveReservation)
	reservations.POST("/:reservationID/promote", h.reservationHTTP.PromoteWaitlisted)
	reservations.POST("/reject", h.reservationHTTP.RejectReservations)

	trips := authenticated.Group("/trips")
	trips.POST("/:tripID/reschedule", h.reservationHTTP.RescheduleTrip)
}
