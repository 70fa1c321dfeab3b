package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/piresc/tumpangan/internal/pkg/middleware"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/piresc/tumpangan/internal/utils"
	"github.com/piresc/tumpangan/services/reservation"
)

// ReservationHandler handles HTTP requests for reservation operations
type ReservationHandler struct {
	reservationUC reservation.ReservationUC
}

// NewReservationHandler creates a new reservation HTTP handler
func NewReservationHandler(reservationUC reservation.ReservationUC) *ReservationHandler {
	return &ReservationHandler{
		reservationUC: reservationUC,
	}
}

// CreateReservation handles seat reservation requests
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	actorID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing user identity")
	}

	var req models.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body: "+err.Error())
	}
	if req.TripID == uuid.Nil {
		return utils.BadRequestResponse(c, "trip_id is required")
	}

	res, err := h.reservationUC.CreateReservation(c.Request().Context(), actorID, req)
	if err != nil {
		logger.Warn("create reservation failed",
			logger.String("trip_id", req.TripID.String()),
			logger.String("passenger_id", actorID.String()),
			logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Reservation created", res)
}

// CancelReservation handles cancellation by the passenger or the trip driver
func (h *ReservationHandler) CancelReservation(c echo.Context) error {
	actorID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing user identity")
	}
	reservationID, err := uuid.Parse(c.Param("reservationID"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid reservation id")
	}

	var req models.CancelReservationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body: "+err.Error())
	}

	resp, err := h.reservationUC.CancelReservation(c.Request().Context(), actorID, reservationID, req.Reason)
	if err != nil {
		logger.Warn("cancel reservation failed",
			logger.String("reservation_id", reservationID.String()),
			logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Reservation cancelled", resp)
}

// ApproveReservation handles driver approval of a pending request
func (h *ReservationHandler) ApproveReservation(c echo.Context) error {
	return h.approve(c, h.reservationUC.ApproveReservation, "Reservation approved")
}

// PromoteWaitlisted handles driver promotion of a waitlisted passenger
func (h *ReservationHandler) PromoteWaitlisted(c echo.Context) error {
	return h.approve(c, h.reservationUC.PromoteWaitlisted, "Reservation promoted")
}

func (h *ReservationHandler) approve(
	c echo.Context,
	op func(ctx context.Context, actorID, reservationID uuid.UUID) (*models.Reservation, error),
	message string,
) error {
	actorID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing user identity")
	}
	reservationID, err := uuid.Parse(c.Param("reservationID"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid reservation id")
	}

	res, err := op(c.Request().Context(), actorID, reservationID)
	if err != nil {
		logger.Warn("reservation approval failed",
			logger.String("reservation_id", reservationID.String()),
			logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, message, res)
}

// RejectReservations handles bulk rejection by the trip driver
func (h *ReservationHandler) RejectReservations(c echo.Context) error {
	actorID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing user identity")
	}

	var req models.RejectReservationsRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body: "+err.Error())
	}

	rejected, err := h.reservationUC.RejectReservations(c.Request().Context(), actorID, req.ReservationIDs, false)
	if err != nil {
		logger.Warn("bulk rejection failed",
			logger.Int("requested", len(req.ReservationIDs)),
			logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Reservations rejected", map[string]int{"rejected": rejected})
}

// RescheduleTrip handles a bounded departure edit by the trip driver
func (h *ReservationHandler) RescheduleTrip(c echo.Context) error {
	actorID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing user identity")
	}
	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid trip id")
	}

	var req models.RescheduleTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body: "+err.Error())
	}
	if req.DepartureTime.IsZero() {
		return utils.BadRequestResponse(c, "departure_time is required")
	}

	trip, err := h.reservationUC.RescheduleTrip(c.Request().Context(), actorID, tripID, req.DepartureTime)
	if err != nil {
		logger.Warn("trip reschedule failed",
			logger.String("trip_id", tripID.String()),
			logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip rescheduled", trip)
}
