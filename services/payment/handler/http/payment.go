package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/piresc/tumpangan/internal/pkg/middleware"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/piresc/tumpangan/internal/utils"
	"github.com/piresc/tumpangan/services/payment"
)

// PaymentHandler handles HTTP requests for payment operations
type PaymentHandler struct {
	paymentUC payment.PaymentUC
}

// NewPaymentHandler creates a new payment HTTP handler
func NewPaymentHandler(paymentUC payment.PaymentUC) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
	}
}

// GetPayment returns a payment by ID
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	paymentID, err := uuid.Parse(c.Param("paymentID"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid payment id")
	}

	p, err := h.paymentUC.GetPayment(c.Request().Context(), paymentID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment retrieved", p)
}

// ApprovePayment verifies proof of transfer and confirms the seat
func (h *PaymentHandler) ApprovePayment(c echo.Context) error {
	actorID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing user identity")
	}
	paymentID, err := uuid.Parse(c.Param("paymentID"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid payment id")
	}

	var req models.ApprovePaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body: "+err.Error())
	}

	p, err := h.paymentUC.ApprovePayment(c.Request().Context(), actorID, paymentID, req.ProofFileRef)
	if err != nil {
		logger.Warn("payment approval failed",
			logger.String("payment_id", paymentID.String()),
			logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment approved", p)
}

// RejectPayment marks the payment failed with a reason
func (h *PaymentHandler) RejectPayment(c echo.Context) error {
	actorID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing user identity")
	}
	paymentID, err := uuid.Parse(c.Param("paymentID"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid payment id")
	}

	var req models.RejectPaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body: "+err.Error())
	}

	p, err := h.paymentUC.RejectPayment(c.Request().Context(), actorID, paymentID, req.Reason)
	if err != nil {
		logger.Warn("payment rejection failed",
			logger.String("payment_id", paymentID.String()),
			logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment rejected", p)
}
