package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/tumpangan/internal/pkg/middleware"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/piresc/tumpangan/services/payment"
	httpHandler "github.com/piresc/tumpangan/services/payment/handler/http"
)

// Handler combines all handlers for the payment service
type Handler struct {
	paymentHTTP *httpHandler.PaymentHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(paymentUC payment.PaymentUC, cfg *models.Config) *Handler {
	return &Handler{
		paymentHTTP: httpHandler.NewPaymentHandler(paymentUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes. Verification endpoints are
// restricted to back-office operators.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authenticated := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))

	payments := authenticated.Group("/payments")
	payments.GET("/:paymentID", h.paymentHTTP.GetPayment)

	admin := payments.Group("", middleware.RequireRole("admin"))
	admin.POST("/:paymentID/approve", h.paymentHTTP.ApprovePayment)
	admin.POST("/:paymentID/reject", h.paymentHTTP.RejectPayment)
}
