package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/tumpangan/internal/pkg/config"
	"github.com/piresc/tumpangan/internal/pkg/database"
	"github.com/piresc/tumpangan/internal/pkg/health"
	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/piresc/tumpangan/internal/pkg/middleware"
	"github.com/piresc/tumpangan/internal/pkg/nats"
	"github.com/piresc/tumpangan/services/payment/gateway"
	"github.com/piresc/tumpangan/services/payment/handler"
	"github.com/piresc/tumpangan/services/payment/repository"
	"github.com/piresc/tumpangan/services/payment/usecase"
)

func main() {
	appName := "payment-service"
	configPath := "config/payment.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	paymentRepo := repository.NewPaymentRepository(configs, postgresClient.GetDB())
	paymentGW := gateway.NewPaymentGW(natsClient)
	paymentUC := usecase.NewPaymentUC(configs, paymentRepo, paymentGW)

	paymentHandler := handler.NewHandler(paymentUC, configs)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthService := health.NewService(appName, configs.App.Version)
	healthService.AddChecker("postgres", health.NewPostgresChecker(postgresClient))
	healthService.AddChecker("nats", health.NewNATSChecker(natsClient))
	health.RegisterEndpoints(e, healthService)

	paymentHandler.RegisterRoutes(e)

	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		zapLogger.Info("Starting HTTP server",
			logger.String("address", addr),
			logger.String("app", appName))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zapLogger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", logger.Err(err))
	}

	zapLogger.Info("Shutdown complete")
}
