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
	"github.com/piresc/tumpangan/services/reservation/gateway"
	"github.com/piresc/tumpangan/services/reservation/handler"
	"github.com/piresc/tumpangan/services/reservation/repository"
	"github.com/piresc/tumpangan/services/reservation/usecase"
)

func main() {
	appName := "reservation-service"
	configPath := "config/reservation.env"
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

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	reservationRepo := repository.NewReservationRepository(configs, postgresClient.GetDB(), redisClient)
	reservationGW := gateway.NewReservationGW(natsClient)

	reservationUC, err := usecase.NewReservationUC(configs, reservationRepo, reservationGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize reservation use case", logger.Err(err))
	}

	reservationHandler := handler.NewHandler(reservationUC, configs)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthService := health.NewService(appName, configs.App.Version)
	healthService.AddChecker("postgres", health.NewPostgresChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSChecker(natsClient))
	health.RegisterEndpoints(e, healthService)

	reservationHandler.RegisterRoutes(e)

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
