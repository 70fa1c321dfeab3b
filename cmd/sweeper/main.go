package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/piresc/tumpangan/internal/pkg/config"
	"github.com/piresc/tumpangan/internal/pkg/database"
	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/piresc/tumpangan/internal/pkg/nats"
	reservationgw "github.com/piresc/tumpangan/services/reservation/gateway"
	reservationrepo "github.com/piresc/tumpangan/services/reservation/repository"
	reservationuc "github.com/piresc/tumpangan/services/reservation/usecase"
	"github.com/piresc/tumpangan/services/sweeper/gateway"
	"github.com/piresc/tumpangan/services/sweeper/repository"
	"github.com/piresc/tumpangan/services/sweeper/usecase"
)

func main() {
	appName := "sweeper"
	configPath := "config/sweeper.env"
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

	// The pending-approval sweep goes through the reservation orchestrator so
	// automated rejections notify passengers the same way manual ones do.
	reservationRepo := reservationrepo.NewReservationRepository(configs, postgresClient.GetDB(), redisClient)
	reservationGW := reservationgw.NewReservationGW(natsClient)
	reservationUC, err := reservationuc.NewReservationUC(configs, reservationRepo, reservationGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize reservation use case", logger.Err(err))
	}

	sweeperRepo := repository.NewSweeperRepository(configs, postgresClient.GetDB(), redisClient)
	sweeperGW := gateway.NewSweeperGW(natsClient)
	sweeperUC := usecase.NewSweeperUC(configs, sweeperRepo, sweeperGW, reservationUC)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := sweeperUC.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		zapLogger.Error("Sweeper exited with error", logger.Err(err))
	}

	zapLogger.Info("Shutdown complete")
}
