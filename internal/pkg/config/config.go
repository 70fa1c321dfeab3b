package config

import (
	"strings"

	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from environment variables, with an optional
// env-style file for local runs. Every key has a default so a bare process
// still starts.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		// Missing local config files are fine; env vars take over.
		_ = v.ReadInConfig()
	}

	setDefaults(v)

	return &models.Config{
		App: models.AppConfig{
			Name:        v.GetString("APP_NAME"),
			Environment: v.GetString("APP_ENV"),
			Debug:       v.GetBool("APP_DEBUG"),
			Version:     v.GetString("APP_VERSION"),
		},
		Server: models.ServerConfig{
			Host:            v.GetString("SERVER_HOST"),
			Port:            v.GetInt("SERVER_PORT"),
			ReadTimeout:     v.GetInt("SERVER_READ_TIMEOUT"),
			WriteTimeout:    v.GetInt("SERVER_WRITE_TIMEOUT"),
			ShutdownTimeout: v.GetInt("SERVER_SHUTDOWN_TIMEOUT"),
		},
		Database: models.DatabaseConfig{
			Host:      v.GetString("DB_HOST"),
			Port:      v.GetInt("DB_PORT"),
			Username:  v.GetString("DB_USERNAME"),
			Password:  v.GetString("DB_PASSWORD"),
			Database:  v.GetString("DB_DATABASE"),
			SSLMode:   v.GetString("DB_SSL_MODE"),
			MaxConns:  v.GetInt("DB_MAX_CONNS"),
			IdleConns: v.GetInt("DB_IDLE_CONNS"),
		},
		Redis: models.RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			PoolSize: v.GetInt("REDIS_POOL_SIZE"),
		},
		NATS: models.NATSConfig{
			URL: v.GetString("NATS_URL"),
		},
		JWT: models.JWTConfig{
			Secret:     v.GetString("JWT_SECRET"),
			Expiration: v.GetInt("JWT_EXPIRATION"),
			Issuer:     v.GetString("JWT_ISSUER"),
		},
		Logger: models.LoggerConfig{
			Level:    v.GetString("LOG_LEVEL"),
			FilePath: v.GetString("LOG_FILE_PATH"),
			Type:     v.GetString("LOG_TYPE"),
		},
		Reservation: models.ReservationConfig{
			MinSeats:           v.GetInt("RESERVATION_MIN_SEATS"),
			MaxSeats:           v.GetInt("RESERVATION_MAX_SEATS"),
			CreateWindowHours:  v.GetFloat64("RESERVATION_CREATE_WINDOW_HOURS"),
			ApproveWindowHours: v.GetFloat64("RESERVATION_APPROVE_WINDOW_HOURS"),
			ExpiryWindowHours:  v.GetFloat64("RESERVATION_EXPIRY_WINDOW_HOURS"),
		},
		Cancellation: models.CancellationConfig{
			EarlyHours:          v.GetFloat64("CANCEL_EARLY_HOURS"),
			MediumHours:         v.GetFloat64("CANCEL_MEDIUM_HOURS"),
			EarlyRefundPercent:  v.GetFloat64("CANCEL_EARLY_REFUND_PERCENT"),
			MediumRefundPercent: v.GetFloat64("CANCEL_MEDIUM_REFUND_PERCENT"),
			LateRefundPercent:   v.GetFloat64("CANCEL_LATE_REFUND_PERCENT"),
		},
		Sweeper: models.SweeperConfig{
			IntervalSeconds: v.GetInt("SWEEPER_INTERVAL_SECONDS"),
			LockTTLSeconds:  v.GetInt("SWEEPER_LOCK_TTL_SECONDS"),
			BatchSize:       v.GetInt("SWEEPER_BATCH_SIZE"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "tumpangan")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "dev")

	v.SetDefault("SERVER_PORT", 9990)
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USERNAME", "postgres")
	v.SetDefault("DB_DATABASE", "tumpangan")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NATS_URL", "nats://localhost:4222")

	v.SetDefault("JWT_EXPIRATION", 60)
	v.SetDefault("JWT_ISSUER", "tumpangan")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "logs/tumpangan.log")
	v.SetDefault("LOG_TYPE", "console")

	v.SetDefault("RESERVATION_MIN_SEATS", 1)
	v.SetDefault("RESERVATION_MAX_SEATS", 4)
	v.SetDefault("RESERVATION_CREATE_WINDOW_HOURS", 3)
	v.SetDefault("RESERVATION_APPROVE_WINDOW_HOURS", 3)
	v.SetDefault("RESERVATION_EXPIRY_WINDOW_HOURS", 2)

	// Fallbacks only; the real tier boundaries come from the business policy.
	v.SetDefault("CANCEL_EARLY_HOURS", 48)
	v.SetDefault("CANCEL_MEDIUM_HOURS", 12)
	v.SetDefault("CANCEL_EARLY_REFUND_PERCENT", 100)
	v.SetDefault("CANCEL_MEDIUM_REFUND_PERCENT", 50)
	v.SetDefault("CANCEL_LATE_REFUND_PERCENT", 0)

	v.SetDefault("SWEEPER_INTERVAL_SECONDS", 300)
	v.SetDefault("SWEEPER_LOCK_TTL_SECONDS", 240)
	v.SetDefault("SWEEPER_BATCH_SIZE", 100)
}
