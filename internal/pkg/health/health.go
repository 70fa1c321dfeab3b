package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/tumpangan/internal/pkg/database"
	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/piresc/tumpangan/internal/pkg/nats"
)

const checkTimeout = 5 * time.Second

// Checker reports the health of one dependency
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to the Checker interface
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) CheckHealth(ctx context.Context) error { return f(ctx) }

// NewPostgresChecker checks the database connection
func NewPostgresChecker(client *database.PostgresClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.Ping(ctx)
	})
}

// NewRedisChecker checks the Redis connection
func NewRedisChecker(client *database.RedisClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.Ping(ctx)
	})
}

// NewNATSChecker checks the NATS connection
func NewNATSChecker(client *nats.Client) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		if !client.IsConnected() {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "NATS not connected")
		}
		return nil
	})
}

// DependencyStatus is one dependency's entry in the health response
type DependencyStatus struct {
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
	Latency string `json:"latency"`
}

// Response is the aggregate health check payload
type Response struct {
	Status       string                      `json:"status"`
	Service      string                      `json:"service"`
	Version      string                      `json:"version,omitempty"`
	Timestamp    time.Time                   `json:"timestamp"`
	Dependencies map[string]DependencyStatus `json:"dependencies"`
}

// Service runs registered checkers and aggregates their results
type Service struct {
	name     string
	version  string
	checkers map[string]Checker
}

// NewService creates a health service for the named application
func NewService(name, version string) *Service {
	return &Service{
		name:     name,
		version:  version,
		checkers: make(map[string]Checker),
	}
}

// AddChecker registers a dependency checker under a name
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

// Check runs all checkers and reports per-dependency status
func (s *Service) Check(ctx context.Context) Response {
	resp := Response{
		Status:       "healthy",
		Service:      s.name,
		Version:      s.version,
		Timestamp:    time.Now().UTC(),
		Dependencies: make(map[string]DependencyStatus, len(s.checkers)),
	}

	for name, checker := range s.checkers {
		checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
		start := time.Now()
		err := checker.CheckHealth(checkCtx)
		latency := time.Since(start)
		cancel()

		status := DependencyStatus{Status: "healthy", Latency: latency.String()}
		if err != nil {
			status.Status = "unhealthy"
			status.Error = err.Error()
			resp.Status = "unhealthy"
			logger.Warn("dependency health check failed",
				logger.String("dependency", name),
				logger.Err(err))
		}
		resp.Dependencies[name] = status
	}
	return resp
}

// RegisterEndpoints mounts the health endpoints on the echo server
func RegisterEndpoints(e *echo.Echo, svc *Service) {
	e.GET("/health", func(c echo.Context) error {
		resp := svc.Check(c.Request().Context())
		code := http.StatusOK
		if resp.Status != "healthy" {
			code = http.StatusServiceUnavailable
		}
		return c.JSON(code, resp)
	})
	e.GET("/ready", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
