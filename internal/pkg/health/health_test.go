package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck_AllHealthy(t *testing.T) {
	svc := NewService("test-service", "1.0.0")
	svc.AddChecker("db", CheckerFunc(func(context.Context) error { return nil }))
	svc.AddChecker("cache", CheckerFunc(func(context.Context) error { return nil }))

	resp := svc.Check(context.Background())
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "test-service", resp.Service)
	assert.Len(t, resp.Dependencies, 2)
	assert.Equal(t, "healthy", resp.Dependencies["db"].Status)
}

func TestCheck_OneUnhealthy(t *testing.T) {
	svc := NewService("test-service", "1.0.0")
	svc.AddChecker("db", CheckerFunc(func(context.Context) error { return nil }))
	svc.AddChecker("cache", CheckerFunc(func(context.Context) error {
		return errors.New("connection refused")
	}))

	resp := svc.Check(context.Background())
	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, "healthy", resp.Dependencies["db"].Status)
	assert.Equal(t, "unhealthy", resp.Dependencies["cache"].Status)
	assert.Equal(t, "connection refused", resp.Dependencies["cache"].Error)
}

func TestCheck_NoCheckers(t *testing.T) {
	svc := NewService("test-service", "")
	resp := svc.Check(context.Background())
	assert.Equal(t, "healthy", resp.Status)
	assert.Empty(t, resp.Dependencies)
}
