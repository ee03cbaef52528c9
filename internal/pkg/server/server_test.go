package server

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/skycab/ridepool/internal/pkg/logger"
	"github.com/skycab/ridepool/internal/pkg/models"
)

func testLogger(t *testing.T) *logger.ZapLogger {
	t.Helper()
	zl, err := logger.InitZapLoggerFromConfig(&models.Config{
		Logger: models.LoggerConfig{Level: "error", Console: true},
	})
	assert.NoError(t, err)
	return zl
}

func TestNewGracefulServer(t *testing.T) {
	gs := NewGracefulServer(echo.New(), testLogger(t), 8080)
	assert.NotNil(t, gs)
}

func TestShutdownManager_RunsFunctionsInOrder(t *testing.T) {
	sm := NewShutdownManager(testLogger(t))

	var mu sync.Mutex
	var order []int
	for i := 0; i < 5; i++ {
		index := i
		sm.Register(func(ctx context.Context) error {
			mu.Lock()
			order = append(order, index)
			mu.Unlock()
			return nil
		})
	}

	assert.NoError(t, sm.Shutdown(context.Background()))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestShutdownManager_FailureDoesNotSkipRemaining(t *testing.T) {
	sm := NewShutdownManager(testLogger(t))

	var calls []string
	sm.Register(func(ctx context.Context) error {
		calls = append(calls, "first")
		return fmt.Errorf("first failed")
	})
	sm.Register(func(ctx context.Context) error {
		calls = append(calls, "second")
		return nil
	})

	assert.NoError(t, sm.Shutdown(context.Background()))
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestShutdownManager_IgnoresNilFunction(t *testing.T) {
	sm := NewShutdownManager(testLogger(t))

	assert.NotPanics(t, func() {
		sm.Register(nil)
	})
	assert.NoError(t, sm.Shutdown(context.Background()))
}
