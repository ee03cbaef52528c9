package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type stubChecker struct {
	err error
}

func (s stubChecker) CheckHealth(ctx context.Context) error {
	return s.err
}

func TestNewPingHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewPingHandler("ridepool")
	assert.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp PingResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ridepool", resp.Service)
	assert.NotEmpty(t, resp.GoVersion)
	assert.False(t, resp.ServerTime.IsZero())
}

func TestCheckAllHealth_AllHealthy(t *testing.T) {
	hs := NewHealthService()
	hs.AddChecker("postgres", stubChecker{})
	hs.AddChecker("redis", stubChecker{})

	response := hs.CheckAllHealth(context.Background())
	assert.Equal(t, "healthy", response.Status)
	assert.Len(t, response.Dependencies, 2)
	assert.Equal(t, "healthy", response.Dependencies["postgres"].Status)
}

func TestCheckAllHealth_OneUnhealthy(t *testing.T) {
	hs := NewHealthService()
	hs.AddChecker("postgres", stubChecker{})
	hs.AddChecker("nats", stubChecker{err: fmt.Errorf("connection refused")})

	response := hs.CheckAllHealth(context.Background())
	assert.Equal(t, "unhealthy", response.Status)
	assert.Equal(t, "unhealthy", response.Dependencies["nats"].Status)
	assert.Equal(t, "connection refused", response.Dependencies["nats"].Error)
	assert.Equal(t, "healthy", response.Dependencies["postgres"].Status)
}

func TestRegisterEnhancedHealthEndpoints(t *testing.T) {
	e := echo.New()
	hs := NewHealthService()
	hs.AddChecker("postgres", stubChecker{})
	RegisterEnhancedHealthEndpoints(e, "ridepool", "1.0.0", hs)

	req := httptest.NewRequest(http.MethodGet, "/health/detailed", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response HealthResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "ridepool", response.Service)
	assert.Equal(t, "1.0.0", response.Version)
}

func TestRegisterEnhancedHealthEndpoints_NotReadyWhenUnhealthy(t *testing.T) {
	e := echo.New()
	hs := NewHealthService()
	hs.AddChecker("redis", stubChecker{err: fmt.Errorf("down")})
	RegisterEnhancedHealthEndpoints(e, "ridepool", "1.0.0", hs)

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
