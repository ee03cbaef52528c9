package health

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// Build metadata, stamped at release time via
// -ldflags "-X .../internal/pkg/health.Version=... -X .../internal/pkg/health.GitCommit=...".
var (
	Version   = "dev"
	GitCommit = "none"
)

// PingResponse identifies the running instance to uptime monitors.
type PingResponse struct {
	Service    string    `json:"service"`
	Version    string    `json:"version"`
	GitCommit  string    `json:"git_commit"`
	GoVersion  string    `json:"go_version"`
	Hostname   string    `json:"hostname"`
	StartedAt  time.Time `json:"started_at"`
	ServerTime time.Time `json:"server_time"`
}

// NewPingHandler answers /ping with service identity and build metadata.
// Dependency-aware probes live under /health.
func NewPingHandler(serviceName string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	resp := PingResponse{
		Service:   serviceName,
		Version:   Version,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Hostname:  hostname,
		StartedAt: time.Now(),
	}

	return func(c echo.Context) error {
		resp.ServerTime = time.Now()
		return c.JSON(http.StatusOK, resp)
	}
}
