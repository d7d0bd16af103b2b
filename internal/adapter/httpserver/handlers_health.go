package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/feedbackpulse/internal/platform/version"
)

const (
	startupProbeTimeout   = 2 * time.Second
	readinessProbeTimeout = 5 * time.Second

	statusReady     = "ready"
	statusUnhealthy = "unhealthy"
	checkOK         = "ok"
)

// HealthCheck is a named dependency probe, e.g. a Postgres or Redis ping.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

type livenessResponse struct {
	Status  string  `json:"status"`
	Uptime  float64 `json:"uptime"`
	Version string  `json:"version"`
}

func (s *Server) registerHealthRoutes() {
	s.echo.GET("/health/startup", s.handleStartup)
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/version", s.handleVersion)
	if s.metricsHandler != nil {
		s.echo.GET("/metrics/prometheus", echo.WrapHandler(s.metricsHandler))
	}
}

func (s *Server) handleStartup(c echo.Context) error {
	return s.respondHealth(c, startupProbeTimeout)
}

func (s *Server) handleReadiness(c echo.Context) error {
	return s.respondHealth(c, readinessProbeTimeout)
}

func (s *Server) handleLiveness(c echo.Context) error {
	return writeJSON(c, http.StatusOK, livenessResponse{
		Status:  checkOK,
		Uptime:  time.Since(s.startTime).Seconds(),
		Version: version.Get().Version,
	})
}

func (s *Server) respondHealth(c echo.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
	defer cancel()

	resp := s.runHealthChecks(ctx)
	status := http.StatusOK
	if resp.Status != statusReady {
		status = http.StatusServiceUnavailable
	}
	return writeJSON(c, status, resp)
}

// runHealthChecks runs every check, even after a failure, so the response
// lists the state of each dependency.
func (s *Server) runHealthChecks(ctx context.Context) healthResponse {
	resp := healthResponse{Status: statusReady}
	if len(s.healthChecks) == 0 {
		return resp
	}

	resp.Checks = make(map[string]string, len(s.healthChecks))
	for _, hc := range s.healthChecks {
		if err := hc.Check(ctx); err != nil {
			slog.WarnContext(ctx, "Health check failed", "check", hc.Name, "error", err)
			resp.Status = statusUnhealthy
			resp.Checks[hc.Name] = err.Error()
			continue
		}
		resp.Checks[hc.Name] = checkOK
	}
	return resp
}

func (s *Server) handleVersion(c echo.Context) error {
	return writeJSON(c, http.StatusOK, version.Get())
}
