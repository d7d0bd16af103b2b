package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/feedbackpulse/internal/domain"
	apperrors "github.com/pscheid92/feedbackpulse/internal/platform/errors"
)

const (
	msgMetricsObjectRequired = "Le corps de la requête doit contenir un objet 'metrics'"
	msgMetricsSaved          = "Métriques enregistrées avec succès"
	msgMetricsSaveFailed     = "Erreur lors de l'enregistrement des métriques"
	msgMetricsLoadFailed     = "Erreur lors de la récupération des métriques"
)

type performanceRequest struct {
	Timestamp string         `json:"timestamp"`
	Metrics   map[string]any `json:"metrics"`
}

type performanceResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// registerMetricsRoutes exposes the load-test performance relay. The
// Prometheus scrape endpoint lives under /metrics/prometheus instead.
func (s *Server) registerMetricsRoutes(api *echo.Group) {
	api.POST("/metrics", s.handleRecordPerformance)
	api.GET("/metrics", s.handlePerformanceHistory)
}

func (s *Server) handleRecordPerformance(c echo.Context) error {
	var req performanceRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError(msgMetricsObjectRequired)
	}

	snapshot, err := s.app.RecordPerformance(c.Request().Context(), domain.PerformanceSnapshot{
		Timestamp: req.Timestamp,
		Metrics:   req.Metrics,
	})
	if errors.Is(err, domain.ErrInvalidInput) {
		return apperrors.ValidationError(msgMetricsObjectRequired)
	}
	if err != nil {
		return apperrors.InternalError(msgMetricsSaveFailed, err)
	}

	slog.InfoContext(c.Request().Context(), "Performance metrics recorded", "timestamp", snapshot.Timestamp)
	return writeJSON(c, http.StatusCreated, performanceResponse{
		Success:   true,
		Message:   msgMetricsSaved,
		Timestamp: snapshot.Timestamp,
	})
}

func (s *Server) handlePerformanceHistory(c echo.Context) error {
	history, err := s.app.PerformanceHistory(c.Request().Context())
	if err != nil {
		return apperrors.InternalError(msgMetricsLoadFailed, err)
	}
	return writeJSON(c, http.StatusOK, history)
}
