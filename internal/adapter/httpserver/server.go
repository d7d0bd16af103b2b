package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pscheid92/feedbackpulse/internal/adapter/metrics"
	"github.com/pscheid92/feedbackpulse/internal/app"
	"github.com/pscheid92/feedbackpulse/internal/domain"
	"github.com/pscheid92/feedbackpulse/internal/platform/config"
)

type appService interface {
	Register(ctx context.Context, name, email, password string) (*app.Session, error)
	Login(ctx context.Context, email, password string) (*app.Session, error)
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error

	ListChannels(ctx context.Context) ([]domain.Channel, error)
	CreateChannel(ctx context.Context, name string) (*domain.Channel, error)
	GetChannel(ctx context.Context, channelID uuid.UUID) (*domain.Channel, error)

	SubmitFeedback(ctx context.Context, userID uuid.UUID, items []app.FeedbackInput) ([]domain.Feedback, error)
	ListFeedback(ctx context.Context) ([]domain.Feedback, error)
	ListUserFeedback(ctx context.Context, userID uuid.UUID) ([]domain.Feedback, error)
	SearchFeedback(ctx context.Context, text string) ([]domain.Feedback, error)
	FeedbackByChannel(ctx context.Context, channelName string) ([]domain.Feedback, error)
	DeleteFeedback(ctx context.Context, feedbackID uuid.UUID) error
	DeleteOwnFeedback(ctx context.Context, userID, feedbackID uuid.UUID) error
	DeleteAllFeedback(ctx context.Context) (int64, error)

	RecordPerformance(ctx context.Context, snapshot domain.PerformanceSnapshot) (domain.PerformanceSnapshot, error)
	PerformanceHistory(ctx context.Context) (map[string]map[string]any, error)
}

type Server struct {
	echo   *echo.Echo
	config *config.Config

	app            appService
	httpMetrics    *metrics.HTTPMetrics
	metricsHandler http.Handler

	healthChecks []HealthCheck
	startTime    time.Time
}

// NewServer wires routes and middleware. httpMetrics and metricsHandler may be
// nil, in which case request metrics and the scrape endpoint are disabled.
func NewServer(cfg *config.Config, app appService, httpMetrics *metrics.HTTPMetrics, metricsHandler http.Handler, healthChecks []HealthCheck) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:           e,
		config:         cfg,
		app:            app,
		httpMetrics:    httpMetrics,
		metricsHandler: metricsHandler,
		healthChecks:   healthChecks,
		startTime:      time.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	if err := s.echo.Start(":" + s.config.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}
