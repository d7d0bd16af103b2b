package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/feedbackpulse/internal/adapter/httpserver"
	"github.com/pscheid92/feedbackpulse/internal/adapter/metrics"
	"github.com/pscheid92/feedbackpulse/internal/adapter/postgres"
	"github.com/pscheid92/feedbackpulse/internal/adapter/redis"
	"github.com/pscheid92/feedbackpulse/internal/app"
	"github.com/pscheid92/feedbackpulse/internal/auth"
	"github.com/pscheid92/feedbackpulse/internal/platform/config"
	"github.com/pscheid92/feedbackpulse/internal/platform/logging"
	"github.com/pscheid92/feedbackpulse/internal/platform/retry"
	"github.com/pscheid92/feedbackpulse/internal/platform/version"
	"github.com/pscheid92/feedbackpulse/internal/sentiment"
	goredis "github.com/redis/go-redis/v9"
)

const (
	startupTimeout  = 60 * time.Second
	shutdownTimeout = 10 * time.Second
)

func runGracefulShutdown(srv *httpserver.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupDB(ctx context.Context, cfg *config.Config, dbMetrics *metrics.DBMetrics) *pgxpool.Pool {
	policy := retry.Startup
	policy.OnRetry = func(attempt int, err error, backoff time.Duration) {
		slog.Warn("Database not ready, retrying", "attempt", attempt, "backoff", backoff, "error", err)
	}

	pool, err := retry.Do(ctx, policy, retry.Transient, func(ctx context.Context) (*pgxpool.Pool, error) {
		return postgres.Connect(ctx, cfg.DatabaseURL, dbMetrics)
	})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := postgres.RunMigrationsWithLock(ctx, pool); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	return pool
}

func healthChecks(pool *pgxpool.Pool, redisClient *goredis.Client) []httpserver.HealthCheck {
	checks := []httpserver.HealthCheck{
		{Name: "postgres", Check: pool.Ping},
	}
	// Redis is optional; a degraded start has no client to probe.
	if redisClient != nil {
		checks = append(checks, httpserver.HealthCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		})
	}
	return checks
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "version", version.Get().String(), "env", cfg.AppEnv, "port", cfg.Port)

	registry := metrics.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)
	dbMetrics := metrics.NewDBMetrics(registry)
	redisMetrics := metrics.NewRedisMetrics(registry)
	feedbackMetrics := metrics.NewFeedbackMetrics(registry)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), startupTimeout)
	pool := setupDB(startupCtx, cfg, dbMetrics)
	defer pool.Close()

	performanceStore, redisClient := redis.Connect(startupCtx, cfg.RedisURL, redisMetrics)
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
	}
	cancelStartup()

	appSvc := app.NewService(app.Deps{
		Users:           postgres.NewUserRepo(pool),
		Channels:        postgres.NewChannelRepo(pool),
		Feedback:        postgres.NewFeedbackRepo(pool),
		Performance:     performanceStore,
		Tokens:          auth.NewJWTIssuer(cfg.JWTSecret, cfg.JWTTTL, clock),
		Passwords:       auth.NewBcryptHasher(cfg.BcryptCost),
		Scorer:          sentiment.NewScorer(nil),
		FeedbackMetrics: feedbackMetrics,
		Clock:           clock,
	})

	srv := httpserver.NewServer(cfg, appSvc, httpMetrics, metrics.Handler(registry), healthChecks(pool, redisClient))

	done := runGracefulShutdown(srv)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
