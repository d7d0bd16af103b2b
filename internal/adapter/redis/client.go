package redis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pscheid92/feedbackpulse/internal/adapter/metrics"
	"github.com/pscheid92/feedbackpulse/internal/domain"
	goredis "github.com/redis/go-redis/v9"
)

// NewClient parses redisURL, installs the metrics and circuit breaker hooks
// and pings the server. A nil m skips the metrics hook.
func NewClient(ctx context.Context, redisURL string, m *metrics.RedisMetrics) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := goredis.NewClient(opts)
	if m != nil {
		client.AddHook(newMetricsHook(m))
	}
	client.AddHook(NewCircuitBreakerHook(m))

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	slog.Info("Redis connected", "addr", opts.Addr, "db", opts.DB)
	return client, nil
}

// Connect returns the Redis-backed metrics store, or a no-op store when
// Redis is unreachable at startup. The returned client is nil in the
// degraded case.
func Connect(ctx context.Context, redisURL string, m *metrics.RedisMetrics) (domain.MetricsStore, *goredis.Client) {
	client, err := NewClient(ctx, redisURL, m)
	if err != nil {
		slog.Warn("Redis unavailable, performance metrics will not be stored", "error", err)
		return NoopMetricsStore{}, nil
	}
	return NewMetricsStore(client), client
}
