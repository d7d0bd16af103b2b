// Command prune-performance trims the k6_performance hash in Redis. It drops
// snapshots older than a retention window and entries that no longer decode.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/pscheid92/feedbackpulse/internal/adapter/redis"
	"github.com/pscheid92/feedbackpulse/internal/platform/logging"
)

func main() {
	var (
		redisURL  = flag.String("redis", os.Getenv("REDIS_URL"), "Redis URL (or set REDIS_URL env)")
		olderThan = flag.Duration("older-than", 30*24*time.Hour, "Delete snapshots older than this")
		dryRun    = flag.Bool("dry-run", false, "Dry run mode (don't write to Redis)")
		verbose   = flag.Bool("verbose", false, "Verbose logging")
	)
	flag.Parse()

	if *redisURL == "" {
		log.Fatal("Redis URL required (--redis or REDIS_URL env)")
	}
	if *olderThan <= 0 {
		log.Fatal("--older-than must be positive")
	}

	level := "info"
	if *verbose {
		level = "debug"
	}
	logging.InitLogger(level, "text")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	client, err := redis.NewClient(ctx, *redisURL, nil)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer func() { _ = client.Close() }()
	slog.Info("Connected to Redis", "url", sanitizeURL(*redisURL))

	cutoff := time.Now().UTC().Add(-*olderThan)
	slog.Info("Starting prune", "cutoff", cutoff.Format(time.RFC3339), "dry_run", *dryRun)

	start := time.Now()
	result, err := redis.NewMetricsStore(client).Prune(ctx, cutoff, *dryRun)
	if err != nil {
		log.Fatalf("Prune failed: %v", err)
	}

	slog.Info("Prune summary",
		"scanned", result.Scanned,
		"expired", result.Expired,
		"undecodable", result.Undecodable,
		"kept", result.Kept,
		"removed", result.Removed(),
		"dry_run", *dryRun,
		"duration_ms", time.Since(start).Milliseconds())
}

// sanitizeURL hides the password of a Redis URL for logging.
func sanitizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<unparseable>"
	}
	return u.Redacted()
}
