package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/pscheid92/feedbackpulse/internal/domain"
	goredis "github.com/redis/go-redis/v9"
)

// performanceKey is the hash holding one JSON document per snapshot
// timestamp.
const performanceKey = "k6_performance"

const pruneScanCount = 100

type MetricsStore struct {
	rdb *goredis.Client
}

var _ domain.MetricsStore = (*MetricsStore)(nil)

func NewMetricsStore(rdb *goredis.Client) *MetricsStore {
	return &MetricsStore{rdb: rdb}
}

func (s *MetricsStore) Save(ctx context.Context, snapshot domain.PerformanceSnapshot) error {
	payload, err := json.Marshal(snapshot.Metrics)
	if err != nil {
		return fmt.Errorf("failed to encode metrics: %w", err)
	}
	if err := s.rdb.HSet(ctx, performanceKey, snapshot.Timestamp, payload).Err(); err != nil {
		return fmt.Errorf("failed to store metrics: %w", err)
	}
	return nil
}

// All returns every stored snapshot keyed by timestamp. Entries that are
// not valid JSON objects are skipped.
func (s *MetricsStore) All(ctx context.Context) (map[string]map[string]any, error) {
	raw, err := s.rdb.HGetAll(ctx, performanceKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load metrics: %w", err)
	}

	result := make(map[string]map[string]any, len(raw))
	for timestamp, value := range raw {
		var m map[string]any
		if err := json.Unmarshal([]byte(value), &m); err != nil || m == nil {
			slog.WarnContext(ctx, "Skipping undecodable performance entry", "timestamp", timestamp, "error", err)
			continue
		}
		result[timestamp] = m
	}
	return result, nil
}

// PruneResult summarizes a Prune pass.
type PruneResult struct {
	Scanned     int
	Expired     int
	Undecodable int
	Kept        int
}

// Removed is the number of entries a Prune pass deleted (or would delete).
func (r PruneResult) Removed() int {
	return r.Expired + r.Undecodable
}

// Prune deletes snapshots taken before cutoff and entries that are not valid
// JSON objects. Fields whose timestamp does not parse as RFC 3339 are kept.
// With dryRun set nothing is deleted.
func (s *MetricsStore) Prune(ctx context.Context, cutoff time.Time, dryRun bool) (PruneResult, error) {
	var result PruneResult
	var cursor uint64

	for {
		fields, next, err := s.rdb.HScan(ctx, performanceKey, cursor, "*", pruneScanCount).Result()
		if err != nil {
			return result, fmt.Errorf("hscan failed: %w", err)
		}

		var doomed []string
		// HSCAN returns a flat field/value list
		for i := 0; i+1 < len(fields); i += 2 {
			timestamp, value := fields[i], fields[i+1]
			result.Scanned++

			var m map[string]any
			if err := json.Unmarshal([]byte(value), &m); err != nil || m == nil {
				slog.DebugContext(ctx, "Undecodable performance entry", "timestamp", timestamp)
				result.Undecodable++
				doomed = append(doomed, timestamp)
				continue
			}

			if ts, err := time.Parse(time.RFC3339Nano, timestamp); err == nil && ts.Before(cutoff) {
				result.Expired++
				doomed = append(doomed, timestamp)
				continue
			}
			result.Kept++
		}

		if !dryRun && len(doomed) > 0 {
			if err := s.rdb.HDel(ctx, performanceKey, doomed...).Err(); err != nil {
				return result, fmt.Errorf("hdel failed: %w", err)
			}
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	return result, nil
}

// NoopMetricsStore is used when Redis is unavailable: writes succeed and
// reads return nothing.
type NoopMetricsStore struct{}

var _ domain.MetricsStore = NoopMetricsStore{}

func (NoopMetricsStore) Save(context.Context, domain.PerformanceSnapshot) error { return nil }

func (NoopMetricsStore) All(context.Context) (map[string]map[string]any, error) {
	return map[string]map[string]any{}, nil
}
