package domain

import "context"

// PerformanceSnapshot is a set of client-reported performance metrics
// (typically from load-test runs) keyed by the time they were taken.
type PerformanceSnapshot struct {
	Timestamp string
	Metrics   map[string]any
}

// MetricsStore persists performance snapshots in the cache.
type MetricsStore interface {
	Save(ctx context.Context, snapshot PerformanceSnapshot) error
	All(ctx context.Context) (map[string]map[string]any, error)
}
