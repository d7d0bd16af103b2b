package app

import (
	"context"
	"fmt"
	"time"

	"github.com/pscheid92/feedbackpulse/internal/domain"
)

// RecordPerformance stores a snapshot. A blank timestamp is replaced by
// the current time in RFC 3339 UTC.
func (s *Service) RecordPerformance(ctx context.Context, snapshot domain.PerformanceSnapshot) (domain.PerformanceSnapshot, error) {
	if snapshot.Metrics == nil {
		return domain.PerformanceSnapshot{}, fmt.Errorf("%w: metrics object is required", domain.ErrInvalidInput)
	}
	if snapshot.Timestamp == "" {
		snapshot.Timestamp = s.clock.Now().UTC().Format(time.RFC3339Nano)
	}

	if err := s.performance.Save(ctx, snapshot); err != nil {
		return domain.PerformanceSnapshot{}, err
	}
	return snapshot, nil
}

func (s *Service) PerformanceHistory(ctx context.Context) (map[string]map[string]any, error) {
	return s.performance.All(ctx)
}
