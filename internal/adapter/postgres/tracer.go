package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pscheid92/feedbackpulse/internal/adapter/metrics"
)

// queryTracer implements pgx.QueryTracer to collect query metrics.
type queryTracer struct {
	metrics *metrics.DBMetrics
}

var _ pgx.QueryTracer = (*queryTracer)(nil)

type queryContextKey struct{}

type queryContext struct {
	startTime time.Time
	queryName string
}

func newQueryTracer(m *metrics.DBMetrics) *queryTracer {
	return &queryTracer{metrics: m}
}

func (t *queryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	qctx := queryContext{
		startTime: time.Now(),
		queryName: queryName(data.SQL),
	}
	return context.WithValue(ctx, queryContextKey{}, qctx)
}

func (t *queryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	qctx, ok := ctx.Value(queryContextKey{}).(queryContext)
	if !ok {
		return
	}

	t.metrics.QueryDuration.WithLabelValues(qctx.queryName).Observe(time.Since(qctx.startTime).Seconds())
	if data.Err != nil {
		t.metrics.Errors.WithLabelValues(qctx.queryName).Inc()
	}
}

// queryName reduces a statement to its leading keyword to keep label
// cardinality bounded. CTEs report the statement they wrap.
func queryName(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "unknown"
	}

	keyword := strings.ToUpper(fields[0])
	if keyword != "WITH" {
		return keyword
	}
	for _, f := range fields[1:] {
		switch kw := strings.ToUpper(strings.TrimLeft(f, "(")); kw {
		case "INSERT", "UPDATE", "DELETE":
			return kw
		}
	}
	return "SELECT"
}
