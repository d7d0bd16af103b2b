package metrics

import "github.com/prometheus/client_golang/prometheus"

// FeedbackMetrics tracks submitted feedback and the scores it received.
type FeedbackMetrics struct {
	Submitted       *prometheus.CounterVec
	Sentiment       prometheus.Histogram
	ScoringDuration prometheus.Histogram
}

func NewFeedbackMetrics(reg prometheus.Registerer) *FeedbackMetrics {
	m := &FeedbackMetrics{
		Submitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "feedback",
			Name:      "submitted_total",
			Help:      "Total number of feedback items submitted, by result.",
		}, []string{"result"}),
		Sentiment: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "feedback",
			Name:      "sentiment_score",
			Help:      "Distribution of sentiment scores assigned to stored feedback.",
			Buckets:   prometheus.LinearBuckets(-1, 0.25, 9),
		}),
		ScoringDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "feedback",
			Name:      "scoring_duration_seconds",
			Help:      "Time spent scoring a single feedback text.",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
	}

	reg.MustRegister(m.Submitted, m.Sentiment, m.ScoringDuration)
	return m
}
