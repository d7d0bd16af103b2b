package app

import (
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/feedbackpulse/internal/adapter/metrics"
	"github.com/pscheid92/feedbackpulse/internal/domain"
	"golang.org/x/sync/singleflight"
)

type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, error)
	Verify(token string) (uuid.UUID, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil on match and a non-nil error otherwise.
	Compare(hash, password string) error
}

type Scorer interface {
	Score(text string) float64
}

// Deps bundles the collaborators of Service. FeedbackMetrics may be nil.
type Deps struct {
	Users           domain.UserRepository
	Channels        domain.ChannelRepository
	Feedback        domain.FeedbackRepository
	Performance     domain.MetricsStore
	Tokens          TokenIssuer
	Passwords       PasswordHasher
	Scorer          Scorer
	FeedbackMetrics *metrics.FeedbackMetrics
	Clock           clockwork.Clock
}

// Service is the application layer. It is the only component that
// references multiple domain components.
type Service struct {
	users        domain.UserRepository
	channels     domain.ChannelRepository
	feedback     domain.FeedbackRepository
	performance  domain.MetricsStore
	tokens       TokenIssuer
	passwords    PasswordHasher
	scorer       Scorer
	metrics      *metrics.FeedbackMetrics
	clock        clockwork.Clock
	channelGroup singleflight.Group
}

func NewService(d Deps) *Service {
	clock := d.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Service{
		users:       d.Users,
		channels:    d.Channels,
		feedback:    d.Feedback,
		performance: d.Performance,
		tokens:      d.Tokens,
		passwords:   d.Passwords,
		scorer:      d.Scorer,
		metrics:     d.FeedbackMetrics,
		clock:       clock,
	}
}
