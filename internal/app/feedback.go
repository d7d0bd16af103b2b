package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pscheid92/feedbackpulse/internal/domain"
)

// FeedbackInput is one item of a submission. Channels are created on first use.
type FeedbackInput struct {
	Channel string
	Text    string
}

func (s *Service) ListChannels(ctx context.Context) ([]domain.Channel, error) {
	return s.channels.List(ctx)
}

func (s *Service) CreateChannel(ctx context.Context, name string) (*domain.Channel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: channel name is required", domain.ErrInvalidInput)
	}
	return s.channels.Create(ctx, name)
}

func (s *Service) GetChannel(ctx context.Context, channelID uuid.UUID) (*domain.Channel, error) {
	return s.channels.GetByID(ctx, channelID)
}

// SubmitFeedback validates every item before storing any of them, then
// scores and stores them in order.
func (s *Service) SubmitFeedback(ctx context.Context, userID uuid.UUID, items []FeedbackInput) ([]domain.Feedback, error) {
	if len(items) == 0 {
		s.countSubmission("rejected", 1)
		return nil, fmt.Errorf("%w: no feedback provided", domain.ErrInvalidInput)
	}
	for i, item := range items {
		if strings.TrimSpace(item.Channel) == "" || strings.TrimSpace(item.Text) == "" {
			s.countSubmission("rejected", len(items))
			return nil, fmt.Errorf("%w: item %d needs a channel and a text", domain.ErrInvalidInput, i)
		}
	}

	created := make([]domain.Feedback, 0, len(items))
	for _, item := range items {
		channel, err := s.ensureChannel(ctx, strings.TrimSpace(item.Channel))
		if err != nil {
			return nil, err
		}

		score := s.score(item.Text)
		fb, err := s.feedback.Create(ctx, domain.NewFeedback{
			ChannelID: channel.ID,
			UserID:    userID,
			Text:      item.Text,
			Sentiment: score,
		})
		if err != nil {
			return nil, err
		}

		if s.metrics != nil {
			s.metrics.Sentiment.Observe(score)
		}
		created = append(created, *fb)
	}

	s.countSubmission("created", len(created))
	slog.InfoContext(ctx, "Feedback submitted", "user_id", userID, "count", len(created))
	return created, nil
}

// ensureChannel collapses concurrent get-or-create calls for the same name.
// The shared call runs detached from the caller's cancellation.
func (s *Service) ensureChannel(ctx context.Context, name string) (*domain.Channel, error) {
	shared := context.WithoutCancel(ctx)
	v, err, _ := s.channelGroup.Do(name, func() (any, error) {
		return s.channels.GetOrCreate(shared, name)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Channel), nil
}

func (s *Service) score(text string) float64 {
	start := s.clock.Now()
	score := s.scorer.Score(text)
	if s.metrics != nil {
		s.metrics.ScoringDuration.Observe(s.clock.Since(start).Seconds())
	}
	return score
}

func (s *Service) countSubmission(result string, n int) {
	if s.metrics != nil {
		s.metrics.Submitted.WithLabelValues(result).Add(float64(n))
	}
}

func (s *Service) ListFeedback(ctx context.Context) ([]domain.Feedback, error) {
	return s.feedback.List(ctx)
}

func (s *Service) ListUserFeedback(ctx context.Context, userID uuid.UUID) ([]domain.Feedback, error) {
	return s.feedback.ListByUser(ctx, userID)
}

func (s *Service) SearchFeedback(ctx context.Context, text string) ([]domain.Feedback, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: search text is required", domain.ErrInvalidInput)
	}
	return s.feedback.SearchText(ctx, text)
}

func (s *Service) FeedbackByChannel(ctx context.Context, channelName string) ([]domain.Feedback, error) {
	if strings.TrimSpace(channelName) == "" {
		return nil, fmt.Errorf("%w: channel name is required", domain.ErrInvalidInput)
	}

	channel, err := s.channels.GetByName(ctx, channelName)
	if err != nil {
		return nil, err
	}
	return s.feedback.ListByChannel(ctx, channel.ID)
}

func (s *Service) DeleteFeedback(ctx context.Context, feedbackID uuid.UUID) error {
	return s.feedback.Delete(ctx, feedbackID)
}

// DeleteOwnFeedback deletes feedback only if userID uploaded it.
func (s *Service) DeleteOwnFeedback(ctx context.Context, userID, feedbackID uuid.UUID) error {
	return s.feedback.DeleteForUser(ctx, userID, feedbackID)
}

func (s *Service) DeleteAllFeedback(ctx context.Context) (int64, error) {
	count, err := s.feedback.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	slog.WarnContext(ctx, "All feedback deleted", "count", count)
	return count, nil
}
