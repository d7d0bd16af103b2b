package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Feedback is a piece of text submitted to a channel, scored on creation.
// UserID is nil once the uploader has been deleted.
type Feedback struct {
	ID          uuid.UUID
	ChannelID   uuid.UUID
	ChannelName string
	UserID      *uuid.UUID
	UserName    string
	Text        string
	Sentiment   float64
	CreatedAt   time.Time
}

type NewFeedback struct {
	ChannelID uuid.UUID
	UserID    uuid.UUID
	Text      string
	Sentiment float64
}

type FeedbackRepository interface {
	Create(ctx context.Context, fb NewFeedback) (*Feedback, error)
	GetByID(ctx context.Context, feedbackID uuid.UUID) (*Feedback, error)
	List(ctx context.Context) ([]Feedback, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Feedback, error)
	ListByChannel(ctx context.Context, channelID uuid.UUID) ([]Feedback, error)
	SearchText(ctx context.Context, text string) ([]Feedback, error)
	Delete(ctx context.Context, feedbackID uuid.UUID) error
	DeleteForUser(ctx context.Context, userID, feedbackID uuid.UUID) error
	DeleteAll(ctx context.Context) (int64, error)
}
