package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Channel struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

type ChannelRepository interface {
	List(ctx context.Context) ([]Channel, error)
	Create(ctx context.Context, name string) (*Channel, error)
	GetByID(ctx context.Context, channelID uuid.UUID) (*Channel, error)
	GetByName(ctx context.Context, name string) (*Channel, error)
	// GetOrCreate returns the channel with the given name, creating it if needed.
	GetOrCreate(ctx context.Context, name string) (*Channel, error)
}
