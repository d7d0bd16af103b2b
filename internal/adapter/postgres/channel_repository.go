package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pscheid92/feedbackpulse/internal/domain"
)

const channelColumns = `id, name, created_at`

type ChannelRepo struct {
	pool *pgxpool.Pool
}

func NewChannelRepo(pool *pgxpool.Pool) *ChannelRepo {
	return &ChannelRepo{pool: pool}
}

func scanChannel(row pgx.Row) (*domain.Channel, error) {
	var c domain.Channel
	if err := row.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ChannelRepo) List(ctx context.Context) ([]domain.Channel, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+channelColumns+` FROM channels ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}

	channels, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Channel])
	if err != nil {
		return nil, fmt.Errorf("failed to scan channels: %w", err)
	}
	return channels, nil
}

func (r *ChannelRepo) Create(ctx context.Context, name string) (*domain.Channel, error) {
	channel, err := scanChannel(r.pool.QueryRow(ctx,
		`INSERT INTO channels (name) VALUES ($1) RETURNING `+channelColumns, name))
	if hasPgCode(err, pgUniqueViolation) {
		return nil, domain.ErrChannelExists
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}
	return channel, nil
}

func (r *ChannelRepo) GetByID(ctx context.Context, channelID uuid.UUID) (*domain.Channel, error) {
	channel, err := scanChannel(r.pool.QueryRow(ctx, `SELECT `+channelColumns+` FROM channels WHERE id = $1`, channelID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrChannelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get channel by ID: %w", err)
	}
	return channel, nil
}

func (r *ChannelRepo) GetByName(ctx context.Context, name string) (*domain.Channel, error) {
	channel, err := scanChannel(r.pool.QueryRow(ctx, `SELECT `+channelColumns+` FROM channels WHERE name = $1`, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrChannelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get channel by name: %w", err)
	}
	return channel, nil
}

// GetOrCreate inserts the channel if missing and returns the stored row.
// Concurrent callers racing on the same name all get the same channel.
func (r *ChannelRepo) GetOrCreate(ctx context.Context, name string) (*domain.Channel, error) {
	_, err := r.pool.Exec(ctx, `INSERT INTO channels (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure channel: %w", err)
	}
	return r.GetByName(ctx, name)
}
