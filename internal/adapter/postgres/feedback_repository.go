package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pscheid92/feedbackpulse/internal/domain"
)

// feedbackSelect joins the channel name and uploader name; the column order
// must match scanFeedback. Callers alias the feedback relation as f.
const feedbackSelect = `
	SELECT f.id, f.channel_id, c.name, f.user_id, COALESCE(u.name, ''), f.text, f.sentiment, f.created_at
	FROM %s f
	JOIN channels c ON c.id = f.channel_id
	LEFT JOIN users u ON u.id = f.user_id`

var selectFeedback = fmt.Sprintf(feedbackSelect, "feedback")

type FeedbackRepo struct {
	pool *pgxpool.Pool
}

func NewFeedbackRepo(pool *pgxpool.Pool) *FeedbackRepo {
	return &FeedbackRepo{pool: pool}
}

func scanFeedback(row pgx.Row) (*domain.Feedback, error) {
	var fb domain.Feedback
	err := row.Scan(&fb.ID, &fb.ChannelID, &fb.ChannelName, &fb.UserID, &fb.UserName, &fb.Text, &fb.Sentiment, &fb.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &fb, nil
}

func collectFeedback(rows pgx.Rows) ([]domain.Feedback, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Feedback, error) {
		fb, err := scanFeedback(row)
		if err != nil {
			return domain.Feedback{}, err
		}
		return *fb, nil
	})
}

func (r *FeedbackRepo) Create(ctx context.Context, nf domain.NewFeedback) (*domain.Feedback, error) {
	query := `WITH f AS (
		INSERT INTO feedback (channel_id, user_id, text, sentiment)
		VALUES ($1, $2, $3, $4)
		RETURNING *
	)` + fmt.Sprintf(feedbackSelect, "f")

	fb, err := scanFeedback(r.pool.QueryRow(ctx, query, nf.ChannelID, nf.UserID, nf.Text, nf.Sentiment))
	if hasPgCode(err, pgForeignKeyViolation) {
		return nil, domain.ErrChannelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}
	return fb, nil
}

func (r *FeedbackRepo) GetByID(ctx context.Context, feedbackID uuid.UUID) (*domain.Feedback, error) {
	fb, err := scanFeedback(r.pool.QueryRow(ctx, selectFeedback+` WHERE f.id = $1`, feedbackID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrFeedbackNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}
	return fb, nil
}

func (r *FeedbackRepo) list(ctx context.Context, op, where string, args ...any) ([]domain.Feedback, error) {
	rows, err := r.pool.Query(ctx, selectFeedback+where+` ORDER BY f.created_at DESC, f.id`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	feedback, err := collectFeedback(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan feedback: %w", err)
	}
	return feedback, nil
}

// List returns all feedback, newest first.
func (r *FeedbackRepo) List(ctx context.Context) ([]domain.Feedback, error) {
	return r.list(ctx, "list feedback", "")
}

func (r *FeedbackRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Feedback, error) {
	return r.list(ctx, "list feedback by user", ` WHERE f.user_id = $1`, userID)
}

func (r *FeedbackRepo) ListByChannel(ctx context.Context, channelID uuid.UUID) ([]domain.Feedback, error) {
	return r.list(ctx, "list feedback by channel", ` WHERE f.channel_id = $1`, channelID)
}

// SearchText matches feedback containing text, case-insensitively.
// LIKE wildcards in text are matched literally.
func (r *FeedbackRepo) SearchText(ctx context.Context, text string) ([]domain.Feedback, error) {
	return r.list(ctx, "search feedback", ` WHERE f.text ILIKE '%' || $1 || '%'`, escapeLike(text))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *FeedbackRepo) Delete(ctx context.Context, feedbackID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM feedback WHERE id = $1`, feedbackID)
	if err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFeedbackNotFound
	}
	return nil
}

// DeleteForUser deletes feedbackID only if userID uploaded it. Feedback owned
// by someone else is reported as not found.
func (r *FeedbackRepo) DeleteForUser(ctx context.Context, userID, feedbackID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM feedback WHERE id = $1 AND user_id = $2`, feedbackID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete feedback for user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFeedbackNotFound
	}
	return nil
}

func (r *FeedbackRepo) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM feedback`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete all feedback: %w", err)
	}
	return tag.RowsAffected(), nil
}
