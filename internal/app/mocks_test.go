package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pscheid92/feedbackpulse/internal/domain"
)

type mockUserRepo struct {
	createFn     func(ctx context.Context, name, email, passwordHash string) (*domain.User, error)
	getByIDFn    func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	listFn       func(ctx context.Context) ([]domain.User, error)
	deleteFn     func(ctx context.Context, userID uuid.UUID) error
}

func (m *mockUserRepo) Create(ctx context.Context, name, email, passwordHash string) (*domain.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, name, email, passwordHash)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockUserRepo) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, userID)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockUserRepo) Delete(ctx context.Context, userID uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID)
	}
	return fmt.Errorf("not implemented")
}

type mockChannelRepo struct {
	listFn        func(ctx context.Context) ([]domain.Channel, error)
	createFn      func(ctx context.Context, name string) (*domain.Channel, error)
	getByIDFn     func(ctx context.Context, channelID uuid.UUID) (*domain.Channel, error)
	getByNameFn   func(ctx context.Context, name string) (*domain.Channel, error)
	getOrCreateFn func(ctx context.Context, name string) (*domain.Channel, error)
}

func (m *mockChannelRepo) List(ctx context.Context) ([]domain.Channel, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockChannelRepo) Create(ctx context.Context, name string) (*domain.Channel, error) {
	if m.createFn != nil {
		return m.createFn(ctx, name)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockChannelRepo) GetByID(ctx context.Context, channelID uuid.UUID) (*domain.Channel, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, channelID)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockChannelRepo) GetByName(ctx context.Context, name string) (*domain.Channel, error) {
	if m.getByNameFn != nil {
		return m.getByNameFn(ctx, name)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockChannelRepo) GetOrCreate(ctx context.Context, name string) (*domain.Channel, error) {
	if m.getOrCreateFn != nil {
		return m.getOrCreateFn(ctx, name)
	}
	return nil, fmt.Errorf("not implemented")
}

type mockFeedbackRepo struct {
	createFn        func(ctx context.Context, fb domain.NewFeedback) (*domain.Feedback, error)
	getByIDFn       func(ctx context.Context, feedbackID uuid.UUID) (*domain.Feedback, error)
	listFn          func(ctx context.Context) ([]domain.Feedback, error)
	listByUserFn    func(ctx context.Context, userID uuid.UUID) ([]domain.Feedback, error)
	listByChannelFn func(ctx context.Context, channelID uuid.UUID) ([]domain.Feedback, error)
	searchTextFn    func(ctx context.Context, text string) ([]domain.Feedback, error)
	deleteFn        func(ctx context.Context, feedbackID uuid.UUID) error
	deleteForUserFn func(ctx context.Context, userID, feedbackID uuid.UUID) error
	deleteAllFn     func(ctx context.Context) (int64, error)
}

func (m *mockFeedbackRepo) Create(ctx context.Context, fb domain.NewFeedback) (*domain.Feedback, error) {
	if m.createFn != nil {
		return m.createFn(ctx, fb)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockFeedbackRepo) GetByID(ctx context.Context, feedbackID uuid.UUID) (*domain.Feedback, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, feedbackID)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockFeedbackRepo) List(ctx context.Context) ([]domain.Feedback, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockFeedbackRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Feedback, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockFeedbackRepo) ListByChannel(ctx context.Context, channelID uuid.UUID) ([]domain.Feedback, error) {
	if m.listByChannelFn != nil {
		return m.listByChannelFn(ctx, channelID)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockFeedbackRepo) SearchText(ctx context.Context, text string) ([]domain.Feedback, error) {
	if m.searchTextFn != nil {
		return m.searchTextFn(ctx, text)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockFeedbackRepo) Delete(ctx context.Context, feedbackID uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, feedbackID)
	}
	return fmt.Errorf("not implemented")
}

func (m *mockFeedbackRepo) DeleteForUser(ctx context.Context, userID, feedbackID uuid.UUID) error {
	if m.deleteForUserFn != nil {
		return m.deleteForUserFn(ctx, userID, feedbackID)
	}
	return fmt.Errorf("not implemented")
}

func (m *mockFeedbackRepo) DeleteAll(ctx context.Context) (int64, error) {
	if m.deleteAllFn != nil {
		return m.deleteAllFn(ctx)
	}
	return 0, fmt.Errorf("not implemented")
}

type mockMetricsStore struct {
	saveFn func(ctx context.Context, snapshot domain.PerformanceSnapshot) error
	allFn  func(ctx context.Context) (map[string]map[string]any, error)
}

func (m *mockMetricsStore) Save(ctx context.Context, snapshot domain.PerformanceSnapshot) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, snapshot)
	}
	return nil
}

func (m *mockMetricsStore) All(ctx context.Context) (map[string]map[string]any, error) {
	if m.allFn != nil {
		return m.allFn(ctx)
	}
	return map[string]map[string]any{}, nil
}

// fakeTokens issues the user ID itself as the token.
type fakeTokens struct{}

func (fakeTokens) Issue(userID uuid.UUID) (string, error) { return "tok-" + userID.String(), nil }

func (fakeTokens) Verify(token string) (uuid.UUID, error) {
	id, ok := strings.CutPrefix(token, "tok-")
	if !ok {
		return uuid.Nil, fmt.Errorf("bad token")
	}
	return uuid.Parse(id)
}

// fakeHasher prefixes passwords instead of hashing them.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hash:" + password, nil }

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hash:"+password {
		return fmt.Errorf("mismatch")
	}
	return nil
}

type scorerFunc func(text string) float64

func (f scorerFunc) Score(text string) float64 { return f(text) }
