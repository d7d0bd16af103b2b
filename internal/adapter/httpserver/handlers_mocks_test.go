package httpserver

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pscheid92/feedbackpulse/internal/app"
	"github.com/pscheid92/feedbackpulse/internal/domain"
	"github.com/pscheid92/feedbackpulse/internal/platform/config"
)

var errNotImplemented = errors.New("not implemented")

// --- Mock implementations ---

type mockAppService struct {
	registerFn          func(ctx context.Context, name, email, password string) (*app.Session, error)
	loginFn             func(ctx context.Context, email, password string) (*app.Session, error)
	authenticateFn      func(ctx context.Context, token string) (*domain.User, error)
	currentUserFn       func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	listUsersFn         func(ctx context.Context) ([]domain.User, error)
	getUserFn           func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	deleteUserFn        func(ctx context.Context, userID uuid.UUID) error
	listChannelsFn      func(ctx context.Context) ([]domain.Channel, error)
	createChannelFn     func(ctx context.Context, name string) (*domain.Channel, error)
	getChannelFn        func(ctx context.Context, channelID uuid.UUID) (*domain.Channel, error)
	submitFeedbackFn    func(ctx context.Context, userID uuid.UUID, items []app.FeedbackInput) ([]domain.Feedback, error)
	listFeedbackFn      func(ctx context.Context) ([]domain.Feedback, error)
	listUserFeedbackFn  func(ctx context.Context, userID uuid.UUID) ([]domain.Feedback, error)
	searchFeedbackFn    func(ctx context.Context, text string) ([]domain.Feedback, error)
	feedbackByChannelFn func(ctx context.Context, channelName string) ([]domain.Feedback, error)
	deleteFeedbackFn    func(ctx context.Context, feedbackID uuid.UUID) error
	deleteOwnFeedbackFn func(ctx context.Context, userID, feedbackID uuid.UUID) error
	deleteAllFeedbackFn func(ctx context.Context) (int64, error)
	recordPerformanceFn func(ctx context.Context, snapshot domain.PerformanceSnapshot) (domain.PerformanceSnapshot, error)
	performanceFn       func(ctx context.Context) (map[string]map[string]any, error)
}

func (m *mockAppService) Register(ctx context.Context, name, email, password string) (*app.Session, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, name, email, password)
	}
	return nil, errNotImplemented
}

func (m *mockAppService) Login(ctx context.Context, email, password string) (*app.Session, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return nil, errNotImplemented
}

func (m *mockAppService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, token)
	}
	return nil, domain.ErrInvalidToken
}

func (m *mockAppService) CurrentUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if m.currentUserFn != nil {
		return m.currentUserFn(ctx, userID)
	}
	return nil, errNotImplemented
}

func (m *mockAppService) ListUsers(ctx context.Context) ([]domain.User, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(ctx)
	}
	return nil, errNotImplemented
}

func (m *mockAppService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if m.getUserFn != nil {
		return m.getUserFn(ctx, userID)
	}
	return nil, errNotImplemented
}

func (m *mockAppService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(ctx, userID)
	}
	return errNotImplemented
}

func (m *mockAppService) ListChannels(ctx context.Context) ([]domain.Channel, error) {
	if m.listChannelsFn != nil {
		return m.listChannelsFn(ctx)
	}
	return nil, errNotImplemented
}

func (m *mockAppService) CreateChannel(ctx context.Context, name string) (*domain.Channel, error) {
	if m.createChannelFn != nil {
		return m.createChannelFn(ctx, name)
	}
	return nil, errNotImplemented
}

func (m *mockAppService) GetChannel(ctx context.Context, channelID uuid.UUID) (*domain.Channel, error) {
	if m.getChannelFn != nil {
		return m.getChannelFn(ctx, channelID)
	}
	return nil, errNotImplemented
}

func (m *mockAppService) SubmitFeedback(ctx context.Context, userID uuid.UUID, items []app.FeedbackInput) ([]domain.Feedback, error) {
	if m.submitFeedbackFn != nil {
		return m.submitFeedbackFn(ctx, userID, items)
	}
	return nil, errNotImplemented
}

func (m *mockAppService) ListFeedback(ctx context.Context) ([]domain.Feedback, error) {
	if m.listFeedbackFn != nil {
		return m.listFeedbackFn(ctx)
	}
	return nil, errNotImplemented
}

func (m *mockAppService) ListUserFeedback(ctx context.Context, userID uuid.UUID) ([]domain.Feedback, error) {
	if m.listUserFeedbackFn != nil {
		return m.listUserFeedbackFn(ctx, userID)
	}
	return nil, errNotImplemented
}

func (m *mockAppService) SearchFeedback(ctx context.Context, text string) ([]domain.Feedback, error) {
	if m.searchFeedbackFn != nil {
		return m.searchFeedbackFn(ctx, text)
	}
	return nil, errNotImplemented
}

func (m *mockAppService) FeedbackByChannel(ctx context.Context, channelName string) ([]domain.Feedback, error) {
	if m.feedbackByChannelFn != nil {
		return m.feedbackByChannelFn(ctx, channelName)
	}
	return nil, errNotImplemented
}

func (m *mockAppService) DeleteFeedback(ctx context.Context, feedbackID uuid.UUID) error {
	if m.deleteFeedbackFn != nil {
		return m.deleteFeedbackFn(ctx, feedbackID)
	}
	return errNotImplemented
}

func (m *mockAppService) DeleteOwnFeedback(ctx context.Context, userID, feedbackID uuid.UUID) error {
	if m.deleteOwnFeedbackFn != nil {
		return m.deleteOwnFeedbackFn(ctx, userID, feedbackID)
	}
	return errNotImplemented
}

func (m *mockAppService) DeleteAllFeedback(ctx context.Context) (int64, error) {
	if m.deleteAllFeedbackFn != nil {
		return m.deleteAllFeedbackFn(ctx)
	}
	return 0, errNotImplemented
}

func (m *mockAppService) RecordPerformance(ctx context.Context, snapshot domain.PerformanceSnapshot) (domain.PerformanceSnapshot, error) {
	if m.recordPerformanceFn != nil {
		return m.recordPerformanceFn(ctx, snapshot)
	}
	return domain.PerformanceSnapshot{}, errNotImplemented
}

func (m *mockAppService) PerformanceHistory(ctx context.Context) (map[string]map[string]any, error) {
	if m.performanceFn != nil {
		return m.performanceFn(ctx)
	}
	return nil, errNotImplemented
}

// --- Test helpers ---

var testTime = time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC)

func newTestServer(t *testing.T, app appService, opts ...func(*Server)) *Server {
	t.Helper()

	srv := &Server{
		echo: echo.New(),
		config: &config.Config{
			Port:               "0",
			CORSOrigin:         "http://localhost:5173",
			RateLimitPerSecond: 100,
			RateLimitBurst:     100,
		},
		app:       app,
		startTime: time.Now(),
	}

	for _, opt := range opts {
		opt(srv)
	}

	// Register routes so endpoints are available for testing
	srv.registerRoutes()

	return srv
}

func withHealthChecks(checks ...HealthCheck) func(*Server) {
	return func(s *Server) {
		s.healthChecks = checks
	}
}

func withConfig(mutate func(*config.Config)) func(*Server) {
	return func(s *Server) {
		mutate(s.config)
	}
}

// callHandler wraps a handler with error middleware, matching production behavior
func callHandler(handler echo.HandlerFunc, c echo.Context) error {
	return ErrorHandlingMiddleware()(handler)(c)
}

// newJSONContext builds a context for a JSON request, optionally already
// authenticated as userID.
func newJSONContext(srv *Server, method, target, body string, userID *uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := srv.echo.NewContext(req, rec)
	if userID != nil {
		c.Set(userIDKey, *userID)
	}
	return c, rec
}

// serve sends a request through the full router and middleware chain.
func serve(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}

func testUser() *domain.User {
	return &domain.User{
		ID:        uuid.MustParse("6f0d3c1e-2a7b-4c55-9f3e-0a1b2c3d4e5f"),
		Name:      "Camille",
		Email:     "camille@example.com",
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func testFeedback(userID *uuid.UUID, userName string) domain.Feedback {
	return domain.Feedback{
		ID:          uuid.MustParse("0b7e4a52-93c1-4d2e-8f60-5a4b3c2d1e0f"),
		ChannelID:   uuid.MustParse("c4a1f3d2-7b6e-4e8d-9a0b-1c2d3e4f5a6b"),
		ChannelName: "support",
		UserID:      userID,
		UserName:    userName,
		Text:        "Très bon service",
		Sentiment:   0.75,
		CreatedAt:   testTime,
	}
}

func newRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}
