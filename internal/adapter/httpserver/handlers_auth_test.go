package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/pscheid92/feedbackpulse/internal/app"
	"github.com/pscheid92/feedbackpulse/internal/domain"
	apperrors "github.com/pscheid92/feedbackpulse/internal/platform/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apperrors.ErrorResponse {
	t.Helper()
	var resp apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// --- register ---

func TestHandleRegister_Success(t *testing.T) {
	user := testUser()
	mock := &mockAppService{
		registerFn: func(_ context.Context, name, email, password string) (*app.Session, error) {
			assert.Equal(t, "Camille", name)
			assert.Equal(t, "camille@example.com", email)
			assert.Equal(t, "s3cret", password)
			return &app.Session{User: user, Token: "jwt-token"}, nil
		},
	}
	srv := newTestServer(t, mock)
	c, rec := newJSONContext(srv, http.MethodPost, "/api/auth/register",
		`{"name":"Camille","email":"camille@example.com","password":"s3cret"}`, nil)

	require.NoError(t, callHandler(srv.handleRegister, c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{
		"user": {"id":"6f0d3c1e-2a7b-4c55-9f3e-0a1b2c3d4e5f","name":"Camille","email":"camille@example.com"},
		"token": "jwt-token"
	}`, rec.Body.String())
}

func TestHandleRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"missing fields", domain.ErrInvalidInput, http.StatusBadRequest, msgRegisterFieldsRequired},
		{"email taken", domain.ErrEmailTaken, http.StatusBadRequest, msgEmailTaken},
		{"password too long", domain.ErrPasswordTooLong, http.StatusBadRequest, msgPasswordTooLong},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError, apperrors.MsgInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockAppService{
				registerFn: func(context.Context, string, string, string) (*app.Session, error) {
					return nil, tt.err
				},
			}
			srv := newTestServer(t, mock)
			c, rec := newJSONContext(srv, http.MethodPost, "/api/auth/register", `{"name":"x"}`, nil)

			require.NoError(t, callHandler(srv.handleRegister, c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rec).Error)
		})
	}
}

func TestHandleRegister_MalformedBody(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})
	c, rec := newJSONContext(srv, http.MethodPost, "/api/auth/register", `{"name":`, nil)

	require.NoError(t, callHandler(srv.handleRegister, c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgRegisterFieldsRequired, decodeError(t, rec).Error)
}

// --- login ---

func TestHandleLogin_Success(t *testing.T) {
	user := testUser()
	mock := &mockAppService{
		loginFn: func(_ context.Context, email, password string) (*app.Session, error) {
			assert.Equal(t, "camille@example.com", email)
			assert.Equal(t, "s3cret", password)
			return &app.Session{User: user, Token: "jwt-token"}, nil
		},
	}
	srv := newTestServer(t, mock)
	c, rec := newJSONContext(srv, http.MethodPost, "/api/auth/login",
		`{"email":"camille@example.com","password":"s3cret"}`, nil)

	require.NoError(t, callHandler(srv.handleLogin, c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"jwt-token"`)
	assert.Contains(t, rec.Body.String(), `"email":"camille@example.com"`)
}

func TestHandleLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"missing fields", domain.ErrInvalidInput, http.StatusBadRequest, msgLoginFieldsRequired},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, msgInvalidCredentials},
		{"store failure", errors.New("timeout"), http.StatusInternalServerError, apperrors.MsgInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockAppService{
				loginFn: func(context.Context, string, string) (*app.Session, error) {
					return nil, tt.err
				},
			}
			srv := newTestServer(t, mock)
			c, rec := newJSONContext(srv, http.MethodPost, "/api/auth/login", `{}`, nil)

			require.NoError(t, callHandler(srv.handleLogin, c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rec).Error)
		})
	}
}

// --- me ---

func TestHandleMe(t *testing.T) {
	user := testUser()
	mock := &mockAppService{
		currentUserFn: func(_ context.Context, id uuid.UUID) (*domain.User, error) {
			assert.Equal(t, user.ID, id)
			return user, nil
		},
	}
	srv := newTestServer(t, mock)
	c, rec := newJSONContext(srv, http.MethodGet, "/api/auth/me", "", &user.ID)

	require.NoError(t, callHandler(srv.handleMe, c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user":{"id":"6f0d3c1e-2a7b-4c55-9f3e-0a1b2c3d4e5f","name":"Camille","email":"camille@example.com"}}`, rec.Body.String())
}

func TestHandleMe_UserGone(t *testing.T) {
	userID := uuid.New()
	mock := &mockAppService{
		currentUserFn: func(context.Context, uuid.UUID) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	srv := newTestServer(t, mock)
	c, rec := newJSONContext(srv, http.MethodGet, "/api/auth/me", "", &userID)

	require.NoError(t, callHandler(srv.handleMe, c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, msgUserNotFound, decodeError(t, rec).Error)
}

func TestMeRoute_RequiresBearerToken(t *testing.T) {
	user := testUser()
	mock := &mockAppService{
		authenticateFn: func(_ context.Context, token string) (*domain.User, error) {
			if token != "good" {
				return nil, domain.ErrInvalidToken
			}
			return user, nil
		},
		currentUserFn: func(context.Context, uuid.UUID) (*domain.User, error) {
			return user, nil
		},
	}
	srv := newTestServer(t, mock)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantMsg    string
	}{
		{"no header", "", http.StatusUnauthorized, msgAuthRequired},
		{"basic scheme", "Basic Zm9vOmJhcg==", http.StatusUnauthorized, msgAuthRequired},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, msgAuthRequired},
		{"invalid token", "Bearer bad", http.StatusUnauthorized, msgInvalidToken},
		{"valid token", "Bearer good", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := serve(srv, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decodeError(t, rec).Error)
			}
		})
	}
}
