package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/feedbackpulse/internal/domain"
	apperrors "github.com/pscheid92/feedbackpulse/internal/platform/errors"
)

const (
	msgRegisterFieldsRequired = "Tous les champs sont requis"
	msgEmailTaken             = "Cet email est déjà utilisé"
	msgPasswordTooLong        = "Le mot de passe ne doit pas dépasser 72 octets"
	msgLoginFieldsRequired    = "All fields are required"
	msgInvalidCredentials     = "Invalid credentials"
	msgUserNotFound           = "User not found"
	msgUserDeleted            = "User deleted successfully"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) registerAuthRoutes(api *echo.Group) {
	loginLimiter := newRateLimiter(s.config.RateLimitPerSecond, s.config.RateLimitBurst)

	api.POST("/auth/register", s.handleRegister)
	api.POST("/auth/login", s.handleLogin, loginLimiter)
	api.GET("/auth/me", s.handleMe, s.requireAuth)
}

func (s *Server) handleRegister(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError(msgRegisterFieldsRequired)
	}

	session, err := s.app.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return apperrors.ValidationError(msgRegisterFieldsRequired)
	case errors.Is(err, domain.ErrPasswordTooLong):
		return apperrors.ValidationError(msgPasswordTooLong)
	case errors.Is(err, domain.ErrEmailTaken):
		return apperrors.ValidationError(msgEmailTaken)
	case err != nil:
		return apperrors.InternalError(apperrors.MsgInternal, err)
	}

	return writeJSON(c, http.StatusCreated, sessionResponse{
		User:  toUserSummary(session.User),
		Token: session.Token,
	})
}

func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError(msgLoginFieldsRequired)
	}

	session, err := s.app.Login(c.Request().Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return apperrors.ValidationError(msgLoginFieldsRequired)
	case errors.Is(err, domain.ErrInvalidCredentials):
		return apperrors.UnauthorizedError(msgInvalidCredentials)
	case err != nil:
		return apperrors.InternalError(apperrors.MsgInternal, err)
	}

	return writeJSON(c, http.StatusOK, sessionResponse{
		User:  toUserSummary(session.User),
		Token: session.Token,
	})
}

func (s *Server) handleMe(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := s.app.CurrentUser(c.Request().Context(), userID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return apperrors.NotFoundError(msgUserNotFound)
	}
	if err != nil {
		return apperrors.InternalError(apperrors.MsgInternal, err)
	}

	return writeJSON(c, http.StatusOK, map[string]any{"user": toUserSummary(user)})
}
