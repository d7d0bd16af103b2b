package httpserver

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pscheid92/feedbackpulse/internal/domain"
	"github.com/pscheid92/feedbackpulse/internal/platform/correlation"
	apperrors "github.com/pscheid92/feedbackpulse/internal/platform/errors"
)

const (
	msgAuthRequired    = "Authentication required"
	msgInvalidToken    = "Invalid or expired token"
	msgPayloadTooLarge = "Le corps de la requête est trop volumineux"
	userIDKey          = "userID"
)

// correlationMiddleware reuses a well-formed X-Request-ID from the client and
// echoes the effective ID back on the response.
func correlationMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := correlation.FromHeader(c.Request().Header.Get(correlation.Header))
		ctx := correlation.WithID(c.Request().Context(), id)
		c.SetRequest(c.Request().WithContext(ctx))
		c.Response().Header().Set(correlation.Header, id)
		return next(c)
	}
}

func ErrorHandlingMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				return err
			}

			structuredErr := apperrors.AsStructuredError(err)
			logError(c, structuredErr)

			if err := c.JSON(structuredErr.HTTPStatus(), structuredErr.ToResponse()); err != nil {
				return fmt.Errorf("failed to write error response: %w", err)
			}
			return nil
		}
	}
}

func logError(c echo.Context, err *apperrors.Error) {
	attrs := []any{
		"error_type", err.Type,
		"message", err.Message,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"status", err.HTTPStatus(),
	}

	for k, v := range err.Context {
		attrs = append(attrs, k, v)
	}

	if userID := c.Get(userIDKey); userID != nil {
		attrs = append(attrs, "user_id", userID)
	}

	ctx := c.Request().Context()
	switch err.Type {
	case apperrors.TypeValidation:
		slog.InfoContext(ctx, "Validation error", attrs...)
	case apperrors.TypeUnauthorized:
		slog.InfoContext(ctx, "Unauthorized", attrs...)
	case apperrors.TypeNotFound:
		slog.InfoContext(ctx, "Not found", attrs...)
	case apperrors.TypeConflict:
		slog.WarnContext(ctx, "Conflict", attrs...)
	case apperrors.TypeTooLarge:
		slog.InfoContext(ctx, "Payload too large", attrs...)
	case apperrors.TypeRateLimited:
		slog.WarnContext(ctx, "Rate limit exceeded", attrs...)
	case apperrors.TypeInternal:
		if err.Cause != nil {
			attrs = append(attrs, "cause", err.Cause)
		}
		slog.ErrorContext(ctx, "Internal error", attrs...)
	case apperrors.TypeExternal:
		if err.Cause != nil {
			attrs = append(attrs, "cause", err.Cause)
		}
		slog.ErrorContext(ctx, "External service error", attrs...)
	default:
		slog.ErrorContext(ctx, "Unknown error type", attrs...)
	}
}

// requireAuth resolves the bearer token to a user and stores its ID under
// "userID" on the context. Tokens of deleted users are rejected.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return apperrors.UnauthorizedError(msgAuthRequired)
		}

		user, err := s.app.Authenticate(c.Request().Context(), strings.TrimSpace(token))
		if errors.Is(err, domain.ErrInvalidToken) {
			return apperrors.UnauthorizedError(msgInvalidToken)
		}
		if err != nil {
			return err
		}

		c.Set(userIDKey, user.ID)
		return next(c)
	}
}

// currentUserID returns the ID set by requireAuth.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(userIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, apperrors.UnauthorizedError(msgAuthRequired)
	}
	return userID, nil
}

// parseIDParam reads a UUID path parameter. Malformed IDs are reported as
// not found, since no row can carry them.
func parseIDParam(c echo.Context, name, notFoundMsg string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperrors.NotFoundError(notFoundMsg).WithField(name, c.Param(name))
	}
	return id, nil
}

func writeJSON(c echo.Context, status int, body any) error {
	if err := c.JSON(status, body); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

// bodyLimit reports an oversized body, declared or discovered while reading,
// as a structured 413.
func bodyLimit(limit string) echo.MiddlewareFunc {
	limiter := middleware.BodyLimit(limit)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		limited := limiter(next)
		return func(c echo.Context) error {
			err := limited(c)
			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) && httpErr.Code == http.StatusRequestEntityTooLarge {
				return apperrors.PayloadTooLargeError(msgPayloadTooLarge).WithField("limit", limit)
			}
			return err
		}
	}
}
