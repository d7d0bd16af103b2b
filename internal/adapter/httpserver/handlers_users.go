package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/feedbackpulse/internal/domain"
	apperrors "github.com/pscheid92/feedbackpulse/internal/platform/errors"
)

func (s *Server) registerUserRoutes(api *echo.Group) {
	api.GET("/users", s.handleListUsers)
	api.GET("/users/:id", s.handleGetUser)
	api.DELETE("/users/:id", s.handleDeleteUser)
}

func (s *Server) handleListUsers(c echo.Context) error {
	users, err := s.app.ListUsers(c.Request().Context())
	if err != nil {
		return apperrors.InternalError(apperrors.MsgInternal, err)
	}

	out := make([]userDetail, 0, len(users))
	for i := range users {
		out = append(out, toUserDetail(&users[i]))
	}
	return writeJSON(c, http.StatusOK, out)
}

func (s *Server) handleGetUser(c echo.Context) error {
	userID, err := parseIDParam(c, "id", msgUserNotFound)
	if err != nil {
		return err
	}

	user, err := s.app.GetUser(c.Request().Context(), userID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return apperrors.NotFoundError(msgUserNotFound).WithField("id", userID)
	}
	if err != nil {
		return apperrors.InternalError(apperrors.MsgInternal, err)
	}

	return writeJSON(c, http.StatusOK, toUserDetail(user))
}

func (s *Server) handleDeleteUser(c echo.Context) error {
	userID, err := parseIDParam(c, "id", msgUserNotFound)
	if err != nil {
		return err
	}

	err = s.app.DeleteUser(c.Request().Context(), userID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return apperrors.NotFoundError(msgUserNotFound).WithField("id", userID)
	}
	if err != nil {
		return apperrors.InternalError(apperrors.MsgInternal, err)
	}

	return writeJSON(c, http.StatusOK, messageResponse{Message: msgUserDeleted})
}
