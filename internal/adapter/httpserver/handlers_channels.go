package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/feedbackpulse/internal/domain"
	apperrors "github.com/pscheid92/feedbackpulse/internal/platform/errors"
)

const (
	msgChannelNameRequired = "Le nom du canal est requis"
	msgChannelExists       = "Ce canal existe déjà"
	msgChannelNotFound     = "Canal non trouvé"
)

type createChannelRequest struct {
	Name string `json:"name"`
}

func (s *Server) registerChannelRoutes(api *echo.Group) {
	api.GET("/channels", s.handleListChannels)
	api.POST("/channels", s.handleCreateChannel)
	api.GET("/channels/:id", s.handleGetChannel)
}

func (s *Server) handleListChannels(c echo.Context) error {
	channels, err := s.app.ListChannels(c.Request().Context())
	if err != nil {
		return apperrors.InternalError(apperrors.MsgInternal, err)
	}

	out := make([]channelResponse, 0, len(channels))
	for i := range channels {
		out = append(out, toChannelResponse(&channels[i]))
	}
	return writeJSON(c, http.StatusOK, map[string]any{"channels": out})
}

func (s *Server) handleCreateChannel(c echo.Context) error {
	var req createChannelRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError(msgChannelNameRequired)
	}

	channel, err := s.app.CreateChannel(c.Request().Context(), req.Name)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return apperrors.ValidationError(msgChannelNameRequired)
	case errors.Is(err, domain.ErrChannelExists):
		return apperrors.ValidationError(msgChannelExists).WithField("name", req.Name)
	case err != nil:
		return apperrors.InternalError(apperrors.MsgInternal, err)
	}

	return writeJSON(c, http.StatusCreated, map[string]any{"channel": toChannelResponse(channel)})
}

func (s *Server) handleGetChannel(c echo.Context) error {
	channelID, err := parseIDParam(c, "id", msgChannelNotFound)
	if err != nil {
		return err
	}

	channel, err := s.app.GetChannel(c.Request().Context(), channelID)
	if errors.Is(err, domain.ErrChannelNotFound) {
		return apperrors.NotFoundError(msgChannelNotFound).WithField("id", channelID)
	}
	if err != nil {
		return apperrors.InternalError(apperrors.MsgInternal, err)
	}

	return writeJSON(c, http.StatusOK, map[string]any{"channel": toChannelResponse(channel)})
}
