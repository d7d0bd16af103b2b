package httpserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/feedbackpulse/internal/app"
	"github.com/pscheid92/feedbackpulse/internal/domain"
	apperrors "github.com/pscheid92/feedbackpulse/internal/platform/errors"
)

const (
	msgNoFeedback          = "Aucune donnée de feedback fournie"
	msgFeedbackFields      = "Le canal et le texte sont requis pour chaque feedback"
	msgSearchTextRequired  = "Le paramètre de recherche est requis"
	msgFeedbackNotFound    = "Feedback non trouvé"
	msgFeedbackDeleted     = "Feedback supprimé avec succès"
	msgFeedbackBulkDeleted = "%d feedbacks supprimés avec succès"
	feedbackBodyLimit      = "1M"
)

type feedbackItem struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

type bulkDeleteResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

func (s *Server) registerFeedbackRoutes(api *echo.Group) {
	api.POST("/feedback", s.handleSubmitFeedback, s.requireAuth, bodyLimit(feedbackBodyLimit))
	api.GET("/feedback", s.handleListFeedback, s.requireAuth)
	api.GET("/feedback/mine", s.handleListOwnFeedback, s.requireAuth)
	api.GET("/feedback/search", s.handleSearchFeedback, s.requireAuth)
	api.GET("/feedback/channel/:channelName", s.handleFeedbackByChannel, s.requireAuth)
	api.POST("/feedback/delete/:id", s.handleDeleteOwnFeedback, s.requireAuth)
	api.DELETE("/feedback/:id", s.handleDeleteFeedback)
	api.DELETE("/feedback", s.handleDeleteAllFeedback)
}

// decodeFeedbackItems accepts a single object or an array of objects and
// reports which form was sent so the response can mirror it.
func decodeFeedbackItems(body io.Reader) (items []feedbackItem, isBatch bool, err error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read body: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, false, nil
	}

	if raw[0] == '[' {
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, true, fmt.Errorf("failed to decode feedback batch: %w", err)
		}
		return items, true, nil
	}

	var item feedbackItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, false, fmt.Errorf("failed to decode feedback: %w", err)
	}
	return []feedbackItem{item}, false, nil
}

func (s *Server) handleSubmitFeedback(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	items, isBatch, err := decodeFeedbackItems(c.Request().Body)
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}
	if err != nil {
		return apperrors.ValidationError(msgFeedbackFields)
	}
	if len(items) == 0 {
		return apperrors.ValidationError(msgNoFeedback)
	}

	inputs := make([]app.FeedbackInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, app.FeedbackInput{Channel: item.Channel, Text: item.Text})
	}

	created, err := s.app.SubmitFeedback(c.Request().Context(), userID, inputs)
	if errors.Is(err, domain.ErrInvalidInput) {
		return apperrors.ValidationError(msgFeedbackFields)
	}
	if err != nil {
		return apperrors.InternalError(apperrors.MsgInternal, err)
	}

	out := toFeedbackList(created, false)
	if !isBatch {
		return writeJSON(c, http.StatusCreated, out[0])
	}
	return writeJSON(c, http.StatusCreated, out)
}

func (s *Server) handleListFeedback(c echo.Context) error {
	feedback, err := s.app.ListFeedback(c.Request().Context())
	if err != nil {
		return apperrors.InternalError(apperrors.MsgInternal, err)
	}
	return writeJSON(c, http.StatusOK, toFeedbackList(feedback, true))
}

func (s *Server) handleListOwnFeedback(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	feedback, err := s.app.ListUserFeedback(c.Request().Context(), userID)
	if err != nil {
		return apperrors.InternalError(apperrors.MsgInternal, err)
	}
	return writeJSON(c, http.StatusOK, toFeedbackList(feedback, true))
}

func (s *Server) handleSearchFeedback(c echo.Context) error {
	text := c.QueryParam("text")
	if strings.TrimSpace(text) == "" {
		return apperrors.ValidationError(msgSearchTextRequired)
	}

	feedback, err := s.app.SearchFeedback(c.Request().Context(), text)
	if errors.Is(err, domain.ErrInvalidInput) {
		return apperrors.ValidationError(msgSearchTextRequired)
	}
	if err != nil {
		return apperrors.InternalError(apperrors.MsgInternal, err)
	}
	return writeJSON(c, http.StatusOK, toFeedbackList(feedback, true))
}

func (s *Server) handleFeedbackByChannel(c echo.Context) error {
	name := c.Param("channelName")
	if strings.TrimSpace(name) == "" {
		return apperrors.ValidationError(msgChannelNameRequired)
	}

	feedback, err := s.app.FeedbackByChannel(c.Request().Context(), name)
	if errors.Is(err, domain.ErrChannelNotFound) {
		return apperrors.NotFoundError(msgChannelNotFound).WithField("channel", name)
	}
	if err != nil {
		return apperrors.InternalError(apperrors.MsgInternal, err)
	}
	return writeJSON(c, http.StatusOK, toFeedbackList(feedback, true))
}

func (s *Server) handleDeleteOwnFeedback(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	feedbackID, err := parseIDParam(c, "id", msgFeedbackNotFound)
	if err != nil {
		return err
	}

	err = s.app.DeleteOwnFeedback(c.Request().Context(), userID, feedbackID)
	if errors.Is(err, domain.ErrFeedbackNotFound) {
		return apperrors.NotFoundError(msgFeedbackNotFound).WithField("id", feedbackID)
	}
	if err != nil {
		return apperrors.InternalError(apperrors.MsgInternal, err)
	}
	return writeJSON(c, http.StatusOK, messageResponse{Message: msgFeedbackDeleted})
}

func (s *Server) handleDeleteFeedback(c echo.Context) error {
	feedbackID, err := parseIDParam(c, "id", msgFeedbackNotFound)
	if err != nil {
		return err
	}

	err = s.app.DeleteFeedback(c.Request().Context(), feedbackID)
	if errors.Is(err, domain.ErrFeedbackNotFound) {
		return apperrors.NotFoundError(msgFeedbackNotFound).WithField("id", feedbackID)
	}
	if err != nil {
		return apperrors.InternalError(apperrors.MsgInternal, err)
	}
	return writeJSON(c, http.StatusOK, messageResponse{Message: msgFeedbackDeleted})
}

func (s *Server) handleDeleteAllFeedback(c echo.Context) error {
	count, err := s.app.DeleteAllFeedback(c.Request().Context())
	if err != nil {
		return apperrors.InternalError(apperrors.MsgInternal, err)
	}
	return writeJSON(c, http.StatusOK, bulkDeleteResponse{
		Message: fmt.Sprintf(msgFeedbackBulkDeleted, count),
		Count:   count,
	})
}
