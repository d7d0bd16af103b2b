package httpserver

import (
	"time"

	"github.com/pscheid92/feedbackpulse/internal/domain"
)

// jsTimeLayout matches the millisecond UTC form browsers produce with toISOString.
const jsTimeLayout = "2006-01-02T15:04:05.000Z"

const anonymousUploader = "Anonyme"

func formatTime(t time.Time) string {
	return t.UTC().Format(jsTimeLayout)
}

type userSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type userDetail struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type sessionResponse struct {
	User  userSummary `json:"user"`
	Token string      `json:"token"`
}

type channelResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

type feedbackResponse struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	Channel   string  `json:"channel"`
	Text      string  `json:"text"`
	User      string  `json:"user,omitempty"`
	UserID    *string `json:"userId"`
	Sentiment float64 `json:"sentiment"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toUserSummary(u *domain.User) userSummary {
	return userSummary{ID: u.ID.String(), Name: u.Name, Email: u.Email}
}

func toUserDetail(u *domain.User) userDetail {
	return userDetail{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: formatTime(u.CreatedAt),
		UpdatedAt: formatTime(u.UpdatedAt),
	}
}

func toChannelResponse(ch *domain.Channel) channelResponse {
	return channelResponse{ID: ch.ID.String(), Name: ch.Name, CreatedAt: formatTime(ch.CreatedAt)}
}

// toFeedbackResponse renders a stored feedback. withUploader adds the
// uploader name, falling back to "Anonyme" once the user is gone.
func toFeedbackResponse(fb *domain.Feedback, withUploader bool) feedbackResponse {
	resp := feedbackResponse{
		ID:        fb.ID.String(),
		Date:      formatTime(fb.CreatedAt),
		Channel:   fb.ChannelName,
		Text:      fb.Text,
		Sentiment: fb.Sentiment,
	}
	if fb.UserID != nil {
		id := fb.UserID.String()
		resp.UserID = &id
	}
	if withUploader {
		resp.User = fb.UserName
		if fb.UserID == nil || resp.User == "" {
			resp.User = anonymousUploader
		}
	}
	return resp
}

func toFeedbackList(items []domain.Feedback, withUploader bool) []feedbackResponse {
	out := make([]feedbackResponse, 0, len(items))
	for i := range items {
		out = append(out, toFeedbackResponse(&items[i], withUploader))
	}
	return out
}
