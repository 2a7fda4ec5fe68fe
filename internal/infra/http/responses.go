package http

import (
	"fmt"
	"net/http"
	"time"

	"contesthub/internal/domain"
	"contesthub/internal/validation"

	"github.com/gin-gonic/gin"
)

const maxBodyBytes = 1 << 20

type messageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type dataResponse struct {
	Data any `json:"data"`
}

type contestResponse struct {
	ContestID    string `json:"contest_id"`
	ContestTitle string `json:"contest_title"`
	Description  string `json:"description,omitempty"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Status       string `json:"status"`
	CreatedBy    string `json:"created_by,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type commentResponse struct {
	CommentID string `json:"comment_id"`
	ContestID string `json:"contest_id"`
	UserID    string `json:"user_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type flagResponse struct {
	FlagID     string `json:"flag_id"`
	TargetType string `json:"target_type"`
	TargetID   string `json:"target_id"`
	Reason     string `json:"reason"`
	Status     string `json:"status"`
	ReportedBy string `json:"reported_by,omitempty"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(errorTimeLayout)
}

func buildContestResponse(c domain.Contest) contestResponse {
	return contestResponse{
		ContestID:    c.ID,
		ContestTitle: c.Title,
		Description:  c.Description,
		StartDate:    formatTime(c.StartDate),
		EndDate:      formatTime(c.EndDate),
		Status:       string(c.Status),
		CreatedBy:    c.CreatedBy,
		CreatedAt:    formatTime(c.CreatedAt),
		UpdatedAt:    formatTime(c.UpdatedAt),
	}
}

func buildCommentResponse(c domain.Comment) commentResponse {
	return commentResponse{
		CommentID: c.ID,
		ContestID: c.ContestID,
		UserID:    c.UserID,
		Content:   c.Content,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

func buildFlagResponse(f domain.Flag) flagResponse {
	return flagResponse{
		FlagID:     f.ID,
		TargetType: string(f.TargetType),
		TargetID:   f.TargetID,
		Reason:     f.Reason,
		Status:     string(f.Status),
		ReportedBy: f.ReportedBy,
		CreatedAt:  formatTime(f.CreatedAt),
		UpdatedAt:  formatTime(f.UpdatedAt),
	}
}

// readPayload decodes the request body as a JSON object. An empty body decodes to an empty
// payload, which the validators reject with their own message.
func readPayload(c *gin.Context) (validation.Payload, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	raw, err := c.GetRawData()
	if err != nil {
		return nil, fmt.Errorf("read body: %w", domain.ErrInvalidArgument)
	}
	return validation.DecodePayload(raw)
}
