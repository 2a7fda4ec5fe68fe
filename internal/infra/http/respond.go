package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"contesthub/internal/domain"

	"github.com/gin-gonic/gin"
)

const errorTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// ErrorDescriptor is everything the error body carries. A zero Timestamp is stamped at
// write time.
type ErrorDescriptor struct {
	StatusCode int
	Message    string
	Timestamp  time.Time
}

type errorResponse struct {
	StatusCode   int    `json:"status_code"`
	ErrorMessage string `json:"error_message"`
	ErrorTime    string `json:"error_time"`
}

// respond writes the descriptor as the response and stops the handler chain.
func respond(c *gin.Context, d ErrorDescriptor) {
	if d.Timestamp.IsZero() {
		d.Timestamp = time.Now()
	}
	c.AbortWithStatusJSON(d.StatusCode, errorResponse{
		StatusCode:   d.StatusCode,
		ErrorMessage: d.Message,
		ErrorTime:    d.Timestamp.UTC().Format(errorTimeLayout),
	})
}

// describe maps an error onto the wire taxonomy. Causes never reach the message of a 500.
func describe(err error) ErrorDescriptor {
	var (
		validationErr *domain.ValidationError
		notFoundErr   *domain.NotFoundError
	)
	switch {
	case errors.As(err, &validationErr):
		return ErrorDescriptor{StatusCode: http.StatusBadRequest, Message: validationErr.Error()}
	case errors.Is(err, domain.ErrEmptyBody):
		return ErrorDescriptor{StatusCode: http.StatusBadRequest, Message: domain.ErrEmptyBody.Error()}
	case errors.Is(err, domain.ErrInvalidArgument):
		return ErrorDescriptor{StatusCode: http.StatusBadRequest, Message: "invalid request body"}
	case errors.Is(err, domain.ErrMissingCredential):
		return ErrorDescriptor{StatusCode: http.StatusUnauthorized, Message: domain.ErrMissingCredential.Error()}
	case errors.Is(err, domain.ErrInvalidCredential):
		return ErrorDescriptor{StatusCode: http.StatusUnauthorized, Message: domain.ErrInvalidCredential.Error()}
	case errors.Is(err, domain.ErrAccountNotFound):
		return ErrorDescriptor{StatusCode: http.StatusForbidden, Message: domain.ErrAccountNotFound.Error()}
	case errors.Is(err, domain.ErrForbidden):
		return ErrorDescriptor{StatusCode: http.StatusForbidden, Message: domain.ErrForbidden.Error()}
	case errors.As(err, &notFoundErr):
		return ErrorDescriptor{StatusCode: http.StatusNotFound, Message: notFoundErr.Message}
	case errors.Is(err, domain.ErrNotFound):
		return ErrorDescriptor{StatusCode: http.StatusNotFound, Message: "resource not found"}
	case errors.Is(err, domain.ErrRateLimited):
		return ErrorDescriptor{StatusCode: http.StatusTooManyRequests, Message: domain.ErrRateLimited.Error()}
	default:
		return ErrorDescriptor{StatusCode: http.StatusInternalServerError, Message: "internal server error"}
	}
}

func (s *Server) writeError(c *gin.Context, err error) {
	d := describe(err)
	level := slog.LevelInfo
	if d.StatusCode >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	s.logger.Log(c.Request.Context(), level, "request failed",
		"method", c.Request.Method,
		"route", c.FullPath(),
		"status", d.StatusCode,
		"error", err,
	)
	respond(c, d)
}
