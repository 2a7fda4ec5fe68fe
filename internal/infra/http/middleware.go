package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"contesthub/internal/domain"

	"github.com/gin-gonic/gin"
)

// trace logs one line per dispatched request once the handler chain has finished.
func (s *Server) trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"route", c.FullPath(),
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(started).Milliseconds(),
		}
		if userID := authFromContext(c).UserID; userID != "" {
			attrs = append(attrs, "user_id", userID)
		}
		s.logger.Info("request", attrs...)
	}
}

func (s *Server) recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		s.writeError(c, fmt.Errorf("panic: %v", recovered))
	})
}

var errRateLimiterUnavailable = errors.New("rate limiter unavailable")

// rateLimit counts requests per client address and route pattern.
func (s *Server) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.rateLimitRequests <= 0 {
			c.Next()
			return
		}
		key := fmt.Sprintf("client:%s:route:%s %s", c.ClientIP(), c.Request.Method, c.FullPath())
		decision, err := s.rateLimiter.Allow(c.Request.Context(), key, s.rateLimitRequests, s.rateLimitWindow)
		if err != nil {
			if s.rateLimitFailClosed {
				s.logger.Error("rate limiter failed", "error", err)
				respond(c, ErrorDescriptor{StatusCode: http.StatusTooManyRequests, Message: errRateLimiterUnavailable.Error()})
				return
			}
			s.logger.Warn("rate limiter failed; allowing request", "error", err)
			c.Next()
			return
		}
		writeRateLimitHeaders(c, decision)
		if !decision.Allowed {
			s.writeError(c, domain.ErrRateLimited)
			return
		}
		c.Next()
	}
}

func writeRateLimitHeaders(c *gin.Context, decision domain.RateLimitDecision) {
	if decision.Limit > 0 {
		c.Header("RateLimit-Limit", strconv.Itoa(decision.Limit))
	}
	c.Header("RateLimit-Remaining", strconv.Itoa(decision.Remaining))
	if decision.ResetAt.IsZero() {
		return
	}
	c.Header("RateLimit-Reset", strconv.FormatInt(decision.ResetAt.Unix(), 10))
	if !decision.Allowed {
		retryAfter := int64(time.Until(decision.ResetAt).Seconds())
		if retryAfter < 0 {
			retryAfter = 0
		}
		c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
	}
}
