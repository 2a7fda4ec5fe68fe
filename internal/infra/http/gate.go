package http

import (
	"errors"
	"strings"

	"contesthub/internal/domain"

	"github.com/gin-gonic/gin"
)

const authContextKey = "auth_context"

var errAuthNotConfigured = errors.New("auth configuration error")

// gate wraps a route handler with identity resolution and the route's role check. Each
// failing step answers the request itself; the handler only runs once every step passed.
func (s *Server) gate(route Route) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c.GetHeader("Authorization"))
		if token == "" {
			s.writeError(c, domain.ErrMissingCredential)
			return
		}
		if s.resolver == nil {
			s.writeError(c, errAuthNotConfigured)
			return
		}

		authCtx, err := s.resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			s.writeError(c, err)
			return
		}
		if err := s.authorizer.Require(authCtx, route.Roles); err != nil {
			s.writeError(c, err)
			return
		}

		c.Set(authContextKey, authCtx)
		route.Handler.Handle(c, c.Param("id"))
	}
}

func extractBearerToken(value string) string {
	value = strings.TrimSpace(value)
	if len(value) < len("bearer ") || !strings.EqualFold(value[:len("bearer ")], "bearer ") {
		return ""
	}
	return strings.TrimSpace(value[len("bearer "):])
}

func authFromContext(c *gin.Context) domain.AuthContext {
	raw, ok := c.Get(authContextKey)
	if !ok {
		return domain.AuthContext{}
	}
	authCtx, _ := raw.(domain.AuthContext)
	return authCtx
}
