package http

import (
	"net/http"

	"contesthub/internal/domain"

	"github.com/gin-gonic/gin"
)

// Handler serves a matched route. param is the path's trailing identifier segment, empty
// for routes without one.
type Handler interface {
	Handle(c *gin.Context, param string)
}

type HandlerFunc func(c *gin.Context, param string)

func (f HandlerFunc) Handle(c *gin.Context, param string) {
	f(c, param)
}

// Route binds a method and path pattern to a handler. Roles empty means any authenticated
// user.
type Route struct {
	Method  string
	Path    string
	Roles   domain.RoleSet
	Handler Handler
}

var (
	adminOnly        = domain.Roles(domain.RoleAdmin)
	staff            = domain.Roles(domain.RoleAdmin, domain.RoleModerator)
	anyKnownRole     = domain.Roles(domain.RoleAdmin, domain.RoleModerator, domain.RoleParticipant)
	anyAuthenticated domain.RoleSet
)

func (s *Server) routeTable() []Route {
	return []Route{
		{Method: http.MethodPost, Path: "/contest", Roles: adminOnly, Handler: HandlerFunc(s.handleCreateContest)},
		{Method: http.MethodGet, Path: "/contest", Roles: anyAuthenticated, Handler: HandlerFunc(s.handleListContests)},
		{Method: http.MethodGet, Path: "/contest/:id", Roles: anyAuthenticated, Handler: HandlerFunc(s.handleGetContest)},
		{Method: http.MethodPatch, Path: "/contest/:id", Roles: adminOnly, Handler: HandlerFunc(s.handleUpdateContest)},
		{Method: http.MethodDelete, Path: "/contest/:id", Roles: adminOnly, Handler: HandlerFunc(s.handleDeleteContest)},

		{Method: http.MethodPost, Path: "/comment", Roles: anyAuthenticated, Handler: HandlerFunc(s.handleCreateComment)},
		{Method: http.MethodGet, Path: "/comment/contest/:id", Roles: anyAuthenticated, Handler: HandlerFunc(s.handleListComments)},
		{Method: http.MethodGet, Path: "/comment/:id", Roles: anyAuthenticated, Handler: HandlerFunc(s.handleGetComment)},
		{Method: http.MethodPatch, Path: "/comment/:id", Roles: anyKnownRole, Handler: HandlerFunc(s.handleUpdateComment)},
		{Method: http.MethodDelete, Path: "/comment/:id", Roles: staff, Handler: HandlerFunc(s.handleDeleteComment)},

		{Method: http.MethodPost, Path: "/flag", Roles: anyAuthenticated, Handler: HandlerFunc(s.handleCreateFlag)},
		{Method: http.MethodGet, Path: "/flag", Roles: staff, Handler: HandlerFunc(s.handleListFlags)},
		{Method: http.MethodGet, Path: "/flag/:id", Roles: staff, Handler: HandlerFunc(s.handleGetFlag)},
		{Method: http.MethodPatch, Path: "/flag/:id", Roles: staff, Handler: HandlerFunc(s.handleUpdateFlag)},
		{Method: http.MethodDelete, Path: "/flag/:id", Roles: adminOnly, Handler: HandlerFunc(s.handleDeleteFlag)},
	}
}

func (s *Server) routes() {
	s.r.GET("/healthz", s.handleHealthz)

	group := s.r.Group(s.cfg.RoutePrefix)
	for _, route := range s.routeTable() {
		group.Handle(route.Method, route.Path, s.gate(route))
	}

	s.r.NoRoute(s.handleNoRoute)
}

func (s *Server) handleHealthz(c *gin.Context) {
	mode := "no-db"
	if s.store != nil && s.store.DB != nil {
		mode = "db"
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "mode": mode})
}

func (s *Server) handleNoRoute(c *gin.Context) {
	respond(c, ErrorDescriptor{StatusCode: http.StatusNotFound, Message: "route not found"})
}
