package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"contesthub/internal/config"
	"contesthub/internal/domain"
	"contesthub/internal/infra/auth/gotrue"
	"contesthub/internal/infra/auth/jwtverify"
	"contesthub/internal/infra/auth/rbac"
	"contesthub/internal/infra/db"
	"contesthub/internal/infra/memstore"
	"contesthub/internal/infra/ratelimit"
	"contesthub/internal/usecase"

	"github.com/gin-gonic/gin"
)

type Server struct {
	cfg    config.Config
	store  *db.Store
	logger *slog.Logger
	r      *gin.Engine

	contests *usecase.ContestService
	comments *usecase.CommentService
	flags    *usecase.FlagService

	resolver    *usecase.IdentityResolver
	authorizer  *rbac.Authorizer
	authInitErr error

	rateLimiter         domain.RateLimiter
	rateLimitRequests   int
	rateLimitWindow     time.Duration
	rateLimitFailClosed bool
}

// ServerDeps overrides collaborators. Nil repositories fall back to an in-memory store and
// a nil Provider is built from the config's AUTH_MODE.
type ServerDeps struct {
	Logger      *slog.Logger
	Provider    domain.IdentityProvider
	Users       domain.UserRepository
	Contests    usecase.ContestRepository
	Comments    usecase.CommentRepository
	Flags       usecase.FlagRepository
	RateLimiter domain.RateLimiter
	Now         func() time.Time
}

func NewServer(cfg config.Config, store *db.Store, logger *slog.Logger) *Server {
	deps := ServerDeps{Logger: logger}
	if store != nil && store.DB != nil {
		deps.Users = db.NewUserRepository(store.DB)
		deps.Contests = db.NewContestRepository(store.DB)
		deps.Comments = db.NewCommentRepository(store.DB)
		deps.Flags = db.NewFlagRepository(store.DB)
	}
	s := NewServerWithDeps(cfg, deps)
	s.store = store
	return s
}

func NewServerWithDeps(cfg config.Config, deps ServerDeps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:        cfg,
		logger:     logger,
		r:          gin.New(),
		authorizer: rbac.NewAuthorizer(),
	}

	mem := memstore.New()
	if deps.Users == nil {
		deps.Users = mem.Users
	}
	if deps.Contests == nil {
		deps.Contests = mem.Contests
	}
	if deps.Comments == nil {
		deps.Comments = mem.Comments
	}
	if deps.Flags == nil {
		deps.Flags = mem.Flags
	}

	s.contests = usecase.NewContestService(deps.Contests)
	s.comments = usecase.NewCommentService(deps.Comments, deps.Contests)
	s.flags = usecase.NewFlagService(deps.Flags, deps.Contests, deps.Comments)
	if deps.Now != nil {
		s.contests.Now = deps.Now
		s.comments.Now = deps.Now
		s.flags.Now = deps.Now
	}

	s.initAuth(deps.Provider, deps.Users)
	s.initRateLimit(deps.RateLimiter)
	s.r.Use(s.trace(), s.recovery())
	if s.rateLimiter != nil {
		s.r.Use(s.rateLimit())
	}
	s.routes()
	return s
}

func (s *Server) initAuth(provider domain.IdentityProvider, users domain.UserRepository) {
	if provider == nil {
		if err := s.cfg.Validate(); err != nil {
			s.authInitErr = err
			return
		}
		var err error
		switch s.cfg.AuthMode {
		case config.AuthModeGoTrue:
			provider, err = gotrue.NewClient(s.cfg)
		case config.AuthModeJWT:
			provider, err = jwtverify.NewVerifier(s.cfg)
		default:
			err = errors.New("unsupported auth mode")
		}
		if err != nil {
			s.authInitErr = err
			return
		}
	}
	s.resolver = usecase.NewIdentityResolver(provider, users)
}

func (s *Server) initRateLimit(override domain.RateLimiter) {
	s.rateLimitRequests = s.cfg.RateLimitRequests
	s.rateLimitWindow = s.cfg.RateLimitWindow()
	s.rateLimitFailClosed = s.cfg.RateLimitFailClosed
	if override != nil {
		s.rateLimiter = override
		return
	}
	if s.rateLimitRequests <= 0 {
		return
	}
	if s.cfg.RedisAddr != "" {
		limiter, err := ratelimit.NewRedisLimiter(s.cfg.RedisAddr, s.cfg.RedisPassword, s.cfg.RedisDB)
		if err == nil {
			s.rateLimiter = limiter
			return
		}
		s.logger.Warn("redis rate limiter unavailable; using in-memory limiter", "error", err)
	}
	s.rateLimiter = ratelimit.NewMemoryLimiter(ratelimit.WithMaxKeys(s.cfg.RateLimitMaxKeys))
}

func (s *Server) Handler() http.Handler {
	return s.r
}

func (s *Server) Run() error {
	if s.authInitErr != nil {
		return s.authInitErr
	}
	s.logger.Info("listening", "addr", s.cfg.HTTPAddr, "auth_mode", s.cfg.AuthMode, "route_prefix", s.cfg.RoutePrefix)
	return s.r.Run(s.cfg.HTTPAddr)
}
