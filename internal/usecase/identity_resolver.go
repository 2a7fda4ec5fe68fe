package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"contesthub/internal/domain"

	"golang.org/x/sync/singleflight"
)

// IdentityResolver turns a bearer credential into a request-scoped AuthContext: the
// identity provider vouches for the user id, then the user record supplies the role.
type IdentityResolver struct {
	Provider domain.IdentityProvider
	Users    domain.UserRepository

	lookups singleflight.Group
}

func NewIdentityResolver(provider domain.IdentityProvider, users domain.UserRepository) *IdentityResolver {
	return &IdentityResolver{Provider: provider, Users: users}
}

// Resolve never retries. Provider failures of any kind map to ErrInvalidCredential, with
// the provider's own error kept in the chain for logging.
func (r *IdentityResolver) Resolve(ctx context.Context, bearerToken string) (domain.AuthContext, error) {
	if r == nil || r.Provider == nil || r.Users == nil {
		return domain.AuthContext{}, errors.New("identity resolver is not configured")
	}
	token := strings.TrimSpace(bearerToken)
	if token == "" {
		return domain.AuthContext{}, domain.ErrMissingCredential
	}
	authCtx := domain.AuthContext{RawCredential: token}

	identity, err := r.Provider.Verify(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredential) {
			return authCtx, err
		}
		return authCtx, fmt.Errorf("%w: %w", domain.ErrInvalidCredential, err)
	}
	if strings.TrimSpace(identity.UserID) == "" {
		return authCtx, fmt.Errorf("%w: provider returned no user id", domain.ErrInvalidCredential)
	}
	authCtx.UserID = identity.UserID

	user, err := r.loadUser(ctx, identity.UserID)
	if err != nil {
		return authCtx, err
	}
	authCtx.User = user
	authCtx.Role = user.Role
	return authCtx, nil
}

// loadUser coalesces concurrent lookups of the same user into one store query. The shared
// query runs detached from any single caller's cancellation; each caller stops waiting on
// its own ctx.
func (r *IdentityResolver) loadUser(ctx context.Context, userID string) (*domain.User, error) {
	detached := context.WithoutCancel(ctx)
	ch := r.lookups.DoChan(userID, func() (any, error) {
		return r.Users.FindUserByID(detached, userID)
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return nil, fmt.Errorf("load user %s: %w", userID, ctx.Err())
	}
	v, err := res.Val, res.Err
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("load user %s: %w", userID, err)
	}
	user, _ := v.(*domain.User)
	if user == nil {
		return nil, domain.ErrAccountNotFound
	}
	copied := *user
	return &copied, nil
}
