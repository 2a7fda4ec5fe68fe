package rbac

import (
	"errors"

	"contesthub/internal/domain"
)

const CodeMissingRole = "MISSING_ROLE"

type AuthzError struct {
	Code string
	Err  error
}

func (e *AuthzError) Error() string {
	if e == nil {
		return ""
	}
	return e.Code
}

func (e *AuthzError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Authorizer checks a resolved user's role against the roles a route accepts.
type Authorizer struct{}

func NewAuthorizer() *Authorizer {
	return &Authorizer{}
}

// Require must only be called with a resolved AuthContext; an unresolved one is rejected
// as unauthenticated rather than evaluated against the role set.
func (a *Authorizer) Require(authCtx domain.AuthContext, required domain.RoleSet) error {
	if !authCtx.Resolved() {
		return domain.ErrInvalidCredential
	}
	if required.Empty() {
		return nil
	}
	if !required.Contains(authCtx.Role) {
		return &AuthzError{Code: CodeMissingRole, Err: domain.ErrForbidden}
	}
	return nil
}

func IsAuthzError(err error) (*AuthzError, bool) {
	var authz *AuthzError
	if errors.As(err, &authz) {
		return authz, true
	}
	return nil, false
}
