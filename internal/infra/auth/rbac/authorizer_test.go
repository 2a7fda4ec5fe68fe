package rbac

import (
	"errors"
	"testing"

	"contesthub/internal/domain"
)

func resolved(role domain.Role) domain.AuthContext {
	return domain.AuthContext{
		UserID: "user-1",
		Role:   role,
		User:   &domain.User{UserID: "user-1", Role: role},
	}
}

func TestRequireEmptyRoleSetAllowsAnyRole(t *testing.T) {
	authz := NewAuthorizer()
	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleModerator, domain.RoleParticipant, ""} {
		if err := authz.Require(resolved(role), nil); err != nil {
			t.Fatalf("role %q: expected allow, got %v", role, err)
		}
	}
}

func TestRequireRoleMembership(t *testing.T) {
	authz := NewAuthorizer()
	required := domain.Roles(domain.RoleAdmin, domain.RoleModerator)
	if err := authz.Require(resolved(domain.RoleModerator), required); err != nil {
		t.Fatalf("expected moderator to pass, got %v", err)
	}
	err := authz.Require(resolved(domain.RoleParticipant), required)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	authzErr, ok := IsAuthzError(err)
	if !ok || authzErr.Code != CodeMissingRole {
		t.Fatalf("expected MISSING_ROLE authz error, got %v", err)
	}
}

func TestRequireUnresolvedIdentity(t *testing.T) {
	err := NewAuthorizer().Require(domain.AuthContext{}, domain.Roles(domain.RoleAdmin))
	if !errors.Is(err, domain.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
	if _, ok := IsAuthzError(err); ok {
		t.Fatalf("unresolved identity must not reach the role check")
	}
}
