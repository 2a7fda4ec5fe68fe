package domain

import "strings"

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleModerator   Role = "moderator"
	RoleParticipant Role = "participant"
)

// ParseRole maps a stored user_type value onto a known Role.
func ParseRole(raw string) (Role, bool) {
	switch role := Role(strings.ToLower(strings.TrimSpace(raw))); role {
	case RoleAdmin, RoleModerator, RoleParticipant:
		return role, true
	default:
		return "", false
	}
}

// RoleSet is the set of roles a route accepts. An empty set accepts any authenticated user.
type RoleSet []Role

func Roles(roles ...Role) RoleSet {
	return RoleSet(roles)
}

func (s RoleSet) Empty() bool {
	return len(s) == 0
}

func (s RoleSet) Contains(role Role) bool {
	for _, r := range s {
		if r == role {
			return true
		}
	}
	return false
}

func (s RoleSet) Strings() []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
