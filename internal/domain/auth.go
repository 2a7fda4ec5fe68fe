package domain

import "context"

// Identity is what the identity provider vouches for after verifying a bearer credential.
type Identity struct {
	UserID string
	Email  string
}

// AuthContext lives for a single request and is never shared or persisted.
type AuthContext struct {
	RawCredential string
	UserID        string
	Role          Role
	User          *User
}

func (a AuthContext) Resolved() bool {
	return a.UserID != "" && a.User != nil
}

type IdentityProvider interface {
	Verify(ctx context.Context, bearerToken string) (Identity, error)
}

type UserRepository interface {
	FindUserByID(ctx context.Context, userID string) (*User, error)
}
