package identity

import (
	"context"
	"errors"
)

// User is the identity asserted by a bearer token.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}

// Resolver maps an opaque bearer token to a user identity.
type Resolver interface {
	Resolve(ctx context.Context, token string) (User, error)
}

var (
	// ErrInvalidToken indicates the provider rejected the token.
	ErrInvalidToken = errors.New("invalid token")

	// ErrNotConfigured indicates no identity provider is wired.
	ErrNotConfigured = errors.New("identity provider not configured")
)

// StaticResolver resolves tokens from a fixed map. Used in tests and local dev.
type StaticResolver map[string]User

// Resolve looks the token up in the map.
func (r StaticResolver) Resolve(ctx context.Context, token string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	user, ok := r[token]
	if !ok {
		return User{}, ErrInvalidToken
	}
	return user, nil
}
