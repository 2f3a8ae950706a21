package ports

import (
	"context"

	"github.com/pigeonpulse/loft-api/internal/core/domain"
)

// LoginResult carries the issued bearer token and the resolved user.
type LoginResult struct {
	Token string
	User  *domain.User
}

// AuthService implements the login and logout flows.
type AuthService interface {
	// Login verifies the external credential, resolves the local user, and
	// issues a bearer token bound to the user's own loft with the OWNER
	// role. Fails with domain.ErrEmailNotVerified when the identity
	// provider has not verified the email.
	Login(ctx context.Context, credential string) (*LoginResult, error)
	// Logout revokes the presented token. A token that does not parse is
	// ignored; logout never fails the caller for a bad token.
	Logout(ctx context.Context, token string) error
}
