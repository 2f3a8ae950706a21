package ports

import (
	"context"
	"time"

	"github.com/pigeonpulse/loft-api/internal/core/domain"
)

// TokenService issues and validates the compact bearer token handed to
// clients after login. All operations are pure functions over the signing
// secret; nothing here touches storage.
type TokenService interface {
	// Issue produces a signed token binding the user to their default loft
	// and role, with an expiry.
	Issue(userID, loftID string, role domain.Role) (string, error)
	// Validate reports whether the token has a valid signature, is not
	// expired, and embeds exactly expectedUserID.
	Validate(token, expectedUserID string) bool
	// The extractors parse claims without verifying the signature. They
	// return domain.ErrTokenMalformed when the token is not structurally a
	// token at all, which is distinct from a validation failure.
	ExtractUserID(token string) (string, error)
	ExtractLoftID(token string) (string, error)
	ExtractRole(token string) (domain.Role, error)
}

// TokenDenylist records revoked tokens (logout) until their natural expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
