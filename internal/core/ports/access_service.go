package ports

import (
	"context"

	"github.com/pigeonpulse/loft-api/internal/core/domain"
)

// AccessService answers the per-request authorization question: does this
// user hold a membership for this loft, and with which role. The default
// loft embedded in the bearer token is a convenience only; every handler
// touching loft-scoped data resolves its actual target loft and asks here.
type AccessService interface {
	HasAccess(ctx context.Context, userID, loftID string) (bool, error)
	// RoleOf returns the user's role in the loft; ok is false when no
	// membership exists.
	RoleOf(ctx context.Context, userID, loftID string) (role domain.Role, ok bool, err error)
	RequireOwner(ctx context.Context, userID, loftID string) (bool, error)
}
