package ports

import (
	"context"

	"github.com/pigeonpulse/loft-api/internal/core/domain"
)

// ExternalIdentity is the verified result of checking an opaque credential
// against the external identity provider.
type ExternalIdentity struct {
	SubjectID     string
	Email         string
	EmailVerified bool
	Name          string
}

// IdentityVerifier is the external oracle: given an opaque credential it
// either fails or returns a verified identity. Implemented against OIDC.
type IdentityVerifier interface {
	Verify(ctx context.Context, rawToken string) (*ExternalIdentity, error)
}

// IdentityService turns a verified external identity into a local user,
// creating one on first sight or linking an invited placeholder by email.
type IdentityService interface {
	// Resolve guarantees on success that the returned user exists and has at
	// least one owned loft with a corresponding OWNER membership.
	Resolve(ctx context.Context, subjectID, email, name string) (*domain.User, error)
	// SearchByEmail returns the user with the given email, creating an
	// invite placeholder (no subject id) when none exists yet.
	SearchByEmail(ctx context.Context, email string) (*domain.User, error)
}
