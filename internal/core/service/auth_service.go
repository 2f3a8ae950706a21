package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pigeonpulse/loft-api/internal/core/domain"
	"github.com/pigeonpulse/loft-api/internal/core/ports"
)

// AuthService implements login against the external identity provider and
// logout via the token denylist.
type AuthService struct {
	verifier    ports.IdentityVerifier
	identity    ports.IdentityService
	lofts       ports.LoftRepository
	memberships ports.MembershipRepository
	tokens      *TokenService
	denylist    ports.TokenDenylist
	log         zerolog.Logger
}

func NewAuthService(
	verifier ports.IdentityVerifier,
	identity ports.IdentityService,
	lofts ports.LoftRepository,
	memberships ports.MembershipRepository,
	tokens *TokenService,
	denylist ports.TokenDenylist,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		verifier:    verifier,
		identity:    identity,
		lofts:       lofts,
		memberships: memberships,
		tokens:      tokens,
		denylist:    denylist,
		log:         log,
	}
}

// Login verifies the opaque credential with the identity provider, resolves
// the local user, and issues a bearer token bound to the user's own loft
// with the OWNER role. The embedded loft and role are a default for request
// context only; they grant nothing for other lofts.
func (s *AuthService) Login(ctx context.Context, credential string) (*ports.LoginResult, error) {
	identity, err := s.verifier.Verify(ctx, credential)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCredential, err)
	}
	if !identity.EmailVerified {
		return nil, domain.ErrEmailNotVerified
	}

	user, err := s.identity.Resolve(ctx, identity.SubjectID, identity.Email, identity.Name)
	if err != nil {
		return nil, err
	}

	// Resolve guarantees an owned loft for users it creates; accounts that
	// predate that guarantee are repaired here.
	owned, err := s.lofts.FindByOwnerID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	var loft *domain.Loft
	if len(owned) == 0 {
		s.log.Warn().Str("user_id", user.ID).Msg("user without owned loft, creating default")
		loft, err = createLoftWithOwner(ctx, s.lofts, s.memberships, user.ID, domain.DefaultLoftName, "")
		if err != nil {
			return nil, err
		}
	} else {
		loft = owned[0]
	}

	token, err := s.tokens.Issue(user.ID, loft.ID, domain.RoleOwner)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("loft_id", loft.ID).Msg("user logged in")

	return &ports.LoginResult{Token: token, User: user}, nil
}

// Logout revokes the presented token until it would have expired anyway.
// Tokens that do not parse are ignored; logout is a best-effort cleanup and
// never fails the caller for a bad token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if _, err := s.tokens.ExtractUserID(token); err != nil {
		return nil
	}

	// The denylist entry only needs to outlive the token itself, so the
	// issue TTL is a safe upper bound.
	if err := s.denylist.Revoke(ctx, token, s.tokens.TTL()); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}
