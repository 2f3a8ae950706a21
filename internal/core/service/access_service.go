package service

import (
	"context"
	"errors"

	"github.com/pigeonpulse/loft-api/internal/core/domain"
	"github.com/pigeonpulse/loft-api/internal/core/ports"
)

// AccessService resolves membership and role for (user, loft) pairs.
type AccessService struct {
	memberships ports.MembershipRepository
}

func NewAccessService(memberships ports.MembershipRepository) *AccessService {
	return &AccessService{memberships: memberships}
}

// HasAccess reports whether any membership exists for the pair.
func (s *AccessService) HasAccess(ctx context.Context, userID, loftID string) (bool, error) {
	_, ok, err := s.RoleOf(ctx, userID, loftID)
	return ok, err
}

// RoleOf returns the user's role in the loft. ok is false when no membership
// exists; err is reserved for storage failures.
func (s *AccessService) RoleOf(ctx context.Context, userID, loftID string) (domain.Role, bool, error) {
	m, err := s.memberships.FindByUserAndLoft(ctx, userID, loftID)
	if err != nil {
		if errors.Is(err, domain.ErrMembershipNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return m.Role, true, nil
}

// RequireOwner reports whether the user holds the OWNER role in the loft.
func (s *AccessService) RequireOwner(ctx context.Context, userID, loftID string) (bool, error) {
	role, ok, err := s.RoleOf(ctx, userID, loftID)
	if err != nil || !ok {
		return false, err
	}
	return role == domain.RoleOwner, nil
}
