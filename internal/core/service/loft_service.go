package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pigeonpulse/loft-api/internal/core/domain"
	"github.com/pigeonpulse/loft-api/internal/core/ports"
)

// LoftService manages lofts and their membership protocol. All mutating
// operations authorize against the target loft before touching anything.
type LoftService struct {
	lofts       ports.LoftRepository
	memberships ports.MembershipRepository
	users       ports.UserRepository
	access      ports.AccessService
	log         zerolog.Logger
}

func NewLoftService(
	lofts ports.LoftRepository,
	memberships ports.MembershipRepository,
	users ports.UserRepository,
	access ports.AccessService,
	log zerolog.Logger,
) *LoftService {
	return &LoftService{
		lofts:       lofts,
		memberships: memberships,
		users:       users,
		access:      access,
		log:         log,
	}
}

// ListMine returns every loft the user belongs to, owned and shared, with
// the user's role in each. A membership whose loft no longer resolves is
// skipped rather than failing the whole listing.
func (s *LoftService) ListMine(ctx context.Context, userID string) ([]ports.LoftWithRole, error) {
	relations, err := s.memberships.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]ports.LoftWithRole, 0, len(relations))
	for _, m := range relations {
		loft, err := s.lofts.FindByID(ctx, m.LoftID)
		if err != nil {
			if errors.Is(err, domain.ErrLoftNotFound) {
				s.log.Warn().Str("loft_id", m.LoftID).Str("user_id", userID).Msg("membership points at missing loft")
				continue
			}
			return nil, err
		}
		out = append(out, ports.LoftWithRole{Loft: loft, Role: m.Role})
	}
	return out, nil
}

// Create makes a new loft owned by the caller, with its OWNER membership
// created in the same unit of work.
func (s *LoftService) Create(ctx context.Context, input ports.CreateLoftInput) (*domain.Loft, error) {
	loft, err := createLoftWithOwner(ctx, s.lofts, s.memberships, input.OwnerID, input.Name, strings.TrimSpace(input.Alias))
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("loft_id", loft.ID).Str("owner_id", input.OwnerID).Msg("loft created")
	return loft, nil
}

// Update changes the loft alias. Owner only; the authorization check runs
// before the loft is even loaded so a denied caller learns nothing about
// the target's existence.
func (s *LoftService) Update(ctx context.Context, input ports.UpdateLoftInput) (*domain.Loft, error) {
	owner, err := s.access.RequireOwner(ctx, input.UserID, input.LoftID)
	if err != nil {
		return nil, err
	}
	if !owner {
		return nil, domain.ErrForbidden
	}

	loft, err := s.lofts.FindByID(ctx, input.LoftID)
	if err != nil {
		return nil, err
	}

	loft.Alias = strings.TrimSpace(input.Alias)
	if err := s.lofts.Update(ctx, loft); err != nil {
		return nil, err
	}
	return loft, nil
}

// ListMembers returns the loft's access list joined with user details. Any
// member may view it.
func (s *LoftService) ListMembers(ctx context.Context, userID, loftID string) ([]ports.LoftMember, error) {
	ok, err := s.access.HasAccess(ctx, userID, loftID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrForbidden
	}

	relations, err := s.memberships.FindByLoftID(ctx, loftID)
	if err != nil {
		return nil, err
	}

	members := make([]ports.LoftMember, 0, len(relations))
	for _, m := range relations {
		member := ports.LoftMember{
			MembershipID: m.ID,
			UserID:       m.UserID,
			UserName:     "unknown",
			UserEmail:    m.UserID,
			Role:         m.Role,
			GrantedAt:    m.GrantedAt,
		}
		if u, err := s.users.FindByID(ctx, m.UserID); err == nil {
			member.UserName = u.Name
			member.UserEmail = u.Email
		}
		members = append(members, member)
	}
	return members, nil
}

// Grant adds a COLLABORATOR membership for granteeID. Owner only; a second
// grant for the same pair fails with ErrMembershipExists.
func (s *LoftService) Grant(ctx context.Context, ownerID, loftID, granteeID string) (*domain.Membership, error) {
	owner, err := s.access.RequireOwner(ctx, ownerID, loftID)
	if err != nil {
		return nil, err
	}
	if !owner {
		return nil, domain.ErrForbidden
	}

	if _, err := s.users.FindByID(ctx, granteeID); err != nil {
		return nil, err
	}

	if _, err := s.memberships.FindByUserAndLoft(ctx, granteeID, loftID); err == nil {
		return nil, domain.ErrMembershipExists
	} else if !errors.Is(err, domain.ErrMembershipNotFound) {
		return nil, err
	}

	m, err := s.memberships.Create(ctx, &domain.Membership{
		UserID:    granteeID,
		LoftID:    loftID,
		Role:      domain.RoleCollaborator,
		GrantedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("loft_id", loftID).Str("user_id", granteeID).Msg("collaborator access granted")
	return m, nil
}

// Revoke removes memberID's relation to the loft. Owner only. The OWNER
// membership itself is immutable while the loft exists.
func (s *LoftService) Revoke(ctx context.Context, ownerID, loftID, memberID string) error {
	owner, err := s.access.RequireOwner(ctx, ownerID, loftID)
	if err != nil {
		return err
	}
	if !owner {
		return domain.ErrForbidden
	}

	m, err := s.memberships.FindByUserAndLoft(ctx, memberID, loftID)
	if err != nil {
		return err
	}
	if m.Role == domain.RoleOwner {
		return domain.ErrOwnerImmutable
	}

	if err := s.memberships.Delete(ctx, m.ID); err != nil {
		return err
	}

	s.log.Info().Str("loft_id", loftID).Str("user_id", memberID).Msg("access revoked")
	return nil
}

// Memberships returns the raw relations of one user.
func (s *LoftService) Memberships(ctx context.Context, userID string) ([]*domain.Membership, error) {
	return s.memberships.FindByUserID(ctx, userID)
}
