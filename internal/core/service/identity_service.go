package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pigeonpulse/loft-api/internal/core/domain"
	"github.com/pigeonpulse/loft-api/internal/core/ports"
)

// IdentityService maps verified external identities onto local users.
type IdentityService struct {
	users       ports.UserRepository
	lofts       ports.LoftRepository
	memberships ports.MembershipRepository
	log         zerolog.Logger
}

func NewIdentityService(
	users ports.UserRepository,
	lofts ports.LoftRepository,
	memberships ports.MembershipRepository,
	log zerolog.Logger,
) *IdentityService {
	return &IdentityService{users: users, lofts: lofts, memberships: memberships, log: log}
}

// Resolve finds or creates the local user for a verified external identity:
//
//  1. By subject id: an existing account; refresh email and name.
//  2. By email: an invited placeholder; attach the subject id and claim it.
//  3. Otherwise create the user together with a default loft and its OWNER
//     membership.
//
// On success the user is guaranteed to have at least one owned loft with a
// matching OWNER membership; the request filter and login flow rely on that.
func (s *IdentityService) Resolve(ctx context.Context, subjectID, email, name string) (*domain.User, error) {
	user, err := s.users.FindBySubjectID(ctx, subjectID)
	if err == nil {
		user.Email = email
		user.Name = name
		user.UpdatedAt = time.Now().UTC()
		if err := s.users.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("refresh user: %w", err)
		}
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	user, err = s.users.FindByEmail(ctx, email)
	if err == nil {
		user.SubjectID = subjectID
		user.Name = name
		user.UpdatedAt = time.Now().UTC()
		if err := s.users.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("claim invited user: %w", err)
		}
		s.log.Info().Str("user_id", user.ID).Msg("invited user claimed account")
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Name:      name,
		Email:     email,
		SubjectID: subjectID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	loft, err := createLoftWithOwner(ctx, s.lofts, s.memberships, created.ID, domain.DefaultLoftName, "")
	if err != nil {
		return nil, fmt.Errorf("create default loft: %w", err)
	}

	s.log.Info().
		Str("user_id", created.ID).
		Str("loft_id", loft.ID).
		Msg("new user registered with default loft")

	return created, nil
}

// SearchByEmail looks a user up by email for the invite flow. When no user
// exists a placeholder is created so that any valid address can be invited
// before its owner ever logs in.
func (s *IdentityService) SearchByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	placeholder, err := s.users.Create(ctx, &domain.User{
		Name:      email,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create invite placeholder: %w", err)
	}

	s.log.Info().Str("user_id", placeholder.ID).Msg("invite placeholder created")
	return placeholder, nil
}

// createLoftWithOwner creates a loft and its OWNER membership as a unit of
// work. The two inserts are not transactional in the store, so a failed
// membership insert triggers a compensating delete of the loft; the original
// error is propagated either way.
func createLoftWithOwner(
	ctx context.Context,
	lofts ports.LoftRepository,
	memberships ports.MembershipRepository,
	ownerID, name, alias string,
) (*domain.Loft, error) {
	now := time.Now().UTC()
	loft, err := lofts.Create(ctx, &domain.Loft{
		Name:      name,
		Alias:     alias,
		OwnerID:   ownerID,
		CreatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	_, err = memberships.Create(ctx, &domain.Membership{
		UserID:    ownerID,
		LoftID:    loft.ID,
		Role:      domain.RoleOwner,
		GrantedAt: now,
	})
	if err != nil {
		if delErr := lofts.Delete(ctx, loft.ID); delErr != nil {
			// Compensation failed; the loft is left without an owner
			// membership and needs a reconciliation sweep.
			return nil, fmt.Errorf("create owner membership: %w (loft %s not rolled back: %v)", err, loft.ID, delErr)
		}
		return nil, fmt.Errorf("create owner membership: %w", err)
	}

	return loft, nil
}
