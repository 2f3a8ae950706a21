package ports

import (
	"context"

	"github.com/pigeonpulse/loft-api/internal/core/domain"
)

// LoftRepository defines persistence operations for lofts.
type LoftRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Loft, error)
	FindByOwnerID(ctx context.Context, ownerID string) ([]*domain.Loft, error)
	Create(ctx context.Context, loft *domain.Loft) (*domain.Loft, error)
	Update(ctx context.Context, loft *domain.Loft) error
	Delete(ctx context.Context, id string) error
}

// MembershipRepository defines persistence operations for the
// user/loft/role relation.
type MembershipRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Membership, error)
	FindByUserID(ctx context.Context, userID string) ([]*domain.Membership, error)
	FindByLoftID(ctx context.Context, loftID string) ([]*domain.Membership, error)
	// FindByUserAndLoft returns domain.ErrMembershipNotFound when no relation
	// exists for the pair.
	FindByUserAndLoft(ctx context.Context, userID, loftID string) (*domain.Membership, error)
	Create(ctx context.Context, m *domain.Membership) (*domain.Membership, error)
	Delete(ctx context.Context, id string) error
}
