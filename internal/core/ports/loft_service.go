package ports

import (
	"context"
	"time"

	"github.com/pigeonpulse/loft-api/internal/core/domain"
)

// LoftWithRole pairs a loft with the requesting user's role in it.
type LoftWithRole struct {
	Loft *domain.Loft
	Role domain.Role
}

// LoftMember is one row of a loft's access list, joined with user details.
type LoftMember struct {
	MembershipID string
	UserID       string
	UserName     string
	UserEmail    string
	Role         domain.Role
	GrantedAt    time.Time
}

// CreateLoftInput carries the data for an explicit loft creation.
type CreateLoftInput struct {
	OwnerID string
	Name    string
	Alias   string
}

// UpdateLoftInput updates a loft's display fields. Only the owner may call.
type UpdateLoftInput struct {
	UserID string
	LoftID string
	// Alias replaces the current alias; an empty string clears it.
	Alias string
}

// LoftService covers loft management and the membership protocol.
type LoftService interface {
	// ListMine returns every loft the user belongs to, with their role.
	ListMine(ctx context.Context, userID string) ([]LoftWithRole, error)
	// Create makes a loft plus its OWNER membership as one unit of work:
	// if the membership insert fails the loft is removed again.
	Create(ctx context.Context, input CreateLoftInput) (*domain.Loft, error)
	Update(ctx context.Context, input UpdateLoftInput) (*domain.Loft, error)
	// ListMembers returns the access list; any member may view it.
	ListMembers(ctx context.Context, userID, loftID string) ([]LoftMember, error)
	// Grant adds a COLLABORATOR membership; owner only.
	Grant(ctx context.Context, ownerID, loftID, granteeID string) (*domain.Membership, error)
	// Revoke removes the member's relation; owner only.
	Revoke(ctx context.Context, ownerID, loftID, memberID string) error
	// Memberships returns the raw relations of one user (the roles listing).
	Memberships(ctx context.Context, userID string) ([]*domain.Membership, error)
}
