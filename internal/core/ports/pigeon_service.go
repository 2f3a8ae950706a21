package ports

import (
	"context"

	"github.com/pigeonpulse/loft-api/internal/core/domain"
)

// PigeonInput carries the writable fields of a pigeon.
type PigeonInput struct {
	Ring       string
	Year       int
	Sex        string
	Color      string
	Line       string
	Status     string
	FatherRing string
	MotherRing string
	Notes      string
}

// ListPigeonsInput identifies the requesting user, the target loft, and the
// optional filters. LoftID is the already-resolved target (explicit request
// parameter, or the principal's default).
type ListPigeonsInput struct {
	UserID string
	ListPigeonsFilter
}

// CreatePigeonInput creates a pigeon in the target loft, stamped with the
// creating user.
type CreatePigeonInput struct {
	UserID string
	LoftID string
	Pigeon PigeonInput
}

// UpdatePigeonInput updates an existing pigeon. TargetLoftID moves the
// pigeon when non-empty; otherwise the pigeon stays in its current loft.
type UpdatePigeonInput struct {
	UserID       string
	PigeonID     string
	TargetLoftID string
	Pigeon       PigeonInput
}

// PigeonService covers pigeon CRUD and pedigree traversal. Every operation
// authorizes the caller against the loft the data actually lives in.
type PigeonService interface {
	List(ctx context.Context, input ListPigeonsInput) ([]*domain.Pigeon, error)
	Get(ctx context.Context, userID, pigeonID string) (*domain.Pigeon, error)
	Create(ctx context.Context, input CreatePigeonInput) (*domain.Pigeon, error)
	Update(ctx context.Context, input UpdatePigeonInput) (*domain.Pigeon, error)
	Delete(ctx context.Context, userID, pigeonID string) error

	// Ancestors walks father and mother references transitively, father
	// branch first, within the pigeon's loft, guarding against reference
	// cycles. A missing pigeon yields an empty result.
	Ancestors(ctx context.Context, userID, pigeonID string) ([]*domain.Pigeon, error)
	// Descendants returns the direct children only: pigeons whose father or
	// mother ring equals this pigeon's ring. Deliberately one level deep;
	// grandchildren are not included.
	Descendants(ctx context.Context, userID, pigeonID string) ([]*domain.Pigeon, error)
}
