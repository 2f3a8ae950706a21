package ports

import (
	"context"

	"github.com/pigeonpulse/loft-api/internal/core/domain"
)

// ListPigeonsFilter carries the optional query parameters for listing the
// pigeons of one loft. Empty fields are not applied.
type ListPigeonsFilter struct {
	LoftID string
	Status string
	Sex    string
	Line   string
	// Search matches case-insensitively against ring, color, and line.
	Search string
}

// PigeonRepository defines persistence operations for pigeons.
// Ring lookups are always scoped to a single loft so that reused ring
// identifiers in other lofts can never leak into a pedigree.
type PigeonRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Pigeon, error)
	FindByLoftID(ctx context.Context, filter ListPigeonsFilter) ([]*domain.Pigeon, error)
	FindByRing(ctx context.Context, ring, loftID string) (*domain.Pigeon, error)
	// FindByParentRing returns every pigeon in the loft whose father or
	// mother reference equals ring.
	FindByParentRing(ctx context.Context, ring, loftID string) ([]*domain.Pigeon, error)
	Create(ctx context.Context, p *domain.Pigeon) (*domain.Pigeon, error)
	Update(ctx context.Context, p *domain.Pigeon) error
	Delete(ctx context.Context, id string) error
}
