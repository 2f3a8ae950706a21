package service

import (
	"context"
	"errors"

	"github.com/pigeonpulse/loft-api/internal/core/domain"
)

// Ancestors resolves the full ancestry of a pigeon by following father and
// mother ring references transitively, depth first with the father branch
// expanded before the mother branch at every node. Each reached pigeon
// appears exactly once: a visited set keyed by ring value stops cyclic or
// self-referencing pedigree data from recursing forever. Dangling references
// are skipped silently, and all lookups stay inside the root pigeon's loft.
func (s *PigeonService) Ancestors(ctx context.Context, userID, pigeonID string) ([]*domain.Pigeon, error) {
	root, err := s.resolveForPedigree(ctx, userID, pigeonID)
	if err != nil || root == nil {
		return []*domain.Pigeon{}, err
	}

	visited := map[string]struct{}{root.Ring: {}}
	out := make([]*domain.Pigeon, 0, 8)
	if err := s.collectAncestors(ctx, root, root.LoftID, visited, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PigeonService) collectAncestors(
	ctx context.Context,
	p *domain.Pigeon,
	loftID string,
	visited map[string]struct{},
	out *[]*domain.Pigeon,
) error {
	for _, ring := range []string{p.FatherRing, p.MotherRing} {
		if ring == "" {
			continue
		}
		if _, seen := visited[ring]; seen {
			continue
		}
		visited[ring] = struct{}{}

		parent, err := s.pigeons.FindByRing(ctx, ring, loftID)
		if err != nil {
			if errors.Is(err, domain.ErrPigeonNotFound) {
				continue
			}
			return err
		}

		*out = append(*out, parent)
		if err := s.collectAncestors(ctx, parent, loftID, visited, out); err != nil {
			return err
		}
	}
	return nil
}

// Descendants returns the direct children of a pigeon: every pigeon in the
// same loft whose father or mother ring equals this pigeon's ring. The
// lookup is deliberately one level deep; grandchildren are excluded.
func (s *PigeonService) Descendants(ctx context.Context, userID, pigeonID string) ([]*domain.Pigeon, error) {
	root, err := s.resolveForPedigree(ctx, userID, pigeonID)
	if err != nil || root == nil {
		return []*domain.Pigeon{}, err
	}

	children, err := s.pigeons.FindByParentRing(ctx, root.Ring, root.LoftID)
	if err != nil {
		return nil, err
	}
	return children, nil
}
