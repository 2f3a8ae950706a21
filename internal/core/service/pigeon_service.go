package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/pigeonpulse/loft-api/internal/core/domain"
	"github.com/pigeonpulse/loft-api/internal/core/ports"
)

// PigeonService implements pigeon CRUD and pedigree traversal. Every
// operation re-authorizes against the loft the data actually lives in; the
// token's default loft is never trusted here.
type PigeonService struct {
	pigeons ports.PigeonRepository
	access  ports.AccessService
	log     zerolog.Logger
}

func NewPigeonService(pigeons ports.PigeonRepository, access ports.AccessService, log zerolog.Logger) *PigeonService {
	return &PigeonService{pigeons: pigeons, access: access, log: log}
}

// List returns the pigeons of the target loft matching the filters.
func (s *PigeonService) List(ctx context.Context, input ports.ListPigeonsInput) ([]*domain.Pigeon, error) {
	if err := s.authorize(ctx, input.UserID, input.LoftID); err != nil {
		return nil, err
	}
	return s.pigeons.FindByLoftID(ctx, input.ListPigeonsFilter)
}

// Get returns one pigeon after checking the caller's access to its loft.
func (s *PigeonService) Get(ctx context.Context, userID, pigeonID string) (*domain.Pigeon, error) {
	p, err := s.pigeons.FindByID(ctx, pigeonID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, userID, p.LoftID); err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a pigeon into the target loft, stamped with the creator.
func (s *PigeonService) Create(ctx context.Context, input ports.CreatePigeonInput) (*domain.Pigeon, error) {
	if err := s.authorize(ctx, input.UserID, input.LoftID); err != nil {
		return nil, err
	}

	p := pigeonFromInput(input.Pigeon)
	p.LoftID = input.LoftID
	p.CreatedBy = input.UserID
	p.CreatedAt = time.Now().UTC()

	created, err := s.pigeons.Create(ctx, p)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("pigeon_id", created.ID).Str("ring", created.Ring).Str("loft_id", input.LoftID).Msg("pigeon created")
	return created, nil
}

// Update rewrites a pigeon's fields. When TargetLoftID is set the pigeon
// moves lofts, and the caller needs access to the destination.
func (s *PigeonService) Update(ctx context.Context, input ports.UpdatePigeonInput) (*domain.Pigeon, error) {
	existing, err := s.pigeons.FindByID(ctx, input.PigeonID)
	if err != nil {
		return nil, err
	}

	targetLoftID := existing.LoftID
	if input.TargetLoftID != "" {
		targetLoftID = input.TargetLoftID
	}
	if err := s.authorize(ctx, input.UserID, targetLoftID); err != nil {
		return nil, err
	}
	if targetLoftID != existing.LoftID {
		// Moving between lofts requires access to both sides.
		if err := s.authorize(ctx, input.UserID, existing.LoftID); err != nil {
			return nil, err
		}
	}

	p := pigeonFromInput(input.Pigeon)
	p.ID = existing.ID
	p.LoftID = targetLoftID
	p.CreatedBy = existing.CreatedBy
	p.CreatedAt = existing.CreatedAt

	if err := s.pigeons.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a pigeon after checking access to its loft.
func (s *PigeonService) Delete(ctx context.Context, userID, pigeonID string) error {
	p, err := s.pigeons.FindByID(ctx, pigeonID)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, userID, p.LoftID); err != nil {
		return err
	}
	return s.pigeons.Delete(ctx, pigeonID)
}

// authorize fails with ErrForbidden unless the user holds a membership for
// the loft.
func (s *PigeonService) authorize(ctx context.Context, userID, loftID string) error {
	ok, err := s.access.HasAccess(ctx, userID, loftID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrForbidden
	}
	return nil
}

// resolveForPedigree loads the traversal root. A missing pigeon is not an
// error for pedigree lookups; both traversals return an empty result then.
func (s *PigeonService) resolveForPedigree(ctx context.Context, userID, pigeonID string) (*domain.Pigeon, error) {
	p, err := s.pigeons.FindByID(ctx, pigeonID)
	if err != nil {
		if errors.Is(err, domain.ErrPigeonNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := s.authorize(ctx, userID, p.LoftID); err != nil {
		return nil, err
	}
	return p, nil
}

func pigeonFromInput(in ports.PigeonInput) *domain.Pigeon {
	return &domain.Pigeon{
		Ring:       in.Ring,
		Year:       in.Year,
		Sex:        in.Sex,
		Color:      in.Color,
		Line:       in.Line,
		Status:     in.Status,
		FatherRing: in.FatherRing,
		MotherRing: in.MotherRing,
		Notes:      in.Notes,
	}
}
