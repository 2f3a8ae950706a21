package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pigeonpulse/loft-api/internal/core/domain"
	"github.com/pigeonpulse/loft-api/internal/core/ports"
)

// ReportService computes per-loft statistics and renders the census export.
type ReportService struct {
	pigeons  ports.PigeonRepository
	lofts    ports.LoftRepository
	access   ports.AccessService
	renderer ports.CensusRenderer
	log      zerolog.Logger
}

func NewReportService(
	pigeons ports.PigeonRepository,
	lofts ports.LoftRepository,
	access ports.AccessService,
	renderer ports.CensusRenderer,
	log zerolog.Logger,
) *ReportService {
	return &ReportService{
		pigeons:  pigeons,
		lofts:    lofts,
		access:   access,
		renderer: renderer,
		log:      log,
	}
}

// Statistics aggregates the pigeons of the target loft by status, sex, and
// line. Viewing reports is open to every member role.
func (s *ReportService) Statistics(ctx context.Context, userID, loftID string) (*ports.LoftStatistics, error) {
	if err := s.authorizeViewer(ctx, userID, loftID); err != nil {
		return nil, err
	}

	pigeons, err := s.pigeons.FindByLoftID(ctx, ports.ListPigeonsFilter{LoftID: loftID})
	if err != nil {
		return nil, err
	}

	stats := &ports.LoftStatistics{
		BySex:  make(map[string]int64),
		ByLine: make(map[string]int64),
	}
	for _, p := range pigeons {
		stats.Total++
		switch p.Status {
		case domain.StatusRacing:
			stats.Racing++
		case domain.StatusBreeding:
			stats.Breeding++
		default:
			stats.Other++
		}
		if p.Sex != "" {
			stats.BySex[p.Sex]++
		}
		if p.Line != "" {
			stats.ByLine[p.Line]++
		}
	}
	return stats, nil
}

// CensusPDF renders the loft's pigeons, optionally filtered, as a PDF.
func (s *ReportService) CensusPDF(ctx context.Context, input ports.CensusInput) ([]byte, error) {
	if err := s.authorizeViewer(ctx, input.UserID, input.LoftID); err != nil {
		return nil, err
	}

	loft, err := s.lofts.FindByID(ctx, input.LoftID)
	if err != nil {
		return nil, err
	}

	pigeons, err := s.pigeons.FindByLoftID(ctx, ports.ListPigeonsFilter{
		LoftID: input.LoftID,
		Status: input.Status,
		Sex:    input.Sex,
		Line:   input.Line,
	})
	if err != nil {
		return nil, err
	}

	doc, err := s.renderer.Render(loft, pigeons)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("loft_id", input.LoftID).Int("pigeons", len(pigeons)).Msg("census pdf generated")
	return doc, nil
}

func (s *ReportService) authorizeViewer(ctx context.Context, userID, loftID string) error {
	role, ok, err := s.access.RoleOf(ctx, userID, loftID)
	if err != nil {
		return err
	}
	if !ok || !role.CanViewReports() {
		return domain.ErrForbidden
	}
	return nil
}
