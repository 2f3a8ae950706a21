package ports

import (
	"context"

	"github.com/pigeonpulse/loft-api/internal/core/domain"
)

// LoftStatistics aggregates the pigeons of one loft.
type LoftStatistics struct {
	Total    int64            `json:"total"`
	Racing   int64            `json:"racing"`
	Breeding int64            `json:"breeding"`
	Other    int64            `json:"other"`
	BySex    map[string]int64 `json:"by_sex"`
	ByLine   map[string]int64 `json:"by_line"`
}

// CensusInput selects the pigeons included in a census export.
type CensusInput struct {
	UserID string
	LoftID string
	Status string
	Sex    string
	Line   string
}

// CensusRenderer renders a loft census to a PDF document.
type CensusRenderer interface {
	Render(loft *domain.Loft, pigeons []*domain.Pigeon) ([]byte, error)
}

// ReportService computes statistics and exports for a loft.
type ReportService interface {
	Statistics(ctx context.Context, userID, loftID string) (*LoftStatistics, error)
	CensusPDF(ctx context.Context, input CensusInput) ([]byte, error)
}
