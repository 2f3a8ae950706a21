package handler

import (
	"github.com/pigeonpulse/loft-api/internal/core/domain"
	"github.com/pigeonpulse/loft-api/internal/core/ports"
)

func toPigeonInput(req pigeonRequest) ports.PigeonInput {
	return ports.PigeonInput{
		Ring:       req.Ring,
		Year:       req.Year,
		Sex:        req.Sex,
		Color:      req.Color,
		Line:       req.Line,
		Status:     req.Status,
		FatherRing: req.FatherRing,
		MotherRing: req.MotherRing,
		Notes:      req.Notes,
	}
}

func toPigeonResponse(p *domain.Pigeon) pigeonResponse {
	return pigeonResponse{
		ID:         p.ID,
		Ring:       p.Ring,
		Year:       p.Year,
		Sex:        p.Sex,
		Color:      p.Color,
		Line:       p.Line,
		Status:     p.Status,
		FatherRing: p.FatherRing,
		MotherRing: p.MotherRing,
		Notes:      p.Notes,
		LoftID:     p.LoftID,
		CreatedAt:  p.CreatedAt.UTC(),
	}
}

func toPigeonListResponse(pigeons []*domain.Pigeon) []pigeonResponse {
	out := make([]pigeonResponse, len(pigeons))
	for i, p := range pigeons {
		out[i] = toPigeonResponse(p)
	}
	return out
}
