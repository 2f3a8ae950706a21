package handler

import "time"

type pigeonRequest struct {
	Ring       string `json:"ring"        validate:"required"`
	Year       int    `json:"year"        validate:"required,gte=1950,lte=2100"`
	Sex        string `json:"sex"         validate:"required,oneof=male female unknown"`
	Color      string `json:"color"`
	Line       string `json:"line"`
	Status     string `json:"status"      validate:"required,oneof=racing breeding other"`
	FatherRing string `json:"father_ring"`
	MotherRing string `json:"mother_ring"`
	Notes      string `json:"notes"`
	// LoftID targets a specific loft; empty means the principal's default
	// loft on create, or no move on update.
	LoftID string `json:"loft_id"`
}

type pigeonResponse struct {
	ID         string    `json:"id"`
	Ring       string    `json:"ring"`
	Year       int       `json:"year"`
	Sex        string    `json:"sex"`
	Color      string    `json:"color,omitempty"`
	Line       string    `json:"line,omitempty"`
	Status     string    `json:"status"`
	FatherRing string    `json:"father_ring,omitempty"`
	MotherRing string    `json:"mother_ring,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	LoftID     string    `json:"loft_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type listPigeonsResponse struct {
	Data []pigeonResponse `json:"data"`
}

// pedigreeResponse carries a traversal result. For ancestors the order is
// father branch first, depth-first; for descendants it is the direct
// children only.
type pedigreeResponse struct {
	Data []pigeonResponse `json:"data"`
}

type statisticsResponse struct {
	Total    int64            `json:"total"`
	Racing   int64            `json:"racing"`
	Breeding int64            `json:"breeding"`
	Other    int64            `json:"other"`
	BySex    map[string]int64 `json:"by_sex"`
	ByLine   map[string]int64 `json:"by_line"`
}
