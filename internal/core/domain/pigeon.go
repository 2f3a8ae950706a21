package domain

import "time"

// Pigeon sex values.
const (
	SexMale    = "male"
	SexFemale  = "female"
	SexUnknown = "unknown"
)

// Pigeon status values.
const (
	StatusRacing   = "racing"
	StatusBreeding = "breeding"
	StatusOther    = "other"
)

// Pigeon is a pedigree record inside a loft. FatherRing and MotherRing are
// loose references: they hold another pigeon's ring value, are not validated
// at write time, and may dangle. Parent resolution happens at read time and
// stays inside the pigeon's own loft.
type Pigeon struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Ring       string    `json:"ring" bson:"ring"`
	Year       int       `json:"year" bson:"year"`
	Sex        string    `json:"sex,omitempty" bson:"sex,omitempty"`
	Color      string    `json:"color,omitempty" bson:"color,omitempty"`
	Line       string    `json:"line,omitempty" bson:"line,omitempty"`
	Status     string    `json:"status,omitempty" bson:"status,omitempty"`
	FatherRing string    `json:"father_ring,omitempty" bson:"father_ring,omitempty"`
	MotherRing string    `json:"mother_ring,omitempty" bson:"mother_ring,omitempty"`
	Notes      string    `json:"notes,omitempty" bson:"notes,omitempty"`
	LoftID     string    `json:"loft_id" bson:"loft_id"`
	CreatedBy  string    `json:"created_by" bson:"created_by"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
