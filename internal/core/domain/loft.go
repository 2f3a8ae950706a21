package domain

import "time"

// Loft is the tenant boundary: a pigeon loft owning a set of pigeons.
// OwnerID is set at creation and never changes afterwards.
type Loft struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Alias     string    `json:"alias,omitempty" bson:"alias,omitempty"`
	OwnerID   string    `json:"owner_id" bson:"owner_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// DefaultLoftName is the name given to the loft created automatically on a
// user's first login.
const DefaultLoftName = "My Loft"

// DisplayName returns the alias when set, otherwise the loft name.
func (l *Loft) DisplayName() string {
	if l.Alias != "" {
		return l.Alias
	}
	return l.Name
}
