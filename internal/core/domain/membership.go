package domain

import "time"

// Role is the closed set of roles a user can hold in a loft.
type Role string

const (
	RoleOwner        Role = "OWNER"
	RoleCollaborator Role = "COLLABORATOR"
)

// ParseRole converts a stored string into a Role, reporting whether the
// value is one of the two known variants.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleOwner, RoleCollaborator:
		return Role(s), true
	}
	return "", false
}

// CanEditPigeons reports whether the role may create, update, or delete
// pigeons. Both roles can.
func (r Role) CanEditPigeons() bool {
	return r == RoleOwner || r == RoleCollaborator
}

// CanViewReports reports whether the role may view statistics and exports.
// Both roles can.
func (r Role) CanViewReports() bool {
	return r == RoleOwner || r == RoleCollaborator
}

// CanManageMembers reports whether the role may grant or revoke loft access
// and rename the loft. Owner only.
func (r Role) CanManageMembers() bool {
	return r == RoleOwner
}

// Membership binds a user to a loft with a role. There is exactly one
// membership per (user, loft) pair; the OWNER membership is created together
// with the loft and is expected to live as long as the loft does.
type Membership struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"user_id" bson:"user_id"`
	LoftID    string    `json:"loft_id" bson:"loft_id"`
	Role      Role      `json:"role" bson:"role"`
	GrantedAt time.Time `json:"granted_at" bson:"granted_at"`
}
