package domain

import "time"

// User models a breeder account. A user is created either on first login
// (SubjectID populated from the verified identity token) or as a placeholder
// when someone invites an email address that has never logged in. Placeholders
// keep an empty SubjectID until the invitee signs in and claims the record.
type User struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	SubjectID string    `json:"-" bson:"subject_id,omitempty"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Address   string    `json:"address,omitempty" bson:"address,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Registered reports whether the user has completed a login, as opposed to
// being an invite-only placeholder.
func (u *User) Registered() bool {
	return u.SubjectID != ""
}
