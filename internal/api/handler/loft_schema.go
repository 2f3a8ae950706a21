package handler

import "time"

type createLoftRequest struct {
	Name  string `json:"name"  validate:"required"`
	Alias string `json:"alias"`
}

type updateLoftRequest struct {
	Alias string `json:"alias"`
}

type grantAccessRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

type loftResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Alias string `json:"alias,omitempty"`
}

type loftWithRoleResponse struct {
	loftResponse
	Role string `json:"role"`
}

type listLoftsResponse struct {
	Data []loftWithRoleResponse `json:"data"`
}

type loftMemberResponse struct {
	MembershipID string    `json:"membership_id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	GrantedAt    time.Time `json:"granted_at"`
}

type listMembersResponse struct {
	Data []loftMemberResponse `json:"data"`
}

type membershipResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	LoftID    string    `json:"loft_id"`
	Role      string    `json:"role"`
	GrantedAt time.Time `json:"granted_at"`
}

type listMembershipsResponse struct {
	Data []membershipResponse `json:"data"`
}
