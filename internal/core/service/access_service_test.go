package service

import (
	"context"
	"testing"
	"time"

	"github.com/pigeonpulse/loft-api/internal/core/domain"
)

func TestAccessService_RoleOf(t *testing.T) {
	memberships := newStubMembershipRepo()
	svc := NewAccessService(memberships)

	_, _ = memberships.Create(context.Background(), &domain.Membership{
		UserID: "user-1", LoftID: "loft-1", Role: domain.RoleOwner, GrantedAt: time.Now(),
	})
	_, _ = memberships.Create(context.Background(), &domain.Membership{
		UserID: "user-2", LoftID: "loft-1", Role: domain.RoleCollaborator, GrantedAt: time.Now(),
	})

	role, ok, err := svc.RoleOf(context.Background(), "user-1", "loft-1")
	if err != nil || !ok || role != domain.RoleOwner {
		t.Fatalf("RoleOf owner = %q, %v, %v", role, ok, err)
	}

	role, ok, err = svc.RoleOf(context.Background(), "user-2", "loft-1")
	if err != nil || !ok || role != domain.RoleCollaborator {
		t.Fatalf("RoleOf collaborator = %q, %v, %v", role, ok, err)
	}

	_, ok, err = svc.RoleOf(context.Background(), "user-3", "loft-1")
	if err != nil {
		t.Fatalf("missing membership should not be an error: %v", err)
	}
	if ok {
		t.Fatalf("RoleOf reported a membership that does not exist")
	}
}

func TestAccessService_HasAccess(t *testing.T) {
	memberships := newStubMembershipRepo()
	svc := NewAccessService(memberships)

	_, _ = memberships.Create(context.Background(), &domain.Membership{
		UserID: "user-1", LoftID: "loft-1", Role: domain.RoleCollaborator, GrantedAt: time.Now(),
	})

	if ok, _ := svc.HasAccess(context.Background(), "user-1", "loft-1"); !ok {
		t.Fatalf("member denied access")
	}
	if ok, _ := svc.HasAccess(context.Background(), "user-1", "loft-2"); ok {
		t.Fatalf("access granted to a loft without membership")
	}
}

func TestAccessService_RequireOwner(t *testing.T) {
	memberships := newStubMembershipRepo()
	svc := NewAccessService(memberships)

	_, _ = memberships.Create(context.Background(), &domain.Membership{
		UserID: "owner", LoftID: "loft-1", Role: domain.RoleOwner, GrantedAt: time.Now(),
	})
	_, _ = memberships.Create(context.Background(), &domain.Membership{
		UserID: "collab", LoftID: "loft-1", Role: domain.RoleCollaborator, GrantedAt: time.Now(),
	})

	if ok, _ := svc.RequireOwner(context.Background(), "owner", "loft-1"); !ok {
		t.Fatalf("owner not recognised")
	}
	if ok, _ := svc.RequireOwner(context.Background(), "collab", "loft-1"); ok {
		t.Fatalf("collaborator passed the owner check")
	}
	if ok, _ := svc.RequireOwner(context.Background(), "stranger", "loft-1"); ok {
		t.Fatalf("non-member passed the owner check")
	}
}

func TestRoleCapabilities(t *testing.T) {
	if !domain.RoleOwner.CanManageMembers() {
		t.Fatalf("owner should manage members")
	}
	if domain.RoleCollaborator.CanManageMembers() {
		t.Fatalf("collaborator should not manage members")
	}
	if !domain.RoleCollaborator.CanEditPigeons() || !domain.RoleCollaborator.CanViewReports() {
		t.Fatalf("collaborator should edit pigeons and view reports")
	}

	if _, ok := domain.ParseRole("OWNER"); !ok {
		t.Fatalf("OWNER should parse")
	}
	if _, ok := domain.ParseRole("ADMIN"); ok {
		t.Fatalf("unknown role parsed")
	}
}
