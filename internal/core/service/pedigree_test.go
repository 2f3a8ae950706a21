package service

import (
	"context"
	"testing"
	"time"

	"github.com/pigeonpulse/loft-api/internal/core/domain"
)

func newPedigreeFixture(t *testing.T) (*PigeonService, *stubPigeonRepo) {
	t.Helper()
	pigeons := newStubPigeonRepo()
	memberships := newStubMembershipRepo()
	_, _ = memberships.Create(context.Background(), &domain.Membership{
		UserID: "user-1", LoftID: "loft-1", Role: domain.RoleOwner, GrantedAt: time.Now(),
	})
	svc := NewPigeonService(pigeons, NewAccessService(memberships), testLogger())
	return svc, pigeons
}

func addPigeon(r *stubPigeonRepo, id, ring, father, mother, loftID string) {
	r.pigeons[id] = &domain.Pigeon{
		ID: id, Ring: ring, FatherRing: father, MotherRing: mother, LoftID: loftID,
	}
}

func ringsOf(pigeons []*domain.Pigeon) []string {
	out := make([]string, len(pigeons))
	for i, p := range pigeons {
		out[i] = p.Ring
	}
	return out
}

func TestAncestors_FatherBranchFirst(t *testing.T) {
	svc, repo := newPedigreeFixture(t)

	// A's father is B, mother is C. B's father is D.
	addPigeon(repo, "a", "A", "B", "C", "loft-1")
	addPigeon(repo, "b", "B", "D", "", "loft-1")
	addPigeon(repo, "c", "C", "", "", "loft-1")
	addPigeon(repo, "d", "D", "", "", "loft-1")

	got, err := svc.Ancestors(context.Background(), "user-1", "a")
	if err != nil {
		t.Fatalf("Ancestors returned error: %v", err)
	}

	want := []string{"B", "D", "C"}
	rings := ringsOf(got)
	if len(rings) != len(want) {
		t.Fatalf("expected %v, got %v", want, rings)
	}
	for i := range want {
		if rings[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, rings)
		}
	}
}

func TestAncestors_CycleTerminates(t *testing.T) {
	svc, repo := newPedigreeFixture(t)

	// Corrupt data: A's father is B, and B's father is A again.
	addPigeon(repo, "a", "A", "B", "", "loft-1")
	addPigeon(repo, "b", "B", "A", "", "loft-1")

	got, err := svc.Ancestors(context.Background(), "user-1", "a")
	if err != nil {
		t.Fatalf("Ancestors returned error: %v", err)
	}
	if len(got) != 1 || got[0].Ring != "B" {
		t.Fatalf("expected [B] from cyclic pedigree, got %v", ringsOf(got))
	}
}

func TestAncestors_DanglingReferenceSkipped(t *testing.T) {
	svc, repo := newPedigreeFixture(t)

	addPigeon(repo, "a", "A", "GHOST", "C", "loft-1")
	addPigeon(repo, "c", "C", "", "", "loft-1")

	got, err := svc.Ancestors(context.Background(), "user-1", "a")
	if err != nil {
		t.Fatalf("Ancestors returned error: %v", err)
	}
	if len(got) != 1 || got[0].Ring != "C" {
		t.Fatalf("expected dangling father to be skipped, got %v", ringsOf(got))
	}
}

func TestAncestors_ScopedToLoft(t *testing.T) {
	svc, repo := newPedigreeFixture(t)

	// Another loft reuses ring B; it must not appear in loft-1's pedigree.
	addPigeon(repo, "a", "A", "B", "", "loft-1")
	addPigeon(repo, "other-b", "B", "", "", "loft-2")

	got, err := svc.Ancestors(context.Background(), "user-1", "a")
	if err != nil {
		t.Fatalf("Ancestors returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("pedigree crossed loft boundary: %v", ringsOf(got))
	}
}

func TestAncestors_MissingRootIsEmpty(t *testing.T) {
	svc, _ := newPedigreeFixture(t)

	got, err := svc.Ancestors(context.Background(), "user-1", "nope")
	if err != nil {
		t.Fatalf("missing root should not error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", ringsOf(got))
	}
}

func TestDescendants_OneLevelOnly(t *testing.T) {
	svc, repo := newPedigreeFixture(t)

	addPigeon(repo, "a", "A", "", "", "loft-1")
	addPigeon(repo, "b", "B", "A", "", "loft-1")
	addPigeon(repo, "c", "C", "", "A", "loft-1")
	// Grandchild through B; must not be returned.
	addPigeon(repo, "d", "D", "B", "", "loft-1")

	got, err := svc.Descendants(context.Background(), "user-1", "a")
	if err != nil {
		t.Fatalf("Descendants returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected direct children only, got %v", ringsOf(got))
	}
	for _, p := range got {
		if p.Ring == "D" {
			t.Fatalf("grandchild included in descendants")
		}
	}
}

func TestPedigree_ForbiddenForNonMember(t *testing.T) {
	svc, repo := newPedigreeFixture(t)
	addPigeon(repo, "x", "X", "", "", "loft-2")

	if _, err := svc.Ancestors(context.Background(), "user-1", "x"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Descendants(context.Background(), "user-1", "x"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
