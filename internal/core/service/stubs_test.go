package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pigeonpulse/loft-api/internal/core/domain"
	"github.com/pigeonpulse/loft-api/internal/core/ports"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// --- user repository stub ---

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindBySubjectID(_ context.Context, subjectID string) (*domain.User, error) {
	if subjectID == "" {
		return nil, domain.ErrUserNotFound
	}
	for _, u := range r.users {
		if u.SubjectID == subjectID {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.nextID++
	clone := *user
	clone.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

// --- loft repository stub ---

type stubLoftRepo struct {
	lofts  map[string]*domain.Loft
	nextID int
	// failCreate and failDelete force errors for compensation tests.
	failCreate bool
	failDelete bool
}

func newStubLoftRepo() *stubLoftRepo {
	return &stubLoftRepo{lofts: make(map[string]*domain.Loft)}
}

func (r *stubLoftRepo) FindByID(_ context.Context, id string) (*domain.Loft, error) {
	if l, ok := r.lofts[id]; ok {
		clone := *l
		return &clone, nil
	}
	return nil, domain.ErrLoftNotFound
}

func (r *stubLoftRepo) FindByOwnerID(_ context.Context, ownerID string) ([]*domain.Loft, error) {
	var out []*domain.Loft
	for _, l := range r.lofts {
		if l.OwnerID == ownerID {
			clone := *l
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubLoftRepo) Create(_ context.Context, loft *domain.Loft) (*domain.Loft, error) {
	if r.failCreate {
		return nil, fmt.Errorf("loft create failed")
	}
	r.nextID++
	clone := *loft
	clone.ID = fmt.Sprintf("loft-%d", r.nextID)
	r.lofts[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubLoftRepo) Update(_ context.Context, loft *domain.Loft) error {
	if _, ok := r.lofts[loft.ID]; !ok {
		return domain.ErrLoftNotFound
	}
	clone := *loft
	r.lofts[loft.ID] = &clone
	return nil
}

func (r *stubLoftRepo) Delete(_ context.Context, id string) error {
	if r.failDelete {
		return fmt.Errorf("loft delete failed")
	}
	if _, ok := r.lofts[id]; !ok {
		return domain.ErrLoftNotFound
	}
	delete(r.lofts, id)
	return nil
}

// --- membership repository stub ---

type stubMembershipRepo struct {
	memberships map[string]*domain.Membership
	nextID      int
	failCreate  bool
}

func newStubMembershipRepo() *stubMembershipRepo {
	return &stubMembershipRepo{memberships: make(map[string]*domain.Membership)}
}

func (r *stubMembershipRepo) FindByID(_ context.Context, id string) (*domain.Membership, error) {
	if m, ok := r.memberships[id]; ok {
		clone := *m
		return &clone, nil
	}
	return nil, domain.ErrMembershipNotFound
}

func (r *stubMembershipRepo) FindByUserID(_ context.Context, userID string) ([]*domain.Membership, error) {
	var out []*domain.Membership
	for _, m := range r.memberships {
		if m.UserID == userID {
			clone := *m
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubMembershipRepo) FindByLoftID(_ context.Context, loftID string) ([]*domain.Membership, error) {
	var out []*domain.Membership
	for _, m := range r.memberships {
		if m.LoftID == loftID {
			clone := *m
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubMembershipRepo) FindByUserAndLoft(_ context.Context, userID, loftID string) (*domain.Membership, error) {
	for _, m := range r.memberships {
		if m.UserID == userID && m.LoftID == loftID {
			clone := *m
			return &clone, nil
		}
	}
	return nil, domain.ErrMembershipNotFound
}

func (r *stubMembershipRepo) Create(_ context.Context, m *domain.Membership) (*domain.Membership, error) {
	if r.failCreate {
		return nil, fmt.Errorf("membership create failed")
	}
	for _, existing := range r.memberships {
		if existing.UserID == m.UserID && existing.LoftID == m.LoftID {
			return nil, domain.ErrMembershipExists
		}
	}
	r.nextID++
	clone := *m
	clone.ID = fmt.Sprintf("membership-%d", r.nextID)
	r.memberships[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubMembershipRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.memberships[id]; !ok {
		return domain.ErrMembershipNotFound
	}
	delete(r.memberships, id)
	return nil
}

// --- pigeon repository stub ---

type stubPigeonRepo struct {
	pigeons map[string]*domain.Pigeon
	nextID  int
}

func newStubPigeonRepo() *stubPigeonRepo {
	return &stubPigeonRepo{pigeons: make(map[string]*domain.Pigeon)}
}

func (r *stubPigeonRepo) FindByID(_ context.Context, id string) (*domain.Pigeon, error) {
	if p, ok := r.pigeons[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrPigeonNotFound
}

func (r *stubPigeonRepo) FindByLoftID(_ context.Context, filter ports.ListPigeonsFilter) ([]*domain.Pigeon, error) {
	var out []*domain.Pigeon
	for _, p := range r.pigeons {
		if p.LoftID != filter.LoftID {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.Sex != "" && p.Sex != filter.Sex {
			continue
		}
		if filter.Line != "" && p.Line != filter.Line {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(p.Ring), needle) &&
				!strings.Contains(strings.ToLower(p.Color), needle) &&
				!strings.Contains(strings.ToLower(p.Line), needle) {
				continue
			}
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubPigeonRepo) FindByRing(_ context.Context, ring, loftID string) (*domain.Pigeon, error) {
	for _, p := range r.pigeons {
		if p.Ring == ring && p.LoftID == loftID {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrPigeonNotFound
}

func (r *stubPigeonRepo) FindByParentRing(_ context.Context, ring, loftID string) ([]*domain.Pigeon, error) {
	var out []*domain.Pigeon
	for _, p := range r.pigeons {
		if p.LoftID == loftID && (p.FatherRing == ring || p.MotherRing == ring) {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubPigeonRepo) Create(_ context.Context, p *domain.Pigeon) (*domain.Pigeon, error) {
	r.nextID++
	clone := *p
	if clone.ID == "" {
		clone.ID = fmt.Sprintf("pigeon-%d", r.nextID)
	}
	r.pigeons[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPigeonRepo) Update(_ context.Context, p *domain.Pigeon) error {
	if _, ok := r.pigeons[p.ID]; !ok {
		return domain.ErrPigeonNotFound
	}
	clone := *p
	r.pigeons[p.ID] = &clone
	return nil
}

func (r *stubPigeonRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.pigeons[id]; !ok {
		return domain.ErrPigeonNotFound
	}
	delete(r.pigeons, id)
	return nil
}

// --- identity verifier stub ---

type stubVerifier struct {
	identity *ports.ExternalIdentity
	err      error
}

func (v *stubVerifier) Verify(_ context.Context, _ string) (*ports.ExternalIdentity, error) {
	if v.err != nil {
		return nil, v.err
	}
	clone := *v.identity
	return &clone, nil
}

// --- token denylist stub ---

type stubDenylist struct {
	revoked map[string]bool
	err     error
}

func newStubDenylist() *stubDenylist {
	return &stubDenylist{revoked: make(map[string]bool)}
}

func (d *stubDenylist) Revoke(_ context.Context, token string, _ time.Duration) error {
	if d.err != nil {
		return d.err
	}
	d.revoked[token] = true
	return nil
}

func (d *stubDenylist) IsRevoked(_ context.Context, token string) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	return d.revoked[token], nil
}
