package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pigeonpulse/loft-api/internal/api/middleware"
	"github.com/pigeonpulse/loft-api/internal/core/domain"
	"github.com/pigeonpulse/loft-api/internal/core/ports"
)

type stubPigeonService struct {
	created   *ports.CreatePigeonInput
	pigeon    *domain.Pigeon
	err       error
	ancestors []*domain.Pigeon
}

func (s *stubPigeonService) List(context.Context, ports.ListPigeonsInput) ([]*domain.Pigeon, error) {
	return []*domain.Pigeon{s.pigeon}, s.err
}

func (s *stubPigeonService) Get(context.Context, string, string) (*domain.Pigeon, error) {
	return s.pigeon, s.err
}

func (s *stubPigeonService) Create(_ context.Context, input ports.CreatePigeonInput) (*domain.Pigeon, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = &input
	return s.pigeon, nil
}

func (s *stubPigeonService) Update(context.Context, ports.UpdatePigeonInput) (*domain.Pigeon, error) {
	return s.pigeon, s.err
}

func (s *stubPigeonService) Delete(context.Context, string, string) error { return s.err }

func (s *stubPigeonService) Ancestors(context.Context, string, string) ([]*domain.Pigeon, error) {
	return s.ancestors, s.err
}

func (s *stubPigeonService) Descendants(context.Context, string, string) ([]*domain.Pigeon, error) {
	return s.ancestors, s.err
}

func principal() middleware.Principal {
	return middleware.Principal{
		User: &domain.User{ID: "user-1", Name: "Alice", Email: "alice@example.com", SubjectID: "sub-1"},
		Loft: &domain.Loft{ID: "loft-1", Name: "Main", OwnerID: "user-1"},
		Role: domain.RoleOwner,
	}
}

func newPigeonContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("principal", principal())
	return c, rec
}

func TestPigeonHandler_Create(t *testing.T) {
	svc := &stubPigeonService{pigeon: &domain.Pigeon{
		ID: "p1", Ring: "BE-2024-1001", Year: 2024, Sex: domain.SexMale,
		Status: domain.StatusRacing, LoftID: "loft-1",
	}}
	h := NewPigeonHandler(svc)

	body := `{"ring":"BE-2024-1001","year":2024,"sex":"male","status":"racing"}`
	c, rec := newPigeonContext(t, http.MethodPost, "/api/pigeons", body)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.created == nil {
		t.Fatalf("service not called")
	}
	// No explicit loft in the payload: the principal's default applies.
	if svc.created.LoftID != "loft-1" || svc.created.UserID != "user-1" {
		t.Fatalf("unexpected input: %+v", svc.created)
	}

	var resp pigeonResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != "p1" || resp.Ring != "BE-2024-1001" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestPigeonHandler_Create_ExplicitLoft(t *testing.T) {
	svc := &stubPigeonService{pigeon: &domain.Pigeon{ID: "p1", Ring: "A", LoftID: "loft-2"}}
	h := NewPigeonHandler(svc)

	body := `{"ring":"A","year":2024,"sex":"female","status":"breeding","loft_id":"loft-2"}`
	c, _ := newPigeonContext(t, http.MethodPost, "/api/pigeons", body)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if svc.created.LoftID != "loft-2" {
		t.Fatalf("explicit loft ignored: %+v", svc.created)
	}
}

func TestPigeonHandler_Create_ValidationFailure(t *testing.T) {
	h := NewPigeonHandler(&stubPigeonService{})

	body := `{"ring":"A","year":2024,"sex":"robot","status":"racing"}`
	c, _ := newPigeonContext(t, http.MethodPost, "/api/pigeons", body)
	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad sex value, got %v", err)
	}
}

func TestPigeonHandler_Create_ForbiddenPropagates(t *testing.T) {
	svc := &stubPigeonService{err: domain.ErrForbidden}
	h := NewPigeonHandler(svc)

	body := `{"ring":"A","year":2024,"sex":"male","status":"racing"}`
	c, _ := newPigeonContext(t, http.MethodPost, "/api/pigeons", body)
	if err := h.Create(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden to propagate, got %v", err)
	}
}

func TestPigeonHandler_Ancestors(t *testing.T) {
	svc := &stubPigeonService{ancestors: []*domain.Pigeon{
		{ID: "pf", Ring: "F", LoftID: "loft-1"},
		{ID: "pm", Ring: "M", LoftID: "loft-1"},
	}}
	h := NewPigeonHandler(svc)

	c, rec := newPigeonContext(t, http.MethodGet, "/api/pigeons/p1/ancestors", "")
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := h.Ancestors(c); err != nil {
		t.Fatalf("Ancestors returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp pedigreeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data) != 2 || resp.Data[0].Ring != "F" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestPigeonHandler_MissingPrincipal(t *testing.T) {
	h := NewPigeonHandler(&stubPigeonService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/pigeons", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without principal, got %v", err)
	}
}
