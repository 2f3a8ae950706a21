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

	"github.com/pigeonpulse/loft-api/internal/core/domain"
	"github.com/pigeonpulse/loft-api/internal/core/ports"
)

type stubAuthService struct {
	result     *ports.LoginResult
	loginErr   error
	loggedOut  []string
	logoutErr  error
	credential string
}

func (s *stubAuthService) Login(_ context.Context, credential string) (*ports.LoginResult, error) {
	s.credential = credential
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.result, nil
}

func (s *stubAuthService) Logout(_ context.Context, token string) error {
	if s.logoutErr != nil {
		return s.logoutErr
	}
	s.loggedOut = append(s.loggedOut, token)
	return nil
}

type stubIdentityService struct {
	user *domain.User
	err  error
}

func (s *stubIdentityService) Resolve(context.Context, string, string, string) (*domain.User, error) {
	return s.user, s.err
}

func (s *stubIdentityService) SearchByEmail(context.Context, string) (*domain.User, error) {
	return s.user, s.err
}

func newAuthContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
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
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	auth := &stubAuthService{result: &ports.LoginResult{
		Token: "signed-token",
		User:  &domain.User{ID: "user-1", Name: "Alice", Email: "alice@example.com", SubjectID: "sub-1"},
	}}
	h := NewAuthHandler(auth, &stubIdentityService{})

	c, rec := newAuthContext(t, http.MethodPost, "/api/auth/login", `{"credential":"opaque"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if auth.credential != "opaque" {
		t.Fatalf("credential not passed through: %q", auth.credential)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "signed-token" || resp.User.ID != "user-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if !resp.User.Registered {
		t.Fatalf("resolved user should be registered")
	}
}

func TestAuthHandler_Login_MissingCredential(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubIdentityService{})

	c, _ := newAuthContext(t, http.MethodPost, "/api/auth/login", `{}`)
	err := h.Login(c)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidCredential(t *testing.T) {
	auth := &stubAuthService{loginErr: domain.ErrInvalidCredential}
	h := NewAuthHandler(auth, &stubIdentityService{})

	c, _ := newAuthContext(t, http.MethodPost, "/api/auth/login", `{"credential":"bad"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential to propagate, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	auth := &stubAuthService{}
	h := NewAuthHandler(auth, &stubIdentityService{})

	c, rec := newAuthContext(t, http.MethodPost, "/api/auth/logout", "")
	c.Request().Header.Set("Authorization", "Bearer some-token")

	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(auth.loggedOut) != 1 || auth.loggedOut[0] != "some-token" {
		t.Fatalf("token not passed to service: %v", auth.loggedOut)
	}
}

func TestAuthHandler_Logout_NoToken(t *testing.T) {
	auth := &stubAuthService{}
	h := NewAuthHandler(auth, &stubIdentityService{})

	c, rec := newAuthContext(t, http.MethodPost, "/api/auth/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout without token errored: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestAuthHandler_SearchUser(t *testing.T) {
	identity := &stubIdentityService{user: &domain.User{ID: "user-2", Name: "bob@example.com", Email: "bob@example.com"}}
	h := NewAuthHandler(&stubAuthService{}, identity)

	c, rec := newAuthContext(t, http.MethodGet, "/api/auth/users/search?email=bob@example.com", "")
	if err := h.SearchUser(c); err != nil {
		t.Fatalf("SearchUser returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != "user-2" || resp.Registered {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_SearchUser_MissingEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubIdentityService{})

	c, _ := newAuthContext(t, http.MethodGet, "/api/auth/users/search", "")
	err := h.SearchUser(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
