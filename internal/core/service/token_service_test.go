package service

import (
	"errors"
	"testing"
	"time"

	"github.com/pigeonpulse/loft-api/internal/core/domain"
)

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("user-1", "loft-1", domain.RoleOwner)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty string")
	}

	if !svc.Validate(token, "user-1") {
		t.Fatalf("expected token to validate for its own user")
	}
	if svc.Validate(token, "user-2") {
		t.Fatalf("token validated for a different user")
	}
}

func TestTokenService_Validate_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	checker := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue("user-1", "loft-1", domain.RoleOwner)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if checker.Validate(token, "user-1") {
		t.Fatalf("token signed with another secret validated")
	}
}

func TestTokenService_Validate_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	// Hand-build a TokenService with a negative ttl slipping past the
	// constructor default, by issuing with an already expired service.
	expired := &TokenService{secret: []byte("secret"), ttl: -time.Minute}

	token, err := expired.Issue("user-1", "loft-1", domain.RoleOwner)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if svc.Validate(token, "user-1") {
		t.Fatalf("expired token validated")
	}
}

func TestTokenService_Extractors(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	token, err := svc.Issue("user-1", "loft-1", domain.RoleCollaborator)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	userID, err := svc.ExtractUserID(token)
	if err != nil || userID != "user-1" {
		t.Fatalf("ExtractUserID = %q, %v", userID, err)
	}
	loftID, err := svc.ExtractLoftID(token)
	if err != nil || loftID != "loft-1" {
		t.Fatalf("ExtractLoftID = %q, %v", loftID, err)
	}
	role, err := svc.ExtractRole(token)
	if err != nil || role != domain.RoleCollaborator {
		t.Fatalf("ExtractRole = %q, %v", role, err)
	}
}

func TestTokenService_Extract_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	if _, err := svc.ExtractUserID("not-a-token"); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
	if _, err := svc.ExtractLoftID(""); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed for empty token, got %v", err)
	}
}

func TestTokenService_ExtractRole_Unknown(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	token, err := svc.Issue("user-1", "loft-1", domain.Role("SUPERUSER"))
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := svc.ExtractRole(token); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed for unknown role, got %v", err)
	}
}
