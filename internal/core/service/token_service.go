package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pigeonpulse/loft-api/internal/core/domain"
)

const (
	claimUserID = "user_id"
	claimLoftID = "loft_id"
	claimRole   = "role"
)

// TokenService issues and validates HS256-signed bearer tokens. The signing
// secret is injected at construction and never changes afterwards.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// TTL returns the lifetime applied to issued tokens.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue produces a signed token binding the user to their default loft and role.
func (s *TokenService) Issue(userID, loftID string, role domain.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		claimUserID: userID,
		claimLoftID: loftID,
		claimRole:   string(role),
		"iat":       now.Unix(),
		"exp":       now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate reports whether the token carries a valid signature, has not
// expired, and embeds exactly expectedUserID.
func (s *TokenService) Validate(token, expectedUserID string) bool {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return false
	}

	userID, _ := claims[claimUserID].(string)
	return userID != "" && userID == expectedUserID
}

// ExtractUserID parses the user id claim without verifying the signature.
// Used by the request filter to short-circuit storage lookups before the
// full validation pass.
func (s *TokenService) ExtractUserID(token string) (string, error) {
	return s.unverifiedClaim(token, claimUserID)
}

// ExtractLoftID parses the default loft claim without verifying the signature.
func (s *TokenService) ExtractLoftID(token string) (string, error) {
	return s.unverifiedClaim(token, claimLoftID)
}

// ExtractRole parses the default role claim without verifying the signature.
// An unknown role value counts as a malformed token.
func (s *TokenService) ExtractRole(token string) (domain.Role, error) {
	raw, err := s.unverifiedClaim(token, claimRole)
	if err != nil {
		return "", err
	}
	role, ok := domain.ParseRole(raw)
	if !ok {
		return "", fmt.Errorf("%w: unknown role %q", domain.ErrTokenMalformed, raw)
	}
	return role, nil
}

// unverifiedClaim reads a string claim from a structurally valid token.
// A token that does not parse at all yields domain.ErrTokenMalformed, which
// callers treat differently from a failed Validate.
func (s *TokenService) unverifiedClaim(token, name string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTokenMalformed, err)
	}
	v, _ := claims[name].(string)
	return v, nil
}
