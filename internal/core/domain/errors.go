package domain

import "errors"

// Credential errors: the external identity token could not be accepted.
// The request is rejected before any context is built.
var (
	ErrInvalidCredential = errors.New("invalid identity credential")
	ErrEmailNotVerified  = errors.New("email not verified")
)

// Token errors: the issued bearer token is unusable.
var (
	ErrTokenMalformed = errors.New("malformed token")
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenRevoked   = errors.New("token revoked")
)

// ErrUnauthenticated marks requests that reached a protected route without a
// usable authentication context.
var ErrUnauthenticated = errors.New("authentication required")

// ErrForbidden marks requests by an authenticated user lacking a membership
// for the target loft. Distinct from not-found: a forbidden target must not
// reveal whether it exists.
var ErrForbidden = errors.New("access forbidden")

// Not-found errors, one per entity.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrLoftNotFound       = errors.New("loft not found")
	ErrPigeonNotFound     = errors.New("pigeon not found")
	ErrMembershipNotFound = errors.New("membership not found")
)

// ErrMembershipExists signals a duplicate grant for the same (user, loft) pair.
var ErrMembershipExists = errors.New("membership already exists")

// ErrOwnerImmutable rejects attempts to revoke a loft's OWNER membership,
// which must live as long as the loft does.
var ErrOwnerImmutable = errors.New("owner membership cannot be revoked")
