package domain

import "errors"

// Token verification failures. The auth gate collapses all of these
// into a single 401 so clients cannot tell which check failed; the
// distinction exists for server-side logs and metrics only.
var (
	ErrTokenMalformed    = errors.New("token malformed")
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenSignature    = errors.New("token signature invalid")
	ErrTokenKindMismatch = errors.New("token kind mismatch")
)
