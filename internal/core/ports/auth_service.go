package ports

import (
	"context"

	"github.com/courseforge/course-market/internal/core/domain"
)

// SignupInput carries the fields needed to create a principal. Shape
// validation (email format, password policy) happens at the transport
// boundary before the service sees the input.
type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AuthService implements signup and signin for one principal kind.
// Signup never returns a token; signin is the only operation that
// mints credentials.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.Principal, error)
	Signin(ctx context.Context, email, password string) (string, error)
}

// PasswordHasher produces and verifies one-way salted password
// digests. Plaintext never leaves the implementation.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenService issues and verifies signed bearer tokens. Each kind is
// signed with its own secret, so a token minted for one kind can never
// verify as the other.
type TokenService interface {
	Issue(principalID string, kind domain.Kind) (string, error)
	// Verify returns the principal id bound into the token, or one of
	// the domain token errors (malformed, expired, signature, kind
	// mismatch).
	Verify(token string, kind domain.Kind) (string, error)
}
