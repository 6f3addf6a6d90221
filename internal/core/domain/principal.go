package domain

import (
	"errors"
	"time"
)

// Kind is the identity domain a principal belongs to. Learners and
// instructors are issued tokens with different secrets and must never
// cross-authenticate.
type Kind string

const (
	KindLearner    Kind = "learner"
	KindInstructor Kind = "instructor"
)

// Valid reports whether k is one of the two known kinds.
func (k Kind) Valid() bool {
	return k == KindLearner || k == KindInstructor
}

var ErrPrincipalExists = errors.New("account already exists")
var ErrPrincipalNotFound = errors.New("account not found")
var ErrInvalidCredentials = errors.New("incorrect credentials")

// Principal models an authenticated actor: a learner or an instructor.
// Email is unique within a kind, never across kinds.
type Principal struct {
	ID           string    `json:"id"`
	Kind         Kind      `json:"kind"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
