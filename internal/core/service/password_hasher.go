package service

import "golang.org/x/crypto/bcrypt"

const defaultHashCost = 10

// BcryptHasher hashes passwords with bcrypt. The zero cost falls back
// to 10 rounds.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = defaultHashCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the salted digest of plaintext. A hashing failure is a
// server-side error for the caller to surface generically, never a
// validation outcome.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Verify reports whether plaintext matches the stored hash.
func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
