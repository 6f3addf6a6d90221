package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/courseforge/course-market/internal/core/domain"
)

// KindPolicy holds the signing secret and expiry horizon for one
// principal kind.
type KindPolicy struct {
	Secret []byte
	TTL    time.Duration
}

// JWTTokenService issues and verifies HS256 tokens with a separate
// secret per kind. The secrets are loaded once at startup and never
// mutated, so the service is safe for concurrent use.
type JWTTokenService struct {
	policies map[domain.Kind]KindPolicy
	now      func() time.Time
}

func NewJWTTokenService(learner, instructor KindPolicy) *JWTTokenService {
	return &JWTTokenService{
		policies: map[domain.Kind]KindPolicy{
			domain.KindLearner:    learner,
			domain.KindInstructor: instructor,
		},
		now: time.Now,
	}
}

// Issue mints a token binding principalID and kind, expiring after the
// kind's horizon.
func (s *JWTTokenService) Issue(principalID string, kind domain.Kind) (string, error) {
	policy, ok := s.policies[kind]
	if !ok {
		return "", domain.ErrTokenKindMismatch
	}

	now := s.now().UTC()
	claims := jwt.MapClaims{
		"sub":  principalID,
		"kind": string(kind),
		"iat":  now.Unix(),
		"exp":  now.Add(policy.TTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(policy.Secret)
}

// Verify parses the token against the expected kind's secret and
// checks the embedded kind claim. Both the signature and the claim
// must agree with the expected kind: the secrets already differ per
// kind, the claim check closes the door on secret reuse in
// misconfigured deployments.
func (s *JWTTokenService) Verify(token string, kind domain.Kind) (string, error) {
	policy, ok := s.policies[kind]
	if !ok {
		return "", domain.ErrTokenKindMismatch
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return policy.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", classifyTokenError(err)
	}
	if !parsed.Valid {
		return "", domain.ErrTokenMalformed
	}

	k, _ := claims["kind"].(string)
	if domain.Kind(k) != kind {
		return "", domain.ErrTokenKindMismatch
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", domain.ErrTokenMalformed
	}
	return sub, nil
}

// classifyTokenError maps jwt parse failures onto the domain token
// error taxonomy.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domain.ErrTokenSignature
	default:
		return domain.ErrTokenMalformed
	}
}
