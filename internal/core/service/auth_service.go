package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/courseforge/course-market/internal/core/domain"
	"github.com/courseforge/course-market/internal/core/ports"
	"github.com/courseforge/course-market/internal/metrics"
)

// AuthService implements signup and signin for a single principal
// kind. One instance serves learners, another instructors; they share
// nothing but code.
type AuthService struct {
	kind   domain.Kind
	repo   ports.PrincipalRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	audit  ports.AuditSink
	logger zerolog.Logger
}

func NewAuthService(kind domain.Kind, repo ports.PrincipalRepository, hasher ports.PasswordHasher, tokens ports.TokenService, audit ports.AuditSink, logger zerolog.Logger) *AuthService {
	return &AuthService{kind: kind, repo: repo, hasher: hasher, tokens: tokens, audit: audit, logger: logger}
}

// Signup creates a principal. The password is hashed before anything
// touches the store; a duplicate email within the kind surfaces as
// domain.ErrPrincipalExists. No token is returned; signup does not
// imply signin.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*domain.Principal, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.logger.Error().Err(err).Str("kind", string(s.kind)).Msg("password hashing failed")
		return nil, err
	}

	now := time.Now().UTC()
	principal := &domain.Principal{
		Kind:         s.kind,
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, principal)
	if err != nil {
		return nil, err
	}

	metrics.SignupsTotal.WithLabelValues(string(s.kind)).Inc()
	s.logger.Info().Str("kind", string(s.kind)).Str("principal_id", created.ID).Msg("principal created")
	s.audit.Enqueue(domain.AuditEvent{
		PrincipalID: created.ID,
		Kind:        s.kind,
		Action:      domain.AuditSignup,
		Email:       created.Email,
		OccurredAt:  now,
	})
	return created, nil
}

// Signin resolves the principal by email within the kind, verifies the
// password, and mints a bearer token. An unknown email is
// ErrPrincipalNotFound; a wrong password is ErrInvalidCredentials.
func (s *AuthService) Signin(ctx context.Context, email, password string) (string, error) {
	principal, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrPrincipalNotFound) {
			metrics.SigninsTotal.WithLabelValues(string(s.kind), "not_found").Inc()
		} else {
			metrics.SigninsTotal.WithLabelValues(string(s.kind), "error").Inc()
		}
		return "", err
	}

	if !s.hasher.Verify(password, principal.PasswordHash) {
		metrics.SigninsTotal.WithLabelValues(string(s.kind), "bad_password").Inc()
		s.audit.Enqueue(domain.AuditEvent{
			PrincipalID: principal.ID,
			Kind:        s.kind,
			Action:      domain.AuditSigninFailed,
			Email:       email,
			OccurredAt:  time.Now().UTC(),
		})
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(principal.ID, s.kind)
	if err != nil {
		s.logger.Error().Err(err).Str("principal_id", principal.ID).Msg("token signing failed")
		return "", err
	}

	metrics.SigninsTotal.WithLabelValues(string(s.kind), "ok").Inc()
	s.audit.Enqueue(domain.AuditEvent{
		PrincipalID: principal.ID,
		Kind:        s.kind,
		Action:      domain.AuditSigninOK,
		Email:       email,
		OccurredAt:  time.Now().UTC(),
	})
	return token, nil
}
