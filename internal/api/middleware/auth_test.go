package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/courseforge/course-market/internal/core/domain"
	"github.com/courseforge/course-market/internal/core/service"
)

func newGateTokens() *service.JWTTokenService {
	return service.NewJWTTokenService(
		service.KindPolicy{Secret: []byte("learner-secret"), TTL: time.Hour},
		service.KindPolicy{Secret: []byte("instructor-secret"), TTL: time.Hour},
	)
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	tokens := newGateTokens()

	signed, err := tokens.Issue("principal-1", domain.KindLearner)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(tokens, domain.KindLearner)
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get(CtxPrincipalID) != "principal-1" {
			t.Fatalf("principal_id not set")
		}
		if c.Get(CtxKind) != string(domain.KindLearner) {
			t.Fatalf("kind not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(newGateTokens(), domain.KindLearner)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(newGateTokens(), domain.KindLearner)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(newGateTokens(), domain.KindLearner)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_WrongKindToken(t *testing.T) {
	e := echo.New()
	tokens := newGateTokens()

	// A structurally valid learner token must not pass the instructor gate.
	signed, err := tokens.Issue("principal-1", domain.KindLearner)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(tokens, domain.KindInstructor)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_RejectionBodyUniform(t *testing.T) {
	// Expired, tampered, and wrong-kind tokens must all produce the
	// same externally visible message.
	e := echo.New()
	tokens := newGateTokens()

	learnerToken, _ := tokens.Issue("principal-1", domain.KindLearner)

	bodies := map[string]string{}
	for name, header := range map[string]string{
		"garbage":    "Bearer zzz",
		"wrong_kind": "Bearer " + learnerToken,
	} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		mw := Auth(tokens, domain.KindInstructor)
		handler := mw(func(c echo.Context) error { return nil })
		if err := handler(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		bodies[name] = rec.Body.String()
	}

	if bodies["garbage"] != bodies["wrong_kind"] {
		t.Fatalf("rejection bodies differ: %q vs %q", bodies["garbage"], bodies["wrong_kind"])
	}
}
