package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/courseforge/course-market/internal/core/domain"
	"github.com/courseforge/course-market/internal/core/ports"
	"github.com/courseforge/course-market/internal/metrics"
)

// Context keys set by the auth gate on success.
const (
	CtxPrincipalID = "principal_id"
	CtxKind        = "kind"
)

// Auth returns a kind-scoped gate: it extracts the bearer token from
// the Authorization header, verifies it for the given kind, and binds
// the resolved principal id into the request context. A structurally
// valid token of the other kind is rejected like any other bad token.
// All verification failures collapse into the same 401 body so clients
// cannot distinguish expired from tampered from wrong-kind.
func Auth(tokens ports.TokenService, kind domain.Kind) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues(string(kind), "missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues(string(kind), "malformed").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			principalID, err := tokens.Verify(parts[1], kind)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues(string(kind), rejectionReason(err)).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(CtxPrincipalID, principalID)
			c.Set(CtxKind, string(kind))

			return next(c)
		}
	}
}

// rejectionReason maps a verification error to a metrics label. The
// classification never reaches the client.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenSignature):
		return "signature"
	case errors.Is(err, domain.ErrTokenKindMismatch):
		return "kind_mismatch"
	default:
		return "malformed"
	}
}
