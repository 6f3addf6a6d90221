package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/courseforge/course-market/internal/api/middleware"
)

// ctxPrincipalID extracts the principal id injected by the auth gate
// and fast-fails before any service call. An empty id means the gate
// did not run, which is a wiring bug surfaced as 401 rather than an
// unauthenticated call leaking through to business logic.
func ctxPrincipalID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.CtxPrincipalID).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
