package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/courseforge/course-market/internal/core/domain"
)

// testErrorHandler mirrors the central error mapping from the api
// package without importing it (that would cycle: api imports handler).
func testErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			_ = c.JSON(http.StatusForbidden, map[string]string{"error": "access forbidden"})
		case errors.Is(err, domain.ErrCourseNotFound):
			_ = c.JSON(http.StatusNotFound, map[string]string{"error": "course not found"})
		case errors.Is(err, domain.ErrPrincipalNotFound):
			_ = c.JSON(http.StatusNotFound, map[string]string{"error": "account not found"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			_ = c.JSON(http.StatusUnauthorized, map[string]string{"error": "incorrect credentials"})
		case errors.Is(err, domain.ErrPrincipalExists):
			_ = c.JSON(http.StatusConflict, map[string]string{"error": "account already exists"})
		default:
			e.DefaultHTTPErrorHandler(err, c)
		}
	}
}
