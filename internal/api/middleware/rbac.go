package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/task-tracker/internal/core/domain"
)

// RequireAdmin guards admin-only routes. It must run after Auth. The
// decision delegates to the authorization policy so role semantics live in
// one place.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get(UserContextKey).(*domain.User)
			if user == nil {
				return unauthorized(c, "missing authentication")
			}
			if !domain.CanViewAll(user.Role) {
				return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
			}
			return next(c)
		}
	}
}
