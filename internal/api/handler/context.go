package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/task-tracker/internal/api/middleware"
	"github.com/taskforge/task-tracker/internal/core/domain"
)

// currentUser extracts the user resolved by the Auth middleware. Its
// presence proves the gate ran; a handler on an authenticated route that
// finds no user rejects with 401 rather than proceeding anonymously.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserContextKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
