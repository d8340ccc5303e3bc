package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/task-tracker/internal/api/metrics"
	"github.com/taskforge/task-tracker/internal/core/auth"
	"github.com/taskforge/task-tracker/internal/core/domain"
	"github.com/taskforge/task-tracker/internal/core/ports"
)

// UserContextKey is the echo context key under which Auth stores the
// resolved *domain.User.
const UserContextKey = "user"

// Auth is the authentication gate. It extracts the bearer token, validates
// it, and re-resolves the subject against the credential store on every
// request. Resolving fresh means role changes apply immediately and tokens
// for deleted accounts stop working, which substitutes for revocation.
//
// Token validation failures and unknown subjects share one client-visible
// message so the response cannot be used as an oracle.
func Auth(tokens *auth.TokenIssuer, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_header").Inc()
				return unauthorized(c, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_header").Inc()
				return unauthorized(c, "invalid authorization header")
			}

			username, err := tokens.Validate(parts[1])
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return unauthorized(c, "invalid or expired token")
			}

			user, err := users.FindByUsername(c.Request().Context(), username)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					// A deleted account gets the same answer as a bad token.
					metrics.AuthRejectionsTotal.WithLabelValues("unknown_user").Inc()
					return unauthorized(c, "invalid or expired token")
				}
				// A store failure is not a credential problem; let the
				// central error handler render it as an internal error.
				return err
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

func unauthorized(c echo.Context, msg string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return echo.NewHTTPError(http.StatusUnauthorized, msg)
}
