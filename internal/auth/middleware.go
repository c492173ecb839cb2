package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"keysecurity/internal/errors"
)

// IdentityContextKey is where RequireAuth stores the resolved claims.
const IdentityContextKey = "auth.identity"

// RequireAuth is the single enforcement point for protected routes. It
// rejects anonymous callers and callers with invalid or expired
// credentials with 401 before any handler logic runs.
func RequireAuth(resolver *Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := resolver.Resolve(c)
			if err == ErrNoCredential {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "not authenticated",
					Code:  "NOT_AUTHENTICATED",
				})
			}
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "invalid or expired credentials",
					Code:  "INVALID_CREDENTIALS",
				})
			}

			c.Set(IdentityContextKey, claims)
			return next(c)
		}
	}
}

// Identity returns the claims stored by RequireAuth, or nil on an
// unprotected route.
func Identity(c echo.Context) *Claims {
	claims, _ := c.Get(IdentityContextKey).(*Claims)
	return claims
}
