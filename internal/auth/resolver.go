package auth

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"keysecurity/internal/config"
)

// ErrNoCredential is returned when a request carries no credential at
// all. It signals an anonymous caller, not a verification failure.
var ErrNoCredential = errors.New("no credential")

// Resolver extracts a verified caller identity from a request. Exactly
// one transport mode is authoritative per deployment; a bearer token
// always wins over a cookie so a stale cookie can never shadow a fresh
// header credential.
type Resolver struct {
	jwt        *JWTService
	sessions   SessionStoreInterface
	mode       config.AuthMode
	cookieName string
}

// NewResolver creates a resolver for the configured auth mode. The
// session store may be nil in token mode.
func NewResolver(jwt *JWTService, sessions SessionStoreInterface, mode config.AuthMode, cookieName string) *Resolver {
	return &Resolver{
		jwt:        jwt,
		sessions:   sessions,
		mode:       mode,
		cookieName: cookieName,
	}
}

// Resolve returns the caller's claims, ErrNoCredential for an anonymous
// request, or a verification error for a credential that fails checks.
func (r *Resolver) Resolve(c echo.Context) (*Claims, error) {
	// 1) Authorization: Bearer <token>
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return nil, ErrTokenInvalid
		}
		return r.jwt.VerifyToken(strings.TrimSpace(token))
	}

	// 2) Auth cookie: a signed token in token mode, an opaque session id
	// in session mode. Never both for the same deployment.
	cookie, err := c.Cookie(r.cookieName)
	if err != nil || cookie.Value == "" {
		return nil, ErrNoCredential
	}

	if r.mode == config.AuthModeSession {
		userID, email, err := r.sessions.Get(c.Request().Context(), cookie.Value)
		if err != nil {
			return nil, err
		}
		return &Claims{UserID: userID, Email: email}, nil
	}

	return r.jwt.VerifyToken(cookie.Value)
}
