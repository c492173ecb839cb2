package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"keysecurity/internal/auth"
	"keysecurity/internal/config"
	"keysecurity/internal/errors"
	"keysecurity/internal/model"
	"keysecurity/internal/service"
)

// AuthHandler handles login and logout.
type AuthHandler struct {
	authService service.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token,omitempty"`
	User    *model.User `json:"user"`
}

// Login godoc
// @Summary Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "INVALID_CREDENTIALS",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to login",
			Code:  "LOGIN_FAILED",
		})
	}

	if h.cfg.AuthMode == config.AuthModeSession {
		sessionID, err := h.authService.StartSession(c.Request().Context(), user)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
				Error: "failed to start session",
				Code:  "LOGIN_FAILED",
			})
		}
		setAuthCookie(c, h.cfg, sessionID)
		return c.JSON(http.StatusOK, LoginResponse{Success: true, User: user})
	}

	token, err := h.authService.IssueToken(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to issue token",
			Code:  "LOGIN_FAILED",
		})
	}
	// The cookie mirrors the token for browser clients; API clients use
	// the Authorization header, which takes precedence anyway.
	setAuthCookie(c, h.cfg, token)
	return c.JSON(http.StatusOK, LoginResponse{Success: true, Token: token, User: user})
}

// Logout godoc
// @Summary Invalidate the session and clear the auth cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if h.cfg.AuthMode == config.AuthModeSession {
		if cookie, err := c.Cookie(h.cfg.CookieName); err == nil && cookie.Value != "" {
			if err := h.authService.EndSession(c.Request().Context(), cookie.Value); err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
					Error: "failed to end session",
					Code:  "LOGOUT_FAILED",
				})
			}
		}
	}

	clearAuthCookie(c, h.cfg)
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func setAuthCookie(c echo.Context, cfg *config.Config, value string) {
	c.SetCookie(&http.Cookie{
		Name:     cfg.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(auth.TokenExpiry.Seconds()),
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearAuthCookie(c echo.Context, cfg *config.Config) {
	c.SetCookie(&http.Cookie{
		Name:     cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// domainError converts a service error into an echo HTTP error using the
// shared taxonomy mapping.
func domainError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
