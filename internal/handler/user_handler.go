package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"keysecurity/internal/auth"
	"keysecurity/internal/config"
	"keysecurity/internal/service"
)

// UserHandler handles the caller's own account and profile.
type UserHandler struct {
	userService service.UserService
	authService service.AuthService
	cfg         *config.Config
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService, authService service.AuthService, cfg *config.Config) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
		cfg:         cfg,
	}
}

// MeResponse is the compact identity header clients render after login.
type MeResponse struct {
	Success bool   `json:"success"`
	User    MeUser `json:"user"`
}

// MeUser is the subset of the user row exposed by /me.
type MeUser struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar,omitempty"`
}

// ProfileUpdateRequest represents a partial profile update. Absent
// fields are left unchanged.
type ProfileUpdateRequest struct {
	Email           *string `json:"email" validate:"omitempty,email"`
	CurrentPassword string  `json:"current_password"`
	NewPassword     string  `json:"new_password"`
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	Gender          *string `json:"gender"`
	BirthDate       *string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	PostalCode      *string `json:"postal_code"`
	Address         *string `json:"address"`
	Country         *string `json:"country"`
	State           *string `json:"state"`
	City            *string `json:"city"`
	Complement      *string `json:"complement"`
}

// Me godoc
// @Summary Fetch the caller's identity summary
// @Tags profile
// @Produce json
// @Success 200 {object} MeResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func (h *UserHandler) Me(c echo.Context) error {
	claims := auth.Identity(c)

	user, err := h.userService.Profile(c.Request().Context(), claims.UserID)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, MeResponse{
		Success: true,
		User: MeUser{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Avatar:    user.Avatar,
		},
	})
}

// GetProfile godoc
// @Summary Fetch the caller's full profile
// @Tags profile
// @Produce json
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /profile [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	claims := auth.Identity(c)

	user, err := h.userService.Profile(c.Request().Context(), claims.UserID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Update the caller's profile, optionally changing the password
// @Tags profile
// @Accept json
// @Produce json
// @Param request body ProfileUpdateRequest true "Fields to update"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	claims := auth.Identity(c)

	var req ProfileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	update := service.ProfileUpdate{
		Email:           req.Email,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Gender:          req.Gender,
		PostalCode:      req.PostalCode,
		Address:         req.Address,
		Country:         req.Country,
		State:           req.State,
		City:            req.City,
		Complement:      req.Complement,
	}
	if req.BirthDate != nil && *req.BirthDate != "" {
		birthDate, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid birth_date")
		}
		update.BirthDate = &birthDate
	}

	if err := h.userService.UpdateProfile(c.Request().Context(), claims.UserID, update); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// DeleteAccount godoc
// @Summary Delete the caller's account and entire vault
// @Tags profile
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /profile [delete]
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	claims := auth.Identity(c)

	if err := h.userService.DeleteAccount(c.Request().Context(), claims.UserID); err != nil {
		return domainError(err)
	}

	// The credential is now orphaned; drop it like a logout would.
	if h.cfg.AuthMode == config.AuthModeSession {
		if cookie, err := c.Cookie(h.cfg.CookieName); err == nil && cookie.Value != "" {
			_ = h.authService.EndSession(c.Request().Context(), cookie.Value)
		}
	}
	clearAuthCookie(c, h.cfg)

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
