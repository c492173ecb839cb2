package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"keysecurity/internal/auth"
	"keysecurity/internal/model"
	"keysecurity/internal/service"
)

// GroupHandler handles password-group CRUD.
type GroupHandler struct {
	groupService service.GroupService
}

// NewGroupHandler creates a new group handler.
func NewGroupHandler(groupService service.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// GroupRequest represents a group create or update body.
type GroupRequest struct {
	ID   uint    `json:"id"`
	Name string  `json:"name"`
	Type *string `json:"type"`
}

// GroupResponse wraps a group row.
type GroupResponse struct {
	Success bool                 `json:"success"`
	Group   *model.PasswordGroup `json:"group"`
}

// Create godoc
// @Summary Create a password group owned by the caller
// @Tags groups
// @Accept json
// @Produce json
// @Param request body GroupRequest true "Group data"
// @Success 201 {object} GroupResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /password-groups [post]
func (h *GroupHandler) Create(c echo.Context) error {
	claims := auth.Identity(c)

	var req GroupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	group, err := h.groupService.Create(c.Request().Context(), claims.UserID, req.Name, req.Type)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, GroupResponse{Success: true, Group: group})
}

// Update godoc
// @Summary Rename or recategorize one of the caller's groups
// @Tags groups
// @Accept json
// @Produce json
// @Param id query int false "Group id (also accepted in the body)"
// @Param request body GroupRequest true "Group data"
// @Success 200 {object} GroupResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /password-groups [put]
func (h *GroupHandler) Update(c echo.Context) error {
	claims := auth.Identity(c)

	var req GroupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	group, err := h.groupService.Update(c.Request().Context(), claims.UserID, requestID(c, req.ID), req.Name, req.Type)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, GroupResponse{Success: true, Group: group})
}

// Delete godoc
// @Summary Delete one of the caller's groups and its items
// @Tags groups
// @Produce json
// @Param id query int false "Group id (also accepted in the body)"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /password-groups [delete]
func (h *GroupHandler) Delete(c echo.Context) error {
	claims := auth.Identity(c)

	var req GroupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.groupService.Delete(c.Request().Context(), claims.UserID, requestID(c, req.ID)); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// requestID resolves the target id: query string first, then the body.
// Unparseable values read as zero and fail validation downstream.
func requestID(c echo.Context, bodyID uint) uint {
	if q := c.QueryParam("id"); q != "" {
		id, err := strconv.ParseUint(q, 10, 32)
		if err != nil {
			return 0
		}
		return uint(id)
	}
	return bodyID
}
