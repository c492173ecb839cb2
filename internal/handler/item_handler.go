package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"keysecurity/internal/auth"
	"keysecurity/internal/model"
	"keysecurity/internal/service"
)

// ItemHandler handles password-item CRUD.
type ItemHandler struct {
	itemService service.ItemService
}

// NewItemHandler creates a new item handler.
func NewItemHandler(itemService service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// ItemRequest represents an item create or update body.
type ItemRequest struct {
	ID       uint    `json:"id"`
	GroupID  uint    `json:"groupId"`
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password string  `json:"password"`
	Note     *string `json:"note"`
}

// ItemResponse wraps an item row.
type ItemResponse struct {
	Success bool                `json:"success"`
	Item    *model.PasswordItem `json:"item"`
}

// Create godoc
// @Summary Store a credential in one of the caller's groups
// @Tags items
// @Accept json
// @Produce json
// @Param request body ItemRequest true "Item data"
// @Success 201 {object} ItemResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /password-items [post]
func (h *ItemHandler) Create(c echo.Context) error {
	claims := auth.Identity(c)

	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := h.itemService.Create(c.Request().Context(), claims.UserID, itemInput(req))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, ItemResponse{Success: true, Item: item})
}

// Update godoc
// @Summary Rewrite one of the caller's credentials
// @Tags items
// @Accept json
// @Produce json
// @Param id query int false "Item id (also accepted in the body)"
// @Param request body ItemRequest true "Item data"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /password-items [put]
func (h *ItemHandler) Update(c echo.Context) error {
	claims := auth.Identity(c)

	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := h.itemService.Update(c.Request().Context(), claims.UserID, requestID(c, req.ID), itemInput(req))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, ItemResponse{Success: true, Item: item})
}

// Delete godoc
// @Summary Delete one of the caller's credentials
// @Tags items
// @Produce json
// @Param id query int false "Item id (also accepted in the body)"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /password-items [delete]
func (h *ItemHandler) Delete(c echo.Context) error {
	claims := auth.Identity(c)

	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.itemService.Delete(c.Request().Context(), claims.UserID, requestID(c, req.ID)); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func itemInput(req ItemRequest) service.ItemInput {
	return service.ItemInput{
		GroupID:  req.GroupID,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Note:     req.Note,
	}
}
