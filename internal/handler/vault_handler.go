package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"keysecurity/internal/auth"
	"keysecurity/internal/service"
)

// VaultHandler serves the full group/item listing.
type VaultHandler struct {
	vaultService service.VaultService
}

// NewVaultHandler creates a new vault handler.
func NewVaultHandler(vaultService service.VaultService) *VaultHandler {
	return &VaultHandler{vaultService: vaultService}
}

// List godoc
// @Summary List the caller's groups with their credentials nested
// @Tags vault
// @Produce json
// @Success 200 {array} service.VaultGroup
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /passwords [get]
func (h *VaultHandler) List(c echo.Context) error {
	claims := auth.Identity(c)

	tree, err := h.vaultService.List(c.Request().Context(), claims.UserID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, tree)
}
