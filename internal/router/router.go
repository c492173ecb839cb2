package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"keysecurity/internal/auth"
	"keysecurity/internal/handler"
)

// Register wires routes and middleware. Every protected route lives
// under the one group wearing RequireAuth, so no data operation is
// reachable without passing the gate.
func Register(
	e *echo.Echo,
	resolver *auth.Resolver,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	groupHandler *handler.GroupHandler,
	itemHandler *handler.ItemHandler,
	vaultHandler *handler.VaultHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/login", authHandler.Login)
	api.POST("/logout", authHandler.Logout)

	// Secured routes
	secured := api.Group("", auth.RequireAuth(resolver))

	secured.GET("/me", userHandler.Me)
	secured.GET("/profile", userHandler.GetProfile)
	secured.PUT("/profile", userHandler.UpdateProfile)
	secured.DELETE("/profile", userHandler.DeleteAccount)

	secured.POST("/password-groups", groupHandler.Create)
	secured.PUT("/password-groups", groupHandler.Update)
	secured.DELETE("/password-groups", groupHandler.Delete)

	secured.POST("/password-items", itemHandler.Create)
	secured.PUT("/password-items", itemHandler.Update)
	secured.DELETE("/password-items", itemHandler.Delete)

	secured.GET("/passwords", vaultHandler.List)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
