package main

import (
	"log"
	"net/http"

	_ "keysecurity/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"keysecurity/internal/auth"
	"keysecurity/internal/cache"
	"keysecurity/internal/config"
	"keysecurity/internal/db"
	"keysecurity/internal/handler"
	"keysecurity/internal/model"
	"keysecurity/internal/repository"
	"keysecurity/internal/router"
	"keysecurity/internal/service"
)

// @title KeySecurity API
// @version 1.0
// @description Personal credential vault: authenticated users store grouped username/password/note records.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN, cfg.DBMaxOpen, cfg.DBMaxIdle)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.PasswordGroup{},
		&model.PasswordItem{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	// Initialize auth components. The session store is only consulted in
	// session mode but is cheap to construct either way.
	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	sessionStore := auth.NewSessionStore(cacheClient)
	resolver := auth.NewResolver(jwtService, sessionStore, cfg.AuthMode, cfg.CookieName)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	groupRepo := repository.NewGroupRepository(gormDB)
	itemRepo := repository.NewItemRepository(gormDB)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, sessionStore)
	userService := service.NewUserService(userRepo)
	groupService := service.NewGroupService(groupRepo)
	itemService := service.NewItemService(groupRepo, itemRepo)
	vaultService := service.NewVaultService(groupRepo, itemRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg)
	userHandler := handler.NewUserHandler(userService, authService, cfg)
	groupHandler := handler.NewGroupHandler(groupService)
	itemHandler := handler.NewItemHandler(itemService)
	vaultHandler := handler.NewVaultHandler(vaultService)

	// Register routes
	router.Register(
		e,
		resolver,
		authHandler,
		userHandler,
		groupHandler,
		itemHandler,
		vaultHandler,
	)

	log.Printf("auth mode: %s", cfg.AuthMode)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
