package main

import (
	"context"
	"flag"
	"log"

	"keysecurity/internal/config"
	"keysecurity/internal/db"
	"keysecurity/internal/model"
	"keysecurity/internal/repository"
	"keysecurity/internal/service"
)

// Seeds a login for a fresh deployment. Users are created out-of-band
// (there is no public registration endpoint), so this is the supported
// way to get a first account into the database.
func main() {
	email := flag.String("email", "", "email for the seeded user (required)")
	password := flag.String("password", "", "password for the seeded user (required)")
	firstName := flag.String("first-name", "", "first name")
	lastName := flag.String("last-name", "", "last name")
	withSample := flag.Bool("with-sample", false, "also create a sample group and item")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN, cfg.DBMaxOpen, cfg.DBMaxIdle)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.PasswordGroup{},
		&model.PasswordItem{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	userService := service.NewUserService(userRepo)

	// Idempotent on email: re-running against an existing user is a no-op.
	if existing, err := userRepo.FindByEmail(ctx, *email); err == nil {
		log.Printf("user %s already exists (id=%d), nothing to do", existing.Email, existing.ID)
		return
	}

	user, err := userService.Create(ctx, *email, *password, *firstName, *lastName)
	if err != nil {
		log.Fatalf("create user: %v", err)
	}
	log.Printf("created user %s (id=%d)", user.Email, user.ID)

	if !*withSample {
		return
	}

	groupRepo := repository.NewGroupRepository(gormDB)
	itemRepo := repository.NewItemRepository(gormDB)

	category := "sample"
	group := &model.PasswordGroup{UserID: user.ID, Name: "Getting started", Category: &category}
	if err := groupRepo.Create(ctx, group); err != nil {
		log.Fatalf("create sample group: %v", err)
	}

	username := "example"
	note := "Replace me with a real credential"
	item := &model.PasswordItem{
		GroupID:  group.ID,
		Username: &username,
		Password: "changeme",
		Note:     &note,
	}
	if err := itemRepo.Create(ctx, item); err != nil {
		log.Fatalf("create sample item: %v", err)
	}
	log.Printf("created sample group %d with item %d", group.ID, item.ID)
}
