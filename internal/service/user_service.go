package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"keysecurity/internal/auth"
	errs "keysecurity/internal/errors"
	"keysecurity/internal/model"
	"keysecurity/internal/repository"
)

// ProfileUpdate carries the optional profile fields of a PUT. Nil means
// "leave unchanged".
type ProfileUpdate struct {
	Email           *string
	CurrentPassword string
	NewPassword     string
	FirstName       *string
	LastName        *string
	Gender          *string
	BirthDate       *time.Time
	PostalCode      *string
	Address         *string
	Country         *string
	State           *string
	City            *string
	Complement      *string
}

// UserService handles account and profile operations.
type UserService interface {
	Create(ctx context.Context, email, password, firstName, lastName string) (*model.User, error)
	Profile(ctx context.Context, id uint) (*model.User, error)
	UpdateProfile(ctx context.Context, id uint, update ProfileUpdate) error
	DeleteAccount(ctx context.Context, id uint) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Create registers a user with a hashed password. Users are created
// out-of-band (seeding, ops tooling); there is no public endpoint.
func (s *userService) Create(ctx context.Context, email, password, firstName, lastName string) (*model.User, error) {
	taken, err := s.userRepo.EmailTakenByOther(ctx, email, 0)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, errs.ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Profile fetches the caller's own user row.
func (s *userService) Profile(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errs.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// UpdateProfile applies a partial profile update. A password change
// requires the current password and re-hashes the new one; an email
// change collides with another user's address as a conflict.
func (s *userService) UpdateProfile(ctx context.Context, id uint, update ProfileUpdate) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errs.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if newPassword := strings.TrimSpace(update.NewPassword); newPassword != "" {
		if update.CurrentPassword == "" {
			return errs.ErrCurrentPasswordRequired
		}
		if !auth.CheckPassword(update.CurrentPassword, user.PasswordHash) {
			return errs.ErrCurrentPasswordWrong
		}
		hash, err := auth.HashPassword(newPassword)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if update.Email != nil && *update.Email != "" && *update.Email != user.Email {
		taken, err := s.userRepo.EmailTakenByOther(ctx, *update.Email, id)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if taken {
			return errs.ErrEmailTaken
		}
		user.Email = *update.Email
	}

	applyIfSet(&user.FirstName, update.FirstName)
	applyIfSet(&user.LastName, update.LastName)
	applyIfSet(&user.Gender, update.Gender)
	applyIfSet(&user.PostalCode, update.PostalCode)
	applyIfSet(&user.Address, update.Address)
	applyIfSet(&user.Country, update.Country)
	applyIfSet(&user.State, update.State)
	applyIfSet(&user.City, update.City)
	applyIfSet(&user.Complement, update.Complement)
	if update.BirthDate != nil {
		user.BirthDate = update.BirthDate
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// DeleteAccount removes the user; groups and items go with it through
// the FK cascade.
func (s *userService) DeleteAccount(ctx context.Context, id uint) error {
	affected, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if affected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

func applyIfSet(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
