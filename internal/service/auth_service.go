package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"keysecurity/internal/auth"
	"keysecurity/internal/model"
	"keysecurity/internal/repository"
)

// ErrInvalidCredentials is returned when email or password is incorrect.
// Unknown email and wrong password are indistinguishable on purpose.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService handles authentication operations.
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
	IssueToken(user *model.User) (string, error)
	StartSession(ctx context.Context, user *model.User) (string, error)
	EndSession(ctx context.Context, sessionID string) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	sessions   auth.SessionStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, sessions auth.SessionStoreInterface) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		sessions:   sessions,
	}
}

// Authenticate verifies email and password against the stored hash.
func (s *authService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// IssueToken signs a bearer token for the user.
func (s *authService) IssueToken(user *model.User) (string, error) {
	return s.jwtService.IssueToken(user.ID, user.Email)
}

// StartSession opens a server-side session for the user and returns the
// opaque session id.
func (s *authService) StartSession(ctx context.Context, user *model.User) (string, error) {
	return s.sessions.Create(ctx, user.ID, user.Email)
}

// EndSession discards a server-side session.
func (s *authService) EndSession(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}
