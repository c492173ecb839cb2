package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"keysecurity/internal/auth"
	"keysecurity/internal/model"
)

func TestAuthService_Authenticate(t *testing.T) {
	digest, err := auth.HashPassword("secret1")
	require.NoError(t, err)

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "valid credentials",
			email:    "a@x.com",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{
					ID:           1,
					Email:        "a@x.com",
					PasswordHash: digest,
				}, nil)
			},
		},
		{
			name:     "wrong password",
			email:    "a@x.com",
			password: "secret2",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{
					ID:           1,
					Email:        "a@x.com",
					PasswordHash: digest,
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "nobody@x.com",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@x.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), new(MockSessionStore))
			user, err := service.Authenticate(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_IssueToken_ClaimsRoundTrip(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	service := NewAuthService(new(MockUserRepository), jwtService, new(MockSessionStore))

	token, err := service.IssueToken(&model.User{ID: 42, Email: "a@x.com"})
	require.NoError(t, err)

	claims, err := jwtService.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestAuthService_Sessions(t *testing.T) {
	sessions := new(MockSessionStore)
	sessions.On("Create", mock.Anything, uint(42), "a@x.com").Return("sess-1", nil)
	sessions.On("Delete", mock.Anything, "sess-1").Return(nil)

	service := NewAuthService(new(MockUserRepository), auth.NewJWTService("test-secret"), sessions)

	sessionID, err := service.StartSession(context.Background(), &model.User{ID: 42, Email: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "sess-1", sessionID)

	require.NoError(t, service.EndSession(context.Background(), sessionID))
	sessions.AssertExpectations(t)
}
