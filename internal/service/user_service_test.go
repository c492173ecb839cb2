package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"keysecurity/internal/auth"
	errs "keysecurity/internal/errors"
	"keysecurity/internal/model"
)

func TestUserService_Create(t *testing.T) {
	t.Run("hashes the password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("EmailTakenByOther", mock.Anything, "a@x.com", uint(0)).Return(false, nil)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		service := NewUserService(mockRepo)
		user, err := service.Create(context.Background(), "a@x.com", "secret1", "Ana", "Silva")
		require.NoError(t, err)
		assert.NotEqual(t, "secret1", user.PasswordHash)
		assert.True(t, auth.CheckPassword("secret1", user.PasswordHash))
		mockRepo.AssertExpectations(t)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("EmailTakenByOther", mock.Anything, "a@x.com", uint(0)).Return(true, nil)

		service := NewUserService(mockRepo)
		user, err := service.Create(context.Background(), "a@x.com", "secret1", "", "")
		assert.Equal(t, errs.ErrEmailTaken, err)
		assert.Nil(t, user)
	})
}

func TestUserService_UpdateProfile_PasswordChange(t *testing.T) {
	digest, err := auth.HashPassword("old-secret")
	require.NoError(t, err)

	newUserRow := func() *model.User {
		return &model.User{ID: 7, Email: "a@x.com", PasswordHash: digest}
	}

	tests := []struct {
		name          string
		update        ProfileUpdate
		expectedError error
	}{
		{
			name:   "correct current password",
			update: ProfileUpdate{CurrentPassword: "old-secret", NewPassword: "new-secret"},
		},
		{
			name:          "missing current password",
			update:        ProfileUpdate{NewPassword: "new-secret"},
			expectedError: errs.ErrCurrentPasswordRequired,
		},
		{
			name:          "wrong current password",
			update:        ProfileUpdate{CurrentPassword: "guess", NewPassword: "new-secret"},
			expectedError: errs.ErrCurrentPasswordWrong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockRepo.On("FindByID", mock.Anything, uint(7)).Return(newUserRow(), nil)
			if tt.expectedError == nil {
				mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					return auth.CheckPassword("new-secret", u.PasswordHash)
				})).Return(nil)
			}

			service := NewUserService(mockRepo)
			err := service.UpdateProfile(context.Background(), 7, tt.update)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				require.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_UpdateProfile_EmailConflict(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.User{ID: 7, Email: "a@x.com"}, nil)
	mockRepo.On("EmailTakenByOther", mock.Anything, "b@y.com", uint(7)).Return(true, nil)

	service := NewUserService(mockRepo)
	err := service.UpdateProfile(context.Background(), 7, ProfileUpdate{Email: strptr("b@y.com")})
	assert.Equal(t, errs.ErrEmailTaken, err)
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateProfile_PartialFields(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.User{
		ID:        7,
		Email:     "a@x.com",
		FirstName: "Ana",
		City:      "Recife",
	}, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		// Only the supplied field changes.
		return u.FirstName == "Beatriz" && u.City == "Recife" && u.Email == "a@x.com"
	})).Return(nil)

	service := NewUserService(mockRepo)
	err := service.UpdateProfile(context.Background(), 7, ProfileUpdate{FirstName: strptr("Beatriz")})
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUserService_DeleteAccount(t *testing.T) {
	t.Run("existing account", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Delete", mock.Anything, uint(7)).Return(int64(1), nil)

		service := NewUserService(mockRepo)
		require.NoError(t, service.DeleteAccount(context.Background(), 7))
	})

	t.Run("already deleted", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Delete", mock.Anything, uint(7)).Return(int64(0), nil)

		service := NewUserService(mockRepo)
		assert.Equal(t, errs.ErrUserNotFound, service.DeleteAccount(context.Background(), 7))
	})
}
