package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"keysecurity/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) EmailTakenByOther(ctx context.Context, email string, id uint) (bool, error) {
	args := m.Called(ctx, email, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockGroupRepository is a mock implementation of repository.GroupRepository.
type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) Create(ctx context.Context, group *model.PasswordGroup) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) FindOwned(ctx context.Context, id, ownerID uint) (*model.PasswordGroup, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PasswordGroup), args.Error(1)
}

func (m *MockGroupRepository) ExistsOwned(ctx context.Context, id, ownerID uint) (bool, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockGroupRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.PasswordGroup, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PasswordGroup), args.Error(1)
}

func (m *MockGroupRepository) UpdateOwned(ctx context.Context, id, ownerID uint, name string, category *string) (int64, error) {
	args := m.Called(ctx, id, ownerID, name, category)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGroupRepository) DeleteOwned(ctx context.Context, id, ownerID uint) (int64, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

// MockItemRepository is a mock implementation of repository.ItemRepository.
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, item *model.PasswordItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) FindOwned(ctx context.Context, id, ownerID uint) (*model.PasswordItem, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PasswordItem), args.Error(1)
}

func (m *MockItemRepository) ListByGroupIDs(ctx context.Context, groupIDs []uint) ([]model.PasswordItem, error) {
	args := m.Called(ctx, groupIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PasswordItem), args.Error(1)
}

func (m *MockItemRepository) UpdateOwned(ctx context.Context, id, ownerID uint, item *model.PasswordItem) (int64, error) {
	args := m.Called(ctx, id, ownerID, item)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockItemRepository) DeleteOwned(ctx context.Context, id, ownerID uint) (int64, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

// MockSessionStore is a mock implementation of auth.SessionStoreInterface.
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Create(ctx context.Context, userID uint, email string) (string, error) {
	args := m.Called(ctx, userID, email)
	return args.String(0), args.Error(1)
}

func (m *MockSessionStore) Get(ctx context.Context, sessionID string) (uint, string, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(uint), args.String(1), args.Error(2)
}

func (m *MockSessionStore) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func strptr(s string) *string {
	return &s
}
