package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"keysecurity/internal/auth"
	errs "keysecurity/internal/errors"
	"keysecurity/internal/model"
)

// MockGroupService is a mock implementation of service.GroupService.
type MockGroupService struct {
	mock.Mock
}

func (m *MockGroupService) Create(ctx context.Context, ownerID uint, name string, category *string) (*model.PasswordGroup, error) {
	args := m.Called(ctx, ownerID, name, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PasswordGroup), args.Error(1)
}

func (m *MockGroupService) Update(ctx context.Context, ownerID, id uint, name string, category *string) (*model.PasswordGroup, error) {
	args := m.Called(ctx, ownerID, id, name, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PasswordGroup), args.Error(1)
}

func (m *MockGroupService) Delete(ctx context.Context, ownerID, id uint) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func newAuthedContext(method, target, body string, userID uint) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(auth.IdentityContextKey, &auth.Claims{UserID: userID, Email: "a@x.com"})
	return c, rec
}

func TestGroupHandler_Create(t *testing.T) {
	groupService := new(MockGroupService)
	groupService.On("Create", mock.Anything, uint(7), "Banking", (*string)(nil)).
		Return(&model.PasswordGroup{ID: 3, UserID: 7, Name: "Banking"}, nil)

	h := NewGroupHandler(groupService)
	c, rec := newAuthedContext(http.MethodPost, "/api/password-groups", `{"name":"Banking"}`, 7)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Banking"`)
	assert.Contains(t, rec.Body.String(), `"type":null`)
	groupService.AssertExpectations(t)
}

func TestGroupHandler_Delete(t *testing.T) {
	t.Run("id from query string", func(t *testing.T) {
		groupService := new(MockGroupService)
		groupService.On("Delete", mock.Anything, uint(7), uint(3)).Return(nil)

		h := NewGroupHandler(groupService)
		c, rec := newAuthedContext(http.MethodDelete, "/api/password-groups?id=3", "", 7)

		require.NoError(t, h.Delete(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		groupService.AssertExpectations(t)
	})

	t.Run("id from body when query absent", func(t *testing.T) {
		groupService := new(MockGroupService)
		groupService.On("Delete", mock.Anything, uint(7), uint(3)).Return(nil)

		h := NewGroupHandler(groupService)
		c, _ := newAuthedContext(http.MethodDelete, "/api/password-groups", `{"id":3}`, 7)

		require.NoError(t, h.Delete(c))
		groupService.AssertExpectations(t)
	})

	t.Run("foreign group maps to 404", func(t *testing.T) {
		groupService := new(MockGroupService)
		groupService.On("Delete", mock.Anything, uint(8), uint(3)).Return(errs.ErrGroupNotFound)

		h := NewGroupHandler(groupService)
		c, _ := newAuthedContext(http.MethodDelete, "/api/password-groups?id=3", "", 8)

		err := h.Delete(c)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})

	t.Run("unparseable query id maps to 400", func(t *testing.T) {
		groupService := new(MockGroupService)
		groupService.On("Delete", mock.Anything, uint(7), uint(0)).Return(errs.ErrInvalidID)

		h := NewGroupHandler(groupService)
		c, _ := newAuthedContext(http.MethodDelete, "/api/password-groups?id=abc", "", 7)

		err := h.Delete(c)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}
