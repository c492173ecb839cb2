package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keysecurity/internal/config"
)

func TestRequireAuth(t *testing.T) {
	jwtService := NewJWTService("test-secret")
	resolver := NewResolver(jwtService, nil, config.AuthModeToken, testCookieName)
	gate := RequireAuth(resolver)

	validToken, err := jwtService.IssueToken(7, "a@x.com")
	require.NoError(t, err)
	forgedToken, err := NewJWTService("other-secret").IssueToken(7, "a@x.com")
	require.NoError(t, err)

	tests := []struct {
		name         string
		header       string
		expectedCode int
	}{
		{"valid bearer passes", "Bearer " + validToken, http.StatusOK},
		{"anonymous rejected", "", http.StatusUnauthorized},
		{"forged token rejected", "Bearer " + forgedToken, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(tt.header, "")

			var seen *Claims
			next := func(c echo.Context) error {
				seen = Identity(c)
				return c.NoContent(http.StatusOK)
			}

			err := gate(next)(c)

			if tt.expectedCode == http.StatusOK {
				require.NoError(t, err)
				require.NotNil(t, seen)
				assert.Equal(t, uint(7), seen.UserID)
				assert.Equal(t, "a@x.com", seen.Email)
			} else {
				httpErr, ok := err.(*echo.HTTPError)
				require.True(t, ok)
				assert.Equal(t, tt.expectedCode, httpErr.Code)
				assert.Nil(t, seen)
			}
		})
	}
}

func TestIdentity_UnprotectedRoute(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Nil(t, Identity(c))
}
