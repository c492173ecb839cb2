package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.IssueToken(42, "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(TokenExpiry), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_VerifyToken_WrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-one").IssueToken(1, "a@x.com")
	require.NoError(t, err)

	claims, err := NewJWTService("secret-two").VerifyToken(token)
	assert.Equal(t, ErrTokenInvalid, err)
	assert.Nil(t, claims)
}

func TestJWTService_VerifyToken_Expired(t *testing.T) {
	service := NewJWTService("test-secret")

	expired := &Claims{
		UserID: 1,
		Email:  "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	claims, err := service.VerifyToken(signed)
	assert.Equal(t, ErrTokenExpired, err)
	assert.Nil(t, claims)
}

func TestJWTService_VerifyToken_Malformed(t *testing.T) {
	service := NewJWTService("test-secret")

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.VerifyToken(tt.token)
			assert.Equal(t, ErrTokenInvalid, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_VerifyToken_WrongSigningMethod(t *testing.T) {
	service := NewJWTService("test-secret")

	// alg=none tokens must never verify.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	assert.Equal(t, ErrTokenInvalid, err)
	assert.Nil(t, claims)
}
