package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenExpiry is the lifetime of an issued token. There is no refresh
// mechanism; expiry forces a fresh login.
const TokenExpiry = 7 * 24 * time.Hour

var (
	// ErrTokenExpired is returned when a token's expiry has lapsed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned for a bad signature or malformed token.
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims is the identity assertion carried by a token or recovered from
// a session lookup.
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies signed identity tokens.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a new JWT service with the given secret. The
// caller guarantees the secret is non-empty (config.Load enforces it).
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
	}
}

// IssueToken signs a token asserting the given identity for TokenExpiry.
func (s *JWTService) IssueToken(userID uint, email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyToken validates signature and expiry and returns the claims.
// Expiry is reported as ErrTokenExpired, every other failure as
// ErrTokenInvalid.
func (s *JWTService) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
