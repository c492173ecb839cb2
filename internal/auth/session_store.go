package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"keysecurity/internal/cache"
)

const sessionKeyPrefix = "session:"

// SessionTTL matches the token lifetime so both deployment modes expire
// credentials on the same schedule.
const SessionTTL = TokenExpiry

// ErrSessionNotFound is returned when a session id is unknown or expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionStoreInterface defines the interface for session storage operations.
type SessionStoreInterface interface {
	Create(ctx context.Context, userID uint, email string) (sessionID string, err error)
	Get(ctx context.Context, sessionID string) (userID uint, email string, err error)
	Delete(ctx context.Context, sessionID string) error
}

// SessionStore keeps opaque server-side sessions in Redis. The server
// trusts its own store, so session lookups need no signature check.
type SessionStore struct {
	cache *cache.Client
}

// Ensure SessionStore implements SessionStoreInterface
var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a new session store.
func NewSessionStore(cache *cache.Client) *SessionStore {
	return &SessionStore{cache: cache}
}

type sessionData struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
}

// Create stores a new session and returns its opaque id.
func (s *SessionStore) Create(ctx context.Context, userID uint, email string) (string, error) {
	sessionID := uuid.New().String()

	payload, err := json.Marshal(sessionData{UserID: userID, Email: email})
	if err != nil {
		return "", fmt.Errorf("marshal session data: %w", err)
	}

	if err := s.cache.Set(ctx, sessionKeyPrefix+sessionID, payload, SessionTTL); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return sessionID, nil
}

// Get resolves a session id to the identity stored at login.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (uint, string, error) {
	data, err := s.cache.Get(ctx, sessionKeyPrefix+sessionID)
	if err != nil {
		return 0, "", fmt.Errorf("load session: %w", err)
	}
	if data == nil {
		return 0, "", ErrSessionNotFound
	}

	var sess sessionData
	if err := json.Unmarshal(data, &sess); err != nil {
		return 0, "", fmt.Errorf("unmarshal session data: %w", err)
	}
	return sess.UserID, sess.Email, nil
}

// Delete removes a session. Unknown ids are not an error.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+sessionID)
}
