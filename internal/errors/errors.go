package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when the caller's user row is gone.
	ErrUserNotFound = errors.New("user not found")
	// ErrGroupNotFound is returned when a group is absent or owned by
	// someone else. The two cases are intentionally indistinguishable.
	ErrGroupNotFound = errors.New("group not found")
	// ErrItemNotFound is returned when an item is absent or its parent
	// group is owned by someone else.
	ErrItemNotFound = errors.New("item not found")
	// ErrEmailTaken is returned when a profile update collides with
	// another user's email.
	ErrEmailTaken = errors.New("email already in use")
	// ErrGroupNameRequired is returned when a group is created or
	// updated without a name.
	ErrGroupNameRequired = errors.New("group name is required")
	// ErrGroupIDRequired is returned when an item is created without a
	// parent group id.
	ErrGroupIDRequired = errors.New("groupId is required")
	// ErrItemPasswordRequired is returned when an item has no password.
	ErrItemPasswordRequired = errors.New("password is required")
	// ErrInvalidID is returned when a mutation carries no usable id.
	ErrInvalidID = errors.New("invalid id")
	// ErrCurrentPasswordRequired is returned when a password change omits
	// the current password.
	ErrCurrentPasswordRequired = errors.New("current password is required to change the password")
	// ErrCurrentPasswordWrong is returned when the supplied current
	// password does not match the stored hash.
	ErrCurrentPasswordWrong = errors.New("current password is incorrect")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Storage failures and
// anything unrecognized collapse to a generic 500 so internals never
// reach the client.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrGroupNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "GROUP_NOT_FOUND")
	case ErrItemNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "ITEM_NOT_FOUND")
	case ErrEmailTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case ErrGroupNameRequired:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "GROUP_NAME_REQUIRED")
	case ErrGroupIDRequired:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "GROUP_ID_REQUIRED")
	case ErrItemPasswordRequired:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PASSWORD_REQUIRED")
	case ErrInvalidID:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ID")
	case ErrCurrentPasswordRequired:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CURRENT_PASSWORD_REQUIRED")
	case ErrCurrentPasswordWrong:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "CURRENT_PASSWORD_WRONG")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
