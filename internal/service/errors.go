package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validation failed")

	ErrConflict      = errors.New("conflict")
	ErrEmailTaken    = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrUsernameTaken = fmt.Errorf("%w: username already taken", ErrConflict)

	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrNoteNotFound = errors.New("note not found")
	ErrUserNotFound = errors.New("user not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// client side
	ErrNotLoggedIn          = errors.New("not logged in")
	ErrServerUnavailable    = errors.New("server is unavailable")
	ErrTooManyRequests      = errors.New("too many requests")
	ErrUnexpectedServerData = errors.New("unexpected response from server")
)

// ValidationError rejects a request before it reaches storage.
// Message is safe to show to the caller.
type ValidationError struct {
	Message string
	Err     error
}

func newValidationError(message string, err error) *ValidationError {
	return &ValidationError{Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
