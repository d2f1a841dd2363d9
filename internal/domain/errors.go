package domain

import "errors"

// Domain-specific errors returned by repositories and services.
var (
	// Request errors
	ErrValidation = errors.New("validation failed")

	// Authentication errors
	ErrNotAuthenticated   = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("admin access required")

	// Lookup errors
	ErrUserNotFound    = errors.New("user not found")
	ErrSessionNotFound = errors.New("session not found")
	ErrAgentNotFound   = errors.New("agent not found")
)

// ValidationError reports missing or malformed input. It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Message string
}

// NewValidationError creates a ValidationError with a client-facing message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
