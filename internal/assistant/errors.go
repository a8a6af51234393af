package assistant

import (
	"errors"
	"fmt"
)

// AuthenticationError is returned when no principal accompanies the request.
type AuthenticationError struct {
	Message string
}

func (e AuthenticationError) Error() string {
	return "authentication required: " + e.Message
}

func IsAuthenticationError(err error) bool {
	var ae AuthenticationError
	return errors.As(err, &ae)
}

// NotFoundError never says whether the entry is missing or belongs to someone else.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func IsNotFoundError(err error) bool {
	var ne NotFoundError
	return errors.As(err, &ne)
}

// ValidationError represents a malformed question/answer history
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) ValidationError {
	return ValidationError{Field: field, Message: message}
}

func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// UpstreamError wraps a completion provider failure. Err is kept for logs; it is
// not meant for end users.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e UpstreamError) Error() string {
	return fmt.Sprintf("%s completion failed: %v", e.Provider, e.Err)
}

func (e UpstreamError) Unwrap() error {
	return e.Err
}

func IsUpstreamError(err error) bool {
	var ue UpstreamError
	return errors.As(err, &ue)
}
