package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/spotlight-site/internal/domain"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check them with errors.Is; the API layer maps them to HTTP status
// codes.
var (
	// ErrServiceNotConfigured indicates no email provider credential is set.
	// API layer should map this to HTTP 500 with a "not configured" message.
	ErrServiceNotConfigured = errors.New("email service not configured")

	// ErrDeliveryFailed indicates the email provider rejected or failed the send.
	// It is distinct from validation failures and maps to HTTP 500.
	ErrDeliveryFailed = errors.New("email delivery failed")
)

// ContactServiceError wraps errors from the contact service with context.
type ContactServiceError struct {
	// Operation is the operation that failed (e.g., "render_email", "send_email")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ContactServiceError.
func (e *ContactServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("contact service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("contact service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ContactServiceError) Unwrap() error {
	return e.Err
}

// NewContactServiceError creates a new ContactServiceError.
// Validation errors and service sentinels are returned unwrapped so the API
// layer can match them directly.
func NewContactServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, ErrServiceNotConfigured) {
		return err
	}

	return &ContactServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
