package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a submission fails validation.
	// It is wrapped by ValidationError, which carries the per-field messages.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyRecipient is returned when an outbound email has no recipient.
	ErrEmptyRecipient = errors.New("email recipient cannot be empty")

	// ErrEmptySender is returned when an outbound email has no sender.
	ErrEmptySender = errors.New("email sender cannot be empty")
)
