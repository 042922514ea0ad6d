package email

import "errors"

// Error definitions for the email package.
var (
	// ErrInvalidConfig is returned when the mailer configuration is unusable.
	ErrInvalidConfig = errors.New("invalid email configuration")

	// ErrProvider wraps every failure reported by the delivery provider.
	ErrProvider = errors.New("email provider error")
)
