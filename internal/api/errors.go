package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/spotlight-site/internal/api/shared"
	"github.com/phrazzld/spotlight-site/internal/domain"
	"github.com/phrazzld/spotlight-site/internal/service"
)

// Safe, client-facing error messages.
const (
	MsgMethodNotAllowed     = "Method not allowed"
	MsgInvalidRequestFormat = "Invalid request format"
	MsgNotConfigured        = "Email service not configured"
	MsgDeliveryFailed       = "Failed to send message. Please try again later."
	MsgInternalError        = "Internal server error"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, shared.ErrBodyTooLarge):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrServiceNotConfigured),
		errors.Is(err, service.ErrDeliveryFailed):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgInternalError
	}

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return verr.First()
	case errors.Is(err, shared.ErrBodyTooLarge):
		return MsgInvalidRequestFormat
	case errors.Is(err, service.ErrServiceNotConfigured):
		return MsgNotConfigured
	case errors.Is(err, service.ErrDeliveryFailed):
		return MsgDeliveryFailed
	default:
		return MsgInternalError
	}
}

// fieldErrors flattens a validation error for the response body.
func fieldErrors(err error) map[string]string {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return nil
	}
	out := make(map[string]string, len(verr.Fields))
	for f, msg := range verr.Fields {
		out[string(f)] = msg
	}
	return out
}
