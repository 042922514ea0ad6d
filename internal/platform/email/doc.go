// Package email provides implementations of the service.Mailer interface.
//
// This package is an infrastructure adapter, connecting the contact service to
// the Resend transactional email API without exposing the provider's types to
// the rest of the application.
//
// Key components:
//
// 1. ResendMailer:
//   - Translates domain.Email into a Resend send request
//   - Applies the configured request timeout
//   - Reports provider failures as errors wrapping ErrProvider
//
// 2. DryRunMailer:
//   - Logs the rendered message instead of sending it
//   - Issues locally generated delivery identifiers
//
// Failed sends are never retried; the visitor resubmits.
package email
