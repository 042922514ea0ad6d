// Package service provides the application-level contact service: it
// re-validates a submission, renders the notification email and hands it to
// the configured delivery provider. No submission is stored or retried.
package service
