package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/resend/resend-go/v2"

	"github.com/phrazzld/spotlight-site/internal/config"
	"github.com/phrazzld/spotlight-site/internal/domain"
)

// ResendMailer sends email through the Resend API.
type ResendMailer struct {
	// logger is used for structured logging
	logger *slog.Logger

	// client is the Resend API client for making requests
	client *resend.Client
}

// Option customizes a ResendMailer.
type Option func(*resend.Client)

// WithBaseURL points the client at a different API root, used against fakes
// in tests.
func WithBaseURL(u *url.URL) Option {
	return func(c *resend.Client) {
		c.BaseURL = u
	}
}

// NewResendMailer creates a ResendMailer from the email configuration.
//
// Returns ErrInvalidConfig when the API key is missing; callers that want to
// run without a provider should not construct a mailer at all.
func NewResendMailer(logger *slog.Logger, cfg config.EmailConfig, opts ...Option) (*ResendMailer, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}
	client := resend.NewCustomClient(httpClient, cfg.APIKey)
	for _, opt := range opts {
		opt(client)
	}

	return &ResendMailer{
		logger: logger,
		client: client,
	}, nil
}

// Send delivers the email and returns the provider's message id.
func (m *ResendMailer) Send(ctx context.Context, email *domain.Email) (*domain.Receipt, error) {
	if err := email.Validate(); err != nil {
		return nil, err
	}

	req := &resend.SendEmailRequest{
		From:    email.From,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
	}

	start := time.Now()
	sent, err := m.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		m.logger.WarnContext(ctx, "resend API call failed",
			"duration_ms", time.Since(start).Milliseconds())
		return nil, fmt.Errorf("%w: %w", ErrProvider, err)
	}
	if sent == nil || sent.Id == "" {
		return nil, fmt.Errorf("%w: response carried no message id", ErrProvider)
	}

	m.logger.DebugContext(ctx, "resend API call succeeded",
		"message_id", sent.Id,
		"duration_ms", time.Since(start).Milliseconds())

	return &domain.Receipt{ID: sent.Id}, nil
}
