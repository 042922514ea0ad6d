package email

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/spotlight-site/internal/domain"
	"github.com/phrazzld/spotlight-site/internal/redact"
)

// DryRunMailer accepts every message and only logs it. Useful for local
// development and preview deployments where no provider key is wanted.
type DryRunMailer struct {
	logger *slog.Logger
}

// NewDryRunMailer returns a DryRunMailer logging through logger.
func NewDryRunMailer(logger *slog.Logger) *DryRunMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &DryRunMailer{logger: logger.With("component", "dry_run_mailer")}
}

// Send logs the message metadata and returns a fresh identifier.
func (m *DryRunMailer) Send(ctx context.Context, email *domain.Email) (*domain.Receipt, error) {
	if err := email.Validate(); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	m.logger.InfoContext(ctx, "dry run: email not sent",
		"message_id", id,
		"to", redact.String(email.To[0]),
		"subject_length", len(email.Subject),
		"text_length", len(email.Text))

	return &domain.Receipt{ID: id}, nil
}
