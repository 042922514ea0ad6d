package service

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"log/slog"
	"strings"
	texttemplate "text/template"

	"github.com/phrazzld/spotlight-site/internal/domain"
	"github.com/phrazzld/spotlight-site/internal/redact"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// DefaultSubjectPrefix is used when ContactConfig.SubjectPrefix is empty.
const DefaultSubjectPrefix = "New contact form submission"

// Mailer delivers a rendered email. Implementations live under
// internal/platform.
type Mailer interface {
	Send(ctx context.Context, email *domain.Email) (*domain.Receipt, error)
}

// ContactService handles contact form submissions.
type ContactService interface {
	// Submit validates the submission and forwards it to the fixed recipient.
	Submit(ctx context.Context, submission domain.Submission) (*domain.Receipt, error)
}

// ContactConfig holds the fixed addressing for notification emails.
type ContactConfig struct {
	From          string
	To            string
	SubjectPrefix string
}

type contactServiceImpl struct {
	mailer  Mailer
	cfg     ContactConfig
	subject *texttemplate.Template
	text    *texttemplate.Template
	html    *htmltemplate.Template
	logger  *slog.Logger
}

// templateData is what the email templates see.
type templateData struct {
	Prefix  string
	Name    string
	Email   string
	Message string
}

// NewContactService creates a new ContactService.
//
// A nil mailer is accepted: the service then rejects every valid submission
// with ErrServiceNotConfigured instead of failing at startup.
func NewContactService(mailer Mailer, cfg ContactConfig, logger *slog.Logger) (ContactService, error) {
	if cfg.From == "" {
		return nil, &ContactServiceError{
			Operation: "create_service",
			Message:   "sender address cannot be empty",
			Err:       domain.ErrEmptySender,
		}
	}
	if cfg.To == "" {
		return nil, &ContactServiceError{
			Operation: "create_service",
			Message:   "recipient address cannot be empty",
			Err:       domain.ErrEmptyRecipient,
		}
	}
	if cfg.SubjectPrefix == "" {
		cfg.SubjectPrefix = DefaultSubjectPrefix
	}

	subject, err := texttemplate.ParseFS(templateFS, "templates/contact_subject.tmpl")
	if err != nil {
		return nil, NewContactServiceError("create_service", "failed to parse subject template", err)
	}
	text, err := texttemplate.ParseFS(templateFS, "templates/contact_body.txt.tmpl")
	if err != nil {
		return nil, NewContactServiceError("create_service", "failed to parse text template", err)
	}
	html, err := htmltemplate.ParseFS(templateFS, "templates/contact_body.html.tmpl")
	if err != nil {
		return nil, NewContactServiceError("create_service", "failed to parse html template", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &contactServiceImpl{
		mailer:  mailer,
		cfg:     cfg,
		subject: subject,
		text:    text,
		html:    html,
		logger:  logger.With("component", "contact_service"),
	}, nil
}

// Submit re-runs the form validation, renders the notification and sends it.
// Validation always runs first so malformed direct API calls are reported as
// such even when delivery is unavailable.
func (s *contactServiceImpl) Submit(
	ctx context.Context,
	submission domain.Submission,
) (*domain.Receipt, error) {
	submission = submission.Normalize()

	if err := domain.ValidateSubmission(submission).Err(); err != nil {
		s.logger.DebugContext(ctx, "submission failed validation", "error", err)
		return nil, err
	}

	if s.mailer == nil {
		s.logger.ErrorContext(ctx, "contact submission received but no email provider is configured")
		return nil, ErrServiceNotConfigured
	}

	email, err := s.render(submission)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to render notification email", "error", redact.Error(err))
		return nil, NewContactServiceError("render_email", "failed to render notification", err)
	}

	receipt, err := s.mailer.Send(ctx, email)
	if err != nil {
		s.logger.ErrorContext(ctx, "email delivery failed",
			"error", redact.Error(err),
			"sender_domain", redact.EmailDomain(submission.Email))
		return nil, NewContactServiceError("send_email", "provider rejected message",
			errors.Join(ErrDeliveryFailed, err))
	}

	s.logger.InfoContext(ctx, "contact submission delivered",
		"delivery_id", receipt.ID,
		"sender_domain", redact.EmailDomain(submission.Email),
		"message_length", len(submission.Message))

	return receipt, nil
}

func (s *contactServiceImpl) render(sub domain.Submission) (*domain.Email, error) {
	data := templateData{
		Prefix:  s.cfg.SubjectPrefix,
		Name:    sub.Name,
		Email:   sub.Email,
		Message: sub.Message,
	}

	var subject, text, html bytes.Buffer
	if err := s.subject.Execute(&subject, data); err != nil {
		return nil, fmt.Errorf("subject: %w", err)
	}
	if err := s.text.Execute(&text, data); err != nil {
		return nil, fmt.Errorf("text body: %w", err)
	}
	if err := s.html.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("html body: %w", err)
	}

	email := &domain.Email{
		From:    s.cfg.From,
		To:      []string{s.cfg.To},
		ReplyTo: sub.Email,
		// Subjects are single-line.
		Subject: strings.Join(strings.Fields(subject.String()), " "),
		Text:    text.String(),
		HTML:    html.String(),
	}
	if err := email.Validate(); err != nil {
		return nil, err
	}
	return email, nil
}
