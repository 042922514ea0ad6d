package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/spotlight-site/internal/domain"
)

var testContactConfig = ContactConfig{
	From: "Site <noreply@example.com>",
	To:   "studio@example.com",
}

func validSubmission() domain.Submission {
	return domain.Submission{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Message: "I would like to commission a poster.",
	}
}

func TestNewContactService(t *testing.T) {
	tests := []struct {
		name        string
		cfg         ContactConfig
		expectError bool
		wantErr     error
	}{
		{
			name:        "missing sender",
			cfg:         ContactConfig{To: "studio@example.com"},
			expectError: true,
			wantErr:     domain.ErrEmptySender,
		},
		{
			name:        "missing recipient",
			cfg:         ContactConfig{From: "noreply@example.com"},
			expectError: true,
			wantErr:     domain.ErrEmptyRecipient,
		},
		{
			name: "valid config",
			cfg:  testContactConfig,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, err := NewContactService(&mockMailer{}, tc.cfg, slog.Default())

			if tc.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, svc)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, svc)
		})
	}
}

func TestContactService_Submit_Success(t *testing.T) {
	mailer := &mockMailer{
		SendFn: func(ctx context.Context, email *domain.Email) (*domain.Receipt, error) {
			return &domain.Receipt{ID: "4ef9a417-02e9-4d39-ad75-9611e0fcc33c"}, nil
		},
	}
	svc, err := NewContactService(mailer, testContactConfig, nil)
	require.NoError(t, err)

	sub := validSubmission()
	sub.Name = "  Ada Lovelace  "

	receipt, err := svc.Submit(context.Background(), sub)

	require.NoError(t, err)
	assert.Equal(t, "4ef9a417-02e9-4d39-ad75-9611e0fcc33c", receipt.ID)

	sent := mailer.Sent()
	require.Len(t, sent, 1)
	email := sent[0]
	assert.Equal(t, testContactConfig.From, email.From)
	assert.Equal(t, []string{"studio@example.com"}, email.To)
	assert.Equal(t, "ada@example.com", email.ReplyTo)
	assert.Equal(t, "New contact form submission from Ada Lovelace", email.Subject)
	assert.Contains(t, email.Text, "Name: Ada Lovelace")
	assert.Contains(t, email.Text, "I would like to commission a poster.")
	assert.Contains(t, email.HTML, "<strong>Name:</strong> Ada Lovelace")
}

func TestContactService_Submit_EscapesHTML(t *testing.T) {
	mailer := &mockMailer{}
	svc, err := NewContactService(mailer, testContactConfig, nil)
	require.NoError(t, err)

	sub := validSubmission()
	sub.Message = "<script>alert('x')</script> please reply"

	_, err = svc.Submit(context.Background(), sub)
	require.NoError(t, err)

	email := mailer.Sent()[0]
	assert.NotContains(t, email.HTML, "<script>")
	assert.Contains(t, email.HTML, "&lt;script&gt;")
	assert.Contains(t, email.Text, "<script>", "plain text body is not escaped")
}

func TestContactService_Submit_SingleLineSubject(t *testing.T) {
	mailer := &mockMailer{}
	svc, err := NewContactService(mailer, ContactConfig{
		From:          "noreply@example.com",
		To:            "studio@example.com",
		SubjectPrefix: "Inquiry",
	}, nil)
	require.NoError(t, err)

	sub := validSubmission()
	sub.Name = "Ada\r\nBcc: victim@example.com"

	_, err = svc.Submit(context.Background(), sub)
	require.NoError(t, err)

	assert.Equal(t, "Inquiry from Ada Bcc: victim@example.com", mailer.Sent()[0].Subject)
}

func TestContactService_Submit_ValidationFailure(t *testing.T) {
	mailer := &mockMailer{}
	svc, err := NewContactService(mailer, testContactConfig, nil)
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), domain.Submission{Name: "A", Email: "bad", Message: "short"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 2)
	assert.Empty(t, mailer.Sent(), "invalid submissions never reach the provider")
}

func TestContactService_Submit_NotConfigured(t *testing.T) {
	svc, err := NewContactService(nil, testContactConfig, nil)
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), validSubmission())
	assert.ErrorIs(t, err, ErrServiceNotConfigured)

	// Validation still wins over configuration.
	_, err = svc.Submit(context.Background(), domain.Submission{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestContactService_Submit_DeliveryFailure(t *testing.T) {
	providerErr := errors.New("422 validation_error: domain not verified")
	mailer := &mockMailer{
		SendFn: func(ctx context.Context, email *domain.Email) (*domain.Receipt, error) {
			return nil, providerErr
		},
	}
	svc, err := NewContactService(mailer, testContactConfig, nil)
	require.NoError(t, err)

	receipt, err := svc.Submit(context.Background(), validSubmission())

	assert.Nil(t, receipt)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDeliveryFailed)
	assert.ErrorIs(t, err, providerErr)
	assert.False(t, errors.Is(err, domain.ErrValidation))

	var svcErr *ContactServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, "send_email", svcErr.Operation)
	assert.Len(t, mailer.Sent(), 1, "no retries")
}

func TestNewContactServiceError(t *testing.T) {
	assert.NoError(t, NewContactServiceError("op", "msg", nil))
	assert.Same(t, ErrServiceNotConfigured, NewContactServiceError("op", "msg", ErrServiceNotConfigured))

	wrapped := NewContactServiceError("send_email", "boom", errors.New("io"))
	assert.EqualError(t, wrapped, "contact service send_email failed: boom: io")
}
