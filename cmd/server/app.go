package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/spotlight-site/internal/config"
	"github.com/phrazzld/spotlight-site/internal/platform/email"
	"github.com/phrazzld/spotlight-site/internal/service"
	"github.com/phrazzld/spotlight-site/internal/spotlight"
)

type application struct {
	config *config.Config
	logger *slog.Logger

	mailer         service.Mailer
	contactService service.ContactService
	preset         spotlight.Preset
}

func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.mailer, err = newMailer(cfg.Email, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize mailer: %w", err)
	}

	app.contactService, err = service.NewContactService(app.mailer, service.ContactConfig{
		From:          cfg.Email.From,
		To:            cfg.Email.To,
		SubjectPrefix: cfg.Email.SubjectPrefix,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact service: %w", err)
	}

	app.preset, err = spotlight.LoadPresetFile(cfg.Spotlight.PresetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load spotlight preset: %w", err)
	}
	logger.Info("spotlight preset loaded",
		"preset", app.preset.Name,
		"images", len(app.preset.Targets))

	logger.Info("application initialized successfully")
	return app, nil
}

// newMailer picks the delivery backend. Without an API key the service still
// starts and answers submissions with "Email service not configured".
func newMailer(cfg config.EmailConfig, logger *slog.Logger) (service.Mailer, error) {
	switch {
	case cfg.DryRun:
		logger.Warn("email dry run enabled, submissions are logged and not delivered")
		return email.NewDryRunMailer(logger), nil

	case cfg.APIKey == "":
		logger.Warn("no email API key configured, contact submissions will fail")
		return nil, nil

	default:
		m, err := email.NewResendMailer(logger, cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("resend mailer initialized", "timeout_seconds", cfg.TimeoutSeconds)
		return m, nil
	}
}
