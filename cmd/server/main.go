// Package main runs the spotlight site API: the contact form endpoint and
// the spotlight frame preview.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/spotlight-site/internal/config"
	"github.com/phrazzld/spotlight-site/internal/platform/logger"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"allowed_origin", cfg.CORS.AllowedOrigin,
		"email_dry_run", cfg.Email.DryRun)
	if cfg.Email.APIKey != "" {
		slog.Debug("email configuration", "api_key_present", true)
	}

	app, err := newApplication(cfg, l)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}
