package email

import (
	"fmt"

	"github.com/phrazzld/spotlight-site/internal/config"
)

// validateConfig checks the settings a live provider needs.
func validateConfig(cfg config.EmailConfig) error {
	if cfg.APIKey == "" {
		return fmt.Errorf("%w: API key cannot be empty", ErrInvalidConfig)
	}
	if cfg.TimeoutSeconds <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %d", ErrInvalidConfig, cfg.TimeoutSeconds)
	}
	return nil
}
