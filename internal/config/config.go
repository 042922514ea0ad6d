package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Email     EmailConfig     `mapstructure:"email" validate:"required"`
	CORS      CORSConfig      `mapstructure:"cors" validate:"required"`
	Spotlight SpotlightConfig `mapstructure:"spotlight"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error fatal"`

	// CIMetadata wraps the JSON log handler with CI environment attributes.
	CIMetadata bool `mapstructure:"ci_metadata"`
}

// EmailConfig contains the settings for the transactional email provider.
//
// APIKey is optional: without it the contact endpoint stays up
// and answers 500 "service not configured".
type EmailConfig struct {
	APIKey         string `mapstructure:"api_key"`
	From           string `mapstructure:"from" validate:"required"`
	To             string `mapstructure:"to" validate:"required,email"`
	SubjectPrefix  string `mapstructure:"subject_prefix"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gt=0,lte=120"`

	// DryRun logs submissions instead of sending them.
	DryRun bool `mapstructure:"dry_run"`
}

// CORSConfig controls the headers written for the contact endpoint.
type CORSConfig struct {
	AllowedOrigin string `mapstructure:"allowed_origin" validate:"required"`
}

// SpotlightConfig points at an optional YAML preset for the scroll animation.
type SpotlightConfig struct {
	PresetPath string `mapstructure:"preset_path"`
}
