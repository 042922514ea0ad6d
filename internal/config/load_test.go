package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets up environment variables for testing
func setupEnv(t *testing.T, envVars map[string]string) func() {
	// Save current environment values
	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	// Set new environment variables
	for name, value := range envVars {
		err := os.Setenv(name, value)
		require.NoError(t, err, "Failed to set environment variable %s", name)
	}

	// Return cleanup function
	return func() {
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

// clearedEnv blanks every variable Load reads so host settings cannot leak in.
func clearedEnv(overrides map[string]string) map[string]string {
	env := map[string]string{
		"SITE_SERVER_PORT":           "",
		"SITE_SERVER_LOG_LEVEL":      "",
		"SITE_EMAIL_API_KEY":         "",
		"SITE_EMAIL_TO":              "",
		"SITE_EMAIL_TIMEOUT_SECONDS": "",
		"SITE_EMAIL_DRY_RUN":         "",
		"SITE_CORS_ALLOWED_ORIGIN":   "",
		"RESEND_API_KEY":             "",
	}
	for k, v := range overrides {
		env[k] = v
	}
	return env
}

// TestLoadDefaults verifies that the Load function sets the expected default values
// when no environment variables are set.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, clearedEnv(nil))
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Empty(t, cfg.Email.APIKey, "API key has no default")
	assert.Equal(t, 10, cfg.Email.TimeoutSeconds)
	assert.False(t, cfg.Email.DryRun)
	assert.Equal(t, "*", cfg.CORS.AllowedOrigin)
}

// TestLoadFromEnv verifies that the Load function correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, clearedEnv(map[string]string{
		"SITE_SERVER_PORT":         "9090",
		"SITE_SERVER_LOG_LEVEL":    "debug",
		"SITE_EMAIL_API_KEY":       "re_test_key",
		"SITE_EMAIL_TO":            "team@example.com",
		"SITE_EMAIL_DRY_RUN":       "true",
		"SITE_CORS_ALLOWED_ORIGIN": "https://example.com",
	}))
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "re_test_key", cfg.Email.APIKey)
	assert.Equal(t, "team@example.com", cfg.Email.To)
	assert.True(t, cfg.Email.DryRun)
	assert.Equal(t, "https://example.com", cfg.CORS.AllowedOrigin)
}

// TestLoadProviderKeyAlias verifies the unprefixed provider variable is honoured.
func TestLoadProviderKeyAlias(t *testing.T) {
	cleanup := setupEnv(t, clearedEnv(map[string]string{
		"RESEND_API_KEY": "re_alias_key",
	}))
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "re_alias_key", cfg.Email.APIKey)
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name:    "Invalid port number",
			envVars: map[string]string{"SITE_SERVER_PORT": "999999"},
		},
		{
			name:    "Invalid log level",
			envVars: map[string]string{"SITE_SERVER_LOG_LEVEL": "invalid-level"},
		},
		{
			name:    "Invalid recipient",
			envVars: map[string]string{"SITE_EMAIL_TO": "not-an-address"},
		},
		{
			name:    "Timeout out of range",
			envVars: map[string]string{"SITE_EMAIL_TIMEOUT_SECONDS": "600"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cleanup := setupEnv(t, clearedEnv(tc.envVars))
			defer cleanup()

			cfg, err := Load()

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), "validation failed")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
