package config

import (
	"os"
	"strings"
	"testing"

	"github.com/spf13/viper"
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
		// Restore original environment
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

// TestLoadDefaults verifies that the Load function sets the expected default values
// when no environment variables are set.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"FRIDOK_APP_LOG_LEVEL":           "",
		"FRIDOK_QUIZ_QUESTIONS_PER_GAME": "",
		"FRIDOK_SETTINGS_DIR":            "",
		"FRIDOK_SETTINGS_EPHEMERAL":      "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, "info", cfg.App.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, 5, cfg.Quiz.QuestionsPerGame, "Default game length should be 5")
	assert.NotEmpty(t, cfg.Settings.Dir, "Settings dir should default to the user config dir")
	assert.False(t, cfg.Settings.Ephemeral)
}

// TestLoadFromEnv verifies that the Load function correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	dir := t.TempDir()
	cleanup := setupEnv(t, map[string]string{
		"FRIDOK_APP_LOG_LEVEL":           "debug",
		"FRIDOK_QUIZ_QUESTIONS_PER_GAME": "8",
		"FRIDOK_SETTINGS_DIR":            dir,
		"FRIDOK_SETTINGS_EPHEMERAL":      "true",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, "debug", cfg.App.LogLevel, "Log level should be loaded from environment variables")
	assert.Equal(t, 8, cfg.Quiz.QuestionsPerGame, "Game length should be loaded from environment variables")
	assert.Equal(t, dir, cfg.Settings.Dir, "Settings dir should be loaded from environment variables")
	assert.True(t, cfg.Settings.Ephemeral)
}

// TestLoadWithViperOverrides verifies that values set on the viper instance,
// as bound command-line flags are, win over defaults.
func TestLoadWithViperOverrides(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"FRIDOK_APP_LOG_LEVEL":           "",
		"FRIDOK_QUIZ_QUESTIONS_PER_GAME": "",
	})
	defer cleanup()

	v := viper.New()
	v.Set("quiz.questions_per_game", 3)
	v.Set("app.log_level", "warn")

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Quiz.QuestionsPerGame)
	assert.Equal(t, "warn", cfg.App.LogLevel)
}

// TestLoadLogLevelIgnoresCase verifies that level names are accepted in any case.
func TestLoadLogLevelIgnoresCase(t *testing.T) {
	for _, level := range []string{"DEBUG", "Warn", " error "} {
		t.Run(level, func(t *testing.T) {
			cleanup := setupEnv(t, map[string]string{
				"FRIDOK_APP_LOG_LEVEL":           level,
				"FRIDOK_QUIZ_QUESTIONS_PER_GAME": "",
			})
			defer cleanup()

			cfg, err := Load()

			require.NoError(t, err, "Load() should accept log level %q", level)
			assert.Equal(t, strings.ToLower(strings.TrimSpace(level)), cfg.App.LogLevel)
		})
	}
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name           string
		envVars        map[string]string
		errorSubstring string
	}{
		{
			name: "Invalid log level",
			envVars: map[string]string{
				"FRIDOK_APP_LOG_LEVEL":           "invalid-level",
				"FRIDOK_QUIZ_QUESTIONS_PER_GAME": "5",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Negative questions per game",
			envVars: map[string]string{
				"FRIDOK_APP_LOG_LEVEL":           "info",
				"FRIDOK_QUIZ_QUESTIONS_PER_GAME": "-2",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Non-numeric questions per game",
			envVars: map[string]string{
				"FRIDOK_APP_LOG_LEVEL":           "info",
				"FRIDOK_QUIZ_QUESTIONS_PER_GAME": "five",
			},
			errorSubstring: "unmarshal",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cleanup := setupEnv(t, tc.envVars)
			defer cleanup()

			cfg, err := Load()

			assert.Error(t, err, "Load() should return an error with invalid configuration")
			if err != nil {
				assert.Contains(t, err.Error(), tc.errorSubstring, "Error message should contain expected substring")
			}
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
