package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. FRIDOK_APP_LOG_LEVEL.
const EnvPrefix = "FRIDOK"

// Default values
const (
	DefaultLogLevel         = "info"
	DefaultQuestionsPerGame = 5
)

// Load configuration from defaults, an optional fridok.yaml, an optional .env
// file and environment variables, in increasing order of precedence.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadWithViper(viper.New())
}

// LoadWithViper is Load on a caller-supplied viper instance, so command-line
// flags bound to v take precedence over every other source.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	// A missing .env file is the normal case.
	_ = godotenv.Load()

	setDefaults(v)

	v.SetConfigName("fridok")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "fridok"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.App.LogLevel = strings.ToLower(strings.TrimSpace(cfg.App.LogLevel))

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.log_level", DefaultLogLevel)
	v.SetDefault("quiz.questions_per_game", DefaultQuestionsPerGame)
	v.SetDefault("settings.dir", defaultSettingsDir())
	v.SetDefault("settings.ephemeral", false)
}

// defaultSettingsDir is the per-user config directory, or the working
// directory when the platform has none.
func defaultSettingsDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "fridok")
}
