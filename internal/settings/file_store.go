package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fridok/fridok/internal/platform/logger"
	"github.com/spf13/viper"
)

// FileName is the name of the settings file inside the settings directory.
const FileName = "settings.yaml"

// Verify interface compliance at compile time
var _ Store = (*FileStore)(nil)

// FileStore persists settings as YAML through viper.
type FileStore struct {
	path   string
	logger *slog.Logger
}

// NewFileStore returns a store that keeps settings in dir/settings.yaml.
// The directory is created on first Save.
func NewFileStore(dir string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileStore{
		path:   filepath.Join(dir, FileName),
		logger: logger.With(slog.String("component", "settings_file_store")),
	}
}

// Path returns the settings file location.
func (f *FileStore) Path() string {
	return f.path
}

// Load implements Store. A missing file yields Defaults; keys absent from the
// file keep their default values.
func (f *FileStore) Load(ctx context.Context) (Settings, error) {
	log := logger.FromContextOrDefault(ctx, f.logger)

	v := f.newViper()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.Is(err, os.ErrNotExist) || errors.As(err, &notFound) {
			log.Debug("no settings file, using defaults", slog.String("path", f.path))
			return Defaults(), nil
		}
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		log.Warn("stored settings invalid, using defaults",
			slog.String("path", f.path),
			slog.String("error", err.Error()))
		return Defaults(), nil
	}

	log.Debug("settings loaded", slog.String("path", f.path))
	return s, nil
}

// Save implements Store.
func (f *FileStore) Save(ctx context.Context, s Settings) error {
	log := logger.FromContextOrDefault(ctx, f.logger)

	if err := s.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	v := f.newViper()
	v.Set("show_animations", s.ShowAnimations)
	v.Set("show_nebula", s.ShowNebula)
	v.Set("star_density", s.StarDensity)
	v.Set("haptic_feedback", s.HapticFeedback)

	if err := v.WriteConfigAs(f.path); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	log.Debug("settings saved", slog.String("path", f.path))
	return nil
}

func (f *FileStore) newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(f.path)
	v.SetConfigType("yaml")

	d := Defaults()
	v.SetDefault("show_animations", d.ShowAnimations)
	v.SetDefault("show_nebula", d.ShowNebula)
	v.SetDefault("star_density", d.StarDensity)
	v.SetDefault("haptic_feedback", d.HapticFeedback)
	return v
}
