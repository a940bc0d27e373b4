// Package settings holds the user's display and feedback preferences. A
// Settings value is passed explicitly to whoever needs it; there is no
// process-wide instance.
package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Star density limits, in stars drawn on the background. The validate tag on
// Settings.StarDensity must use the same bounds.
const (
	MinStarDensity     = 50
	MaxStarDensity     = 300
	DefaultStarDensity = 150
)

// ErrInvalidSettings is returned when settings fail validation.
var ErrInvalidSettings = errors.New("invalid settings")

var validate = validator.New()

// Settings are the user's preferences.
type Settings struct {
	ShowAnimations bool    `mapstructure:"show_animations" json:"show_animations"`
	ShowNebula     bool    `mapstructure:"show_nebula" json:"show_nebula"`
	StarDensity    float64 `mapstructure:"star_density" json:"star_density" validate:"gte=50,lte=300"`
	HapticFeedback bool    `mapstructure:"haptic_feedback" json:"haptic_feedback"`
}

// Defaults returns the preferences of a fresh install.
func Defaults() Settings {
	return Settings{
		ShowAnimations: true,
		ShowNebula:     true,
		StarDensity:    DefaultStarDensity,
		HapticFeedback: true,
	}
}

// Validate checks the settings against their allowed ranges.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}

// StarCount returns the density as a whole number of stars.
func (s Settings) StarCount() int {
	return int(s.StarDensity)
}

// Store loads and saves settings.
type Store interface {
	// Load returns the saved settings, or Defaults when nothing was saved yet.
	Load(ctx context.Context) (Settings, error)

	// Save validates and persists s.
	Save(ctx context.Context, s Settings) error
}
