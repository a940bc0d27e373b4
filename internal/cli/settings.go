package cli

import (
	"context"
	"errors"
	"strconv"

	"github.com/fridok/fridok/internal/settings"
)

func (a *App) settingsScreen(ctx context.Context) error {
	for {
		prefs, err := a.store.Load(ctx)
		if err != nil {
			return err
		}

		a.printf("\nSettings\n")
		a.printf("  1) Animations:      %s\n", onOff(prefs.ShowAnimations))
		a.printf("  2) Nebula effects:  %s\n", onOff(prefs.ShowNebula))
		a.printf("  3) Haptic feedback: %s\n", onOff(prefs.HapticFeedback))
		a.printf("  4) Star density:    %.0f (%d stars)\n", prefs.StarDensity, prefs.StarCount())

		line, ok := a.prompt("Toggle which? (enter to go back): ")
		if !ok {
			return errQuit
		}

		switch line {
		case "":
			return nil
		case "1":
			prefs.ShowAnimations = !prefs.ShowAnimations
		case "2":
			prefs.ShowNebula = !prefs.ShowNebula
		case "3":
			prefs.HapticFeedback = !prefs.HapticFeedback
		case "4":
			v, ok := a.prompt("New star density (50-300): ")
			if !ok {
				return errQuit
			}
			density, err := strconv.ParseFloat(v, 64)
			if err != nil {
				a.printf("Not a number: %q\n", v)
				continue
			}
			prefs.StarDensity = density
		default:
			a.printf("Unknown option %q\n", line)
			continue
		}

		err = a.store.Save(ctx, prefs)
		if errors.Is(err, settings.ErrInvalidSettings) {
			a.printf("Star density must be between %d and %d\n", settings.MinStarDensity, settings.MaxStarDensity)
			continue
		}
		if err != nil {
			return err
		}
		a.logger.Info("settings updated",
			"show_animations", prefs.ShowAnimations,
			"show_nebula", prefs.ShowNebula,
			"haptic_feedback", prefs.HapticFeedback,
			"star_density", prefs.StarDensity)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
