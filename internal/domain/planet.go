package domain

import (
	"errors"
	"fmt"
)

// Planet-specific validation errors
var (
	ErrPlanetNameEmpty     = errors.New("planet name cannot be empty")
	ErrPlanetMoonsNegative = errors.New("planet moon count cannot be negative")
	ErrPlanetDiameter      = errors.New("planet diameter must be positive")
)

// Planet holds the display facts for one planet of the Solar System.
// Measurements are kept as the human-readable strings shown on the detail card.
type Planet struct {
	Name            string   `json:"name"`
	Symbol          string   `json:"symbol"`
	Description     string   `json:"description"`
	Facts           []string `json:"facts"`
	Diameter        string   `json:"diameter"`
	DiameterKm      float64  `json:"diameter_km"`
	DistanceFromSun string   `json:"distance_from_sun"`
	DayLength       string   `json:"day_length"`
	YearLength      string   `json:"year_length"`
	Moons           int      `json:"moons"`
	Temperature     string   `json:"temperature"`
	Colors          []string `json:"colors"`
	RingColor       string   `json:"ring_color,omitempty"` // empty when the planet has no visible rings
}

// Validate checks if the Planet has valid data.
func (p Planet) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrPlanetNameEmpty)
	}
	if p.Moons < 0 {
		return fmt.Errorf("%w: %w", ErrValidation, ErrPlanetMoonsNegative)
	}
	if p.DiameterKm <= 0 {
		return fmt.Errorf("%w: %w", ErrValidation, ErrPlanetDiameter)
	}
	return nil
}

// HasRings reports whether the planet is drawn with a ring.
func (p Planet) HasRings() bool {
	return p.RingColor != ""
}

// Clone returns a deep copy of p.
func (p Planet) Clone() Planet {
	p.Facts = append([]string(nil), p.Facts...)
	p.Colors = append([]string(nil), p.Colors...)
	return p
}
