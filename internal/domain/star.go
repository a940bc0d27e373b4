package domain

import (
	"errors"
	"fmt"
)

// StarType classifies a star for display.
type StarType string

// Known star types
const (
	StarTypeRedDwarf    StarType = "red_dwarf"
	StarTypeYellowDwarf StarType = "yellow_dwarf"
	StarTypeBlueGiant   StarType = "blue_giant"
	StarTypeRedGiant    StarType = "red_giant"
	StarTypeWhiteDwarf  StarType = "white_dwarf"
	StarTypeNeutronStar StarType = "neutron_star"
	StarTypeSupergiant  StarType = "supergiant"
)

// ErrStarNameEmpty is returned when a star has no name.
var ErrStarNameEmpty = errors.New("star name cannot be empty")

// Label returns the human-readable name of the star type.
func (t StarType) Label() string {
	switch t {
	case StarTypeRedDwarf:
		return "Red Dwarf"
	case StarTypeYellowDwarf:
		return "Yellow Dwarf"
	case StarTypeBlueGiant:
		return "Blue Giant"
	case StarTypeRedGiant:
		return "Red Giant"
	case StarTypeWhiteDwarf:
		return "White Dwarf"
	case StarTypeNeutronStar:
		return "Neutron Star"
	case StarTypeSupergiant:
		return "Supergiant"
	default:
		return ""
	}
}

// Icon returns the glyph shown next to stars of this type in listings.
func (t StarType) Icon() string {
	switch t {
	case StarTypeRedDwarf:
		return "•"
	case StarTypeYellowDwarf:
		return "☀"
	case StarTypeBlueGiant:
		return "✦"
	case StarTypeRedGiant:
		return "●"
	case StarTypeWhiteDwarf:
		return "✧"
	case StarTypeNeutronStar:
		return "⚛"
	case StarTypeSupergiant:
		return "✺"
	default:
		return ""
	}
}

// IsValid reports whether t is a known star type.
func (t StarType) IsValid() bool {
	return t.Label() != ""
}

// Star holds the display facts for one star.
type Star struct {
	Name          string   `json:"name"`
	Type          StarType `json:"type"`
	Description   string   `json:"description"`
	Facts         []string `json:"facts"`
	Distance      string   `json:"distance"`
	Mass          string   `json:"mass"`
	Temperature   string   `json:"temperature"`
	Luminosity    string   `json:"luminosity"`
	Age           string   `json:"age"`
	Constellation string   `json:"constellation"`
	Colors        []string `json:"colors"`
}

// Validate checks if the Star has valid data.
func (s Star) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrStarNameEmpty)
	}
	if !s.Type.IsValid() {
		return fmt.Errorf("%w: %w: %q", ErrValidation, ErrInvalidStarType, s.Type)
	}
	return nil
}

// Clone returns a deep copy of s.
func (s Star) Clone() Star {
	s.Facts = append([]string(nil), s.Facts...)
	s.Colors = append([]string(nil), s.Colors...)
	return s
}
