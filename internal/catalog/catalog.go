// Package catalog holds the static content of the application: the planets,
// stars and quiz questions. All accessors return copies, so callers can never
// modify the shared tables.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fridok/fridok/internal/domain"
	"github.com/go-playground/validator/v10"
)

// ErrNotFound is returned when a lookup by name matches nothing.
var ErrNotFound = errors.New("catalog entry not found")

var validate = validator.New()

// contents groups the tables so they can be checked in one validator pass.
type contents struct {
	Planets   []domain.Planet   `validate:"min=1,unique=Name"`
	Stars     []domain.Star     `validate:"min=1,unique=Name"`
	Questions []domain.Question `validate:"min=1,unique=Prompt"`
}

// Planets returns the planets of the Solar System ordered by distance from the Sun.
func Planets() []domain.Planet {
	out := make([]domain.Planet, len(planets))
	for i, p := range planets {
		out[i] = p.Clone()
	}
	return out
}

// Stars returns the featured stars.
func Stars() []domain.Star {
	out := make([]domain.Star, len(stars))
	for i, s := range stars {
		out[i] = s.Clone()
	}
	return out
}

// Questions returns the full quiz question pool.
func Questions() []domain.Question {
	out := make([]domain.Question, len(questions))
	for i, q := range questions {
		out[i] = q.Clone()
	}
	return out
}

// PlanetByName looks a planet up by name, ignoring case.
func PlanetByName(name string) (domain.Planet, error) {
	for _, p := range planets {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p.Clone(), nil
		}
	}
	return domain.Planet{}, fmt.Errorf("%w: planet %q", ErrNotFound, name)
}

// StarByName looks a star up by name, ignoring case.
func StarByName(name string) (domain.Star, error) {
	for _, s := range stars {
		if strings.EqualFold(s.Name, strings.TrimSpace(name)) {
			return s.Clone(), nil
		}
	}
	return domain.Star{}, fmt.Errorf("%w: star %q", ErrNotFound, name)
}

// Validate checks the whole catalog: tables are non-empty, names and prompts
// are unique, and every entry passes its own domain validation.
func Validate() error {
	c := contents{Planets: planets, Stars: stars, Questions: questions}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: catalog: %v", domain.ErrValidation, err)
	}

	for i, p := range planets {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("planet %d: %w", i, err)
		}
	}
	for i, s := range stars {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("star %d: %w", i, err)
		}
	}
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i, err)
		}
	}
	return nil
}
