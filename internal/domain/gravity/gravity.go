// Package gravity computes what a weight measured on Earth would read on
// other bodies of the Solar System.
package gravity

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidWeight is returned for weights that are not positive finite numbers.
var ErrInvalidWeight = errors.New("weight must be a positive number")

// Body is a surface with a gravity ratio relative to Earth.
type Body struct {
	Name   string  `json:"name"`
	Symbol string  `json:"symbol"`
	Ratio  float64 `json:"ratio"`
	Color  string  `json:"color"`
}

// Bodies returns the gravity table in display order.
func Bodies() []Body {
	out := make([]Body, len(bodies))
	copy(out, bodies)
	return out
}

var bodies = []Body{
	{Name: "Mercury", Symbol: "☿", Ratio: 0.38, Color: "8B7355"},
	{Name: "Venus", Symbol: "♀", Ratio: 0.91, Color: "FFA500"},
	{Name: "Earth", Symbol: "⊕", Ratio: 1.0, Color: "1E90FF"},
	{Name: "Moon", Symbol: "☾", Ratio: 0.166, Color: "C0C0C0"},
	{Name: "Mars", Symbol: "♂", Ratio: 0.38, Color: "CD5C5C"},
	{Name: "Jupiter", Symbol: "♃", Ratio: 2.34, Color: "DEB887"},
	{Name: "Saturn", Symbol: "♄", Ratio: 1.06, Color: "F0E68C"},
	{Name: "Uranus", Symbol: "⛢", Ratio: 0.92, Color: "87CEEB"},
	{Name: "Neptune", Symbol: "♆", Ratio: 1.19, Color: "4169E1"},
}

// Weight is the converted weight on one body.
type Weight struct {
	Body  Body    `json:"body"`
	Value float64 `json:"value"`
}

// Heavier reports whether the body pulls harder than Earth.
func (w Weight) Heavier() bool {
	return w.Body.Ratio > 1
}

// Percent returns the gravity ratio as a whole percentage. The ratio is
// rounded, since 2.34*100 is 233.99999999999997 in floating point.
func (w Weight) Percent() int {
	return int(math.Round(w.Body.Ratio * 100))
}

// Calculate converts earthWeight to every body in the table.
func Calculate(earthWeight float64) ([]Weight, error) {
	if math.IsNaN(earthWeight) || math.IsInf(earthWeight, 0) || earthWeight <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWeight, earthWeight)
	}

	out := make([]Weight, len(bodies))
	for i, b := range bodies {
		out[i] = Weight{Body: b, Value: earthWeight * b.Ratio}
	}
	return out, nil
}

// ParseWeight reads a user-entered weight. A comma is accepted as decimal separator.
func ParseWeight(input string) (float64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(input), ",", ".")
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidWeight)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeight, input)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeight, input)
	}
	return v, nil
}
