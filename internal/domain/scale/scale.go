// Package scale lays out proportional circles and bars for comparing the
// sizes of planets.
package scale

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/fridok/fridok/internal/domain"
)

// Layout constants, in display points.
const (
	MinCircleSize     = 20.0
	BaseSizeFew       = 150.0
	BaseSizeMany      = 120.0
	ManyBodiesCutover = 4 // more than this many bodies use BaseSizeMany
)

var (
	// ErrEmptySelection is returned when nothing is selected for comparison.
	ErrEmptySelection = errors.New("no bodies selected")

	// ErrUnknownBody is returned when a selected name is not among the bodies.
	ErrUnknownBody = errors.New("unknown body")
)

// Body is anything with a name and a diameter.
type Body struct {
	Name       string  `json:"name"`
	DiameterKm float64 `json:"diameter_km"`
	Color      string  `json:"color"`
}

// Circle is a body drawn at a size proportional to the largest shown body.
type Circle struct {
	Body  Body    `json:"body"`
	Scale float64 `json:"scale"` // diameter relative to the largest shown body, in (0, 1]
	Size  float64 `json:"size"`
}

// Bar is a body's diameter as a fraction of the largest body overall.
type Bar struct {
	Body     Body    `json:"body"`
	Fraction float64 `json:"fraction"`
}

// BodiesFromPlanets converts catalog planets into comparable bodies.
func BodiesFromPlanets(planets []domain.Planet) []Body {
	out := make([]Body, 0, len(planets))
	for _, p := range planets {
		color := ""
		if len(p.Colors) > 0 {
			color = p.Colors[0]
		}
		out = append(out, Body{Name: p.Name, DiameterKm: p.DiameterKm, Color: color})
	}
	return out
}

// Compare returns circles for the selected bodies (or all bodies when showAll
// is set), in the order of bodies. Sizes are scaled against the largest shown
// body and never drop below MinCircleSize.
func Compare(bodies []Body, selected []string, showAll bool) ([]Circle, error) {
	shown, err := filter(bodies, selected, showAll)
	if err != nil {
		return nil, err
	}

	largest := maxDiameter(shown)
	base := BaseSizeFew
	if len(shown) > ManyBodiesCutover {
		base = BaseSizeMany
	}

	out := make([]Circle, len(shown))
	for i, b := range shown {
		s := b.DiameterKm / largest
		out[i] = Circle{
			Body:  b,
			Scale: s,
			Size:  math.Max(MinCircleSize, base*s),
		}
	}
	return out, nil
}

// Bars returns one bar per body, sized against the largest of all bodies.
func Bars(bodies []Body) []Bar {
	largest := maxDiameter(bodies)
	out := make([]Bar, len(bodies))
	for i, b := range bodies {
		out[i] = Bar{Body: b, Fraction: b.DiameterKm / largest}
	}
	return out
}

// Details returns bars for the shown bodies, largest first. Fractions are
// taken against the largest of all bodies, so a small selection still shows
// how it compares with the whole set.
func Details(bodies []Body, selected []string, showAll bool) ([]Bar, error) {
	shown, err := filter(bodies, selected, showAll)
	if err != nil {
		return nil, err
	}

	keep := make(map[string]bool, len(shown))
	for _, b := range shown {
		keep[b.Name] = true
	}

	out := make([]Bar, 0, len(shown))
	for _, bar := range Bars(bodies) {
		if keep[bar.Body.Name] {
			out = append(out, bar)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Body.DiameterKm > out[j].Body.DiameterKm
	})
	return out, nil
}

// FormatDiameter renders a diameter the way the comparison labels show it.
func FormatDiameter(km float64) string {
	if km >= 1000 {
		return fmt.Sprintf("%.0fK km", km/1000)
	}
	return fmt.Sprintf("%.0f km", km)
}

func filter(bodies []Body, selected []string, showAll bool) ([]Body, error) {
	if showAll {
		if len(bodies) == 0 {
			return nil, ErrEmptySelection
		}
		return bodies, nil
	}
	if len(selected) == 0 {
		return nil, ErrEmptySelection
	}

	want := make(map[string]bool, len(selected))
	for _, name := range selected {
		key := strings.ToLower(strings.TrimSpace(name))
		if !hasBody(bodies, key) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBody, name)
		}
		want[key] = true
	}

	out := make([]Body, 0, len(want))
	for _, b := range bodies {
		if want[strings.ToLower(b.Name)] {
			out = append(out, b)
		}
	}
	return out, nil
}

func hasBody(bodies []Body, lowerName string) bool {
	for _, b := range bodies {
		if strings.ToLower(b.Name) == lowerName {
			return true
		}
	}
	return false
}

// maxDiameter returns the largest diameter, or 1 for an empty set so callers
// never divide by zero.
func maxDiameter(bodies []Body) float64 {
	largest := 0.0
	for _, b := range bodies {
		largest = math.Max(largest, b.DiameterKm)
	}
	if largest <= 0 {
		return 1
	}
	return largest
}
