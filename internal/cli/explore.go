package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/fridok/fridok/internal/catalog"
	"github.com/fridok/fridok/internal/domain"
)

func (a *App) planetsScreen(_ context.Context) error {
	planets := catalog.Planets()
	for {
		a.printf("\nPlanets of the Solar System\n")
		for i, p := range planets {
			a.printf("  %d) %s %s - %s\n", i+1, p.Symbol, p.Name, p.Diameter)
		}

		p, ok, err := a.pick(len(planets), func(name string) (int, bool) {
			planet, err := catalog.PlanetByName(name)
			if err != nil {
				return 0, false
			}
			return indexOfPlanet(planets, planet.Name), true
		})
		if err != nil || !ok {
			return err
		}
		a.showPlanet(planets[p])
	}
}

func (a *App) showPlanet(p domain.Planet) {
	a.printf("\n%s %s\n%s\n\n", p.Symbol, p.Name, p.Description)
	a.printf("  Diameter:          %s\n", p.Diameter)
	a.printf("  Distance from Sun: %s\n", p.DistanceFromSun)
	a.printf("  Day length:        %s\n", p.DayLength)
	a.printf("  Year length:       %s\n", p.YearLength)
	a.printf("  Moons:             %d\n", p.Moons)
	a.printf("  Temperature:       %s\n", p.Temperature)
	if p.HasRings() {
		a.printf("  Rings:             yes\n")
	}
	a.printFacts(p.Facts)
}

func (a *App) starsScreen(_ context.Context) error {
	stars := catalog.Stars()
	for {
		a.printf("\nFamous stars\n")
		for i, s := range stars {
			a.printf("  %d) %s %s (%s)\n", i+1, s.Type.Icon(), s.Name, s.Type.Label())
		}

		s, ok, err := a.pick(len(stars), func(name string) (int, bool) {
			star, err := catalog.StarByName(name)
			if err != nil {
				return 0, false
			}
			return indexOfStar(stars, star.Name), true
		})
		if err != nil || !ok {
			return err
		}
		a.showStar(stars[s])
	}
}

func (a *App) showStar(s domain.Star) {
	a.printf("\n%s - %s\n%s\n\n", s.Name, s.Type.Label(), s.Description)
	a.printf("  Distance:      %s\n", s.Distance)
	a.printf("  Mass:          %s\n", s.Mass)
	a.printf("  Temperature:   %s\n", s.Temperature)
	a.printf("  Luminosity:    %s\n", s.Luminosity)
	a.printf("  Age:           %s\n", s.Age)
	a.printf("  Constellation: %s\n", s.Constellation)
	a.printFacts(s.Facts)
}

func (a *App) printFacts(facts []string) {
	if len(facts) == 0 {
		return
	}
	a.printf("\n  Did you know?\n")
	for _, f := range facts {
		a.printf("   * %s\n", f)
	}
}

// pick reads a list selection by number or by name. ok is false when the user
// goes back with an empty line; end of input returns errQuit.
func (a *App) pick(n int, byName func(string) (int, bool)) (int, bool, error) {
	for {
		line, more := a.prompt("Choose a number or name (enter to go back): ")
		if !more {
			return 0, false, errQuit
		}
		if line == "" {
			return 0, false, nil
		}
		if i, err := strconv.Atoi(line); err == nil {
			if i >= 1 && i <= n {
				return i - 1, true, nil
			}
		} else if i, found := byName(line); found {
			return i, true, nil
		}
		a.printf("No such entry %q\n", line)
	}
}

func indexOfPlanet(planets []domain.Planet, name string) int {
	for i, p := range planets {
		if strings.EqualFold(p.Name, name) {
			return i
		}
	}
	return 0
}

func indexOfStar(stars []domain.Star, name string) int {
	for i, s := range stars {
		if strings.EqualFold(s.Name, name) {
			return i
		}
	}
	return 0
}
