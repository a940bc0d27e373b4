package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/fridok/fridok/internal/catalog"
	"github.com/fridok/fridok/internal/domain/gravity"
	"github.com/fridok/fridok/internal/domain/scale"
)

func (a *App) weightScreen(_ context.Context) error {
	for {
		line, ok := a.prompt("\nYour weight on Earth (enter to go back): ")
		if !ok {
			return errQuit
		}
		if line == "" {
			return nil
		}

		w, err := gravity.ParseWeight(line)
		if err == nil {
			var weights []gravity.Weight
			weights, err = gravity.Calculate(w)
			if err == nil {
				a.printWeights(weights)
				continue
			}
		}
		if errors.Is(err, gravity.ErrInvalidWeight) {
			a.printf("Enter a positive number\n")
			continue
		}
		return err
	}
}

func (a *App) printWeights(weights []gravity.Weight) {
	for _, w := range weights {
		marker := "lighter"
		if w.Heavier() {
			marker = "heavier"
		} else if w.Body.Ratio == 1 {
			marker = "home"
		}
		a.printf("  %s %-8s %8.1f  (%d%% gravity, %s)\n", w.Body.Symbol, w.Body.Name, w.Value, w.Percent(), marker)
	}
}

func (a *App) sizeScreen(_ context.Context) error {
	bodies := scale.BodiesFromPlanets(catalog.Planets())
	names := make([]string, len(bodies))
	for i, b := range bodies {
		names[i] = b.Name
	}

	for {
		a.printf("\nSize comparison: %s\n", strings.Join(names, ", "))
		line, ok := a.prompt("Compare which planets? (comma separated, 'all', enter to go back): ")
		if !ok {
			return errQuit
		}
		if line == "" {
			return nil
		}

		showAll := strings.EqualFold(line, "all")
		var selected []string
		if !showAll {
			for _, name := range strings.Split(line, ",") {
				if name = strings.TrimSpace(name); name != "" {
					selected = append(selected, name)
				}
			}
		}

		circles, err := scale.Compare(bodies, selected, showAll)
		if errors.Is(err, scale.ErrEmptySelection) || errors.Is(err, scale.ErrUnknownBody) {
			a.printf("%v\n", err)
			continue
		}
		if err != nil {
			return err
		}
		for _, c := range circles {
			a.printf("  %-8s size %5.1f  (%3.0f%% of largest shown)\n", c.Body.Name, c.Size, c.Scale*100)
		}

		details, err := scale.Details(bodies, selected, showAll)
		if err != nil {
			return err
		}
		a.printf("\nDiameter details\n")
		for _, b := range details {
			a.printf("  %-8s %-30s %s\n", b.Body.Name, bar(b.Fraction, 30), scale.FormatDiameter(b.Body.DiameterKm))
		}
	}
}

func bar(fraction float64, width int) string {
	n := int(fraction*float64(width) + 0.5)
	if n < 1 {
		n = 1
	}
	return strings.Repeat("#", n)
}
