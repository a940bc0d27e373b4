package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fridok/fridok/internal/service"
	"github.com/fridok/fridok/internal/settings"
)

// errQuit ends the current screen and the app.
var errQuit = errors.New("quit")

// App is the interactive terminal application.
type App struct {
	in     *bufio.Scanner
	out    io.Writer
	quiz   *service.QuizService
	store  settings.Store
	logger *slog.Logger
}

// New creates an App reading commands from in and rendering to out.
func New(in io.Reader, out io.Writer, quiz *service.QuizService, store settings.Store, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		in:     bufio.NewScanner(in),
		out:    out,
		quiz:   quiz,
		store:  store,
		logger: logger.With("component", "cli"),
	}
}

type menuEntry struct {
	key    string
	label  string
	action func(ctx context.Context) error
}

func (a *App) menu() []menuEntry {
	return []menuEntry{
		{key: "1", label: "Planets", action: a.planetsScreen},
		{key: "2", label: "Stars", action: a.starsScreen},
		{key: "3", label: "Quiz", action: a.quizScreen},
		{key: "4", label: "Weight calculator", action: a.weightScreen},
		{key: "5", label: "Size comparison", action: a.sizeScreen},
		{key: "6", label: "Settings", action: a.settingsScreen},
	}
}

// Run shows the main menu until the user quits or input ends.
func (a *App) Run(ctx context.Context) error {
	entries := a.menu()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		a.printf("\nFridok - explore the universe\n")
		for _, e := range entries {
			a.printf("  %s) %s\n", e.key, e.label)
		}
		a.printf("  q) Quit\n")

		choice, ok := a.prompt("> ")
		if !ok || strings.EqualFold(choice, "q") {
			a.printf("Clear skies!\n")
			return a.in.Err()
		}

		entry, found := findEntry(entries, choice)
		if !found {
			a.printf("Unknown option %q\n", choice)
			continue
		}

		a.logger.Debug("screen opened", "screen", entry.label)
		if err := entry.action(ctx); err != nil {
			if errors.Is(err, errQuit) {
				a.printf("Clear skies!\n")
				return a.in.Err()
			}
			return err
		}
	}
}

func findEntry(entries []menuEntry, key string) (menuEntry, bool) {
	for _, e := range entries {
		if e.key == key {
			return e, true
		}
	}
	return menuEntry{}, false
}

// prompt writes label and reads one trimmed line. ok is false at end of input.
func (a *App) prompt(label string) (string, bool) {
	a.printf("%s", label)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}
