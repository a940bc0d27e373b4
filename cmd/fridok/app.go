package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fridok/fridok/internal/catalog"
	"github.com/fridok/fridok/internal/cli"
	"github.com/fridok/fridok/internal/config"
	"github.com/fridok/fridok/internal/events"
	"github.com/fridok/fridok/internal/platform/logger"
	"github.com/fridok/fridok/internal/service"
	"github.com/fridok/fridok/internal/settings"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagBindings maps config keys to command-line flag names.
var flagBindings = map[string]string{
	"app.log_level":           "log-level",
	"quiz.questions_per_game": "questions",
	"settings.dir":            "settings-dir",
	"settings.ephemeral":      "ephemeral",
}

// run is main without the process exit, so it can be driven from tests.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.App, stderr)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	ctx = logger.WithLogger(ctx, log)

	log.Info("configuration loaded",
		"log_level", cfg.App.LogLevel,
		"questions_per_game", cfg.Quiz.QuestionsPerGame,
		"settings_dir", cfg.Settings.Dir,
		"ephemeral", cfg.Settings.Ephemeral)

	if err := catalog.Validate(); err != nil {
		return fmt.Errorf("invalid content catalog: %w", err)
	}

	app, err := newApp(cfg, stdin, stdout, log)
	if err != nil {
		return err
	}
	return app.Run(ctx)
}

// loadConfig parses flags into a fresh viper instance and loads the
// configuration on top of it.
func loadConfig(args []string, errOut io.Writer) (*config.Config, error) {
	fs := pflag.NewFlagSet("fridok", pflag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn or error")
	fs.Int("questions", config.DefaultQuestionsPerGame, "number of questions per quiz game")
	fs.String("settings-dir", "", "directory holding settings.yaml")
	fs.Bool("ephemeral", false, "keep settings in memory only")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	for key, name := range flagBindings {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}

	return config.LoadWithViper(v)
}

// newApp builds the dependency graph behind the terminal app.
func newApp(cfg *config.Config, stdin io.Reader, stdout io.Writer, log *slog.Logger) (*cli.App, error) {
	store := newSettingsStore(cfg.Settings, log)

	emitter := events.NewInMemoryEventEmitter(log)
	feedback, err := service.NewFeedbackHandler(store, &cli.Bell{Out: stdout}, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create feedback handler: %w", err)
	}
	emitter.RegisterHandler(feedback)

	quizService, err := service.NewQuizService(catalog.Questions(), cfg.Quiz, emitter, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create quiz service: %w", err)
	}

	return cli.New(stdin, stdout, quizService, store, log), nil
}

func newSettingsStore(cfg config.SettingsConfig, log *slog.Logger) settings.Store {
	if cfg.Ephemeral {
		log.Debug("using in-memory settings")
		return settings.NewMemoryStore()
	}
	store := settings.NewFileStore(cfg.Dir, log)
	log.Debug("using settings file", "path", store.Path())
	return store
}
