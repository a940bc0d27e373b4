package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	App      AppConfig      `mapstructure:"app" validate:"required"`
	Quiz     QuizConfig     `mapstructure:"quiz" validate:"required"`
	Settings SettingsConfig `mapstructure:"settings" validate:"required"`
}

// AppConfig contains process-wide settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// QuizConfig contains quiz composition settings.
type QuizConfig struct {
	// QuestionsPerGame is how many questions one play-through draws from the pool.
	QuestionsPerGame int `mapstructure:"questions_per_game" validate:"required,gt=0"`
}

// SettingsConfig controls where user preferences are kept.
type SettingsConfig struct {
	// Dir is the directory holding settings.yaml.
	Dir string `mapstructure:"dir" validate:"required_unless=Ephemeral true"`
	// Ephemeral keeps preferences in memory only.
	Ephemeral bool `mapstructure:"ephemeral"`
}
