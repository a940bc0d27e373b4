// Package config handles configuration loading, parsing, and validation
// from various sources (defaults, config file, .env file, environment
// variables and command-line flags). It provides type-safe access to
// application settings while keeping configuration details separate from the
// quiz and content logic, which never read configuration themselves.
package config
