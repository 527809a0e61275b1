package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the CLI configuration.
type Config struct {
	// DBPath is the SQLite database file. Empty means the default XDG path.
	DBPath string

	// NoColor disables coloured report output.
	NoColor bool
}

// DefaultConfig returns a Config with defaults.
func DefaultConfig() Config {
	return Config{}
}

// ConfigFromEnv loads a .env file from the working directory if one exists,
// then builds a Config from environment variables, falling back to defaults
// for unset values.
func ConfigFromEnv() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := DefaultConfig()

	if p := os.Getenv("ASSESS_DB"); p != "" {
		cfg.DBPath = p
	}
	if v := os.Getenv("ASSESS_NO_COLOR"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("ASSESS_NO_COLOR: %w", err)
		}
		cfg.NoColor = b
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.NoColor = true
	}

	return cfg, nil
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.DBPath != "" {
		if info, err := os.Stat(c.DBPath); err == nil && info.IsDir() {
			return fmt.Errorf("database path %q is a directory", c.DBPath)
		}
	}
	return nil
}
