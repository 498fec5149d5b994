package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the application configuration.
type Config struct {
	// SaveDir is where game sessions are persisted.
	SaveDir string
	// Seed fixes the random source when non-zero. Useful for replays
	// and the headless simulator.
	Seed int64
	// Debug enables the in-game skip commands.
	Debug bool
}

// LoadConfig loads the configuration from environment variables. All
// variables are optional.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		SaveDir: ".saves",
	}

	if dir := os.Getenv("BAOYAN_SAVE_DIR"); dir != "" {
		cfg.SaveDir = dir
	}

	if seed := os.Getenv("BAOYAN_SEED"); seed != "" {
		n, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("BAOYAN_SEED must be an integer: %w", err)
		}
		cfg.Seed = n
	}

	if debug := os.Getenv("BAOYAN_DEBUG"); debug != "" {
		on, err := strconv.ParseBool(debug)
		if err != nil {
			return nil, fmt.Errorf("BAOYAN_DEBUG must be a boolean: %w", err)
		}
		cfg.Debug = on
	}

	return cfg, nil
}
