package config

import (
	"os"
	"strconv"
	"time"

	"sudoku-engine/pkg/constants"
)

// Config is the demo server's environment-driven configuration. There is
// no user/session model in this engine, so there is no auth secret to
// validate.
type Config struct {
	Port                string
	DefaultMaxSolutions int
	CancelPollInterval  time.Duration
}

// Load loads configuration from environment variables, applying defaults
// for anything unset.
func Load() (*Config, error) {
	maxSolutions, err := strconv.Atoi(getEnv("DEFAULT_MAX_SOLUTIONS", "2"))
	if err != nil {
		maxSolutions = 2
	}

	pollMillis, err := strconv.Atoi(getEnv("CANCEL_POLL_INTERVAL_MS", "100"))
	if err != nil {
		pollMillis = 100
	}

	return &Config{
		Port:                getEnv("PORT", constants.DefaultPort),
		DefaultMaxSolutions: maxSolutions,
		CancelPollInterval:  time.Duration(pollMillis) * time.Millisecond,
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
