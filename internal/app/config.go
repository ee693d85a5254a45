package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// PlanPath is an HCL plan (file or directory) or a text statement file.
	// Empty means statements are read from the App's input reader.
	PlanPath string

	Workers  int
	BaseCost int

	LogFormat string
	LogLevel  string

	// EventsURL, when set, streams simulation events to a socket.io server.
	EventsURL       string
	EventsNamespace string
	// EventsFile, when set, appends simulation events as JSON lines. "-"
	// means the log writer.
	EventsFile string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", cfg.Workers)
	}
	if cfg.BaseCost < 0 {
		return nil, fmt.Errorf("base cost must not be negative, got %d", cfg.BaseCost)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	if cfg.EventsNamespace == "" {
		cfg.EventsNamespace = "/"
	}

	return &cfg, nil
}
