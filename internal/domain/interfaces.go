package domain

import (
	"context"
)

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// Choice is one option offered by a Prompter.
type Choice struct {
	Label       string
	Description string
}

// Prompter asks the user to pick one of several choices.
type Prompter interface {
	// Choose returns the index of the chosen option. ok is false when the
	// user cancelled. defaultIndex is preselected, or -1 for none.
	Choose(ctx context.Context, title string, choices []Choice, defaultIndex int) (index int, ok bool, err error)
}
