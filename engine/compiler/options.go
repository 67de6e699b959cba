package compiler

import (
	"fmt"
	"log/slog"
	"os"
)

// Options holds the compiler configuration.
type Options struct {
	// KnownNames, when set, are the only identifiers an expression may use.
	KnownNames []string
	LogHandler slog.Handler
	Logger     *slog.Logger
}

// FunctionalOption configures Options.
type FunctionalOption func(*Options) error

// WithKnownNames rejects, at compile time, expressions that use an identifier
// outside names. Without it any identifier is accepted and an unbound one
// fails at evaluation instead.
func WithKnownNames(names ...string) FunctionalOption {
	return func(cfg *Options) error {
		if cfg.KnownNames == nil {
			cfg.KnownNames = []string{}
		}
		cfg.KnownNames = append(cfg.KnownNames, names...)
		return nil
	}
}

// WithLogHandler sets the log handler. It replaces a logger set earlier.
func WithLogHandler(handler slog.Handler) FunctionalOption {
	return func(cfg *Options) error {
		if handler == nil {
			return fmt.Errorf("log handler cannot be nil")
		}
		cfg.LogHandler = handler
		cfg.Logger = nil
		return nil
	}
}

// WithLogger sets the logger. It replaces a handler set earlier.
func WithLogger(logger *slog.Logger) FunctionalOption {
	return func(cfg *Options) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		cfg.Logger = logger
		cfg.LogHandler = nil
		return nil
	}
}

// ApplyDefaults logs to stderr when neither a handler nor a logger is set.
func ApplyDefaults(cfg *Options) {
	if cfg.LogHandler == nil && cfg.Logger == nil {
		cfg.LogHandler = slog.NewTextHandler(os.Stderr, nil)
	}
}

// Validate checks the configuration after options are applied.
func Validate(cfg *Options) error {
	if cfg.LogHandler == nil && cfg.Logger == nil {
		return fmt.Errorf("either log handler or logger must be specified")
	}
	return nil
}
