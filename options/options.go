// Package options configures evaluators built by the root package.
package options

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"

	"github.com/robbyt/go-veval/platform/data"
	"github.com/robbyt/go-veval/platform/script/loader"
	"github.com/robbyt/go-veval/scope"
)

// ErrNoLoader is returned by Validate when no loader was given.
var ErrNoLoader = errors.New("no loader specified")

// Config holds everything needed to build an evaluator.
type Config struct {
	handler      slog.Handler
	loader       loader.Loader
	dataProvider data.Provider
	staticData   map[string]any
	scope        *scope.Context
	knownNames   []string
}

// Option modifies a Config.
type Option func(*Config) error

// WithLogHandler sets the log handler. A nil handler is ignored.
func WithLogHandler(handler slog.Handler) Option {
	return func(c *Config) error {
		if handler != nil {
			c.handler = handler
		}
		return nil
	}
}

// WithSlog sets the log handler from a logger. A nil logger is ignored.
func WithSlog(logger *slog.Logger) Option {
	return func(c *Config) error {
		if logger != nil {
			c.handler = logger.Handler()
		}
		return nil
	}
}

// WithLoader sets where the expression is read from.
func WithLoader(l loader.Loader) Option {
	return func(c *Config) error {
		if l == nil {
			return fmt.Errorf("loader cannot be nil")
		}
		c.loader = l
		return nil
	}
}

// WithDataProvider replaces the default provider, which serves static data
// and data added to the context.
func WithDataProvider(provider data.Provider) Option {
	return func(c *Config) error {
		if provider == nil {
			return fmt.Errorf("data provider cannot be nil")
		}
		c.dataProvider = provider
		return nil
	}
}

// WithStaticData adds data bound on every evaluation. Repeated use merges;
// later keys win. It is ignored when WithDataProvider is also used.
func WithStaticData(d map[string]any) Option {
	return func(c *Config) error {
		if c.staticData == nil {
			c.staticData = make(map[string]any, len(d))
		}
		maps.Copy(c.staticData, d)
		return nil
	}
}

// WithScope sets bindings, which may be expressions, visible to every
// evaluation. The scope is copied per call and never modified.
func WithScope(s *scope.Context) Option {
	return func(c *Config) error {
		if s == nil {
			return fmt.Errorf("scope cannot be nil")
		}
		c.scope = s
		return nil
	}
}

// WithKnownNames makes compilation fail when the expression uses any other
// identifier. Names bound in the scope and static data are always known.
func WithKnownNames(names ...string) Option {
	return func(c *Config) error {
		if c.knownNames == nil {
			c.knownNames = []string{}
		}
		c.knownNames = append(c.knownNames, names...)
		return nil
	}
}

// Validate checks that the configuration can build an evaluator.
func (c *Config) Validate() error {
	if c.loader == nil {
		return ErrNoLoader
	}
	return nil
}

func (c *Config) GetHandler() slog.Handler {
	return c.handler
}

func (c *Config) GetLoader() loader.Loader {
	return c.loader
}

func (c *Config) GetScope() *scope.Context {
	return c.scope
}

func (c *Config) GetStaticData() map[string]any {
	return c.staticData
}

// GetDataProvider returns the configured provider, or static data composed
// with a context provider when none was set.
func (c *Config) GetDataProvider() data.Provider {
	if c.dataProvider != nil {
		return c.dataProvider
	}
	return DefaultDataProvider(c.staticData)
}

// GetKnownNames returns nil when names are not being checked. Otherwise it
// returns the configured names plus every scope and static data name.
func (c *Config) GetKnownNames() []string {
	if c.knownNames == nil {
		return nil
	}
	names := append([]string{}, c.knownNames...)
	if c.scope != nil {
		names = append(names, c.scope.Names()...)
	}
	for name := range data.Flatten(c.staticData) {
		names = append(names, name)
	}
	return names
}
