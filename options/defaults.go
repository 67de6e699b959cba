package options

import (
	"log/slog"
	"os"

	"github.com/robbyt/go-veval/platform/constants"
	"github.com/robbyt/go-veval/platform/data"
)

// DefaultConfig returns a Config with the default handler.
func DefaultConfig() *Config {
	return &Config{handler: DefaultHandler()}
}

// DefaultHandler logs text to stdout.
func DefaultHandler() slog.Handler {
	return slog.NewTextHandler(os.Stdout, nil)
}

// DefaultDataProvider serves staticData and, over it, data added to the
// context under constants.EvalData.
func DefaultDataProvider(staticData map[string]any) data.Provider {
	return data.NewCompositeProvider(
		data.NewStaticProvider(staticData),
		data.NewContextProvider(constants.EvalData),
	)
}

// WithDefaults fills in a handler when none was set.
func WithDefaults() Option {
	return func(c *Config) error {
		if c.handler == nil {
			c.handler = DefaultHandler()
		}
		return nil
	}
}
