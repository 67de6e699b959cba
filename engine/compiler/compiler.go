// Package compiler turns expression source into executable content.
package compiler

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/robbyt/go-veval/ast"
	"github.com/robbyt/go-veval/internal/helpers"
	"github.com/robbyt/go-veval/parser"
	"github.com/robbyt/go-veval/platform/script"
)

// Compiler parses expressions and optionally checks their identifiers.
type Compiler struct {
	knownNames map[string]struct{}
	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a Compiler.
func New(opts ...FunctionalOption) (*Compiler, error) {
	cfg := &Options{}
	ApplyDefaults(cfg)

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("error applying compiler option: %w", err)
		}
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid compiler configuration: %w", err)
	}

	c := &Compiler{}
	if cfg.KnownNames != nil {
		c.knownNames = make(map[string]struct{}, len(cfg.KnownNames))
		for _, name := range cfg.KnownNames {
			c.knownNames[name] = struct{}{}
		}
	}

	if cfg.Logger != nil {
		c.logger = cfg.Logger
		c.logHandler = cfg.Logger.Handler()
	} else {
		c.logHandler, c.logger = helpers.SetupLogger(cfg.LogHandler, "veval", "Compiler")
	}
	return c, nil
}

func (c *Compiler) String() string {
	return "veval.Compiler"
}

// Compile reads and closes scriptReader, then parses its content.
func (c *Compiler) Compile(scriptReader io.ReadCloser) (script.ExecutableContent, error) {
	if scriptReader == nil {
		return nil, ErrContentNil
	}

	body, err := io.ReadAll(scriptReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	if err := scriptReader.Close(); err != nil {
		return nil, fmt.Errorf("failed to close reader: %w", err)
	}

	exe, err := c.compile(string(body))
	if err != nil {
		return nil, err
	}
	return exe, nil
}

func (c *Compiler) compile(source string) (*Executable, error) {
	logger := c.logger.WithGroup("compile")

	source = strings.TrimSpace(source)
	if source == "" {
		logger.Warn("Empty expression")
		return nil, ErrContentNil
	}

	logger.Debug("Starting validation", "source", source)
	expr, err := parser.Parse(source)
	if err != nil {
		logger.Warn("Parsing failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	if c.knownNames != nil {
		var unknown []string
		for _, name := range ast.Idents(expr) {
			if _, ok := c.knownNames[name]; !ok {
				unknown = append(unknown, name)
			}
		}
		if len(unknown) > 0 {
			slices.Sort(unknown)
			logger.Warn("Unknown names", "names", unknown)
			return nil, fmt.Errorf("%w: %s", ErrUnknownName, strings.Join(unknown, ", "))
		}
	}

	logger.Debug("Validation completed", "tree", expr.String())
	return newExecutable(source, expr), nil
}
