// Package script ties compiled expression content to its source and data.
package script

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robbyt/go-veval/internal/helpers"
	"github.com/robbyt/go-veval/platform/data"
	"github.com/robbyt/go-veval/platform/script/loader"
)

const checksumLength = 12

var (
	ErrNilCompiler = errors.New("compiler is nil")
	ErrNilLoader   = errors.New("loader is nil")
)

// ExecutableUnit is one compiled expression and the data provider it is
// evaluated with. It is created once and evaluated any number of times.
type ExecutableUnit struct {
	// ID identifies the unit in logs and responses. Unless given, it is a
	// checksum prefix of the source.
	ID string

	CreatedAt    time.Time
	ScriptLoader loader.Loader
	Compiler     Compiler
	Content      ExecutableContent

	// DataProvider supplies the bindings for each evaluation.
	DataProvider data.Provider

	logger *slog.Logger
}

// NewExecutableUnit reads the loader's source and compiles it.
func NewExecutableUnit(
	handler slog.Handler,
	versionID string,
	scriptLoader loader.Loader,
	compiler Compiler,
	dataProvider data.Provider,
) (*ExecutableUnit, error) {
	_, logger := helpers.SetupLogger(handler, "script", "ExecutableUnit")

	if compiler == nil {
		return nil, ErrNilCompiler
	}
	if scriptLoader == nil {
		return nil, ErrNilLoader
	}

	reader, err := scriptLoader.GetReader()
	if err != nil {
		return nil, fmt.Errorf("failed to get reader from loader: %w", err)
	}

	exe, err := compiler.Compile(reader)
	if err != nil {
		return nil, fmt.Errorf("compiler failed: %w", err)
	}

	if versionID == "" {
		versionID = helpers.ShortChecksum(exe.GetSource(), checksumLength)
	}
	logger.Debug("compiled executable unit", "ID", versionID)

	return &ExecutableUnit{
		ID:           versionID,
		CreatedAt:    time.Now(),
		ScriptLoader: scriptLoader,
		Compiler:     compiler,
		Content:      exe,
		DataProvider: dataProvider,
		logger:       logger.With("ID", versionID),
	}, nil
}

func (exe *ExecutableUnit) String() string {
	return fmt.Sprintf("ExecutableUnit{ID: %s, CreatedAt: %s, Compiler: %s, Loader: %s}",
		exe.ID, exe.CreatedAt, exe.Compiler, exe.ScriptLoader)
}

func (exe *ExecutableUnit) GetID() string {
	return exe.ID
}

func (exe *ExecutableUnit) GetContent() ExecutableContent {
	return exe.Content
}

func (exe *ExecutableUnit) GetCreatedAt() time.Time {
	return exe.CreatedAt
}

func (exe *ExecutableUnit) GetCompiler() Compiler {
	return exe.Compiler
}

func (exe *ExecutableUnit) GetLoader() loader.Loader {
	return exe.ScriptLoader
}

func (exe *ExecutableUnit) GetDataProvider() data.Provider {
	return exe.DataProvider
}
