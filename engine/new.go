// Package engine builds evaluators from a loader, a data provider and an
// optional base scope.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/robbyt/go-veval/engine/compiler"
	"github.com/robbyt/go-veval/engine/evaluator"
	"github.com/robbyt/go-veval/platform/constants"
	"github.com/robbyt/go-veval/platform/data"
	"github.com/robbyt/go-veval/platform/script"
	"github.com/robbyt/go-veval/platform/script/loader"
	"github.com/robbyt/go-veval/scope"
)

// FromLoader creates an evaluator whose data comes only from the context,
// added with AddDataToContext.
func FromLoader(logHandler slog.Handler, ldr loader.Loader) (*evaluator.Evaluator, error) {
	return NewEvaluator(logHandler, ldr, data.NewContextProvider(constants.EvalData), nil)
}

// FromLoaderWithData creates an evaluator with static data shared by every
// call. Data added to the context overrides it per call.
func FromLoaderWithData(
	logHandler slog.Handler,
	ldr loader.Loader,
	staticData map[string]any,
) (*evaluator.Evaluator, error) {
	provider := data.NewCompositeProvider(
		data.NewStaticProvider(staticData),
		data.NewContextProvider(constants.EvalData),
	)
	return NewEvaluator(logHandler, ldr, provider, nil)
}

// NewCompiler creates an expression compiler.
func NewCompiler(opts ...compiler.FunctionalOption) (*compiler.Compiler, error) {
	return compiler.New(opts...)
}

// NewEvaluator compiles the loader's expression and returns an evaluator for
// it. base may be nil. Extra compiler options are applied after the log handler.
func NewEvaluator(
	logHandler slog.Handler,
	ldr loader.Loader,
	dataProvider data.Provider,
	base *scope.Context,
	compilerOpts ...compiler.FunctionalOption,
) (*evaluator.Evaluator, error) {
	if ldr == nil {
		return nil, fmt.Errorf("loader is nil")
	}
	if dataProvider == nil {
		return nil, fmt.Errorf("provider is nil")
	}

	var opts []compiler.FunctionalOption
	if logHandler != nil {
		opts = append(opts, compiler.WithLogHandler(logHandler))
	}
	c, err := NewCompiler(append(opts, compilerOpts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create compiler: %w", err)
	}

	execUnitID := ""
	if u := ldr.GetSourceURL(); u != nil {
		execUnitID = u.String()
	}

	execUnit, err := script.NewExecutableUnit(logHandler, execUnitID, ldr, c, dataProvider)
	if err != nil {
		return nil, err
	}
	return evaluator.New(logHandler, execUnit, base), nil
}
