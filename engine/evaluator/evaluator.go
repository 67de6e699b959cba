// Package evaluator runs compiled expressions against per-call data.
package evaluator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robbyt/go-veval/ast"
	"github.com/robbyt/go-veval/internal/helpers"
	"github.com/robbyt/go-veval/platform"
	"github.com/robbyt/go-veval/platform/data"
	"github.com/robbyt/go-veval/platform/script"
	"github.com/robbyt/go-veval/scope"
	"github.com/robbyt/go-veval/value"
)

// Evaluator evaluates one executable unit. Each call gets its own copy of the
// base scope with the provider's data bound into it, so calls may run
// concurrently.
type Evaluator struct {
	execUnit *script.ExecutableUnit

	// base holds bindings shared by every call. Provider data with the same
	// name replaces them for that call only.
	base *scope.Context

	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates an Evaluator. A nil base starts every call from an empty scope.
func New(handler slog.Handler, execUnit *script.ExecutableUnit, base *scope.Context) *Evaluator {
	handler, logger := helpers.SetupLogger(handler, "veval", "Evaluator")
	if base == nil {
		base = scope.New()
	}
	return &Evaluator{
		execUnit:   execUnit,
		base:       base,
		logHandler: handler,
		logger:     logger,
	}
}

func (be *Evaluator) String() string {
	return "veval.Evaluator"
}

// GetExecutableUnit returns the unit this evaluator runs.
func (be *Evaluator) GetExecutableUnit() *script.ExecutableUnit {
	return be.execUnit
}

func (be *Evaluator) loadInputData(ctx context.Context) (map[string]any, error) {
	logger := be.logger.WithGroup("loadInputData")

	if be.execUnit.GetDataProvider() == nil {
		logger.DebugContext(ctx, "no data provider available, using empty data")
		return make(map[string]any), nil
	}

	inputData, err := be.execUnit.GetDataProvider().GetData(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to get input data from provider", "error", err)
		return nil, err
	}
	logger.DebugContext(ctx, "input data loaded from provider", "keys", len(inputData))
	return inputData, nil
}

// prepareScope binds the flattened input data over a copy of the base scope.
// Keys that are not valid names, and values with no Value counterpart such
// as maps of other key types, are skipped with a warning.
func (be *Evaluator) prepareScope(ctx context.Context, logger *slog.Logger, input map[string]any) (*scope.Context, error) {
	sc := be.base.Clone()
	for name, v := range data.Flatten(input) {
		err := sc.BindAny(name, v)
		switch {
		case err == nil:
		case errors.Is(err, scope.ErrInvalidName), errors.Is(err, value.ErrUnsupportedType):
			logger.WarnContext(ctx, "skipping input", "name", name, "error", err)
		default:
			return nil, err
		}
	}
	return sc, nil
}

// Eval evaluates the unit's expression with the data found in ctx.
func (be *Evaluator) Eval(ctx context.Context) (platform.EvaluatorResponse, error) {
	logger := be.logger.WithGroup("Eval")

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEvalFailed, err)
	}
	if be.execUnit == nil {
		return nil, ErrNoExecUnit
	}
	if be.execUnit.GetContent() == nil {
		return nil, ErrNoContent
	}

	exeID := be.execUnit.GetID()
	logger = logger.With("exeID", exeID)

	expr, ok := be.execUnit.GetContent().GetByteCode().(ast.Expr)
	if !ok || expr == nil {
		return nil, fmt.Errorf("%w: ID %s", ErrWrongByteCode, exeID)
	}

	input, err := be.loadInputData(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get input data: %w", ErrEvalFailed, err)
	}

	sc, err := be.prepareScope(ctx, logger, input)
	if err != nil {
		return nil, fmt.Errorf("%w: binding input data: %w", ErrEvalFailed, err)
	}

	start := time.Now()
	v, err := sc.TryEvalExpr(expr)
	execTime := time.Since(start)
	if err != nil {
		logger.DebugContext(ctx, "evaluation failed", "error", err, "execTime", execTime)
		return nil, fmt.Errorf("%w: %w", ErrEvalFailed, err)
	}

	result := newResponse(be.logHandler, v, execTime, exeID)
	logger.DebugContext(ctx, "eval complete", "result", result.Inspect(), "execTime", execTime)
	return result, nil
}

// AddDataToContext stores per-call data through the unit's data provider.
func (be *Evaluator) AddDataToContext(
	ctx context.Context,
	d ...map[string]any,
) (context.Context, error) {
	logger := be.logger.WithGroup("AddDataToContext")

	if be.execUnit == nil || be.execUnit.GetDataProvider() == nil {
		return ctx, ErrNoDataProvider
	}
	return data.AddDataToContextHelper(ctx, logger, be.execUnit.GetDataProvider(), d...)
}
