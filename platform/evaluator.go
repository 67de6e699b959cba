package platform

import (
	"context"

	"github.com/robbyt/go-veval/platform/data"
)

// EvalOnly evaluates an expression that was compiled when the evaluator was
// built. Per-call data is read from ctx through the evaluator's data provider;
// see data.Setter.
type EvalOnly interface {
	Eval(ctx context.Context) (EvaluatorResponse, error)
}

// Evaluator is an EvalOnly that can also prepare the context it evaluates with.
type Evaluator interface {
	EvalOnly
	data.Setter
}

// EvaluatorResponse is the result of one evaluation.
type EvaluatorResponse interface {
	// Type is the kind of the result value.
	Type() data.Types

	// Inspect returns the display form of the value.
	Inspect() string

	// Interface returns the value as native Go data.
	Interface() any

	// GetScriptExeID returns the ID of the executable unit that was run.
	GetScriptExeID() string

	// GetExecTime returns how long the evaluation took.
	GetExecTime() string
}
