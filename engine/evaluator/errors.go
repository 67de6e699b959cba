package evaluator

import "errors"

var (
	ErrEvalFailed     = errors.New("evaluation failed")
	ErrNoExecUnit     = errors.New("executable unit is nil")
	ErrNoContent      = errors.New("content is nil")
	ErrWrongByteCode  = errors.New("byte code is not an expression tree")
	ErrNoDataProvider = errors.New("no data provider available")
)
