package reducer

import "errors"

var (
	ErrUnresolved       = errors.New("unresolved identifier")
	ErrCyclicBinding    = errors.New("binding refers to itself")
	ErrUnsupportedNode  = errors.New("unsupported expression")
	ErrRangeBound       = errors.New("range bounds must be integers")
	ErrUnbalanced       = errors.New("unbalanced parentheses")
	ErrMalformedProgram = errors.New("malformed program")
)
