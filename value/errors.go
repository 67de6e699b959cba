package value

import "errors"

var (
	ErrInvalidOperation = errors.New("invalid operation")
	ErrNotOrdered       = errors.New("values have no ordering")
	ErrDivisionByZero   = errors.New("integer division by zero")
	ErrOverflow         = errors.New("integer overflow")
	ErrTooLarge         = errors.New("result too large")
	ErrUnsupportedType  = errors.New("unsupported host type")
	ErrOutOfBounds      = errors.New("index out of bounds")
)
