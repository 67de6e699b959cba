package method

import (
	"errors"
	"fmt"

	"github.com/robbyt/go-veval/value"
)

var (
	ErrUnknownMethod = errors.New("unknown method")
	ErrArity         = errors.New("wrong number of arguments")
	ErrTypeMismatch  = errors.New("method not defined for operand types")
	ErrDomain        = errors.New("method failed")
)

func mismatch(recv value.Value) error {
	return fmt.Errorf("%w: receiver %s", ErrTypeMismatch, recv.Kind())
}

func mismatchArg(recv, arg value.Value) error {
	return fmt.Errorf("%w: receiver %s, argument %s", ErrTypeMismatch, recv.Kind(), arg.Kind())
}
