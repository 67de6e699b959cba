package method

import (
	"fmt"

	"github.com/robbyt/go-veval/value"
)

// Option methods treat None as the absent value and anything else as present.
var optionMethods = []Method{
	New(FamilyOption, "is_none", NoArg, func(recv, _ value.Value) (value.Value, error) {
		return value.Bool(recv.IsNone()), nil
	}),
	New(FamilyOption, "is_some", NoArg, func(recv, _ value.Value) (value.Value, error) {
		return value.Bool(!recv.IsNone()), nil
	}),
	New(FamilyOption, "unwrap", NoArg, func(recv, _ value.Value) (value.Value, error) {
		if recv.IsNone() {
			return value.Value{}, fmt.Errorf("%w: called on None", ErrDomain)
		}
		return recv, nil
	}),
	optionGated("unwrap_or", func(recv, arg value.Value) value.Value {
		if recv.IsNone() {
			return arg
		}
		return recv
	}),
	optionGated("and", func(recv, arg value.Value) value.Value {
		if recv.IsNone() {
			return value.None()
		}
		return arg
	}),
	optionGated("or", func(recv, arg value.Value) value.Value {
		if recv.IsNone() {
			return arg
		}
		return recv
	}),
	optionGated("xor", func(recv, arg value.Value) value.Value {
		switch {
		case recv.IsNone():
			return arg
		case arg.IsNone():
			return recv
		default:
			return value.None()
		}
	}),
}

// optionGated requires both operands to be of the same kind unless either
// one is None.
func optionGated(name string, f func(recv, arg value.Value) value.Value) Method {
	return New(FamilyOption, name, OneArg, func(recv, arg value.Value) (value.Value, error) {
		if !recv.IsNone() && !arg.IsNone() && !value.SameKind(recv, arg) {
			return value.Value{}, mismatchArg(recv, arg)
		}
		return f(recv, arg), nil
	})
}
