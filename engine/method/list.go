package method

import (
	"fmt"

	"github.com/robbyt/go-veval/value"
)

var listMethods = []Method{
	listEnd("first", func(l []value.Value) value.Value { return l[0] }),
	listEnd("last", func(l []value.Value) value.Value { return l[len(l)-1] }),
	New(FamilyList, "get", OneArg, func(recv, arg value.Value) (value.Value, error) {
		if recv.Kind() != value.KindList {
			return value.Value{}, mismatch(recv)
		}
		if k := arg.Kind(); k != value.KindInt && k != value.KindRange {
			return value.Value{}, mismatchArg(recv, arg)
		}
		out, err := value.Index(recv, arg)
		if err != nil {
			return value.Value{}, fmt.Errorf("%w: %w", ErrDomain, err)
		}
		return out, nil
	}),
}

func listEnd(name string, pick func([]value.Value) value.Value) Method {
	return New(FamilyList, name, NoArg, func(recv, _ value.Value) (value.Value, error) {
		l, ok := recv.AsList()
		if !ok {
			return value.Value{}, mismatch(recv)
		}
		if len(l) == 0 {
			return value.Value{}, fmt.Errorf("%w: empty list", ErrDomain)
		}
		return pick(l), nil
	})
}
