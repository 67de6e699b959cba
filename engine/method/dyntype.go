package method

import "github.com/robbyt/go-veval/value"

var dynTypeMethods = []Method{
	isKind("is_bool", value.KindBool),
	isKind("is_int", value.KindInt),
	isKind("is_float", value.KindFloat),
	isKind("is_str", value.KindStr),
	isKind("is_range", value.KindRange),
	isKind("is_vec", value.KindList),
	New(FamilyDynType, "is_same", OneArg, func(recv, arg value.Value) (value.Value, error) {
		return value.Bool(value.SameKind(recv, arg)), nil
	}),
}

func isKind(name string, k value.Kind) Method {
	return New(FamilyDynType, name, NoArg, func(recv, _ value.Value) (value.Value, error) {
		return value.Bool(recv.Kind() == k), nil
	})
}
