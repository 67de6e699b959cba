package method

import (
	"strings"

	"github.com/robbyt/go-veval/value"
)

// Slice methods apply to strings and lists; len, is_empty and contains also
// accept ranges. String lengths count bytes.
var sliceMethods = []Method{
	New(FamilySlice, "len", NoArg, func(recv, _ value.Value) (value.Value, error) {
		switch recv.Kind() {
		case value.KindStr:
			s, _ := recv.AsStr()
			return value.Int(int64(len(s))), nil
		case value.KindList:
			l, _ := recv.AsList()
			return value.Int(int64(len(l))), nil
		case value.KindRange:
			r, _ := recv.AsRange()
			return value.Int(r.Len()), nil
		default:
			return value.Value{}, mismatch(recv)
		}
	}),
	New(FamilySlice, "is_empty", NoArg, func(recv, _ value.Value) (value.Value, error) {
		switch recv.Kind() {
		case value.KindStr:
			s, _ := recv.AsStr()
			return value.Bool(s == ""), nil
		case value.KindList:
			l, _ := recv.AsList()
			return value.Bool(len(l) == 0), nil
		case value.KindRange:
			r, _ := recv.AsRange()
			return value.Bool(r.IsEmpty()), nil
		default:
			return value.Value{}, mismatch(recv)
		}
	}),
	New(FamilySlice, "contains", OneArg, contains),
	affix("starts_with", strings.HasPrefix, func(l, p []value.Value) bool {
		return len(p) <= len(l) && elemsEqual(l[:len(p)], p)
	}),
	affix("ends_with", strings.HasSuffix, func(l, p []value.Value) bool {
		return len(p) <= len(l) && elemsEqual(l[len(l)-len(p):], p)
	}),
}

// contains tests a substring, a list element or a range member. A list is
// never searched for another list.
func contains(recv, arg value.Value) (value.Value, error) {
	switch recv.Kind() {
	case value.KindStr:
		s, _ := recv.AsStr()
		sub, ok := arg.AsStr()
		if !ok {
			return value.Value{}, mismatchArg(recv, arg)
		}
		return value.Bool(strings.Contains(s, sub)), nil
	case value.KindList:
		if arg.Kind() == value.KindList {
			return value.Value{}, mismatchArg(recv, arg)
		}
		l, _ := recv.AsList()
		for _, e := range l {
			if value.Equal(e, arg) {
				return value.Bool(true), nil
			}
		}
		return value.Bool(false), nil
	case value.KindRange:
		r, _ := recv.AsRange()
		i, ok := arg.AsInt()
		if !ok {
			return value.Value{}, mismatchArg(recv, arg)
		}
		return value.Bool(r.Contains(i)), nil
	default:
		return value.Value{}, mismatch(recv)
	}
}

func affix(name string, str func(s, p string) bool, list func(l, p []value.Value) bool) Method {
	return New(FamilySlice, name, OneArg, func(recv, arg value.Value) (value.Value, error) {
		switch {
		case recv.Kind() == value.KindStr && arg.Kind() == value.KindStr:
			s, _ := recv.AsStr()
			p, _ := arg.AsStr()
			return value.Bool(str(s, p)), nil
		case recv.Kind() == value.KindList && arg.Kind() == value.KindList:
			l, _ := recv.AsList()
			p, _ := arg.AsList()
			return value.Bool(list(l, p)), nil
		default:
			return value.Value{}, mismatchArg(recv, arg)
		}
	})
}

func elemsEqual(a, b []value.Value) bool {
	for i := range a {
		if !value.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
