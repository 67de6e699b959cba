// Package value implements the dynamic runtime value of the evaluator: a closed
// tagged union over booleans, 64-bit integers and floats, strings, half-open
// integer ranges, heterogeneous lists and the distinguished absent value None.
package value

// Kind identifies which case of the union a Value holds.
type Kind uint8

const (
	// KindNone is the absent value. It is the zero Kind so that the zero Value is None.
	KindNone Kind = iota
	KindBool
	KindInt
	KindFloat
	KindStr
	KindRange
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindStr:
		return "str"
	case KindRange:
		return "range"
	case KindList:
		return "vec"
	default:
		return "unknown"
	}
}

// IsNumeric reports whether the kind belongs to the numeric tower (Int, Float).
func (k Kind) IsNumeric() bool {
	return k == KindInt || k == KindFloat
}

// Range is the half-open integer interval [Start, End). Reversed or empty
// intervals are legal and contain nothing.
type Range struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// Len returns the number of integers in the interval, zero when Start >= End.
func (r Range) Len() int64 {
	if r.Start >= r.End {
		return 0
	}
	return r.End - r.Start
}

// IsEmpty reports whether the interval contains no integer.
func (r Range) IsEmpty() bool {
	return r.Start >= r.End
}

// Contains reports whether Start <= i < End.
func (r Range) Contains(i int64) bool {
	return r.Start <= i && i < r.End
}

// Value is a dynamically typed runtime value. The zero Value is None.
//
// Lists own their elements; a Value never references itself, so lists form trees.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	r    Range
	l    []Value
}

// None returns the absent value.
func None() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Str returns a string value.
func Str(s string) Value { return Value{kind: KindStr, s: s} }

// NewRange returns the range value start..end.
func NewRange(start, end int64) Value {
	return Value{kind: KindRange, r: Range{Start: start, End: end}}
}

// List returns a list value holding the given elements. Elements may be of
// mixed kinds.
func List(elems ...Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{kind: KindList, l: elems}
}

// Kind returns the case held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNone reports whether v is the absent value.
func (v Value) IsNone() bool { return v.kind == KindNone }

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsInt returns the integer held by v.
func (v Value) AsInt() (int64, bool) {
	return v.i, v.kind == KindInt
}

// AsFloat returns the float held by v. Integers are not widened; use AsNumber.
func (v Value) AsFloat() (float64, bool) {
	return v.f, v.kind == KindFloat
}

// AsNumber returns v as a float64 when it is an Int or a Float.
func (v Value) AsNumber() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// AsStr returns the string held by v.
func (v Value) AsStr() (string, bool) {
	return v.s, v.kind == KindStr
}

// AsRange returns the range held by v.
func (v Value) AsRange() (Range, bool) {
	return v.r, v.kind == KindRange
}

// AsList returns the elements held by v. The returned slice must not be modified.
func (v Value) AsList() ([]Value, bool) {
	return v.l, v.kind == KindList
}

// SameKind is the structural compatibility test used to gate operators and
// methods. Int and Float are mutually compatible; None is only compatible with None.
func SameKind(a, b Value) bool {
	if a.kind.IsNumeric() && b.kind.IsNumeric() {
		return true
	}
	return a.kind == b.kind
}
