package value

import (
	"cmp"
	"fmt"
	"math"
)

// Equal reports structural equality. Integers and floats compare by numeric
// value; lists compare element-wise; None equals None. Values of different
// kinds are never equal.
func Equal(a, b Value) bool {
	switch {
	case a.kind == KindInt && b.kind == KindInt:
		return a.i == b.i
	case a.kind.IsNumeric() && b.kind.IsNumeric():
		x, _ := a.AsNumber()
		y, _ := b.AsNumber()
		return x == y
	case a.kind != b.kind:
		return false
	}

	switch a.kind {
	case KindNone:
		return true
	case KindBool:
		return a.b == b.b
	case KindStr:
		return a.s == b.s
	case KindRange:
		return a.r == b.r
	case KindList:
		if len(a.l) != len(b.l) {
			return false
		}
		for i := range a.l {
			if !Equal(a.l[i], b.l[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Equal reports whether v and o are structurally equal. See the package-level Equal.
func (v Value) Equal(o Value) bool {
	return Equal(v, o)
}

// Compare orders two numbers, returning -1, 0 or +1. Only the numeric tower is
// ordered; any other pair, or a NaN operand, returns ErrNotOrdered.
func Compare(a, b Value) (int, error) {
	if a.kind == KindInt && b.kind == KindInt {
		return cmp.Compare(a.i, b.i), nil
	}
	x, okA := a.AsNumber()
	y, okB := b.AsNumber()
	if !okA || !okB {
		return 0, fmt.Errorf("%w: %s and %s", ErrNotOrdered, a.kind, b.kind)
	}
	if math.IsNaN(x) || math.IsNaN(y) {
		return 0, fmt.Errorf("%w: NaN", ErrNotOrdered)
	}
	return cmp.Compare(x, y), nil
}
