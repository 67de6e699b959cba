package value

import (
	"fmt"
	"math"
	"strings"
)

// maxRepeatLen caps the byte length of a string produced by repetition.
const maxRepeatLen = 16 << 20

func invalid(op string, a, b Value) error {
	return fmt.Errorf("%w: %s %s %s", ErrInvalidOperation, a.kind, op, b.kind)
}

func invalidUnary(op string, a Value) error {
	return fmt.Errorf("%w: %s%s", ErrInvalidOperation, op, a.kind)
}

// numericPair widens a mixed Int/Float pair to floats. isInt is true when both
// operands are integers and the float results must be ignored.
func numericPair(a, b Value) (x, y float64, isInt, ok bool) {
	if a.kind == KindInt && b.kind == KindInt {
		return 0, 0, true, true
	}
	x, okA := a.AsNumber()
	y, okB := b.AsNumber()
	return x, y, false, okA && okB
}

// Add returns a + b. Numbers add (mixed operands produce a Float) and strings concatenate.
func Add(a, b Value) (Value, error) {
	if a.kind == KindStr && b.kind == KindStr {
		return Str(a.s + b.s), nil
	}
	x, y, isInt, ok := numericPair(a, b)
	switch {
	case !ok:
		return Value{}, invalid("+", a, b)
	case isInt:
		c := a.i + b.i
		if (a.i > 0 && b.i > 0 && c < 0) || (a.i < 0 && b.i < 0 && c >= 0) {
			return Value{}, fmt.Errorf("%w: %d + %d", ErrOverflow, a.i, b.i)
		}
		return Int(c), nil
	default:
		return Float(x + y), nil
	}
}

// Sub returns a - b for numbers.
func Sub(a, b Value) (Value, error) {
	x, y, isInt, ok := numericPair(a, b)
	switch {
	case !ok:
		return Value{}, invalid("-", a, b)
	case isInt:
		c := a.i - b.i
		if (a.i >= 0 && b.i < 0 && c < 0) || (a.i < 0 && b.i > 0 && c >= 0) {
			return Value{}, fmt.Errorf("%w: %d - %d", ErrOverflow, a.i, b.i)
		}
		return Int(c), nil
	default:
		return Float(x - y), nil
	}
}

// Mul returns a * b for numbers. An Int times a String (either order) repeats
// the string; a count below one yields the empty string.
func Mul(a, b Value) (Value, error) {
	switch {
	case a.kind == KindInt && b.kind == KindStr:
		return repeat(b.s, a.i)
	case a.kind == KindStr && b.kind == KindInt:
		return repeat(a.s, b.i)
	}

	x, y, isInt, ok := numericPair(a, b)
	switch {
	case !ok:
		return Value{}, invalid("*", a, b)
	case isInt:
		return mulInt(a.i, b.i)
	default:
		return Float(x * y), nil
	}
}

func mulInt(a, b int64) (Value, error) {
	if a == 0 || b == 0 {
		return Int(0), nil
	}
	c := a * b
	if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return Value{}, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	return Int(c), nil
}

func repeat(s string, n int64) (Value, error) {
	if n <= 0 || s == "" {
		return Str(""), nil
	}
	if n > int64(maxRepeatLen/len(s)) {
		return Value{}, fmt.Errorf("%w: %d repetitions of %d bytes", ErrTooLarge, n, len(s))
	}
	return Str(strings.Repeat(s, int(n))), nil
}

// Div returns a / b for numbers. Integer division truncates toward zero.
func Div(a, b Value) (Value, error) {
	x, y, isInt, ok := numericPair(a, b)
	switch {
	case !ok:
		return Value{}, invalid("/", a, b)
	case isInt:
		if b.i == 0 {
			return Value{}, ErrDivisionByZero
		}
		if a.i == math.MinInt64 && b.i == -1 {
			return Value{}, fmt.Errorf("%w: %d / %d", ErrOverflow, a.i, b.i)
		}
		return Int(a.i / b.i), nil
	default:
		return Float(x / y), nil
	}
}

// Rem returns the remainder of a / b, with the sign of the dividend.
func Rem(a, b Value) (Value, error) {
	x, y, isInt, ok := numericPair(a, b)
	switch {
	case !ok:
		return Value{}, invalid("%", a, b)
	case isInt:
		if b.i == 0 {
			return Value{}, ErrDivisionByZero
		}
		if a.i == math.MinInt64 && b.i == -1 {
			return Value{}, fmt.Errorf("%w: %d %% %d", ErrOverflow, a.i, b.i)
		}
		return Int(a.i % b.i), nil
	default:
		return Float(math.Mod(x, y)), nil
	}
}

// Neg returns -a for numbers.
func Neg(a Value) (Value, error) {
	switch a.kind {
	case KindInt:
		if a.i == math.MinInt64 {
			return Value{}, fmt.Errorf("%w: -(%d)", ErrOverflow, a.i)
		}
		return Int(-a.i), nil
	case KindFloat:
		return Float(-a.f), nil
	default:
		return Value{}, invalidUnary("-", a)
	}
}

// Not returns the logical negation of a boolean.
func Not(a Value) (Value, error) {
	if a.kind != KindBool {
		return Value{}, invalidUnary("!", a)
	}
	return Bool(!a.b), nil
}

// And returns a && b for booleans. Both operands are already evaluated.
func And(a, b Value) (Value, error) {
	if a.kind != KindBool || b.kind != KindBool {
		return Value{}, invalid("&&", a, b)
	}
	return Bool(a.b && b.b), nil
}

// Or returns a || b for booleans.
func Or(a, b Value) (Value, error) {
	if a.kind != KindBool || b.kind != KindBool {
		return Value{}, invalid("||", a, b)
	}
	return Bool(a.b || b.b), nil
}
