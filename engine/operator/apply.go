package operator

import (
	"errors"
	"fmt"

	"github.com/robbyt/go-veval/value"
)

var (
	ErrTypeGate        = errors.New("operand types not allowed for operator")
	ErrNotExecutable   = errors.New("operator is not executable")
	ErrUnknownOperator = errors.New("unknown operator")
)

// Identity returns the synthetic right operand that turns a unary operator
// into a binary one: false for Not and 0 for Neg.
func (o Operator) Identity() (value.Value, bool) {
	switch o {
	case Not:
		return value.Bool(false), true
	case Neg:
		return value.Int(0), true
	default:
		return value.Value{}, false
	}
}

// Check runs the type gate for op against operands a and b. For unary
// operators b is the synthetic identity and is not inspected.
func Check(op Operator, a, b value.Value) error {
	ak, bk := a.Kind(), b.Kind()
	numeric := ak.IsNumeric() && bk.IsNumeric()

	var ok bool
	switch op {
	case ParenLeft, ParenRight:
		return fmt.Errorf("%w: %s", ErrNotExecutable, op)
	case Not:
		ok = ak == value.KindBool
	case Neg:
		ok = ak.IsNumeric()
	case Add:
		ok = numeric || (ak == value.KindStr && bk == value.KindStr)
	case Mul:
		ok = numeric ||
			(ak == value.KindInt && bk == value.KindStr) ||
			(ak == value.KindStr && bk == value.KindInt)
	case Sub, Div, Rem, Gt, Lt, Ge, Le:
		ok = numeric
	case Eq, Ne:
		ok = value.SameKind(a, b)
	case And, Or:
		ok = ak == value.KindBool && bk == value.KindBool
	default:
		return fmt.Errorf("%w: %s", ErrUnknownOperator, op)
	}

	if !ok {
		if op.IsUnary() {
			return fmt.Errorf("%w: %s%s", ErrTypeGate, op, ak)
		}
		return fmt.Errorf("%w: %s %s %s", ErrTypeGate, ak, op, bk)
	}
	return nil
}

// Apply gates and then executes op. The gate runs first so that a rejected
// combination never reaches the arithmetic.
func Apply(op Operator, a, b value.Value) (value.Value, error) {
	if err := Check(op, a, b); err != nil {
		return value.Value{}, err
	}

	switch op {
	case Not:
		return value.Not(a)
	case Neg:
		return value.Neg(a)
	case Mul:
		return value.Mul(a, b)
	case Div:
		return value.Div(a, b)
	case Rem:
		return value.Rem(a, b)
	case Add:
		return value.Add(a, b)
	case Sub:
		return value.Sub(a, b)
	case Eq:
		return value.Bool(value.Equal(a, b)), nil
	case Ne:
		return value.Bool(!value.Equal(a, b)), nil
	case And:
		return value.And(a, b)
	case Or:
		return value.Or(a, b)
	}

	c, err := value.Compare(a, b)
	if err != nil {
		return value.Value{}, err
	}
	switch op {
	case Gt:
		return value.Bool(c > 0), nil
	case Lt:
		return value.Bool(c < 0), nil
	case Ge:
		return value.Bool(c >= 0), nil
	default:
		return value.Bool(c <= 0), nil
	}
}
