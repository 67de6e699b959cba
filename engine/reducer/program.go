package reducer

import (
	"fmt"
	"strings"

	"github.com/robbyt/go-veval/engine/method"
	"github.com/robbyt/go-veval/engine/operator"
	"github.com/robbyt/go-veval/value"
)

// TokenKind tells which field of a Token is set.
type TokenKind uint8

const (
	TokenValue TokenKind = iota
	TokenOperator
	TokenMethod
)

// Token is one instruction of a postfix program.
type Token struct {
	Kind   TokenKind
	Value  value.Value
	Op     operator.Operator
	Method method.Method
}

// ValueToken returns a token that pushes v.
func ValueToken(v value.Value) Token { return Token{Kind: TokenValue, Value: v} }

// OpToken returns a token that applies op to the top two values.
func OpToken(op operator.Operator) Token { return Token{Kind: TokenOperator, Op: op} }

// MethodToken returns a token that calls m on the top one or two values.
func MethodToken(m method.Method) Token { return Token{Kind: TokenMethod, Method: m} }

func (t Token) String() string {
	switch t.Kind {
	case TokenValue:
		return t.Value.String()
	case TokenOperator:
		return t.Op.String()
	case TokenMethod:
		return "." + t.Method.Name
	default:
		return "?"
	}
}

// Program is a postfix instruction sequence.
type Program []Token

func (p Program) String() string {
	parts := make([]string, len(p))
	for i, t := range p {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

// Run executes the program over a value stack. Operators pop their right
// operand first; methods pop their argument before the receiver. Exactly one
// value must remain when the program ends.
func (p Program) Run() (value.Value, error) {
	stack := make([]value.Value, 0, len(p))
	pop := func(t Token) (value.Value, error) {
		if len(stack) == 0 {
			return value.Value{}, fmt.Errorf("%w: stack underflow at %s", ErrMalformedProgram, t)
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v, nil
	}

	for _, t := range p {
		switch t.Kind {
		case TokenValue:
			stack = append(stack, t.Value)

		case TokenOperator:
			b, err := pop(t)
			if err != nil {
				return value.Value{}, err
			}
			a, err := pop(t)
			if err != nil {
				return value.Value{}, err
			}
			out, err := operator.Apply(t.Op, a, b)
			if err != nil {
				return value.Value{}, err
			}
			stack = append(stack, out)

		case TokenMethod:
			var args []value.Value
			if t.Method.Arity == method.OneArg {
				arg, err := pop(t)
				if err != nil {
					return value.Value{}, err
				}
				args = append(args, arg)
			}
			recv, err := pop(t)
			if err != nil {
				return value.Value{}, err
			}
			out, err := t.Method.Call(recv, args...)
			if err != nil {
				return value.Value{}, err
			}
			stack = append(stack, out)

		default:
			return value.Value{}, fmt.Errorf("%w: unknown token kind %d", ErrMalformedProgram, t.Kind)
		}
	}

	if len(stack) != 1 {
		return value.Value{}, fmt.Errorf("%w: %d values left on the stack", ErrMalformedProgram, len(stack))
	}
	return stack[0], nil
}
