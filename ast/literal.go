package ast

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/robbyt/go-veval/value"
)

// ErrBadLiteral is returned for literal text that does not denote a value.
var ErrBadLiteral = errors.New("malformed literal")

// Literal converts a literal node into the value it denotes. Digit separators
// (1_000) are accepted in numbers. Char literals become one-character strings.
func Literal(n *BasicLit) (value.Value, error) {
	switch n.Kind {
	case IntLit:
		i, err := strconv.ParseInt(strings.ReplaceAll(n.Value, "_", ""), 10, 64)
		if err != nil {
			return value.Value{}, fmt.Errorf("%w: integer %s: %w", ErrBadLiteral, n.Value, err)
		}
		return value.Int(i), nil
	case FloatLit:
		f, err := strconv.ParseFloat(strings.ReplaceAll(n.Value, "_", ""), 64)
		if err != nil {
			return value.Value{}, fmt.Errorf("%w: float %s: %w", ErrBadLiteral, n.Value, err)
		}
		return value.Float(f), nil
	case BoolLit:
		switch n.Value {
		case "true":
			return value.Bool(true), nil
		case "false":
			return value.Bool(false), nil
		}
		return value.Value{}, fmt.Errorf("%w: bool %q", ErrBadLiteral, n.Value)
	case StrLit, CharLit:
		return value.Str(n.Value), nil
	case NoneLit:
		return value.None(), nil
	default:
		return value.Value{}, fmt.Errorf("%w: kind %s", ErrBadLiteral, n.Kind)
	}
}
