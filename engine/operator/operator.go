// Package operator defines the operators of the stack machine, their
// preference ranks and the type gate run before each application.
package operator

import (
	"fmt"

	"github.com/robbyt/go-veval/ast"
)

// Rank is a preference level. Higher ranks bind tighter.
type Rank uint8

const (
	RankLogical Rank = iota + 1
	RankComparison
	RankAdditive
	RankMultiplicative
	RankUnary
	RankParen
)

// Operator is a binary or unary operator, or one of the two parenthesis
// sentinels that frame sub-expressions during reordering.
type Operator uint8

const (
	ParenLeft Operator = iota
	ParenRight
	Not
	Neg
	Mul
	Div
	Rem
	Add
	Sub
	Eq
	Ne
	Gt
	Lt
	Ge
	Le
	And
	Or
)

var table = [...]struct {
	text string
	rank Rank
}{
	ParenLeft:  {"(", RankParen},
	ParenRight: {")", RankParen},
	Not:        {"!", RankUnary},
	Neg:        {"neg", RankUnary},
	Mul:        {"*", RankMultiplicative},
	Div:        {"/", RankMultiplicative},
	Rem:        {"%", RankMultiplicative},
	Add:        {"+", RankAdditive},
	Sub:        {"-", RankAdditive},
	Eq:         {"==", RankComparison},
	Ne:         {"!=", RankComparison},
	Gt:         {">", RankComparison},
	Lt:         {"<", RankComparison},
	Ge:         {">=", RankComparison},
	Le:         {"<=", RankComparison},
	And:        {"&&", RankLogical},
	Or:         {"||", RankLogical},
}

func (o Operator) valid() bool { return int(o) < len(table) }

// Rank returns the preference rank of o.
func (o Operator) Rank() Rank {
	if !o.valid() {
		return 0
	}
	return table[o].rank
}

// GtPreference reports whether o binds strictly tighter than other.
func (o Operator) GtPreference(other Operator) bool { return o.Rank() > other.Rank() }

// EqPreference reports whether o and other share a rank.
func (o Operator) EqPreference(other Operator) bool { return o.Rank() == other.Rank() }

// IsParen reports whether o is a parenthesis sentinel.
func (o Operator) IsParen() bool { return o == ParenLeft || o == ParenRight }

// IsUnary reports whether o applies to a single operand.
func (o Operator) IsUnary() bool { return o == Not || o == Neg }

func (o Operator) String() string {
	if !o.valid() {
		return fmt.Sprintf("Operator(%d)", o)
	}
	return table[o].text
}

var fromBinary = map[ast.BinaryOp]Operator{
	ast.Add: Add,
	ast.Sub: Sub,
	ast.Mul: Mul,
	ast.Div: Div,
	ast.Rem: Rem,
	ast.And: And,
	ast.Or:  Or,
	ast.Eq:  Eq,
	ast.Ne:  Ne,
	ast.Lt:  Lt,
	ast.Le:  Le,
	ast.Gt:  Gt,
	ast.Ge:  Ge,
}

// FromBinary maps a tree operator to its machine operator.
func FromBinary(op ast.BinaryOp) (Operator, error) {
	o, ok := fromBinary[op]
	if !ok {
		return 0, fmt.Errorf("%w: binary %s", ErrUnknownOperator, op)
	}
	return o, nil
}

// FromUnary maps a prefix tree operator to its machine operator.
func FromUnary(op ast.UnaryOp) (Operator, error) {
	switch op {
	case ast.Not:
		return Not, nil
	case ast.Neg:
		return Neg, nil
	default:
		return 0, fmt.Errorf("%w: unary %s", ErrUnknownOperator, op)
	}
}
