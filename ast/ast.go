// Package ast declares the expression tree consumed by the evaluator. Trees are
// produced by the parser package, or built by hand, and are never modified
// by the evaluator.
package ast

import (
	"fmt"

	"github.com/robbyt/go-veval/value"
)

// Pos is a position in the source text. The zero Pos marks a synthetic node.
type Pos struct {
	Offset int
	Line   int
	Column int
}

func (p Pos) String() string {
	if p.Line == 0 {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Expr is implemented by every expression node.
type Expr interface {
	Pos() Pos
	String() string
	exprNode()
}

// LitKind identifies the lexical form of a BasicLit.
type LitKind uint8

const (
	IntLit LitKind = iota
	FloatLit
	BoolLit
	StrLit
	CharLit
	NoneLit
)

func (k LitKind) String() string {
	switch k {
	case IntLit:
		return "int"
	case FloatLit:
		return "float"
	case BoolLit:
		return "bool"
	case StrLit:
		return "string"
	case CharLit:
		return "char"
	case NoneLit:
		return "none"
	default:
		return "unknown"
	}
}

// BinaryOp is an infix operator.
type BinaryOp uint8

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Rem
	And
	Or
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
)

var binaryOpText = [...]string{
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
	Rem: "%",
	And: "&&",
	Or:  "||",
	Eq:  "==",
	Ne:  "!=",
	Lt:  "<",
	Le:  "<=",
	Gt:  ">",
	Ge:  ">=",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryOpText) {
		return binaryOpText[op]
	}
	return fmt.Sprintf("BinaryOp(%d)", op)
}

// ParseBinaryOp returns the operator spelled s.
func ParseBinaryOp(s string) (BinaryOp, bool) {
	for i, text := range binaryOpText {
		if text == s {
			return BinaryOp(i), true
		}
	}
	return 0, false
}

// UnaryOp is a prefix operator.
type UnaryOp uint8

const (
	Not UnaryOp = iota
	Neg
)

func (op UnaryOp) String() string {
	switch op {
	case Not:
		return "!"
	case Neg:
		return "-"
	default:
		return fmt.Sprintf("UnaryOp(%d)", op)
	}
}

type (
	// BasicLit is a literal of basic kind. Value holds the literal text with
	// quotes removed and escapes already decoded.
	BasicLit struct {
		At    Pos
		Kind  LitKind
		Value string
	}

	// Ident is a name, possibly a path such as a::b, resolved against the context.
	Ident struct {
		At   Pos
		Name string
	}

	// Binary is Left Op Right.
	Binary struct {
		At    Pos
		Left  Expr
		Op    BinaryOp
		Right Expr
	}

	// Unary is Op X.
	Unary struct {
		At Pos
		Op UnaryOp
		X  Expr
	}

	// Paren is ( X ).
	Paren struct {
		At Pos
		X  Expr
	}

	// Array is the list literal [e1, e2, ...].
	Array struct {
		At    Pos
		Elems []Expr
	}

	// Range is From..To. A nil bound is an open end.
	Range struct {
		At   Pos
		From Expr
		To   Expr
	}

	// Index is X[Index].
	Index struct {
		At    Pos
		X     Expr
		Index Expr
	}

	// MethodCall is Recv.Name(Args...).
	MethodCall struct {
		At   Pos
		Recv Expr
		Name string
		Args []Expr
	}

	// Field is X.Name without a call.
	Field struct {
		At   Pos
		X    Expr
		Name string
	}

	// Reference is &X.
	Reference struct {
		At Pos
		X  Expr
	}

	// Const holds an already evaluated value, typically bound from host data.
	Const struct {
		At    Pos
		Value value.Value
	}
)

func (n *BasicLit) Pos() Pos   { return n.At }
func (n *Ident) Pos() Pos      { return n.At }
func (n *Binary) Pos() Pos     { return n.At }
func (n *Unary) Pos() Pos      { return n.At }
func (n *Paren) Pos() Pos      { return n.At }
func (n *Array) Pos() Pos      { return n.At }
func (n *Range) Pos() Pos      { return n.At }
func (n *Index) Pos() Pos      { return n.At }
func (n *MethodCall) Pos() Pos { return n.At }
func (n *Field) Pos() Pos      { return n.At }
func (n *Reference) Pos() Pos  { return n.At }
func (n *Const) Pos() Pos      { return n.At }

func (*BasicLit) exprNode()   {}
func (*Ident) exprNode()      {}
func (*Binary) exprNode()     {}
func (*Unary) exprNode()      {}
func (*Paren) exprNode()      {}
func (*Array) exprNode()      {}
func (*Range) exprNode()      {}
func (*Index) exprNode()      {}
func (*MethodCall) exprNode() {}
func (*Field) exprNode()      {}
func (*Reference) exprNode()  {}
func (*Const) exprNode()      {}

// Inspect traverses e depth-first, calling f for each node. If f returns
// false the children of that node are skipped.
func Inspect(e Expr, f func(Expr) bool) {
	if e == nil || !f(e) {
		return
	}
	switch n := e.(type) {
	case *Binary:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
	case *Unary:
		Inspect(n.X, f)
	case *Paren:
		Inspect(n.X, f)
	case *Array:
		for _, el := range n.Elems {
			Inspect(el, f)
		}
	case *Range:
		Inspect(n.From, f)
		Inspect(n.To, f)
	case *Index:
		Inspect(n.X, f)
		Inspect(n.Index, f)
	case *MethodCall:
		Inspect(n.Recv, f)
		for _, a := range n.Args {
			Inspect(a, f)
		}
	case *Field:
		Inspect(n.X, f)
	case *Reference:
		Inspect(n.X, f)
	}
}

// Idents returns the names referenced by e, in order of first appearance.
func Idents(e Expr) []string {
	var names []string
	seen := make(map[string]struct{})
	Inspect(e, func(n Expr) bool {
		if id, ok := n.(*Ident); ok {
			if _, dup := seen[id.Name]; !dup {
				seen[id.Name] = struct{}{}
				names = append(names, id.Name)
			}
		}
		return true
	})
	return names
}
