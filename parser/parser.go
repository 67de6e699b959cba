// Package parser turns expression source text into an ast.Expr.
//
// The accepted surface is a small expression language: integer, float, bool,
// string, char and raw string literals, None, identifiers, list literals,
// ranges, the usual infix operators, ! - and & prefixes, indexing and method
// calls. Operator precedence, loosest first: .. || && comparisons + - * / %.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/robbyt/go-veval/ast"
)

// ErrSyntax wraps every parse failure.
var ErrSyntax = errors.New("syntax error")

var binaryPrecedence = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3, "!=": 3, "<": 3, "<=": 3, ">": 3, ">=": 3,
	"+": 4, "-": 4,
	"*": 5, "/": 5, "%": 5,
}

// Parse parses a single expression.
func Parse(src string) (ast.Expr, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	tree, err := exprParser.ParseString("", src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return convertRange(tree)
}

// MustParse is like Parse but panics on error. It is intended for tests and
// package-level initialization of known-good expressions.
func MustParse(src string) ast.Expr {
	e, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return e
}

func position(p lexer.Position) ast.Pos {
	return ast.Pos{Offset: p.Offset, Line: p.Line, Column: p.Column}
}

func syntaxErr(p lexer.Position, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrSyntax, position(p), fmt.Sprintf(format, args...))
}

func isEmpty(r *rangeExpr) bool {
	return r == nil || (r.From == nil && !r.Dots)
}

func convertRange(r *rangeExpr) (ast.Expr, error) {
	if isEmpty(r) {
		pos := lexer.Position{}
		if r != nil {
			pos = r.Pos
		}
		return nil, syntaxErr(pos, "expected expression")
	}

	var from ast.Expr
	if r.From != nil {
		e, err := convertBinary(r.From)
		if err != nil {
			return nil, err
		}
		from = e
	}
	if !r.Dots {
		return from, nil
	}

	rng := &ast.Range{At: position(r.Pos), From: from}
	if r.To != nil {
		to, err := convertBinary(r.To)
		if err != nil {
			return nil, err
		}
		rng.To = to
	}
	return rng, nil
}

// convertBinary folds the flat operator chain with precedence climbing.
// Operators of equal precedence associate to the left.
func convertBinary(b *binaryExpr) (ast.Expr, error) {
	head, err := convertUnary(b.Head)
	if err != nil {
		return nil, err
	}

	operands := []ast.Expr{head}
	var pending []*opTerm

	reduce := func() error {
		term := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		op, ok := ast.ParseBinaryOp(term.Op)
		if !ok {
			return syntaxErr(term.Pos, "unknown operator %q", term.Op)
		}
		n := len(operands)
		operands = append(operands[:n-2], &ast.Binary{
			At:    position(term.Pos),
			Left:  operands[n-2],
			Op:    op,
			Right: operands[n-1],
		})
		return nil
	}

	for _, term := range b.Tail {
		for len(pending) > 0 && binaryPrecedence[pending[len(pending)-1].Op] >= binaryPrecedence[term.Op] {
			if err := reduce(); err != nil {
				return nil, err
			}
		}
		rhs, err := convertUnary(term.Right)
		if err != nil {
			return nil, err
		}
		pending = append(pending, term)
		operands = append(operands, rhs)
	}
	for len(pending) > 0 {
		if err := reduce(); err != nil {
			return nil, err
		}
	}
	return operands[0], nil
}

func convertUnary(u *unaryExpr) (ast.Expr, error) {
	if u == nil {
		return nil, syntaxErr(lexer.Position{}, "expected operand")
	}
	if u.Postfix != nil {
		return convertPostfix(u.Postfix)
	}

	x, err := convertUnary(u.Operand)
	if err != nil {
		return nil, err
	}
	at := position(u.Pos)
	switch u.Op {
	case "!":
		return &ast.Unary{At: at, Op: ast.Not, X: x}, nil
	case "-":
		return &ast.Unary{At: at, Op: ast.Neg, X: x}, nil
	case "&":
		return &ast.Reference{At: at, X: x}, nil
	default:
		return nil, syntaxErr(u.Pos, "unknown prefix operator %q", u.Op)
	}
}

func convertPostfix(p *postfixExpr) (ast.Expr, error) {
	x, err := convertPrimary(p.Primary)
	if err != nil {
		return nil, err
	}

	for _, op := range p.Ops {
		at := position(op.Pos)
		switch {
		case op.Index != nil:
			idx, err := convertRange(op.Index)
			if err != nil {
				return nil, err
			}
			x = &ast.Index{At: at, X: x, Index: idx}
		case op.Call != nil:
			args, err := convertList(op.Call.Args)
			if err != nil {
				return nil, err
			}
			x = &ast.MethodCall{At: at, Recv: x, Name: op.Name, Args: args}
		case op.Name != "":
			x = &ast.Field{At: at, X: x, Name: op.Name}
		default:
			return nil, syntaxErr(op.Pos, "empty index")
		}
	}
	return x, nil
}

func convertPrimary(p *primary) (ast.Expr, error) {
	if p == nil {
		return nil, syntaxErr(lexer.Position{}, "expected operand")
	}
	at := position(p.Pos)

	var l *ast.BasicLit
	switch {
	case p.Float != nil:
		l = &ast.BasicLit{At: at, Kind: ast.FloatLit, Value: *p.Float}
	case p.Int != nil:
		l = &ast.BasicLit{At: at, Kind: ast.IntLit, Value: *p.Int}
	case p.Bool != nil:
		l = &ast.BasicLit{At: at, Kind: ast.BoolLit, Value: *p.Bool}
	case p.None:
		l = &ast.BasicLit{At: at, Kind: ast.NoneLit}
	case p.Str != nil:
		l = &ast.BasicLit{At: at, Kind: ast.StrLit, Value: *p.Str}
	case p.Char != nil:
		l = &ast.BasicLit{At: at, Kind: ast.CharLit, Value: *p.Char}
	case p.Raw != nil:
		raw := strings.TrimSuffix(strings.TrimPrefix(*p.Raw, `r"`), `"`)
		l = &ast.BasicLit{At: at, Kind: ast.StrLit, Value: raw}
	case len(p.Path) > 0:
		return &ast.Ident{At: at, Name: strings.Join(p.Path, "::")}, nil
	case p.Array != nil:
		elems, err := convertList(p.Array.Elems)
		if err != nil {
			return nil, err
		}
		return &ast.Array{At: at, Elems: elems}, nil
	case p.Paren != nil:
		x, err := convertRange(p.Paren)
		if err != nil {
			return nil, err
		}
		return &ast.Paren{At: at, X: x}, nil
	default:
		return nil, syntaxErr(p.Pos, "expected operand")
	}

	// Reject literals that do not fit their type here rather than at evaluation.
	if _, err := ast.Literal(l); err != nil {
		return nil, syntaxErr(p.Pos, "%v", err)
	}
	return l, nil
}

// convertList converts comma separated elements. An element that matched no
// tokens is only allowed last, which is how () [] and a trailing comma parse.
func convertList(list []*rangeExpr) ([]ast.Expr, error) {
	if n := len(list); n > 0 && isEmpty(list[n-1]) {
		list = list[:n-1]
	}
	out := make([]ast.Expr, 0, len(list))
	for _, r := range list {
		e, err := convertRange(r)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
