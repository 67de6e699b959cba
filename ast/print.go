package ast

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

func (n *BasicLit) String() string {
	switch n.Kind {
	case StrLit:
		return strconv.Quote(n.Value)
	case CharLit:
		if r, size := utf8.DecodeRuneInString(n.Value); size == len(n.Value) && size > 0 {
			return strconv.QuoteRune(r)
		}
		return "'" + n.Value + "'"
	case NoneLit:
		return "None"
	default:
		return n.Value
	}
}

func (n *Ident) String() string { return n.Name }

func (n *Binary) String() string {
	return str(n.Left) + " " + n.Op.String() + " " + str(n.Right)
}

func (n *Unary) String() string { return n.Op.String() + str(n.X) }

func (n *Paren) String() string { return "(" + str(n.X) + ")" }

func (n *Array) String() string { return "[" + join(n.Elems) + "]" }

func (n *Range) String() string {
	var b strings.Builder
	if n.From != nil {
		b.WriteString(n.From.String())
	}
	b.WriteString("..")
	if n.To != nil {
		b.WriteString(n.To.String())
	}
	return b.String()
}

func (n *Index) String() string { return str(n.X) + "[" + str(n.Index) + "]" }

func (n *MethodCall) String() string {
	return str(n.Recv) + "." + n.Name + "(" + join(n.Args) + ")"
}

func (n *Field) String() string { return str(n.X) + "." + n.Name }

func (n *Reference) String() string { return "&" + str(n.X) }

func (n *Const) String() string { return n.Value.String() }

func str(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	return e.String()
}

func join(list []Expr) string {
	parts := make([]string, len(list))
	for i, e := range list {
		parts[i] = str(e)
	}
	return strings.Join(parts, ", ")
}
