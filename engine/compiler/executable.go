package compiler

import "github.com/robbyt/go-veval/ast"

// Executable is a parsed expression. Its byte code is the ast.Expr.
type Executable struct {
	source string
	expr   ast.Expr
}

func newExecutable(source string, expr ast.Expr) *Executable {
	if source == "" || expr == nil {
		return nil
	}
	return &Executable{source: source, expr: expr}
}

func (e *Executable) GetSource() string {
	return e.source
}

func (e *Executable) GetByteCode() any {
	return e.expr
}

// GetExpr returns the parsed tree.
func (e *Executable) GetExpr() ast.Expr {
	return e.expr
}
