// Package scope holds the named bindings an expression is evaluated against.
//
// Each name is bound to an expression tree, not a value, so a binding may be
// any expression and may refer to other bindings. A Context is not safe for
// concurrent mutation; concurrent evaluation against a Context that is not
// being modified is safe.
package scope

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/robbyt/go-veval/ast"
	"github.com/robbyt/go-veval/engine/method"
	"github.com/robbyt/go-veval/engine/reducer"
	"github.com/robbyt/go-veval/parser"
	"github.com/robbyt/go-veval/value"
)

// ErrInvalidName is returned when binding a name that is not an identifier.
var ErrInvalidName = errors.New("invalid binding name")

// Source is expression text. BindAny parses a Source rather than binding it
// as a string value.
type Source string

// Option configures a Context.
type Option func(*Context)

// WithMethods evaluates with the given method registry instead of the built-ins.
func WithMethods(r *method.Registry) Option {
	return func(c *Context) {
		c.methods = r
	}
}

// Context maps names to expression trees.
type Context struct {
	bindings map[string]ast.Expr
	methods  *method.Registry
}

// New returns an empty Context.
func New(opts ...Option) *Context {
	c := &Context{bindings: make(map[string]ast.Expr)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Insert parses src and binds the result to name. A syntax error leaves the
// Context unchanged.
func (c *Context) Insert(name, src string) error {
	if err := checkName(name); err != nil {
		return err
	}
	e, err := parser.Parse(src)
	if err != nil {
		return fmt.Errorf("binding %s: %w", name, err)
	}
	c.bindings[name] = e
	return nil
}

// Remove deletes the binding for name, if any.
func (c *Context) Remove(name string) {
	delete(c.bindings, name)
}

// Bind binds an already parsed tree to name.
func (c *Context) Bind(name string, e ast.Expr) error {
	if err := checkName(name); err != nil {
		return err
	}
	if e == nil {
		return fmt.Errorf("binding %s: nil expression", name)
	}
	c.bindings[name] = e
	return nil
}

// BindValue binds a constant to name.
func (c *Context) BindValue(name string, v value.Value) error {
	return c.Bind(name, &ast.Const{Value: v})
}

// BindAny binds host data to name. A Source is parsed, an ast.Expr or
// value.Value is bound as is, and anything else is converted with value.FromGo.
func (c *Context) BindAny(name string, x any) error {
	switch v := x.(type) {
	case Source:
		return c.Insert(name, string(v))
	case ast.Expr:
		return c.Bind(name, v)
	case value.Value:
		return c.BindValue(name, v)
	}
	v, err := value.FromGo(x)
	if err != nil {
		return fmt.Errorf("binding %s: %w", name, err)
	}
	return c.BindValue(name, v)
}

// Lookup returns the tree bound to name.
func (c *Context) Lookup(name string) (ast.Expr, bool) {
	e, ok := c.bindings[name]
	return e, ok
}

// Names returns the bound names in sorted order.
func (c *Context) Names() []string {
	names := make([]string, 0, len(c.bindings))
	for name := range c.bindings {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of bindings.
func (c *Context) Len() int { return len(c.bindings) }

// Clone returns a copy that can be modified independently. Trees are shared;
// they are never modified by evaluation.
func (c *Context) Clone() *Context {
	out := &Context{
		bindings: make(map[string]ast.Expr, len(c.bindings)),
		methods:  c.methods,
	}
	for k, v := range c.bindings {
		out.bindings[k] = v
	}
	return out
}

func (c *Context) options() []reducer.Option {
	if c.methods == nil {
		return nil
	}
	return []reducer.Option{reducer.WithMethods(c.methods)}
}

// Eval parses and evaluates src. The boolean is false when the expression
// could not be evaluated for any reason; use TryEval to see why.
func (c *Context) Eval(src string) (value.Value, bool) {
	v, err := c.TryEval(src)
	return v, err == nil
}

// EvalExpr evaluates an already parsed tree.
func (c *Context) EvalExpr(e ast.Expr) (value.Value, bool) {
	v, err := c.TryEvalExpr(e)
	return v, err == nil
}

// TryEval is Eval with the failure reason.
func (c *Context) TryEval(src string) (value.Value, error) {
	e, err := parser.Parse(src)
	if err != nil {
		return value.Value{}, err
	}
	return c.TryEvalExpr(e)
}

// TryEvalExpr is EvalExpr with the failure reason.
func (c *Context) TryEvalExpr(e ast.Expr) (value.Value, error) {
	return reducer.Evaluate(c, e, c.options()...)
}

// Compile returns the postfix program for src without running it.
func (c *Context) Compile(src string) (reducer.Program, error) {
	e, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	return reducer.Compile(c, e, c.options()...)
}

// checkName accepts identifiers and ::-separated paths of identifiers.
func checkName(name string) error {
	for _, part := range strings.Split(name, "::") {
		if !isIdent(part) {
			return fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
	}
	return nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r < unicode.MaxASCII && unicode.IsLetter(r):
		case i > 0 && r < unicode.MaxASCII && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}
