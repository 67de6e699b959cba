// Package reducer evaluates expression trees.
//
// Evaluation has two steps. Compile walks the tree once and reorders it into
// a postfix Program with the shunting-yard algorithm: operators wait on a
// stack until an operator of looser preference, or a closing parenthesis,
// forces them out. Identifiers are replaced by their bound trees framed in
// parentheses. Array, range and index nodes are evaluated eagerly by nested
// reducers and enter the program as values. Program.Run then executes the
// result over a value stack.
package reducer

import (
	"fmt"

	"github.com/robbyt/go-veval/ast"
	"github.com/robbyt/go-veval/engine/method"
	"github.com/robbyt/go-veval/engine/operator"
	"github.com/robbyt/go-veval/value"
)

// Resolver looks up the tree bound to an identifier.
type Resolver interface {
	Lookup(name string) (ast.Expr, bool)
}

// Bindings is a Resolver backed by a map.
type Bindings map[string]ast.Expr

// Lookup implements Resolver.
func (b Bindings) Lookup(name string) (ast.Expr, bool) {
	e, ok := b[name]
	return e, ok
}

type config struct {
	methods *method.Registry
}

// Option configures Compile and Evaluate.
type Option func(*config)

// WithMethods replaces the built-in method registry.
func WithMethods(r *method.Registry) Option {
	return func(c *config) {
		if r != nil {
			c.methods = r
		}
	}
}

type reducer struct {
	resolver Resolver
	methods  *method.Registry

	// expanding holds the identifiers currently being substituted. It is
	// shared with nested reducers so that cycles through arrays are caught.
	expanding map[string]struct{}

	operators []operator.Operator
	output    Program
}

func newReducer(r Resolver, opts ...Option) *reducer {
	cfg := config{methods: method.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if r == nil {
		r = Bindings(nil)
	}
	return &reducer{
		resolver:  r,
		methods:   cfg.methods,
		expanding: make(map[string]struct{}),
	}
}

// nested returns a fresh reducer sharing the resolver, the registry and the
// cycle guard.
func (r *reducer) nested() *reducer {
	return &reducer{
		resolver:  r.resolver,
		methods:   r.methods,
		expanding: r.expanding,
	}
}

// Compile linearizes e into a postfix program. Identifiers are resolved
// through res, and array, range and index sub-expressions are already
// evaluated, so compile errors include their evaluation errors.
func Compile(res Resolver, e ast.Expr, opts ...Option) (Program, error) {
	return newReducer(res, opts...).compile(e)
}

// Evaluate compiles and runs e.
func Evaluate(res Resolver, e ast.Expr, opts ...Option) (value.Value, error) {
	return newReducer(res, opts...).evaluate(e)
}

func (r *reducer) compile(e ast.Expr) (Program, error) {
	if err := r.visit(e); err != nil {
		return nil, err
	}
	for len(r.operators) > 0 {
		op := r.popOp()
		if op.IsParen() {
			return nil, fmt.Errorf("%w: unclosed %s", ErrUnbalanced, op)
		}
		r.output = append(r.output, OpToken(op))
	}
	return r.output, nil
}

func (r *reducer) evaluate(e ast.Expr) (value.Value, error) {
	p, err := r.compile(e)
	if err != nil {
		return value.Value{}, err
	}
	return p.Run()
}

func (r *reducer) popOp() operator.Operator {
	op := r.operators[len(r.operators)-1]
	r.operators = r.operators[:len(r.operators)-1]
	return op
}

// pushOp moves pending operators that bind at least as tightly as op to the
// output before pushing op. A closing parenthesis drains down to its opening
// partner and is never pushed.
func (r *reducer) pushOp(op operator.Operator) error {
	if op == operator.ParenRight {
		for len(r.operators) > 0 {
			last := r.popOp()
			if last == operator.ParenLeft {
				return nil
			}
			r.output = append(r.output, OpToken(last))
		}
		return fmt.Errorf("%w: unmatched %s", ErrUnbalanced, op)
	}

	for len(r.operators) > 0 {
		last := r.operators[len(r.operators)-1]
		if op.GtPreference(last) || last == operator.ParenLeft {
			break
		}
		r.output = append(r.output, OpToken(r.popOp()))
	}
	r.operators = append(r.operators, op)
	return nil
}

func (r *reducer) emit(v value.Value) {
	r.output = append(r.output, ValueToken(v))
}

// framed visits e between synthetic parentheses.
func (r *reducer) framed(e ast.Expr) error {
	if err := r.pushOp(operator.ParenLeft); err != nil {
		return err
	}
	if err := r.visit(e); err != nil {
		return err
	}
	return r.pushOp(operator.ParenRight)
}

func (r *reducer) visit(e ast.Expr) error {
	switch n := e.(type) {
	case nil:
		return fmt.Errorf("%w: missing expression", ErrUnsupportedNode)
	case *ast.BasicLit:
		v, err := ast.Literal(n)
		if err != nil {
			return err
		}
		r.emit(v)
		return nil
	case *ast.Const:
		r.emit(n.Value)
		return nil
	case *ast.Ident:
		return r.visitIdent(n)
	case *ast.Binary:
		return r.visitBinary(n)
	case *ast.Unary:
		return r.visitUnary(n)
	case *ast.Paren:
		return r.framed(n.X)
	case *ast.Reference:
		return r.visit(n.X)
	case *ast.Array:
		return r.visitArray(n)
	case *ast.Range:
		return r.visitRange(n)
	case *ast.Index:
		return r.visitIndex(n)
	case *ast.MethodCall:
		return r.visitMethodCall(n)
	default:
		return fmt.Errorf("%w: %T at %s", ErrUnsupportedNode, e, e.Pos())
	}
}

func (r *reducer) visitIdent(n *ast.Ident) error {
	bound, ok := r.resolver.Lookup(n.Name)
	if !ok {
		return fmt.Errorf("%w: %s at %s", ErrUnresolved, n.Name, n.At)
	}
	if _, busy := r.expanding[n.Name]; busy {
		return fmt.Errorf("%w: %s", ErrCyclicBinding, n.Name)
	}
	r.expanding[n.Name] = struct{}{}
	defer delete(r.expanding, n.Name)

	return r.framed(bound)
}

func (r *reducer) visitBinary(n *ast.Binary) error {
	op, err := operator.FromBinary(n.Op)
	if err != nil {
		return err
	}
	if err := r.operand(n.Left, op, false); err != nil {
		return err
	}
	if err := r.pushOp(op); err != nil {
		return err
	}
	return r.operand(n.Right, op, true)
}

// operand visits a child of a binary node. A child binary node that would be
// regrouped by rank alone, such as the right side of a || (b && c) where both
// operators share a rank, is framed so the tree's grouping is kept.
func (r *reducer) operand(child ast.Expr, parent operator.Operator, right bool) error {
	if b, ok := child.(*ast.Binary); ok {
		op, err := operator.FromBinary(b.Op)
		if err != nil {
			return err
		}
		if parent.GtPreference(op) || (right && parent.EqPreference(op)) {
			return r.framed(child)
		}
	}
	return r.visit(child)
}

// visitUnary rewrites !x as x ! false and -x as x neg 0.
func (r *reducer) visitUnary(n *ast.Unary) error {
	op, err := operator.FromUnary(n.Op)
	if err != nil {
		return err
	}
	if _, compound := n.X.(*ast.Binary); compound {
		err = r.framed(n.X)
	} else {
		err = r.visit(n.X)
	}
	if err != nil {
		return err
	}
	if err := r.pushOp(op); err != nil {
		return err
	}
	identity, _ := op.Identity()
	r.emit(identity)
	return nil
}

func (r *reducer) visitArray(n *ast.Array) error {
	elems := make([]value.Value, len(n.Elems))
	for i, el := range n.Elems {
		v, err := r.nested().evaluate(el)
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		elems[i] = v
	}
	r.emit(value.List(elems...))
	return nil
}

func (r *reducer) visitRange(n *ast.Range) error {
	if n.From == nil || n.To == nil {
		return fmt.Errorf("%w: open range at %s", ErrRangeBound, n.At)
	}
	from, err := r.bound(n.From)
	if err != nil {
		return err
	}
	to, err := r.bound(n.To)
	if err != nil {
		return err
	}
	r.emit(value.NewRange(from, to))
	return nil
}

func (r *reducer) bound(e ast.Expr) (int64, error) {
	v, err := r.nested().evaluate(e)
	if err != nil {
		return 0, err
	}
	i, ok := v.AsInt()
	if !ok {
		return 0, fmt.Errorf("%w: got %s", ErrRangeBound, v.Kind())
	}
	return i, nil
}

// visitIndex evaluates both sides immediately since the lookup depends on the
// concrete kind of the receiver.
func (r *reducer) visitIndex(n *ast.Index) error {
	recv, err := r.nested().evaluate(n.X)
	if err != nil {
		return err
	}
	idx, err := r.nested().evaluate(n.Index)
	if err != nil {
		return err
	}
	v, err := value.Index(recv, idx)
	if err != nil {
		return err
	}
	r.emit(v)
	return nil
}

func (r *reducer) visitMethodCall(n *ast.MethodCall) error {
	m, ok := r.methods.Lookup(n.Name)
	if !ok {
		return fmt.Errorf("%w: %s at %s", method.ErrUnknownMethod, n.Name, n.At)
	}
	if len(n.Args) != m.Arity.Args() {
		return fmt.Errorf("%w: %s takes %d argument(s), got %d", method.ErrArity, n.Name, m.Arity.Args(), len(n.Args))
	}

	if err := r.framed(n.Recv); err != nil {
		return err
	}
	if m.Arity == method.OneArg {
		if err := r.framed(n.Args[0]); err != nil {
			return err
		}
	}
	r.output = append(r.output, MethodToken(m))
	return nil
}
