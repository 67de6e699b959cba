// Package method implements the built-in methods callable as recv.name(arg).
//
// Methods are grouped into families. A Registry resolves a name by trying
// each family in a fixed order and taking the first one that defines it, so a
// name defined by two families always resolves to the earlier family
// regardless of the receiver's kind.
package method

import (
	"fmt"
	"slices"

	"github.com/robbyt/go-veval/value"
)

// Family groups methods by the receiver kinds they operate on.
type Family uint8

const (
	FamilyNumeric Family = iota
	FamilyOption
	FamilyDynType
	FamilySlice
	FamilyString
	FamilyList
)

func (f Family) String() string {
	switch f {
	case FamilyNumeric:
		return "numeric"
	case FamilyOption:
		return "option"
	case FamilyDynType:
		return "dyntype"
	case FamilySlice:
		return "slice"
	case FamilyString:
		return "string"
	case FamilyList:
		return "list"
	default:
		return fmt.Sprintf("Family(%d)", f)
	}
}

// Arity is the number of arguments a method takes besides its receiver.
type Arity uint8

const (
	NoArg Arity = iota
	OneArg
)

// Args returns the argument count.
func (a Arity) Args() int { return int(a) }

// Func implements a method. arg is the zero Value for NoArg methods.
type Func func(recv, arg value.Value) (value.Value, error)

// Method is a named operation with a fixed arity.
type Method struct {
	Family Family
	Name   string
	Arity  Arity
	fn     Func
}

// New returns a method record. It is used to extend a Registry with methods
// beyond the built-in families.
func New(family Family, name string, arity Arity, fn Func) Method {
	return Method{Family: family, Name: name, Arity: arity, fn: fn}
}

func (m Method) String() string { return m.Name }

// Call applies the method to recv and args. The number of args must match the
// method's arity exactly.
func (m Method) Call(recv value.Value, args ...value.Value) (value.Value, error) {
	if len(args) != m.Arity.Args() {
		return value.Value{}, fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrArity, m.Name, m.Arity.Args(), len(args))
	}
	if m.fn == nil {
		return value.Value{}, fmt.Errorf("%w: %s has no implementation", ErrUnknownMethod, m.Name)
	}

	var arg value.Value
	if m.Arity == OneArg {
		arg = args[0]
	}
	out, err := m.fn(recv, arg)
	if err != nil {
		return value.Value{}, fmt.Errorf("%s: %w", m.Name, err)
	}
	return out, nil
}

// Registry resolves method names.
type Registry struct {
	byName map[string]Method
	names  []string
}

// NewRegistry builds a registry from method tables given in priority order.
// When a name appears more than once, the first definition wins.
func NewRegistry(tables ...[]Method) *Registry {
	r := &Registry{byName: make(map[string]Method)}
	for _, table := range tables {
		for _, m := range table {
			if _, dup := r.byName[m.Name]; dup {
				continue
			}
			r.byName[m.Name] = m
			r.names = append(r.names, m.Name)
		}
	}
	slices.Sort(r.names)
	return r
}

// Lookup returns the method registered under name.
func (r *Registry) Lookup(name string) (Method, bool) {
	m, ok := r.byName[name]
	return m, ok
}

// Names returns the registered method names in sorted order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Builtins returns a copy of the built-in method table for family f.
func Builtins(f Family) []Method {
	var table []Method
	switch f {
	case FamilyNumeric:
		table = numericMethods
	case FamilyOption:
		table = optionMethods
	case FamilyDynType:
		table = dynTypeMethods
	case FamilySlice:
		table = sliceMethods
	case FamilyString:
		table = stringMethods
	case FamilyList:
		table = listMethods
	}
	return slices.Clone(table)
}

var defaultRegistry = NewRegistry(
	numericMethods,
	optionMethods,
	dynTypeMethods,
	sliceMethods,
	stringMethods,
	listMethods,
)

// Default returns the registry of built-in methods. It is shared and must not
// be modified.
func Default() *Registry { return defaultRegistry }
