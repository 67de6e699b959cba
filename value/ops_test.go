package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	t.Parallel()

	type binaryOp func(a, b Value) (Value, error)

	tests := []struct {
		name     string
		op       binaryOp
		a, b     Value
		expected Value
	}{
		{"int add", Add, Int(1), Int(1), Int(2)},
		{"float add", Add, Float(1), Float(1), Float(2)},
		{"mixed add promotes", Add, Int(1), Float(0.5), Float(1.5)},
		{"mixed add promotes reversed", Add, Float(0.5), Int(1), Float(1.5)},
		{"string concat", Add, Str("bar"), Str("foo"), Str("barfoo")},
		{"int sub", Sub, Int(1), Int(1), Int(0)},
		{"float sub", Sub, Float(1), Float(1), Float(0)},
		{"mixed sub", Sub, Int(3), Float(0.5), Float(2.5)},
		{"int mul", Mul, Int(3), Int(4), Int(12)},
		{"float mul", Mul, Float(1.5), Float(2), Float(3)},
		{"int times string", Mul, Int(2), Str("foo"), Str("foofoo")},
		{"string times int", Mul, Str("foo"), Int(2), Str("foofoo")},
		{"string times zero", Mul, Str("foo"), Int(0), Str("")},
		{"string times negative", Mul, Str("foo"), Int(-1), Str("")},
		{"int div truncates", Div, Int(7), Int(2), Int(3)},
		{"negative int div truncates toward zero", Div, Int(-7), Int(2), Int(-3)},
		{"float div", Div, Float(1), Float(4), Float(0.25)},
		{"mixed div", Div, Int(1), Float(4), Float(0.25)},
		{"int rem", Rem, Int(4), Int(2), Int(0)},
		{"int rem keeps dividend sign", Rem, Int(-7), Int(2), Int(-1)},
		{"float rem", Rem, Float(4.5), Float(2), Float(0.5)},
		{"mixed rem", Rem, Float(5), Int(3), Float(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestArithmeticFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		run  func() (Value, error)
		err  error
	}{
		{"bool add", func() (Value, error) { return Add(Bool(true), Bool(false)) }, ErrInvalidOperation},
		{"string minus string", func() (Value, error) { return Sub(Str("a"), Str("b")) }, ErrInvalidOperation},
		{"string times float", func() (Value, error) { return Mul(Str("a"), Float(2)) }, ErrInvalidOperation},
		{"string plus int", func() (Value, error) { return Add(Str("a"), Int(1)) }, ErrInvalidOperation},
		{"list div", func() (Value, error) { return Div(List(), Int(1)) }, ErrInvalidOperation},
		{"none rem", func() (Value, error) { return Rem(None(), Int(1)) }, ErrInvalidOperation},
		{"int div by zero", func() (Value, error) { return Div(Int(1), Int(0)) }, ErrDivisionByZero},
		{"int rem by zero", func() (Value, error) { return Rem(Int(1), Int(0)) }, ErrDivisionByZero},
		{"add overflow", func() (Value, error) { return Add(Int(math.MaxInt64), Int(1)) }, ErrOverflow},
		{"sub overflow", func() (Value, error) { return Sub(Int(math.MinInt64), Int(1)) }, ErrOverflow},
		{"mul overflow", func() (Value, error) { return Mul(Int(math.MaxInt64), Int(2)) }, ErrOverflow},
		{"div overflow", func() (Value, error) { return Div(Int(math.MinInt64), Int(-1)) }, ErrOverflow},
		{"huge repeat", func() (Value, error) { return Mul(Str("foo"), Int(math.MaxInt64)) }, ErrTooLarge},
		{"negate string", func() (Value, error) { return Neg(Str("a")) }, ErrInvalidOperation},
		{"negate min int", func() (Value, error) { return Neg(Int(math.MinInt64)) }, ErrOverflow},
		{"not int", func() (Value, error) { return Not(Int(1)) }, ErrInvalidOperation},
		{"and mixed", func() (Value, error) { return And(Bool(true), Int(1)) }, ErrInvalidOperation},
		{"or none", func() (Value, error) { return Or(None(), Bool(true)) }, ErrInvalidOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.run()
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestFloatDivisionByZero(t *testing.T) {
	t.Parallel()

	got, err := Div(Float(1), Int(0))
	require.NoError(t, err)
	f, ok := got.AsFloat()
	require.True(t, ok)
	assert.True(t, math.IsInf(f, 1))
}

func TestUnaryAndLogical(t *testing.T) {
	t.Parallel()

	got, err := Neg(Int(1))
	require.NoError(t, err)
	assert.Equal(t, Int(-1), got)

	got, err = Neg(Float(1.5))
	require.NoError(t, err)
	assert.Equal(t, Float(-1.5), got)

	got, err = Not(Bool(false))
	require.NoError(t, err)
	assert.Equal(t, Bool(true), got)

	got, err = And(Bool(true), Bool(false))
	require.NoError(t, err)
	assert.Equal(t, Bool(false), got)

	got, err = Or(Bool(true), Bool(false))
	require.NoError(t, err)
	assert.Equal(t, Bool(true), got)
}
