package method

import (
	"math"

	"github.com/robbyt/go-veval/value"
)

var numericMethods = []Method{
	unaryFloat("abs", math.Abs),
	unaryFloat("acos", math.Acos),
	unaryFloat("acosh", math.Acosh),
	unaryFloat("asin", math.Asin),
	unaryFloat("asinh", math.Asinh),
	unaryFloat("atan", math.Atan),
	unaryFloat("atanh", math.Atanh),
	unaryFloat("cbrt", math.Cbrt),
	rounding("ceil", math.Ceil),
	unaryFloat("cos", math.Cos),
	unaryFloat("cosh", math.Cosh),
	unaryFloat("exp", math.Exp),
	unaryFloat("exp2", math.Exp2),
	unaryFloat("exp_m1", math.Expm1),
	rounding("floor", math.Floor),
	unaryFloat("fract", func(x float64) float64 { return x - math.Trunc(x) }),
	unaryFloat("ln", math.Log),
	unaryFloat("ln_1p", math.Log1p),
	unaryFloat("log10", math.Log10),
	unaryFloat("log2", math.Log2),
	unaryFloat("recip", func(x float64) float64 { return 1 / x }),
	rounding("round", math.Round),
	unaryFloat("signum", signum),
	unaryFloat("sin", math.Sin),
	unaryFloat("sinh", math.Sinh),
	unaryFloat("sqrt", math.Sqrt),
	unaryFloat("tan", math.Tan),
	unaryFloat("tanh", math.Tanh),
	unaryFloat("to_degrees", func(x float64) float64 { return x * (180 / math.Pi) }),
	unaryFloat("to_radians", func(x float64) float64 { return x * (math.Pi / 180) }),
	rounding("trunc", math.Trunc),

	binaryFloat("powi", func(x, n float64) float64 { return math.Pow(x, float64(saturateInt32(n))) }),
	binaryFloat("powf", math.Pow),
	binaryFloat("atan2", math.Atan2),
	binaryFloat("hypot", math.Hypot),
	binaryFloat("log", func(x, base float64) float64 { return math.Log(x) / math.Log(base) }),
	binaryFloat("max", maxNum),
	binaryFloat("min", minNum),
}

func unaryFloat(name string, f func(float64) float64) Method {
	return New(FamilyNumeric, name, NoArg, func(recv, _ value.Value) (value.Value, error) {
		x, ok := recv.AsNumber()
		if !ok {
			return value.Value{}, mismatch(recv)
		}
		return value.Float(f(x)), nil
	})
}

func binaryFloat(name string, f func(float64, float64) float64) Method {
	return New(FamilyNumeric, name, OneArg, func(recv, arg value.Value) (value.Value, error) {
		x, okX := recv.AsNumber()
		y, okY := arg.AsNumber()
		if !okX || !okY {
			return value.Value{}, mismatchArg(recv, arg)
		}
		return value.Float(f(x, y)), nil
	})
}

// rounding methods produce an Int, saturating at the int64 bounds.
func rounding(name string, f func(float64) float64) Method {
	return New(FamilyNumeric, name, NoArg, func(recv, _ value.Value) (value.Value, error) {
		x, ok := recv.AsNumber()
		if !ok {
			return value.Value{}, mismatch(recv)
		}
		if i, isInt := recv.AsInt(); isInt {
			return value.Int(i), nil
		}
		return value.Int(saturateInt64(f(x))), nil
	})
}

func saturateInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}

func saturateInt32(f float64) int32 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	default:
		return int32(f)
	}
}

func signum(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case math.Signbit(x):
		return -1
	default:
		return 1
	}
}

// maxNum and minNum ignore a NaN operand.
func maxNum(x, y float64) float64 {
	switch {
	case math.IsNaN(x):
		return y
	case math.IsNaN(y):
		return x
	default:
		return math.Max(x, y)
	}
}

func minNum(x, y float64) float64 {
	switch {
	case math.IsNaN(x):
		return y
	case math.IsNaN(y):
		return x
	default:
		return math.Min(x, y)
	}
}
