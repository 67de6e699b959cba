package value

import (
	"fmt"
	"math"
	"reflect"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FromGo converts host data into a Value. Supported inputs are nil, Value,
// Range, bool, every integer and float width, string, []byte (as a string) and
// slices or arrays of supported inputs. Maps, structs and functions have no
// Value counterpart and return ErrUnsupportedType.
func FromGo(x any) (Value, error) {
	switch v := x.(type) {
	case nil:
		return None(), nil
	case Value:
		return v, nil
	case Range:
		return NewRange(v.Start, v.End), nil
	case bool:
		return Bool(v), nil
	case int:
		return Int(int64(v)), nil
	case int8:
		return Int(int64(v)), nil
	case int16:
		return Int(int64(v)), nil
	case int32:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case uint8:
		return Int(int64(v)), nil
	case uint16:
		return Int(int64(v)), nil
	case uint32:
		return Int(int64(v)), nil
	case uint:
		return fromUint(uint64(v))
	case uint64:
		return fromUint(v)
	case float32:
		return Float(float64(v)), nil
	case float64:
		return Float(v), nil
	case string:
		return Str(v), nil
	case []byte:
		return Str(string(v)), nil
	case []Value:
		return List(append([]Value(nil), v...)...), nil
	case []any:
		return fromSlice(len(v), func(i int) any { return v[i] })
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return fromSlice(rv.Len(), func(i int) any { return rv.Index(i).Interface() })
	case reflect.Pointer:
		if rv.IsNil() {
			return None(), nil
		}
		return FromGo(rv.Elem().Interface())
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedType, x)
	}
}

func fromUint(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return Value{}, fmt.Errorf("%w: %d does not fit in int64", ErrOverflow, u)
	}
	return Int(int64(u)), nil
}

func fromSlice(n int, at func(int) any) (Value, error) {
	elems := make([]Value, n)
	for i := range elems {
		e, err := FromGo(at(i))
		if err != nil {
			return Value{}, fmt.Errorf("element %d: %w", i, err)
		}
		elems[i] = e
	}
	return List(elems...), nil
}

// Interface converts v to a native Go value: nil, bool, int64, float64,
// string, Range or []any.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindStr:
		return v.s
	case KindRange:
		return v.r
	case KindList:
		out := make([]any, len(v.l))
		for i, e := range v.l {
			out[i] = e.Interface()
		}
		return out
	default:
		return nil
	}
}

// MarshalJSON encodes the native form of v. Ranges encode as {"start":..,"end":..}
// and None as null. Non-finite floats cannot be encoded and return an error.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}
