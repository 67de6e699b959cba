package value

import (
	"fmt"
	"unicode/utf8"
)

// Index looks up idx in recv. A List accepts an Int (the element) or a Range
// (a sub-list). A Str accepts a Range of byte offsets that must fall on
// character boundaries. Out-of-bounds or reversed ranges are errors, never a
// truncated result.
func Index(recv, idx Value) (Value, error) {
	switch recv.kind {
	case KindList:
		switch idx.kind {
		case KindInt:
			if idx.i < 0 || idx.i >= int64(len(recv.l)) {
				return Value{}, fmt.Errorf("%w: index %d, length %d", ErrOutOfBounds, idx.i, len(recv.l))
			}
			return recv.l[idx.i], nil
		case KindRange:
			if err := checkSpan(idx.r, len(recv.l)); err != nil {
				return Value{}, err
			}
			return List(append([]Value(nil), recv.l[idx.r.Start:idx.r.End]...)...), nil
		}
	case KindStr:
		if idx.kind == KindRange {
			if err := checkSpan(idx.r, len(recv.s)); err != nil {
				return Value{}, err
			}
			if !charBoundary(recv.s, idx.r.Start) || !charBoundary(recv.s, idx.r.End) {
				return Value{}, fmt.Errorf("%w: %s is not on a character boundary", ErrOutOfBounds, idx.r)
			}
			return Str(recv.s[idx.r.Start:idx.r.End]), nil
		}
	default:
		return Value{}, fmt.Errorf("%w: cannot index %s", ErrInvalidOperation, recv.kind)
	}
	return Value{}, fmt.Errorf("%w: cannot index %s with %s", ErrInvalidOperation, recv.kind, idx.kind)
}

func checkSpan(r Range, n int) error {
	if r.Start < 0 || r.Start > r.End || r.End > int64(n) {
		return fmt.Errorf("%w: range %s, length %d", ErrOutOfBounds, r, n)
	}
	return nil
}

func charBoundary(s string, i int64) bool {
	return i == int64(len(s)) || utf8.RuneStart(s[i])
}
