package method

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/robbyt/go-veval/value"
)

var stringMethods = []Method{
	strPredicate("is_ascii", func(s string) bool {
		for i := 0; i < len(s); i++ {
			if s[i] > unicode.MaxASCII {
				return false
			}
		}
		return true
	}),
	strMap("to_lowercase", strings.ToLower),
	strMap("to_uppercase", strings.ToUpper),
	strMap("to_ascii_lowercase", asciiMapper(asciiLower)),
	strMap("to_ascii_uppercase", asciiMapper(asciiUpper)),
	strMap("trim", strings.TrimSpace),
	strMap("trim_start", func(s string) string { return strings.TrimLeftFunc(s, unicode.IsSpace) }),
	strMap("trim_end", func(s string) string { return strings.TrimRightFunc(s, unicode.IsSpace) }),

	strSearch("find", strings.Index),
	strSearch("rfind", strings.LastIndex),
	New(FamilyString, "is_match", OneArg, func(recv, arg value.Value) (value.Value, error) {
		s, pattern, err := strPair(recv, arg)
		if err != nil {
			return value.Value{}, err
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return value.Value{}, fmt.Errorf("%w: %w", ErrDomain, err)
		}
		return value.Bool(re.MatchString(s)), nil
	}),
	New(FamilyString, "eq_ignore_ascii_case", OneArg, func(recv, arg value.Value) (value.Value, error) {
		a, b, err := strPair(recv, arg)
		if err != nil {
			return value.Value{}, err
		}
		lower := asciiMapper(asciiLower)
		return value.Bool(lower(a) == lower(b)), nil
	}),
}

func strPair(recv, arg value.Value) (string, string, error) {
	a, okA := recv.AsStr()
	b, okB := arg.AsStr()
	if !okA || !okB {
		return "", "", mismatchArg(recv, arg)
	}
	return a, b, nil
}

func strPredicate(name string, f func(string) bool) Method {
	return New(FamilyString, name, NoArg, func(recv, _ value.Value) (value.Value, error) {
		s, ok := recv.AsStr()
		if !ok {
			return value.Value{}, mismatch(recv)
		}
		return value.Bool(f(s)), nil
	})
}

func strMap(name string, f func(string) string) Method {
	return New(FamilyString, name, NoArg, func(recv, _ value.Value) (value.Value, error) {
		s, ok := recv.AsStr()
		if !ok {
			return value.Value{}, mismatch(recv)
		}
		return value.Str(f(s)), nil
	})
}

// strSearch returns the byte offset of the match, or None when absent.
func strSearch(name string, f func(s, sub string) int) Method {
	return New(FamilyString, name, OneArg, func(recv, arg value.Value) (value.Value, error) {
		s, sub, err := strPair(recv, arg)
		if err != nil {
			return value.Value{}, err
		}
		if i := f(s, sub); i >= 0 {
			return value.Int(int64(i)), nil
		}
		return value.None(), nil
	})
}

// asciiMapper applies f to every ASCII byte and leaves multi-byte sequences alone.
func asciiMapper(f func(byte) byte) func(string) string {
	return func(s string) string {
		b := []byte(s)
		for i, c := range b {
			if c <= unicode.MaxASCII {
				b[i] = f(c)
			}
		}
		return string(b)
	}
}

func asciiLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func asciiUpper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
