package data

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// PathSeparator joins the keys of nested maps into one binding name.
const PathSeparator = "::"

// Flatten turns nested maps into a single level keyed by ::-joined paths:
// {"user": {"age": 30}} becomes {"user::age": 30}. Non-map values are kept
// as they are. An empty nested map produces no entry.
func Flatten(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	flattenInto(out, "", m)
	return out
}

func flattenInto(out map[string]any, prefix string, m map[string]any) {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		name := k
		if prefix != "" {
			name = prefix + PathSeparator + k
		}
		if nested, ok := m[k].(map[string]any); ok {
			flattenInto(out, name, nested)
			continue
		}
		out[name] = m[k]
	}
}

// Expand is the inverse of Flatten: {"user::age": 30} becomes
// {"user": {"age": 30}}, merged with any "user" map already present. Keys are
// applied in sorted order, so a path key overrides a plain value at its
// prefix. A key with an empty segment is kept as it is. The result shares no
// maps with m.
func Expand(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		v := m[k]
		if nested, ok := v.(map[string]any); ok {
			v = Expand(nested)
		}
		path, err := splitPath(k)
		if err != nil {
			out[k] = v
			continue
		}
		mergeInto(out, path[0], nestValue(path, v))
	}
	return out
}

// splitPath splits a ::-joined key. Every segment must be non-empty.
func splitPath(key string) ([]string, error) {
	path := strings.Split(key, PathSeparator)
	if slices.Contains(path, "") {
		return nil, fmt.Errorf("key '%s' has an empty path segment", key)
	}
	return path, nil
}

// nestValue wraps v in one map per segment after the first.
func nestValue(path []string, v any) any {
	for i := len(path) - 1; i > 0; i-- {
		v = map[string]any{path[i]: v}
	}
	return v
}
