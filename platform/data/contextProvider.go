package data

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"slices"

	"github.com/robbyt/go-veval/internal/helpers"
	"github.com/robbyt/go-veval/platform/constants"
)

// ContextProvider stores data in a context under a fixed key.
type ContextProvider struct {
	contextKey constants.ContextKey
}

// NewContextProvider creates a ContextProvider for contextKey.
func NewContextProvider(contextKey constants.ContextKey) *ContextProvider {
	return &ContextProvider{
		contextKey: contextKey,
	}
}

// GetData returns the map stored under the provider's key, or an empty map.
func (p *ContextProvider) GetData(ctx context.Context) (map[string]any, error) {
	if p.contextKey == "" {
		return nil, fmt.Errorf("context key is empty")
	}

	stored := ctx.Value(p.contextKey)
	if stored == nil {
		return make(map[string]any), nil
	}

	d, ok := stored.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid input data type: expected map[string]any, got %T", stored)
	}
	return d, nil
}

// AddDataToContext merges data into whatever is already stored under the key.
// Nested maps merge recursively and later values win. A ::-joined key is
// stored under its path, so {"user::age": 30} and {"user": {"age": 30}} are
// the same data. An *http.Request is converted with helpers.RequestToMap.
// Entries that fail are skipped and reported together; the rest are still
// stored.
func (p *ContextProvider) AddDataToContext(
	ctx context.Context,
	data ...map[string]any,
) (context.Context, error) {
	if p.contextKey == "" {
		return ctx, fmt.Errorf("context key is empty")
	}

	var errz []error
	toStore := make(map[string]any)
	if existing, ok := ctx.Value(p.contextKey).(map[string]any); ok {
		maps.Copy(toStore, existing)
	}

	for _, dataMap := range data {
		for _, key := range slices.Sorted(maps.Keys(dataMap)) {
			if key == "" {
				errz = append(errz, fmt.Errorf("empty keys are not allowed"))
				continue
			}
			path, err := splitPath(key)
			if err != nil {
				errz = append(errz, err)
				continue
			}

			processed, err := processValue(dataMap[key])
			if err != nil {
				errz = append(errz, fmt.Errorf("processing value for key '%s': %w", key, err))
				continue
			}
			mergeInto(toStore, path[0], nestValue(path, processed))
		}
	}

	return context.WithValue(ctx, p.contextKey, toStore), errors.Join(errz...)
}

func processValue(v any) (any, error) {
	switch v := v.(type) {
	case *http.Request:
		if v == nil {
			return nil, nil
		}
		return helpers.RequestToMap(v)
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			if k == "" {
				return nil, fmt.Errorf("empty keys are not allowed in nested maps")
			}
			processed, err := processValue(val)
			if err != nil {
				return nil, fmt.Errorf("processing nested value for key '%s': %w", k, err)
			}
			out[k] = processed
		}
		return Expand(out), nil
	default:
		return v, nil
	}
}

func mergeInto(target map[string]any, key string, v any) {
	if newMap, ok := v.(map[string]any); ok {
		if existing, ok := target[key].(map[string]any); ok {
			merged := maps.Clone(existing)
			for k, nv := range newMap {
				mergeInto(merged, k, nv)
			}
			target[key] = merged
			return
		}
	}
	target[key] = v
}
