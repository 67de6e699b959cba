package data

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-veval/platform/constants"
)

func TestContextProvider_GetData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		key      constants.ContextKey
		ctx      context.Context
		expected map[string]any
		wantErr  bool
	}{
		{
			name:     "nothing stored",
			key:      constants.EvalData,
			ctx:      context.Background(),
			expected: map[string]any{},
		},
		{
			name:     "stored map",
			key:      constants.EvalData,
			ctx:      context.WithValue(context.Background(), constants.EvalData, simpleData),
			expected: simpleData,
		},
		{
			name:    "wrong type",
			key:     constants.EvalData,
			ctx:     context.WithValue(context.Background(), constants.EvalData, "nope"),
			wantErr: true,
		},
		{
			name:    "empty key",
			key:     "",
			ctx:     context.Background(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := NewContextProvider(tt.key)
			result, err := provider.GetData(tt.ctx)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestContextProvider_AddDataToContext(t *testing.T) {
	t.Parallel()

	t.Run("merges successive calls", func(t *testing.T) {
		provider := NewContextProvider(constants.EvalData)

		ctx, err := provider.AddDataToContext(t.Context(), map[string]any{
			"user": map[string]any{"age": 30},
			"a":    1,
		})
		require.NoError(t, err)

		ctx, err = provider.AddDataToContext(ctx, map[string]any{
			"user": map[string]any{"name": "ann"},
			"a":    2,
		}, nil)
		require.NoError(t, err)

		got, err := provider.GetData(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"user": map[string]any{"age": 30, "name": "ann"},
			"a":    2,
		}, got)
	})

	t.Run("earlier context is unchanged", func(t *testing.T) {
		provider := NewContextProvider(constants.EvalData)

		first, err := provider.AddDataToContext(t.Context(), map[string]any{"user": map[string]any{"age": 30}})
		require.NoError(t, err)
		_, err = provider.AddDataToContext(first, map[string]any{"user": map[string]any{"age": 31}})
		require.NoError(t, err)

		got, err := provider.GetData(first)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"user": map[string]any{"age": 30}}, got)
	})

	t.Run("http request", func(t *testing.T) {
		provider := NewContextProvider(constants.EvalData)
		req := &http.Request{
			Method: http.MethodGet,
			URL:    &url.URL{Path: "/test", RawQuery: "param=value"},
			Header: http.Header{"Content-Type": []string{"application/json"}},
		}

		ctx, err := provider.AddDataToContext(t.Context(), map[string]any{"request": req})
		require.NoError(t, err)

		got, err := provider.GetData(ctx)
		require.NoError(t, err)
		request, ok := got["request"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, http.MethodGet, request["method"])
		assert.Equal(t, "/test", request["path"])
		assert.Equal(t, map[string]any{"param": []string{"value"}}, request["query"])
	})

	t.Run("empty keys are reported", func(t *testing.T) {
		provider := NewContextProvider(constants.EvalData)

		ctx, err := provider.AddDataToContext(t.Context(), map[string]any{
			"":       1,
			"nested": map[string]any{"": 2},
			"ok":     3,
		})
		require.Error(t, err)

		got, getErr := provider.GetData(ctx)
		require.NoError(t, getErr)
		assert.Equal(t, map[string]any{"ok": 3}, got)
	})

	t.Run("path keys merge into maps", func(t *testing.T) {
		provider := NewContextProvider(constants.EvalData)

		ctx, err := provider.AddDataToContext(t.Context(), map[string]any{
			"user": map[string]any{"age": 30, "name": "ann"},
		})
		require.NoError(t, err)
		ctx, err = provider.AddDataToContext(ctx, map[string]any{
			"user::age":       31,
			"user::tags::vip": true,
			"nested":          map[string]any{"a::b": 1},
		})
		require.NoError(t, err)

		got, err := provider.GetData(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"user": map[string]any{
				"age":  31,
				"name": "ann",
				"tags": map[string]any{"vip": true},
			},
			"nested": map[string]any{"a": map[string]any{"b": 1}},
		}, got)
	})

	t.Run("empty path segments are reported", func(t *testing.T) {
		provider := NewContextProvider(constants.EvalData)

		ctx, err := provider.AddDataToContext(t.Context(), map[string]any{
			"a::":    1,
			"::b":    2,
			"c::::d": 3,
			"ok::x":  4,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "key 'a::' has an empty path segment")
		assert.Contains(t, err.Error(), "key '::b' has an empty path segment")
		assert.Contains(t, err.Error(), "key 'c::::d' has an empty path segment")

		got, getErr := provider.GetData(ctx)
		require.NoError(t, getErr)
		assert.Equal(t, map[string]any{"ok": map[string]any{"x": 4}}, got)
	})

	t.Run("empty context key", func(t *testing.T) {
		provider := NewContextProvider("")
		_, err := provider.AddDataToContext(t.Context(), simpleData)
		require.Error(t, err)
	})
}
