package data

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-veval/platform/constants"
)

func TestCompositeProvider_GetData(t *testing.T) {
	t.Parallel()

	t.Run("later providers override", func(t *testing.T) {
		static := NewStaticProvider(map[string]any{
			"limit": 10,
			"user":  map[string]any{"age": 30, "name": "ann"},
		})
		dynamic := NewContextProvider(constants.EvalData)
		composite := NewCompositeProvider(static, nil, dynamic)

		ctx, err := composite.AddDataToContext(t.Context(), map[string]any{
			"limit": 20,
			"user":  map[string]any{"age": 31},
		})
		require.NoError(t, err)

		got, err := composite.GetData(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"limit": 20,
			"user":  map[string]any{"age": 31, "name": "ann"},
		}, got)
	})

	t.Run("path key overrides one field", func(t *testing.T) {
		static := NewStaticProvider(map[string]any{
			"user": map[string]any{"age": 30, "name": "ann"},
		})
		dynamic := NewContextProvider(constants.EvalData)
		composite := NewCompositeProvider(static, dynamic)

		ctx, err := composite.AddDataToContext(t.Context(), map[string]any{"user::age": 31})
		require.NoError(t, err)

		got, err := composite.GetData(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"user": map[string]any{"age": 31, "name": "ann"},
		}, got)
	})

	t.Run("provider error", func(t *testing.T) {
		failing := new(MockProvider)
		failing.On("GetData", mock.Anything).Return(nil, assert.AnError)

		composite := NewCompositeProvider(NewStaticProvider(simpleData), failing)
		_, err := composite.GetData(t.Context())
		require.ErrorIs(t, err, assert.AnError)
		failing.AssertExpectations(t)
	})

	t.Run("no providers", func(t *testing.T) {
		got, err := NewCompositeProvider().GetData(t.Context())
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestCompositeProvider_AddDataToContext(t *testing.T) {
	t.Parallel()

	input := map[string]any{"x": 1}

	t.Run("only static providers", func(t *testing.T) {
		composite := NewCompositeProvider(NewStaticProvider(nil), NewStaticProvider(nil))
		_, err := composite.AddDataToContext(t.Context(), input)
		require.ErrorIs(t, err, ErrStaticProviderNoRuntimeUpdates)
	})

	t.Run("all dynamic providers fail", func(t *testing.T) {
		failing := new(MockProvider)
		failing.On("AddDataToContext", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		composite := NewCompositeProvider(NewStaticProvider(nil), failing)
		_, err := composite.AddDataToContext(t.Context(), input)
		require.ErrorIs(t, err, assert.AnError)
	})

	t.Run("one dynamic provider succeeds", func(t *testing.T) {
		failing := new(MockProvider)
		failing.On("AddDataToContext", mock.Anything, mock.Anything).Return(nil, assert.AnError)
		dynamic := NewContextProvider(constants.EvalData)

		composite := NewCompositeProvider(failing, dynamic)
		ctx, err := composite.AddDataToContext(t.Context(), input)
		require.NoError(t, err)

		got, err := dynamic.GetData(ctx)
		require.NoError(t, err)
		assert.Equal(t, input, got)
	})
}

func TestAddDataToContextHelper(t *testing.T) {
	t.Parallel()

	t.Run("nil provider", func(t *testing.T) {
		_, err := AddDataToContextHelper(t.Context(), nil, nil, simpleData)
		require.Error(t, err)
	})

	t.Run("provider error is wrapped", func(t *testing.T) {
		_, err := AddDataToContextHelper(t.Context(), nil, NewStaticProvider(nil), simpleData)
		require.ErrorIs(t, err, ErrStaticProviderNoRuntimeUpdates)
		assert.Contains(t, err.Error(), "[debug limit name]")
	})

	t.Run("logs bound paths", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		provider := NewContextProvider(constants.EvalData)

		_, err := AddDataToContextHelper(t.Context(), logger, provider,
			map[string]any{"user": map[string]any{"age": 30}},
			map[string]any{"user::name": "ann", "limit": 1},
		)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), `paths="[limit user::age user::name]"`)
	})

	t.Run("stores data", func(t *testing.T) {
		provider := NewContextProvider(constants.EvalData)
		ctx, err := AddDataToContextHelper(t.Context(), nil, provider, simpleData)
		require.NoError(t, err)

		got, err := provider.GetData(ctx)
		require.NoError(t, err)
		assert.Equal(t, simpleData, got)
	})
}
