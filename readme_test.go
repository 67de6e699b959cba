package veval_test

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-veval"
	"github.com/robbyt/go-veval/options"
	"github.com/robbyt/go-veval/platform/constants"
	"github.com/robbyt/go-veval/platform/data"
	"github.com/robbyt/go-veval/scope"
	"github.com/robbyt/go-veval/value"
)

func TestReadmeQuickStart(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	e, err := veval.FromStringWithData(
		`user::age >= min_age && user::name.starts_with("a")`,
		map[string]any{"min_age": 18},
		options.WithSlog(logger),
	)
	require.NoError(t, err, "Should create evaluator successfully")

	ctx, err := e.AddDataToContext(context.Background(), map[string]any{
		"user": map[string]any{"name": "ada", "age": 36},
	})
	require.NoError(t, err)

	result, err := e.Eval(ctx)
	require.NoError(t, err, "Should evaluate successfully")
	assert.Equal(t, true, result.Interface())
}

func TestReadmeBindings(t *testing.T) {
	t.Parallel()

	s := scope.New()
	require.NoError(t, s.Insert("limit", "10"))
	require.NoError(t, s.Insert("double", "limit * 2"))

	v, ok := s.Eval("double + 1")
	require.True(t, ok)
	assert.Equal(t, value.Int(21), v)

	require.NoError(t, s.LoadYAML(strings.NewReader("greeting: '\"hi\"'\n")))
	v, ok = s.Eval("greeting * 2")
	require.True(t, ok)
	assert.Equal(t, value.Str("hihi"), v)
}

func TestReadmeExpressions(t *testing.T) {
	t.Parallel()

	tests := map[string]value.Value{
		`"ab" * 2`:                value.Str("abab"),
		"[1, 2, 3][1..3]":         value.List(value.Int(2), value.Int(3)),
		"1 + 0.5":                 value.Float(1.5),
		"2.5.round()":             value.Int(3),
		`"  x ".trim().len()`:     value.Int(1),
		"None.unwrap_or(4)":       value.Int(4),
		"[1, 2].first().is_int()": value.Bool(true),
	}
	for src, expected := range tests {
		v, ok := veval.Eval(nil, src)
		require.True(t, ok, src)
		assert.Equal(t, expected, v, src)
	}

	_, ok := veval.Eval(nil, "1 == true")
	assert.False(t, ok)
}

func TestReadmeRequestData(t *testing.T) {
	t.Parallel()

	provider := data.NewCompositeProvider(
		data.NewStaticProvider(map[string]any{"json": "application/json"}),
		data.NewContextProvider(constants.EvalData),
	)
	e, err := veval.FromString(
		`request::headers::content_type.contains(json)`,
		options.WithDataProvider(provider),
		options.WithLogHandler(slog.NewTextHandler(os.Stdout, nil)),
	)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, "https://example.com/submit", nil)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	ctx, err := e.AddDataToContext(context.Background(), map[string]any{"request": req})
	require.NoError(t, err)

	result, err := e.Eval(ctx)
	require.NoError(t, err)
	assert.Equal(t, true, result.Interface())
}
