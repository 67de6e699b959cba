package loader

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exprContent = "limit * 2 + 1"

func readAll(t *testing.T, l Loader) string {
	t.Helper()
	r, err := l.GetReader()
	require.NoError(t, err)
	defer func() { require.NoError(t, r.Close()) }()

	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(b)
}

func TestFromString(t *testing.T) {
	t.Parallel()

	l, err := NewFromString("  " + exprContent + "\n")
	require.NoError(t, err)
	assert.Equal(t, exprContent, readAll(t, l))
	assert.Equal(t, exprContent, readAll(t, l), "reader can be taken twice")
	assert.Equal(t, "string", l.GetSourceURL().Scheme)
	assert.Equal(t, `loader.FromString{Expr: "limit * 2 + 1"}`, l.String())

	other, err := NewFromString("1 + 1")
	require.NoError(t, err)
	assert.NotEqual(t, l.GetSourceURL().String(), other.GetSourceURL().String())

	same, err := NewFromString(exprContent)
	require.NoError(t, err)
	assert.Equal(t, l.GetSourceURL().String(), same.GetSourceURL().String())

	crlf, err := NewFromString("user::age >= 18 &&\r\nuser::active\r\n")
	require.NoError(t, err)
	assert.Equal(t, "user::age >= 18 &&\nuser::active", readAll(t, crlf))
	assert.Equal(t, `loader.FromString{Expr: "user::age >= 18 &&\nuser::active"}`, crlf.String())

	long, err := NewFromString(strings.Repeat("a + ", 20) + "a")
	require.NoError(t, err)
	assert.Equal(t, `loader.FromString{Expr: "a + a + a + a + a + a + a + a + ..."}`, long.String())

	for _, empty := range []string{"", "   ", "\n\t"} {
		_, err := NewFromString(empty)
		require.ErrorIs(t, err, ErrScriptNotAvailable)
	}
}

func TestFromBytes(t *testing.T) {
	t.Parallel()

	l, err := NewFromBytes([]byte(exprContent))
	require.NoError(t, err)
	assert.Equal(t, exprContent, readAll(t, l))
	assert.Equal(t, "bytes", l.GetSourceURL().Scheme)
	assert.Contains(t, l.String(), "Bytes: 13")

	_, err = NewFromBytes(nil)
	require.ErrorIs(t, err, ErrScriptNotAvailable)
	_, err = NewFromBytes([]byte(" \n "))
	require.ErrorIs(t, err, ErrScriptNotAvailable)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestFromIoReader(t *testing.T) {
	t.Parallel()

	l, err := NewFromIoReader(strings.NewReader(exprContent), "stdin")
	require.NoError(t, err)
	assert.Equal(t, exprContent, readAll(t, l))
	assert.Equal(t, exprContent, readAll(t, l))
	assert.Equal(t, "reader", l.GetSourceURL().Scheme)
	assert.Equal(t, "stdin", l.GetSourceURL().Host)

	unnamed, err := NewFromIoReader(strings.NewReader(exprContent), "")
	require.NoError(t, err)
	assert.Equal(t, "unnamed", unnamed.GetSourceURL().Host)

	_, err = NewFromIoReader(nil, "x")
	require.ErrorIs(t, err, ErrScriptNotAvailable)
	_, err = NewFromIoReader(strings.NewReader("  "), "x")
	require.ErrorIs(t, err, ErrScriptNotAvailable)
	_, err = NewFromIoReader(failingReader{}, "x")
	require.Error(t, err)
}

func TestFromDisk(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "rule.expr")
	require.NoError(t, os.WriteFile(path, []byte(exprContent), 0o600))

	t.Run("absolute path", func(t *testing.T) {
		l, err := NewFromDisk(path)
		require.NoError(t, err)
		assert.Equal(t, exprContent, readAll(t, l))
		assert.Equal(t, "file", l.GetSourceURL().Scheme)
		assert.Contains(t, l.String(), "rule.expr")
	})

	t.Run("file url", func(t *testing.T) {
		l, err := NewFromDisk("file://" + path)
		require.NoError(t, err)
		assert.Equal(t, exprContent, readAll(t, l))
	})

	t.Run("missing file", func(t *testing.T) {
		l, err := NewFromDisk(filepath.Join(dir, "missing.expr"))
		require.NoError(t, err)
		_, err = l.GetReader()
		require.ErrorIs(t, err, ErrScriptNotAvailable)
	})

	t.Run("rejected paths", func(t *testing.T) {
		_, err := NewFromDisk("relative/rule.expr")
		require.ErrorIs(t, err, ErrScriptNotAvailable)
		_, err = NewFromDisk("/")
		require.ErrorIs(t, err, ErrScriptNotAvailable)
		_, err = NewFromDisk("https://example.com/rule.expr")
		require.ErrorIs(t, err, ErrSchemeUnsupported)
	})
}

func TestInferLoader(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "rule.expr")
	require.NoError(t, os.WriteFile(path, []byte(exprContent), 0o600))

	tests := []struct {
		name         string
		input        any
		expectedType string
	}{
		{name: "http url", input: "http://example.com/rule.expr", expectedType: "*loader.FromHTTP"},
		{name: "https url", input: "https://example.com/rule.expr", expectedType: "*loader.FromHTTP"},
		{name: "file url", input: "file://" + path, expectedType: "*loader.FromDisk"},
		{name: "absolute path", input: path, expectedType: "*loader.FromDisk"},
		{name: "expression", input: exprContent, expectedType: "*loader.FromString"},
		{name: "path expression", input: "net::limit * 2", expectedType: "*loader.FromString"},
		{name: "division", input: "10 / 2", expectedType: "*loader.FromString"},
		{name: "bytes", input: []byte(exprContent), expectedType: "*loader.FromBytes"},
		{name: "reader", input: strings.NewReader(exprContent), expectedType: "*loader.FromIoReader"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := InferLoader(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedType, typeName(l))
		})
	}

	t.Run("loader passes through", func(t *testing.T) {
		orig, err := NewFromString(exprContent)
		require.NoError(t, err)
		l, err := InferLoader(orig)
		require.NoError(t, err)
		assert.Same(t, orig, l)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := InferLoader("   ")
		require.ErrorIs(t, err, ErrScriptNotAvailable)
		_, err = InferLoader(42)
		require.Error(t, err)
	})
}

func typeName(l Loader) string {
	switch l.(type) {
	case *FromHTTP:
		return "*loader.FromHTTP"
	case *FromDisk:
		return "*loader.FromDisk"
	case *FromString:
		return "*loader.FromString"
	case *FromBytes:
		return "*loader.FromBytes"
	case *FromIoReader:
		return "*loader.FromIoReader"
	default:
		return "unknown"
	}
}

func TestMockLoader(t *testing.T) {
	t.Parallel()

	var l Loader = NewMockLoaderWithContent([]byte(exprContent))
	assert.Equal(t, exprContent, readAll(t, l))
	assert.Equal(t, exprContent, readAll(t, l))
	assert.Equal(t, "mock", l.GetSourceURL().Scheme)
}
