package script

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-veval/platform/data"
	"github.com/robbyt/go-veval/platform/script/loader"
)

func TestNewExecutableUnit(t *testing.T) {
	t.Parallel()

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError})
	source := "limit * 2"

	newContent := func() *MockExecutableContent {
		c := new(MockExecutableContent)
		c.On("GetSource").Return(source).Maybe()
		c.On("GetByteCode").Return("compiled").Maybe()
		return c
	}

	t.Run("checksum id", func(t *testing.T) {
		content := newContent()
		compiler := new(MockCompiler)
		compiler.On("Compile", mock.Anything).Return(content, nil)
		provider := data.NewStaticProvider(map[string]any{"limit": 2})

		ldr, err := loader.NewFromString(source)
		require.NoError(t, err)

		exe, err := NewExecutableUnit(handler, "", ldr, compiler, provider)
		require.NoError(t, err)

		assert.Len(t, exe.GetID(), checksumLength)
		assert.Equal(t, content, exe.GetContent())
		assert.Equal(t, compiler, exe.GetCompiler())
		assert.Equal(t, ldr, exe.GetLoader())
		assert.Equal(t, provider, exe.GetDataProvider())
		assert.False(t, exe.GetCreatedAt().IsZero())
		assert.Contains(t, exe.String(), exe.GetID())
		compiler.AssertExpectations(t)

		again, err := NewExecutableUnit(handler, "", ldr, compiler, nil)
		require.NoError(t, err)
		assert.Equal(t, exe.GetID(), again.GetID())
		assert.Nil(t, again.GetDataProvider())
	})

	t.Run("given id", func(t *testing.T) {
		compiler := new(MockCompiler)
		compiler.On("Compile", mock.Anything).Return(newContent(), nil)

		exe, err := NewExecutableUnit(handler, "rule-1", loader.NewMockLoaderWithContent([]byte(source)), compiler, nil)
		require.NoError(t, err)
		assert.Equal(t, "rule-1", exe.GetID())
	})

	t.Run("compile error", func(t *testing.T) {
		compiler := new(MockCompiler)
		compiler.On("Compile", mock.Anything).Return(nil, assert.AnError)

		_, err := NewExecutableUnit(handler, "", loader.NewMockLoaderWithContent([]byte(source)), compiler, nil)
		require.ErrorIs(t, err, assert.AnError)
	})

	t.Run("loader error", func(t *testing.T) {
		ldr := new(loader.MockLoader)
		ldr.On("GetReader").Return(nil, loader.ErrScriptNotAvailable)

		_, err := NewExecutableUnit(handler, "", ldr, new(MockCompiler), nil)
		require.ErrorIs(t, err, loader.ErrScriptNotAvailable)
	})

	t.Run("nil arguments", func(t *testing.T) {
		_, err := NewExecutableUnit(handler, "", loader.NewMockLoaderWithContent([]byte(source)), nil, nil)
		require.True(t, errors.Is(err, ErrNilCompiler))

		_, err = NewExecutableUnit(handler, "", nil, new(MockCompiler), nil)
		require.True(t, errors.Is(err, ErrNilLoader))
	})
}
