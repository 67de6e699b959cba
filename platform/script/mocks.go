package script

import (
	"io"

	"github.com/stretchr/testify/mock"
)

// MockCompiler is a testify mock of Compiler.
type MockCompiler struct {
	mock.Mock
}

func (m *MockCompiler) Compile(scriptReader io.ReadCloser) (ExecutableContent, error) {
	args := m.Called(scriptReader)
	content, _ := args.Get(0).(ExecutableContent)
	return content, args.Error(1)
}

// MockExecutableContent is a testify mock of ExecutableContent.
type MockExecutableContent struct {
	mock.Mock
}

func (m *MockExecutableContent) GetSource() string {
	return m.Called().String(0)
}

func (m *MockExecutableContent) GetByteCode() any {
	return m.Called().Get(0)
}
