package loader

import (
	"bytes"
	"io"
	"net/url"

	"github.com/stretchr/testify/mock"
)

// MockLoader is a testify mock of Loader for tests in other packages.
type MockLoader struct {
	mock.Mock
}

func (m *MockLoader) GetSourceURL() *url.URL {
	args := m.Called()
	u, _ := args.Get(0).(*url.URL)
	return u
}

func (m *MockLoader) GetReader() (io.ReadCloser, error) {
	args := m.Called()
	if fn, ok := args.Get(0).(func() io.ReadCloser); ok {
		return fn(), args.Error(1)
	}
	r, _ := args.Get(0).(io.ReadCloser)
	return r, args.Error(1)
}

// NewMockLoaderWithContent returns a MockLoader whose reader yields content.
// The reader is created per call so it can be read more than once.
func NewMockLoaderWithContent(content []byte) *MockLoader {
	m := new(MockLoader)
	m.On("GetReader").Return(func() io.ReadCloser {
		return io.NopCloser(bytes.NewReader(content))
	}, nil).Maybe()
	m.On("GetSourceURL").Return(&url.URL{Scheme: "mock", Host: "content"}).Maybe()
	return m
}
