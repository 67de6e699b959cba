package data

import (
	"context"

	"github.com/stretchr/testify/mock"
)

var (
	simpleData = map[string]any{
		"name":  "value",
		"limit": 42,
		"debug": true,
	}

	complexData = map[string]any{
		"name":  "value",
		"limit": 42,
		"user": map[string]any{
			"age":   30,
			"roles": []string{"admin", "dev"},
		},
	}
)

// MockProvider is a testify mock implementation of Provider.
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) GetData(ctx context.Context) (map[string]any, error) {
	args := m.Called(ctx)
	d, _ := args.Get(0).(map[string]any)
	return d, args.Error(1)
}

func (m *MockProvider) AddDataToContext(ctx context.Context, d ...map[string]any) (context.Context, error) {
	args := m.Called(ctx, d)
	newCtx, _ := args.Get(0).(context.Context)
	return newCtx, args.Error(1)
}
