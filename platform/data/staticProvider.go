package data

import (
	"context"
	"errors"
	"maps"
)

// ErrStaticProviderNoRuntimeUpdates is returned when adding data to a StaticProvider.
var ErrStaticProviderNoRuntimeUpdates = errors.New("static provider does not support runtime updates")

// StaticProvider returns the same data for every evaluation. It holds the data
// given when an evaluator is built, such as constants shared by every call.
type StaticProvider struct {
	data map[string]any
}

// NewStaticProvider creates a StaticProvider. The map is copied and its
// ::-joined keys are expanded into nested maps.
func NewStaticProvider(data map[string]any) *StaticProvider {
	return &StaticProvider{data: Expand(data)}
}

// GetData returns a copy of the static data regardless of ctx.
func (p *StaticProvider) GetData(ctx context.Context) (map[string]any, error) {
	return maps.Clone(p.data), nil
}

// AddDataToContext always fails; use a ContextProvider for per-call data.
func (p *StaticProvider) AddDataToContext(
	ctx context.Context,
	data ...map[string]any,
) (context.Context, error) {
	return ctx, ErrStaticProviderNoRuntimeUpdates
}
