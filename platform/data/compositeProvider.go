package data

import (
	"context"
	"errors"
	"fmt"
	"maps"
)

// CompositeProvider queries several providers; later providers override
// values from earlier ones.
type CompositeProvider struct {
	providers []Provider
}

// NewCompositeProvider creates a provider over the given providers, in order.
func NewCompositeProvider(providers ...Provider) *CompositeProvider {
	return &CompositeProvider{
		providers: providers,
	}
}

// GetData deep-merges the data of every provider after expanding ::-joined
// keys, so a later {"user::age": 31} overrides only that field of an earlier
// "user" map. Nested maps merge; any other value is replaced. The first
// provider error is returned.
func (p *CompositeProvider) GetData(ctx context.Context) (map[string]any, error) {
	result := make(map[string]any)
	for i, provider := range p.providers {
		if provider == nil {
			continue
		}

		d, err := provider.GetData(ctx)
		if err != nil {
			return nil, fmt.Errorf("error from provider %d: %w", i, err)
		}
		result = deepMerge(result, Expand(d))
	}
	return result, nil
}

func deepMerge(base, over map[string]any) map[string]any {
	result := maps.Clone(base)
	for k, ov := range over {
		bm, baseIsMap := result[k].(map[string]any)
		om, overIsMap := ov.(map[string]any)
		if baseIsMap && overIsMap {
			result[k] = deepMerge(bm, om)
			continue
		}
		result[k] = ov
	}
	return result
}

// AddDataToContext offers the data to every provider. Static providers refuse
// it, which is not an error unless every provider is static. Otherwise an
// error is returned only when every non-static provider failed.
func (p *CompositeProvider) AddDataToContext(
	ctx context.Context,
	data ...map[string]any,
) (context.Context, error) {
	finalCtx := ctx
	var errs, staticErrs []error
	dynamic, succeeded := 0, 0

	for i, provider := range p.providers {
		if provider == nil {
			continue
		}

		_, isStatic := provider.(*StaticProvider)
		if !isStatic {
			dynamic++
		}

		nextCtx, err := provider.AddDataToContext(finalCtx, data...)
		if err != nil {
			if isStatic && errors.Is(err, ErrStaticProviderNoRuntimeUpdates) {
				staticErrs = append(staticErrs, fmt.Errorf("error from provider %d: %w", i, err))
				continue
			}
			errs = append(errs, fmt.Errorf("error from provider %d: %w", i, err))
			continue
		}
		finalCtx = nextCtx
		succeeded++
	}

	if dynamic == 0 && len(staticErrs) > 0 {
		return ctx, errors.Join(staticErrs...)
	}
	if dynamic > 0 && succeeded == 0 && len(errs) > 0 {
		return ctx, errors.Join(errs...)
	}
	return finalCtx, nil
}
