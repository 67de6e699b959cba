package data

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
)

// AddDataToContextHelper stores d through provider for an evaluator's Setter.
// The ::-joined names the data binds are logged at debug level, and a failure
// names them too, so a bad call can be matched to the names an expression
// reads.
func AddDataToContextHelper(
	ctx context.Context,
	logger *slog.Logger,
	provider Provider,
	d ...map[string]any,
) (context.Context, error) {
	if logger == nil {
		logger = slog.Default()
	}
	paths := bindingPaths(d)

	if provider == nil {
		logger.WarnContext(ctx, "no data provider available for context preparation", "paths", paths)
		return ctx, fmt.Errorf("no data provider available")
	}

	logger.DebugContext(ctx, "adding data to context", "paths", paths)
	enrichedCtx, err := provider.AddDataToContext(ctx, d...)
	if err != nil {
		return ctx, fmt.Errorf("failed to prepare context for %v: %w", paths, err)
	}
	return enrichedCtx, nil
}

// bindingPaths lists the sorted, distinct names d would bind.
func bindingPaths(d []map[string]any) []string {
	seen := make(map[string]struct{})
	for _, m := range d {
		for k := range Flatten(Expand(m)) {
			seen[k] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}
