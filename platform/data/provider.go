package data

import (
	"context"
)

// Getter retrieves the data an evaluation binds into its scope.
type Getter interface {
	GetData(ctx context.Context) (map[string]any, error)
}

// Setter prepares data for evaluation by enriching a context.
type Setter interface {
	// AddDataToContext stores data in the returned context. Each top-level key
	// becomes a binding name during evaluation; nested maps become ::-paths,
	// so {"user": {"age": 30}} is read as user::age.
	//
	// Example:
	//  ctx, err := evaluator.AddDataToContext(ctx, map[string]any{"limit": 10})
	//  if err != nil {
	//      return err
	//  }
	//  result, err := evaluator.Eval(ctx)
	AddDataToContext(ctx context.Context, data ...map[string]any) (context.Context, error)
}

// Provider is both a Getter and a Setter.
type Provider interface {
	Getter
	Setter
}
