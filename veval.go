// Package veval evaluates small expressions over named bindings.
//
// An expression is compiled once and evaluated any number of times. Each
// evaluation binds the data of its context and any static data as names the
// expression can use; nested maps are reached with ::-paths.
//
//	e, err := veval.FromString(`user::age >= min_age`, options.WithStaticData(map[string]any{"min_age": 18}))
//	ctx, err := e.AddDataToContext(ctx, map[string]any{"user": map[string]any{"age": 30}})
//	result, err := e.Eval(ctx)
package veval

import (
	"fmt"
	"path/filepath"

	"github.com/robbyt/go-veval/engine"
	"github.com/robbyt/go-veval/engine/compiler"
	"github.com/robbyt/go-veval/engine/evaluator"
	"github.com/robbyt/go-veval/options"
	"github.com/robbyt/go-veval/platform/script/loader"
	"github.com/robbyt/go-veval/scope"
	"github.com/robbyt/go-veval/value"
)

// NewEvaluator builds an evaluator from options. options.WithLoader is required.
func NewEvaluator(opts ...options.Option) (*evaluator.Evaluator, error) {
	cfg := options.DefaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}
	if err := options.WithDefaults()(cfg); err != nil {
		return nil, fmt.Errorf("error applying defaults: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var compilerOpts []compiler.FunctionalOption
	if names := cfg.GetKnownNames(); names != nil {
		compilerOpts = append(compilerOpts, compiler.WithKnownNames(names...))
	}

	return engine.NewEvaluator(
		cfg.GetHandler(),
		cfg.GetLoader(),
		cfg.GetDataProvider(),
		cfg.GetScope(),
		compilerOpts...,
	)
}

func fromLoader(l loader.Loader, err error, opts []options.Option) (*evaluator.Evaluator, error) {
	if err != nil {
		return nil, err
	}
	return NewEvaluator(append([]options.Option{options.WithLoader(l)}, opts...)...)
}

// FromString builds an evaluator for the expression src.
func FromString(src string, opts ...options.Option) (*evaluator.Evaluator, error) {
	l, err := loader.NewFromString(src)
	return fromLoader(l, err, opts)
}

// FromStringWithData builds an evaluator for src with static data bound on
// every evaluation.
func FromStringWithData(src string, staticData map[string]any, opts ...options.Option) (*evaluator.Evaluator, error) {
	return FromString(src, append([]options.Option{options.WithStaticData(staticData)}, opts...)...)
}

// FromFile builds an evaluator for the expression stored at path. A relative
// path is resolved against the working directory.
func FromFile(path string, opts ...options.Option) (*evaluator.Evaluator, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %q: %w", path, err)
	}
	l, err := loader.NewFromDisk(abs)
	return fromLoader(l, err, opts)
}

// FromHTTP builds an evaluator for the expression served at rawURL. The
// expression is fetched once, when the evaluator is built.
func FromHTTP(rawURL string, opts ...options.Option) (*evaluator.Evaluator, error) {
	l, err := loader.NewFromHTTP(rawURL)
	return fromLoader(l, err, opts)
}

// FromSource builds an evaluator for input, choosing the loader with
// loader.InferLoader: an http(s) or file URL, an absolute path, a []byte, an
// io.Reader, a loader.Loader, or the expression text itself.
func FromSource(input any, opts ...options.Option) (*evaluator.Evaluator, error) {
	l, err := loader.InferLoader(input)
	return fromLoader(l, err, opts)
}

// Eval evaluates src against s, or against no bindings when s is nil. It
// reports false for any failure; see scope.Context.TryEval for the reason.
func Eval(s *scope.Context, src string) (value.Value, bool) {
	if s == nil {
		s = scope.New()
	}
	return s.Eval(src)
}
