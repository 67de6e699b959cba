// Package constants holds the context keys shared by providers and evaluators.
package constants

// ContextKey is the type of context keys set by this module.
type ContextKey string

// EvalData is the context key a ContextProvider stores per-call bindings under.
const EvalData ContextKey = "eval_data"
