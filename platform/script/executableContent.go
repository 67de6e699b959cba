package script

// ExecutableContent is compiled source ready to evaluate.
type ExecutableContent interface {
	// GetSource returns the source text the content was compiled from.
	GetSource() string

	// GetByteCode returns the compiled form. The evaluator asserts it to the
	// type its compiler produces and fails if it is anything else.
	GetByteCode() any
}
