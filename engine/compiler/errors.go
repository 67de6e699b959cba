package compiler

import "errors"

var (
	ErrContentNil       = errors.New("content is nil")
	ErrValidationFailed = errors.New("expression validation error")
	ErrUnknownName      = errors.New("expression refers to an unknown name")
)
