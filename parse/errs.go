package parse

import "errors"

var (
	// ErrParse wraps failures from the backing parser and malformed
	// node trees.
	ErrParse = errors.New("parse error")

	// ErrIntegerRange is reported for integer scalars beyond the
	// unsigned 64-bit domain, which the native model cannot hold.
	ErrIntegerRange = errors.New("integer out of range")
)
