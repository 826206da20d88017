package value

import "errors"

var (
	// ErrDuplicateKey is reported when a mapping is constructed with
	// two identical keys. Duplicates never silently overwrite.
	ErrDuplicateKey = errors.New("duplicate mapping key")

	// ErrHigherDimensions is reported for arrays with more than three
	// dimensions. Callers must pre-flatten with nested sequences.
	ErrHigherDimensions = errors.New("arrays with more than 3 dimensions are not supported")

	// ErrBadShape is reported when an array shape does not match its
	// element count.
	ErrBadShape = errors.New("array shape does not match element count")
)
