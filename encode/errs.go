package encode

import "errors"

var (
	// ErrTypeNotSupported is reported when no mapping rule exists for
	// the value type encountered.
	ErrTypeNotSupported = errors.New("type not supported")

	// ErrInvalidStyle is reported when a style argument is outside
	// {auto, block, flow}. Validated at the entry boundary, before any
	// conversion begins.
	ErrInvalidStyle = errors.New("invalid style")

	// ErrStyleSelection is reported when the backing emitter cannot
	// honor the requested flow style.
	ErrStyleSelection = errors.New("emitter cannot select flow style")
)
