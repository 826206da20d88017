package parse

type parseOpts struct {
	parser      Parser
	noReconcile bool
}

type ParseOption func(*parseOpts)

// ParseWith injects a backing parser for this call only, bypassing
// the registered process-wide parser.
func ParseWith(p Parser) ParseOption {
	return func(o *parseOpts) { o.parser = p }
}

// NoReconcile leaves decoded sequence nests as sequences instead of
// collapsing uniform numeric ones into dense arrays.
func NoReconcile() ParseOption {
	return func(o *parseOpts) { o.noReconcile = true }
}
