package parse

import (
	"fmt"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

// Parser turns YAML text into a generic node tree.
type Parser interface {
	Parse(d []byte) (*yaml.Node, error)
}

var parser atomic.Pointer[parserBox]

type parserBox struct {
	p Parser
}

// RegisterParser installs p as the process-wide parser if none has
// been registered yet and reports whether the registration took
// effect. Registration happens at most once.
func RegisterParser(p Parser) bool {
	return parser.CompareAndSwap(nil, &parserBox{p: p})
}

// ensureParser lazily registers the default backing parser with an
// atomic check-and-set, safe under concurrent callers.
func ensureParser() Parser {
	if box := parser.Load(); box != nil {
		return box.p
	}
	parser.CompareAndSwap(nil, &parserBox{p: yamlParser{}})
	return parser.Load().p
}

// yamlParser is the default backend, bound to gopkg.in/yaml.v3.
type yamlParser struct{}

func (yamlParser) Parse(d []byte) (*yaml.Node, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(d, &node); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return &node, nil
}
