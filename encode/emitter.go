package encode

import (
	"bytes"
	"fmt"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

// Emitter renders a generic node tree as YAML text in the requested
// style. Implementations that cannot honor a style must report
// ErrStyleSelection rather than silently falling back.
type Emitter interface {
	Emit(node *yaml.Node, style Style) ([]byte, error)
}

var emitter atomic.Pointer[emitterBox]

type emitterBox struct {
	e Emitter
}

// RegisterEmitter installs e as the process-wide emitter if none has
// been registered yet and reports whether the registration took
// effect. Registration happens at most once; repeated calls are safe
// and never replace an already-registered emitter.
func RegisterEmitter(e Emitter) bool {
	return emitter.CompareAndSwap(nil, &emitterBox{e: e})
}

// ensureEmitter lazily registers the default backing emitter with an
// atomic check-and-set, safe under concurrent callers.
func ensureEmitter() Emitter {
	if box := emitter.Load(); box != nil {
		return box.e
	}
	emitter.CompareAndSwap(nil, &emitterBox{e: yamlEmitter{}})
	return emitter.Load().e
}

// yamlEmitter is the default backend, bound to gopkg.in/yaml.v3.
type yamlEmitter struct{}

func (yamlEmitter) Emit(node *yaml.Node, style Style) ([]byte, error) {
	if !style.valid() {
		return nil, fmt.Errorf("%w: %s", ErrStyleSelection, style)
	}
	applyStyle(node, style)
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	// backend failures surface as-is, without reclassification
	if err := enc.Encode(node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// applyStyle maps the requested style onto yaml.v3's node style
// constants. Auto leaves the emitter's default heuristic untouched.
func applyStyle(node *yaml.Node, style Style) {
	if style == StyleAuto {
		return
	}
	if node.Kind == yaml.SequenceNode || node.Kind == yaml.MappingNode {
		if style == StyleFlow {
			node.Style = yaml.FlowStyle
		} else {
			node.Style = 0
		}
	}
	for _, c := range node.Content {
		applyStyle(c, style)
	}
}
