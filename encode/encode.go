package encode

import (
	"fmt"
	"io"

	"github.com/matform/yamlmat/debug"
	"github.com/matform/yamlmat/value"
)

// Dump converts a native value to YAML text. The style argument is
// validated before conversion begins; conversion errors propagate
// with their original classification and no partial output is ever
// returned.
func Dump(v *value.Value, opts ...EncodeOption) ([]byte, error) {
	es := &encState{}
	for _, opt := range opts {
		opt(es)
	}
	if !es.style.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStyle, int(es.style))
	}
	node, err := Convert(v)
	if err != nil {
		return nil, err
	}
	e := es.emitter
	if e == nil {
		e = ensureEmitter()
	}
	out, err := e.Emit(node, es.style)
	if err != nil {
		return nil, err
	}
	if debug.Encode() {
		debug.Logf("encoded %s value as %d bytes of %s yaml\n", v.Type, len(out), es.style)
	}
	return out, nil
}

// Encode writes the YAML rendering of v to w.
func Encode(v *value.Value, w io.Writer, opts ...EncodeOption) error {
	out, err := Dump(v, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
