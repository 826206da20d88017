package parse

import (
	"github.com/matform/yamlmat/debug"
	"github.com/matform/yamlmat/value"
)

// Parse decodes a YAML document into a native value: text to generic
// node tree via the backing parser, node tree to native value via tag
// resolution, then shape reconciliation of uniform numeric sequence
// nests into dense arrays.
func Parse(d []byte, opts ...ParseOption) (*value.Value, error) {
	pOpts := &parseOpts{}
	for _, opt := range opts {
		opt(pOpts)
	}
	p := pOpts.parser
	if p == nil {
		p = ensureParser()
	}
	node, err := p.Parse(d)
	if err != nil {
		return nil, err
	}
	v, err := convert(node)
	if err != nil {
		return nil, err
	}
	if pOpts.noReconcile {
		return v, nil
	}
	rec := reconcile(v)
	if debug.Parse() {
		debug.Logf("parsed %d bytes to %s value\n", len(d), rec.Type)
	}
	return rec, nil
}
