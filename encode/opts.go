package encode

type encState struct {
	style   Style
	emitter Emitter
}

type EncodeOption func(*encState)

func EncodeStyle(s Style) EncodeOption {
	return func(es *encState) { es.style = s }
}

// EncodeWith injects a backing emitter for this call only, bypassing
// the registered process-wide emitter.
func EncodeWith(e Emitter) EncodeOption {
	return func(es *encState) { es.emitter = e }
}

// StyleFromOpts extracts the style from encode options.
func StyleFromOpts(opts ...EncodeOption) Style {
	es := &encState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.style
}
