package encode

import "fmt"

// Style selects the rendering of sequences and mappings in emitted
// YAML.
type Style int

const (
	// StyleAuto delegates the choice entirely to the backing
	// emitter's default heuristic.
	StyleAuto Style = iota
	// StyleBlock forces indented, dash/colon rendering.
	StyleBlock
	// StyleFlow forces inline, bracketed rendering.
	StyleFlow
)

func (s Style) String() string {
	switch s {
	case StyleAuto:
		return "auto"
	case StyleBlock:
		return "block"
	case StyleFlow:
		return "flow"
	}
	return "<unknown style>"
}

func (s Style) valid() bool {
	switch s {
	case StyleAuto, StyleBlock, StyleFlow:
		return true
	}
	return false
}

// ParseStyle maps a style name to a Style, case sensitively.
func ParseStyle(s string) (Style, error) {
	switch s {
	case "auto":
		return StyleAuto, nil
	case "block":
		return StyleBlock, nil
	case "flow":
		return StyleFlow, nil
	}
	return 0, fmt.Errorf("%w: %q (want auto, block or flow)", ErrInvalidStyle, s)
}

// Styles returns all valid styles.
func Styles() []Style {
	return []Style{StyleAuto, StyleBlock, StyleFlow}
}
