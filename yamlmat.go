package yamlmat

import (
	"fmt"
	"os"

	"github.com/matform/yamlmat/encode"
	"github.com/matform/yamlmat/parse"
	"github.com/matform/yamlmat/value"
)

// Dump renders a native value as YAML text. The style argument must
// be one of "auto", "block" or "flow" and is validated before any
// conversion begins.
func Dump(v *value.Value, style string) ([]byte, error) {
	s, err := encode.ParseStyle(style)
	if err != nil {
		return nil, err
	}
	return encode.Dump(v, encode.EncodeStyle(s))
}

// Load decodes YAML text into a native value.
func Load(d []byte) (*value.Value, error) {
	return parse.Parse(d)
}

// DumpFile writes the YAML rendering of v to path.
func DumpFile(path string, v *value.Value, style string) error {
	out, err := Dump(v, style)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	return nil
}

// LoadFile decodes the YAML document at path into a native value.
func LoadFile(path string) (*value.Value, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	return parse.Parse(d)
}
