// Package libdiff renders line diffs between the canonical YAML
// forms of two native values.
package libdiff

import (
	"strings"

	"github.com/matform/yamlmat/encode"
	"github.com/matform/yamlmat/value"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Documents diffs the block-style renderings of from and to, line by
// line, returning unified-ish text with -/+ prefixes. Identical
// documents yield the empty string.
func Documents(from, to *value.Value) (string, error) {
	fd, err := encode.Dump(from, encode.EncodeStyle(encode.StyleBlock))
	if err != nil {
		return "", err
	}
	td, err := encode.Dump(to, encode.EncodeStyle(encode.StyleBlock))
	if err != nil {
		return "", err
	}
	diffs := Lines(string(fd), string(td))
	changed := false
	var b strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
			changed = true
		case diffpatch.DiffInsert:
			prefix = "+ "
			changed = true
		}
		for _, ln := range splitLines(d.Text) {
			b.WriteString(prefix)
			b.WriteString(ln)
			b.WriteByte('\n')
		}
	}
	if !changed {
		return "", nil
	}
	return b.String(), nil
}

// Lines computes a line-granularity diff of two texts.
func Lines(from, to string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	return diffCfg.DiffCharsToLines(diffs, lines)
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
