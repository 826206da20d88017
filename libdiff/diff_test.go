package libdiff

import (
	"strings"
	"testing"

	"github.com/matform/yamlmat/value"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func mapOf(t *testing.T, kvs ...value.KeyVal) *value.Value {
	t.Helper()
	m, err := value.FromKeyVals(kvs)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestDocumentsIdentical(t *testing.T) {
	a := mapOf(t,
		value.KeyVal{Key: "x", Val: value.FromInt(1)},
		value.KeyVal{Key: "y", Val: value.FromString("same")},
	)
	out, err := Documents(a, a.Clone())
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("identical documents produced %q", out)
	}
}

func TestDocumentsChanged(t *testing.T) {
	a := mapOf(t,
		value.KeyVal{Key: "x", Val: value.FromInt(1)},
		value.KeyVal{Key: "y", Val: value.FromString("old")},
	)
	b := mapOf(t,
		value.KeyVal{Key: "x", Val: value.FromInt(1)},
		value.KeyVal{Key: "y", Val: value.FromString("new")},
	)
	out, err := Documents(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "- y: old") {
		t.Errorf("missing deletion line in %q", out)
	}
	if !strings.Contains(out, "+ y: new") {
		t.Errorf("missing insertion line in %q", out)
	}
	if !strings.Contains(out, "  x: 1") {
		t.Errorf("missing context line in %q", out)
	}
}

func TestLines(t *testing.T) {
	diffs := Lines("a\nb\n", "a\nc\n")
	var sawDelete, sawInsert bool
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			sawDelete = true
		case diffpatch.DiffInsert:
			sawInsert = true
		}
	}
	if !sawDelete || !sawInsert {
		t.Errorf("diff ops missing delete/insert: %v", diffs)
	}
}
