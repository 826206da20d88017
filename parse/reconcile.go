package parse

import (
	"slices"

	"github.com/matform/yamlmat/debug"
	"github.com/matform/yamlmat/value"
)

// reconcile collapses sequence nests back into dense arrays where the
// elements are uniform and numeric: a sequence of numeric scalars
// becomes a 1-D array, a sequence of equally-shaped arrays gains a
// leading dimension, up to value.MaxDims. Anything else stays an
// ordered sequence. The walk is bottom up so inner rows merge before
// outer pages.
func reconcile(v *value.Value) *value.Value {
	switch v.Type {
	case value.SeqType:
		for i, e := range v.Elems {
			v.Elems[i] = reconcile(e)
		}
		return reconcileSeq(v)
	case value.MapType:
		for i, e := range v.Values {
			v.Values[i] = reconcile(e)
		}
	}
	return v
}

func reconcileSeq(v *value.Value) *value.Value {
	if len(v.Elems) == 0 {
		return v
	}
	if allNumeric(v.Elems) {
		arr, err := value.FromArray([]int{len(v.Elems)}, v.Elems)
		if err != nil {
			return v
		}
		return arr
	}
	sub := v.Elems[0]
	if sub.Type != value.ArrayType {
		return v
	}
	if len(sub.Shape)+1 > value.MaxDims {
		return v
	}
	for _, e := range v.Elems[1:] {
		if e.Type != value.ArrayType || !slices.Equal(e.Shape, sub.Shape) {
			return v
		}
	}
	shape := append([]int{len(v.Elems)}, sub.Shape...)
	elems := make([]*value.Value, 0, len(v.Elems)*len(sub.Elems))
	for _, e := range v.Elems {
		elems = append(elems, e.Elems...)
	}
	arr, err := value.FromArray(shape, elems)
	if err != nil {
		return v
	}
	if debug.Reconcile() {
		debug.Logf("reconciled %d-element sequence into array shape %v\n",
			len(v.Elems), shape)
	}
	return arr
}

func allNumeric(elems []*value.Value) bool {
	for _, e := range elems {
		if !e.Type.IsNumeric() {
			return false
		}
	}
	return true
}
