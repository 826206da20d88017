package encode

import (
	"fmt"

	"github.com/matform/yamlmat/value"
)

// normalize canonicalizes dimensional arrays into the shapes the node
// tree can carry. Vectors pass through; a 2-D array becomes a
// sequence of its rows, a 3-D array a sequence of its 2-D pages with
// the split dimension squeezed out. The split always occurs on the
// outermost dimension, so nesting order matches row/page iteration
// order. Dimensionality above value.MaxDims fails fast.
func normalize(v *value.Value) (*value.Value, error) {
	if v.Type != value.ArrayType {
		return v, nil
	}
	nd := len(v.Shape)
	switch {
	case nd > value.MaxDims:
		return nil, fmt.Errorf("%w: got %d dimensions", value.ErrHigherDimensions, nd)
	case nd <= 1:
		return v, nil
	}
	slices := make([]*value.Value, v.Shape[0])
	for i := range slices {
		s, err := v.Slice(i)
		if err != nil {
			return nil, err
		}
		s, err = normalize(s)
		if err != nil {
			return nil, err
		}
		slices[i] = s
	}
	return value.FromSlice(slices), nil
}
