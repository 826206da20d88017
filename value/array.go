package value

import "fmt"

// MaxDims is the highest array dimensionality the node tree can carry
// as nested sequences.
const MaxDims = 3

// FromArray builds a dense array value from a shape and a row-major
// flat element list. Elements must be scalar values; heterogeneous or
// nested content belongs in a sequence instead.
func FromArray(shape []int, elems []*Value) (*Value, error) {
	if len(shape) == 0 || len(shape) > MaxDims {
		return nil, fmt.Errorf("%w: got %d dimensions", ErrHigherDimensions, len(shape))
	}
	n := 1
	for _, d := range shape {
		if d < 0 {
			return nil, fmt.Errorf("%w: negative dimension %d", ErrBadShape, d)
		}
		n *= d
	}
	if n != len(elems) {
		return nil, fmt.Errorf("%w: shape %v holds %d elements, got %d",
			ErrBadShape, shape, n, len(elems))
	}
	res := &Value{Type: ArrayType}
	res.Shape = make([]int, len(shape))
	copy(res.Shape, shape)
	res.Elems = make([]*Value, len(elems))
	copy(res.Elems, elems)
	return res, nil
}

// FromFloats builds a 1-D float array.
func FromFloats(fs []float64) *Value {
	elems := make([]*Value, len(fs))
	for i, f := range fs {
		elems[i] = FromFloat(f)
	}
	v, _ := FromArray([]int{len(fs)}, elems)
	return v
}

// FromInts builds a 1-D int array.
func FromInts(is []int64) *Value {
	elems := make([]*Value, len(is))
	for i, n := range is {
		elems[i] = FromInt(n)
	}
	v, _ := FromArray([]int{len(is)}, elems)
	return v
}

// NDims returns the dimensionality of an array value, 0 otherwise.
func (v *Value) NDims() int {
	if v.Type != ArrayType {
		return 0
	}
	return len(v.Shape)
}

// Slice returns the i-th slice of v along its leading dimension, with
// that dimension squeezed out: rows of a 2-D array, 2-D pages of a
// 3-D array. The returned value aliases v's elements.
func (v *Value) Slice(i int) (*Value, error) {
	if v.Type != ArrayType {
		return nil, fmt.Errorf("cannot slice %s", v.Type)
	}
	nd := len(v.Shape)
	if nd < 2 {
		return nil, fmt.Errorf("cannot slice %d-dimensional array", nd)
	}
	if i < 0 || i >= v.Shape[0] {
		return nil, fmt.Errorf("slice index %d out of range [0,%d)", i, v.Shape[0])
	}
	stride := 1
	for _, d := range v.Shape[1:] {
		stride *= d
	}
	res := &Value{Type: ArrayType}
	res.Shape = make([]int, nd-1)
	copy(res.Shape, v.Shape[1:])
	res.Elems = v.Elems[i*stride : (i+1)*stride]
	return res, nil
}
