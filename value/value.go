package value

import (
	"fmt"
	"time"
)

// Value is the native representation of a document: a closed tagged
// variant over scalars, dense arrays, ordered sequences and
// insertion-ordered string-keyed mappings. Which of the payload
// fields is meaningful is determined by Type.
type Value struct {
	Type Type

	Bool    bool
	Int64   int64
	Uint64  uint64
	Float64 float64
	String  string
	Time    time.Time

	// Shape holds the dimensions of an ArrayType value, outermost
	// first, 1 <= len(Shape) <= 3. Elems is the row-major flat
	// element list for arrays and the ordered element list for
	// sequences.
	Shape []int
	Elems []*Value

	// Fields and Values hold a MapType value's keys and values in
	// insertion order. len(Fields) == len(Values).
	Fields []string
	Values []*Value
}

func Null() *Value {
	return &Value{Type: NullType}
}

func FromBool(v bool) *Value {
	return &Value{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Value {
	return &Value{Type: IntType, Int64: v}
}

func FromUint(v uint64) *Value {
	return &Value{Type: UintType, Uint64: v}
}

func FromFloat(v float64) *Value {
	return &Value{Type: FloatType, Float64: v}
}

func FromString(v string) *Value {
	return &Value{Type: StringType, String: v}
}

func FromTime(v time.Time) *Value {
	return &Value{Type: TimeType, Time: v}
}

func FromSlice(vs []*Value) *Value {
	res := &Value{Type: SeqType}
	res.Elems = make([]*Value, len(vs))
	copy(res.Elems, vs)
	return res
}

// KeyVal pairs a mapping key with its value.
type KeyVal struct {
	Key string
	Val *Value
}

// FromKeyVals builds an insertion-ordered mapping. Duplicate keys are
// a construction error, not an overwrite.
func FromKeyVals(kvs []KeyVal) (*Value, error) {
	res := &Value{Type: MapType}
	res.Fields = make([]string, 0, len(kvs))
	res.Values = make([]*Value, 0, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		if err := res.Set(kv.Key, kv.Val); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Set appends a field to a mapping, preserving insertion order.
func (v *Value) Set(key string, val *Value) error {
	if v.Type != MapType {
		return fmt.Errorf("cannot set field %q on %s", key, v.Type)
	}
	for _, f := range v.Fields {
		if f == key {
			return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
		}
	}
	v.Fields = append(v.Fields, key)
	v.Values = append(v.Values, val)
	return nil
}

// Get returns the value of field or nil if the field is absent or v
// is not a mapping.
func (v *Value) Get(field string) *Value {
	if v.Type != MapType {
		return nil
	}
	for i := range v.Fields {
		if v.Fields[i] == field {
			return v.Values[i]
		}
	}
	return nil
}

// ToMap materializes a mapping as a Go map, losing order.
func ToMap(v *Value) map[string]*Value {
	if v.Type != MapType {
		return nil
	}
	res := make(map[string]*Value, len(v.Fields))
	for i := range v.Fields {
		res[v.Fields[i]] = v.Values[i]
	}
	return res
}

// IsEmpty reports whether v is the canonical empty value: a sequence
// or array with no elements, or a zero Value. Empty is distinct from
// null.
func (v *Value) IsEmpty() bool {
	switch v.Type {
	case SeqType, ArrayType:
		return len(v.Elems) == 0
	}
	return false
}

func (v *Value) Clone() *Value {
	res := &Value{}
	v.CloneTo(res)
	return res
}

func (v *Value) CloneTo(dst *Value) *Value {
	dst.Type = v.Type
	dst.Bool = v.Bool
	dst.Int64 = v.Int64
	dst.Uint64 = v.Uint64
	dst.Float64 = v.Float64
	dst.String = v.String
	dst.Time = v.Time
	if v.Shape != nil {
		dst.Shape = make([]int, len(v.Shape))
		copy(dst.Shape, v.Shape)
	}
	if v.Elems != nil {
		dst.Elems = make([]*Value, len(v.Elems))
		for i, e := range v.Elems {
			dst.Elems[i] = e.Clone()
		}
	}
	if v.Fields != nil {
		dst.Fields = make([]string, len(v.Fields))
		copy(dst.Fields, v.Fields)
		dst.Values = make([]*Value, len(v.Values))
		for i, e := range v.Values {
			dst.Values[i] = e.Clone()
		}
	}
	return dst
}

// Visit walks v depth first, calling f before and after children.
func (v *Value) Visit(f func(v *Value, isPost bool) (bool, error)) error {
	dive, err := f(v, false)
	if err != nil {
		return err
	}
	if dive {
		for _, e := range v.Elems {
			if err := e.Visit(f); err != nil {
				return err
			}
		}
		for _, e := range v.Values {
			if err := e.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(v, true); err != nil {
		return err
	}
	return nil
}
