package value

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	IntType
	UintType
	FloatType
	StringType
	TimeType
	ArrayType
	SeqType
	MapType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:   "Null",
		BoolType:   "Bool",
		IntType:    "Int",
		UintType:   "Uint",
		FloatType:  "Float",
		StringType: "String",
		TimeType:   "Time",
		ArrayType:  "Array",
		SeqType:    "Seq",
		MapType:    "Map",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":   NullType,
		"Bool":   BoolType,
		"Int":    IntType,
		"Uint":   UintType,
		"Float":  FloatType,
		"String": StringType,
		"Time":   TimeType,
		"Array":  ArrayType,
		"Seq":    SeqType,
		"Map":    MapType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		IntType,
		UintType,
		FloatType,
		StringType,
		TimeType,
		ArrayType,
		SeqType,
		MapType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, SeqType, MapType:
		return false
	default:
		return true
	}
}

// IsNumeric reports whether t is one of the scalar numeric types.
func (t Type) IsNumeric() bool {
	switch t {
	case IntType, UintType, FloatType:
		return true
	default:
		return false
	}
}
