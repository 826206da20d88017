package gomap

import (
	"testing"
	"time"

	"github.com/matform/yamlmat/value"
)

func TestToValueBasicTypes(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		wantType value.Type
		check    func(*testing.T, *value.Value)
	}{
		{
			name:     "nil",
			input:    nil,
			wantType: value.NullType,
		},
		{
			name:     "string",
			input:    "hello",
			wantType: value.StringType,
			check: func(t *testing.T, v *value.Value) {
				if v.String != "hello" {
					t.Errorf("got %q", v.String)
				}
			},
		},
		{
			name:     "int",
			input:    42,
			wantType: value.IntType,
			check: func(t *testing.T, v *value.Value) {
				if v.Int64 != 42 {
					t.Errorf("got %d", v.Int64)
				}
			},
		},
		{
			name:     "uint keeps unsigned slot",
			input:    uint64(18446744073709551615),
			wantType: value.UintType,
			check: func(t *testing.T, v *value.Value) {
				if v.Uint64 != 18446744073709551615 {
					t.Errorf("got %d", v.Uint64)
				}
			},
		},
		{
			name:     "float",
			input:    3.14,
			wantType: value.FloatType,
		},
		{
			name:     "bool",
			input:    true,
			wantType: value.BoolType,
		},
		{
			name:     "time",
			input:    time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC),
			wantType: value.TimeType,
		},
		{
			name:     "nil pointer",
			input:    (*int)(nil),
			wantType: value.NullType,
		},
		{
			name:     "numeric slice becomes array",
			input:    []float64{1, 2, 3},
			wantType: value.ArrayType,
			check: func(t *testing.T, v *value.Value) {
				if v.NDims() != 1 || v.Shape[0] != 3 {
					t.Errorf("shape = %v", v.Shape)
				}
			},
		},
		{
			name:     "string slice stays sequence",
			input:    []string{"a", "b"},
			wantType: value.SeqType,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ToValue(tt.input)
			if err != nil {
				t.Fatalf("ToValue() error = %v", err)
			}
			if v.Type != tt.wantType {
				t.Fatalf("type = %v, want %v", v.Type, tt.wantType)
			}
			if tt.check != nil {
				tt.check(t, v)
			}
		})
	}
}

type address struct {
	Street string
	City   string
}

type person struct {
	Name    string
	Age     int
	Email   string `yaml:"email_address"`
	Secret  string `yaml:"-"`
	Address address
}

func TestToValueStructFieldOrder(t *testing.T) {
	p := person{Name: "Ada", Age: 36, Email: "ada@example.com", Secret: "x"}
	v, err := ToValue(p)
	if err != nil {
		t.Fatalf("ToValue() error = %v", err)
	}
	if v.Type != value.MapType {
		t.Fatalf("type = %v", v.Type)
	}
	want := []string{"Name", "Age", "email_address", "Address"}
	if len(v.Fields) != len(want) {
		t.Fatalf("fields = %v, want %v", v.Fields, want)
	}
	for i := range want {
		if v.Fields[i] != want[i] {
			t.Errorf("field %d = %q, want %q", i, v.Fields[i], want[i])
		}
	}
}

type base struct {
	ID int
}

type derived struct {
	base
	Name string
}

func TestToValueEmbeddedFlattened(t *testing.T) {
	v, err := ToValue(derived{base: base{ID: 7}, Name: "x"})
	if err != nil {
		t.Fatal(err)
	}
	if got := v.Get("ID"); got == nil || got.Int64 != 7 {
		t.Errorf("embedded ID = %v", got)
	}
	if got := v.Get("Name"); got == nil || got.String != "x" {
		t.Errorf("Name = %v", got)
	}
}

func TestToValueMapSorted(t *testing.T) {
	v, err := ToValue(map[string]int{"b": 2, "a": 1, "c": 3})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "b", "c"}
	for i := range want {
		if v.Fields[i] != want[i] {
			t.Fatalf("fields = %v, want %v", v.Fields, want)
		}
	}
}

type node struct {
	Next *node
}

func TestToValueCycleDetected(t *testing.T) {
	n := &node{}
	n.Next = n
	_, err := ToValue(n)
	if err == nil {
		t.Fatal("expected circular reference error")
	}
	var me *MarshalError
	if !asMarshalError(err, &me) {
		t.Fatalf("expected *MarshalError, got %T", err)
	}
}

func asMarshalError(err error, target **MarshalError) bool {
	me, ok := err.(*MarshalError)
	if ok {
		*target = me
	}
	return ok
}

func TestToValueUnsupported(t *testing.T) {
	_, err := ToValue(make(chan int))
	if err == nil {
		t.Fatal("expected error for chan")
	}
}

func TestToValueMapNonStringKeys(t *testing.T) {
	_, err := ToValue(map[int]string{1: "a"})
	if err == nil {
		t.Fatal("expected error for int-keyed map")
	}
}
