package value

import (
	"errors"
	"testing"
	"time"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		input    *Value
		wantType Type
		check    func(*testing.T, *Value)
	}{
		{
			name:     "null",
			input:    Null(),
			wantType: NullType,
		},
		{
			name:     "bool",
			input:    FromBool(true),
			wantType: BoolType,
			check: func(t *testing.T, v *Value) {
				if !v.Bool {
					t.Errorf("expected true")
				}
			},
		},
		{
			name:     "int",
			input:    FromInt(-42),
			wantType: IntType,
			check: func(t *testing.T, v *Value) {
				if v.Int64 != -42 {
					t.Errorf("expected -42, got %d", v.Int64)
				}
			},
		},
		{
			name:     "uint",
			input:    FromUint(18446744073709551615),
			wantType: UintType,
			check: func(t *testing.T, v *Value) {
				if v.Uint64 != 18446744073709551615 {
					t.Errorf("expected max uint64, got %d", v.Uint64)
				}
			},
		},
		{
			name:     "float",
			input:    FromFloat(3.14),
			wantType: FloatType,
			check: func(t *testing.T, v *Value) {
				if v.Float64 != 3.14 {
					t.Errorf("expected 3.14, got %v", v.Float64)
				}
			},
		},
		{
			name:     "string",
			input:    FromString("hello"),
			wantType: StringType,
			check: func(t *testing.T, v *Value) {
				if v.String != "hello" {
					t.Errorf("expected %q, got %q", "hello", v.String)
				}
			},
		},
		{
			name:     "time",
			input:    FromTime(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)),
			wantType: TimeType,
		},
		{
			name:     "seq",
			input:    FromSlice([]*Value{FromInt(1), FromString("x")}),
			wantType: SeqType,
			check: func(t *testing.T, v *Value) {
				if len(v.Elems) != 2 {
					t.Errorf("expected 2 elems, got %d", len(v.Elems))
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.input.Type != tt.wantType {
				t.Fatalf("type = %v, want %v", tt.input.Type, tt.wantType)
			}
			if tt.check != nil {
				tt.check(t, tt.input)
			}
		})
	}
}

func TestFromKeyValsOrder(t *testing.T) {
	m, err := FromKeyVals([]KeyVal{
		{Key: "zebra", Val: FromInt(1)},
		{Key: "apple", Val: FromInt(2)},
		{Key: "mango", Val: FromInt(3)},
	})
	if err != nil {
		t.Fatalf("FromKeyVals() error = %v", err)
	}
	want := []string{"zebra", "apple", "mango"}
	for i, f := range m.Fields {
		if f != want[i] {
			t.Errorf("field %d = %q, want %q", i, f, want[i])
		}
	}
	if got := m.Get("apple"); got == nil || got.Int64 != 2 {
		t.Errorf("Get(apple) = %v", got)
	}
	if got := m.Get("absent"); got != nil {
		t.Errorf("Get(absent) = %v, want nil", got)
	}
}

func TestFromKeyValsDuplicate(t *testing.T) {
	_, err := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "a", Val: FromInt(2)},
	})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestIsEmpty(t *testing.T) {
	if !FromSlice(nil).IsEmpty() {
		t.Error("empty seq should be empty")
	}
	if FromSlice([]*Value{Null()}).IsEmpty() {
		t.Error("1-elem seq should not be empty")
	}
	if Null().IsEmpty() {
		t.Error("null is distinct from empty")
	}
}

func TestCloneDeep(t *testing.T) {
	m, err := FromKeyVals([]KeyVal{
		{Key: "xs", Val: FromSlice([]*Value{FromInt(1), FromInt(2)})},
	})
	if err != nil {
		t.Fatal(err)
	}
	c := m.Clone()
	if !Equal(m, c) {
		t.Fatal("clone should equal original")
	}
	c.Values[0].Elems[0].Int64 = 99
	if Equal(m, c) {
		t.Fatal("mutating clone should not affect original")
	}
}

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error = %v", typ, err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("UnmarshalText(%s) error = %v", d, err)
		}
		if back != typ {
			t.Errorf("round trip %v != %v", back, typ)
		}
	}
	var bad Type
	if err := bad.UnmarshalText([]byte("Nope")); err == nil {
		t.Error("expected error for unknown type text")
	}
}
