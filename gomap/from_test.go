package gomap

import (
	"testing"
	"time"

	"github.com/matform/yamlmat/value"

	"github.com/google/go-cmp/cmp"
)

func mustKeyVals(t *testing.T, kvs []value.KeyVal) *value.Value {
	t.Helper()
	m, err := value.FromKeyVals(kvs)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestFromValueScalars(t *testing.T) {
	var s string
	if err := FromValue(value.FromString("hi"), &s); err != nil {
		t.Fatal(err)
	}
	if s != "hi" {
		t.Errorf("s = %q", s)
	}

	var i int32
	if err := FromValue(value.FromInt(7), &i); err != nil {
		t.Fatal(err)
	}
	if i != 7 {
		t.Errorf("i = %d", i)
	}

	var f float64
	if err := FromValue(value.FromInt(3), &f); err != nil {
		t.Fatal(err)
	}
	if f != 3 {
		t.Errorf("f = %v", f)
	}

	var b bool
	if err := FromValue(value.FromBool(true), &b); err != nil {
		t.Fatal(err)
	}
	if !b {
		t.Error("b = false")
	}
}

func TestFromValueOverflow(t *testing.T) {
	var i8 int8
	if err := FromValue(value.FromInt(300), &i8); err == nil {
		t.Error("expected overflow error for int8")
	}
	var i64 int64
	if err := FromValue(value.FromUint(18446744073709551615), &i64); err == nil {
		t.Error("expected overflow error for int64")
	}
	var u uint
	if err := FromValue(value.FromInt(-1), &u); err == nil {
		t.Error("expected error storing negative in unsigned")
	}
}

func TestFromValueNullPointer(t *testing.T) {
	x := 5
	p := &x
	if err := FromValue(value.Null(), &p); err != nil {
		t.Fatal(err)
	}
	if p != nil {
		t.Errorf("p = %v, want nil", p)
	}
}

func TestFromValueBadDestination(t *testing.T) {
	if err := FromValue(value.Null(), nil); err == nil {
		t.Error("expected error for nil destination")
	}
	var s string
	if err := FromValue(value.FromString("x"), s); err == nil {
		t.Error("expected error for non-pointer destination")
	}
}

func TestFromValueSlice(t *testing.T) {
	seq := value.FromSlice([]*value.Value{
		value.FromString("a"),
		value.FromString("b"),
	})
	var got []string
	if err := FromValue(seq, &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("got %v", got)
	}
}

func TestFromValueMultiDimArray(t *testing.T) {
	arr, err := value.FromArray([]int{2, 3}, []*value.Value{
		value.FromInt(0), value.FromInt(1), value.FromInt(2),
		value.FromInt(3), value.FromInt(4), value.FromInt(5),
	})
	if err != nil {
		t.Fatal(err)
	}
	var got [][]int64
	if err := FromValue(arr, &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || len(got[0]) != 3 {
		t.Fatalf("got %v", got)
	}
	if got[1][0] != 3 || got[1][2] != 5 {
		t.Errorf("got %v", got)
	}
}

func TestFromValueStruct(t *testing.T) {
	m := mustKeyVals(t, []value.KeyVal{
		{Key: "Name", Val: value.FromString("Ada")},
		{Key: "Age", Val: value.FromInt(36)},
		{Key: "email_address", Val: value.FromString("ada@example.com")},
		{Key: "unknown", Val: value.FromInt(1)},
	})
	var p person
	if err := FromValue(m, &p); err != nil {
		t.Fatal(err)
	}
	if p.Name != "Ada" || p.Age != 36 || p.Email != "ada@example.com" {
		t.Errorf("got %+v", p)
	}
}

func TestFromValueEmbedded(t *testing.T) {
	m := mustKeyVals(t, []value.KeyVal{
		{Key: "ID", Val: value.FromInt(9)},
		{Key: "Name", Val: value.FromString("d")},
	})
	var d derived
	if err := FromValue(m, &d); err != nil {
		t.Fatal(err)
	}
	if d.ID != 9 || d.Name != "d" {
		t.Errorf("got %+v", d)
	}
}

func TestFromValueTimeFromString(t *testing.T) {
	var ts time.Time
	if err := FromValue(value.FromString("2024-03-04T05:06:07.890"), &ts); err != nil {
		t.Fatal(err)
	}
	want := time.Date(2024, 3, 4, 5, 6, 7, 890000000, time.UTC)
	if !ts.Equal(want) {
		t.Errorf("got %v, want %v", ts, want)
	}
	if err := FromValue(value.FromString("not a time"), &ts); err == nil {
		t.Error("expected parse error")
	}
}

func TestRoundTripStruct(t *testing.T) {
	in := person{
		Name:    "Grace",
		Age:     45,
		Email:   "grace@example.com",
		Address: address{Street: "1 Main", City: "York"},
	}
	v, err := ToValue(in)
	if err != nil {
		t.Fatal(err)
	}
	var out person
	if err := FromValue(v, &out); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("round trip: got %+v, want %+v", out, in)
	}
}

func TestToAny(t *testing.T) {
	m := mustKeyVals(t, []value.KeyVal{
		{Key: "n", Val: value.FromInt(1)},
		{Key: "xs", Val: value.FromFloats([]float64{1, 2})},
		{Key: "none", Val: value.Null()},
	})
	want := map[string]any{
		"n":    int64(1),
		"xs":   []any{float64(1), float64(2)},
		"none": nil,
	}
	if d := cmp.Diff(want, ToAny(m)); d != "" {
		t.Errorf("ToAny mismatch (-want +got):\n%s", d)
	}
}

func TestFromValueInterface(t *testing.T) {
	var v any = "stale"
	if err := FromValue(value.Null(), &v); err != nil {
		t.Fatal(err)
	}
	if v != nil {
		t.Errorf("v = %v, want nil", v)
	}
	if err := FromValue(value.FromInt(4), &v); err != nil {
		t.Fatal(err)
	}
	if v != int64(4) {
		t.Errorf("v = %v", v)
	}
}
