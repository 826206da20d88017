package gomap

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/matform/yamlmat/value"
)

// FromValue converts a native value to a Go value. dst must be a
// non-nil pointer to the target.
func FromValue(node *value.Value, dst interface{}) error {
	if dst == nil {
		return &UnmarshalError{Message: "destination value cannot be nil"}
	}
	val := reflect.ValueOf(dst)
	if val.Kind() != reflect.Ptr {
		return &UnmarshalError{Message: "destination value must be a pointer"}
	}
	if val.IsNil() {
		return &UnmarshalError{Message: "destination pointer cannot be nil"}
	}
	return fromValue(node, val.Elem(), "")
}

func fromValue(node *value.Value, val reflect.Value, fieldPath string) error {
	if node == nil {
		return &UnmarshalError{FieldPath: fieldPath, Message: "value is nil"}
	}
	typ := val.Type()
	kind := typ.Kind()

	if kind == reflect.Ptr {
		if node.Type == value.NullType {
			val.Set(reflect.Zero(typ))
			return nil
		}
		if val.IsNil() {
			val.Set(reflect.New(typ.Elem()))
		}
		return fromValue(node, val.Elem(), fieldPath)
	}

	if typ == timeType {
		return fromValueTime(node, val, fieldPath)
	}

	if node.Type == value.StringType && val.CanAddr() {
		if tu, ok := val.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return tu.UnmarshalText([]byte(node.String))
		}
	}

	switch kind {
	case reflect.String:
		if node.Type != value.StringType {
			return typeErr(fieldPath, "string", node)
		}
		val.SetString(node.String)
		return nil

	case reflect.Bool:
		if node.Type != value.BoolType {
			return typeErr(fieldPath, "bool", node)
		}
		val.SetBool(node.Bool)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := intFromValue(node, fieldPath)
		if err != nil {
			return err
		}
		if val.OverflowInt(i) {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("%d overflows %s", i, typ),
			}
		}
		val.SetInt(i)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := uintFromValue(node, fieldPath)
		if err != nil {
			return err
		}
		if val.OverflowUint(u) {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("%d overflows %s", u, typ),
			}
		}
		val.SetUint(u)
		return nil

	case reflect.Float32, reflect.Float64:
		switch node.Type {
		case value.FloatType:
			val.SetFloat(node.Float64)
		case value.IntType:
			val.SetFloat(float64(node.Int64))
		case value.UintType:
			val.SetFloat(float64(node.Uint64))
		default:
			return typeErr(fieldPath, "float", node)
		}
		return nil

	case reflect.Slice:
		return fromValueSlice(node, val, fieldPath)

	case reflect.Map:
		return fromValueMap(node, val, fieldPath)

	case reflect.Struct:
		return fromValueStruct(node, val, fieldPath)

	case reflect.Interface:
		if typ.NumMethod() != 0 {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("cannot unmarshal into non-empty interface %s", typ),
			}
		}
		if node.Type == value.NullType {
			val.Set(reflect.Zero(typ))
			return nil
		}
		val.Set(reflect.ValueOf(ToAny(node)))
		return nil

	default:
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported destination type: %s", typ),
		}
	}
}

func typeErr(fieldPath, want string, node *value.Value) error {
	return &UnmarshalError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("expected %s, got %s", want, node.Type),
	}
}

func intFromValue(node *value.Value, fieldPath string) (int64, error) {
	switch node.Type {
	case value.IntType:
		return node.Int64, nil
	case value.UintType:
		if node.Uint64 > math.MaxInt64 {
			return 0, &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("%d overflows int64", node.Uint64),
			}
		}
		return int64(node.Uint64), nil
	case value.FloatType:
		i := int64(node.Float64)
		if float64(i) != node.Float64 {
			return 0, &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("%v is not integral", node.Float64),
			}
		}
		return i, nil
	}
	return 0, typeErr(fieldPath, "integer", node)
}

func uintFromValue(node *value.Value, fieldPath string) (uint64, error) {
	switch node.Type {
	case value.UintType:
		return node.Uint64, nil
	case value.IntType:
		if node.Int64 < 0 {
			return 0, &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("cannot store %d in unsigned type", node.Int64),
			}
		}
		return uint64(node.Int64), nil
	}
	return 0, typeErr(fieldPath, "unsigned integer", node)
}

func fromValueTime(node *value.Value, val reflect.Value, fieldPath string) error {
	switch node.Type {
	case value.TimeType:
		val.Set(reflect.ValueOf(node.Time))
		return nil
	case value.StringType:
		for _, layout := range []string{"2006-01-02T15:04:05.000", time.RFC3339Nano, time.RFC3339} {
			if t, err := time.Parse(layout, node.String); err == nil {
				val.Set(reflect.ValueOf(t))
				return nil
			}
		}
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("cannot parse %q as time", node.String),
		}
	}
	return typeErr(fieldPath, "time", node)
}

// elemAt returns the i-th element of a sequence or array value,
// slicing along the leading dimension for multi-dimensional arrays.
func elemAt(node *value.Value, i int) (*value.Value, error) {
	if node.Type == value.ArrayType && node.NDims() > 1 {
		return node.Slice(i)
	}
	return node.Elems[i], nil
}

func seqLen(node *value.Value) int {
	if node.Type == value.ArrayType && node.NDims() > 1 {
		return node.Shape[0]
	}
	return len(node.Elems)
}

func fromValueSlice(node *value.Value, val reflect.Value, fieldPath string) error {
	if node.Type == value.NullType {
		val.Set(reflect.Zero(val.Type()))
		return nil
	}
	if node.Type != value.SeqType && node.Type != value.ArrayType {
		return typeErr(fieldPath, "sequence", node)
	}
	n := seqLen(node)
	res := reflect.MakeSlice(val.Type(), n, n)
	for i := 0; i < n; i++ {
		e, err := elemAt(node, i)
		if err != nil {
			return &UnmarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
		}
		if err := fromValue(e, res.Index(i), fmt.Sprintf("%s[%d]", fieldPath, i)); err != nil {
			return err
		}
	}
	val.Set(res)
	return nil
}

func fromValueMap(node *value.Value, val reflect.Value, fieldPath string) error {
	if node.Type == value.NullType {
		val.Set(reflect.Zero(val.Type()))
		return nil
	}
	if node.Type != value.MapType {
		return typeErr(fieldPath, "mapping", node)
	}
	typ := val.Type()
	if typ.Key().Kind() != reflect.String {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map keys must be strings, got %s", typ.Key()),
		}
	}
	res := reflect.MakeMapWithSize(typ, len(node.Fields))
	for i := range node.Fields {
		key := node.Fields[i]
		valuePath := key
		if fieldPath != "" {
			valuePath = fieldPath + "." + key
		}
		elem := reflect.New(typ.Elem()).Elem()
		if err := fromValue(node.Values[i], elem, valuePath); err != nil {
			return err
		}
		res.SetMapIndex(reflect.ValueOf(key), elem)
	}
	val.Set(res)
	return nil
}

func fromValueStruct(node *value.Value, val reflect.Value, fieldPath string) error {
	if node.Type != value.MapType {
		return typeErr(fieldPath, "mapping", node)
	}
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		if field.Anonymous {
			if val.Field(i).Kind() != reflect.Struct {
				continue
			}
			if err := fromValueStruct(node, val.Field(i), fieldPath); err != nil {
				return err
			}
			continue
		}
		fieldName, skip := fieldYAMLName(field)
		if skip {
			continue
		}
		fv := node.Get(fieldName)
		if fv == nil {
			continue
		}
		nextPath := fieldName
		if fieldPath != "" {
			nextPath = fieldPath + "." + fieldName
		}
		if err := fromValue(fv, val.Field(i), nextPath); err != nil {
			return err
		}
	}
	return nil
}

// ToAny converts a native value to untyped Go data: nil, bool,
// int64, uint64, float64, string, time.Time, []any and
// map[string]any. Mapping order is lost.
func ToAny(node *value.Value) any {
	switch node.Type {
	case value.NullType:
		return nil
	case value.BoolType:
		return node.Bool
	case value.IntType:
		return node.Int64
	case value.UintType:
		return node.Uint64
	case value.FloatType:
		return node.Float64
	case value.StringType:
		return node.String
	case value.TimeType:
		return node.Time
	case value.SeqType:
		res := make([]any, len(node.Elems))
		for i, e := range node.Elems {
			res[i] = ToAny(e)
		}
		return res
	case value.ArrayType:
		n := seqLen(node)
		res := make([]any, n)
		for i := 0; i < n; i++ {
			e, err := elemAt(node, i)
			if err != nil {
				return nil
			}
			res[i] = ToAny(e)
		}
		return res
	case value.MapType:
		res := make(map[string]any, len(node.Fields))
		for i := range node.Fields {
			res[node.Fields[i]] = ToAny(node.Values[i])
		}
		return res
	}
	return nil
}
