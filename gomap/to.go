package gomap

import (
	"encoding"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/matform/yamlmat/value"
)

var timeType = reflect.TypeOf(time.Time{})

// ToValue converts a Go value to a native value.
func ToValue(v interface{}) (*value.Value, error) {
	if v == nil {
		return value.Null(), nil
	}
	visited := make(map[uintptr]string)
	return toValue(reflect.ValueOf(v), "", visited)
}

// toValue converts a reflect.Value to a native value. fieldPath is
// used for error reporting; visited tracks pointer addresses to
// detect circular references.
func toValue(val reflect.Value, fieldPath string, visited map[uintptr]string) (*value.Value, error) {
	if !val.IsValid() {
		return value.Null(), nil
	}
	typ := val.Type()
	kind := typ.Kind()

	if typ == timeType {
		return value.FromTime(val.Interface().(time.Time)), nil
	}

	if kind == reflect.Ptr {
		if val.IsNil() {
			return value.Null(), nil
		}
		ptrAddr := val.Pointer()
		if prevPath, seen := visited[ptrAddr]; seen {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("circular reference detected: %s -> %s", prevPath, fieldPath),
			}
		}
		visited[ptrAddr] = fieldPath
		node, err := toValue(val.Elem(), fieldPath, visited)
		delete(visited, ptrAddr)
		return node, err
	}

	if tm, ok := val.Interface().(encoding.TextMarshaler); ok {
		text, err := tm.MarshalText()
		if err != nil {
			return nil, err
		}
		return value.FromString(string(text)), nil
	}
	if val.CanAddr() {
		if tm, ok := val.Addr().Interface().(encoding.TextMarshaler); ok {
			text, err := tm.MarshalText()
			if err != nil {
				return nil, err
			}
			return value.FromString(string(text)), nil
		}
	}

	switch kind {
	case reflect.String:
		return value.FromString(val.String()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return value.FromInt(val.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return value.FromUint(val.Uint()), nil

	case reflect.Float32, reflect.Float64:
		return value.FromFloat(val.Float()), nil

	case reflect.Bool:
		return value.FromBool(val.Bool()), nil

	case reflect.Slice, reflect.Array:
		return toValueSlice(val, fieldPath, visited)

	case reflect.Map:
		return toValueMap(val, fieldPath, visited)

	case reflect.Struct:
		return toValueStruct(val, fieldPath, visited)

	case reflect.Interface:
		if val.IsNil() {
			return value.Null(), nil
		}
		return toValue(val.Elem(), fieldPath, visited)

	default:
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported type: %s", typ),
		}
	}
}

// toValueSlice converts a slice or array. Numeric element types
// become 1-D dense arrays, everything else an ordered sequence.
func toValueSlice(val reflect.Value, fieldPath string, visited map[uintptr]string) (*value.Value, error) {
	if val.Kind() == reflect.Slice && !val.IsNil() {
		slicePtr := val.Pointer()
		if prevPath, seen := visited[slicePtr]; seen {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("circular reference detected: %s -> %s", prevPath, fieldPath),
			}
		}
		visited[slicePtr] = fieldPath
		defer delete(visited, slicePtr)
	}

	length := val.Len()
	elems := make([]*value.Value, 0, length)
	for i := 0; i < length; i++ {
		elemPath := fmt.Sprintf("%s[%d]", fieldPath, i)
		elemNode, err := toValue(val.Index(i), elemPath, visited)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elemNode)
	}

	if isNumericKind(val.Type().Elem().Kind()) {
		arr, err := value.FromArray([]int{length}, elems)
		if err != nil {
			return nil, &MarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
		}
		return arr, nil
	}
	return value.FromSlice(elems), nil
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// toValueMap converts a string-keyed map, sorting keys so the result
// is deterministic. Go maps carry no insertion order to preserve.
func toValueMap(val reflect.Value, fieldPath string, visited map[uintptr]string) (*value.Value, error) {
	if val.IsNil() {
		return value.Null(), nil
	}
	mapPtr := val.Pointer()
	if prevPath, seen := visited[mapPtr]; seen {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("circular reference detected: %s -> %s", prevPath, fieldPath),
		}
	}
	visited[mapPtr] = fieldPath
	defer delete(visited, mapPtr)

	if val.Type().Key().Kind() != reflect.String {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map keys must be strings, got %s", val.Type().Key()),
		}
	}

	keys := make([]string, 0, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		keys = append(keys, iter.Key().String())
	}
	slices.Sort(keys)

	res := &value.Value{Type: value.MapType}
	for _, key := range keys {
		valuePath := key
		if fieldPath != "" {
			valuePath = fieldPath + "." + key
		}
		node, err := toValue(val.MapIndex(reflect.ValueOf(key)), valuePath, visited)
		if err != nil {
			return nil, err
		}
		if err := res.Set(key, node); err != nil {
			return nil, &MarshalError{FieldPath: valuePath, Message: err.Error(), Err: err}
		}
	}
	return res, nil
}

// toValueStruct converts a struct to a mapping whose field order is
// the struct's declaration order. Embedded structs are flattened.
func toValueStruct(val reflect.Value, fieldPath string, visited map[uintptr]string) (*value.Value, error) {
	typ := val.Type()
	res := &value.Value{Type: value.MapType}

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		fieldVal := val.Field(i)

		if field.Anonymous {
			if fieldVal.Kind() != reflect.Struct {
				continue
			}
			embedded, err := toValue(fieldVal, fieldPath, visited)
			if err != nil {
				return nil, err
			}
			if embedded.Type != value.MapType {
				continue
			}
			for j := range embedded.Fields {
				if err := res.Set(embedded.Fields[j], embedded.Values[j]); err != nil {
					return nil, &MarshalError{
						FieldPath: fieldPath,
						Message:   fmt.Sprintf("embedded struct field %q conflicts with existing field", embedded.Fields[j]),
						Err:       err,
					}
				}
			}
			continue
		}

		fieldName, skip := fieldYAMLName(field)
		if skip {
			continue
		}
		nextPath := fieldName
		if fieldPath != "" {
			nextPath = fieldPath + "." + fieldName
		}
		fieldNode, err := toValue(fieldVal, nextPath, visited)
		if err != nil {
			return nil, err
		}
		if err := res.Set(fieldName, fieldNode); err != nil {
			return nil, &MarshalError{FieldPath: nextPath, Message: err.Error(), Err: err}
		}
	}
	return res, nil
}

// fieldYAMLName resolves the mapping key for a struct field from its
// yaml tag, falling back to the field name.
func fieldYAMLName(field reflect.StructField) (name string, skip bool) {
	name = field.Name
	tag := field.Tag.Get("yaml")
	if tag == "" {
		return name, false
	}
	parts := strings.Split(tag, ",")
	switch parts[0] {
	case "":
	case "-":
		return "", true
	default:
		name = parts[0]
	}
	return name, false
}
