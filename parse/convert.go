package parse

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/matform/yamlmat/value"

	"gopkg.in/yaml.v3"
)

// timeLayouts are the textual timestamp forms accepted for scalars
// the backing parser resolves as timestamps: the fixed encoding
// layout first, then the parser's own resolver layouts, which allow
// unpadded date and time components.
var timeLayouts = []string{
	"2006-01-02T15:04:05.000",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-1-2T15:4:5.999999999Z07:00",
	"2006-1-2t15:4:5.999999999Z07:00",
	"2006-1-2 15:4:5.999999999",
	"2006-1-2",
}

// convert maps a generic node back to a native value using the tags
// the backing parser resolved: null, bool, int, float, timestamp and
// string. Mappings decode in document order with unique keys.
func convert(node *yaml.Node) (*value.Value, error) {
	switch node.Kind {
	case 0:
		// empty document
		return value.Null(), nil
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return value.Null(), nil
		}
		return convert(node.Content[0])
	case yaml.AliasNode:
		return convert(node.Alias)
	case yaml.ScalarNode:
		return convertScalar(node)
	case yaml.SequenceNode:
		elems := make([]*value.Value, len(node.Content))
		for i, c := range node.Content {
			e, err := convert(c)
			if err != nil {
				return nil, err
			}
			elems[i] = e
		}
		return value.FromSlice(elems), nil
	case yaml.MappingNode:
		return convertMapping(node)
	}
	return nil, fmt.Errorf("%w: unsupported node kind %d", ErrParse, node.Kind)
}

func convertScalar(node *yaml.Node) (*value.Value, error) {
	switch node.Tag {
	case "!!null":
		return value.Null(), nil
	case "!!bool":
		return convertBool(node.Value)
	case "!!int":
		return convertInt(node.Value)
	case "!!float":
		return convertFloat(node.Value)
	case "!!timestamp":
		return convertTime(node.Value)
	case "!!str", "":
		return value.FromString(node.Value), nil
	}
	return nil, fmt.Errorf("%w: unsupported scalar tag %s at line %d",
		ErrParse, node.Tag, node.Line)
}

func convertBool(s string) (*value.Value, error) {
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return value.FromBool(true), nil
	case "false", "no", "off":
		return value.FromBool(false), nil
	}
	return nil, fmt.Errorf("%w: bad bool scalar %q", ErrParse, s)
}

// convertInt prefers the signed 64-bit slot; magnitudes beyond it
// take the unsigned slot, the inverse of the encoder's
// arbitrary-precision boxing.
func convertInt(s string) (*value.Value, error) {
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return value.FromInt(i), nil
	}
	if u, err := strconv.ParseUint(s, 0, 64); err == nil {
		return value.FromUint(u), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrIntegerRange, s)
}

func convertFloat(s string) (*value.Value, error) {
	switch strings.ToLower(s) {
	case ".nan", "nan":
		return value.FromFloat(math.NaN()), nil
	case ".inf", "+.inf", "inf":
		return value.FromFloat(math.Inf(1)), nil
	case "-.inf", "-inf":
		return value.FromFloat(math.Inf(-1)), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad float scalar %q", ErrParse, s)
	}
	return value.FromFloat(f), nil
}

func convertTime(s string) (*value.Value, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return value.FromTime(t), nil
		}
	}
	return nil, fmt.Errorf("%w: bad timestamp scalar %q", ErrParse, s)
}

func convertMapping(node *yaml.Node) (*value.Value, error) {
	res := &value.Value{Type: value.MapType}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: non-scalar mapping key at line %d",
				ErrParse, key.Line)
		}
		v, err := convert(val)
		if err != nil {
			return nil, err
		}
		if err := res.Set(key.Value, v); err != nil {
			return nil, fmt.Errorf("%w at line %d", err, key.Line)
		}
	}
	return res, nil
}
