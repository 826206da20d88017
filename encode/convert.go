package encode

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/matform/yamlmat/value"

	"gopkg.in/yaml.v3"
)

// TimeLayout is the fixed textual pattern for timestamp scalars,
// millisecond precision.
const TimeLayout = "2006-01-02T15:04:05.000"

// Convert maps a native value to a generic YAML node. It is a pure
// function of its argument: a closed dispatch over the value type
// with an explicit default arm. Errors raised deep in the recursion
// propagate unchanged; no partial tree is returned.
func Convert(v *value.Value) (*yaml.Node, error) {
	if v == nil {
		return nullNode(), nil
	}
	if v.IsEmpty() {
		// Empty and null are distinct: empty renders as a sequence
		// with no elements.
		return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}, nil
	}
	switch v.Type {
	case value.NullType:
		return nullNode(), nil
	case value.BoolType:
		return scalar("!!bool", strconv.FormatBool(v.Bool)), nil
	case value.IntType:
		return scalar("!!int", strconv.FormatInt(v.Int64, 10)), nil
	case value.UintType:
		return scalar("!!int", formatUint(v.Uint64)), nil
	case value.FloatType:
		return scalar("!!float", formatFloat(v.Float64)), nil
	case value.StringType:
		return scalar("!!str", v.String), nil
	case value.TimeType:
		return scalar("!!str", v.Time.Format(TimeLayout)), nil
	case value.ArrayType:
		norm, err := normalize(v)
		if err != nil {
			return nil, err
		}
		if norm.Type == value.ArrayType {
			return convertElems(norm.Elems)
		}
		return Convert(norm)
	case value.SeqType:
		return convertElems(v.Elems)
	case value.MapType:
		return convertMap(v)
	default:
		return nil, fmt.Errorf("%w: %s", ErrTypeNotSupported, v.Type)
	}
}

func nullNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}

func scalar(tag, text string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: text}
}

func convertElems(elems []*value.Value) (*yaml.Node, error) {
	res := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	res.Content = make([]*yaml.Node, len(elems))
	for i, e := range elems {
		n, err := Convert(e)
		if err != nil {
			return nil, err
		}
		res.Content[i] = n
	}
	return res, nil
}

// convertMap emits fields in insertion order, which for struct-backed
// mappings equals field declaration order.
func convertMap(v *value.Value) (*yaml.Node, error) {
	res := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	res.Content = make([]*yaml.Node, 0, 2*len(v.Fields))
	for i := range v.Fields {
		n, err := Convert(v.Values[i])
		if err != nil {
			return nil, err
		}
		res.Content = append(res.Content, scalar("!!str", v.Fields[i]), n)
	}
	return res, nil
}

// formatUint boxes an unsigned value through an arbitrary-precision
// integer, round-tripping via hex, so the full 64-bit unsigned domain
// survives emitters whose native integer slot is signed.
func formatUint(u uint64) string {
	b, _ := new(big.Int).SetString(strconv.FormatUint(u, 16), 16)
	return b.Text(10)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
