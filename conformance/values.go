package conformance

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"fangless/ops"
	"fangless/types"
)

// convertYAMLValue converts an expected value node to a Value.
// Sequences are lists unless tagged !tuple or !set; mappings are dicts
// whose keys may be any scalar.
func convertYAMLValue(node *yaml.Node) (types.Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return types.NewNone(), nil
		}
		return convertYAMLValue(node.Content[0])

	case yaml.AliasNode:
		return convertYAMLValue(node.Alias)

	case yaml.ScalarNode:
		return convertScalar(node)

	case yaml.SequenceNode:
		elements := make([]types.Value, len(node.Content))
		for i, child := range node.Content {
			v, err := convertYAMLValue(child)
			if err != nil {
				return nil, err
			}
			elements[i] = v
		}
		switch node.Tag {
		case "!tuple":
			return ops.Tuple(elements), nil
		case "!set":
			return types.NewSetOf(elements), nil
		default:
			return ops.List(elements), nil
		}

	case yaml.MappingNode:
		pairs := make([][2]types.Value, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, err := convertYAMLValue(node.Content[i])
			if err != nil {
				return nil, err
			}
			val, err := convertYAMLValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, [2]types.Value{key, val})
		}
		return ops.Dict(pairs), nil

	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node kind %d", node.Line, node.Kind)
	}
}

// convertScalar converts a scalar by its resolved YAML tag. Python
// spellings None/True/False are accepted next to YAML's own.
func convertScalar(node *yaml.Node) (types.Value, error) {
	if node.Style == 0 {
		switch node.Value {
		case "None":
			return types.NewNone(), nil
		case "True":
			return types.NewBool(true), nil
		case "False":
			return types.NewBool(false), nil
		}
	}

	switch node.ShortTag() {
	case "!!null":
		return types.NewNone(), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, err
		}
		return types.NewBool(b), nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return nil, err
		}
		return types.NewInt(i), nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, err
		}
		return types.NewFloat(f), nil
	default:
		return types.NewStr(node.Value), nil
	}
}

// valuesMatch compares expected and actual structurally: same tag at every
// level, scalars by equality, dicts and sets regardless of order
func valuesMatch(expected, actual types.Value) bool {
	if expected.Type() != actual.Type() {
		return false
	}

	switch exp := expected.(type) {
	case types.ListValue:
		return elementsMatch(exp.Elements(), actual.(types.ListValue).Elements())
	case types.TupleValue:
		return elementsMatch(exp.Elements(), actual.(types.TupleValue).Elements())
	case types.DictValue:
		act := actual.(types.DictValue)
		if exp.Len() != act.Len() {
			return false
		}
		for _, key := range exp.Keys() {
			ev, _ := exp.Get(types.NewStr(key))
			av, ok := act.Get(types.NewStr(key))
			if !ok || !valuesMatch(ev, av) {
				return false
			}
		}
		return true
	case types.SetValue:
		act := actual.(types.SetValue)
		if exp.Len() != act.Len() {
			return false
		}
		for _, member := range exp.Members() {
			if !act.Has(member) {
				return false
			}
		}
		return true
	default:
		return ops.Equal(expected, actual)
	}
}

func elementsMatch(expected, actual []types.Value) bool {
	if len(expected) != len(actual) {
		return false
	}
	for i := range expected {
		if !valuesMatch(expected[i], actual[i]) {
			return false
		}
	}
	return true
}
