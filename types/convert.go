package types

import (
	"fmt"
	"sort"
)

// FromGo converts a native Go literal into a Value.
//
// Supported: nil, bool, every integer kind, float32/float64, string, Value,
// []Value, map[string]Value, and []any / map[string]any recursively.
// Unsigned integers above MaxInt64 wrap, matching native conversion.
func FromGo(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return NoneValue{}, nil
	case Value:
		return val, nil
	case bool:
		return NewBool(val), nil
	case int:
		return NewInt(int64(val)), nil
	case int8:
		return NewInt(int64(val)), nil
	case int16:
		return NewInt(int64(val)), nil
	case int32:
		return NewInt(int64(val)), nil
	case int64:
		return NewInt(val), nil
	case uint:
		return NewInt(int64(val)), nil
	case uint8:
		return NewInt(int64(val)), nil
	case uint16:
		return NewInt(int64(val)), nil
	case uint32:
		return NewInt(int64(val)), nil
	case uint64:
		return NewInt(int64(val)), nil
	case float32:
		return NewFloat(float64(val)), nil
	case float64:
		return NewFloat(val), nil
	case string:
		return NewStr(val), nil
	case []Value:
		return NewList(val), nil
	case map[string]Value:
		return NewDict(val), nil
	case []any:
		elements := make([]Value, len(val))
		for i, elem := range val {
			converted, err := FromGo(elem)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			elements[i] = converted
		}
		return NewList(elements), nil
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([][2]Value, 0, len(val))
		for _, k := range keys {
			converted, err := FromGo(val[k])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			pairs = append(pairs, [2]Value{NewStr(k), converted})
		}
		return NewDictFromPairs(pairs), nil
	default:
		return nil, fmt.Errorf("unsupported Go type %T", v)
	}
}

// MustFromGo is FromGo for literals known to be convertible; it panics otherwise
func MustFromGo(v any) Value {
	val, err := FromGo(v)
	if err != nil {
		panic(err)
	}
	return val
}
