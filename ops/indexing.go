package ops

import (
	"strings"

	"fangless/types"
)

// GetItem evaluates indexing: container[index]
// Supports: lists, tuples and strings (INT index), dicts (any key)
func GetItem(container, index types.Value) (types.Value, error) {
	switch coll := container.(type) {
	case types.ListValue:
		i, err := checkIndex(coll, index, coll.Len())
		if err != nil {
			return nil, err
		}
		return coll.Get(i), nil
	case types.TupleValue:
		i, err := checkIndex(coll, index, coll.Len())
		if err != nil {
			return nil, err
		}
		return coll.Get(i), nil
	case types.StrValue:
		i, err := checkIndex(coll, index, coll.Len())
		if err != nil {
			return nil, err
		}
		return coll.At(i), nil
	case types.DictValue:
		return dictLookup(coll, index)
	default:
		return nil, types.TypeErrorf("'%s' object is not subscriptable", types.TypeName(container))
	}
}

// checkIndex validates an INT index against [0, length)
func checkIndex(container, index types.Value, length int) (int, error) {
	name := types.TypeName(container)
	if name == "str" {
		name = "string"
	}
	idx, ok := index.(types.IntValue)
	if !ok {
		return 0, types.TypeErrorf("%s indices must be integers, not %s", name, types.TypeName(index))
	}
	if idx.Val < 0 || idx.Val >= int64(length) {
		return 0, types.IndexErrorf("%s index out of range", name)
	}
	return int(idx.Val), nil
}

func dictLookup(d types.DictValue, key types.Value) (types.Value, error) {
	if v, ok := d.Get(key); ok {
		return v, nil
	}
	return nil, types.KeyError(types.Canonical(key))
}

// Contains implements membership: item in container
// Lists and tuples compare elements with Equal, strings test for a
// substring, dicts and sets test the canonical rendering of item.
func Contains(container, item types.Value) (types.Value, error) {
	switch coll := container.(type) {
	case types.ListValue:
		return types.NewBool(containsEqual(coll.Elements(), item)), nil
	case types.TupleValue:
		return types.NewBool(containsEqual(coll.Elements(), item)), nil
	case types.StrValue:
		sub, ok := item.(types.StrValue)
		if !ok {
			return nil, types.TypeErrorf("'in <string>' requires string as left operand, not %s", types.TypeName(item))
		}
		return types.NewBool(strings.Contains(coll.Value(), sub.Value())), nil
	case types.DictValue:
		return types.NewBool(coll.Has(item)), nil
	case types.SetValue:
		return types.NewBool(coll.Has(item)), nil
	default:
		return nil, types.TypeErrorf("argument of type '%s' is not iterable", types.TypeName(container))
	}
}

func containsEqual(elements []types.Value, item types.Value) bool {
	for _, elem := range elements {
		if Equal(elem, item) {
			return true
		}
	}
	return false
}

// Length returns the element count of a collection, or -1 if v is not one
func Length(v types.Value) int {
	switch coll := v.(type) {
	case types.StrValue:
		return coll.Len()
	case types.ListValue:
		return coll.Len()
	case types.DictValue:
		return coll.Len()
	case types.TupleValue:
		return coll.Len()
	case types.SetValue:
		return coll.Len()
	default:
		return -1
	}
}

// Len implements len(v) for strings (bytes) and containers
func Len(v types.Value) (types.Value, error) {
	n := Length(v)
	if n < 0 {
		return nil, types.TypeErrorf("object of type '%s' has no len()", types.TypeName(v))
	}
	return types.NewInt(int64(n)), nil
}

// Str implements str(v): the rendering of v as a STR
func Str(v types.Value) types.Value {
	return types.NewStr(types.Canonical(v))
}
