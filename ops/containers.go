package ops

import "fangless/types"

// List wraps an ordered sequence as a LIST
func List(items []types.Value) types.Value {
	return types.NewList(items)
}

// Dict builds a DICT from key/value pairs. Keys are canonicalized through
// their rendering and later duplicates overwrite earlier ones.
func Dict(pairs [][2]types.Value) types.Value {
	return types.NewDictFromPairs(pairs)
}

// Tuple wraps an ordered sequence as a TUPLE; the arity is fixed from here on
func Tuple(items []types.Value) types.Value {
	return types.NewTuple(items)
}

// Set builds a SET from the elements of a LIST or TUPLE, deduplicating by
// rendering. Any other source is a TypeError.
func Set(src types.Value) (types.Value, error) {
	switch s := src.(type) {
	case types.ListValue:
		return types.NewSetOf(s.Elements()), nil
	case types.TupleValue:
		return types.NewSetOf(s.Elements()), nil
	default:
		return nil, types.TypeErrorf("set() argument must be a list or tuple, not '%s'", types.TypeName(src))
	}
}

// MaxRangeLen caps the number of elements range() may build
const MaxRangeLen = 10_000_000

// Range builds the LIST [start, start+step, ...) stopping before stop.
// All arguments must be INT; a zero step or a result longer than
// MaxRangeLen is a ValueError.
func Range(start, stop, step types.Value) (types.Value, error) {
	for _, arg := range []types.Value{start, stop, step} {
		if _, ok := arg.(types.IntValue); !ok {
			return nil, types.TypeErrorf("'%s' object cannot be interpreted as an integer", types.TypeName(arg))
		}
	}
	from, to, by := start.(types.IntValue).Val, stop.(types.IntValue).Val, step.(types.IntValue).Val
	if by == 0 {
		return nil, types.NewError(types.E_VALUE, "range() arg 3 must not be zero")
	}

	count := rangeLen(from, to, by)
	if count > MaxRangeLen {
		return nil, types.NewError(types.E_VALUE, "range() result too large")
	}
	items := make([]types.Value, count)
	for k := range items {
		items[k] = types.NewInt(from + int64(k)*by)
	}
	return types.NewList(items), nil
}

// rangeLen counts the elements of range(from, to, by) in unsigned
// arithmetic, so extreme bounds cannot overflow
func rangeLen(from, to, by int64) uint64 {
	var span, stride uint64
	switch {
	case by > 0 && from < to:
		span, stride = uint64(to)-uint64(from), uint64(by)
	case by < 0 && from > to:
		span, stride = uint64(from)-uint64(to), -uint64(by)
	default:
		return 0
	}
	return (span-1)/stride + 1
}
