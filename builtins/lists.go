package builtins

import (
	"fangless/ops"
	"fangless/types"
)

// builtinList builds a list from its arguments
// list(values...) -> list
func builtinList(args []types.Value) (types.Value, error) {
	return ops.List(append([]types.Value(nil), args...)), nil
}

// builtinTuple builds a tuple from its arguments
// tuple(values...) -> tuple
func builtinTuple(args []types.Value) (types.Value, error) {
	return ops.Tuple(append([]types.Value(nil), args...)), nil
}

// builtinRange builds a list of integers
// range(stop) -> [0, stop)
// range(start, stop [, step]) -> start, start+step, ... before stop
func builtinRange(args []types.Value) (types.Value, error) {
	start, step := types.Value(types.NewInt(0)), types.Value(types.NewInt(1))
	var stop types.Value
	switch len(args) {
	case 1:
		stop = args[0]
	case 2:
		start, stop = args[0], args[1]
	default:
		start, stop, step = args[0], args[1], args[2]
	}
	return ops.Range(start, stop, step)
}

// builtinGetitem indexes a list, tuple, string or dict
// getitem(container, index) -> value
func builtinGetitem(args []types.Value) (types.Value, error) {
	return ops.GetItem(args[0], args[1])
}

// builtinContains tests membership
// contains(container, item) -> bool
func builtinContains(args []types.Value) (types.Value, error) {
	return ops.Contains(args[0], args[1])
}

// builtinSublist copies the elements in [start, end) of a list.
// Out of range bounds are clamped.
// sublist(list, start, end) -> list
func builtinSublist(args []types.Value) (types.Value, error) {
	return ops.Sublist(args[0], args[1], args[2])
}

// mutation adapts an in-place container operation to a registry builtin
func mutation(m ops.Mutation) MutatingFunc {
	return func(target *types.Value, args []types.Value) (types.Value, error) {
		return ops.Apply(target, m, args...)
	}
}
