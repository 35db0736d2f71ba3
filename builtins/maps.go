package builtins

import (
	"fangless/ops"
	"fangless/types"
)

// builtinDict builds a dict from alternating keys and values.
// Keys are canonicalized; later duplicates overwrite earlier ones.
// dict(k1, v1, k2, v2, ...) -> dict
func builtinDict(args []types.Value) (types.Value, error) {
	if len(args)%2 != 0 {
		return nil, types.TypeErrorf("dict() takes an even number of arguments (%d given)", len(args))
	}
	pairs := make([][2]types.Value, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		pairs = append(pairs, [2]types.Value{args[i], args[i+1]})
	}
	return ops.Dict(pairs), nil
}

// builtinSet builds a set from a list or tuple
// set() -> empty set
// set(list_or_tuple) -> set, deduplicated by rendering
func builtinSet(args []types.Value) (types.Value, error) {
	if len(args) == 0 {
		return types.NewSetOf(nil), nil
	}
	return ops.Set(args[0])
}

// builtinGet looks up a dict key or tests set membership without failing
// get(dict, key) -> value or None
// get(set, item) -> bool
func builtinGet(args []types.Value) (types.Value, error) {
	return ops.Get(args[0], args[1])
}
