package ops

import (
	"fmt"

	"fangless/types"
)

// Mutating operations take the caller's binding and rebind it to the new
// copy-on-write container. Any other binding that held the old container
// keeps seeing the old contents.

// Append appends item to the LIST held by list, in place. Returns None.
func Append(list *types.Value, item types.Value) (types.Value, error) {
	l, ok := types.Deref(list).(types.ListValue)
	if !ok {
		return nil, types.TypeErrorf("append() requires a list, not '%s'", types.TypeName(types.Deref(list)))
	}
	*list = l.Append(orNone(item))
	return types.NewNone(), nil
}

// Sublist returns a new LIST with the elements of list in [start, end).
// start is clamped to >= 0 and end to >= start; out-of-range bounds are
// clamped silently instead of failing.
func Sublist(list, start, end types.Value) (types.Value, error) {
	l, ok := list.(types.ListValue)
	if !ok {
		return nil, types.TypeErrorf("sublist() requires a list, not '%s'", types.TypeName(list))
	}
	from, ok1 := start.(types.IntValue)
	to, ok2 := end.(types.IntValue)
	if !ok1 || !ok2 {
		return nil, types.TypeErrorf("sublist() bounds must be integers, not '%s' and '%s'",
			types.TypeName(start), types.TypeName(end))
	}

	s, e := clampBound(from.Val), clampBound(to.Val)
	if s < 0 {
		s = 0
	}
	if e < s {
		e = s
	}
	return l.Slice(s, e), nil
}

// clampBound narrows an int64 bound to int without overflowing
func clampBound(v int64) int {
	const maxInt = int64(^uint(0) >> 1)
	if v > maxInt {
		return int(maxInt)
	}
	if v < -maxInt {
		return int(-maxInt)
	}
	return int(v)
}

// SetAdd is the one-argument add: it stores item in the SET held by set,
// replacing any member with the same rendering. Returns None.
func SetAdd(set *types.Value, item types.Value) (types.Value, error) {
	s, ok := types.Deref(set).(types.SetValue)
	if !ok {
		return nil, types.TypeErrorf("add() with one argument requires a set, not '%s'", types.TypeName(types.Deref(set)))
	}
	*set = s.Add(orNone(item))
	return types.NewNone(), nil
}

// DictAdd is the two-argument add: it stores val under the canonical form of
// key in the DICT held by dict, overwriting. Returns None.
func DictAdd(dict *types.Value, key, val types.Value) (types.Value, error) {
	d, ok := types.Deref(dict).(types.DictValue)
	if !ok {
		return nil, types.TypeErrorf("add() with two arguments requires a dict, not '%s'", types.TypeName(types.Deref(dict)))
	}
	*dict = d.Set(orNone(key), orNone(val))
	return types.NewNone(), nil
}

// Get looks key up without failing: a DICT yields the stored value or None
// when absent, a SET yields a BOOL telling whether key is a member.
func Get(container, key types.Value) (types.Value, error) {
	switch coll := container.(type) {
	case types.DictValue:
		if v, ok := coll.Get(orNone(key)); ok {
			return v, nil
		}
		return types.NewNone(), nil
	case types.SetValue:
		return types.NewBool(coll.Has(orNone(key))), nil
	default:
		return nil, types.TypeErrorf("get() requires a dict or set, not '%s'", types.TypeName(container))
	}
}

// Remove deletes from the container held by target, in place.
// LIST: key is an INT index, later elements shift left, IndexError when out
// of range. DICT/SET: key is canonicalized, KeyError when absent.
func Remove(target *types.Value, key types.Value) (types.Value, error) {
	switch coll := types.Deref(target).(type) {
	case types.ListValue:
		idx, ok := key.(types.IntValue)
		if !ok {
			return nil, types.TypeErrorf("list indices must be integers, not %s", types.TypeName(key))
		}
		if idx.Val < 0 || idx.Val >= int64(coll.Len()) {
			return nil, types.IndexErrorf("list assignment index out of range")
		}
		*target = coll.DeleteAt(int(idx.Val))
	case types.DictValue:
		if !coll.Has(orNone(key)) {
			return nil, types.KeyError(types.Canonical(key))
		}
		*target = coll.Delete(orNone(key))
	case types.SetValue:
		if !coll.Has(orNone(key)) {
			return nil, types.KeyError(types.Canonical(key))
		}
		*target = coll.Delete(orNone(key))
	default:
		return nil, types.TypeErrorf("remove() requires a list, dict or set, not '%s'", types.TypeName(types.Deref(target)))
	}
	return types.NewNone(), nil
}

// Mutation names an in-place container operation, so generated code can
// carry the operation as data instead of relying on overload resolution.
type Mutation int

const (
	MutAppend  Mutation = iota // list.append(x)
	MutSetAdd                  // set.add(x)
	MutDictAdd                 // dict.add(k, v)
	MutRemove                  // container.remove(k)
)

// String returns the builtin name the mutation is registered under
func (m Mutation) String() string {
	switch m {
	case MutAppend:
		return "append"
	case MutSetAdd:
		return "setadd"
	case MutDictAdd:
		return "dictadd"
	case MutRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Arity returns the number of arguments the mutation takes besides its target
func (m Mutation) Arity() int {
	if m == MutDictAdd {
		return 2
	}
	return 1
}

// Method resolves a method call recv.name(args) with arity arguments to the
// mutation it performs. "add" with one argument is a set insert and with two
// a dict insert; the receiver's tag is checked by the mutation itself.
func Method(name string, arity int) (Mutation, bool) {
	switch {
	case name == "append" && arity == 1:
		return MutAppend, true
	case name == "add" && arity == 1:
		return MutSetAdd, true
	case name == "add" && arity == 2:
		return MutDictAdd, true
	case name == "remove" && arity == 1:
		return MutRemove, true
	default:
		return 0, false
	}
}

// Apply performs mutation m on target
func Apply(target *types.Value, m Mutation, args ...types.Value) (types.Value, error) {
	if len(args) != m.Arity() {
		return nil, types.TypeErrorf("%s() takes exactly %d argument(s) (%d given)", m, m.Arity(), len(args))
	}
	switch m {
	case MutAppend:
		return Append(target, args[0])
	case MutSetAdd:
		return SetAdd(target, args[0])
	case MutDictAdd:
		return DictAdd(target, args[0], args[1])
	case MutRemove:
		return Remove(target, args[0])
	default:
		return nil, fmt.Errorf("unknown mutation %d", int(m))
	}
}
