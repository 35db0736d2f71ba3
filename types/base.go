package types

// Value is the interface all runtime values implement.
//
// The set of implementations is closed: NoneValue, IntValue, FloatValue,
// BoolValue, StrValue, ListValue, DictValue, TupleValue and SetValue.
// Container values are copy-on-write, so a Value may be shared freely;
// mutation happens by rebinding (see package ops).
type Value interface {
	Type() TypeCode
	String() string // canonical rendering, also used as Dict/Set key
	Truthy() bool
}

// TypeName returns the label of v's tag ("int", "list", ...)
func TypeName(v Value) string {
	if v == nil {
		return TYPE_NONE.String()
	}
	return v.Type().String()
}

// Canonical converts a value to the text used as a Dict or Set key.
// Distinct values with the same rendering (1 and "1") share a key.
func Canonical(v Value) string {
	if v == nil {
		return NoneValue{}.String()
	}
	return v.String()
}

// Deref returns the value held by a binding, None for an empty one
func Deref(binding *Value) Value {
	if binding == nil || *binding == nil {
		return NoneValue{}
	}
	return *binding
}
