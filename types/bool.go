package types

// BoolValue represents a boolean
type BoolValue struct {
	Val bool
}

// Type returns the type code for booleans
func (b BoolValue) Type() TypeCode {
	return TYPE_BOOL
}

// String returns "True" or "False"
func (b BoolValue) String() string {
	if b.Val {
		return "True"
	}
	return "False"
}

// Truthy returns the boolean itself
func (b BoolValue) Truthy() bool {
	return b.Val
}

// NewBool creates a new BoolValue
func NewBool(val bool) BoolValue {
	return BoolValue{Val: val}
}

// NoneValue is the absence of a value
type NoneValue struct{}

// Type returns the type code for None
func (NoneValue) Type() TypeCode {
	return TYPE_NONE
}

// String returns "None"
func (NoneValue) String() string {
	return "None"
}

// Truthy is always false for None
func (NoneValue) Truthy() bool {
	return false
}

// NewNone returns the None value
func NewNone() NoneValue {
	return NoneValue{}
}
