package types

import "strconv"

// IntValue represents a signed 64-bit integer
type IntValue struct {
	Val int64
}

// Type returns the type code for integers
func (i IntValue) Type() TypeCode {
	return TYPE_INT
}

// String returns the decimal representation
func (i IntValue) String() string {
	return strconv.FormatInt(i.Val, 10)
}

// Truthy returns true for any non-zero integer
func (i IntValue) Truthy() bool {
	return i.Val != 0
}

// NewInt creates a new IntValue
func NewInt(val int64) IntValue {
	return IntValue{Val: val}
}
