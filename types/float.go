package types

import (
	"math"
	"strconv"
	"strings"
)

// FloatValue represents a 64-bit floating point number
type FloatValue struct {
	Val float64
}

// Type returns the type code for floats
func (f FloatValue) Type() TypeCode {
	return TYPE_FLOAT
}

// String returns the shortest decimal that round-trips, in the host
// language's repr style: whole numbers keep ".0", exponents are used below
// 1e-4 and from 1e16 on. The output never depends on the process locale.
func (f FloatValue) String() string {
	switch {
	case math.IsNaN(f.Val):
		return "nan"
	case math.IsInf(f.Val, 1):
		return "inf"
	case math.IsInf(f.Val, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(f.Val, 'e', -1, 64)
	exp, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return sci
	}

	s := strconv.FormatFloat(f.Val, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Truthy returns true unless the value is exactly zero
func (f FloatValue) Truthy() bool {
	return f.Val != 0.0
}

// NewFloat creates a new FloatValue
func NewFloat(val float64) FloatValue {
	return FloatValue{Val: val}
}

