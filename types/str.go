package types

// StrValue represents a string. Indexing and length are byte based.
type StrValue struct {
	val string
}

// NewStr creates a new string value
func NewStr(s string) StrValue {
	return StrValue{val: s}
}

// String returns the raw text, without quotes
func (s StrValue) String() string {
	return s.val
}

// Type returns the type code for strings
func (s StrValue) Type() TypeCode {
	return TYPE_STR
}

// Truthy returns whether the string is non-empty
func (s StrValue) Truthy() bool {
	return len(s.val) > 0
}

// Value returns the internal string value
func (s StrValue) Value() string {
	return s.val
}

// Len returns the length in bytes
func (s StrValue) Len() int {
	return len(s.val)
}

// At returns the one-byte string at index i (0-based, unchecked)
func (s StrValue) At(i int) StrValue {
	return StrValue{val: s.val[i : i+1]}
}
