package types

// TypeCode is the tag identifying which variant a Value holds
type TypeCode int

const (
	TYPE_NONE  TypeCode = 0
	TYPE_INT   TypeCode = 1
	TYPE_FLOAT TypeCode = 2
	TYPE_BOOL  TypeCode = 3
	TYPE_STR   TypeCode = 4
	TYPE_LIST  TypeCode = 5
	TYPE_DICT  TypeCode = 6
	TYPE_TUPLE TypeCode = 7
	TYPE_SET   TypeCode = 8
)

// String returns the type label used in error messages and by type()
func (t TypeCode) String() string {
	switch t {
	case TYPE_NONE:
		return "None"
	case TYPE_INT:
		return "int"
	case TYPE_FLOAT:
		return "float"
	case TYPE_BOOL:
		return "bool"
	case TYPE_STR:
		return "str"
	case TYPE_LIST:
		return "list"
	case TYPE_DICT:
		return "dict"
	case TYPE_TUPLE:
		return "tuple"
	case TYPE_SET:
		return "set"
	default:
		return "unknown"
	}
}

// IsContainer reports whether values of this type hold other values
func (t TypeCode) IsContainer() bool {
	switch t {
	case TYPE_LIST, TYPE_DICT, TYPE_TUPLE, TYPE_SET:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether the type takes part in numeric promotion.
// Bool is not numeric.
func (t TypeCode) IsNumeric() bool {
	return t == TYPE_INT || t == TYPE_FLOAT
}

// TypeFromString converts a label like "int" or "tuple" to a TypeCode
func TypeFromString(s string) (TypeCode, bool) {
	switch s {
	case "None", "NoneType":
		return TYPE_NONE, true
	case "int":
		return TYPE_INT, true
	case "float":
		return TYPE_FLOAT, true
	case "bool":
		return TYPE_BOOL, true
	case "str":
		return TYPE_STR, true
	case "list":
		return TYPE_LIST, true
	case "dict":
		return TYPE_DICT, true
	case "tuple":
		return TYPE_TUPLE, true
	case "set":
		return TYPE_SET, true
	default:
		return TYPE_NONE, false
	}
}
