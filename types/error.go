package types

import (
	"errors"
	"fmt"
)

// ErrorCode names a runtime failure kind
type ErrorCode int

const (
	E_NONE    ErrorCode = 0
	E_TYPE    ErrorCode = 1
	E_ZERODIV ErrorCode = 2
	E_INDEX   ErrorCode = 3
	E_KEY     ErrorCode = 4
	E_VALUE   ErrorCode = 5
	E_NAME    ErrorCode = 6
)

// String returns the kind name as the host language spells it
func (e ErrorCode) String() string {
	switch e {
	case E_NONE:
		return "NoError"
	case E_TYPE:
		return "TypeError"
	case E_ZERODIV:
		return "ZeroDivisionError"
	case E_INDEX:
		return "IndexError"
	case E_KEY:
		return "KeyError"
	case E_VALUE:
		return "ValueError"
	case E_NAME:
		return "NameError"
	default:
		return "UnknownError"
	}
}

// ErrorFromString converts a name like "KeyError" to an ErrorCode
func ErrorFromString(s string) (ErrorCode, bool) {
	switch s {
	case "NoError":
		return E_NONE, true
	case "TypeError":
		return E_TYPE, true
	case "ZeroDivisionError":
		return E_ZERODIV, true
	case "IndexError":
		return E_INDEX, true
	case "KeyError":
		return E_KEY, true
	case "ValueError":
		return E_VALUE, true
	case "NameError":
		return E_NAME, true
	default:
		return E_NONE, false
	}
}

// Error is a runtime failure: a kind plus a message following a fixed
// template (operand type names, or the missing key).
type Error struct {
	Code ErrorCode
	Msg  string
}

// Error renders "Kind: message"
func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Code.String()
	}
	return e.Code.String() + ": " + e.Msg
}

// Is matches any *Error with the same code, so errors.Is(err, &Error{Code: E_KEY})
// works without comparing messages.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewError creates an error of the given kind with a formatted message
func NewError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// TypeErrorf creates a TypeError
func TypeErrorf(format string, args ...any) *Error {
	return NewError(E_TYPE, format, args...)
}

// IndexErrorf creates an IndexError
func IndexErrorf(format string, args ...any) *Error {
	return NewError(E_INDEX, format, args...)
}

// KeyError creates a KeyError for a missing key
func KeyError(key string) *Error {
	return NewError(E_KEY, "'%s'", key)
}

// ZeroDivisionError creates a ZeroDivisionError
func ZeroDivisionError(msg string) *Error {
	return &Error{Code: E_ZERODIV, Msg: msg}
}

// KindOf extracts the error kind from err, or E_NONE if err is not a runtime error
func KindOf(err error) ErrorCode {
	var rerr *Error
	if errors.As(err, &rerr) {
		return rerr.Code
	}
	return E_NONE
}

// IsKind reports whether err is a runtime error of the given kind
func IsKind(err error, code ErrorCode) bool {
	return err != nil && KindOf(err) == code
}
