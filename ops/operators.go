package ops

import (
	"math"

	"fangless/types"
)

// ============================================================================
// ARITHMETIC OPERATORS
// ============================================================================

// Add implements addition: left + right
// INT + INT wraps on overflow; any FLOAT operand promotes both to FLOAT.
// STR + STR concatenates.
func Add(left, right types.Value) (types.Value, error) {
	if leftStr, ok := left.(types.StrValue); ok {
		if rightStr, ok := right.(types.StrValue); ok {
			return types.NewStr(leftStr.Value() + rightStr.Value()), nil
		}
		return nil, unsupported("+", left, right)
	}

	leftNum, rightNum, ok := numericPair(left, right)
	if !ok {
		return nil, unsupported("+", left, right)
	}
	if leftNum.isFloat || rightNum.isFloat {
		return types.NewFloat(leftNum.float() + rightNum.float()), nil
	}
	return types.NewInt(leftNum.i + rightNum.i), nil
}

// Sub implements subtraction: left - right
func Sub(left, right types.Value) (types.Value, error) {
	leftNum, rightNum, ok := numericPair(left, right)
	if !ok {
		return nil, unsupported("-", left, right)
	}
	if leftNum.isFloat || rightNum.isFloat {
		return types.NewFloat(leftNum.float() - rightNum.float()), nil
	}
	return types.NewInt(leftNum.i - rightNum.i), nil
}

// Mul implements multiplication: left * right
func Mul(left, right types.Value) (types.Value, error) {
	leftNum, rightNum, ok := numericPair(left, right)
	if !ok {
		return nil, unsupported("*", left, right)
	}
	if leftNum.isFloat || rightNum.isFloat {
		return types.NewFloat(leftNum.float() * rightNum.float()), nil
	}
	return types.NewInt(leftNum.i * rightNum.i), nil
}

// Div implements true division: left / right
// The result is always FLOAT, even for two INT operands.
func Div(left, right types.Value) (types.Value, error) {
	leftNum, rightNum, ok := numericPair(left, right)
	if !ok {
		return nil, unsupported("/", left, right)
	}
	divisor := rightNum.float()
	if divisor == 0.0 {
		return nil, types.ZeroDivisionError("division by zero")
	}
	return types.NewFloat(leftNum.float() / divisor), nil
}

// Mod implements the remainder: left % right
// INT only, using Go's truncating remainder (sign follows the dividend).
func Mod(left, right types.Value) (types.Value, error) {
	leftInt, leftOk := left.(types.IntValue)
	rightInt, rightOk := right.(types.IntValue)
	if !leftOk || !rightOk {
		return nil, unsupported("%", left, right)
	}
	if rightInt.Val == 0 {
		return nil, types.ZeroDivisionError("integer modulo by zero")
	}
	return types.NewInt(leftInt.Val % rightInt.Val), nil
}

// FloorDiv implements floor division: left // right
// INT // INT rounds toward negative infinity; a FLOAT operand yields
// floor(left / right) as FLOAT.
func FloorDiv(left, right types.Value) (types.Value, error) {
	leftNum, rightNum, ok := numericPair(left, right)
	if !ok {
		return nil, unsupported("//", left, right)
	}

	if leftNum.isFloat || rightNum.isFloat {
		divisor := rightNum.float()
		if divisor == 0.0 {
			return nil, types.ZeroDivisionError("float floor division by zero")
		}
		return types.NewFloat(math.Floor(leftNum.float() / divisor)), nil
	}

	if rightNum.i == 0 {
		return nil, types.ZeroDivisionError("integer division or modulo by zero")
	}
	q := leftNum.i / rightNum.i
	// Adjust if signs differ and the division was inexact
	if leftNum.i%rightNum.i != 0 && (leftNum.i < 0) != (rightNum.i < 0) {
		q--
	}
	return types.NewInt(q), nil
}

// Pow implements exponentiation: left ** right
// INT ** non-negative INT stays INT (wrapping); a negative INT exponent or any
// FLOAT operand yields FLOAT.
func Pow(left, right types.Value) (types.Value, error) {
	leftNum, rightNum, ok := numericPair(left, right)
	if !ok {
		return nil, unsupported("** or pow()", left, right)
	}

	if !leftNum.isFloat && !rightNum.isFloat && rightNum.i >= 0 {
		return types.NewInt(intPow(leftNum.i, rightNum.i)), nil
	}

	base, exp := leftNum.float(), rightNum.float()
	if base == 0.0 && exp < 0 {
		return nil, types.ZeroDivisionError("0.0 cannot be raised to a negative power")
	}
	return types.NewFloat(math.Pow(base, exp)), nil
}

// intPow computes base**exp by squaring, wrapping like native multiplication
func intPow(base, exp int64) int64 {
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

// ============================================================================
// UNARY OPERATORS
// ============================================================================

// Neg implements unary negation: -x
func Neg(operand types.Value) (types.Value, error) {
	switch v := operand.(type) {
	case types.IntValue:
		return types.NewInt(-v.Val), nil
	case types.FloatValue:
		return types.NewFloat(-v.Val), nil
	default:
		return nil, types.TypeErrorf("bad operand type for unary -: '%s'", types.TypeName(operand))
	}
}

// Pos implements unary plus: +x
func Pos(operand types.Value) (types.Value, error) {
	switch operand.(type) {
	case types.IntValue, types.FloatValue:
		return operand, nil
	default:
		return nil, types.TypeErrorf("bad operand type for unary +: '%s'", types.TypeName(operand))
	}
}

// ============================================================================
// COMPARISON OPERATORS
// ============================================================================

// Equal reports whether two values compare equal.
// Same-tag scalars compare structurally, INT and FLOAT compare numerically,
// and every other pairing (any container included) is simply not equal.
func Equal(left, right types.Value) bool {
	left, right = orNone(left), orNone(right)

	if left.Type() == right.Type() {
		switch l := left.(type) {
		case types.NoneValue:
			return true
		case types.IntValue:
			return l.Val == right.(types.IntValue).Val
		case types.FloatValue:
			return l.Val == right.(types.FloatValue).Val
		case types.BoolValue:
			return l.Val == right.(types.BoolValue).Val
		case types.StrValue:
			return l.Value() == right.(types.StrValue).Value()
		default:
			// No deep comparison of containers
			return false
		}
	}

	if leftNum, rightNum, ok := numericPair(left, right); ok {
		return leftNum.float() == rightNum.float()
	}
	return false
}

// Eq implements equality: left == right
func Eq(left, right types.Value) types.Value {
	return types.NewBool(Equal(left, right))
}

// Ne implements inequality: left != right
func Ne(left, right types.Value) types.Value {
	return types.NewBool(!Equal(left, right))
}

// Lt implements less than: left < right
func Lt(left, right types.Value) (types.Value, error) {
	return order("<", left, right, func(a, b float64) bool { return a < b })
}

// Le implements less than or equal: left <= right
func Le(left, right types.Value) (types.Value, error) {
	return order("<=", left, right, func(a, b float64) bool { return a <= b })
}

// Gt implements greater than: left > right
func Gt(left, right types.Value) (types.Value, error) {
	return order(">", left, right, func(a, b float64) bool { return a > b })
}

// Ge implements greater than or equal: left >= right
func Ge(left, right types.Value) (types.Value, error) {
	return order(">=", left, right, func(a, b float64) bool { return a >= b })
}

// order compares two numeric operands after promotion to float64
func order(op string, left, right types.Value, cmp func(a, b float64) bool) (types.Value, error) {
	leftNum, rightNum, ok := numericPair(left, right)
	if !ok {
		return nil, types.TypeErrorf("'%s' not supported between instances of '%s' and '%s'",
			op, types.TypeName(left), types.TypeName(right))
	}
	return types.NewBool(cmp(leftNum.float(), rightNum.float())), nil
}

// ============================================================================
// LOGICAL OPERATORS
// ============================================================================

// Not returns the negated truthiness of v as a BOOL
func Not(v types.Value) types.Value {
	return types.NewBool(!orNone(v).Truthy())
}

// And returns left unchanged if it is falsy, else right unchanged.
// Both operands are already evaluated; no boolean reduction takes place.
func And(left, right types.Value) types.Value {
	if !orNone(left).Truthy() {
		return orNone(left)
	}
	return orNone(right)
}

// Or returns left unchanged if it is truthy, else right unchanged
func Or(left, right types.Value) types.Value {
	if orNone(left).Truthy() {
		return orNone(left)
	}
	return orNone(right)
}

// ============================================================================
// HELPER FUNCTIONS
// ============================================================================

// numeric is an INT or FLOAT operand
type numeric struct {
	i       int64
	f       float64
	isFloat bool
}

func (n numeric) float() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

// toNumeric extracts an INT or FLOAT; ok is false for every other tag
func toNumeric(v types.Value) (numeric, bool) {
	switch val := v.(type) {
	case types.IntValue:
		return numeric{i: val.Val}, true
	case types.FloatValue:
		return numeric{f: val.Val, isFloat: true}, true
	default:
		return numeric{}, false
	}
}

func numericPair(left, right types.Value) (numeric, numeric, bool) {
	l, lok := toNumeric(left)
	r, rok := toNumeric(right)
	return l, r, lok && rok
}

func unsupported(op string, left, right types.Value) error {
	return types.TypeErrorf("unsupported operand types for %s: '%s' and '%s'",
		op, types.TypeName(left), types.TypeName(right))
}

// orNone maps a nil interface to None so operators never panic on it
func orNone(v types.Value) types.Value {
	if v == nil {
		return types.NoneValue{}
	}
	return v
}
