package builtins

import (
	"fangless/ops"
	"fangless/types"
)

// binaryOperators maps builtin names to the two-operand operations
var binaryOperators = map[string]func(a, b types.Value) (types.Value, error){
	"add":      ops.Add,
	"sub":      ops.Sub,
	"mul":      ops.Mul,
	"div":      ops.Div,
	"mod":      ops.Mod,
	"floordiv": ops.FloorDiv,
	"pow":      ops.Pow,
	"lt":       ops.Lt,
	"le":       ops.Le,
	"gt":       ops.Gt,
	"ge":       ops.Ge,
	"eq": func(a, b types.Value) (types.Value, error) {
		return ops.Eq(a, b), nil
	},
	"ne": func(a, b types.Value) (types.Value, error) {
		return ops.Ne(a, b), nil
	},
}

// unaryOperators maps builtin names to the one-operand operations
var unaryOperators = map[string]func(v types.Value) (types.Value, error){
	"neg": ops.Neg,
	"pos": ops.Pos,
}

func binary(op func(a, b types.Value) (types.Value, error)) BuiltinFunc {
	return func(args []types.Value) (types.Value, error) {
		return op(args[0], args[1])
	}
}

func unary(op func(v types.Value) (types.Value, error)) BuiltinFunc {
	return func(args []types.Value) (types.Value, error) {
		return op(args[0])
	}
}

// builtinNot negates truthiness
// not(value) -> bool
func builtinNot(args []types.Value) (types.Value, error) {
	return ops.Not(args[0]), nil
}

// builtinAnd returns the first operand if it is falsy, else the second
// and(a, b) -> a or b, unchanged
func builtinAnd(args []types.Value) (types.Value, error) {
	return ops.And(args[0], args[1]), nil
}

// builtinOr returns the first operand if it is truthy, else the second
// or(a, b) -> a or b, unchanged
func builtinOr(args []types.Value) (types.Value, error) {
	return ops.Or(args[0], args[1]), nil
}
