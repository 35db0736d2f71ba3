package eval

import (
	"fmt"
	"io"

	"fangless/builtins"
	"fangless/ops"
	"fangless/parser"
	"fangless/types"
)

// Evaluator walks the AST and evaluates expressions and statements.
// Every operator is dispatched through the builtin registry by name, so
// tracing sees the same calls a program makes explicitly.
type Evaluator struct {
	env      *Environment
	builtins *builtins.Registry
}

// NewEvaluator creates an evaluator with a fresh environment whose print
// builtin writes to out (stdout when nil)
func NewEvaluator(out io.Writer) *Evaluator {
	return NewEvaluatorWithEnv(NewEnvironment(), out)
}

// NewEvaluatorWithEnv creates an evaluator over an existing environment
func NewEvaluatorWithEnv(env *Environment, out io.Writer) *Evaluator {
	return &Evaluator{
		env:      env,
		builtins: builtins.NewRegistry(out),
	}
}

// NewEvaluatorWithRegistry creates an evaluator using a caller supplied
// builtin registry
func NewEvaluatorWithRegistry(env *Environment, registry *builtins.Registry) *Evaluator {
	return &Evaluator{
		env:      env,
		builtins: registry,
	}
}

// GetEnvironment returns the evaluator's environment
func (e *Evaluator) GetEnvironment() *Environment {
	return e.env
}

// Registry returns the builtin registry calls resolve against
func (e *Evaluator) Registry() *builtins.Registry {
	return e.builtins
}

// Binary operator tokens and the builtins implementing them
var binaryBuiltins = map[parser.TokenType]string{
	parser.TOKEN_PLUS:    "add",
	parser.TOKEN_MINUS:   "sub",
	parser.TOKEN_STAR:    "mul",
	parser.TOKEN_SLASH:   "div",
	parser.TOKEN_DSLASH:  "floordiv",
	parser.TOKEN_PERCENT: "mod",
	parser.TOKEN_POWER:   "pow",
	parser.TOKEN_EQ:      "eq",
	parser.TOKEN_NE:      "ne",
	parser.TOKEN_LT:      "lt",
	parser.TOKEN_LE:      "le",
	parser.TOKEN_GT:      "gt",
	parser.TOKEN_GE:      "ge",
}

var unaryBuiltins = map[parser.TokenType]string{
	parser.TOKEN_MINUS: "neg",
	parser.TOKEN_PLUS:  "pos",
	parser.TOKEN_NOT:   "not",
}

// Eval evaluates an expression
func (e *Evaluator) Eval(expr parser.Expr) (types.Value, error) {
	switch n := expr.(type) {
	case *parser.LiteralExpr:
		return n.Value, nil
	case *parser.IdentifierExpr:
		return e.evalIdentifier(n)
	case *parser.ParenExpr:
		return e.Eval(n.Expr)
	case *parser.UnaryExpr:
		return e.evalUnary(n)
	case *parser.BinaryExpr:
		return e.evalBinary(n)
	case *parser.CompareExpr:
		return e.evalCompare(n)
	case *parser.IndexExpr:
		return e.evalIndex(n)
	case *parser.CallExpr:
		return e.evalCall(n)
	case *parser.MethodCallExpr:
		return e.evalMethodCall(n)
	case *parser.ListExpr:
		items, err := e.evalAll(n.Elements)
		if err != nil {
			return nil, err
		}
		return ops.List(items), nil
	case *parser.TupleExpr:
		items, err := e.evalAll(n.Elements)
		if err != nil {
			return nil, err
		}
		return ops.Tuple(items), nil
	case *parser.SetExpr:
		items, err := e.evalAll(n.Elements)
		if err != nil {
			return nil, err
		}
		return ops.Set(ops.List(items))
	case *parser.DictExpr:
		return e.evalDict(n)
	default:
		return nil, fmt.Errorf("cannot evaluate %T", expr)
	}
}

// evalIdentifier looks up a variable by name
func (e *Evaluator) evalIdentifier(node *parser.IdentifierExpr) (types.Value, error) {
	val, ok := e.env.Get(node.Name)
	if !ok {
		return nil, undefined(node.Name)
	}
	return val, nil
}

func undefined(name string) error {
	return types.NewError(types.E_NAME, "name '%s' is not defined", name)
}

// evalUnary evaluates -x, +x and not x
func (e *Evaluator) evalUnary(node *parser.UnaryExpr) (types.Value, error) {
	operand, err := e.Eval(node.Operand)
	if err != nil {
		return nil, err
	}
	name, ok := unaryBuiltins[node.Operator]
	if !ok {
		return nil, fmt.Errorf("unknown unary operator %s", node.Operator)
	}
	return e.builtins.Call(name, []types.Value{operand})
}

// evalBinary evaluates arithmetic and logical operators
func (e *Evaluator) evalBinary(node *parser.BinaryExpr) (types.Value, error) {
	// Short-circuit evaluation for and/or
	if node.Operator == parser.TOKEN_AND || node.Operator == parser.TOKEN_OR {
		return e.evalLogical(node)
	}

	left, err := e.Eval(node.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(node.Right)
	if err != nil {
		return nil, err
	}
	return e.applyBinary(node.Operator, left, right)
}

// applyBinary calls the builtin behind a binary operator token
func (e *Evaluator) applyBinary(op parser.TokenType, left, right types.Value) (types.Value, error) {
	switch op {
	case parser.TOKEN_IN:
		return e.builtins.Call("contains", []types.Value{right, left})
	case parser.TOKEN_NOT_IN:
		found, err := e.builtins.Call("contains", []types.Value{right, left})
		if err != nil {
			return nil, err
		}
		return e.builtins.Call("not", []types.Value{found})
	}

	name, ok := binaryBuiltins[op]
	if !ok {
		return nil, fmt.Errorf("unknown binary operator %s", op)
	}
	return e.builtins.Call(name, []types.Value{left, right})
}

// evalLogical evaluates and/or. The right operand is only evaluated when
// the left one does not decide the result.
func (e *Evaluator) evalLogical(node *parser.BinaryExpr) (types.Value, error) {
	left, err := e.Eval(node.Left)
	if err != nil {
		return nil, err
	}

	if node.Operator == parser.TOKEN_AND && !left.Truthy() {
		return left, nil
	}
	if node.Operator == parser.TOKEN_OR && left.Truthy() {
		return left, nil
	}

	right, err := e.Eval(node.Right)
	if err != nil {
		return nil, err
	}
	name := "and"
	if node.Operator == parser.TOKEN_OR {
		name = "or"
	}
	return e.builtins.Call(name, []types.Value{left, right})
}

// evalCompare evaluates a comparison chain. a < b < c means
// (a < b) and (b < c) with b evaluated once; the first falsy link is
// the result.
func (e *Evaluator) evalCompare(node *parser.CompareExpr) (types.Value, error) {
	left, err := e.Eval(node.Operands[0])
	if err != nil {
		return nil, err
	}

	var result types.Value
	for i, op := range node.Operators {
		right, err := e.Eval(node.Operands[i+1])
		if err != nil {
			return nil, err
		}
		result, err = e.applyBinary(op, left, right)
		if err != nil {
			return nil, err
		}
		if !result.Truthy() {
			return result, nil
		}
		left = right
	}
	return result, nil
}

// evalIndex evaluates container[index]
func (e *Evaluator) evalIndex(node *parser.IndexExpr) (types.Value, error) {
	container, err := e.Eval(node.Expr)
	if err != nil {
		return nil, err
	}
	index, err := e.Eval(node.Index)
	if err != nil {
		return nil, err
	}
	return e.builtins.Call("getitem", []types.Value{container, index})
}

// evalDict evaluates a dict display; later duplicate keys overwrite
// earlier ones
func (e *Evaluator) evalDict(node *parser.DictExpr) (types.Value, error) {
	pairs := make([][2]types.Value, 0, len(node.Entries))
	for _, entry := range node.Entries {
		key, err := e.Eval(entry.Key)
		if err != nil {
			return nil, err
		}
		val, err := e.Eval(entry.Value)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, [2]types.Value{key, val})
	}
	return ops.Dict(pairs), nil
}

// evalAll evaluates expressions left to right
func (e *Evaluator) evalAll(exprs []parser.Expr) ([]types.Value, error) {
	vals := make([]types.Value, len(exprs))
	for i, expr := range exprs {
		v, err := e.Eval(expr)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}
