package eval

import (
	"fangless/ops"
	"fangless/parser"
	"fangless/types"
)

// Non-mutating methods and the builtins they call with the receiver as
// first argument
var methodBuiltins = map[string]string{
	"get":     "get",
	"sublist": "sublist",
}

// evalCall evaluates name(args). When a mutating builtin gets a variable as
// its first argument, the variable is rebound.
func (e *Evaluator) evalCall(node *parser.CallExpr) (types.Value, error) {
	b, ok := e.builtins.Get(node.Name)
	if !ok {
		return nil, undefined(node.Name)
	}

	if b.Mutating() && len(node.Args) > 0 {
		if ident, ok := node.Args[0].(*parser.IdentifierExpr); ok {
			return e.callOnBinding(node.Name, ident, node.Args[1:])
		}
	}

	args, err := e.evalAll(node.Args)
	if err != nil {
		return nil, err
	}
	return e.builtins.Call(node.Name, args)
}

// evalMethodCall evaluates recv.method(args). append, add and remove
// resolve to the mutation their name and arity select; other methods map to
// plain builtins.
func (e *Evaluator) evalMethodCall(node *parser.MethodCallExpr) (types.Value, error) {
	if m, ok := ops.Method(node.Method, len(node.Args)); ok {
		if ident, ok := node.Receiver.(*parser.IdentifierExpr); ok {
			return e.callOnBinding(m.String(), ident, node.Args)
		}
		return e.callOnValue(m.String(), node.Receiver, node.Args)
	}

	if name, ok := methodBuiltins[node.Method]; ok {
		return e.callOnValue(name, node.Receiver, node.Args)
	}

	recv, err := e.Eval(node.Receiver)
	if err != nil {
		return nil, err
	}
	return nil, types.TypeErrorf("'%s' object has no attribute '%s'", types.TypeName(recv), node.Method)
}

// callOnBinding calls builtin name with the variable ident as its target
func (e *Evaluator) callOnBinding(name string, ident *parser.IdentifierExpr, argExprs []parser.Expr) (types.Value, error) {
	slot, ok := e.env.Binding(ident.Name)
	if !ok {
		return nil, undefined(ident.Name)
	}
	args, err := e.evalAll(argExprs)
	if err != nil {
		return nil, err
	}
	return e.builtins.CallMut(name, slot, args)
}

// callOnValue calls builtin name with the evaluated receiver as its first
// argument
func (e *Evaluator) callOnValue(name string, recvExpr parser.Expr, argExprs []parser.Expr) (types.Value, error) {
	recv, err := e.Eval(recvExpr)
	if err != nil {
		return nil, err
	}
	args, err := e.evalAll(argExprs)
	if err != nil {
		return nil, err
	}
	return e.builtins.Call(name, append([]types.Value{recv}, args...))
}
