package eval

import (
	"fmt"
	"io"

	"fangless/parser"
	"fangless/trace"
	"fangless/types"
)

// Outcome is the effect of executing one statement
type Outcome struct {
	Value types.Value // value of the expression or the assigned value
	Bound string      // variable assigned, empty for expression statements
}

// Exec executes a single statement
func (e *Evaluator) Exec(stmt parser.Stmt) (Outcome, error) {
	switch s := stmt.(type) {
	case *parser.PassStmt:
		return Outcome{Value: types.NewNone()}, nil

	case *parser.ExprStmt:
		v, err := e.Eval(s.Expr)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Value: v}, nil

	case *parser.AssignStmt:
		v, err := e.evalAssign(s)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Value: v, Bound: s.Name}, nil

	default:
		return Outcome{}, fmt.Errorf("cannot execute %T", stmt)
	}
}

// evalAssign evaluates name = expr and name op= expr
func (e *Evaluator) evalAssign(s *parser.AssignStmt) (types.Value, error) {
	value, err := e.Eval(s.Value)
	if err != nil {
		return nil, err
	}

	if op, ok := parser.AugmentedOperator(s.Operator); ok {
		current, ok := e.env.Get(s.Name)
		if !ok {
			return nil, undefined(s.Name)
		}
		if value, err = e.applyBinary(op, current, value); err != nil {
			return nil, err
		}
	}

	e.env.Set(s.Name, value)
	trace.Bind(s.Name, value)
	return value, nil
}

// ExecProgram executes statements in order and stops at the first error,
// which is reported with the line of the failing statement
func (e *Evaluator) ExecProgram(stmts []parser.Stmt) (types.Value, error) {
	var last types.Value = types.NewNone()
	for _, stmt := range stmts {
		out, err := e.Exec(stmt)
		if err != nil {
			return nil, &RuntimeError{Line: stmt.Position().Line, Err: err}
		}
		last = out.Value
	}
	return last, nil
}

// ExecString parses and executes src, returning the value of the last
// statement
func (e *Evaluator) ExecString(src string) (types.Value, error) {
	stmts, err := parser.ParseString(src)
	if err != nil {
		return nil, err
	}
	return e.ExecProgram(stmts)
}

// Run reads a whole program from r and executes it
func (e *Evaluator) Run(r io.Reader) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read program: %w", err)
	}
	_, err = e.ExecString(string(src))
	return err
}

// RuntimeError is an error raised while executing the statement on Line
type RuntimeError struct {
	Line int
	Err  error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}
