package eval

import (
	"bytes"
	"testing"

	"fangless/builtins"
	"fangless/parser"
	"fangless/types"
)

// Helper to parse and evaluate an expression against a fresh evaluator
func evalExpr(t *testing.T, input string) (types.Value, error) {
	t.Helper()
	expr, err := parser.NewParser(input).ParseExpression(parser.PREC_LOWEST)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	return NewEvaluator(&bytes.Buffer{}).Eval(expr)
}

func TestEvalExpressions(t *testing.T) {
	tests := []struct {
		input string
		want  string
		typ   string
	}{
		{"42", "42", "int"},
		{"3.14", "3.14", "float"},
		{`"hello"`, "hello", "str"},
		{"True", "True", "bool"},
		{"None", "None", "None"},
		{"1 + 2 * 3", "7", "int"},
		{"(1 + 2) * 3", "9", "int"},
		{"7 / 2", "3.5", "float"},
		{"-7 // 2", "-4", "int"},
		{"-7 % 2", "-1", "int"},
		{"2 ** 10", "1024", "int"},
		{"2 ** -1", "0.5", "float"},
		{"-2 ** 2", "-4", "int"},
		{"1 + 2.5", "3.5", "float"},
		{`"ab" + "cd"`, "abcd", "str"},
		{"1 < 2 < 3", "True", "bool"},
		{"3 > 2 > 2", "False", "bool"},
		{"1 == 1.0", "True", "bool"},
		{"2 in [1, 2]", "True", "bool"},
		{"2 not in (1, 2)", "False", "bool"},
		{`"x" in {"x": 1}`, "True", "bool"},
		{"not 0", "True", "bool"},
		{"0 or 5", "5", "int"},
		{"2 and 3", "3", "int"},
		{"[] and 1", "[]", "list"},
		{"(1,)", "(1,)", "tuple"},
		{"()", "()", "tuple"},
		{"{1, 2, 1}", "{1, 2}", "set"},
		{"{}", "{}", "dict"},
		{`{"b": 1, "a": 2, "b": 3}`, "{b: 3, a: 2}", "dict"},
		{"[10, 20, 30][1]", "20", "int"},
		{`"abc"[0]`, "a", "str"},
		{`{"k": [1, 2]}["k"][1]`, "2", "int"},
		{"len([1, 2, 3])", "3", "int"},
		{"type(1.5)", "float", "str"},
		{"str(1.0)", "1.0", "str"},
		{"range(3)", "[0, 1, 2]", "list"},
		{"set([1, 2, 2])", "{1, 2}", "set"},
		{"tuple(1, 2)", "(1, 2)", "tuple"},
		{`dict("a", 1)`, "{a: 1}", "dict"},
		{`{"x": 1}.get("y")`, "None", "None"},
		{"{1, 2}.get(2)", "True", "bool"},
		{"[1, 2, 3, 4].sublist(1, 3)", "[2, 3]", "list"},
		{"[1].append(2)", "None", "None"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := evalExpr(t, tt.input)
			if err != nil {
				t.Fatalf("Eval(%s) failed: %v", tt.input, err)
			}
			if got := types.Canonical(v); got != tt.want {
				t.Errorf("Eval(%s) = %s, want %s", tt.input, got, tt.want)
			}
			if got := types.TypeName(v); got != tt.typ {
				t.Errorf("Eval(%s) type = %s, want %s", tt.input, got, tt.typ)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		input string
		code  types.ErrorCode
		msg   string
	}{
		{"1 / 0", types.E_ZERODIV, "ZeroDivisionError: division by zero"},
		{`1 + "a"`, types.E_TYPE, "TypeError: unsupported operand types for +: 'int' and 'str'"},
		{"[1][5]", types.E_INDEX, ""},
		{"[10, 20, 30][-1]", types.E_INDEX, "IndexError: list index out of range"},
		{`{"a": 1}["missing"]`, types.E_KEY, "KeyError: 'missing'"},
		{"undefined_var", types.E_NAME, "NameError: name 'undefined_var' is not defined"},
		{"nope(1)", types.E_NAME, "NameError: name 'nope' is not defined"},
		{"[1].frobnicate()", types.E_TYPE, "TypeError: 'list' object has no attribute 'frobnicate'"},
		{"range(0, 5, 0)", types.E_VALUE, ""},
		{"set(5)", types.E_TYPE, ""},
		{"len(1, 2)", types.E_TYPE, "TypeError: len() takes exactly 1 arguments (2 given)"},
		{"[1, 1 / 0]", types.E_ZERODIV, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := evalExpr(t, tt.input)
			if err == nil {
				t.Fatalf("Eval(%s) succeeded, want %s", tt.input, tt.code)
			}
			if got := types.KindOf(err); got != tt.code {
				t.Errorf("Eval(%s) error kind = %s, want %s (%v)", tt.input, got, tt.code, err)
			}
			if tt.msg != "" && err.Error() != tt.msg {
				t.Errorf("Eval(%s) error = %q, want %q", tt.input, err.Error(), tt.msg)
			}
		})
	}
}

func TestShortCircuit(t *testing.T) {
	// The right operand would fail if evaluated
	for _, input := range []string{"0 and 1 / 0", "1 or 1 / 0", "1 > 2 < 1 / 0"} {
		if _, err := evalExpr(t, input); err != nil {
			t.Errorf("Eval(%s) evaluated its right operand: %v", input, err)
		}
	}
}

func TestCustomRegistry(t *testing.T) {
	var out bytes.Buffer
	registry := builtins.NewRegistry(&out)
	registry.Register(builtins.Builtin{
		Name: "double", MinArgs: 1, MaxArgs: 1,
		Fn: func(args []types.Value) (types.Value, error) {
			return registry.Call("mul", []types.Value{args[0], types.NewInt(2)})
		},
	})

	e := NewEvaluatorWithRegistry(NewEnvironment(), registry)
	if e.Registry() != registry {
		t.Fatal("Registry() does not return the supplied registry")
	}
	v, err := e.ExecString("x = double(21)\nprint(x)\nx")
	if err != nil {
		t.Fatal(err)
	}
	if types.Canonical(v) != "42" || out.String() != "42\n" {
		t.Errorf("got %s, printed %q", types.Canonical(v), out.String())
	}

	if _, err := e.ExecString(`double("a")`); !types.IsKind(err, types.E_TYPE) {
		t.Errorf("double(str): got %v, want TypeError", err)
	}
}
