package eval

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fangless/parser"
	"fangless/trace"
	"fangless/types"
)

func run(t *testing.T, src string) (*Evaluator, string, error) {
	t.Helper()
	var out bytes.Buffer
	e := NewEvaluator(&out)
	_, err := e.ExecString(src)
	return e, out.String(), err
}

func TestAssignment(t *testing.T) {
	e, _, err := run(t, "x = 1\ny = x + 1\nx = 3.5")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	env := e.GetEnvironment()
	if x, _ := env.Get("x"); types.Canonical(x) != "3.5" {
		t.Errorf("x = %v, want 3.5", x)
	}
	if y, _ := env.Get("y"); types.Canonical(y) != "2" {
		t.Errorf("y = %v, want 2", y)
	}
	if got := strings.Join(env.Names(), ","); got != "x,y" {
		t.Errorf("Names() = %s, want x,y", got)
	}
}

func TestAugmentedAssignment(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"n = 5; n += 2", "7"},
		{"n = 5; n -= 2", "3"},
		{"n = 5; n *= 2", "10"},
		{"n = 5; n /= 2", "2.5"},
		{"n = 5; n //= 2", "2"},
		{"n = 5; n %= 2", "1"},
		{"n = 5; n **= 2", "25"},
		{`n = "ab"; n += "c"`, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			e, _, err := run(t, tt.src)
			if err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if n, _ := e.GetEnvironment().Get("n"); types.Canonical(n) != tt.want {
				t.Errorf("n = %v, want %s", n, tt.want)
			}
		})
	}

	if _, _, err := run(t, "missing += 1"); !types.IsKind(err, types.E_NAME) {
		t.Errorf("augmenting an unbound name: got %v, want NameError", err)
	}
}

func TestMutationRebindsVariable(t *testing.T) {
	e, _, err := run(t, `
lst = [1, 2]
alias = lst
lst.append(3)
append(lst, 4)
d = {}
d.add("k", 1)
dictadd(d, "j", 2)
s = set()
s.add(1)
setadd(s, 2)
remove(s, 1)`)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	env := e.GetEnvironment()
	want := map[string]string{
		"lst":   "[1, 2, 3, 4]",
		"alias": "[1, 2]",
		"d":     "{k: 1, j: 2}",
		"s":     "{2}",
	}
	for name, rendering := range want {
		v, ok := env.Get(name)
		if !ok {
			t.Fatalf("%s is unbound", name)
		}
		if got := types.Canonical(v); got != rendering {
			t.Errorf("%s = %s, want %s", name, got, rendering)
		}
	}
}

func TestMutationErrors(t *testing.T) {
	tests := []struct {
		src  string
		code types.ErrorCode
	}{
		{"t = (1, 2); t.append(3)", types.E_TYPE},
		{"l = [1]; l.remove(3)", types.E_INDEX},
		{`d = {"a": 1}; d.remove("b")`, types.E_KEY},
		{"s = {1}; s.remove(2)", types.E_KEY},
		{"nothing.append(1)", types.E_NAME},
		{"x = 1; x.add(1, 2)", types.E_TYPE},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, _, err := run(t, tt.src)
			if got := types.KindOf(err); got != tt.code {
				t.Errorf("got %v, want %s", err, tt.code)
			}
		})
	}
}

func TestRuntimeErrorCarriesLine(t *testing.T) {
	_, _, err := run(t, "x = 1\n\ny = x / 0\nz = 2")
	var rerr *RuntimeError
	if !errors.As(err, &rerr) {
		t.Fatalf("got %T %v, want RuntimeError", err, err)
	}
	if rerr.Line != 3 {
		t.Errorf("line = %d, want 3", rerr.Line)
	}
	if err.Error() != "line 3: ZeroDivisionError: division by zero" {
		t.Errorf("error = %q", err.Error())
	}
	if !types.IsKind(err, types.E_ZERODIV) {
		t.Error("kind lost through RuntimeError")
	}
}

func TestParseErrorStopsBeforeRunning(t *testing.T) {
	_, out, err := run(t, "print(1)\nprint(")
	if !parser.IsParseError(err) {
		t.Fatalf("got %v, want a parse error", err)
	}
	if out != "" {
		t.Errorf("program ran before the parse error: %q", out)
	}
}

func TestExecOutcome(t *testing.T) {
	e := NewEvaluator(&bytes.Buffer{})
	stmts, err := parser.ParseString("a = 2\na * 3\npass")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	want := []Outcome{
		{Value: types.NewInt(2), Bound: "a"},
		{Value: types.NewInt(6)},
		{Value: types.NewNone()},
	}
	for i, stmt := range stmts {
		got, err := e.Exec(stmt)
		if err != nil {
			t.Fatalf("Exec(%d) failed: %v", i, err)
		}
		if got.Bound != want[i].Bound || types.Canonical(got.Value) != types.Canonical(want[i].Value) {
			t.Errorf("Exec(%d) = %+v, want %+v", i, got, want[i])
		}
	}
}

func TestAssignmentIsTraced(t *testing.T) {
	var buf bytes.Buffer
	trace.Init(true, []string{"add"}, &buf)
	defer trace.Init(false, nil, nil)

	if _, _, err := run(t, "x = 1 + 2"); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	want := "[TRACE] CALL add args=[1, 2]\n[TRACE] RETURN add => 3\n[TRACE]   BIND x = 3\n"
	if buf.String() != want {
		t.Errorf("trace output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPrograms(t *testing.T) {
	programs, err := filepath.Glob(filepath.Join("testdata", "*.fl"))
	if err != nil {
		t.Fatal(err)
	}
	if len(programs) == 0 {
		t.Fatal("no programs in testdata")
	}

	for _, path := range programs {
		t.Run(filepath.Base(path), func(t *testing.T) {
			src, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer src.Close()

			want, err := os.ReadFile(strings.TrimSuffix(path, ".fl") + ".out")
			if err != nil {
				t.Fatal(err)
			}

			var out bytes.Buffer
			if err := NewEvaluator(&out).Run(src); err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			if out.String() != string(want) {
				t.Errorf("output:\n%s\nwant:\n%s", out.String(), want)
			}
		})
	}
}
