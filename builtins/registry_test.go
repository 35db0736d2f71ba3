package builtins

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"fangless/trace"
	"fangless/types"
)

func vals(items ...any) []types.Value {
	out := make([]types.Value, len(items))
	for i, item := range items {
		out[i] = types.MustFromGo(item)
	}
	return out
}

func TestRegisteredNames(t *testing.T) {
	r := NewRegistry(nil)
	want := strings.Fields(`str len print type not and or add sub mul div mod
		floordiv pow neg pos eq ne lt le gt ge list dict tuple set range getitem
		contains append sublist setadd dictadd get remove`)
	for _, name := range want {
		if !r.Has(name) {
			t.Errorf("builtin %q not registered", name)
		}
	}
	if got := len(r.Names()); got != len(want) {
		t.Errorf("registered %d builtins, want %d: %v", got, len(want), r.Names())
	}
}

func TestCall(t *testing.T) {
	r := NewRegistry(nil)

	tests := []struct {
		name      string
		args      []types.Value
		want      string
		wantType  types.TypeCode
		wantError types.ErrorCode
	}{
		{"add", vals(1, 2.5), "3.5", types.TYPE_FLOAT, 0},
		{"add", vals("a", "b"), "ab", types.TYPE_STR, 0},
		{"add", vals(1, "x"), "", 0, types.E_TYPE},
		{"div", vals(1, 0), "", 0, types.E_ZERODIV},
		{"floordiv", vals(-7, 2), "-4", types.TYPE_INT, 0},
		{"pow", vals(2, 8), "256", types.TYPE_INT, 0},
		{"neg", vals(5), "-5", types.TYPE_INT, 0},
		{"eq", vals(1, 1.0), "True", types.TYPE_BOOL, 0},
		{"ne", vals("a", "a"), "False", types.TYPE_BOOL, 0},
		{"lt", vals(1, "a"), "", 0, types.E_TYPE},
		{"not", vals(0), "True", types.TYPE_BOOL, 0},
		{"and", vals(1, "x"), "x", types.TYPE_STR, 0},
		{"or", vals(0, 2.5), "2.5", types.TYPE_FLOAT, 0},
		{"str", vals(2.0), "2.0", types.TYPE_STR, 0},
		{"len", vals("hola"), "4", types.TYPE_INT, 0},
		{"len", vals(1), "", 0, types.E_TYPE},
		{"type", vals(nil), "None", types.TYPE_STR, 0},
		{"type", []types.Value{types.NewTuple(nil)}, "tuple", types.TYPE_STR, 0},
		{"list", vals(1, "a"), "[1, a]", types.TYPE_LIST, 0},
		{"list", nil, "[]", types.TYPE_LIST, 0},
		{"tuple", vals(1), "(1,)", types.TYPE_TUPLE, 0},
		{"dict", vals("x", 1, 2, "two"), "{x: 1, 2: two}", types.TYPE_DICT, 0},
		{"dict", vals("x"), "", 0, types.E_TYPE},
		{"set", nil, "{}", types.TYPE_SET, 0},
		{"set", vals([]any{1, 1, 2}), "{1, 2}", types.TYPE_SET, 0},
		{"set", vals(1), "", 0, types.E_TYPE},
		{"range", vals(3), "[0, 1, 2]", types.TYPE_LIST, 0},
		{"range", vals(2, 5), "[2, 3, 4]", types.TYPE_LIST, 0},
		{"range", vals(10, 0, -4), "[10, 6, 2]", types.TYPE_LIST, 0},
		{"range", vals(0, 1, 0), "", 0, types.E_VALUE},
		{"getitem", vals([]any{1, 2}, 1), "2", types.TYPE_INT, 0},
		{"getitem", vals([]any{1, 2}, 2), "", 0, types.E_INDEX},
		{"getitem", vals(map[string]any{"k": 1}, "j"), "", 0, types.E_KEY},
		{"contains", vals("hola", "ol"), "True", types.TYPE_BOOL, 0},
		{"sublist", vals([]any{1, 2, 3}, -5, 100), "[1, 2, 3]", types.TYPE_LIST, 0},
		{"get", vals(map[string]any{"k": 1}, "j"), "None", types.TYPE_NONE, 0},
		// Mutating builtins called without a binding return None and
		// leave the argument untouched
		{"append", vals([]any{1}, 2), "None", types.TYPE_NONE, 0},
		{"remove", vals([]any{1}, 3), "", 0, types.E_INDEX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Call(tt.name, tt.args)
			if tt.wantError != types.E_NONE {
				if !types.IsKind(err, tt.wantError) {
					t.Fatalf("expected %s, got %v, %v", tt.wantError, got, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Type() != tt.wantType || got.String() != tt.want {
				t.Errorf("got %s %q, want %s %q", types.TypeName(got), got, tt.wantType, tt.want)
			}
		})
	}
}

func TestArityErrors(t *testing.T) {
	r := NewRegistry(nil)
	tests := []struct {
		name string
		args []types.Value
		msg  string
	}{
		{"len", nil, "TypeError: len() takes exactly 1 arguments (0 given)"},
		{"range", nil, "TypeError: range() takes from 1 to 3 arguments (0 given)"},
		{"add", vals(1, 2, 3), "TypeError: add() takes exactly 2 arguments (3 given)"},
		{"dictadd", vals(map[string]any{}, 1), "TypeError: dictadd() takes exactly 3 arguments (2 given)"},
		{"append", nil, "TypeError: append() takes exactly 2 arguments (0 given)"},
	}
	for _, tt := range tests {
		_, err := r.Call(tt.name, tt.args)
		if err == nil || err.Error() != tt.msg {
			t.Errorf("%s: got %v, want %q", tt.name, err, tt.msg)
		}
	}
}

func TestUnknownBuiltin(t *testing.T) {
	r := NewRegistry(nil)
	if _, err := r.Call("nope", nil); !errors.Is(err, ErrUnknownBuiltin) {
		t.Errorf("expected ErrUnknownBuiltin, got %v", err)
	}
	var v types.Value = types.NewEmptyList()
	if _, err := r.CallMut("nope", &v, nil); !errors.Is(err, ErrUnknownBuiltin) {
		t.Errorf("expected ErrUnknownBuiltin, got %v", err)
	}
}

func TestCallMutRebinds(t *testing.T) {
	r := NewRegistry(nil)

	var lst types.Value = types.NewList(vals(1, 2, 3))
	other := lst
	if _, err := r.CallMut("append", &lst, vals(4)); err != nil {
		t.Fatal(err)
	}
	if lst.String() != "[1, 2, 3, 4]" || other.String() != "[1, 2, 3]" {
		t.Errorf("lst = %v, other = %v", lst, other)
	}

	var d types.Value = types.NewEmptyDict()
	if _, err := r.CallMut("dictadd", &d, vals("x", 10)); err != nil {
		t.Fatal(err)
	}
	if _, err := r.CallMut("setadd", &d, vals("x")); !types.IsKind(err, types.E_TYPE) {
		t.Errorf("setadd on dict should fail TypeError, got %v", err)
	}
	if d.String() != "{x: 10}" {
		t.Errorf("d = %v", d)
	}

	// Non-mutating builtins take the bound value as first argument
	got, err := r.CallMut("len", &d, nil)
	if err != nil || got.String() != "1" {
		t.Errorf("len via binding = %v, %v", got, err)
	}
}

func TestPrint(t *testing.T) {
	var out bytes.Buffer
	r := NewRegistry(&out)

	if _, err := r.Call("print", vals("hola", 1, 2.0, nil)); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Call("print", []types.Value{types.NewTuple(vals(1))}); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Call("print", nil); err != nil {
		t.Fatal(err)
	}
	want := "hola 1 2.0 None\n(1,)\n\n"
	if out.String() != want {
		t.Errorf("print wrote %q, want %q", out.String(), want)
	}
}

func TestCallsAreTraced(t *testing.T) {
	var buf bytes.Buffer
	trace.Init(true, []string{"get*"}, &buf)
	defer trace.Init(false, nil, nil)

	r := NewRegistry(nil)
	_, _ = r.Call("getitem", vals([]any{}, 0))
	_, _ = r.Call("add", vals(1, 2))

	out := buf.String()
	if !strings.Contains(out, "[TRACE] CALL getitem args=[[], 0]") {
		t.Errorf("missing call line: %q", out)
	}
	if !strings.Contains(out, "[TRACE] EXCEPTION getitem IndexError: list index out of range") {
		t.Errorf("missing exception line: %q", out)
	}
	if strings.Contains(out, "add") {
		t.Errorf("filtered builtin traced: %q", out)
	}
}
