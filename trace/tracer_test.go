package trace

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"fangless/types"
)

func TestTracerDisabled(t *testing.T) {
	var buf bytes.Buffer
	Init(false, nil, &buf)
	defer Init(false, nil, nil)

	if IsEnabled() {
		t.Fatal("tracer should be disabled")
	}
	Call("add", []types.Value{types.NewInt(1)})
	Return("add", types.NewInt(2))
	if buf.Len() != 0 {
		t.Errorf("disabled tracer wrote %q", buf.String())
	}
}

func TestTracerCallReturn(t *testing.T) {
	var buf bytes.Buffer
	Init(true, nil, &buf)
	defer Init(false, nil, nil)

	Call("add", []types.Value{types.NewInt(1), types.NewStr("x")})
	Return("len", types.NewInt(3))
	Exception("getitem", types.KeyError("y"))
	Exception("run", errors.New("boom"))

	want := strings.Join([]string{
		`[TRACE] CALL add args=[1, "x"]`,
		`[TRACE] RETURN len => 3`,
		`[TRACE] EXCEPTION getitem KeyError: 'y'`,
		`[TRACE] EXCEPTION run boom`,
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestTracerFilters(t *testing.T) {
	var buf bytes.Buffer
	Init(true, ParseFilters("set*, dictadd"), &buf)
	defer Init(false, nil, nil)

	Call("setadd", nil)
	Call("dictadd", nil)
	Call("append", nil)

	out := buf.String()
	if !strings.Contains(out, "CALL setadd") || !strings.Contains(out, "CALL dictadd") {
		t.Errorf("filtered calls missing: %q", out)
	}
	if strings.Contains(out, "append") {
		t.Errorf("unfiltered call traced: %q", out)
	}
}

func TestTracerBindTruncates(t *testing.T) {
	var buf bytes.Buffer
	Init(true, nil, &buf)
	defer Init(false, nil, nil)

	Bind("s", types.NewStr(strings.Repeat("a", 100)))
	line := strings.TrimSuffix(buf.String(), "\n")
	if !strings.HasSuffix(line, "...") || len(line) > 100 {
		t.Errorf("long value not truncated: %q", line)
	}
}

func TestParseFilters(t *testing.T) {
	got := ParseFilters(" a, ,b*,")
	if len(got) != 2 || got[0] != "a" || got[1] != "b*" {
		t.Errorf("ParseFilters = %v", got)
	}
	if ParseFilters("") != nil {
		t.Error("empty -trace-filter should yield no filters")
	}
}
