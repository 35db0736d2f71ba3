package perf

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"fangless/types"
)

func TestFibonacciImplementationsAgree(t *testing.T) {
	want := []int64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144, 233, 377, 610}
	for n, expected := range want {
		for _, kind := range Kinds {
			got, err := Compute(kind, n)
			if err != nil {
				t.Fatalf("%s(%d): %v", kind, n, err)
			}
			if iv, ok := got.(types.IntValue); !ok || iv.Val != expected {
				t.Errorf("%s(%d) = %s, want %d", kind, n, types.Canonical(got), expected)
			}
		}
	}
}

func TestFibIterLarge(t *testing.T) {
	if got := FibIter(50); got != 12586269025 {
		t.Errorf("FibIter(50) = %d", got)
	}
	v, err := FibIterValue(types.NewInt(90))
	if err != nil {
		t.Fatal(err)
	}
	if types.Canonical(v) != "2880067194370816120" {
		t.Errorf("FibIterValue(90) = %s", types.Canonical(v))
	}
}

func TestFibValueRejectsNonNumbers(t *testing.T) {
	_, err := FibIterValue(types.NewStr("5"))
	if !types.IsKind(err, types.E_TYPE) {
		t.Errorf("FibIterValue(str): got %v, want TypeError", err)
	}
	_, err = FibRecValue(types.NewNone())
	if !types.IsKind(err, types.E_TYPE) {
		t.Errorf("FibRecValue(None): got %v, want TypeError", err)
	}
	// Floats compare and add fine, but a loop count must be an Int
	_, err = FibIterValue(types.NewFloat(5))
	if !types.IsKind(err, types.E_TYPE) {
		t.Errorf("FibIterValue(5.0): got %v, want TypeError", err)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(string(k))
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %q, %v", k, got, err)
		}
	}
	if _, err := ParseKind("quantum"); err == nil {
		t.Error("ParseKind(quantum) should fail")
	}
}

func TestBench(t *testing.T) {
	samples, err := Bench(context.Background(), KindIterValue, 3, 7)
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 5 {
		t.Fatalf("got %d samples, want 5", len(samples))
	}
	for i, s := range samples {
		if s.N != 3+i {
			t.Errorf("sample %d has n=%d", i, s.N)
		}
		if s.Duration < 0 {
			t.Errorf("sample %d has negative duration", i)
		}
	}
	if types.Canonical(samples[4].Value) != "13" {
		t.Errorf("fib(7) = %s", types.Canonical(samples[4].Value))
	}

	if _, err := Bench(context.Background(), KindIter, 5, 1); err == nil {
		t.Error("inverted range should fail")
	}
	if _, err := Bench(context.Background(), Kind("nope"), 1, 1); err == nil {
		t.Error("unknown kind should fail")
	}
}

func TestBenchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	samples, err := Bench(ctx, KindIter, 1, 10)
	if err != context.Canceled {
		t.Errorf("got %v, want context.Canceled", err)
	}
	if len(samples) != 0 {
		t.Errorf("got %d samples after cancel", len(samples))
	}
}

func TestReport(t *testing.T) {
	samples := []Sample{
		{N: 1, Value: types.NewInt(1), Duration: 1500 * time.Microsecond},
		{N: 2, Value: types.NewInt(1), Duration: 2 * time.Second},
	}

	tests := []struct {
		locale string
		want   string
	}{
		{"de", "Fibonacci(1): 1\nFibonacci(2): 1\n0,001500\n2,000000\n"},
		{"en", "Fibonacci(1): 1\nFibonacci(2): 1\n0.001500\n2.000000\n"},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Report(&buf, samples, tt.locale); err != nil {
				t.Fatal(err)
			}
			if buf.String() != tt.want {
				t.Errorf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}

	var buf bytes.Buffer
	if err := Report(&buf, samples, "not a locale!"); err == nil {
		t.Error("invalid locale should fail")
	}
}

func TestFormatSecondsHasNoGrouping(t *testing.T) {
	p := message.NewPrinter(language.German)
	if got := FormatSeconds(p, 1234.5); got != "1234,500000" {
		t.Errorf("got %q", got)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := Open(filepath.Join(t.TempDir(), "bench.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	first := &Run{
		Kind:      KindIter,
		StartedAt: time.Unix(100, 0),
		Samples: []Sample{
			{N: 1, Value: types.NewInt(1), Duration: time.Millisecond},
			{N: 2, Value: types.NewInt(1), Duration: 2 * time.Millisecond},
		},
	}
	id, err := store.Record(ctx, first)
	if err != nil {
		t.Fatal(err)
	}
	if id == "" || first.ID != id {
		t.Errorf("Record returned id %q, run has %q", id, first.ID)
	}

	second := &Run{Kind: KindRecValue, StartedAt: time.Unix(200, 0)}
	if _, err := store.Record(ctx, second); err != nil {
		t.Fatal(err)
	}

	runs, err := store.Runs(ctx, KindIter)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d iter runs, want 1", len(runs))
	}
	got := runs[0]
	if got.ID != id || got.Kind != KindIter || !got.StartedAt.Equal(first.StartedAt) {
		t.Errorf("run = %+v", got)
	}
	if len(got.Samples) != 2 || got.Samples[1].N != 2 || got.Samples[1].Duration != 2*time.Millisecond {
		t.Errorf("samples = %+v", got.Samples)
	}
	if _, ok := got.Samples[0].Value.(types.IntValue); !ok {
		t.Errorf("stored value came back as %s", types.TypeName(got.Samples[0].Value))
	}
	if got.Total() != 3*time.Millisecond {
		t.Errorf("Total = %v", got.Total())
	}

	all, err := store.Runs(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || all[0].ID != id || all[1].Kind != KindRecValue {
		t.Errorf("all runs out of order: %+v", all)
	}

	// Recording the same run twice violates the primary key
	if _, err := store.Record(ctx, first); err == nil || !strings.Contains(err.Error(), "insert run") {
		t.Errorf("duplicate run: got %v", err)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("Open(\"\") should fail")
	}
}

func BenchmarkFibIterValue(b *testing.B) {
	n := types.NewInt(50)
	for i := 0; i < b.N; i++ {
		if _, err := FibIterValue(n); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFibIter(b *testing.B) {
	for i := 0; i < b.N; i++ {
		FibIter(50)
	}
}
