// Package perf measures how the Value runtime compares with native Go on
// the Fibonacci programs the runtime was built to execute.
package perf

import (
	"context"
	"fmt"
	"time"

	"fangless/ops"
	"fangless/types"
)

// Kind selects an implementation
type Kind string

const (
	KindIter      Kind = "iter"       // native loop
	KindRec       Kind = "rec"        // native recursion
	KindIterValue Kind = "iter-value" // loop over Values
	KindRecValue  Kind = "rec-value"  // recursion over Values
)

// Kinds lists every implementation in report order
var Kinds = []Kind{KindIter, KindRec, KindIterValue, KindRecValue}

// ParseKind validates a kind name
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown benchmark kind %q", s)
}

// Sample is one timed computation
type Sample struct {
	N        int
	Value    types.Value
	Duration time.Duration
}

// FibIter computes the nth Fibonacci number with a loop
func FibIter(n int) int64 {
	if n <= 1 {
		return int64(n)
	}
	var a, b int64 = 0, 1
	for i := 0; i < n-1; i++ {
		a, b = b, a+b
	}
	return b
}

// FibRec computes the nth Fibonacci number by naive recursion
func FibRec(n int) int64 {
	if n <= 1 {
		return int64(n)
	}
	return FibRec(n-1) + FibRec(n-2)
}

var (
	zero = types.NewInt(0)
	one  = types.NewInt(1)
	two  = types.NewInt(2)
)

// FibIterValue is FibIter computed the way generated code does it: every
// comparison and addition goes through ops.
func FibIterValue(n types.Value) (types.Value, error) {
	small, err := ops.Le(n, one)
	if err != nil {
		return nil, err
	}
	if small.Truthy() {
		return n, nil
	}

	steps, err := ops.Sub(n, one)
	if err != nil {
		return nil, err
	}
	count, ok := steps.(types.IntValue)
	if !ok {
		return nil, types.TypeErrorf("'%s' object cannot be interpreted as an integer", types.TypeName(steps))
	}

	var a, b types.Value = zero, one
	for i := int64(0); i < count.Val; i++ {
		t, err := ops.Add(a, b)
		if err != nil {
			return nil, err
		}
		a, b = b, t
	}
	return b, nil
}

// FibRecValue is FibRec computed through ops
func FibRecValue(n types.Value) (types.Value, error) {
	small, err := ops.Le(n, one)
	if err != nil {
		return nil, err
	}
	if small.Truthy() {
		return n, nil
	}

	n1, err := ops.Sub(n, one)
	if err != nil {
		return nil, err
	}
	n2, err := ops.Sub(n, two)
	if err != nil {
		return nil, err
	}
	left, err := FibRecValue(n1)
	if err != nil {
		return nil, err
	}
	right, err := FibRecValue(n2)
	if err != nil {
		return nil, err
	}
	return ops.Add(left, right)
}

// Compute runs kind once for n
func Compute(kind Kind, n int) (types.Value, error) {
	switch kind {
	case KindIter:
		return types.NewInt(FibIter(n)), nil
	case KindRec:
		return types.NewInt(FibRec(n)), nil
	case KindIterValue:
		return FibIterValue(types.NewInt(int64(n)))
	case KindRecValue:
		return FibRecValue(types.NewInt(int64(n)))
	default:
		return nil, fmt.Errorf("unknown benchmark kind %q", kind)
	}
}

// Bench times kind for every n in [from, to]. Cancelling ctx stops between
// samples and returns what was measured so far.
func Bench(ctx context.Context, kind Kind, from, to int) ([]Sample, error) {
	if from < 0 || to < from {
		return nil, fmt.Errorf("invalid range %d..%d", from, to)
	}

	samples := make([]Sample, 0, to-from+1)
	for n := from; n <= to; n++ {
		if err := ctx.Err(); err != nil {
			return samples, err
		}
		start := time.Now()
		v, err := Compute(kind, n)
		if err != nil {
			return samples, fmt.Errorf("fibonacci(%d): %w", n, err)
		}
		samples = append(samples, Sample{N: n, Value: v, Duration: time.Since(start)})
	}
	return samples, nil
}
