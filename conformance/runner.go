package conformance

import (
	"bytes"
	"fmt"
	"strings"

	"fangless/eval"
	"fangless/parser"
	"fangless/types"
)

// TestResult represents the outcome of running a single test
type TestResult struct {
	Test       LoadedTest
	Passed     bool
	Skipped    bool
	SkipReason string
	Error      error
}

// Runner executes conformance tests. Every test gets a fresh evaluator, so
// bindings never leak between tests.
type Runner struct{}

// NewRunner creates a new test runner
func NewRunner() *Runner {
	return &Runner{}
}

// outcome is what executing a test produced
type outcome struct {
	val    types.Value
	err    error
	output string
}

// Run executes a single test case
func (r *Runner) Run(test LoadedTest) TestResult {
	// Check if test should be skipped
	if skipped, reason := test.Test.IsSkipped(); skipped {
		return TestResult{
			Test:       test,
			Skipped:    true,
			SkipReason: reason,
		}
	}

	src := test.Test.Source()
	if src == "" {
		return TestResult{
			Test:       test,
			Skipped:    true,
			SkipReason: "no code/statement",
		}
	}

	var out bytes.Buffer
	evaluator := eval.NewEvaluator(&out)

	// Run suite setup, then test-specific setup
	if err := runSetup(evaluator, test.Suite.Setup); err != nil {
		return TestResult{Test: test, Error: fmt.Errorf("suite setup failed: %w", err)}
	}
	if err := runSetup(evaluator, test.Test.Setup); err != nil {
		return TestResult{Test: test, Error: fmt.Errorf("test setup failed: %w", err)}
	}
	out.Reset()

	var got outcome
	if test.Test.Statement == "" {
		got.val, got.err = evalCode(evaluator, test.Test.Code)
	} else {
		got.val, got.err = evaluator.ExecString(test.Test.Statement)
	}
	got.output = out.String()

	passed, err := checkExpectation(test.Test.Expect, got)
	return TestResult{
		Test:   test,
		Passed: passed,
		Error:  err,
	}
}

// runSetup executes a setup program
func runSetup(e *eval.Evaluator, src string) error {
	if strings.TrimSpace(src) == "" {
		return nil
	}
	_, err := e.ExecString(src)
	return err
}

// evalCode evaluates a single expression; trailing input is a syntax error
func evalCode(e *eval.Evaluator, code string) (types.Value, error) {
	stmts, err := parser.ParseString(code)
	if err != nil {
		return nil, err
	}
	if len(stmts) != 1 {
		return nil, fmt.Errorf("code must be a single expression, got %d statements", len(stmts))
	}
	stmt, ok := stmts[0].(*parser.ExprStmt)
	if !ok {
		return nil, fmt.Errorf("code must be an expression, got %T", stmts[0])
	}
	return e.Eval(stmt.Expr)
}

// RunAll executes all loaded tests
func (r *Runner) RunAll(tests []LoadedTest) []TestResult {
	results := make([]TestResult, len(tests))
	for i, test := range tests {
		results[i] = r.Run(test)
	}
	return results
}

// SummaryStats computes statistics from test results
type SummaryStats struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// ComputeStats generates statistics from test results
func ComputeStats(results []TestResult) SummaryStats {
	stats := SummaryStats{Total: len(results)}
	for _, r := range results {
		if r.Skipped {
			stats.Skipped++
		} else if r.Passed {
			stats.Passed++
		} else {
			stats.Failed++
		}
	}
	return stats
}

// FormatStats returns a human-readable summary
func FormatStats(stats SummaryStats) string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped (%d total)",
		stats.Passed, stats.Failed, stats.Skipped, stats.Total)
}

// ErrorKind names the kind of err the way suites spell it
func ErrorKind(err error) string {
	if parser.IsParseError(err) {
		return "SyntaxError"
	}
	if code := types.KindOf(err); code != types.E_NONE {
		return code.String()
	}
	return err.Error()
}

// checkExpectation checks if the outcome matches every expectation present
func checkExpectation(expect Expectation, got outcome) (bool, error) {
	if expect.IsEmpty() {
		return false, fmt.Errorf("no expectation specified")
	}

	if expect.Error != "" {
		if got.err == nil {
			return false, fmt.Errorf("expected error %s, got value: %s", expect.Error, types.Canonical(got.val))
		}
		if kind := ErrorKind(got.err); kind != expect.Error {
			return false, fmt.Errorf("expected error %s, got %s (%v)", expect.Error, kind, got.err)
		}
	} else if got.err != nil {
		return false, fmt.Errorf("unexpected error: %w", got.err)
	}

	if expect.Output != nil && got.output != *expect.Output {
		return false, fmt.Errorf("expected output %q, got %q", *expect.Output, got.output)
	}
	if got.err != nil {
		return true, nil
	}

	if expect.HasValue() {
		expectedVal, err := convertYAMLValue(&expect.Value)
		if err != nil {
			return false, fmt.Errorf("failed to convert expected value: %w", err)
		}
		if !valuesMatch(expectedVal, got.val) {
			return false, fmt.Errorf("expected %s %s, got %s %s",
				types.TypeName(expectedVal), types.Canonical(expectedVal),
				types.TypeName(got.val), types.Canonical(got.val))
		}
	}

	if expect.Type != "" {
		code, ok := types.TypeFromString(expect.Type)
		if !ok {
			return false, fmt.Errorf("unknown type: %s", expect.Type)
		}
		if got.val.Type() != code {
			return false, fmt.Errorf("expected type %s, got %s", expect.Type, types.TypeName(got.val))
		}
	}

	if expect.Render != nil && types.Canonical(got.val) != *expect.Render {
		return false, fmt.Errorf("expected rendering %q, got %q", *expect.Render, types.Canonical(got.val))
	}

	return true, nil
}
