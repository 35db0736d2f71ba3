package conformance

import (
	"fmt"
	"strings"
	"testing"
)

func TestConformance(t *testing.T) {
	// Load all test cases
	tests, err := LoadAllTests()
	if err != nil {
		t.Fatalf("Failed to load tests: %v", err)
	}

	if len(tests) == 0 {
		t.Fatal("No tests loaded")
	}

	runner := NewRunner()
	results := runner.RunAll(tests)
	stats := ComputeStats(results)

	// Group results by file for organized output
	var files []string
	fileGroups := make(map[string][]TestResult)
	for _, result := range results {
		if _, ok := fileGroups[result.Test.File]; !ok {
			files = append(files, result.Test.File)
		}
		fileGroups[result.Test.File] = append(fileGroups[result.Test.File], result)
	}

	// Run each test file as a subtest
	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			for _, result := range fileGroups[file] {
				t.Run(result.Test.Test.Name, func(t *testing.T) {
					if result.Skipped {
						t.Skipf("Skipped: %s", result.SkipReason)
					} else if !result.Passed {
						if result.Error != nil {
							t.Errorf("Test failed: %v", result.Error)
						} else {
							t.Error("Test failed")
						}
					}
				})
			}
		})
	}

	t.Logf("\n=== Summary ===\n%s", FormatStats(stats))
}

func TestYAMLParsing(t *testing.T) {
	tests, err := LoadAllTests()
	if err != nil {
		t.Fatalf("YAML parsing failed: %v", err)
	}

	seen := make(map[string]bool)
	for i, test := range tests {
		// Each test must have a name, unique within its file
		if test.Test.Name == "" {
			t.Errorf("Test %d in %s has no name", i, test.File)
		}
		key := test.File + "/" + test.Test.Name
		if seen[key] {
			t.Errorf("Duplicate test %s", key)
		}
		seen[key] = true

		// Each test must have an expectation
		if test.Test.Expect.IsEmpty() {
			t.Errorf("Test %s in %s has no expectation", test.Test.Name, test.File)
		}

		// Each test must have code or statement
		if test.Test.Source() == "" {
			t.Errorf("Test %s in %s has no code/statement", test.Test.Name, test.File)
		}
	}

	t.Logf("All %d tests parsed successfully", len(tests))
}

// The runner itself must report mismatches, or a broken suite passes silently
func TestRunnerDetectsFailures(t *testing.T) {
	suite := `
name: self_check
setup: |
  x = 1
tests:
  - name: wrong_value
    code: "x + 1"
    expect:
      value: 3
  - name: wrong_type
    code: "x / 1"
    expect:
      type: int
  - name: wrong_error
    code: "1 / 0"
    expect:
      error: TypeError
  - name: missing_error
    code: "1"
    expect:
      error: KeyError
  - name: unexpected_error
    code: "[][0]"
    expect:
      value: 1
  - name: wrong_output
    code: "print(2)"
    expect:
      output: "3\n"
  - name: wrong_render
    code: "(1,)"
    expect:
      render: "(1)"
  - name: tuple_is_not_list
    code: "(1, 2)"
    expect:
      value: [1, 2]
  - name: no_expectation
    code: "1"
    expect: {}
  - name: two_statements_as_code
    code: "1; 2"
    expect:
      value: 2
`
	tests, err := parseSuite([]byte(suite))
	if err != nil {
		t.Fatalf("parseSuite failed: %v", err)
	}

	runner := NewRunner()
	for _, result := range runner.RunAll(tests) {
		if result.Passed || result.Skipped {
			t.Errorf("%s: expected a failure", result.Test.Test.Name)
		}
		if result.Error == nil {
			t.Errorf("%s: failure carries no error", result.Test.Test.Name)
		}
	}
}

func TestRunnerPassesMatchingExpectations(t *testing.T) {
	suite := `
name: self_check
setup: |
  d = {"b": [1, (2, 3)], "a": None}
tests:
  - name: dict_order_does_not_matter
    code: "d"
    expect:
      value: {a: None, b: [1, !tuple [2, 3]]}
      type: dict
      render: "{b: [1, (2, 3)], a: None}"
  - name: explicit_null_is_none
    code: 'd["a"]'
    expect:
      value: null
  - name: int_keys
    code: '{1: "x"}'
    expect:
      value: {1: x}
  - name: skipped_with_reason
    skip: "not ready"
    code: "1"
    expect:
      value: 2
`
	tests, err := parseSuite([]byte(suite))
	if err != nil {
		t.Fatalf("parseSuite failed: %v", err)
	}

	results := NewRunner().RunAll(tests)
	for _, result := range results[:3] {
		if !result.Passed {
			t.Errorf("%s failed: %v", result.Test.Test.Name, result.Error)
		}
	}
	if last := results[3]; !last.Skipped || last.SkipReason != "not ready" {
		t.Errorf("skip not honored: %+v", last)
	}

	stats := ComputeStats(results)
	if stats != (SummaryStats{Total: 4, Passed: 3, Skipped: 1}) {
		t.Errorf("stats = %+v", stats)
	}
}

func TestLoadDirMissing(t *testing.T) {
	_, err := LoadDir("testdata/does-not-exist")
	if err == nil || !strings.Contains(err.Error(), "conformance directory") {
		t.Errorf("got %v, want a missing directory error", err)
	}
}

// BenchmarkRunAll measures a full pass over the bundled suites
func BenchmarkRunAll(b *testing.B) {
	tests, err := LoadAllTests()
	if err != nil {
		b.Fatal(err)
	}
	runner := NewRunner()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		runner.RunAll(tests)
	}
}

func ExampleFormatStats() {
	fmt.Println(FormatStats(SummaryStats{Total: 4, Passed: 2, Failed: 1, Skipped: 1}))
	// Output: 2 passed, 1 failed, 1 skipped (4 total)
}
