package conformance

import "gopkg.in/yaml.v3"

// TestSuite represents a complete YAML test file
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Setup       string     `yaml:"setup,omitempty"` // program run before every test
	Tests       []TestCase `yaml:"tests"`
}

// TestCase represents a single test within a suite
type TestCase struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Skip        interface{} `yaml:"skip,omitempty"`      // bool or string
	Setup       string      `yaml:"setup,omitempty"`     // program run after the suite setup
	Code        string      `yaml:"code,omitempty"`      // single expression
	Statement   string      `yaml:"statement,omitempty"` // program, value of the last statement
	Expect      Expectation `yaml:"expect"`
}

// Expectation defines what result is expected from a test. Every field
// that is present must hold.
type Expectation struct {
	Value  yaml.Node `yaml:"value,omitempty"`  // compared structurally; !tuple and !set tag sequences
	Render *string   `yaml:"render,omitempty"` // canonical rendering
	Type   string    `yaml:"type,omitempty"`   // int, str, list, ...
	Error  string    `yaml:"error,omitempty"`  // TypeError, KeyError, SyntaxError, ...
	Output *string   `yaml:"output,omitempty"` // everything print wrote
}

// HasValue reports whether a value expectation was given; an explicit
// null expects None
func (e *Expectation) HasValue() bool {
	return e.Value.Kind != 0
}

// IsEmpty reports whether no expectation is set
func (e *Expectation) IsEmpty() bool {
	return !e.HasValue() && e.Render == nil && e.Type == "" && e.Error == "" && e.Output == nil
}

// IsSkipped returns true if this test should be skipped
func (tc *TestCase) IsSkipped() (bool, string) {
	if tc.Skip == nil {
		return false, ""
	}

	switch v := tc.Skip.(type) {
	case bool:
		if v {
			return true, "skipped"
		}
		return false, ""
	case string:
		return true, v
	default:
		return false, ""
	}
}

// Source returns the program text the test executes
func (tc *TestCase) Source() string {
	if tc.Statement != "" {
		return tc.Statement
	}
	return tc.Code
}
