package conformance

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// TestPath is the directory holding the bundled suites (relative to this package)
const TestPath = "testdata"

// LoadedTest represents a test with its source file path
type LoadedTest struct {
	File  string
	Suite TestSuite
	Test  TestCase
}

// LoadAllTests loads the bundled suites
func LoadAllTests() ([]LoadedTest, error) {
	return LoadDir(TestPath)
}

// LoadDir walks dir and loads every .yaml suite in it, in path order
func LoadDir(dir string) ([]LoadedTest, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("conformance directory: %w", err)
	}

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		// Only process .yaml files
		if !d.IsDir() && (filepath.Ext(path) == ".yaml" || filepath.Ext(path) == ".yml") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	var loaded []LoadedTest
	for _, path := range paths {
		// Get relative path for cleaner test names
		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			relPath = path
		}

		tests, err := loadTestFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", relPath, err)
		}
		for i := range tests {
			tests[i].File = filepath.ToSlash(relPath)
		}
		loaded = append(loaded, tests...)
	}
	return loaded, nil
}

// loadTestFile parses a single YAML file and returns all test cases
func loadTestFile(path string) ([]LoadedTest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseSuite(data)
}

// parseSuite decodes one suite document
func parseSuite(data []byte) ([]LoadedTest, error) {
	var suite TestSuite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, err
	}

	var tests []LoadedTest
	for _, test := range suite.Tests {
		tests = append(tests, LoadedTest{
			Suite: suite,
			Test:  test,
		})
	}
	return tests, nil
}
