// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package golden provides corpus-driven golden-file tests: a directory of
// input files, each with its expected outputs committed alongside it under
// derived names, compared in bulk and refreshed in bulk.
package golden

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a test corpus: table-driven tests whose table is a
// directory tree.
type Corpus struct {
	// Root of the corpus directory, relative to the file that calls
	// [Corpus.Run].
	Root string

	// Name of an environment variable to consult for refresh mode. When the
	// variable is set, tests matching its value (a doublestar glob over test
	// names) rewrite their expectation files instead of comparing against
	// them, and the run fails so a refresh cannot masquerade as a pass.
	Refresh string

	// Extension (without the dot) of the files that define test cases.
	Extension string

	// The outputs each test produces. An output whose file is missing is
	// expected to be empty.
	Outputs []Output

	// Test executes one test case and returns its outputs, corresponding
	// elementwise to Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Output is one expected output of each test case in a corpus. It lives
// next to the case's input file, under the input's name plus this
// extension: foo.d with extension "rendered" reads foo.d.rendered.
type Output struct {
	Extension string

	// Compare compares an actual output with the expectation, returning an
	// empty string on match and an error rendering otherwise. Nil means
	// [Diff].
	Compare func(got, want string) string
}

// Run discovers and executes every test case under the corpus root.
func (c Corpus) Run(t *testing.T) {
	dir := callerDir()
	root := filepath.Join(dir, c.Root)

	var tests []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.TrimPrefix(filepath.Ext(p), ".") == c.Extension {
			tests = append(tests, p)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("golden: error while walking corpus %q: %v", root, err)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("golden: invalid glob in $%s: %q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("golden: refreshing expectations because %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, path := range tests {
		name, _ := filepath.Rel(dir, path)
		t.Run(name, func(t *testing.T) {
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("golden: error while loading input %q: %v", path, err)
			}

			results := c.Test(t, name, string(data))
			if len(results) != len(c.Outputs) {
				t.Fatalf("golden: test returned %d outputs, want %d", len(results), len(c.Outputs))
			}

			refreshing, _ := doublestar.Match(refresh, name)
			for i, output := range c.Outputs {
				path := fmt.Sprint(path, ".", output.Extension)
				if refreshing {
					c.refresh(t, path, results[i])
					continue
				}

				data, err := os.ReadFile(path)
				if err != nil && !errors.Is(err, fs.ErrNotExist) {
					t.Errorf("golden: error while loading expectation %q: %v", path, err)
					continue
				}

				compare := output.Compare
				if compare == nil {
					compare = Diff
				}
				if err := compare(results[i], string(data)); err != "" {
					t.Errorf("mismatch for %q:\n%s", path, err)
				}
			}
		})
	}
}

// refresh rewrites one expectation file, deleting it if the output is
// empty.
func (c Corpus) refresh(t *testing.T, path, result string) {
	if result == "" {
		err := os.Remove(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("golden: error while deleting expectation %q: %v", path, err)
		}
		return
	}
	if err := os.WriteFile(path, []byte(result), 0o666); err != nil {
		t.Errorf("golden: error while writing expectation %q: %v", path, err)
	}
}

// Diff compares two strings byte-for-byte, rendering mismatches as a
// colored unified diff.
func Diff(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}

	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+"):
			lines[i] = "\033[1;92m" + line + "\033[0m"
		case strings.HasPrefix(line, "-"):
			lines[i] = "\033[1;91m" + line + "\033[0m"
		}
	}
	return strings.Join(lines, "\n")
}

// callerDir returns the directory of the test file that called into this
// package.
func callerDir() string {
	_, file, _, ok := runtime.Caller(2)
	if !ok {
		panic("sdfmt/golden: could not determine the calling test's directory")
	}
	return filepath.Dir(file)
}
