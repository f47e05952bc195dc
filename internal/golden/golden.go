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

// Package golden runs table-driven tests whose table lives in the file
// system: each test case is a file, and its expected outputs are files next
// to it.
package golden

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a directory of test cases.
type Corpus struct {
	// The root of the test data directory. This path is relative to the file
	// that calls [Corpus.Run].
	Root string

	// An environment variable holding a glob. Cases whose names match it
	// have their output files rewritten instead of compared.
	Refresh string

	// The file extension (without a dot) of files which define a test case,
	// e.g. "yaml".
	Extension string

	// The outputs of each case. The expected value of an output is found in
	// the file named after the case plus the output's extension; if that file
	// does not exist, the output is expected to be empty.
	Outputs []Output

	// Test runs one case, returning one string per element of Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Output is one output of a test case.
type Output struct {
	// Appended to the case's file name, after a dot: for "foo.yaml" and
	// "tokens", the expected output is in "foo.yaml.tokens".
	Extension string

	// Compares outputs. If nil, they are compared byte-for-byte and a
	// unified diff is reported.
	Compare Compare
}

// Compare compares an output with its expected value. It returns "" if they
// match, and a description of the mismatch otherwise.
type Compare func(got, want string) string

// Run runs every case in the corpus as a subtest of t.
func (c Corpus) Run(t *testing.T) {
	t.Helper()

	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)

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
		t.Fatalf("golden: error while walking %q: %v", root, err)
	}
	if len(tests) == 0 {
		t.Fatalf("golden: no *.%s files in %q", c.Extension, root)
	}
	slices.Sort(tests)

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("golden: invalid glob in %s: %q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("golden: refreshing test data because %s=%s", c.Refresh, refresh)
	}

	for _, path := range tests {
		name, _ := filepath.Rel(testDir, path)
		name = filepath.ToSlash(name)
		t.Run(name, func(t *testing.T) {
			input, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("golden: error while loading input file %q: %v", path, err)
			}

			results := c.Test(t, name, string(input))
			if len(results) != len(c.Outputs) {
				t.Fatalf("golden: test returned %d outputs, want %d", len(results), len(c.Outputs))
			}

			refresh, _ := doublestar.Match(refresh, name)
			for i, output := range c.Outputs {
				path := fmt.Sprint(path, ".", output.Extension)
				if refresh {
					if err := write(path, results[i]); err != nil {
						t.Errorf("golden: error while refreshing %q: %v", path, err)
					}
					continue
				}

				want, err := os.ReadFile(path)
				if err != nil && !errors.Is(err, fs.ErrNotExist) {
					t.Errorf("golden: error while loading output file %q: %v", path, err)
					continue
				}
				compare := output.Compare
				if compare == nil {
					compare = Diff
				}
				if diff := compare(results[i], string(want)); diff != "" {
					t.Errorf("output mismatch for %q:\n%s", path, diff)
				}
			}
		})
	}
}

// write replaces the output file at path. An empty output removes it.
func write(path, output string) error {
	if output == "" {
		err := os.Remove(path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.WriteFile(path, []byte(output), 0o644)
}

// Diff is the default [Compare]: it reports a unified diff from want to got.
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
	return diff
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("golden: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
