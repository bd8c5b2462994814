// Package testutil provides shared test helpers for golden file testing.
package testutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

// Update is a flag that, when set, regenerates golden files from current output.
// Usage: go test ./... -update
var Update = flag.Bool("update", false, "update golden files")

// CheckFunc renders the lint output for one JavaScript source file.
type CheckFunc func(t *testing.T, input string) string

// RunGolden runs a single golden file test in the given directory.
// It reads input.js, applies checkFn, and compares against expected.txt.
func RunGolden(t *testing.T, dir string, checkFn CheckFunc) {
	t.Helper()

	inputPath := filepath.Join(dir, "input.js")
	expectedPath := filepath.Join(dir, "expected.txt")

	inputBytes, err := os.ReadFile(inputPath)
	if err != nil {
		t.Fatalf("failed to read %s: %v", inputPath, err)
	}

	actual := checkFn(t, string(inputBytes))

	if *Update {
		if err := os.WriteFile(expectedPath, []byte(actual), 0o644); err != nil {
			t.Fatalf("failed to update golden file %s: %v", expectedPath, err)
		}
		t.Logf("updated golden file: %s", expectedPath)
		return
	}

	expectedBytes, err := os.ReadFile(expectedPath)
	if err != nil {
		t.Fatalf("failed to read %s: %v", expectedPath, err)
	}

	if expected := string(expectedBytes); actual != expected {
		t.Errorf("output mismatch for %s:\n--- expected\n%s\n--- actual\n%s", dir, expected, actual)
	}
}

// RunGoldenDir runs RunGolden as a subtest for every case directory under
// testdataDir.
func RunGoldenDir(t *testing.T, testdataDir string, checkFn CheckFunc) {
	t.Helper()

	entries, err := os.ReadDir(testdataDir)
	if err != nil {
		t.Fatalf("failed to read testdata dir %s: %v", testdataDir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		t.Run(entry.Name(), func(t *testing.T) {
			RunGolden(t, filepath.Join(testdataDir, entry.Name()), checkFn)
		})
	}
}
