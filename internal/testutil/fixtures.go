// Package testutil provides small file and assertion helpers shared by
// this repository's tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// resolveTestData searches for testdata/filename upward from the file
// that is `skip` call frames above this one, falling back to a path
// relative to the test's working directory.
func resolveTestData(t *testing.T, skip int, filename string) string {
	t.Helper()

	_, callerFile, _, ok := runtime.Caller(skip)
	if !ok {
		t.Fatal("failed to resolve caller file path")
	}

	dir := filepath.Dir(callerFile)
	for i := 0; i < 5; i++ {
		candidate := filepath.Join(dir, "testdata", filename)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		dir = filepath.Dir(dir)
	}

	return filepath.Join("testdata", filename)
}

// GetTestDataPath resolves filename inside the nearest testdata
// directory, searching upward from the calling test file.
func GetTestDataPath(t *testing.T, filename string) string {
	t.Helper()
	return resolveTestData(t, 2, filename)
}

// LoadFixture reads a testdata fixture and returns its contents.
func LoadFixture(t *testing.T, filename string) []byte {
	t.Helper()
	path := resolveTestData(t, 2, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to load fixture %s: %v", filename, err)
	}
	return data
}

// LoadFixtureString reads a testdata fixture as a string.
func LoadFixtureString(t *testing.T, filename string) string {
	t.Helper()
	path := resolveTestData(t, 2, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to load fixture %s: %v", filename, err)
	}
	return string(data)
}

// TempDir creates a test-scoped temporary directory.
func TempDir(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "bvhtraverse-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() {
		os.RemoveAll(dir)
	})
	return dir
}

// WriteFile writes content to filename inside dir and returns the path.
func WriteFile(t *testing.T, dir, filename, content string) string {
	t.Helper()
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	return path
}
