package testutil

import (
	"strings"
	"testing"
)

// AssertContains asserts that a string contains a substring.
func AssertContains(t *testing.T, str, substr string) {
	t.Helper()
	if !strings.Contains(str, substr) {
		t.Errorf("string %q does not contain %q", str, substr)
	}
}

// AssertNotContains asserts that a string does not contain a substring.
func AssertNotContains(t *testing.T, str, substr string) {
	t.Helper()
	if substr != "" && strings.Contains(str, substr) {
		t.Errorf("string %q contains %q but should not", str, substr)
	}
}

// AssertNoError asserts that an error is nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// AssertError asserts that an error is not nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Error("expected error but got nil")
	}
}
