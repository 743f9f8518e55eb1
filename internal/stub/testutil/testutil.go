// Package testutil provides shared helpers for the stub generator tests.
package testutil

import (
	"strings"
	"testing"
)

// ContainsSubstring checks if haystack contains needle (case-insensitive).
func ContainsSubstring(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// AssertNoError fails the test immediately when err is non-nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
}

// AssertErrorContains fails the test unless err is non-nil and mentions the
// expected substring (case-insensitive).
func AssertErrorContains(t *testing.T, err error, expected string) {
	t.Helper()

	if err == nil {
		t.Fatalf("Expected an error containing %q, got none", expected)
	}

	if !ContainsSubstring(err.Error(), expected) {
		t.Errorf("Expected an error containing %q, got: %v", expected, err)
	}
}
