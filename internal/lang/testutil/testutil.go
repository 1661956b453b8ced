// Package testutil provides shared assert helpers for the lang package tests.
package testutil

import (
	"strings"
	"testing"
)

// Error is the diagnostic shape the scanner reports: a full message built
// around the offending lexeme.
type Error interface {
	GetError() string
}

// AssertNoErrors fails the test when the scan reported lexical errors.
func AssertNoErrors[E Error](t *testing.T, errs []E) {
	t.Helper()
	if len(errs) != 0 {
		t.Errorf("Expected a clean scan, got %d lexical errors: %v", len(errs), errs)
	}
}

// AssertErrorCount fails when the scan reported a different number of
// lexical errors than expected.
func AssertErrorCount[E Error](t *testing.T, errs []E, expected int) {
	t.Helper()
	if len(errs) != expected {
		t.Fatalf("Expected %d lexical errors, got %d: %v", expected, len(errs), errs)
	}
}

// AssertErrorLexeme fails unless some error reports the given lexeme as
// unrecognized.
func AssertErrorLexeme[E Error](t *testing.T, errs []E, lexeme string) {
	t.Helper()
	for _, err := range errs {
		if strings.Contains(err.GetError(), lexeme+" is not recognized") {
			return
		}
	}
	t.Errorf("Expected an error for lexeme %q, got: %v", lexeme, errs)
}
