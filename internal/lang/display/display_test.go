package display

import (
	"strings"
	"testing"

	"github.com/pacer/minilex/internal/lang/scanner"
)

func TestDescribe_KnownKinds(t *testing.T) {
	tests := []struct {
		name     string
		token    scanner.Token
		rowName  string
		rowDescr string
	}{
		{
			name:     "identifier",
			token:    scanner.Token{ID: scanner.Identifier, Value: []byte("inventory")},
			rowName:  "Identifier",
			rowDescr: "Variable name",
		},
		{
			name:     "assignment",
			token:    scanner.Token{ID: scanner.Assignment, Value: []byte("=")},
			rowName:  "Assignment Operator",
			rowDescr: "Assigns value to variable",
		},
		{
			name:     "number",
			token:    scanner.Token{ID: scanner.Number, Value: []byte("50")},
			rowName:  "Numeric Literal",
			rowDescr: "Integer/float constant",
		},
		{
			name:     "builtin",
			token:    scanner.Token{ID: scanner.Builtin, Value: []byte("print")},
			rowName:  "Built-in Function",
			rowDescr: "Predefined language function",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			row := Describe(tc.token)

			if row.Lexeme != string(tc.token.Value) {
				t.Errorf("Expected lexeme %q, got %q", tc.token.Value, row.Lexeme)
			}

			if row.Name != tc.rowName {
				t.Errorf("Expected name %q, got %q", tc.rowName, row.Name)
			}

			if row.Description != tc.rowDescr {
				t.Errorf("Expected description %q, got %q", tc.rowDescr, row.Description)
			}
		})
	}
}

func TestDescribe_UnknownKindFallsBack(t *testing.T) {
	row := Describe(scanner.Token{ID: scanner.NotFound, Value: []byte("?")})

	if row.Name != "MISMATCH" {
		t.Errorf("Expected raw kind tag MISMATCH, got %q", row.Name)
	}

	if row.Description != "" {
		t.Errorf("Expected empty description, got %q", row.Description)
	}
}

func TestWriteTable_EmptyTokens(t *testing.T) {
	var sb strings.Builder

	WriteTable(&sb, nil)

	if sb.Len() != 0 {
		t.Errorf("Expected no output for empty token list, got %q", sb.String())
	}
}

func TestWriteTable_RendersRows(t *testing.T) {
	tokens, errs := scanner.Tokenize([]byte("inventory = 50"))
	if len(errs) != 0 {
		t.Fatalf("Expected no errors, got %v", errs)
	}

	var sb strings.Builder
	WriteTable(&sb, tokens)
	out := sb.String()

	if !strings.Contains(out, "Tokenization Table") {
		t.Errorf("Expected table header, got %q", out)
	}

	for _, fragment := range []string{"Lexeme", "Token", "Explanation", "inventory", "Identifier", "Variable name", "Numeric Literal"} {
		if !strings.Contains(out, fragment) {
			t.Errorf("Expected output to contain %q, got %q", fragment, out)
		}
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// blank line, title, column header, separator, three token rows
	if len(lines) != 7 {
		t.Errorf("Expected 7 output lines, got %d: %q", len(lines), out)
	}
}

func TestWriteErrors_NoErrorsNotice(t *testing.T) {
	var sb strings.Builder

	WriteErrors(&sb, nil)

	if sb.String() != "No lexical errors detected\n" {
		t.Errorf("Expected no-errors notice, got %q", sb.String())
	}
}

func TestWriteErrors_InOrder(t *testing.T) {
	_, errs := scanner.Tokenize([]byte("$ @"))

	var sb strings.Builder
	WriteErrors(&sb, errs)

	expected := "Error, $ is not recognized as a token\n" +
		"Error, @ is not recognized as a token\n"

	if sb.String() != expected {
		t.Errorf("Expected %q, got %q", expected, sb.String())
	}
}
