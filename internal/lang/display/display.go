// Package display renders scan results for humans. It consumes the scanner's
// (tokens, errors) pair and knows nothing about how lexemes were matched.
package display

import (
	"fmt"
	"io"

	"github.com/pacer/minilex/internal/lang/scanner"
)

// Row is one line of the tokenization table.
type Row struct {
	Lexeme      string
	Name        string
	Description string
}

type friendly struct {
	Name        string
	Description string
}

// friendlyNames maps a token kind to its table heading and explanation.
// Built once, read-only afterward. Kinds missing here fall back to the raw
// kind tag with an empty description.
var friendlyNames = map[scanner.Kind]friendly{
	scanner.Identifier:             {"Identifier", "Variable name"},
	scanner.Keyword:                {"Reserved Keyword", "Reserved word with fixed meaning"},
	scanner.Builtin:                {"Built-in Function", "Predefined language function"},
	scanner.Number:                 {"Numeric Literal", "Integer/float constant"},
	scanner.StringLit:              {"String Literal", "Message to display"},
	scanner.Assignment:             {"Assignment Operator", "Assigns value to variable"},
	scanner.AugAssign:              {"Augmented Assignment Operator", "Applies operation and assigns result"},
	scanner.EqualComparison:        {"Equality Operator", "True when both operands are equal"},
	scanner.NotEqualComparison:     {"Inequality Operator", "True when operands differ"},
	scanner.LessEqualComparison:    {"Relational Operator", "True when left operand is at most right operand"},
	scanner.GreaterEqualComparison: {"Relational Operator", "True when left operand is at least right operand"},
	scanner.LessComparison:         {"Relational Operator", "True when left operand is below right operand"},
	scanner.GreaterComparison:      {"Relational Operator", "True when left operand is above right operand"},
	scanner.Plus:                   {"Addition Operator", "Adds right operand to left operand"},
	scanner.Minus:                  {"Subtraction Operator", "Subtracts right operand from left operand"},
	scanner.Star:                   {"Multiplication Operator", "Multiplies left operand by right operand"},
	scanner.Slash:                  {"Division Operator", "Divides left operand by right operand"},
	scanner.LeftParen:              {"Delimiter", "Function call using parenthesis"},
	scanner.RightParen:             {"Delimiter", "Function call closing parenthesis"},
	scanner.Comma:                  {"Separator", "Separates items or arguments"},
	scanner.Colon:                  {"Delimiter", "Introduces an indented block"},
	scanner.Newline:                {"Delimiter", "Marks beginning of indented block"},
}

// Describe builds the table row for a single token.
func Describe(tok scanner.Token) Row {
	entry, ok := friendlyNames[tok.ID]
	if !ok {
		entry = friendly{Name: tok.ID.String()}
	}

	return Row{
		Lexeme:      string(tok.Value),
		Name:        entry.Name,
		Description: entry.Description,
	}
}

// Rows builds the table rows for a token sequence, in token order.
func Rows(tokens []scanner.Token) []Row {
	if len(tokens) == 0 {
		return nil
	}

	rows := make([]Row, 0, len(tokens))
	for _, tok := range tokens {
		rows = append(rows, Describe(tok))
	}

	return rows
}

// WriteTable writes the tokenization table for 'tokens' to w.
// Nothing is written for an empty token sequence.
func WriteTable(w io.Writer, tokens []scanner.Token) {
	rows := Rows(tokens)
	if len(rows) == 0 {
		return
	}

	fmt.Fprintf(w, "\nTokenization Table\n")
	fmt.Fprintf(w, "%-20s%-25s%s\n", "Lexeme", "Token", "Explanation")

	for i := 0; i < 65; i++ {
		fmt.Fprint(w, "-")
	}
	fmt.Fprintln(w)

	for _, row := range rows {
		fmt.Fprintf(w, "%-20s%-25s%s\n", row.Lexeme, row.Name, row.Description)
	}
}

// WriteErrors writes every lexical error in order, or a fixed notice when
// there is none.
func WriteErrors(w io.Writer, errs []scanner.Error) {
	if len(errs) == 0 {
		fmt.Fprintln(w, "No lexical errors detected")
		return
	}

	for _, err := range errs {
		fmt.Fprintln(w, err.GetError())
	}
}
