package scanner

import "regexp"

// compiledPattern holds a pre-compiled regex pattern and its associated token kind.
type compiledPattern struct {
	Regex *regexp.Regexp
	ID    Kind
}

// compiledPatterns holds all pre-compiled regex patterns used during scanning.
// These are initialized once at package load time and never mutated afterward,
// so Tokenize is safe to call from concurrent callers.
var compiledPatterns struct {
	rules []compiledPattern
}

func init() {
	// The slice order IS the rule priority and encodes all disambiguation:
	// keyword before identifier, two-character operator before its one-character
	// prefix, '))' before ')'. Reordering entries changes observable behavior.
	compiledPatterns.rules = []compiledPattern{
		{
			Regex: regexp.MustCompile(`[fFrRbB]?"(?:[^"\n\\]|\\.)*"`),
			ID:    StringLit,
		},
		{
			// A literal adjacent pair only. A third consecutive ')' is an
			// ordinary RightParen, not part of the bad sequence.
			Regex: regexp.MustCompile(`\)\)`),
			ID:    BadParenPair,
		},
		{
			Regex: regexp.MustCompile(`(?:` + KeywordPattern + `)\b`),
			ID:    Keyword,
		},
		{
			Regex: regexp.MustCompile(`(?:` + BuiltinPattern + `)\b`),
			ID:    Builtin,
		},
		{
			Regex: regexp.MustCompile(`\d+(?:\.\d+)?`),
			ID:    Number,
		},
		{
			Regex: regexp.MustCompile(`[A-Za-z_]\w*`),
			ID:    Identifier,
		},
		{
			Regex: regexp.MustCompile(`\+=|-=|\*=|/=`),
			ID:    AugAssign,
		},
		{
			Regex: regexp.MustCompile(`==`),
			ID:    EqualComparison,
		},
		{
			Regex: regexp.MustCompile(`!=`),
			ID:    NotEqualComparison,
		},
		{
			Regex: regexp.MustCompile(`<=`),
			ID:    LessEqualComparison,
		},
		{
			Regex: regexp.MustCompile(`>=`),
			ID:    GreaterEqualComparison,
		},
		{
			Regex: regexp.MustCompile(`=`),
			ID:    Assignment,
		},
		{
			Regex: regexp.MustCompile(`<`),
			ID:    LessComparison,
		},
		{
			Regex: regexp.MustCompile(`>`),
			ID:    GreaterComparison,
		},
		{
			Regex: regexp.MustCompile(`\+`),
			ID:    Plus,
		},
		{
			Regex: regexp.MustCompile(`-`),
			ID:    Minus,
		},
		{
			Regex: regexp.MustCompile(`\*`),
			ID:    Star,
		},
		{
			Regex: regexp.MustCompile(`/`),
			ID:    Slash,
		},
		{
			Regex: regexp.MustCompile(`\(`),
			ID:    LeftParen,
		},
		{
			Regex: regexp.MustCompile(`\)`),
			ID:    RightParen,
		},
		{
			Regex: regexp.MustCompile(`,`),
			ID:    Comma,
		},
		{
			Regex: regexp.MustCompile(`:`),
			ID:    Colon,
		},
		{
			Regex: regexp.MustCompile(`\n`),
			ID:    Newline,
		},
		{
			Regex: regexp.MustCompile(`[ \t]+`),
			ID:    Whitespace,
		},
		{
			// Catch-all: one character, so the scan can never get stuck.
			// '.' does not match '\n', which the Newline rule already took.
			Regex: regexp.MustCompile(`.`),
			ID:    NotFound,
		},
	}
}
