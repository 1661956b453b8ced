package scanner

// ------------
// Scanner Kind
// ------------

const (
	StringLit Kind = iota
	BadParenPair
	Keyword
	Builtin
	Number
	Identifier
	AugAssign
	EqualComparison
	NotEqualComparison
	LessEqualComparison
	GreaterEqualComparison
	Assignment
	LessComparison
	GreaterComparison
	Plus
	Minus
	Star
	Slash
	LeftParen
	RightParen
	Comma
	Colon
	Newline
	Whitespace
	NotFound
)

var kindNames = map[Kind]string{
	StringLit:              "STRING",
	BadParenPair:           "BADSEQ",
	Keyword:                "KEYWORD",
	Builtin:                "BUILTIN",
	Number:                 "NUMBER",
	Identifier:             "IDENT",
	AugAssign:              "AUGASSIGN",
	EqualComparison:        "EQ",
	NotEqualComparison:     "NEQ",
	LessEqualComparison:    "LTE",
	GreaterEqualComparison: "GTE",
	Assignment:             "ASSIGN",
	LessComparison:         "LT",
	GreaterComparison:      "GT",
	Plus:                   "PLUS",
	Minus:                  "MINUS",
	Star:                   "STAR",
	Slash:                  "SLASH",
	LeftParen:              "LPAREN",
	RightParen:             "RPAREN",
	Comma:                  "COMMA",
	Colon:                  "COLON",
	Newline:                "NEWLINE",
	Whitespace:             "SKIP",
	NotFound:               "MISMATCH",
}

func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return "UNKNOWN"
	}

	return name
}
