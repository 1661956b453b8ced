package scanner

// Reserved words of the toy language.
const (
	KeywordIf       = "if"
	KeywordElif     = "elif"
	KeywordElse     = "else"
	KeywordWhile    = "while"
	KeywordFor      = "for"
	KeywordDef      = "def"
	KeywordReturn   = "return"
	KeywordBreak    = "break"
	KeywordContinue = "continue"
	KeywordAnd      = "and"
	KeywordOr       = "or"
	KeywordNot      = "not"
	KeywordIn       = "in"
)

// KeywordPattern is the regex alternation matching all reserved words.
// The scanner appends a word boundary so that an identifier merely containing
// a keyword (e.g. "ifx") never matches.
const KeywordPattern = KeywordIf + "|" + KeywordElif + "|" + KeywordElse + "|" +
	KeywordWhile + "|" + KeywordFor + "|" + KeywordDef + "|" + KeywordReturn + "|" +
	KeywordBreak + "|" + KeywordContinue + "|" + KeywordAnd + "|" + KeywordOr + "|" +
	KeywordNot + "|" + KeywordIn

// Built-in function names.
const (
	BuiltinPrint = "print"
	BuiltinInput = "input"
	BuiltinLen   = "len"
	BuiltinRange = "range"
)

// BuiltinPattern is the regex alternation matching all built-in function names.
const BuiltinPattern = BuiltinPrint + "|" + BuiltinInput + "|" + BuiltinLen + "|" +
	BuiltinRange
