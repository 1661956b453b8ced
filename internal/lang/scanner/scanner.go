package scanner

// ------------------------
// Scanner Types definition
// ------------------------

type Position struct {
	Line      int
	Character int
}

type Range struct {
	Start Position
	End   Position
}

type Kind int

type Token struct {
	ID    Kind
	Range Range
	Value []byte
}

// LexError reports a single unrecognized lexeme. The scanner never aborts on
// one; it consumes the offending text and keeps scanning.
type LexError struct {
	Lexeme []byte
	Range  Range
}

func (l LexError) GetError() string {
	return "Error, " + string(l.Lexeme) + " is not recognized as a token"
}

func (l LexError) GetRange() Range {
	return l.Range
}

type Error interface {
	GetError() string
	GetRange() Range
	String() string
}

// Tokenize the source text provided by 'content'.
// The scan is a single left-to-right pass: at every unconsumed position the
// rule table is tried in priority order and the first pattern matching at that
// exact offset wins. Order, not match length, breaks ties.
// Space and tab are recognized but discarded. Line breaks are kept as tokens.
// Unrecognized text becomes a LexError and the scan resumes right after it, so
// every input position is accounted for and Tokenize always terminates.
func Tokenize(content []byte) (tokens []Token, errs []Error) {
	if len(content) == 0 {
		return nil, nil
	}

	return scanAll(content)
}
