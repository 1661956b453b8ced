package scanner

import "log"

// newlineLexeme is the normalized two-character rendition of a line break.
// Tokens are meant for display tables, where a literal line feed would break
// the row layout.
var newlineLexeme = []byte(`\n`)

type tokenizer struct {
	Tokens []Token
	Errs   []Error
}

func (t *tokenizer) appendToken(id Kind, pos Range, val []byte) {
	to := Token{
		ID:    id,
		Range: pos,
		Value: val,
	}

	t.Tokens = append(t.Tokens, to)
}

func (t *tokenizer) appendError(lexeme []byte, pos Range) {
	if len(lexeme) == 0 {
		log.Printf("scanner expected an erroneous lexeme but got none while appending error\n")
		panic("scanner expected an erroneous lexeme but got none while appending error")
	}

	lexErr := &LexError{
		Lexeme: lexeme,
		Range:  pos,
	}

	t.Errs = append(t.Errs, lexErr)
}

func createTokenizer() *tokenizer {
	return &tokenizer{
		Tokens: nil,
		Errs:   nil,
	}
}

// scanAll consumes 'data' entirely, one rule match per iteration.
func scanAll(data []byte) ([]Token, []Error) {
	tokenHandler := createTokenizer()
	patternRules := compiledPatterns.rules

	var loc []int
	var found bool

	var currentLineNumber, currentColumnNumber int

	for len(data) > 0 {
		found = false

		for _, rule := range patternRules {
			loc = rule.Regex.FindIndex(data)

			if loc == nil || loc[0] != 0 {
				continue
			}

			found = true

			pos := Range{
				Start: Position{
					Line:      currentLineNumber,
					Character: currentColumnNumber,
				},
				End: Position{
					Line:      currentLineNumber,
					Character: currentColumnNumber + loc[1],
				},
			}

			lexeme := data[0:loc[1]]

			switch rule.ID {
			case Whitespace:
				// recognized, contributes to neither tokens nor errors

			case Newline:
				tokenHandler.appendToken(Newline, pos, newlineLexeme)
				currentLineNumber++
				currentColumnNumber = 0

			case BadParenPair, NotFound:
				tokenHandler.appendError(lexeme, pos)

			default:
				tokenHandler.appendToken(rule.ID, pos, lexeme)
			}

			if rule.ID != Newline {
				currentColumnNumber += loc[1]
			}

			data = data[loc[1]:]
			break
		}

		// The catch-all rule consumes one character of anything, so a miss
		// here means the rule table itself is broken.
		if !found {
			log.Printf(
				"no scanner rule matched, catch-all rule is unreachable\n remaining = %q\n",
				data,
			)
			panic("no scanner rule matched, catch-all rule is unreachable")
		}
	}

	return tokenHandler.Tokens, tokenHandler.Errs
}
