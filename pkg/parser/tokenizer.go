package parser

import "strings"

// Token is a single shell-style word. Quoted records whether the word
// started inside a quoted region; the extractor uses it to tell a quoted
// literal apart from a curl flag with the same spelling.
type Token struct {
	Value  string
	Quoted bool
}

// Tokenize splits a curl command into tokens, respecting quotes and
// escapes. Only the shell subset needed for a single curl invocation is
// handled: single and double quote regions, backslash escapes, and
// backslash-newline line continuations.
func Tokenize(input string) ([]Token, error) {
	var tokens []Token
	var current strings.Builder
	var inSingle, inDouble, escaped bool
	leadQuoted := false
	sawQuote := false

	input = strings.TrimSpace(input)

	flush := func() {
		if current.Len() > 0 || sawQuote {
			tokens = append(tokens, Token{Value: current.String(), Quoted: leadQuoted})
			current.Reset()
		}
		leadQuoted = false
		sawQuote = false
	}

	for i := 0; i < len(input); i++ {
		c := input[i]

		if escaped {
			escaped = false
			if c == '\n' {
				// Line continuation: drop the pair entirely
				continue
			}
			current.WriteByte(c)
			continue
		}

		switch {
		case c == '\\' && !inSingle:
			escaped = true

		case c == '\'' && !inDouble:
			if !inSingle && current.Len() == 0 && !sawQuote {
				leadQuoted = true
			}
			inSingle = !inSingle
			sawQuote = true

		case c == '"' && !inSingle:
			if !inDouble && current.Len() == 0 && !sawQuote {
				leadQuoted = true
			}
			inDouble = !inDouble
			sawQuote = true

		case (c == ' ' || c == '\t' || c == '\n' || c == '\r') && !inSingle && !inDouble:
			flush()

		default:
			current.WriteByte(c)
		}
	}

	if inSingle || inDouble {
		return nil, newParseError(ErrUnterminatedQuote, current.String())
	}
	if escaped {
		// Trailing backslash is kept literally
		current.WriteByte('\\')
	}
	flush()

	return tokens, nil
}
