package parser

import "strconv"

// readString reads a string literal delimited by quote, with escape sequences
func (l *Lexer) readString(quote byte) Token {
	tok := Token{
		Type: TOKEN_STRING,
		Position: Position{
			Line:   l.line,
			Column: l.column,
			Offset: l.position,
		},
	}

	start := l.position
	l.readChar() // skip opening quote

	var result []byte
	for l.ch != quote {
		// NUL is an ordinary byte here; only the input end terminates
		if l.position >= len(l.input) || l.ch == '\n' {
			// Unterminated: the parser reports it
			tok.Type = TOKEN_ILLEGAL
			tok.Value = l.input[start:min(l.position, len(l.input))]
			return tok
		}
		if l.ch == '\\' {
			l.readChar() // skip backslash
			if l.position >= len(l.input) {
				continue
			}
			switch l.ch {
			case 'n':
				result = append(result, '\n')
			case 't':
				result = append(result, '\t')
			case 'r':
				result = append(result, '\r')
			case '0':
				result = append(result, 0)
			case '"', '\'', '\\':
				result = append(result, l.ch)
			case 'x':
				if l.readPosition+2 <= len(l.input) {
					if b, err := strconv.ParseUint(l.input[l.readPosition:l.readPosition+2], 16, 8); err == nil {
						result = append(result, byte(b))
						l.readChar()
						l.readChar()
						break
					}
				}
				result = append(result, '\\', l.ch)
			default:
				// Unknown escape - keep the backslash
				result = append(result, '\\', l.ch)
			}
			l.readChar()
		} else {
			result = append(result, l.ch)
			l.readChar()
		}
	}

	l.readChar() // skip closing quote

	tok.Value = l.input[start:l.position] // Store the full quoted string
	tok.Literal = string(result)          // Store the decoded value
	return tok
}
