package parser

import (
	"unicode"
)

// Lexer tokenizes program source
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int
	column       int
	depth        int // open brackets; newlines inside them are whitespace
}

// NewLexer creates a new Lexer instance
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII NUL
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

// peekChar returns the next character without advancing
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// skipWhitespace skips over blanks, and over newlines inside brackets
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || (l.ch == '\n' && l.depth > 0) {
		l.readChar()
	}
}

// skipComment skips over a comment (# to end of line)
func (l *Lexer) skipComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	var tok Token

	l.skipWhitespace()
	for l.ch == '#' {
		l.skipComment()
		l.skipWhitespace()
	}

	tok.Position = Position{
		Line:   l.line,
		Column: l.column,
		Offset: l.position,
	}

	switch l.ch {
	case 0:
		tok.Type = TOKEN_EOF
		tok.Value = ""
		return tok
	case '"', '\'':
		return l.readString(l.ch)
	case '\n':
		tok.Type = TOKEN_NEWLINE
	case '(':
		l.depth++
		tok.Type = TOKEN_LPAREN
	case ')':
		l.closeBracket()
		tok.Type = TOKEN_RPAREN
	case '{':
		l.depth++
		tok.Type = TOKEN_LBRACE
	case '}':
		l.closeBracket()
		tok.Type = TOKEN_RBRACE
	case '[':
		l.depth++
		tok.Type = TOKEN_LBRACKET
	case ']':
		l.closeBracket()
		tok.Type = TOKEN_RBRACKET
	case ',':
		tok.Type = TOKEN_COMMA
	case ';':
		tok.Type = TOKEN_SEMICOLON
	case ':':
		tok.Type = TOKEN_COLON
	case '.':
		if isDigit(l.peekChar()) {
			return l.readNumber()
		}
		tok.Type = TOKEN_DOT
	case '+':
		tok.Type = l.withAssign(TOKEN_PLUS, TOKEN_PLUS_ASSIGN)
	case '-':
		tok.Type = l.withAssign(TOKEN_MINUS, TOKEN_MINUS_ASSIGN)
	case '%':
		tok.Type = l.withAssign(TOKEN_PERCENT, TOKEN_PERCENT_ASSIGN)
	case '*':
		if l.peekChar() == '*' {
			l.readChar()
			tok.Type = l.withAssign(TOKEN_POWER, TOKEN_POWER_ASSIGN)
		} else {
			tok.Type = l.withAssign(TOKEN_STAR, TOKEN_STAR_ASSIGN)
		}
	case '/':
		if l.peekChar() == '/' {
			l.readChar()
			tok.Type = l.withAssign(TOKEN_DSLASH, TOKEN_DSLASH_ASSIGN)
		} else {
			tok.Type = l.withAssign(TOKEN_SLASH, TOKEN_SLASH_ASSIGN)
		}
	case '=':
		tok.Type = l.withAssign(TOKEN_ASSIGN, TOKEN_EQ)
	case '<':
		tok.Type = l.withAssign(TOKEN_LT, TOKEN_LE)
	case '>':
		tok.Type = l.withAssign(TOKEN_GT, TOKEN_GE)
	case '!':
		tok.Type = l.withAssign(TOKEN_ILLEGAL, TOKEN_NE)
	default:
		if isLetter(l.ch) {
			start := l.position
			for isLetter(l.ch) || isDigit(l.ch) {
				l.readChar()
			}
			tok.Value = l.input[start:l.position]
			tok.Type = LookupKeyword(tok.Value)
			return tok
		}
		if isDigit(l.ch) {
			return l.readNumber()
		}
		tok.Type = TOKEN_ILLEGAL
	}

	l.readChar()
	tok.Value = l.input[tok.Position.Offset:l.position]
	return tok
}

// withAssign returns compound when the next char is '=' (consuming it),
// otherwise plain
func (l *Lexer) withAssign(plain, compound TokenType) TokenType {
	if l.peekChar() == '=' {
		l.readChar()
		return compound
	}
	return plain
}

func (l *Lexer) closeBracket() {
	if l.depth > 0 {
		l.depth--
	}
}

// readNumber reads an integer or float literal: 42, 3.14, .5, 1e10, 1_000
func (l *Lexer) readNumber() Token {
	tok := Token{
		Type: TOKEN_INT,
		Position: Position{
			Line:   l.line,
			Column: l.column,
			Offset: l.position,
		},
	}
	start := l.position

	l.readDigits()
	if l.ch == '.' {
		tok.Type = TOKEN_FLOAT
		l.readChar()
		l.readDigits()
	}
	if l.ch == 'e' || l.ch == 'E' {
		next := l.peekChar()
		if isDigit(next) || ((next == '+' || next == '-') && l.readPosition+1 < len(l.input) && isDigit(l.input[l.readPosition+1])) {
			tok.Type = TOKEN_FLOAT
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			l.readDigits()
		}
	}

	tok.Value = l.input[start:l.position]
	return tok
}

func (l *Lexer) readDigits() {
	for isDigit(l.ch) || (l.ch == '_' && isDigit(l.peekChar())) {
		l.readChar()
	}
}

// isLetter returns true if the character is a letter or underscore
func isLetter(ch byte) bool {
	return unicode.IsLetter(rune(ch)) || ch == '_'
}

// isDigit returns true if the character is a digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
