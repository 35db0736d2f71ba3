package parser

import (
	"errors"
	"fmt"
	"strings"
)

// ParseError reports malformed source with the position it was found at
type ParseError struct {
	Pos Position
	Msg string
}

// Error renders "SyntaxError: <msg> (line L, column C)"
func (e *ParseError) Error() string {
	return fmt.Sprintf("SyntaxError: %s (line %d, column %d)", e.Msg, e.Pos.Line, e.Pos.Column)
}

// IsParseError reports whether err, or any error it wraps, is a ParseError
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// errorf builds a ParseError at the current token
func (p *Parser) errorf(format string, args ...any) error {
	return &ParseError{Pos: p.current.Position, Msg: fmt.Sprintf(format, args...)}
}

// unexpected reports the current token as unexpected
func (p *Parser) unexpected(context string) error {
	if p.current.Type == TOKEN_EOF {
		return p.errorf("unexpected end of input %s", context)
	}
	if p.current.Type == TOKEN_NEWLINE {
		return p.errorf("unexpected end of line %s", context)
	}
	return p.errorf("unexpected %q %s", p.current.Value, context)
}

// IsIncomplete reports whether err means the input stopped mid-construct,
// so more lines could complete it. Strings never span lines.
func IsIncomplete(err error) bool {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return false
	}
	return strings.HasPrefix(pe.Msg, "unexpected end of input")
}
