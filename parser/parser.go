package parser

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"fangless/types"
)

// Operator precedence levels (higher = tighter binding)
const (
	PREC_LOWEST   = iota
	PREC_OR       // or
	PREC_AND      // and
	PREC_NOT      // not x
	PREC_COMPARE  // < <= > >= == != in, not in
	PREC_ADDITIVE // + -
	PREC_MULTIPLY // * / // %
	PREC_UNARY    // -x +x
	PREC_POWER    // **
	PREC_POSTFIX  // call, method call, index
)

// precedences gives the binding power of tokens in infix position
var precedences = map[TokenType]int{
	TOKEN_OR:       PREC_OR,
	TOKEN_AND:      PREC_AND,
	TOKEN_EQ:       PREC_COMPARE,
	TOKEN_NE:       PREC_COMPARE,
	TOKEN_LT:       PREC_COMPARE,
	TOKEN_LE:       PREC_COMPARE,
	TOKEN_GT:       PREC_COMPARE,
	TOKEN_GE:       PREC_COMPARE,
	TOKEN_IN:       PREC_COMPARE,
	TOKEN_NOT:      PREC_COMPARE, // only as "not in"
	TOKEN_PLUS:     PREC_ADDITIVE,
	TOKEN_MINUS:    PREC_ADDITIVE,
	TOKEN_STAR:     PREC_MULTIPLY,
	TOKEN_SLASH:    PREC_MULTIPLY,
	TOKEN_DSLASH:   PREC_MULTIPLY,
	TOKEN_PERCENT:  PREC_MULTIPLY,
	TOKEN_POWER:    PREC_POWER,
	TOKEN_LPAREN:   PREC_POSTFIX,
	TOKEN_LBRACKET: PREC_POSTFIX,
	TOKEN_DOT:      PREC_POSTFIX,
}

// Parser parses program source into statements and expressions
type Parser struct {
	lexer   *Lexer
	current Token
	peek    Token
}

// NewParser creates a new Parser instance
func NewParser(input string) *Parser {
	p := &Parser{
		lexer: NewLexer(input),
	}
	// Read two tokens to initialize current and peek
	p.nextToken()
	p.nextToken()
	return p
}

// nextToken advances to the next token
func (p *Parser) nextToken() {
	p.current = p.peek
	p.peek = p.lexer.NextToken()
}

// expect consumes a token of type t or fails
func (p *Parser) expect(t TokenType, context string) error {
	if p.current.Type != t {
		return p.unexpected(context)
	}
	p.nextToken()
	return nil
}

func (p *Parser) currentPrecedence() int {
	if p.current.Type == TOKEN_NOT && p.peek.Type != TOKEN_IN {
		return PREC_LOWEST
	}
	if prec, ok := precedences[p.current.Type]; ok {
		return prec
	}
	return PREC_LOWEST
}

// ParseExpression parses an expression whose operators all bind tighter
// than precedence
func (p *Parser) ParseExpression(precedence int) (Expr, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for precedence < p.currentPrecedence() {
		switch prec := p.currentPrecedence(); prec {
		case PREC_POSTFIX:
			left, err = p.parsePostfix(left)
		case PREC_COMPARE:
			left, err = p.parseComparison(left)
		default:
			left, err = p.parseBinary(left, prec)
		}
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

// parsePrefix parses literals, names, unary operators and displays
func (p *Parser) parsePrefix() (Expr, error) {
	pos := p.current.Position

	switch p.current.Type {
	case TOKEN_INT:
		return p.parseIntLiteral()
	case TOKEN_FLOAT:
		return p.parseFloatLiteral()
	case TOKEN_STRING:
		return p.parseStringLiteral()
	case TOKEN_TRUE:
		p.nextToken()
		return &LiteralExpr{Pos: pos, Value: types.NewBool(true)}, nil
	case TOKEN_FALSE:
		p.nextToken()
		return &LiteralExpr{Pos: pos, Value: types.NewBool(false)}, nil
	case TOKEN_NONE:
		p.nextToken()
		return &LiteralExpr{Pos: pos, Value: types.NewNone()}, nil
	case TOKEN_IDENTIFIER:
		name := p.current.Value
		p.nextToken()
		return &IdentifierExpr{Pos: pos, Name: name}, nil
	case TOKEN_MINUS, TOKEN_PLUS:
		op := p.current.Type
		p.nextToken()
		if op == TOKEN_MINUS && p.isMinIntMagnitude() {
			p.nextToken()
			return &LiteralExpr{Pos: pos, Value: types.NewInt(math.MinInt64)}, nil
		}
		operand, err := p.ParseExpression(PREC_UNARY)
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Pos: pos, Operator: op, Operand: operand}, nil
	case TOKEN_NOT:
		p.nextToken()
		operand, err := p.ParseExpression(PREC_NOT)
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Pos: pos, Operator: TOKEN_NOT, Operand: operand}, nil
	case TOKEN_LPAREN:
		return p.parseParenOrTuple()
	case TOKEN_LBRACKET:
		return p.parseListDisplay()
	case TOKEN_LBRACE:
		return p.parseBraceDisplay()
	case TOKEN_ILLEGAL:
		if strings.HasPrefix(p.current.Value, `"`) || strings.HasPrefix(p.current.Value, `'`) {
			return nil, p.errorf("unterminated string literal")
		}
		return nil, p.errorf("invalid character %q", p.current.Value)
	default:
		return nil, p.unexpected("in expression")
	}
}

// parseBinary parses the right operand of an arithmetic or logical operator.
// ** is right associative and its right operand may carry a unary sign.
func (p *Parser) parseBinary(left Expr, prec int) (Expr, error) {
	pos := p.current.Position
	op := p.current.Type
	p.nextToken()

	rightPrec := prec
	if op == TOKEN_POWER {
		rightPrec = PREC_UNARY - 1
	}
	right, err := p.ParseExpression(rightPrec)
	if err != nil {
		return nil, err
	}
	return &BinaryExpr{Pos: pos, Left: left, Operator: op, Right: right}, nil
}

// parseComparison collects a whole comparison chain
func (p *Parser) parseComparison(left Expr) (Expr, error) {
	cmp := &CompareExpr{Pos: left.Position(), Operands: []Expr{left}}
	for p.currentPrecedence() == PREC_COMPARE {
		op := p.current.Type
		if op == TOKEN_NOT {
			p.nextToken() // "not", then "in"
			op = TOKEN_NOT_IN
		}
		p.nextToken()

		right, err := p.ParseExpression(PREC_COMPARE)
		if err != nil {
			return nil, err
		}
		cmp.Operators = append(cmp.Operators, op)
		cmp.Operands = append(cmp.Operands, right)
	}
	return cmp, nil
}

// parsePostfix parses a call, method call or index applied to left
func (p *Parser) parsePostfix(left Expr) (Expr, error) {
	pos := p.current.Position

	switch p.current.Type {
	case TOKEN_LPAREN:
		ident, ok := left.(*IdentifierExpr)
		if !ok {
			return nil, p.errorf("only named functions can be called")
		}
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		return &CallExpr{Pos: ident.Pos, Name: ident.Name, Args: args}, nil

	case TOKEN_DOT:
		p.nextToken()
		if p.current.Type != TOKEN_IDENTIFIER {
			return nil, p.unexpected("after '.'")
		}
		method := p.current.Value
		p.nextToken()
		if p.current.Type != TOKEN_LPAREN {
			return nil, p.errorf("expected '(' after method name %q", method)
		}
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		return &MethodCallExpr{Pos: pos, Receiver: left, Method: method, Args: args}, nil

	default: // TOKEN_LBRACKET
		p.nextToken()
		index, err := p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, err
		}
		if err := p.expect(TOKEN_RBRACKET, "in index, expected ']'"); err != nil {
			return nil, err
		}
		return &IndexExpr{Pos: pos, Expr: left, Index: index}, nil
	}
}

// parseIntLiteral parses an integer literal
func (p *Parser) parseIntLiteral() (Expr, error) {
	pos := p.current.Position
	val, err := strconv.ParseInt(strings.ReplaceAll(p.current.Value, "_", ""), 10, 64)
	if err != nil {
		return nil, p.errorf("integer literal %s out of range", p.current.Value)
	}
	p.nextToken()
	return &LiteralExpr{Pos: pos, Value: types.NewInt(val)}, nil
}

// isMinIntMagnitude reports whether the current token is the literal
// 9223372036854775808, which only exists negated. A following ** binds
// tighter than the minus, so the literal is left alone there.
func (p *Parser) isMinIntMagnitude() bool {
	return p.current.Type == TOKEN_INT && p.peek.Type != TOKEN_POWER &&
		strings.ReplaceAll(p.current.Value, "_", "") == "9223372036854775808"
}

// parseFloatLiteral parses a float literal; magnitudes beyond float64
// become inf
func (p *Parser) parseFloatLiteral() (Expr, error) {
	pos := p.current.Position
	val, err := strconv.ParseFloat(strings.ReplaceAll(p.current.Value, "_", ""), 64)
	if err != nil && !(errors.Is(err, strconv.ErrRange) && math.IsInf(val, 0)) {
		return nil, p.errorf("invalid float literal %s", p.current.Value)
	}
	p.nextToken()
	return &LiteralExpr{Pos: pos, Value: types.NewFloat(val)}, nil
}

// parseStringLiteral parses one or more adjacent string literals,
// which concatenate
func (p *Parser) parseStringLiteral() (Expr, error) {
	pos := p.current.Position
	var sb strings.Builder
	for p.current.Type == TOKEN_STRING {
		sb.WriteString(p.current.Literal)
		p.nextToken()
	}
	return &LiteralExpr{Pos: pos, Value: types.NewStr(sb.String())}, nil
}
