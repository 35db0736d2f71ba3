package parser

// parseExprList parses comma separated expressions up to closing, allowing
// a trailing comma. current is the opening token. trailing reports whether
// the list ended with a comma.
func (p *Parser) parseExprList(closing TokenType, context string) (elements []Expr, trailing bool, err error) {
	p.nextToken() // skip opening token

	for p.current.Type != closing {
		elem, err := p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, false, err
		}
		elements = append(elements, elem)
		trailing = false

		if p.current.Type != TOKEN_COMMA {
			break
		}
		p.nextToken() // skip ','
		trailing = true
	}

	if err := p.expect(closing, context); err != nil {
		return nil, false, err
	}
	return elements, trailing, nil
}

// parseArgs parses a call argument list (a, b, c)
func (p *Parser) parseArgs() ([]Expr, error) {
	args, _, err := p.parseExprList(TOKEN_RPAREN, "in argument list, expected ')'")
	return args, err
}

// parseListDisplay parses a list display [expr, expr, ...]
func (p *Parser) parseListDisplay() (Expr, error) {
	pos := p.current.Position
	elements, _, err := p.parseExprList(TOKEN_RBRACKET, "in list, expected ']'")
	if err != nil {
		return nil, err
	}
	return &ListExpr{Pos: pos, Elements: elements}, nil
}

// parseParenOrTuple parses (expr) as grouping, and (), (expr,) and
// (expr, expr, ...) as tuples
func (p *Parser) parseParenOrTuple() (Expr, error) {
	pos := p.current.Position
	elements, trailing, err := p.parseExprList(TOKEN_RPAREN, "expected ')'")
	if err != nil {
		return nil, err
	}
	if len(elements) == 1 && !trailing {
		return &ParenExpr{Pos: pos, Expr: elements[0]}, nil
	}
	return &TupleExpr{Pos: pos, Elements: elements}, nil
}
