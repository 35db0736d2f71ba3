package parser

// ParseProgram parses a complete program: statements separated by newlines
// or semicolons. Blank lines and comments produce no statements.
func (p *Parser) ParseProgram() ([]Stmt, error) {
	var statements []Stmt

	for {
		p.skipSeparators()
		if p.current.Type == TOKEN_EOF {
			break
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)

		switch p.current.Type {
		case TOKEN_NEWLINE, TOKEN_SEMICOLON, TOKEN_EOF:
		default:
			return nil, p.unexpected("after statement")
		}
	}

	return statements, nil
}

// ParseString parses src as a program
func ParseString(src string) ([]Stmt, error) {
	return NewParser(src).ParseProgram()
}

func (p *Parser) skipSeparators() {
	for p.current.Type == TOKEN_NEWLINE || p.current.Type == TOKEN_SEMICOLON {
		p.nextToken()
	}
}

// parseStatement parses a single statement
func (p *Parser) parseStatement() (Stmt, error) {
	pos := p.current.Position

	switch {
	case p.current.Type == TOKEN_PASS:
		p.nextToken()
		return &PassStmt{Pos: pos}, nil

	case p.current.Type == TOKEN_IDENTIFIER && isAssignment(p.peek.Type):
		return p.parseAssignStatement()

	default:
		return p.parseExpressionStatement()
	}
}

func isAssignment(t TokenType) bool {
	if t == TOKEN_ASSIGN {
		return true
	}
	_, ok := AugmentedOperator(t)
	return ok
}

// parseAssignStatement parses name = expr and name op= expr
func (p *Parser) parseAssignStatement() (Stmt, error) {
	pos := p.current.Position
	name := p.current.Value
	p.nextToken() // skip name
	op := p.current.Type
	p.nextToken() // skip operator

	value, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		return nil, err
	}
	return &AssignStmt{Pos: pos, Name: name, Operator: op, Value: value}, nil
}

// parseExpressionStatement parses an expression used as a statement
func (p *Parser) parseExpressionStatement() (Stmt, error) {
	pos := p.current.Position

	expr, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		return nil, err
	}
	if isAssignment(p.current.Type) {
		return nil, p.errorf("cannot assign to %s", Unparse(expr))
	}

	return &ExprStmt{
		Pos:  pos,
		Expr: expr,
	}, nil
}
