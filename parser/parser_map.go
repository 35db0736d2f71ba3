package parser

// parseBraceDisplay parses {k: v, ...} as a dict and {a, b, ...} as a set.
// {} is an empty dict.
func (p *Parser) parseBraceDisplay() (Expr, error) {
	pos := p.current.Position
	p.nextToken() // skip '{'

	if p.current.Type == TOKEN_RBRACE {
		p.nextToken() // skip '}'
		return &DictExpr{Pos: pos}, nil
	}

	first, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		return nil, err
	}
	if p.current.Type == TOKEN_COLON {
		return p.parseDictRest(pos, first)
	}
	return p.parseSetRest(pos, first)
}

// parseDictRest parses the remaining pairs of a dict display whose first key
// has been read
func (p *Parser) parseDictRest(pos Position, key Expr) (Expr, error) {
	dict := &DictExpr{Pos: pos}
	for {
		// Expect ':'
		if err := p.expect(TOKEN_COLON, "in dict, expected ':'"); err != nil {
			return nil, err
		}
		val, err := p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, err
		}
		dict.Entries = append(dict.Entries, DictEntry{Key: key, Value: val})

		if p.current.Type != TOKEN_COMMA {
			break
		}
		p.nextToken() // skip ','
		if p.current.Type == TOKEN_RBRACE {
			break
		}
		if key, err = p.ParseExpression(PREC_LOWEST); err != nil {
			return nil, err
		}
	}

	// Expect closing '}'
	if err := p.expect(TOKEN_RBRACE, "in dict, expected '}'"); err != nil {
		return nil, err
	}
	return dict, nil
}

// parseSetRest parses the remaining members of a set display whose first
// member has been read
func (p *Parser) parseSetRest(pos Position, first Expr) (Expr, error) {
	set := &SetExpr{Pos: pos, Elements: []Expr{first}}
	for p.current.Type == TOKEN_COMMA {
		p.nextToken() // skip ','
		if p.current.Type == TOKEN_RBRACE {
			break
		}
		elem, err := p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, err
		}
		set.Elements = append(set.Elements, elem)
	}

	// Expect closing '}'
	if err := p.expect(TOKEN_RBRACE, "in set, expected '}'"); err != nil {
		return nil, err
	}
	return set, nil
}
