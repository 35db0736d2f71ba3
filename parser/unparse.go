package parser

import (
	"math"
	"strings"

	"fangless/types"
)

// UnparseProgram converts AST statements back to source code lines
func UnparseProgram(stmts []Stmt) []string {
	lines := make([]string, 0, len(stmts))
	for _, stmt := range stmts {
		lines = append(lines, UnparseStmt(stmt))
	}
	return lines
}

// UnparseStmt converts a statement to source code
func UnparseStmt(stmt Stmt) string {
	switch s := stmt.(type) {
	case *ExprStmt:
		return Unparse(s.Expr)
	case *AssignStmt:
		return s.Name + " " + unparseAssignOp(s.Operator) + " " + Unparse(s.Value)
	case *PassStmt:
		return "pass"
	default:
		return "<unknown statement>"
	}
}

// Unparse converts an expression to source code, adding parentheses only
// where precedence requires them
func Unparse(expr Expr) string {
	return unparseExpr(expr, PREC_LOWEST)
}

// unparseExpr converts an expression to source code
func unparseExpr(expr Expr, parentPrecedence int) string {
	switch e := expr.(type) {
	case *LiteralExpr:
		lit := unparseLiteral(e.Value)
		if strings.HasPrefix(lit, "-") && parentPrecedence > PREC_UNARY {
			return "(" + lit + ")"
		}
		return lit

	case *IdentifierExpr:
		return e.Name

	case *UnaryExpr:
		prec := PREC_UNARY
		op := unparseUnaryOp(e.Operator)
		if e.Operator == TOKEN_NOT {
			prec = PREC_NOT
		}
		result := op + unparseExpr(e.Operand, prec)
		if prec < parentPrecedence {
			return "(" + result + ")"
		}
		return result

	case *BinaryExpr:
		return unparseBinaryExpr(e, parentPrecedence)

	case *CompareExpr:
		var sb strings.Builder
		sb.WriteString(unparseExpr(e.Operands[0], PREC_COMPARE+1))
		for i, op := range e.Operators {
			sb.WriteString(" " + unparseBinaryOp(op) + " ")
			sb.WriteString(unparseExpr(e.Operands[i+1], PREC_COMPARE+1))
		}
		if PREC_COMPARE < parentPrecedence {
			return "(" + sb.String() + ")"
		}
		return sb.String()

	case *ParenExpr:
		return "(" + unparseExpr(e.Expr, PREC_LOWEST) + ")"

	case *IndexExpr:
		return unparseExpr(e.Expr, PREC_POSTFIX) + "[" + unparseExpr(e.Index, PREC_LOWEST) + "]"

	case *CallExpr:
		return e.Name + "(" + unparseArgs(e.Args) + ")"

	case *MethodCallExpr:
		return unparseExpr(e.Receiver, PREC_POSTFIX) + "." + e.Method + "(" + unparseArgs(e.Args) + ")"

	case *ListExpr:
		return "[" + unparseArgs(e.Elements) + "]"

	case *TupleExpr:
		if len(e.Elements) == 1 {
			return "(" + unparseExpr(e.Elements[0], PREC_LOWEST) + ",)"
		}
		return "(" + unparseArgs(e.Elements) + ")"

	case *SetExpr:
		return "{" + unparseArgs(e.Elements) + "}"

	case *DictExpr:
		parts := make([]string, len(e.Entries))
		for i, entry := range e.Entries {
			parts[i] = unparseExpr(entry.Key, PREC_LOWEST) + ": " + unparseExpr(entry.Value, PREC_LOWEST)
		}
		return "{" + strings.Join(parts, ", ") + "}"

	default:
		return "<unknown expression>"
	}
}

// unparseBinaryExpr converts a binary expression, parenthesizing it when it
// binds looser than its context
func unparseBinaryExpr(e *BinaryExpr, parentPrecedence int) string {
	prec := binaryPrecedence(e.Operator)

	// Left associative except **, which associates to the right
	leftPrec, rightPrec := prec, prec+1
	if e.Operator == TOKEN_POWER {
		leftPrec, rightPrec = prec+1, prec
	}

	result := unparseExpr(e.Left, leftPrec) + " " + unparseBinaryOp(e.Operator) + " " + unparseExpr(e.Right, rightPrec)
	if prec < parentPrecedence {
		return "(" + result + ")"
	}
	return result
}

// binaryPrecedence returns the precedence level for a binary operator
func binaryPrecedence(op TokenType) int {
	if prec, ok := precedences[op]; ok {
		return prec
	}
	return PREC_LOWEST
}

// unparseBinaryOp converts a token type to its source spelling
func unparseBinaryOp(op TokenType) string {
	switch op {
	case TOKEN_PLUS:
		return "+"
	case TOKEN_MINUS:
		return "-"
	case TOKEN_STAR:
		return "*"
	case TOKEN_SLASH:
		return "/"
	case TOKEN_DSLASH:
		return "//"
	case TOKEN_PERCENT:
		return "%"
	case TOKEN_POWER:
		return "**"
	case TOKEN_EQ:
		return "=="
	case TOKEN_NE:
		return "!="
	case TOKEN_LT:
		return "<"
	case TOKEN_GT:
		return ">"
	case TOKEN_LE:
		return "<="
	case TOKEN_GE:
		return ">="
	case TOKEN_IN:
		return "in"
	case TOKEN_NOT_IN:
		return "not in"
	case TOKEN_AND:
		return "and"
	case TOKEN_OR:
		return "or"
	default:
		return "<unknown op>"
	}
}

// unparseUnaryOp converts a unary operator to its source spelling
func unparseUnaryOp(op TokenType) string {
	switch op {
	case TOKEN_MINUS:
		return "-"
	case TOKEN_PLUS:
		return "+"
	case TOKEN_NOT:
		return "not "
	default:
		return "<unknown unary op>"
	}
}

func unparseAssignOp(op TokenType) string {
	if bin, ok := AugmentedOperator(op); ok {
		return unparseBinaryOp(bin) + "="
	}
	return "="
}

// unparseLiteral converts a scalar Value to its source representation
func unparseLiteral(v types.Value) string {
	switch val := v.(type) {
	case types.StrValue:
		return quoteString(val.Value())
	case types.FloatValue:
		// inf has no spelling of its own; an overflowing literal reads back as inf
		if math.IsInf(val.Val, 1) {
			return "1e999"
		}
		if math.IsInf(val.Val, -1) {
			return "-1e999"
		}
		return types.Canonical(v)
	default:
		return types.Canonical(v)
	}
}

// quoteString renders s as a double quoted literal the lexer reads back
func quoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			if c < 0x20 {
				const hex = "0123456789abcdef"
				sb.WriteString(`\x`)
				sb.WriteByte(hex[c>>4])
				sb.WriteByte(hex[c&0xf])
				continue
			}
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// unparseArgs converts a list of expressions to comma separated source
func unparseArgs(args []Expr) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = unparseExpr(arg, PREC_LOWEST)
	}
	return strings.Join(parts, ", ")
}
