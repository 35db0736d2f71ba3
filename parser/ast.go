package parser

import "fangless/types"

// Node is the base interface for all AST nodes
type Node interface {
	Position() Position
}

// Expr represents an expression node
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a statement node
type Stmt interface {
	Node
	stmtNode()
}

// LiteralExpr wraps a scalar Value: int, float, str, bool or None
type LiteralExpr struct {
	Pos   Position
	Value types.Value
}

func (e *LiteralExpr) Position() Position { return e.Pos }
func (e *LiteralExpr) exprNode()          {}

// IdentifierExpr represents a variable reference
type IdentifierExpr struct {
	Pos  Position
	Name string
}

func (e *IdentifierExpr) Position() Position { return e.Pos }
func (e *IdentifierExpr) exprNode()          {}

// UnaryExpr represents a unary operation
type UnaryExpr struct {
	Pos      Position
	Operator TokenType // TOKEN_MINUS, TOKEN_PLUS, TOKEN_NOT
	Operand  Expr
}

func (e *UnaryExpr) Position() Position { return e.Pos }
func (e *UnaryExpr) exprNode()          {}

// BinaryExpr represents an arithmetic or logical operation
type BinaryExpr struct {
	Pos      Position
	Left     Expr
	Operator TokenType
	Right    Expr
}

func (e *BinaryExpr) Position() Position { return e.Pos }
func (e *BinaryExpr) exprNode()          {}

// CompareExpr represents a comparison chain: a < b <= c.
// len(Operands) == len(Operators)+1.
type CompareExpr struct {
	Pos       Position
	Operands  []Expr
	Operators []TokenType
}

func (e *CompareExpr) Position() Position { return e.Pos }
func (e *CompareExpr) exprNode()          {}

// ParenExpr represents a parenthesized expression
type ParenExpr struct {
	Pos  Position
	Expr Expr
}

func (e *ParenExpr) Position() Position { return e.Pos }
func (e *ParenExpr) exprNode()          {}

// IndexExpr represents indexing: expr[index]
type IndexExpr struct {
	Pos   Position
	Expr  Expr
	Index Expr
}

func (e *IndexExpr) Position() Position { return e.Pos }
func (e *IndexExpr) exprNode()          {}

// CallExpr represents a builtin function call: func(args)
type CallExpr struct {
	Pos  Position
	Name string
	Args []Expr
}

func (e *CallExpr) Position() Position { return e.Pos }
func (e *CallExpr) exprNode()          {}

// MethodCallExpr represents a method call: expr.method(args)
type MethodCallExpr struct {
	Pos      Position
	Receiver Expr
	Method   string
	Args     []Expr
}

func (e *MethodCallExpr) Position() Position { return e.Pos }
func (e *MethodCallExpr) exprNode()          {}

// ListExpr represents a list display: [a, b]
type ListExpr struct {
	Pos      Position
	Elements []Expr
}

func (e *ListExpr) Position() Position { return e.Pos }
func (e *ListExpr) exprNode()          {}

// TupleExpr represents a tuple display: (a, b), (a,) or ()
type TupleExpr struct {
	Pos      Position
	Elements []Expr
}

func (e *TupleExpr) Position() Position { return e.Pos }
func (e *TupleExpr) exprNode()          {}

// SetExpr represents a set display: {a, b}
type SetExpr struct {
	Pos      Position
	Elements []Expr
}

func (e *SetExpr) Position() Position { return e.Pos }
func (e *SetExpr) exprNode()          {}

// DictEntry is one key: value pair of a dict display
type DictEntry struct {
	Key   Expr
	Value Expr
}

// DictExpr represents a dict display: {k: v}
type DictExpr struct {
	Pos     Position
	Entries []DictEntry
}

func (e *DictExpr) Position() Position { return e.Pos }
func (e *DictExpr) exprNode()          {}

// ExprStmt represents an expression statement
type ExprStmt struct {
	Pos  Position
	Expr Expr
}

func (s *ExprStmt) Position() Position { return s.Pos }
func (s *ExprStmt) stmtNode()          {}

// AssignStmt represents name = expr, or an augmented form like name += expr
type AssignStmt struct {
	Pos      Position
	Name     string
	Operator TokenType // TOKEN_ASSIGN or one of the TOKEN_*_ASSIGN tokens
	Value    Expr
}

func (s *AssignStmt) Position() Position { return s.Pos }
func (s *AssignStmt) stmtNode()          {}

// PassStmt represents the no-op statement
type PassStmt struct {
	Pos Position
}

func (s *PassStmt) Position() Position { return s.Pos }
func (s *PassStmt) stmtNode()          {}
