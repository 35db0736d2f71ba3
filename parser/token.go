package parser

// TokenType represents different types of lexical tokens
type TokenType int

const (
	// Special tokens
	TOKEN_EOF TokenType = iota
	TOKEN_ILLEGAL
	TOKEN_NEWLINE

	// Literals
	TOKEN_INT    // 42
	TOKEN_FLOAT  // 3.14
	TOKEN_STRING // "hello"

	// Keywords
	TOKEN_TRUE
	TOKEN_FALSE
	TOKEN_NONE
	TOKEN_AND
	TOKEN_OR
	TOKEN_NOT
	TOKEN_IN
	TOKEN_PASS

	// Identifiers
	TOKEN_IDENTIFIER

	// Operators
	TOKEN_PLUS    // +
	TOKEN_MINUS   // -
	TOKEN_STAR    // *
	TOKEN_SLASH   // /
	TOKEN_DSLASH  // //
	TOKEN_PERCENT // %
	TOKEN_POWER   // **

	TOKEN_EQ     // ==
	TOKEN_NE     // !=
	TOKEN_LT     // <
	TOKEN_GT     // >
	TOKEN_LE     // <=
	TOKEN_GE     // >=
	TOKEN_NOT_IN // not in (two tokens, folded by the parser)

	TOKEN_ASSIGN         // =
	TOKEN_PLUS_ASSIGN    // +=
	TOKEN_MINUS_ASSIGN   // -=
	TOKEN_STAR_ASSIGN    // *=
	TOKEN_SLASH_ASSIGN   // /=
	TOKEN_DSLASH_ASSIGN  // //=
	TOKEN_PERCENT_ASSIGN // %=
	TOKEN_POWER_ASSIGN   // **=

	// Delimiters
	TOKEN_LPAREN    // (
	TOKEN_RPAREN    // )
	TOKEN_LBRACE    // {
	TOKEN_RBRACE    // }
	TOKEN_LBRACKET  // [
	TOKEN_RBRACKET  // ]
	TOKEN_COMMA     // ,
	TOKEN_SEMICOLON // ;
	TOKEN_DOT       // .
	TOKEN_COLON     // :
)

// Position represents a position in the source code
type Position struct {
	Line   int
	Column int
	Offset int
}

// Token represents a lexical token
type Token struct {
	Type     TokenType
	Value    string
	Literal  string // Decoded string value (for TOKEN_STRING)
	Position Position
}

var tokenNames = map[TokenType]string{
	TOKEN_EOF:            "EOF",
	TOKEN_ILLEGAL:        "ILLEGAL",
	TOKEN_NEWLINE:        "NEWLINE",
	TOKEN_INT:            "INT",
	TOKEN_FLOAT:          "FLOAT",
	TOKEN_STRING:         "STRING",
	TOKEN_TRUE:           "TRUE",
	TOKEN_FALSE:          "FALSE",
	TOKEN_NONE:           "NONE",
	TOKEN_AND:            "AND",
	TOKEN_OR:             "OR",
	TOKEN_NOT:            "NOT",
	TOKEN_IN:             "IN",
	TOKEN_PASS:           "PASS",
	TOKEN_IDENTIFIER:     "IDENTIFIER",
	TOKEN_PLUS:           "PLUS",
	TOKEN_MINUS:          "MINUS",
	TOKEN_STAR:           "STAR",
	TOKEN_SLASH:          "SLASH",
	TOKEN_DSLASH:         "DSLASH",
	TOKEN_PERCENT:        "PERCENT",
	TOKEN_POWER:          "POWER",
	TOKEN_EQ:             "EQ",
	TOKEN_NE:             "NE",
	TOKEN_LT:             "LT",
	TOKEN_GT:             "GT",
	TOKEN_LE:             "LE",
	TOKEN_GE:             "GE",
	TOKEN_NOT_IN:         "NOT_IN",
	TOKEN_ASSIGN:         "ASSIGN",
	TOKEN_PLUS_ASSIGN:    "PLUS_ASSIGN",
	TOKEN_MINUS_ASSIGN:   "MINUS_ASSIGN",
	TOKEN_STAR_ASSIGN:    "STAR_ASSIGN",
	TOKEN_SLASH_ASSIGN:   "SLASH_ASSIGN",
	TOKEN_DSLASH_ASSIGN:  "DSLASH_ASSIGN",
	TOKEN_PERCENT_ASSIGN: "PERCENT_ASSIGN",
	TOKEN_POWER_ASSIGN:   "POWER_ASSIGN",
	TOKEN_LPAREN:         "LPAREN",
	TOKEN_RPAREN:         "RPAREN",
	TOKEN_LBRACE:         "LBRACE",
	TOKEN_RBRACE:         "RBRACE",
	TOKEN_LBRACKET:       "LBRACKET",
	TOKEN_RBRACKET:       "RBRACKET",
	TOKEN_COMMA:          "COMMA",
	TOKEN_SEMICOLON:      "SEMICOLON",
	TOKEN_DOT:            "DOT",
	TOKEN_COLON:          "COLON",
}

// String returns a string representation of the token type
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Keywords map
var keywords = map[string]TokenType{
	"True":  TOKEN_TRUE,
	"False": TOKEN_FALSE,
	"None":  TOKEN_NONE,
	"and":   TOKEN_AND,
	"or":    TOKEN_OR,
	"not":   TOKEN_NOT,
	"in":    TOKEN_IN,
	"pass":  TOKEN_PASS,
}

// LookupKeyword checks if an identifier is a keyword
func LookupKeyword(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TOKEN_IDENTIFIER
}

// augmentedOps maps each augmented assignment to its binary operator
var augmentedOps = map[TokenType]TokenType{
	TOKEN_PLUS_ASSIGN:    TOKEN_PLUS,
	TOKEN_MINUS_ASSIGN:   TOKEN_MINUS,
	TOKEN_STAR_ASSIGN:    TOKEN_STAR,
	TOKEN_SLASH_ASSIGN:   TOKEN_SLASH,
	TOKEN_DSLASH_ASSIGN:  TOKEN_DSLASH,
	TOKEN_PERCENT_ASSIGN: TOKEN_PERCENT,
	TOKEN_POWER_ASSIGN:   TOKEN_POWER,
}

// AugmentedOperator returns the binary operator behind an augmented
// assignment token, e.g. TOKEN_PLUS for TOKEN_PLUS_ASSIGN
func AugmentedOperator(t TokenType) (TokenType, bool) {
	op, ok := augmentedOps[t]
	return op, ok
}
