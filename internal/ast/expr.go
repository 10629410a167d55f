package ast

import "github.com/sprocket-lang/sprocket/internal/token"

// LiteralKind tags a Literal with the lexical class of its text.
type LiteralKind int

const (
	LitNumber LiteralKind = iota // decimal integer, e.g. 42
	LitText                      // double-quoted text, e.g. "hello"
	LitBool                      // True or False
	LitIdent                     // bare identifier reference
)

// String returns a human-readable name for the literal kind.
func (k LiteralKind) String() string {
	switch k {
	case LitNumber:
		return "number"
	case LitText:
		return "text"
	case LitBool:
		return "bool"
	case LitIdent:
		return "identifier"
	default:
		return "unknown"
	}
}

// Literal represents a primary value: a number, a text literal, a boolean,
// or a bare identifier reference. The value is carried as raw source text;
// no numeric conversion happens before code generation.
type Literal struct {
	BaseExpr
	Kind LiteralKind // Lexical class of the value
	Text string      // Original source text (unquoted for LitText)
}

// BinaryExpr represents a binary operation.
// Examples: a + b, x == 10
type BinaryExpr struct {
	BaseExpr
	Left  Expr        // Left operand
	Op    token.Token // Operator (EQUALS, NOT_EQUALS, LESS, GREATER, ADD, SUB, MUL, DIV)
	Right Expr        // Right operand
}
