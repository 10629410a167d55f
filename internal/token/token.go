// Package token defines lexical tokens for the Sprocket language.
package token

// Token represents a lexical token type.
type Token uint8

const (
	// Special tokens
	ILLEGAL Token = iota // <illegal>
	EOF                  // EOF

	// Operators and delimiters
	operatorStart
	ASSIGN     // =
	EQUALS     // ==
	NOT_EQUALS // !=
	LESS       // <
	GREATER    // >
	ADD        // +
	SUB        // -
	MUL        // *
	DIV        // /

	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	COMMA     // ,
	SEMICOLON // ;
	DOT       // .
	operatorEnd

	// Keywords
	keywordStart
	LOCAL    // local
	IF       // if
	ELSE     // else
	WHILE    // while
	DO       // do
	FUNCTION // function
	RETURN   // return
	CLASS    // class
	EXTENDS  // extends
	THROW    // throw
	TRY      // try
	CATCH    // catch
	FINALLY  // finally
	keywordEnd

	// Engine property names (classified ahead of plain identifiers)
	propertyStart
	POS   // Pos
	SIZE  // Size
	IMAGE // Image
	propertyEnd

	// Literals
	NAME   // name
	NUMBER // number
	STRING // string
	BOOL   // bool
)

var tokenNames = map[Token]string{
	ILLEGAL:    "<illegal>",
	EOF:        "EOF",
	ASSIGN:     "=",
	EQUALS:     "==",
	NOT_EQUALS: "!=",
	LESS:       "<",
	GREATER:    ">",
	ADD:        "+",
	SUB:        "-",
	MUL:        "*",
	DIV:        "/",
	LPAREN:     "(",
	RPAREN:     ")",
	LBRACE:     "{",
	RBRACE:     "}",
	COMMA:      ",",
	SEMICOLON:  ";",
	DOT:        ".",
	LOCAL:      "local",
	IF:         "if",
	ELSE:       "else",
	WHILE:      "while",
	DO:         "do",
	FUNCTION:   "function",
	RETURN:     "return",
	CLASS:      "class",
	EXTENDS:    "extends",
	THROW:      "throw",
	TRY:        "try",
	CATCH:      "catch",
	FINALLY:    "finally",
	POS:        "Pos",
	SIZE:       "Size",
	IMAGE:      "Image",
	NAME:       "name",
	NUMBER:     "number",
	STRING:     "string",
	BOOL:       "bool",
}

// String returns a human-readable name for the token type.
func (t Token) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "<unknown>"
}

// IsOperator returns true if the token is an operator or delimiter.
func (t Token) IsOperator() bool {
	return t > operatorStart && t < operatorEnd
}

// IsKeyword returns true if the token is a keyword.
func (t Token) IsKeyword() bool {
	return t > keywordStart && t < keywordEnd
}

// IsProperty returns true if the token is an engine property name.
func (t Token) IsProperty() bool {
	return t > propertyStart && t < propertyEnd
}

// IsLiteral returns true if the token is a literal (name, number, string, bool).
func (t Token) IsLiteral() bool {
	return t == NAME || t == NUMBER || t == STRING || t == BOOL
}

// keywords maps keyword strings to their token types.
var keywords = map[string]Token{
	"local":    LOCAL,
	"if":       IF,
	"else":     ELSE,
	"while":    WHILE,
	"do":       DO,
	"function": FUNCTION,
	"return":   RETURN,
	"class":    CLASS,
	"extends":  EXTENDS,
	"throw":    THROW,
	"try":      TRY,
	"catch":    CATCH,
	"finally":  FINALLY,
}

// properties maps engine property names to their token types.
var properties = map[string]Token{
	"Pos":   POS,
	"Size":  SIZE,
	"Image": IMAGE,
}

// booleans holds the boolean literal spellings.
var booleans = map[string]bool{
	"True":  true,
	"False": true,
}

// LookupIdent returns the token type for a given identifier.
// Keyword, property, and boolean tables take priority over NAME.
func LookupIdent(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	if tok, ok := properties[ident]; ok {
		return tok
	}
	if booleans[ident] {
		return BOOL
	}
	return NAME
}
