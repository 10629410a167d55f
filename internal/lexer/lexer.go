// Package lexer provides Sprocket source code tokenization.
package lexer

import (
	"github.com/sprocket-lang/sprocket/internal/token"
)

// Lexer tokenizes Sprocket source code.
//
// A Lexer holds a single forward cursor over the source and is not
// restartable: to re-scan the same text, build a new Lexer.
type Lexer struct {
	src     []byte         // Source code
	ch      byte           // Current character (0 at EOF)
	offset  int            // Offset of the character after ch
	pos     token.Position // Position of ch
	nextPos token.Position // Position of the character after ch
}

// New creates a new Lexer for the given source code.
func New(src []byte) *Lexer {
	l := &Lexer{
		src: src,
		nextPos: token.Position{
			Line:   1,
			Column: 1,
		},
	}
	l.next() // Initialize first character
	return l
}

// NewFromString creates a new Lexer from a string.
func NewFromString(src string) *Lexer {
	return New([]byte(src))
}

// Token represents a scanned token with its position and original text.
type Token struct {
	Type  token.Token
	Pos   token.Position
	Value string
}

// Scan scans and returns the next token.
//
// Lexical faults (unterminated string, unterminated block comment,
// unrecognized character) are reported as ILLEGAL tokens whose Value
// carries the diagnostic message; the consumer decides whether they
// are fatal.
func (l *Lexer) Scan() Token {
	l.skipWhitespace()

	// Skip comments, then any whitespace that follows them.
	for l.ch == '/' && (l.peek() == '/' || l.peek() == '*') {
		if l.peek() == '/' {
			l.skipLineComment()
		} else {
			pos := l.pos
			if !l.skipBlockComment() {
				return Token{Type: token.ILLEGAL, Pos: pos, Value: "unterminated block comment"}
			}
		}
		l.skipWhitespace()
	}

	pos := l.pos

	if l.ch == 0 {
		return Token{Type: token.EOF, Pos: pos}
	}

	switch l.ch {
	case '=':
		l.next()
		if l.ch == '=' {
			l.next()
			return Token{Type: token.EQUALS, Pos: pos, Value: "=="}
		}
		return Token{Type: token.ASSIGN, Pos: pos, Value: "="}

	case '!':
		l.next()
		if l.ch == '=' {
			l.next()
			return Token{Type: token.NOT_EQUALS, Pos: pos, Value: "!="}
		}
		return Token{Type: token.ILLEGAL, Pos: pos, Value: "unexpected '!'"}

	case '<':
		l.next()
		return Token{Type: token.LESS, Pos: pos, Value: "<"}
	case '>':
		l.next()
		return Token{Type: token.GREATER, Pos: pos, Value: ">"}
	case '+':
		l.next()
		return Token{Type: token.ADD, Pos: pos, Value: "+"}
	case '-':
		l.next()
		return Token{Type: token.SUB, Pos: pos, Value: "-"}
	case '*':
		l.next()
		return Token{Type: token.MUL, Pos: pos, Value: "*"}
	case '/':
		l.next()
		return Token{Type: token.DIV, Pos: pos, Value: "/"}

	case '(':
		l.next()
		return Token{Type: token.LPAREN, Pos: pos, Value: "("}
	case ')':
		l.next()
		return Token{Type: token.RPAREN, Pos: pos, Value: ")"}
	case '{':
		l.next()
		return Token{Type: token.LBRACE, Pos: pos, Value: "{"}
	case '}':
		l.next()
		return Token{Type: token.RBRACE, Pos: pos, Value: "}"}
	case ',':
		l.next()
		return Token{Type: token.COMMA, Pos: pos, Value: ","}
	case ';':
		l.next()
		return Token{Type: token.SEMICOLON, Pos: pos, Value: ";"}
	case '.':
		l.next()
		return Token{Type: token.DOT, Pos: pos, Value: "."}

	case '"':
		return l.scanString(pos)

	default:
		if isDigit(l.ch) {
			return l.scanNumber(pos)
		}
		if isIdentStart(l.ch) {
			return l.scanIdent(pos)
		}
		ch := l.ch
		l.next()
		return Token{Type: token.ILLEGAL, Pos: pos, Value: "unrecognized character " + quoteChar(ch)}
	}
}

// scanString scans a double-quoted text literal. No escape processing is
// performed: a backslash is an ordinary character.
func (l *Lexer) scanString(pos token.Position) Token {
	l.next() // consume opening quote
	start := l.pos.Offset

	for l.ch != 0 && l.ch != '"' && l.ch != '\n' {
		l.next()
	}

	if l.ch != '"' {
		return Token{Type: token.ILLEGAL, Pos: pos, Value: "unterminated string"}
	}

	value := string(l.src[start:l.pos.Offset])
	l.next() // consume closing quote
	return Token{Type: token.STRING, Pos: pos, Value: value}
}

// scanNumber scans a decimal integer literal (a run of digits).
func (l *Lexer) scanNumber(pos token.Position) Token {
	start := pos.Offset
	for isDigit(l.ch) {
		l.next()
	}
	return Token{Type: token.NUMBER, Pos: pos, Value: string(l.src[start:l.endOffset()])}
}

func (l *Lexer) scanIdent(pos token.Position) Token {
	start := pos.Offset
	for isIdentContinue(l.ch) {
		l.next()
	}
	name := string(l.src[start:l.endOffset()])
	return Token{Type: token.LookupIdent(name), Pos: pos, Value: name}
}

// endOffset returns the correct end offset for slicing l.src.
// At EOF, l.pos is not updated, so we use len(l.src); otherwise l.pos.Offset.
func (l *Lexer) endOffset() int {
	if l.ch == 0 {
		return len(l.src)
	}
	return l.pos.Offset
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.next()
	}
}

func (l *Lexer) skipLineComment() {
	for l.ch != 0 && l.ch != '\n' {
		l.next()
	}
}

// skipBlockComment consumes a /* ... */ comment.
// Returns false if the comment is not terminated before end of input.
func (l *Lexer) skipBlockComment() bool {
	l.next() // consume '/'
	l.next() // consume '*'
	for l.ch != 0 {
		if l.ch == '*' && l.peek() == '/' {
			l.next() // consume '*'
			l.next() // consume '/'
			return true
		}
		l.next()
	}
	return false
}

// peek returns the character after the current one without advancing.
func (l *Lexer) peek() byte {
	if l.offset < len(l.src) {
		return l.src[l.offset]
	}
	return 0
}

// next advances the cursor by one character.
func (l *Lexer) next() {
	l.pos = l.nextPos
	if l.offset >= len(l.src) {
		l.ch = 0
		return
	}
	l.ch = l.src[l.offset]
	l.offset++
	if l.ch == '\n' {
		l.nextPos.Line++
		l.nextPos.Column = 1
	} else {
		l.nextPos.Column++
	}
	l.nextPos.Offset = l.offset
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentContinue(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func quoteChar(ch byte) string {
	return "'" + string(ch) + "'"
}
