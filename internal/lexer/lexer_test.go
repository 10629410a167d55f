package lexer

import (
	"testing"

	"github.com/sprocket-lang/sprocket/internal/token"
)

func TestScanBasicTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected []token.Token
	}{
		{"=", []token.Token{token.ASSIGN, token.EOF}},
		{"==", []token.Token{token.EQUALS, token.EOF}},
		{"!=", []token.Token{token.NOT_EQUALS, token.EOF}},
		{"<", []token.Token{token.LESS, token.EOF}},
		{">", []token.Token{token.GREATER, token.EOF}},
		{"+", []token.Token{token.ADD, token.EOF}},
		{"-", []token.Token{token.SUB, token.EOF}},
		{"*", []token.Token{token.MUL, token.EOF}},
		{"/", []token.Token{token.DIV, token.EOF}},
		{"(", []token.Token{token.LPAREN, token.EOF}},
		{")", []token.Token{token.RPAREN, token.EOF}},
		{"{", []token.Token{token.LBRACE, token.EOF}},
		{"}", []token.Token{token.RBRACE, token.EOF}},
		{",", []token.Token{token.COMMA, token.EOF}},
		{";", []token.Token{token.SEMICOLON, token.EOF}},
		{".", []token.Token{token.DOT, token.EOF}},
		{"= =", []token.Token{token.ASSIGN, token.ASSIGN, token.EOF}},
		{"==x", []token.Token{token.EQUALS, token.NAME, token.EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := NewFromString(tt.input)
			for i, exp := range tt.expected {
				tok := l.Scan()
				if tok.Type != exp {
					t.Errorf("token[%d]: expected %v, got %v", i, exp, tok.Type)
				}
			}
		})
	}
}

func TestScanKeywords(t *testing.T) {
	tests := []struct {
		input    string
		expected token.Token
	}{
		{"local", token.LOCAL},
		{"if", token.IF},
		{"else", token.ELSE},
		{"while", token.WHILE},
		{"do", token.DO},
		{"function", token.FUNCTION},
		{"return", token.RETURN},
		{"class", token.CLASS},
		{"extends", token.EXTENDS},
		{"throw", token.THROW},
		{"try", token.TRY},
		{"catch", token.CATCH},
		{"finally", token.FINALLY},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := NewFromString(tt.input).Scan()
			if tok.Type != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, tok.Type)
			}
			if tok.Value != tt.input {
				t.Errorf("lexeme = %q, want %q", tok.Value, tt.input)
			}
		})
	}
}

func TestScanProperties(t *testing.T) {
	tests := []struct {
		input    string
		expected token.Token
	}{
		{"Pos", token.POS},
		{"Size", token.SIZE},
		{"Image", token.IMAGE},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := NewFromString(tt.input).Scan()
			if tok.Type != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, tok.Type)
			}
		})
	}

	// Property classification wins over plain identifiers, but only for
	// the exact spelling.
	tok := NewFromString("pos").Scan()
	if tok.Type != token.NAME {
		t.Errorf("\"pos\" classified as %v, want NAME", tok.Type)
	}
}

func TestScanBooleans(t *testing.T) {
	for _, input := range []string{"True", "False"} {
		tok := NewFromString(input).Scan()
		if tok.Type != token.BOOL {
			t.Errorf("%q classified as %v, want BOOL", input, tok.Type)
		}
		if tok.Value != input {
			t.Errorf("lexeme = %q, want %q", tok.Value, input)
		}
	}

	// Lowercase spellings are plain identifiers in source.
	tok := NewFromString("true").Scan()
	if tok.Type != token.NAME {
		t.Errorf("\"true\" classified as %v, want NAME", tok.Type)
	}
}

func TestScanIdentifiersAndNumbers(t *testing.T) {
	tests := []struct {
		input string
		typ   token.Token
		value string
	}{
		{"foo", token.NAME, "foo"},
		{"_bar", token.NAME, "_bar"},
		{"x2", token.NAME, "x2"},
		{"localize", token.NAME, "localize"}, // keyword prefix only
		{"0", token.NUMBER, "0"},
		{"42", token.NUMBER, "42"},
		{"007", token.NUMBER, "007"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := NewFromString(tt.input).Scan()
			if tok.Type != tt.typ {
				t.Errorf("type = %v, want %v", tok.Type, tt.typ)
			}
			if tok.Value != tt.value {
				t.Errorf("value = %q, want %q", tok.Value, tt.value)
			}
		})
	}
}

func TestScanStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		value string
	}{
		{"simple", `"hello"`, "hello"},
		{"empty", `""`, ""},
		{"spaces", `"a b c"`, "a b c"},
		// No escape processing: the backslash is an ordinary character.
		{"backslash", `"a\nb"`, `a\nb`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewFromString(tt.input).Scan()
			if tok.Type != token.STRING {
				t.Fatalf("type = %v, want STRING", tok.Type)
			}
			if tok.Value != tt.value {
				t.Errorf("value = %q, want %q", tok.Value, tt.value)
			}
		})
	}
}

func TestScanComments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []token.Token
	}{
		{"line comment", "// nothing here\nlocal", []token.Token{token.LOCAL, token.EOF}},
		{"line comment at end", "local // trailing", []token.Token{token.LOCAL, token.EOF}},
		{"block comment", "/* skip */ local", []token.Token{token.LOCAL, token.EOF}},
		{"block comment multiline", "/* a\nb\nc */ 42", []token.Token{token.NUMBER, token.EOF}},
		{"adjacent comments", "// one\n/* two */ x", []token.Token{token.NAME, token.EOF}},
		{"division not comment", "a / b", []token.Token{token.NAME, token.DIV, token.NAME, token.EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewFromString(tt.input)
			for i, exp := range tt.expected {
				tok := l.Scan()
				if tok.Type != exp {
					t.Errorf("token[%d]: expected %v, got %v", i, exp, tok.Type)
				}
			}
		})
	}
}

func TestScanIllegal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"unterminated string", `"abc`, "unterminated string"},
		{"string across newline", "\"abc\ndef\"", "unterminated string"},
		{"unterminated block comment", "/* abc", "unterminated block comment"},
		{"unrecognized character", "@", "unrecognized character '@'"},
		{"lone bang", "!", "unexpected '!'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewFromString(tt.input).Scan()
			if tok.Type != token.ILLEGAL {
				t.Fatalf("type = %v, want ILLEGAL", tok.Type)
			}
			if tok.Value != tt.message {
				t.Errorf("message = %q, want %q", tok.Value, tt.message)
			}
		})
	}
}

func TestScanPositions(t *testing.T) {
	l := NewFromString("local x;\nx = 1;")

	want := []struct {
		typ  token.Token
		line int
		col  int
	}{
		{token.LOCAL, 1, 1},
		{token.NAME, 1, 7},
		{token.SEMICOLON, 1, 8},
		{token.NAME, 2, 1},
		{token.ASSIGN, 2, 3},
		{token.NUMBER, 2, 5},
		{token.SEMICOLON, 2, 6},
		{token.EOF, 2, 7},
	}

	for i, w := range want {
		tok := l.Scan()
		if tok.Type != w.typ {
			t.Fatalf("token[%d]: type = %v, want %v", i, tok.Type, w.typ)
		}
		if tok.Pos.Line != w.line || tok.Pos.Column != w.col {
			t.Errorf("token[%d] %v: pos = %d:%d, want %d:%d",
				i, tok.Type, tok.Pos.Line, tok.Pos.Column, w.line, w.col)
		}
	}
}

// TestScanDeterminism verifies that scanning the same text twice yields
// identical token sequences.
func TestScanDeterminism(t *testing.T) {
	src := `
local hits = 0;
function fire(target) {
    if target > 10 {
        throw "too far";
    }
    hits = hits + 1;
}
try { fire(5); } catch (err) { hits = 0; } finally { Sprite.Pos(0, 0); }
`
	scanAll := func() []Token {
		var toks []Token
		l := NewFromString(src)
		for {
			tok := l.Scan()
			toks = append(toks, tok)
			if tok.Type == token.EOF {
				return toks
			}
		}
	}

	first := scanAll()
	second := scanAll()

	if len(first) != len(second) {
		t.Fatalf("token counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("token[%d] differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestScanProgram(t *testing.T) {
	l := NewFromString(`Sprite.Pos(x, y);`)

	want := []token.Token{
		token.NAME, token.DOT, token.POS, token.LPAREN,
		token.NAME, token.COMMA, token.NAME,
		token.RPAREN, token.SEMICOLON, token.EOF,
	}
	for i, exp := range want {
		tok := l.Scan()
		if tok.Type != exp {
			t.Errorf("token[%d]: expected %v, got %v", i, exp, tok.Type)
		}
	}
}
