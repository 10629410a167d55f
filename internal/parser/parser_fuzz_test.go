package parser_test

import (
	"testing"

	"github.com/sprocket-lang/sprocket/internal/parser"
)

// FuzzParser tests the parser with arbitrary inputs to find crashes.
// Every input must either parse or fail with a ParseError; nothing may
// panic out of Parse.
func FuzzParser(f *testing.F) {
	seeds := []string{
		// Empty and minimal
		"",
		"local x;",
		"local x = 10;",

		// Expressions
		"x = 10 + 2 * 5 == max - 20;",
		"x = (a + b) * c;",
		`x = "text" == other;`,
		"x = True;",

		// Calls and paths
		"spawn();",
		"Sprite.Pos(x, y);",
		`print.log.Console("hi");`,

		// Control flow
		"if a > b { x = a; } else { x = b; }",
		"while x < 10 do { x = x + 1; }",

		// Declarations
		"function f() { }",
		"function add(a, b) { return a + b; }",
		"class Actor { }",
		"class Enemy extends Actor { local hp = 3; }",

		// Exceptions
		`throw "boom";`,
		"try { } catch { }",
		"try { } catch (e) { } finally { }",

		// Broken inputs
		"local",
		"local x = ;",
		"foo.bar;",
		"while { }",
		`"unterminated`,
		"/* unterminated",
		"}}}}",
		"((((",
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		prog, err := parser.Parse(src)
		if err == nil && prog == nil {
			t.Error("Parse returned neither program nor error")
		}
		if err != nil {
			if _, ok := err.(*parser.ParseError); !ok {
				t.Errorf("error type = %T, want *parser.ParseError", err)
			}
		}
	})
}
