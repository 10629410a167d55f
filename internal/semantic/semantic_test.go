package semantic

import (
	"strings"
	"testing"

	"github.com/sprocket-lang/sprocket/internal/parser"
	"github.com/sprocket-lang/sprocket/internal/token"
)

// analyzeCode parses and analyzes a program.
func analyzeCode(t *testing.T, code string) error {
	t.Helper()
	prog, err := parser.Parse(code)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return Analyze(prog)
}

// expectNoError analyzes code and fails the test on any error.
func expectNoError(t *testing.T, code string) {
	t.Helper()
	if err := analyzeCode(t, code); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// expectError analyzes code and checks the error kind and message.
func expectError(t *testing.T, code string, kind ErrorKind, substr string) {
	t.Helper()
	err := analyzeCode(t, code)
	if err == nil {
		t.Errorf("expected %v error containing %q, got no error", kind, substr)
		return
	}
	se, ok := err.(*Error)
	if !ok {
		t.Errorf("error type = %T, want *semantic.Error", err)
		return
	}
	if se.Kind != kind {
		t.Errorf("error kind = %v, want %v", se.Kind, kind)
	}
	if !strings.Contains(se.Message, substr) {
		t.Errorf("error = %q, want substring %q", se.Message, substr)
	}
}

// -----------------------------------------------------------------------------
// Scope unit tests
// -----------------------------------------------------------------------------

func TestScopeDefineResolve(t *testing.T) {
	global := NewScope(nil)
	inner := NewScope(global)

	if !global.Define(NewVariable("x", token.NoPos)) {
		t.Fatal("first define of x failed")
	}
	if global.Define(NewVariable("x", token.NoPos)) {
		t.Error("redefining x in the same scope succeeded")
	}

	// Shadowing an ancestor name is allowed.
	if !inner.Define(NewVariable("x", token.NoPos)) {
		t.Error("shadowing x in a child scope failed")
	}

	// Resolve returns the nearest definition.
	sym, ok := inner.Resolve("x")
	if !ok {
		t.Fatal("x did not resolve in inner scope")
	}
	if outer, _ := global.Resolve("x"); sym == outer {
		t.Error("inner resolve returned the outer symbol")
	}

	if _, ok := inner.Resolve("missing"); ok {
		t.Error("missing name resolved")
	}
}

func TestScopeResolveLocal(t *testing.T) {
	global := NewScope(nil)
	global.Define(NewVariable("g", token.NoPos))
	inner := NewScope(global)

	if _, ok := inner.ResolveLocal("g"); ok {
		t.Error("ResolveLocal found ancestor symbol")
	}
	if _, ok := inner.Resolve("g"); !ok {
		t.Error("Resolve missed ancestor symbol")
	}
}

// -----------------------------------------------------------------------------
// Analyzer tests
// -----------------------------------------------------------------------------

func TestLocalDeclarations(t *testing.T) {
	expectNoError(t, `
		local x = 1;
		local y = x + 1;
	`)
}

func TestUndefinedReference(t *testing.T) {
	expectError(t, `local y = z;`, UndefinedSymbol, `"z"`)
}

func TestDuplicateInSameScope(t *testing.T) {
	expectError(t, `
		local x = 1;
		local x = 2;
	`, DuplicateDefinition, `"x"`)
}

// TestShadowing verifies that an inner scope may redefine a name from an
// ancestor scope, and that redefinition inside one scope still fails.
func TestShadowing(t *testing.T) {
	expectNoError(t, `
		local x = 1;
		function f() {
			local x = 2;
			return x;
		}
	`)

	expectError(t, `
		function f() {
			local x = 1;
			local x = 2;
		}
	`, DuplicateDefinition, `"x"`)
}

func TestFunctionScopes(t *testing.T) {
	// Parameters are variables in the function's scope.
	expectNoError(t, `
		function add(a, b) {
			return a + b;
		}
	`)

	// Parameter names collide with each other.
	expectError(t, `function f(a, a) { }`, DuplicateDefinition, `"a"`)

	// Parameters do not leak into the enclosing scope.
	expectError(t, `
		function f(a) { return a; }
		local y = a;
	`, UndefinedSymbol, `"a"`)

	// Functions are visible after their declaration.
	expectNoError(t, `
		function f() { }
		f();
	`)
}

func TestBlockScoping(t *testing.T) {
	// A block that is not a function or class body gets its own scope,
	// so its locals vanish at the closing brace.
	expectError(t, `
		local t = 1;
		if t > 0 {
			local inner = 2;
		}
		local z = inner;
	`, UndefinedSymbol, `"inner"`)

	// The block sees enclosing names.
	expectNoError(t, `
		local t = 1;
		while t < 3 {
			t = t + 1;
		}
	`)

	// Sibling blocks may reuse the same name.
	expectNoError(t, `
		local t = 1;
		if t > 0 { local v = 1; }
		if t > 1 { local v = 2; }
	`)
}

func TestClassInheritance(t *testing.T) {
	// Parent declared as a class: ok.
	expectNoError(t, `
		class Actor { }
		class Enemy extends Actor { }
	`)

	// Parent undeclared: UndefinedSymbol.
	expectError(t, `class B extends A { }`, UndefinedSymbol, `"A"`)

	// Parent declared but not a class: TypeMismatch.
	expectError(t, `
		local A = 1;
		class B extends A { }
	`, TypeMismatch, `"A"`)

	// Class members live in the class scope.
	expectError(t, `
		class Actor {
			local hp = 10;
		}
		local x = hp;
	`, UndefinedSymbol, `"hp"`)
}

func TestCallResolution(t *testing.T) {
	// Only the first path segment must resolve.
	expectNoError(t, `
		local player = 0;
		player.Pos(1, 2);
	`)

	expectError(t, `ghost.Pos(1, 2);`, UndefinedSymbol, `"ghost"`)

	// Arguments are validated recursively.
	expectError(t, `
		local player = 0;
		player.Pos(missing, 2);
	`, UndefinedSymbol, `"missing"`)
}

func TestAssignmentResolution(t *testing.T) {
	expectNoError(t, `
		local player = 0;
		player.score = 1;
	`)

	expectError(t, `ghost.score = 1;`, UndefinedSymbol, `"ghost"`)

	expectError(t, `
		local x = 0;
		x = y + 1;
	`, UndefinedSymbol, `"y"`)
}

func TestTryCatchScopes(t *testing.T) {
	// The catch binding is visible inside the catch block.
	expectNoError(t, `
		local log = 0;
		try {
			throw "boom";
		} catch (err) {
			log = err;
		}
	`)

	// ...and nowhere else.
	expectError(t, `
		try { } catch (err) { }
		local x = err;
	`, UndefinedSymbol, `"err"`)

	// Finally blocks get their own transient scope too.
	expectError(t, `
		try { } catch { } finally { local f = 1; }
		local x = f;
	`, UndefinedSymbol, `"f"`)
}

// TestFirstErrorWins verifies fail-fast behavior: analysis reports the
// leftmost fault and stops.
func TestFirstErrorWins(t *testing.T) {
	err := analyzeCode(t, `
		local a = missing1;
		local b = missing2;
	`)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "missing1") {
		t.Errorf("error = %q, want the first fault (missing1)", err.Error())
	}
}

func TestInitializerTypeTags(t *testing.T) {
	tests := []struct {
		src  string
		want ValueType
	}{
		{`local n = 42;`, TypeNumber},
		{`local s = "hi";`, TypeText},
		{`local b = True;`, TypeBool},
		{`local u;`, TypeNone},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			prog, err := parser.Parse(tt.src)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			a := &Analyzer{scope: NewScope(nil)}
			if err := a.stmts(prog.Stmts); err != nil {
				t.Fatalf("analyze error: %v", err)
			}
			for _, sym := range a.scope.symbols {
				if sym.Type != tt.want {
					t.Errorf("type tag = %v, want %v", sym.Type, tt.want)
				}
			}
		})
	}
}
