package semantic

import (
	"github.com/sprocket-lang/sprocket/internal/ast"
)

// Analyzer walks the AST with a single current-scope cursor.
// Scope entry and exit follow strict stack discipline along the traversal.
type Analyzer struct {
	scope *Scope // Current scope
}

// Analyze validates the given program against a fresh global scope.
// It returns the first *Error encountered, or nil if the program is
// well-formed. The scope tree is not retained.
func Analyze(prog *ast.Program) error {
	a := &Analyzer{scope: NewScope(nil)}
	return a.stmts(prog.Stmts)
}

// enter pushes a new scope under the current one.
func (a *Analyzer) enter() {
	a.scope = NewScope(a.scope)
}

// exit pops back to the enclosing scope.
func (a *Analyzer) exit() {
	a.scope = a.scope.Parent()
}

// define adds a symbol to the current scope, reporting DuplicateDefinition
// if the name is already taken there.
func (a *Analyzer) define(sym *Symbol) error {
	if !a.scope.Define(sym) {
		return errorf(DuplicateDefinition, sym.Pos, "duplicate definition of %q in the same scope", sym.Name)
	}
	return nil
}

func (a *Analyzer) stmts(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := a.stmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) stmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.LocalStmt:
		return a.localStmt(s)
	case *ast.AssignStmt:
		return a.assignStmt(s)
	case *ast.CallStmt:
		return a.callStmt(s)
	case *ast.IfStmt:
		return a.ifStmt(s)
	case *ast.WhileStmt:
		return a.whileStmt(s)
	case *ast.FuncDecl:
		return a.funcDecl(s)
	case *ast.ReturnStmt:
		if s.Value != nil {
			return a.expr(s.Value)
		}
		return nil
	case *ast.ClassDecl:
		return a.classDecl(s)
	case *ast.ThrowStmt:
		return a.expr(s.Value)
	case *ast.TryStmt:
		return a.tryStmt(s)
	case *ast.BlockStmt:
		return a.block(s)
	default:
		// Unreachable: the parser produces no other statement types.
		return nil
	}
}

// block analyzes a block that is not directly the body of a function or
// class declaration. Such blocks introduce their own transient scope.
func (a *Analyzer) block(b *ast.BlockStmt) error {
	a.enter()
	defer a.exit()
	return a.stmts(b.Stmts)
}

func (a *Analyzer) localStmt(s *ast.LocalStmt) error {
	sym := NewVariable(s.Name, s.Pos())
	sym.Type = initializerType(s.Init)
	if err := a.define(sym); err != nil {
		return err
	}
	if s.Init != nil {
		return a.expr(s.Init)
	}
	return nil
}

// initializerType derives the coarse type tag from a literal initializer.
func initializerType(init ast.Expr) ValueType {
	lit, ok := init.(*ast.Literal)
	if !ok {
		return TypeNone
	}
	switch lit.Kind {
	case ast.LitNumber:
		return TypeNumber
	case ast.LitText:
		return TypeText
	case ast.LitBool:
		return TypeBool
	default:
		return TypeNone
	}
}

func (a *Analyzer) assignStmt(s *ast.AssignStmt) error {
	if _, ok := a.scope.Resolve(s.Target[0]); !ok {
		return errorf(UndefinedSymbol, s.Pos(), "undefined symbol %q", s.Target[0])
	}
	return a.expr(s.Value)
}

func (a *Analyzer) callStmt(s *ast.CallStmt) error {
	// Only the first path segment is resolvable: anything past it lives on
	// an engine object the analyzer knows nothing about.
	if _, ok := a.scope.Resolve(s.Path[0]); !ok {
		return errorf(UndefinedSymbol, s.Pos(), "undefined symbol %q", s.Path[0])
	}
	for _, arg := range s.Args {
		if err := a.expr(arg); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) ifStmt(s *ast.IfStmt) error {
	if err := a.expr(s.Cond); err != nil {
		return err
	}
	if err := a.block(s.Then); err != nil {
		return err
	}
	if s.Else != nil {
		return a.block(s.Else)
	}
	return nil
}

func (a *Analyzer) whileStmt(s *ast.WhileStmt) error {
	if err := a.expr(s.Cond); err != nil {
		return err
	}
	return a.block(s.Body)
}

// funcDecl defines the function in the enclosing scope, then analyzes the
// body in a new scope seeded with the parameters. The body block shares the
// function's scope rather than opening another one.
func (a *Analyzer) funcDecl(s *ast.FuncDecl) error {
	if err := a.define(NewFunction(s.Name, s.Params, s.Pos())); err != nil {
		return err
	}

	a.enter()
	defer a.exit()
	for _, param := range s.Params {
		if err := a.define(NewVariable(param, s.Pos())); err != nil {
			return err
		}
	}
	return a.stmts(s.Body.Stmts)
}

// classDecl validates the parent class reference, defines the class in the
// enclosing scope, and analyzes the body in a new scope. Like function
// bodies, the class body block shares the class scope.
func (a *Analyzer) classDecl(s *ast.ClassDecl) error {
	if s.Parent != "" {
		parent, ok := a.scope.Resolve(s.Parent)
		if !ok {
			return errorf(UndefinedSymbol, s.Pos(), "undefined symbol %q", s.Parent)
		}
		if parent.Kind != SymbolClass {
			return errorf(TypeMismatch, s.Pos(), "%q is a %s, not a class", s.Parent, parent.Kind)
		}
	}

	if err := a.define(NewClass(s.Name, s.Pos())); err != nil {
		return err
	}

	a.enter()
	defer a.exit()
	return a.stmts(s.Body.Stmts)
}

func (a *Analyzer) tryStmt(s *ast.TryStmt) error {
	if err := a.block(s.Try); err != nil {
		return err
	}

	// The catch block's transient scope also holds the exception binding.
	a.enter()
	if s.ErrName != "" {
		if err := a.define(NewVariable(s.ErrName, s.Catch.Pos())); err != nil {
			a.exit()
			return err
		}
	}
	if err := a.stmts(s.Catch.Stmts); err != nil {
		a.exit()
		return err
	}
	a.exit()

	if s.Finally != nil {
		return a.block(s.Finally)
	}
	return nil
}

func (a *Analyzer) expr(expr ast.Expr) error {
	switch e := expr.(type) {
	case *ast.Literal:
		if e.Kind == ast.LitIdent {
			if _, ok := a.scope.Resolve(e.Text); !ok {
				return errorf(UndefinedSymbol, e.Pos(), "undefined symbol %q", e.Text)
			}
		}
		return nil
	case *ast.BinaryExpr:
		// Operands of any kind are accepted; only existence is checked.
		if err := a.expr(e.Left); err != nil {
			return err
		}
		return a.expr(e.Right)
	default:
		return nil
	}
}
