// Package codegen lowers a validated Sprocket AST into Lua 5.4 source text.
//
// The generated code runs inside the host engine, which provides a global
// engine handle. The handle carries engine.class for class construction and
// engine.exc, the slot holding the currently-propagating exception value.
//
// Lua has no structured exception syntax, so try/catch/finally is lowered
// into labels and gotos: a throw inside a protected region stores the
// exception value and jumps to the region's catch label, and both the
// normal and the caught paths converge through the finally block exactly
// once before the label that follows the whole construct.
package codegen

import (
	"fmt"
	"strings"

	"github.com/sprocket-lang/sprocket/internal/ast"
	"github.com/sprocket-lang/sprocket/internal/token"
)

// Options controls the shape of the generated text.
type Options struct {
	// EngineGlobal is the globally-available engine handle aliased by the
	// preamble (default "_G.engine").
	EngineGlobal string
	// Indent is one level of indentation (default four spaces).
	Indent string
	// Banner is the comment line emitted at the top of the output.
	Banner string
}

// applyDefaults fills in default values for unset Options fields.
func (o *Options) applyDefaults() {
	if o.EngineGlobal == "" {
		o.EngineGlobal = "_G.engine"
	}
	if o.Indent == "" {
		o.Indent = "    "
	}
	if o.Banner == "" {
		o.Banner = "Generated by sprocketc. Do not edit."
	}
}

// propertyMethods maps engine property names to the setter methods they
// lower to when they appear as the final segment of a call path.
var propertyMethods = map[string]string{
	"Pos":   "setPos",
	"Size":  "setSize",
	"Image": "setImage",
}

// luaOps maps Sprocket binary operators to their Lua spellings.
// Only inequality differs; Lua's == is already value equality.
var luaOps = map[token.Token]string{
	token.EQUALS:     "==",
	token.NOT_EQUALS: "~=",
	token.LESS:       "<",
	token.GREATER:    ">",
	token.ADD:        "+",
	token.SUB:        "-",
	token.MUL:        "*",
	token.DIV:        "/",
}

// Generator accumulates indented Lua text for one generation run.
// A Generator is single-use; Generate builds a fresh one per call, so
// re-generating the same AST yields byte-identical output.
type Generator struct {
	buf      strings.Builder
	opts     Options
	indent   int
	labelSeq int      // Counter for synthetic control labels
	handlers []string // Stack of active catch labels, innermost last
}

// Generate lowers the ordered top-level statements into Lua source text.
// Pass nil opts for defaults.
func Generate(prog *ast.Program, opts *Options) string {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	o.applyDefaults()

	g := &Generator{opts: o}
	g.preamble()
	g.stmts(prog.Stmts)
	return g.buf.String()
}

// preamble emits the comment banner and the engine handle alias.
func (g *Generator) preamble() {
	rule := strings.Repeat("-", len(g.opts.Banner)+3)
	g.line("-- %s", rule)
	g.line("-- %s", g.opts.Banner)
	g.line("-- %s", rule)
	g.line("local engine = %s;", g.opts.EngineGlobal)
	g.line("")
}

// -----------------------------------------------------------------------------
// Statements
// -----------------------------------------------------------------------------

func (g *Generator) stmts(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		g.stmt(stmt)
	}
}

func (g *Generator) stmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.LocalStmt:
		init := "nil"
		if s.Init != nil {
			init = g.expr(s.Init)
		}
		g.line("local %s = %s;", s.Name, init)

	case *ast.AssignStmt:
		// Direct passthrough: property-style targets are not rewritten to
		// setter calls, unlike call statements.
		g.line("%s = %s;", ast.PathString(s.Target), g.expr(s.Value))

	case *ast.CallStmt:
		g.line("%s(%s);", callTarget(s.Path), g.exprList(s.Args))

	case *ast.IfStmt:
		g.line("if %s then", g.expr(s.Cond))
		g.nested(s.Then)
		if s.Else != nil {
			g.line("else")
			g.nested(s.Else)
		}
		g.line("end")

	case *ast.WhileStmt:
		g.line("while %s do", g.expr(s.Cond))
		g.nested(s.Body)
		g.line("end")

	case *ast.FuncDecl:
		g.line("function %s(%s)", s.Name, strings.Join(s.Params, ", "))
		// Lua labels are not visible across function boundaries, so a throw
		// in the body cannot target an enclosing catch label; it unwinds
		// through error() instead.
		saved := g.handlers
		g.handlers = nil
		g.nested(s.Body)
		g.handlers = saved
		g.line("end")

	case *ast.ReturnStmt:
		if s.Value != nil {
			g.line("return %s;", g.expr(s.Value))
		} else {
			g.line("return;")
		}

	case *ast.ClassDecl:
		if s.Parent != "" {
			g.line("local %s = engine.class(%q, %s);", s.Name, s.Name, s.Parent)
		} else {
			g.line("local %s = engine.class(%q);", s.Name, s.Name)
		}
		// The whole body is one block; members and methods are not
		// differentiated here.
		g.line("do")
		g.nested(s.Body)
		g.line("end")

	case *ast.ThrowStmt:
		g.throwStmt(s)

	case *ast.TryStmt:
		g.tryStmt(s)

	case *ast.BlockStmt:
		g.line("do")
		g.nested(s)
		g.line("end")
	}
}

// throwStmt transfers control to the nearest enclosing catch handler, or
// unwinds out of the program when no protected region is active.
func (g *Generator) throwStmt(s *ast.ThrowStmt) {
	value := g.expr(s.Value)
	if n := len(g.handlers); n > 0 {
		g.line("engine.exc = %s;", value)
		g.line("goto %s;", g.handlers[n-1])
		return
	}
	g.line("error(%s);", value)
}

// tryStmt lowers try/catch/finally into synthetic control labels.
//
// Emission order: mark the protected region start naming its catch label;
// the try block with the handler active; fall-through jump to finally (or
// end); the catch label, the exception binding if any, and the catch block
// with the handler no longer active; its fall-through jump; the finally
// label and block, reached exactly once from either path; the end label;
// the region close.
func (g *Generator) tryStmt(s *ast.TryStmt) {
	g.labelSeq++
	catchLabel := fmt.Sprintf("__catch_%d", g.labelSeq)
	finallyLabel := fmt.Sprintf("__finally_%d", g.labelSeq)
	endLabel := fmt.Sprintf("__end_%d", g.labelSeq)

	// Where both paths converge before continuing.
	join := endLabel
	if s.Finally != nil {
		join = finallyLabel
	}

	g.line("-- try: unwinds to %s", catchLabel)
	g.handlers = append(g.handlers, catchLabel)
	g.line("do")
	g.nested(s.Try)
	g.line("end")
	g.handlers = g.handlers[:len(g.handlers)-1]
	g.line("goto %s;", join)

	g.line("::%s::", catchLabel)
	g.line("do")
	g.indent++
	if s.ErrName != "" {
		g.line("local %s = engine.exc;", s.ErrName)
	}
	g.stmts(s.Catch.Stmts)
	g.indent--
	g.line("end")
	g.line("goto %s;", join)

	if s.Finally != nil {
		g.line("::%s::", finallyLabel)
		g.line("do")
		g.nested(s.Finally)
		g.line("end")
	}

	g.line("::%s::", endLabel)
	g.line("-- end try")
}

// nested emits a block's statements one indent level deeper.
func (g *Generator) nested(b *ast.BlockStmt) {
	g.indent++
	g.stmts(b.Stmts)
	g.indent--
}

// callTarget renders a call path, rewriting a trailing engine property
// into its setter method when the path has more than one segment.
func callTarget(path []string) string {
	if len(path) > 1 {
		if method, ok := propertyMethods[path[len(path)-1]]; ok {
			return ast.PathString(path[:len(path)-1]) + "." + method
		}
	}
	return ast.PathString(path)
}

// -----------------------------------------------------------------------------
// Expressions
// -----------------------------------------------------------------------------

func (g *Generator) expr(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Literal:
		switch e.Kind {
		case ast.LitText:
			return "\"" + e.Text + "\""
		case ast.LitBool:
			return strings.ToLower(e.Text)
		default:
			// Numbers and identifiers pass through unchanged.
			return e.Text
		}

	case *ast.BinaryExpr:
		// Always parenthesized so evaluation order survives Lua's own
		// precedence rules.
		return "(" + g.expr(e.Left) + " " + luaOps[e.Op] + " " + g.expr(e.Right) + ")"

	default:
		return ""
	}
}

func (g *Generator) exprList(exprs []ast.Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = g.expr(e)
	}
	return strings.Join(parts, ", ")
}

// line writes one indented line of output.
func (g *Generator) line(format string, args ...any) {
	if format == "" {
		g.buf.WriteByte('\n')
		return
	}
	g.buf.WriteString(strings.Repeat(g.opts.Indent, g.indent))
	fmt.Fprintf(&g.buf, format, args...)
	g.buf.WriteByte('\n')
}
