package sprocket

import (
	"github.com/sprocket-lang/sprocket/internal/ast"
	"github.com/sprocket-lang/sprocket/internal/codegen"
)

// Program represents a parsed and validated Sprocket program.
// It is safe for concurrent use; each call to Generate produces its own
// output buffer from the read-only AST.
type Program struct {
	tree   *ast.Program
	source string // Original source for debugging
}

// Generate lowers the validated program into Lua source text.
// If config is nil, default configuration is used.
//
// Generation is deterministic: calling Generate twice with the same config
// returns byte-identical text.
func (p *Program) Generate(config *Config) string {
	return codegen.Generate(p.tree, config.options())
}

// Source returns the original Sprocket source text.
func (p *Program) Source() string {
	return p.source
}

// AST returns the program's syntax tree for debugging and inspection.
// The tree is read-only; callers must not modify it.
func (p *Program) AST() *ast.Program {
	return p.tree
}
