package ast

// BlockStmt represents a braced block of statements.
// Example: { stmt1; stmt2; }
type BlockStmt struct {
	BaseStmt
	Stmts []Stmt // Statements in the block (may be empty)
}

// LocalStmt represents a local variable declaration.
// Examples: local x; local x = 10;
type LocalStmt struct {
	BaseStmt
	Name string // Declared variable name
	Init Expr   // Initializer expression (nil if absent)
}

// AssignStmt represents an assignment to an access path.
// Examples: x = 1; player.score = total + 1;
type AssignStmt struct {
	BaseStmt
	Target []string // Access path of the assignment target
	Value  Expr     // Right-hand side expression
}

// CallStmt represents a call through an access path.
// Examples: spawn(x); Sprite.Pos(x, y);
type CallStmt struct {
	BaseStmt
	Path []string // Dotted access path of the call target
	Args []Expr   // Ordered argument expressions (may be empty)
}

// IfStmt represents a conditional statement.
// Example: if x > 0 { ... } else { ... }
type IfStmt struct {
	BaseStmt
	Cond Expr       // Condition expression
	Then *BlockStmt // Then branch
	Else *BlockStmt // Else branch (nil if absent)
}

// WhileStmt represents a while loop.
// Example: while x < 10 do { ... }
// The optional "do" keyword is consumed and discarded by the parser.
type WhileStmt struct {
	BaseStmt
	Cond Expr       // Loop condition
	Body *BlockStmt // Loop body
}

// FuncDecl represents a function declaration.
// Example: function add(a, b) { return a + b; }
type FuncDecl struct {
	BaseStmt
	Name   string     // Function name
	Params []string   // Ordered parameter names (may be empty)
	Body   *BlockStmt // Function body
}

// ReturnStmt represents a return statement.
// Examples: return; return x + 1;
type ReturnStmt struct {
	BaseStmt
	Value Expr // Return value expression (nil if absent)
}

// ClassDecl represents a class declaration with optional single inheritance.
// Examples: class Actor { ... } class Enemy extends Actor { ... }
type ClassDecl struct {
	BaseStmt
	Name   string     // Class name
	Parent string     // Parent class name ("" if absent)
	Body   *BlockStmt // Class body (member list)
}

// ThrowStmt represents raising an exception value.
// Example: throw "boom";
type ThrowStmt struct {
	BaseStmt
	Value Expr // Exception expression
}

// TryStmt represents structured exception handling.
// Example: try { ... } catch (err) { ... } finally { ... }
type TryStmt struct {
	BaseStmt
	Try     *BlockStmt // Protected block
	ErrName string     // Exception binding name ("" if absent)
	Catch   *BlockStmt // Handler block
	Finally *BlockStmt // Finally block (nil if absent)
}
