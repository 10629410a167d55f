// Package ast defines the abstract syntax tree for Sprocket programs.
//
// Node hierarchy:
//
//	Node (interface)
//	├── Expr (interface) - expressions that produce values
//	│   ├── Literal - number, text, boolean, identifier
//	│   └── BinaryExpr - left op right
//	└── Stmt (interface) - statements that perform actions
//	    ├── LocalStmt, AssignStmt, CallStmt - basic
//	    ├── IfStmt, WhileStmt - control flow
//	    ├── FuncDecl, ReturnStmt, ClassDecl - declarations
//	    ├── ThrowStmt, TryStmt - exceptions
//	    └── BlockStmt - compound
//
// Nodes are created by the parser, read-only afterwards, and owned
// exactly once by their parent container (a tree, no sharing).
package ast

import "github.com/sprocket-lang/sprocket/internal/token"

// Node is the interface implemented by all AST nodes.
// It provides source position information for error reporting.
type Node interface {
	// Pos returns the position of the first character belonging to this node.
	Pos() token.Position
}

// Expr is the interface for all expression nodes.
// Expressions are AST nodes that evaluate to a value.
type Expr interface {
	Node
	exprNode() // marker method to prevent external implementations
}

// Stmt is the interface for all statement nodes.
// Statements are AST nodes that perform actions.
type Stmt interface {
	Node
	stmtNode() // marker method to prevent external implementations
}

// BaseExpr provides common fields for all expression nodes.
// Embedded in concrete expression types for position tracking.
type BaseExpr struct {
	StartPos token.Position // Position of first token
}

func (b *BaseExpr) Pos() token.Position { return b.StartPos }
func (b *BaseExpr) exprNode()           {}

// BaseStmt provides common fields for all statement nodes.
// Embedded in concrete statement types for position tracking.
type BaseStmt struct {
	StartPos token.Position // Position of first token
}

func (b *BaseStmt) Pos() token.Position { return b.StartPos }
func (b *BaseStmt) stmtNode()           {}
