// Package semantic provides semantic analysis for Sprocket programs.
//
// The analyzer performs a single traversal of the AST that:
//   - populates a chain of lexical scopes with variable, function, and
//     class symbols
//   - rejects duplicate definitions within one scope
//   - rejects references that resolve to nothing along the scope chain
//   - validates that a parent class name resolves to a class
//
// The AST is never rewritten; the scope tree is discarded when the
// traversal finishes. Analysis stops at the first error.
package semantic

import (
	"fmt"

	"github.com/sprocket-lang/sprocket/internal/token"
)

// ErrorKind classifies a semantic error.
type ErrorKind int

const (
	// DuplicateDefinition reports a name already defined in the same scope.
	DuplicateDefinition ErrorKind = iota
	// UndefinedSymbol reports a reference that resolves to nothing.
	UndefinedSymbol
	// TypeMismatch reports a parent class name bound to a non-class symbol.
	TypeMismatch
)

// String returns a human-readable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case DuplicateDefinition:
		return "duplicate definition"
	case UndefinedSymbol:
		return "undefined symbol"
	case TypeMismatch:
		return "type mismatch"
	default:
		return "unknown"
	}
}

// Error represents a semantic analysis error with source location.
type Error struct {
	Kind    ErrorKind
	Pos     token.Position
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return e.Message
}

// errorf creates an Error of the given kind with a formatted message.
func errorf(kind ErrorKind, pos token.Position, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	}
}
