package sprocket

import (
	"fmt"

	"github.com/sprocket-lang/sprocket/internal/semantic"
)

// ParseError represents a lexical or syntax error in Sprocket source code.
type ParseError struct {
	Line    int    // 1-based line number
	Column  int    // 1-based column number
	Message string // Error description
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Column, e.Message)
}

// ErrorKind classifies a semantic error.
type ErrorKind int

const (
	// DuplicateDefinition reports a name already defined in the same scope.
	DuplicateDefinition ErrorKind = iota
	// UndefinedSymbol reports a reference that resolves to nothing along
	// the scope chain.
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

// CompileError represents a semantic error found during compilation.
type CompileError struct {
	Kind    ErrorKind // Error classification
	Line    int       // 1-based line number (0 if unknown)
	Column  int       // 1-based column number (0 if unknown)
	Message string    // Error description
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile error: %s", e.Message)
}

// compileError converts an internal semantic error to the public type.
func compileError(err *semantic.Error) *CompileError {
	kind := UndefinedSymbol
	switch err.Kind {
	case semantic.DuplicateDefinition:
		kind = DuplicateDefinition
	case semantic.UndefinedSymbol:
		kind = UndefinedSymbol
	case semantic.TypeMismatch:
		kind = TypeMismatch
	}
	return &CompileError{
		Kind:    kind,
		Line:    err.Pos.Line,
		Column:  err.Pos.Column,
		Message: err.Message,
	}
}
