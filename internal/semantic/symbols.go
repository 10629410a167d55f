package semantic

import (
	"github.com/sprocket-lang/sprocket/internal/token"
)

// SymbolKind defines the category of a symbol.
type SymbolKind int

const (
	SymbolVariable SymbolKind = iota // Local variable or function parameter
	SymbolFunction                   // Function declaration
	SymbolClass                      // Class declaration
)

// String returns a human-readable name for the symbol kind.
func (k SymbolKind) String() string {
	switch k {
	case SymbolVariable:
		return "variable"
	case SymbolFunction:
		return "function"
	case SymbolClass:
		return "class"
	default:
		return "unknown"
	}
}

// ValueType is the coarse type tag carried by a symbol. It records what a
// declaration's initializer looked like; it is only consulted for
// existence/kind checks, never for numeric or text subtype checking.
type ValueType int

const (
	TypeNone ValueType = iota // No initializer, or initializer of mixed shape
	TypeNumber
	TypeText
	TypeBool
	TypeFunction
	TypeClass
)

// String returns a human-readable name for the value type.
func (t ValueType) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeNumber:
		return "number"
	case TypeText:
		return "text"
	case TypeBool:
		return "bool"
	case TypeFunction:
		return "function"
	case TypeClass:
		return "class"
	default:
		return "invalid"
	}
}

// Symbol holds information about a declared name.
type Symbol struct {
	Name   string         // Symbol name
	Kind   SymbolKind     // Category (variable, function, class)
	Type   ValueType      // Coarse type tag
	Params []string       // Parameter names (functions only)
	Pos    token.Position // Declaration position
}

// NewVariable creates a variable symbol.
func NewVariable(name string, pos token.Position) *Symbol {
	return &Symbol{Name: name, Kind: SymbolVariable, Type: TypeNone, Pos: pos}
}

// NewFunction creates a function symbol with its ordered parameter names.
func NewFunction(name string, params []string, pos token.Position) *Symbol {
	return &Symbol{Name: name, Kind: SymbolFunction, Type: TypeFunction, Params: params, Pos: pos}
}

// NewClass creates a class symbol.
func NewClass(name string, pos token.Position) *Symbol {
	return &Symbol{Name: name, Kind: SymbolClass, Type: TypeClass, Pos: pos}
}

// Scope is one link in the lexical scope chain: a name-to-symbol mapping
// plus a reference to the enclosing scope. The parent reference is
// one-directional; a scope never points at its children, so exited scopes
// become unreachable as soon as the analyzer moves on.
type Scope struct {
	parent  *Scope
	symbols map[string]*Symbol
}

// NewScope creates a scope with the given parent.
// Pass nil for the global scope.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		parent:  parent,
		symbols: make(map[string]*Symbol),
	}
}

// Parent returns the enclosing scope, or nil for the global scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Define adds a symbol to this scope.
// Returns false if a symbol with that name already exists in this exact
// scope; shadowing a name from an ancestor scope is allowed.
func (s *Scope) Define(sym *Symbol) bool {
	if _, exists := s.symbols[sym.Name]; exists {
		return false
	}
	s.symbols[sym.Name] = sym
	return true
}

// Resolve searches for a name in this scope and all ancestor scopes,
// returning the symbol from the nearest scope that defines it.
func (s *Scope) Resolve(name string) (*Symbol, bool) {
	for scope := s; scope != nil; scope = scope.parent {
		if sym, ok := scope.symbols[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// ResolveLocal searches for a name only in this scope.
func (s *Scope) ResolveLocal(name string) (*Symbol, bool) {
	sym, ok := s.symbols[name]
	return sym, ok
}
