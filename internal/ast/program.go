package ast

import "strings"

// Program is the root of the AST: the ordered top-level statements of a
// Sprocket source file.
type Program struct {
	Stmts []Stmt
}

// PathString joins an access path with dots, for error messages.
// Example: ["player", "score"] -> "player.score"
func PathString(path []string) string {
	return strings.Join(path, ".")
}
