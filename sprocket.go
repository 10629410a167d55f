package sprocket

import (
	"errors"

	"github.com/sprocket-lang/sprocket/internal/parser"
	"github.com/sprocket-lang/sprocket/internal/semantic"
)

// Version is the sprocket version string.
const Version = "0.1.0"

// Translate parses, validates, and lowers a Sprocket program to Lua.
// This is a convenience function for one-off translation; to generate the
// same program more than once, use Compile followed by Program.Generate.
//
// Returns the Lua source text, or an error if parsing or validation fails.
// No partial output is produced on error.
//
// Example:
//
//	lua, err := sprocket.Translate(`local x = 10;`, nil)
func Translate(src string, config *Config) (string, error) {
	prog, err := Compile(src)
	if err != nil {
		return "", err
	}
	return prog.Generate(config), nil
}

// Compile parses and validates a Sprocket program.
// The returned Program can be lowered multiple times with different
// configurations.
func Compile(src string) (*Program, error) {
	tree, err := parser.Parse(src)
	if err != nil {
		// Convert parser error to public type
		var pe *parser.ParseError
		if errors.As(err, &pe) {
			return nil, &ParseError{
				Line:    pe.Pos.Line,
				Column:  pe.Pos.Column,
				Message: pe.Message,
			}
		}
		return nil, &ParseError{Message: err.Error()}
	}

	if err := semantic.Analyze(tree); err != nil {
		var se *semantic.Error
		if errors.As(err, &se) {
			return nil, compileError(se)
		}
		return nil, &CompileError{Message: err.Error()}
	}

	return &Program{
		tree:   tree,
		source: src,
	}, nil
}

// MustCompile is like Compile but panics if the program cannot be compiled.
// It simplifies initialization of global program variables.
func MustCompile(src string) *Program {
	prog, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return prog
}
