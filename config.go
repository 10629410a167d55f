package sprocket

import "github.com/sprocket-lang/sprocket/internal/codegen"

// Config holds configuration options for code generation.
type Config struct {
	// EngineGlobal is the globally-available engine handle that the
	// generated preamble aliases (default "_G.engine").
	EngineGlobal string

	// Indent is one level of indentation in the generated text
	// (default four spaces).
	Indent string

	// Banner overrides the comment line emitted at the top of the output.
	Banner string
}

// options converts the public Config to the internal generator options.
func (c *Config) options() *codegen.Options {
	if c == nil {
		return nil
	}
	return &codegen.Options{
		EngineGlobal: c.EngineGlobal,
		Indent:       c.Indent,
		Banner:       c.Banner,
	}
}
