// Package sprocket translates Sprocket game scripts into Lua.
//
// Sprocket is a small, dynamically-typed scripting language with control
// flow, functions, classes with single inheritance, property-style method
// calls, and exceptions. The translator runs four synchronous stages:
// tokenization, recursive-descent parsing with precedence climbing,
// scope-chain semantic analysis, and tree-to-text code generation that
// lowers try/catch/finally into explicit labels and jumps.
//
// # Quick Start
//
// For one-off translation:
//
//	lua, err := sprocket.Translate(`local x = 10;`, nil)
//
// # Compiled Programs
//
// To validate once and generate repeatedly (for example with different
// engine handles):
//
//	prog, err := sprocket.Compile(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	lua := prog.Generate(&sprocket.Config{EngineGlobal: "_G.game"})
//
// # Error Handling
//
// Errors are returned as specific types for detailed handling:
//   - [ParseError]: lexical and syntax errors in Sprocket source
//   - [CompileError]: semantic errors (duplicate definitions, undefined
//     symbols, non-class parents)
//
// Generation on a validated [Program] cannot fail and is deterministic:
// generating the same program twice yields byte-identical output.
//
// # Concurrency
//
// The pipeline holds no cross-run state. Each call to Translate or Compile
// builds its own token cursor, AST, and scope tree, so concurrent calls are
// independent. A compiled [Program] is safe for concurrent Generate calls.
package sprocket
