package parser

import (
	"github.com/sprocket-lang/sprocket/internal/ast"
	"github.com/sprocket-lang/sprocket/internal/lexer"
	"github.com/sprocket-lang/sprocket/internal/token"
)

// binaryPrec maps binary operator tokens to their precedence.
// Higher binds tighter; zero means "not a binary operator".
var binaryPrec = map[token.Token]int{
	token.EQUALS:     1,
	token.NOT_EQUALS: 1,
	token.LESS:       1,
	token.GREATER:    1,
	token.ADD:        2,
	token.SUB:        2,
	token.MUL:        3,
	token.DIV:        3,
}

// Parser is a recursive descent parser for Sprocket programs.
// It keeps a single token of lookahead and aborts on the first error.
type Parser struct {
	lexer *lexer.Lexer // Lexer instance
	tok   lexer.Token  // Current token
}

// Parse parses a Sprocket program from source code.
// Returns the AST, or a *ParseError describing the first syntax fault.
func Parse(src string) (*ast.Program, error) {
	return ParseBytes([]byte(src))
}

// ParseBytes parses a Sprocket program from a byte slice.
func ParseBytes(src []byte) (prog *ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(*ParseError)
			if !ok {
				panic(r) // Not a parse error, re-panic
			}
			prog = nil
			err = pe
		}
	}()

	p := &Parser{lexer: lexer.New(src)}
	p.next() // Initialize first token
	return p.parseProgram(), nil
}

// ParseExpr parses a single expression (useful for testing).
func ParseExpr(src string) (expr ast.Expr, err error) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(*ParseError)
			if !ok {
				panic(r)
			}
			expr = nil
			err = pe
		}
	}()

	p := &Parser{lexer: lexer.New([]byte(src))}
	p.next()
	return p.parseExpr(0), nil
}

// -----------------------------------------------------------------------------
// Token handling
// -----------------------------------------------------------------------------

// next advances to the next token. An ILLEGAL token from the lexer becomes
// fatal here: its Value carries the lexical diagnostic.
func (p *Parser) next() {
	p.tok = p.lexer.Scan()
	if p.tok.Type == token.ILLEGAL {
		panic(errorf(p.tok.Pos, "%s", p.tok.Value))
	}
}

// expect checks that the current token is tok and advances past it.
func (p *Parser) expect(tok token.Token) {
	if p.tok.Type != tok {
		panic(expectedError(p.tok.Pos, tok.String(), p.tokenDesc()))
	}
	p.next()
}

// expectName expects a NAME token and returns its value and position.
func (p *Parser) expectName() (string, token.Position) {
	name := p.tok.Value
	pos := p.tok.Pos
	p.expect(token.NAME)
	return name, pos
}

// tokenDesc returns a description of the current token for error messages.
func (p *Parser) tokenDesc() string {
	switch p.tok.Type {
	case token.NAME, token.NUMBER, token.BOOL:
		return p.tok.Value
	case token.STRING:
		return "\"" + p.tok.Value + "\""
	case token.EOF:
		return "end of file"
	default:
		return p.tok.Type.String()
	}
}

// -----------------------------------------------------------------------------
// Statement parsing
// -----------------------------------------------------------------------------

// parseProgram parses the ordered top-level statements.
func (p *Parser) parseProgram() *ast.Program {
	prog := &ast.Program{}
	for p.tok.Type != token.EOF {
		prog.Stmts = append(prog.Stmts, p.parseStmt())
	}
	return prog
}

// parseStmt dispatches on the leading token of a statement.
func (p *Parser) parseStmt() ast.Stmt {
	switch p.tok.Type {
	case token.LOCAL:
		return p.parseLocal()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FUNCTION:
		return p.parseFunction()
	case token.CLASS:
		return p.parseClass()
	case token.RETURN:
		return p.parseReturn()
	case token.THROW:
		return p.parseThrow()
	case token.TRY:
		return p.parseTry()
	case token.NAME:
		return p.parsePathStmt()
	default:
		panic(errorf(p.tok.Pos, "unexpected %s at start of statement", p.tokenDesc()))
	}
}

// parseLocal parses: local name [= expr] ;
func (p *Parser) parseLocal() ast.Stmt {
	pos := p.tok.Pos
	p.expect(token.LOCAL)
	name, _ := p.expectName()

	var init ast.Expr
	if p.tok.Type == token.ASSIGN {
		p.next()
		init = p.parseExpr(0)
	}
	p.expect(token.SEMICOLON)

	return &ast.LocalStmt{
		BaseStmt: ast.BaseStmt{StartPos: pos},
		Name:     name,
		Init:     init,
	}
}

// parseIf parses: if expr block [else block]
func (p *Parser) parseIf() ast.Stmt {
	pos := p.tok.Pos
	p.expect(token.IF)
	cond := p.parseExpr(0)
	then := p.parseBlock()

	var els *ast.BlockStmt
	if p.tok.Type == token.ELSE {
		p.next()
		els = p.parseBlock()
	}

	return &ast.IfStmt{
		BaseStmt: ast.BaseStmt{StartPos: pos},
		Cond:     cond,
		Then:     then,
		Else:     els,
	}
}

// parseWhile parses: while expr [do] block
// The optional "do" keyword is discarded.
func (p *Parser) parseWhile() ast.Stmt {
	pos := p.tok.Pos
	p.expect(token.WHILE)
	cond := p.parseExpr(0)
	if p.tok.Type == token.DO {
		p.next()
	}
	body := p.parseBlock()

	return &ast.WhileStmt{
		BaseStmt: ast.BaseStmt{StartPos: pos},
		Cond:     cond,
		Body:     body,
	}
}

// parseFunction parses: function name ( [name {, name}] ) block
func (p *Parser) parseFunction() ast.Stmt {
	pos := p.tok.Pos
	p.expect(token.FUNCTION)
	name, _ := p.expectName()

	p.expect(token.LPAREN)
	var params []string
	for p.tok.Type != token.RPAREN {
		if len(params) > 0 {
			p.expect(token.COMMA)
		}
		param, _ := p.expectName()
		params = append(params, param)
	}
	p.expect(token.RPAREN)

	body := p.parseBlock()

	return &ast.FuncDecl{
		BaseStmt: ast.BaseStmt{StartPos: pos},
		Name:     name,
		Params:   params,
		Body:     body,
	}
}

// parseClass parses: class name [extends name] block
func (p *Parser) parseClass() ast.Stmt {
	pos := p.tok.Pos
	p.expect(token.CLASS)
	name, _ := p.expectName()

	var parent string
	if p.tok.Type == token.EXTENDS {
		p.next()
		parent, _ = p.expectName()
	}

	body := p.parseBlock()

	return &ast.ClassDecl{
		BaseStmt: ast.BaseStmt{StartPos: pos},
		Name:     name,
		Parent:   parent,
		Body:     body,
	}
}

// parseReturn parses: return [expr] ;
func (p *Parser) parseReturn() ast.Stmt {
	pos := p.tok.Pos
	p.expect(token.RETURN)

	var value ast.Expr
	if p.tok.Type != token.SEMICOLON {
		value = p.parseExpr(0)
	}
	p.expect(token.SEMICOLON)

	return &ast.ReturnStmt{
		BaseStmt: ast.BaseStmt{StartPos: pos},
		Value:    value,
	}
}

// parseThrow parses: throw expr ;
func (p *Parser) parseThrow() ast.Stmt {
	pos := p.tok.Pos
	p.expect(token.THROW)
	value := p.parseExpr(0)
	p.expect(token.SEMICOLON)

	return &ast.ThrowStmt{
		BaseStmt: ast.BaseStmt{StartPos: pos},
		Value:    value,
	}
}

// parseTry parses: try block catch [( name )] block [finally block]
func (p *Parser) parseTry() ast.Stmt {
	pos := p.tok.Pos
	p.expect(token.TRY)
	try := p.parseBlock()

	p.expect(token.CATCH)
	var errName string
	if p.tok.Type == token.LPAREN {
		p.next()
		errName, _ = p.expectName()
		p.expect(token.RPAREN)
	}
	catch := p.parseBlock()

	var finally *ast.BlockStmt
	if p.tok.Type == token.FINALLY {
		p.next()
		finally = p.parseBlock()
	}

	return &ast.TryStmt{
		BaseStmt: ast.BaseStmt{StartPos: pos},
		Try:      try,
		ErrName:  errName,
		Catch:    catch,
		Finally:  finally,
	}
}

// parsePathStmt parses a statement that starts with an access path and
// disambiguates by one token of lookahead: "=" means assignment, "(" means
// call, anything else is a syntax error naming the path.
func (p *Parser) parsePathStmt() ast.Stmt {
	pos := p.tok.Pos
	path := p.parsePath()

	switch p.tok.Type {
	case token.ASSIGN:
		p.next()
		value := p.parseExpr(0)
		p.expect(token.SEMICOLON)
		return &ast.AssignStmt{
			BaseStmt: ast.BaseStmt{StartPos: pos},
			Target:   path,
			Value:    value,
		}

	case token.LPAREN:
		p.next()
		var args []ast.Expr
		for p.tok.Type != token.RPAREN {
			if len(args) > 0 {
				p.expect(token.COMMA)
			}
			args = append(args, p.parseExpr(0))
		}
		p.expect(token.RPAREN)
		p.expect(token.SEMICOLON)
		return &ast.CallStmt{
			BaseStmt: ast.BaseStmt{StartPos: pos},
			Path:     path,
			Args:     args,
		}

	default:
		panic(errorf(p.tok.Pos, "unexpected %s after %s", p.tokenDesc(), ast.PathString(path)))
	}
}

// parsePath parses one or more identifiers joined by dots.
// Engine property names are valid path segments.
func (p *Parser) parsePath() []string {
	name, _ := p.expectName()
	path := []string{name}
	for p.tok.Type == token.DOT {
		p.next()
		if p.tok.Type != token.NAME && !p.tok.Type.IsProperty() {
			panic(expectedError(p.tok.Pos, "name", p.tokenDesc()))
		}
		path = append(path, p.tok.Value)
		p.next()
	}
	return path
}

// parseBlock parses: { stmt* }
// Reaching end of input before "}" is a syntax error.
func (p *Parser) parseBlock() *ast.BlockStmt {
	pos := p.tok.Pos
	p.expect(token.LBRACE)

	var stmts []ast.Stmt
	for p.tok.Type != token.RBRACE {
		if p.tok.Type == token.EOF {
			panic(expectedError(p.tok.Pos, token.RBRACE.String(), "end of file"))
		}
		stmts = append(stmts, p.parseStmt())
	}
	p.expect(token.RBRACE)

	return &ast.BlockStmt{
		BaseStmt: ast.BaseStmt{StartPos: pos},
		Stmts:    stmts,
	}
}

// -----------------------------------------------------------------------------
// Expression parsing
// -----------------------------------------------------------------------------

// parseExpr parses an expression by precedence climbing: starting from a
// primary, it consumes binary operators whose precedence strictly exceeds
// minPrec, recursing with that operator's precedence as the new floor.
// The strictly-greater comparison gives left associativity at equal
// precedence.
func (p *Parser) parseExpr(minPrec int) ast.Expr {
	left := p.parsePrimary()

	for {
		prec := binaryPrec[p.tok.Type]
		if prec <= minPrec {
			return left
		}
		op := p.tok.Type
		p.next()
		right := p.parseExpr(prec)
		left = &ast.BinaryExpr{
			BaseExpr: ast.BaseExpr{StartPos: left.Pos()},
			Left:     left,
			Op:       op,
			Right:    right,
		}
	}
}

// parsePrimary parses a parenthesized expression, a literal, or a bare
// identifier.
func (p *Parser) parsePrimary() ast.Expr {
	pos := p.tok.Pos

	switch p.tok.Type {
	case token.LPAREN:
		p.next()
		expr := p.parseExpr(0) // Parentheses reset the precedence floor
		p.expect(token.RPAREN)
		return expr

	case token.NUMBER:
		return p.literal(pos, ast.LitNumber)
	case token.STRING:
		return p.literal(pos, ast.LitText)
	case token.BOOL:
		return p.literal(pos, ast.LitBool)
	case token.NAME:
		return p.literal(pos, ast.LitIdent)

	default:
		panic(errorf(pos, "expected expression, got %s", p.tokenDesc()))
	}
}

func (p *Parser) literal(pos token.Position, kind ast.LiteralKind) *ast.Literal {
	text := p.tok.Value
	p.next()
	return &ast.Literal{
		BaseExpr: ast.BaseExpr{StartPos: pos},
		Kind:     kind,
		Text:     text,
	}
}
