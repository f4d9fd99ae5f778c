/*
File    : monkey-lang/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/monkey-lang/ast"
	"github.com/akashmaji946/monkey-lang/lexer"
)

// parseStatement dispatches on the current token's statement-starting
// keyword, falling back to ExpressionStatement for everything else.
func (p *Parser) parseStatement() ast.Statement {
	switch p.CurrToken.Type {
	case lexer.LET:
		return p.parseLetStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseLetStatement parses "let <ident> = <expr>;". A historical bug in
// the reference book's first edition let the value expression go
// unparsed; this parser always consumes it.
func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: p.CurrToken}

	if !p.expectAdvance(lexer.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.CurrToken, Value: p.CurrToken.Literal}

	if !p.expectAdvance(lexer.ASSIGN) {
		return nil
	}

	p.advance()
	stmt.Value = p.parseExpression(LOWEST_PRIORITY)

	if fl, ok := stmt.Value.(*ast.FunctionLiteral); ok {
		fl.Name = stmt.Name.Value
	}

	if p.nextIs(lexer.SEMICOLON) {
		p.advance()
	}

	return stmt
}

// parseReturnStatement parses "return <expr>;".
func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.CurrToken}

	p.advance()
	stmt.ReturnValue = p.parseExpression(LOWEST_PRIORITY)

	if p.nextIs(lexer.SEMICOLON) {
		p.advance()
	}

	return stmt
}

// parseExpressionStatement parses a bare expression followed by an
// optional trailing semicolon — the form used for both side-effecting
// calls like puts(x) and REPL-evaluated expressions like x + 1.
func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.CurrToken}

	stmt.Expression = p.parseExpression(LOWEST_PRIORITY)

	if p.nextIs(lexer.SEMICOLON) {
		p.advance()
	}

	return stmt
}

// parseBlockStatement parses a brace-delimited statement sequence,
// assuming CurrToken is the opening '{'.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.CurrToken, Statements: make([]ast.Statement, 0)}

	p.advance()

	for !p.currIs(lexer.RBRACE) && !p.currIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.advance()
	}

	return block
}
