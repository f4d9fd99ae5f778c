/*
File    : monkey-lang/parser/parser_functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/monkey-lang/ast"
	"github.com/akashmaji946/monkey-lang/lexer"
)

// parseFunctionLiteral parses "fn(<params>) { <body> }". The Name field is
// left blank here and filled in by parseLetStatement when the literal is
// the right-hand side of a let binding, purely so FunctionLiteral.String
// can show the bound name — it has no effect on evaluation.
func (p *Parser) parseFunctionLiteral() ast.Expression {
	lit := &ast.FunctionLiteral{Token: p.CurrToken}

	if !p.expectAdvance(lexer.LPAREN) {
		return nil
	}
	lit.Parameters = p.parseFunctionParameters()

	if !p.expectAdvance(lexer.LBRACE) {
		return nil
	}
	lit.Body = p.parseBlockStatement()

	return lit
}

func (p *Parser) parseFunctionParameters() []*ast.Identifier {
	params := make([]*ast.Identifier, 0)

	if p.nextIs(lexer.RPAREN) {
		p.advance()
		return params
	}

	p.advance()
	params = append(params, &ast.Identifier{Token: p.CurrToken, Value: p.CurrToken.Literal})

	for p.nextIs(lexer.COMMA) {
		p.advance()
		p.advance()
		params = append(params, &ast.Identifier{Token: p.CurrToken, Value: p.CurrToken.Literal})
	}

	if !p.expectAdvance(lexer.RPAREN) {
		return nil
	}

	return params
}

// parseCallExpression parses "<function>(<args>)" as an infix on
// whatever expression denotes the callee — an identifier, or an
// immediately-invoked function literal.
func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	expr := &ast.CallExpression{Token: p.CurrToken, Function: function}
	expr.Arguments = p.parseExpressionList(lexer.RPAREN)
	return expr
}

// parseExpressionList parses a comma-separated list of expressions up to
// and including the closing token end, used for both call arguments and
// array literal elements.
func (p *Parser) parseExpressionList(end lexer.TokenType) []ast.Expression {
	list := make([]ast.Expression, 0)

	if p.nextIs(end) {
		p.advance()
		return list
	}

	p.advance()
	list = append(list, p.parseExpression(LOWEST_PRIORITY))

	for p.nextIs(lexer.COMMA) {
		p.advance()
		p.advance()
		list = append(list, p.parseExpression(LOWEST_PRIORITY))
	}

	if !p.expectAdvance(end) {
		return nil
	}

	return list
}
