/*
File    : monkey-lang/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/monkey-lang/ast"
	"github.com/akashmaji946/monkey-lang/lexer"
)

// parseExpression is the heart of the Pratt parser: it parses a prefix
// expression for the current token, then repeatedly extends it with infix
// expressions as long as the lookahead operator binds tighter than
// precedence.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixFns[p.CurrToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.CurrToken.Type)
		return nil
	}
	left := prefix()

	for !p.nextIs(lexer.SEMICOLON) && precedence < p.nextPrecedence() {
		infix := p.infixFns[p.NextToken.Type]
		if infix == nil {
			return left
		}
		p.advance()
		left = infix(left)
	}

	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.CurrToken, Value: p.CurrToken.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: p.CurrToken}

	value, err := strconv.ParseInt(p.CurrToken.Literal, 10, 64)
	if err != nil {
		p.Errors = append(p.Errors, "line "+itoa(p.CurrToken.Line)+": could not parse "+p.CurrToken.Literal+" as integer")
		return nil
	}
	lit.Value = value
	return lit
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.CurrToken, Value: p.CurrToken.Literal}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.CurrToken, Value: p.currIs(lexer.TRUE)}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.PrefixExpression{Token: p.CurrToken, Operator: p.CurrToken.Literal}
	p.advance()
	expr.Right = p.parseExpression(PREFIX_PRIORITY)
	return expr
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{Token: p.CurrToken, Operator: p.CurrToken.Literal, Left: left}
	precedence := p.currPrecedence()
	p.advance()
	expr.Right = p.parseExpression(precedence)
	return expr
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.advance()
	expr := p.parseExpression(LOWEST_PRIORITY)
	if !p.expectAdvance(lexer.RPAREN) {
		return nil
	}
	return expr
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
