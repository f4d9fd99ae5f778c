/*
File    : monkey-lang/parser/parser_collections.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/monkey-lang/ast"
	"github.com/akashmaji946/monkey-lang/lexer"
)

// parseArrayLiteral parses "[<elem>, <elem>, ...]".
func (p *Parser) parseArrayLiteral() ast.Expression {
	arr := &ast.ArrayLiteral{Token: p.CurrToken}
	arr.Elements = p.parseExpressionList(lexer.RBRACKET)
	return arr
}

// parseIndexExpression parses "<left>[<index>]" as an infix on the
// already-parsed left operand.
func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	expr := &ast.IndexExpression{Token: p.CurrToken, Left: left}

	p.advance()
	expr.Index = p.parseExpression(LOWEST_PRIORITY)

	if !p.expectAdvance(lexer.RBRACKET) {
		return nil
	}

	return expr
}

// parseHashLiteral parses "{<key>: <value>, ...}". Keys may be any
// expression; whether the evaluated key is actually Hashable is a runtime
// concern, not a parse-time one.
func (p *Parser) parseHashLiteral() ast.Expression {
	hash := &ast.HashLiteral{Token: p.CurrToken, Pairs: make([]ast.HashPair, 0)}

	for !p.nextIs(lexer.RBRACE) {
		p.advance()
		key := p.parseExpression(LOWEST_PRIORITY)

		if !p.expectAdvance(lexer.COLON) {
			return nil
		}

		p.advance()
		value := p.parseExpression(LOWEST_PRIORITY)

		hash.Pairs = append(hash.Pairs, ast.HashPair{Key: key, Value: value})

		if !p.nextIs(lexer.RBRACE) && !p.expectAdvance(lexer.COMMA) {
			return nil
		}
	}

	if !p.expectAdvance(lexer.RBRACE) {
		return nil
	}

	return hash
}
