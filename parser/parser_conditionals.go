/*
File    : monkey-lang/parser/parser_conditionals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/monkey-lang/ast"
	"github.com/akashmaji946/monkey-lang/lexer"
)

// parseIfExpression parses "if (<cond>) { <consequence> } [else { <alternative> }]".
// There is no else-if chaining sugar — an else-if is just an else block
// whose single statement is another if expression.
func (p *Parser) parseIfExpression() ast.Expression {
	expr := &ast.IfExpression{Token: p.CurrToken}

	if !p.expectAdvance(lexer.LPAREN) {
		return nil
	}

	p.advance()
	expr.Condition = p.parseExpression(LOWEST_PRIORITY)

	if !p.expectAdvance(lexer.RPAREN) {
		return nil
	}
	if !p.expectAdvance(lexer.LBRACE) {
		return nil
	}

	expr.Consequence = p.parseBlockStatement()

	if p.nextIs(lexer.ELSE) {
		p.advance()
		if !p.expectAdvance(lexer.LBRACE) {
			return nil
		}
		expr.Alternative = p.parseBlockStatement()
	}

	return expr
}
