/*
File    : monkey-lang/parser/parser_precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/monkey-lang/lexer"

// Operator precedence levels, lowest to highest. Higher binds tighter.
//
// "a + b * c" parses as "a + (b * c)" because PRODUCT > SUM; "-a * b"
// parses as "(-a) * b" because PREFIX > PRODUCT.
const (
	LOWEST_PRIORITY      = iota + 1
	EQUALS_PRIORITY      // == !=
	LESSGREATER_PRIORITY // < >
	SUM_PRIORITY         // + -
	PRODUCT_PRIORITY     // * /
	PREFIX_PRIORITY      // -x !x
	CALL_PRIORITY        // fn(x)
	INDEX_PRIORITY       // arr[x]
)

// precedences maps each infix-capable token to its binding power.
var precedences = map[lexer.TokenType]int{
	lexer.EQ:       EQUALS_PRIORITY,
	lexer.NEQ:      EQUALS_PRIORITY,
	lexer.LT:       LESSGREATER_PRIORITY,
	lexer.GT:       LESSGREATER_PRIORITY,
	lexer.PLUS:     SUM_PRIORITY,
	lexer.MINUS:    SUM_PRIORITY,
	lexer.SLASH:    PRODUCT_PRIORITY,
	lexer.ASTERISK: PRODUCT_PRIORITY,
	lexer.LPAREN:   CALL_PRIORITY,
	lexer.LBRACKET: INDEX_PRIORITY,
}

// currPrecedence returns the binding power of the current token, or
// LOWEST_PRIORITY if it is not an infix operator.
func (p *Parser) currPrecedence() int {
	if prec, ok := precedences[p.CurrToken.Type]; ok {
		return prec
	}
	return LOWEST_PRIORITY
}

// nextPrecedence returns the binding power of the lookahead token, or
// LOWEST_PRIORITY if it is not an infix operator.
func (p *Parser) nextPrecedence() int {
	if prec, ok := precedences[p.NextToken.Type]; ok {
		return prec
	}
	return LOWEST_PRIORITY
}
