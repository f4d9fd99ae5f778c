/*
File    : monkey-lang/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a Pratt parser (top-down operator precedence
// parser) for Monkey source code. It turns a lexer.Lexer's token stream
// into an *ast.Program.
//
// The grammar is closed and small by design: let/return/expression
// statements; prefix and infix expressions; if/else; function literals and
// calls; array, hash, and index expressions. There are no loops, no
// user-defined types, and no compound assignment — see SPEC_FULL.md for
// the full rationale.
//
// The parser never panics on malformed input. Errors are collected on
// Errors and a program with any parser errors should not be evaluated.
package parser

import (
	"fmt"

	"github.com/akashmaji946/monkey-lang/ast"
	"github.com/akashmaji946/monkey-lang/lexer"
)

// prefixParseFn parses an expression that starts with the current token
// (literals, identifiers, unary operators, grouping, if, fn, [, {).
type prefixParseFn func() ast.Expression

// infixParseFn parses the continuation of an expression given the
// already-parsed left-hand side (binary operators, call, index).
type infixParseFn func(ast.Expression) ast.Expression

// Parser holds the two-token lookahead state used to drive Pratt parsing,
// plus the prefix/infix dispatch tables that make the grammar extensible
// per token type instead of one giant switch.
type Parser struct {
	lex lexer.Lexer

	CurrToken lexer.Token
	NextToken lexer.Token

	Errors []string

	prefixFns map[lexer.TokenType]prefixParseFn
	infixFns  map[lexer.TokenType]infixParseFn
}

// NewParser creates a Parser over src and primes the two-token lookahead.
func NewParser(src string) *Parser {
	p := &Parser{
		lex:    lexer.NewLexer(src),
		Errors: make([]string, 0),
	}

	p.prefixFns = make(map[lexer.TokenType]prefixParseFn)
	p.infixFns = make(map[lexer.TokenType]infixParseFn)

	p.registerPrefix(lexer.IDENT, p.parseIdentifier)
	p.registerPrefix(lexer.INT, p.parseIntegerLiteral)
	p.registerPrefix(lexer.STRING, p.parseStringLiteral)
	p.registerPrefix(lexer.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(lexer.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(lexer.BANG, p.parsePrefixExpression)
	p.registerPrefix(lexer.MINUS, p.parsePrefixExpression)
	p.registerPrefix(lexer.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(lexer.IF, p.parseIfExpression)
	p.registerPrefix(lexer.FUNCTION, p.parseFunctionLiteral)
	p.registerPrefix(lexer.LBRACKET, p.parseArrayLiteral)
	p.registerPrefix(lexer.LBRACE, p.parseHashLiteral)

	p.registerInfix(lexer.PLUS, p.parseInfixExpression)
	p.registerInfix(lexer.MINUS, p.parseInfixExpression)
	p.registerInfix(lexer.SLASH, p.parseInfixExpression)
	p.registerInfix(lexer.ASTERISK, p.parseInfixExpression)
	p.registerInfix(lexer.EQ, p.parseInfixExpression)
	p.registerInfix(lexer.NEQ, p.parseInfixExpression)
	p.registerInfix(lexer.LT, p.parseInfixExpression)
	p.registerInfix(lexer.GT, p.parseInfixExpression)
	p.registerInfix(lexer.LPAREN, p.parseCallExpression)
	p.registerInfix(lexer.LBRACKET, p.parseIndexExpression)

	// Prime CurrToken/NextToken.
	p.advance()
	p.advance()

	return p
}

func (p *Parser) registerPrefix(tt lexer.TokenType, fn prefixParseFn) {
	p.prefixFns[tt] = fn
}

func (p *Parser) registerInfix(tt lexer.TokenType, fn infixParseFn) {
	p.infixFns[tt] = fn
}

// advance moves the lookahead window forward by one token.
func (p *Parser) advance() {
	p.CurrToken = p.NextToken
	p.NextToken = p.lex.NextToken()
}

// currIs reports whether the current token has type tt.
func (p *Parser) currIs(tt lexer.TokenType) bool {
	return p.CurrToken.Type == tt
}

// nextIs reports whether the lookahead token has type tt.
func (p *Parser) nextIs(tt lexer.TokenType) bool {
	return p.NextToken.Type == tt
}

// expectAdvance checks the lookahead token against tt; on a match it
// advances and returns true, otherwise it records an error and returns
// false without moving the cursor.
func (p *Parser) expectAdvance(tt lexer.TokenType) bool {
	if p.nextIs(tt) {
		p.advance()
		return true
	}
	p.peekError(tt)
	return false
}

func (p *Parser) peekError(want lexer.TokenType) {
	msg := fmt.Sprintf("line %d: expected next token to be %s, got %s instead",
		p.NextToken.Line, want, p.NextToken.Type)
	p.Errors = append(p.Errors, msg)
}

func (p *Parser) noPrefixParseFnError(tt lexer.TokenType) {
	msg := fmt.Sprintf("line %d: no prefix parse function for %s found", p.CurrToken.Line, tt)
	p.Errors = append(p.Errors, msg)
}

// HasErrors reports whether any parser errors were recorded.
func (p *Parser) HasErrors() bool {
	return len(p.Errors) > 0
}

// ParseProgram repeatedly parses statements until EOF, building the
// top-level *ast.Program.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{Statements: make([]ast.Statement, 0)}

	for !p.currIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.advance()
	}

	return program
}
