package parser

import (
	"github.com/ferrite-lang/ferrite/internal/ast"
	"github.com/ferrite-lang/ferrite/internal/diagnostics"
	"github.com/ferrite-lang/ferrite/internal/token"
)

const (
	_ int = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // < > <= >=
	SUM         // + -
	PRODUCT     // * / %
	PREFIX      // -x !x &x
	CALL        // f(x) recv.m(x)
)

var precedences = map[token.TokenType]int{
	token.EQ:      EQUALS,
	token.NOT_EQ:  EQUALS,
	token.LT:      LESSGREATER,
	token.GT:      LESSGREATER,
	token.LT_EQ:   LESSGREATER,
	token.GT_EQ:   LESSGREATER,
	token.PLUS:    SUM,
	token.MINUS:   SUM,
	token.STAR:    PRODUCT,
	token.SLASH:   PRODUCT,
	token.PERCENT: PRODUCT,
	token.LPAREN:  CALL,
	token.DOT:     CALL,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser is a Pratt parser over a pre-lexed token stream. It is
// deliberately error-tolerant: signature help has to work while the user
// is mid-edit, so unterminated argument and generic-argument lists are
// kept in the tree with their open span recorded instead of being
// discarded.
type Parser struct {
	tokens []token.Token // always ends with EOF
	pos    int

	curToken  token.Token
	peekToken token.Token

	errors []*diagnostics.DiagnosticError

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

func New(tokens []token.Token) *Parser {
	if len(tokens) == 0 {
		tokens = []token.Token{{Type: token.EOF}}
	}
	p := &Parser{tokens: tokens}

	p.prefixParseFns = map[token.TokenType]prefixParseFn{
		token.IDENT:  p.parseIdentifierLike,
		token.SELF:   p.parseSelfExpression,
		token.INT:    p.parseIntegerLiteral,
		token.FLOAT:  p.parseFloatLiteral,
		token.STRING: p.parseStringLiteral,
		token.TRUE:   p.parseBooleanLiteral,
		token.FALSE:  p.parseBooleanLiteral,
		token.LPAREN: p.parseParenOrTuple,
		token.AMP:    p.parseRefExpression,
		token.MINUS:  p.parsePrefixExpression,
		token.BANG:   p.parsePrefixExpression,
	}
	p.infixParseFns = map[token.TokenType]infixParseFn{
		token.PLUS:    p.parseInfixExpression,
		token.MINUS:   p.parseInfixExpression,
		token.STAR:    p.parseInfixExpression,
		token.SLASH:   p.parseInfixExpression,
		token.PERCENT: p.parseInfixExpression,
		token.EQ:      p.parseInfixExpression,
		token.NOT_EQ:  p.parseInfixExpression,
		token.LT:      p.parseInfixExpression,
		token.GT:      p.parseInfixExpression,
		token.LT_EQ:   p.parseInfixExpression,
		token.GT_EQ:   p.parseInfixExpression,
		token.LPAREN:  p.parseCallExpression,
		token.DOT:     p.parseMethodCallExpression,
	}

	p.curToken = p.tokens[0]
	p.peekToken = p.tokenAt(1)
	return p
}

func (p *Parser) Errors() []*diagnostics.DiagnosticError {
	return p.errors
}

func (p *Parser) tokenAt(i int) token.Token {
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[i]
}

func (p *Parser) nextToken() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	p.curToken = p.tokens[p.pos]
	p.peekToken = p.tokenAt(p.pos + 1)
}

// peekTokenAt looks n tokens ahead of the current one.
func (p *Parser) peekTokenAt(n int) token.Token {
	return p.tokenAt(p.pos + n)
}

func (p *Parser) curTokenIs(tt token.TokenType) bool  { return p.curToken.Type == tt }
func (p *Parser) peekTokenIs(tt token.TokenType) bool { return p.peekToken.Type == tt }

func (p *Parser) expectPeek(tt token.TokenType) bool {
	if p.peekTokenIs(tt) {
		p.nextToken()
		return true
	}
	p.errors = append(p.errors, diagnostics.NewError(
		diagnostics.ErrP001, p.peekToken,
		"expected %s, got %s", tt, p.peekToken.Type))
	return false
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// ParseProgram consumes the whole token stream. Statements that fail to
// parse are skipped after recording a diagnostic; parsing never aborts.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		p.nextToken()
	}
	return prog
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.errors = append(p.errors, diagnostics.NewError(
			diagnostics.ErrP001, p.curToken,
			"unexpected token %q in expression", p.curToken.Lexeme))
		return nil
	}
	left := prefix()

	for left != nil && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}
