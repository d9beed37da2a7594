package parser

import (
	"github.com/ferrite-lang/ferrite/internal/ast"
	"github.com/ferrite-lang/ferrite/internal/diagnostics"
	"github.com/ferrite-lang/ferrite/internal/token"
)

func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	exp := &ast.CallExpression{Token: p.curToken, Function: function}
	exp.Args = p.parseArgList()
	return exp
}

// parseMethodCallExpression parses recv.name, recv.name::<T>() and
// recv.name(args). A bare recv.name keeps Args nil: the user has not
// typed an argument list yet and downstream queries care about the
// difference between "absent" and "empty".
func (p *Parser) parseMethodCallExpression(receiver ast.Expression) ast.Expression {
	exp := &ast.MethodCallExpression{Token: p.curToken, Receiver: receiver}

	if !p.expectPeek(token.IDENT) {
		return exp
	}
	exp.Name = &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}

	if p.peekTokenIs(token.COLONCOLON) && p.peekTokenAt(2).Type == token.LT {
		p.nextToken() // ::
		open := p.curToken
		p.nextToken() // <
		exp.Generics = p.parseGenericArgList(open)
	}

	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		exp.Args = p.parseArgList()
	}
	return exp
}

// parseArgList parses a parenthesized argument list starting at the
// current '(' token. On a missing ')' the list is left unterminated with
// EndOff at the token that stopped it, so the open span still covers a
// cursor past the last argument.
func (p *Parser) parseArgList() *ast.ArgList {
	al := &ast.ArgList{LParen: p.curToken}

	for {
		if p.peekTokenIs(token.RPAREN) {
			p.nextToken()
			al.RParen = p.curToken
			al.Terminated = true
			return al
		}
		if p.peekTokenIs(token.EOF) || p.peekTokenIs(token.RBRACE) || p.peekTokenIs(token.SEMICOLON) {
			al.EndOff = p.peekToken.Offset
			p.errors = append(p.errors, diagnostics.NewError(
				diagnostics.ErrP002, al.LParen, "unterminated argument list"))
			return al
		}

		p.nextToken()
		arg := p.parseExpression(LOWEST)
		if arg != nil {
			al.Args = append(al.Args, arg)
		}

		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		if p.peekTokenIs(token.RPAREN) {
			p.nextToken()
			al.RParen = p.curToken
			al.Terminated = true
			return al
		}
		al.EndOff = p.peekToken.Offset
		p.errors = append(p.errors, diagnostics.NewError(
			diagnostics.ErrP002, al.LParen, "unterminated argument list"))
		return al
	}
}

// parseGenericArgList parses <T, U> starting at the current '<' token.
// open is the token the list begins at in the source: the '::' for
// expression position, the '<' itself for type position.
func (p *Parser) parseGenericArgList(open token.Token) *ast.GenericArgList {
	gl := &ast.GenericArgList{Token: open, Lt: p.curToken}

	for {
		if p.peekTokenIs(token.GT) {
			p.nextToken()
			gl.Gt = p.curToken
			gl.Terminated = true
			return gl
		}
		if p.peekTokenIs(token.EOF) || p.peekTokenIs(token.RBRACE) || p.peekTokenIs(token.SEMICOLON) || p.peekTokenIs(token.RPAREN) {
			gl.EndOff = p.peekToken.Offset
			p.errors = append(p.errors, diagnostics.NewError(
				diagnostics.ErrP002, gl.Lt, "unterminated generic argument list"))
			return gl
		}

		p.nextToken()
		arg := p.parseType()
		if arg != nil {
			gl.Args = append(gl.Args, arg)
		}

		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		if p.peekTokenIs(token.GT) {
			p.nextToken()
			gl.Gt = p.curToken
			gl.Terminated = true
			return gl
		}
		gl.EndOff = p.peekToken.Offset
		p.errors = append(p.errors, diagnostics.NewError(
			diagnostics.ErrP002, gl.Lt, "unterminated generic argument list"))
		return gl
	}
}
