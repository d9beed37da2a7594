package parser

import (
	"github.com/ferrite-lang/ferrite/internal/ast"
	"github.com/ferrite-lang/ferrite/internal/diagnostics"
	"github.com/ferrite-lang/ferrite/internal/token"
)

// parseType parses a type annotation starting at the current token and
// leaves the current token on the type's last token.
func (p *Parser) parseType() ast.Type {
	switch p.curToken.Type {
	case token.AMP:
		ref := &ast.RefType{Token: p.curToken}
		p.nextToken()
		ref.Elem = p.parseType()
		return ref
	case token.LPAREN:
		return p.parseTupleType()
	case token.IDENT:
		return p.parseNamedType()
	default:
		p.errors = append(p.errors, diagnostics.NewError(
			diagnostics.ErrP004, p.curToken,
			"expected type, got %q", p.curToken.Lexeme))
		return nil
	}
}

func (p *Parser) parseTupleType() ast.Type {
	tt := &ast.TupleType{Token: p.curToken}
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		tt.RParen = p.curToken
		return tt
	}
	for {
		p.nextToken()
		el := p.parseType()
		if el == nil {
			return tt
		}
		tt.Elems = append(tt.Elems, el)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		if p.peekTokenIs(token.RPAREN) {
			p.nextToken()
			tt.RParen = p.curToken
		}
		return tt
	}
}

// parseNamedType parses a (possibly qualified) named type with optional
// generic arguments: Int, geometry::Point, Vec<Int>, Map::<Int, Bool>.
func (p *Parser) parseNamedType() ast.Type {
	nt := &ast.NamedType{Token: p.curToken}
	nt.Path = append(nt.Path, &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme})

	for p.peekTokenIs(token.COLONCOLON) && p.peekTokenAt(2).Type == token.IDENT {
		p.nextToken() // ::
		p.nextToken() // segment
		nt.Path = append(nt.Path, &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme})
	}

	if p.peekTokenIs(token.LT) {
		p.nextToken()
		nt.Generics = p.parseGenericArgList(p.curToken)
	} else if p.peekTokenIs(token.COLONCOLON) && p.peekTokenAt(2).Type == token.LT {
		p.nextToken() // ::
		open := p.curToken
		p.nextToken() // <
		nt.Generics = p.parseGenericArgList(open)
	}
	return nt
}

// parsePattern parses a binding pattern starting at the current token.
func (p *Parser) parsePattern() ast.Pattern {
	switch p.curToken.Type {
	case token.IDENT:
		return &ast.IdentifierPattern{Token: p.curToken, Name: p.curToken.Lexeme}
	case token.UNDERSCORE:
		return &ast.WildcardPattern{Token: p.curToken}
	case token.LPAREN:
		tp := &ast.TuplePattern{Token: p.curToken}
		if p.peekTokenIs(token.RPAREN) {
			p.nextToken()
			tp.RParen = p.curToken
			return tp
		}
		for {
			p.nextToken()
			el := p.parsePattern()
			if el == nil {
				return tp
			}
			tp.Elements = append(tp.Elements, el)
			if p.peekTokenIs(token.COMMA) {
				p.nextToken()
				continue
			}
			if p.peekTokenIs(token.RPAREN) {
				p.nextToken()
				tp.RParen = p.curToken
			}
			return tp
		}
	default:
		p.errors = append(p.errors, diagnostics.NewError(
			diagnostics.ErrP003, p.curToken,
			"expected pattern, got %q", p.curToken.Lexeme))
		return nil
	}
}
