package parser

import (
	"strconv"

	"github.com/ferrite-lang/ferrite/internal/ast"
	"github.com/ferrite-lang/ferrite/internal/token"
)

// parseIdentifierLike parses a bare identifier or, when followed by
// `::`, a whole path expression. Explicit generic arguments attach to
// the segment they follow: collections::Vec::<Int, Int>.
func (p *Parser) parseIdentifierLike() ast.Expression {
	first := p.curToken
	if !p.peekTokenIs(token.COLONCOLON) {
		return &ast.Identifier{Token: first, Name: first.Lexeme}
	}

	path := &ast.PathExpression{Token: first}
	path.Segments = append(path.Segments, &ast.PathSegment{
		Name: &ast.Identifier{Token: first, Name: first.Lexeme},
	})

	for p.peekTokenIs(token.COLONCOLON) {
		after := p.peekTokenAt(2)
		switch after.Type {
		case token.LT:
			p.nextToken() // ::
			open := p.curToken
			p.nextToken() // <
			seg := path.Segments[len(path.Segments)-1]
			seg.Generics = p.parseGenericArgList(open)
		case token.IDENT:
			p.nextToken() // ::
			p.nextToken() // segment name
			path.Segments = append(path.Segments, &ast.PathSegment{
				Name: &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme},
			})
		default:
			// `foo::` with nothing usable after it; keep what we have.
			return path
		}
	}
	return path
}

func (p *Parser) parseSelfExpression() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	val, _ := strconv.ParseInt(p.curToken.Lexeme, 10, 64)
	return &ast.IntegerLiteral{Token: p.curToken, Value: val}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	val, _ := strconv.ParseFloat(p.curToken.Lexeme, 64)
	return &ast.FloatLiteral{Token: p.curToken, Value: val}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	lex := p.curToken.Lexeme
	val := lex
	if len(val) >= 2 && val[0] == '"' && val[len(val)-1] == '"' {
		val = val[1 : len(val)-1]
	}
	return &ast.StringLiteral{Token: p.curToken, Value: val}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

// parseParenOrTuple handles (), (expr) and (a, b).
func (p *Parser) parseParenOrTuple() ast.Expression {
	lparen := p.curToken

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return &ast.TupleLiteral{Token: lparen, RParen: p.curToken}
	}

	p.nextToken()
	first := p.parseExpression(LOWEST)

	if p.peekTokenIs(token.COMMA) {
		tuple := &ast.TupleLiteral{Token: lparen}
		if first != nil {
			tuple.Elements = append(tuple.Elements, first)
		}
		for p.peekTokenIs(token.COMMA) {
			p.nextToken() // ,
			if p.peekTokenIs(token.RPAREN) {
				break
			}
			p.nextToken()
			el := p.parseExpression(LOWEST)
			if el == nil {
				break
			}
			tuple.Elements = append(tuple.Elements, el)
		}
		if p.peekTokenIs(token.RPAREN) {
			p.nextToken()
			tuple.RParen = p.curToken
		}
		return tuple
	}

	paren := &ast.ParenExpression{Token: lparen, Inner: first}
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		paren.RParen = p.curToken
	}
	return paren
}

func (p *Parser) parseRefExpression() ast.Expression {
	exp := &ast.RefExpression{Token: p.curToken}
	p.nextToken()
	exp.Value = p.parseExpression(PREFIX)
	return exp
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	exp := &ast.PrefixExpression{Token: p.curToken, Operator: p.curToken.Lexeme}
	p.nextToken()
	exp.Right = p.parseExpression(PREFIX)
	return exp
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	exp := &ast.InfixExpression{
		Token:    p.curToken,
		Left:     left,
		Operator: p.curToken.Lexeme,
	}
	prec := precedences[exp.Token.Type]
	p.nextToken()
	exp.Right = p.parseExpression(prec)
	return exp
}
