package parser

import (
	"github.com/ferrite-lang/ferrite/internal/ast"
	"github.com/ferrite-lang/ferrite/internal/diagnostics"
	"github.com/ferrite-lang/ferrite/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.LET:
		return p.parseLetStatement()
	case token.FN:
		return p.parseFnDecl()
	case token.MOD:
		return p.parseModDecl()
	case token.STRUCT:
		return p.parseStructDecl()
	case token.ENUM:
		return p.parseEnumDecl()
	case token.TRAIT:
		return p.parseTraitDecl()
	case token.IMPL:
		return p.parseImplDecl()
	case token.TYPE:
		return p.parseTypeAliasDecl()
	case token.CONST:
		return p.parseConstDecl()
	case token.STATIC:
		return p.parseStaticDecl()
	case token.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(LOWEST)
	if stmt.Expression == nil {
		return nil
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: p.curToken}
	p.nextToken()
	stmt.Pattern = p.parsePattern()
	if stmt.Pattern == nil {
		return nil
	}
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		stmt.Type = p.parseType()
	}
	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		stmt.Value = p.parseExpression(LOWEST)
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	stmt.EndOff = p.curToken.End()
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}
	if !p.peekTokenIs(token.SEMICOLON) && !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		stmt.Value = p.parseExpression(LOWEST)
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	stmt.EndOff = p.curToken.End()
	return stmt
}

// parseGenericParams parses an optional <T, U> declaration list.
func (p *Parser) parseGenericParams() *ast.GenericParamList {
	if !p.peekTokenIs(token.LT) {
		return nil
	}
	p.nextToken()
	gp := &ast.GenericParamList{Lt: p.curToken}
	for p.peekTokenIs(token.IDENT) {
		p.nextToken()
		gp.Params = append(gp.Params, &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme})
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	if p.peekTokenIs(token.GT) {
		p.nextToken()
		gp.Gt = p.curToken
	}
	return gp
}

func (p *Parser) parseFnDecl() *ast.FnDecl {
	fd := &ast.FnDecl{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	fd.Name = &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}
	fd.Generics = p.parseGenericParams()

	if !p.expectPeek(token.LPAREN) {
		return fd
	}
	fd.Params, fd.RParen = p.parseFnParams()

	if p.peekTokenIs(token.ARROW) {
		p.nextToken()
		p.nextToken()
		fd.ReturnType = p.parseType()
	}
	if p.peekTokenIs(token.LBRACE) {
		p.nextToken()
		fd.Body = p.parseBlockStatement()
	} else if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return fd
}

// parseFnParams parses the parameter list starting after the '(' token.
// A leading `self` or `&self` becomes a receiver parameter.
func (p *Parser) parseFnParams() ([]*ast.Param, token.Token) {
	var params []*ast.Param
	for {
		if p.peekTokenIs(token.RPAREN) {
			p.nextToken()
			return params, p.curToken
		}
		if p.peekTokenIs(token.EOF) || p.peekTokenIs(token.LBRACE) {
			p.errors = append(p.errors, diagnostics.NewError(
				diagnostics.ErrP002, p.curToken, "unterminated parameter list"))
			return params, token.Token{}
		}

		p.nextToken()
		switch {
		case p.curTokenIs(token.SELF):
			params = append(params, &ast.Param{SelfToken: p.curToken, IsSelf: true})
		case p.curTokenIs(token.AMP) && p.peekTokenIs(token.SELF):
			p.nextToken()
			params = append(params, &ast.Param{SelfToken: p.curToken, IsSelf: true})
		default:
			pat := p.parsePattern()
			if pat == nil {
				return params, token.Token{}
			}
			param := &ast.Param{Pattern: pat}
			if p.peekTokenIs(token.COLON) {
				p.nextToken()
				p.nextToken()
				param.Type = p.parseType()
			} else {
				p.errors = append(p.errors, diagnostics.NewError(
					diagnostics.ErrP005, p.curToken, "parameter %q is missing a type", pat.TokenLiteral()))
			}
			params = append(params, param)
		}

		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken}
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	if p.curTokenIs(token.RBRACE) {
		block.RBrace = p.curToken
	}
	return block
}

func (p *Parser) parseModDecl() ast.Statement {
	md := &ast.ModDecl{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	md.Name = &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}
	if !p.expectPeek(token.LBRACE) {
		return md
	}
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			md.Items = append(md.Items, stmt)
		}
		p.nextToken()
	}
	if p.curTokenIs(token.RBRACE) {
		md.RBrace = p.curToken
	}
	return md
}

func (p *Parser) parseStructDecl() ast.Statement {
	sd := &ast.StructDecl{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	sd.Name = &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}
	sd.Generics = p.parseGenericParams()

	if p.peekTokenIs(token.LBRACE) {
		p.nextToken()
		for !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
			if !p.expectPeek(token.IDENT) {
				break
			}
			field := &ast.FieldDef{Name: &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}}
			if p.expectPeek(token.COLON) {
				p.nextToken()
				field.Type = p.parseType()
			}
			if field.Type != nil {
				sd.Fields = append(sd.Fields, field)
			}
			if p.peekTokenIs(token.COMMA) {
				p.nextToken()
			}
		}
		if p.peekTokenIs(token.RBRACE) {
			p.nextToken()
		}
	} else if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	sd.EndOff = p.curToken.End()
	return sd
}

func (p *Parser) parseEnumDecl() ast.Statement {
	ed := &ast.EnumDecl{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	ed.Name = &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}
	ed.Generics = p.parseGenericParams()

	if !p.expectPeek(token.LBRACE) {
		ed.EndOff = p.curToken.End()
		return ed
	}
	for !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		if !p.expectPeek(token.IDENT) {
			break
		}
		variant := &ast.VariantDef{Name: &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}}
		variant.EndOff = p.curToken.End()
		if p.peekTokenIs(token.LPAREN) {
			p.nextToken()
			for !p.peekTokenIs(token.RPAREN) && !p.peekTokenIs(token.EOF) {
				p.nextToken()
				t := p.parseType()
				if t == nil {
					break
				}
				variant.Params = append(variant.Params, t)
				if p.peekTokenIs(token.COMMA) {
					p.nextToken()
				}
			}
			if p.peekTokenIs(token.RPAREN) {
				p.nextToken()
				variant.EndOff = p.curToken.End()
			}
		}
		ed.Variants = append(ed.Variants, variant)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	if p.peekTokenIs(token.RBRACE) {
		p.nextToken()
	}
	ed.EndOff = p.curToken.End()
	return ed
}

func (p *Parser) parseTraitDecl() ast.Statement {
	td := &ast.TraitDecl{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	td.Name = &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}
	td.Generics = p.parseGenericParams()

	if !p.expectPeek(token.LBRACE) {
		td.EndOff = p.curToken.End()
		return td
	}
	for p.peekTokenIs(token.FN) {
		p.nextToken()
		m := p.parseFnDecl()
		if m != nil {
			td.Methods = append(td.Methods, m)
		}
	}
	if p.peekTokenIs(token.RBRACE) {
		p.nextToken()
	}
	td.EndOff = p.curToken.End()
	return td
}

func (p *Parser) parseTypeAliasDecl() ast.Statement {
	ta := &ast.TypeAliasDecl{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	ta.Name = &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}
	ta.Generics = p.parseGenericParams()
	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		ta.Target = p.parseType()
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	ta.EndOff = p.curToken.End()
	return ta
}

func (p *Parser) parseConstDecl() ast.Statement {
	cd := &ast.ConstDecl{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	cd.Name = &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		cd.Type = p.parseType()
	}
	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		cd.Value = p.parseExpression(LOWEST)
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	cd.EndOff = p.curToken.End()
	return cd
}

func (p *Parser) parseStaticDecl() ast.Statement {
	sd := &ast.StaticDecl{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	sd.Name = &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		sd.Type = p.parseType()
	}
	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		sd.Value = p.parseExpression(LOWEST)
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	sd.EndOff = p.curToken.End()
	return sd
}

func (p *Parser) parseImplDecl() ast.Statement {
	id := &ast.ImplDecl{Token: p.curToken}
	p.parseGenericParams() // impl-level generics are accepted and discarded

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	first, ok := p.parseNamedType().(*ast.NamedType)
	if !ok {
		return nil
	}

	if p.peekTokenIs(token.FOR) {
		id.Trait = first
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return id
		}
		selfType, ok := p.parseNamedType().(*ast.NamedType)
		if !ok {
			return id
		}
		id.SelfType = selfType
	} else {
		id.SelfType = first
	}

	if !p.expectPeek(token.LBRACE) {
		return id
	}
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
			continue
		}
		var item ast.Statement
		switch p.curToken.Type {
		case token.FN:
			fn := p.parseFnDecl()
			if fn != nil {
				item = fn
			}
		case token.CONST:
			item = p.parseConstDecl()
		case token.TYPE:
			item = p.parseTypeAliasDecl()
		default:
			p.errors = append(p.errors, diagnostics.NewError(
				diagnostics.ErrP001, p.curToken,
				"unexpected %q in impl block", p.curToken.Lexeme))
		}
		if item != nil {
			id.Items = append(id.Items, item)
		}
		p.nextToken()
	}
	if p.curTokenIs(token.RBRACE) {
		id.RBrace = p.curToken
	}
	return id
}
