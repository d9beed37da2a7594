package ast

import (
	"github.com/ferrite-lang/ferrite/internal/token"
)

// Span is a half-open byte range [Start, End) in the source text.
type Span struct {
	Start int
	End   int
}

// Contains reports whether the byte offset lies inside the span.
func (s Span) Contains(offset int) bool {
	return s.Start <= offset && offset < s.End
}

// TokenProvider is an interface for any AST node that can provide its
// primary token. This is useful for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	Span() Span
}

// Statement is a Node that represents a statement or declaration.
type Statement interface {
	Node
	statementNode()
	GetToken() token.Token
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// Pattern is a Node that represents a binding pattern.
type Pattern interface {
	Node
	patternNode()
	GetToken() token.Token
}

// Type is a Node that represents a type annotation.
type Type interface {
	Node
	typeNode()
	GetToken() token.Token
}

func tokenSpan(t token.Token) Span {
	return Span{Start: t.Offset, End: t.End()}
}

// Program is the root node of every AST our parser produces.
type Program struct {
	File       string
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) Span() Span {
	if len(p.Statements) == 0 {
		return Span{}
	}
	return Span{
		Start: p.Statements[0].Span().Start,
		End:   p.Statements[len(p.Statements)-1].Span().End,
	}
}

// LetStatement binds a pattern to a value.
// let x = f(1) or let (a, b): (Int, Int) = pair()
type LetStatement struct {
	Token   token.Token // the 'let' token
	Pattern Pattern
	Type    Type // optional
	Value   Expression
	EndOff  int
}

func (ls *LetStatement) statementNode()        {}
func (ls *LetStatement) TokenLiteral() string  { return ls.Token.Lexeme }
func (ls *LetStatement) GetToken() token.Token { return ls.Token }
func (ls *LetStatement) Span() Span {
	return Span{Start: ls.Token.Offset, End: ls.EndOff}
}

// ExpressionStatement wraps an expression used in statement position.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (es *ExpressionStatement) statementNode()        {}
func (es *ExpressionStatement) TokenLiteral() string  { return es.Token.Lexeme }
func (es *ExpressionStatement) GetToken() token.Token { return es.Token }
func (es *ExpressionStatement) Span() Span {
	if es.Expression == nil {
		return tokenSpan(es.Token)
	}
	return es.Expression.Span()
}

// ReturnStatement returns a value from a function body.
type ReturnStatement struct {
	Token  token.Token
	Value  Expression // optional
	EndOff int
}

func (rs *ReturnStatement) statementNode()        {}
func (rs *ReturnStatement) TokenLiteral() string  { return rs.Token.Lexeme }
func (rs *ReturnStatement) GetToken() token.Token { return rs.Token }
func (rs *ReturnStatement) Span() Span {
	return Span{Start: rs.Token.Offset, End: rs.EndOff}
}

// BlockStatement is a brace-delimited statement list.
type BlockStatement struct {
	Token      token.Token // the '{' token
	Statements []Statement
	RBrace     token.Token
}

func (bs *BlockStatement) statementNode()        {}
func (bs *BlockStatement) TokenLiteral() string  { return bs.Token.Lexeme }
func (bs *BlockStatement) GetToken() token.Token { return bs.Token }
func (bs *BlockStatement) Span() Span {
	end := bs.RBrace.End()
	if bs.RBrace.Lexeme == "" {
		if len(bs.Statements) > 0 {
			end = bs.Statements[len(bs.Statements)-1].Span().End
		} else {
			end = bs.Token.End()
		}
	}
	return Span{Start: bs.Token.Offset, End: end}
}

// GenericParamList declares type parameters on a definition: <T, U>.
type GenericParamList struct {
	Lt     token.Token
	Params []*Identifier
	Gt     token.Token
}

func (g *GenericParamList) Span() Span {
	end := g.Gt.End()
	if g.Gt.Lexeme == "" && len(g.Params) > 0 {
		end = g.Params[len(g.Params)-1].Span().End
	}
	return Span{Start: g.Lt.Offset, End: end}
}

// Param is a single formal parameter of a function. Either a receiver
// (self / &self, SelfToken set) or an ordinary pattern with a type.
type Param struct {
	SelfToken token.Token // the 'self' token; zero value for ordinary params
	IsSelf    bool
	Pattern   Pattern
	Type      Type // nil for receivers
}

func (p *Param) Span() Span {
	if p.IsSelf {
		return tokenSpan(p.SelfToken)
	}
	start := 0
	if p.Pattern != nil {
		start = p.Pattern.Span().Start
	}
	end := start
	if p.Type != nil {
		end = p.Type.Span().End
	} else if p.Pattern != nil {
		end = p.Pattern.Span().End
	}
	return Span{Start: start, End: end}
}

// FnDecl is a function declaration, free-standing or inside a
// trait/impl (where the body may be absent for trait signatures).
type FnDecl struct {
	Token      token.Token // the 'fn' token
	Name       *Identifier
	Generics   *GenericParamList
	Params     []*Param
	RParen     token.Token
	ReturnType Type // optional
	Body       *BlockStatement
}

func (fd *FnDecl) statementNode()        {}
func (fd *FnDecl) TokenLiteral() string  { return fd.Token.Lexeme }
func (fd *FnDecl) GetToken() token.Token { return fd.Token }
func (fd *FnDecl) Span() Span {
	end := fd.RParen.End()
	if fd.ReturnType != nil {
		end = fd.ReturnType.Span().End
	}
	if fd.Body != nil {
		end = fd.Body.Span().End
	}
	return Span{Start: fd.Token.Offset, End: end}
}

// FieldDef is a single named struct field.
type FieldDef struct {
	Name *Identifier
	Type Type
}

// StructDecl declares an algebraic data type with named fields.
type StructDecl struct {
	Token    token.Token // the 'struct' token
	Name     *Identifier
	Generics *GenericParamList
	Fields   []*FieldDef
	EndOff   int
}

func (sd *StructDecl) statementNode()        {}
func (sd *StructDecl) TokenLiteral() string  { return sd.Token.Lexeme }
func (sd *StructDecl) GetToken() token.Token { return sd.Token }
func (sd *StructDecl) Span() Span {
	return Span{Start: sd.Token.Offset, End: sd.EndOff}
}

// VariantDef is a single enum variant, optionally with payload types.
type VariantDef struct {
	Name   *Identifier
	Params []Type
	EndOff int
}

func (vd *VariantDef) Span() Span {
	return Span{Start: vd.Name.Span().Start, End: vd.EndOff}
}

// EnumDecl declares a sum algebraic data type.
type EnumDecl struct {
	Token    token.Token // the 'enum' token
	Name     *Identifier
	Generics *GenericParamList
	Variants []*VariantDef
	EndOff   int
}

func (ed *EnumDecl) statementNode()        {}
func (ed *EnumDecl) TokenLiteral() string  { return ed.Token.Lexeme }
func (ed *EnumDecl) GetToken() token.Token { return ed.Token }
func (ed *EnumDecl) Span() Span {
	return Span{Start: ed.Token.Offset, End: ed.EndOff}
}

// TraitDecl declares a trait with method signatures (bodies optional).
type TraitDecl struct {
	Token    token.Token // the 'trait' token
	Name     *Identifier
	Generics *GenericParamList
	Methods  []*FnDecl
	EndOff   int
}

func (td *TraitDecl) statementNode()        {}
func (td *TraitDecl) TokenLiteral() string  { return td.Token.Lexeme }
func (td *TraitDecl) GetToken() token.Token { return td.Token }
func (td *TraitDecl) Span() Span {
	return Span{Start: td.Token.Offset, End: td.EndOff}
}

// TypeAliasDecl declares a type alias: type Pair<T> = (T, T);
type TypeAliasDecl struct {
	Token    token.Token // the 'type' token
	Name     *Identifier
	Generics *GenericParamList
	Target   Type
	EndOff   int
}

func (ta *TypeAliasDecl) statementNode()        {}
func (ta *TypeAliasDecl) TokenLiteral() string  { return ta.Token.Lexeme }
func (ta *TypeAliasDecl) GetToken() token.Token { return ta.Token }
func (ta *TypeAliasDecl) Span() Span {
	return Span{Start: ta.Token.Offset, End: ta.EndOff}
}

// ConstDecl declares a constant: const MAX: Int = 10;
type ConstDecl struct {
	Token  token.Token // the 'const' token
	Name   *Identifier
	Type   Type
	Value  Expression
	EndOff int
}

func (cd *ConstDecl) statementNode()        {}
func (cd *ConstDecl) TokenLiteral() string  { return cd.Token.Lexeme }
func (cd *ConstDecl) GetToken() token.Token { return cd.Token }
func (cd *ConstDecl) Span() Span {
	return Span{Start: cd.Token.Offset, End: cd.EndOff}
}

// StaticDecl declares a static item: static ORIGIN: Point = ...;
type StaticDecl struct {
	Token  token.Token // the 'static' token
	Name   *Identifier
	Type   Type
	Value  Expression
	EndOff int
}

func (sd *StaticDecl) statementNode()        {}
func (sd *StaticDecl) TokenLiteral() string  { return sd.Token.Lexeme }
func (sd *StaticDecl) GetToken() token.Token { return sd.Token }
func (sd *StaticDecl) Span() Span {
	return Span{Start: sd.Token.Offset, End: sd.EndOff}
}

// ModDecl declares a nested module with its items.
type ModDecl struct {
	Token  token.Token // the 'mod' token
	Name   *Identifier
	Items  []Statement
	RBrace token.Token
}

func (md *ModDecl) statementNode()        {}
func (md *ModDecl) TokenLiteral() string  { return md.Token.Lexeme }
func (md *ModDecl) GetToken() token.Token { return md.Token }
func (md *ModDecl) Span() Span {
	end := md.RBrace.End()
	if md.RBrace.Lexeme == "" && len(md.Items) > 0 {
		end = md.Items[len(md.Items)-1].Span().End
	}
	return Span{Start: md.Token.Offset, End: end}
}

// ImplDecl is an impl block, inherent (Trait == nil) or a trait impl.
// Items hold FnDecl, ConstDecl and TypeAliasDecl statements.
type ImplDecl struct {
	Token    token.Token // the 'impl' token
	Trait    *NamedType  // nil for inherent impls
	SelfType *NamedType
	Items    []Statement
	RBrace   token.Token
}

func (id *ImplDecl) statementNode()        {}
func (id *ImplDecl) TokenLiteral() string  { return id.Token.Lexeme }
func (id *ImplDecl) GetToken() token.Token { return id.Token }
func (id *ImplDecl) Span() Span {
	end := id.RBrace.End()
	if id.RBrace.Lexeme == "" && len(id.Items) > 0 {
		end = id.Items[len(id.Items)-1].Span().End
	}
	return Span{Start: id.Token.Offset, End: end}
}
