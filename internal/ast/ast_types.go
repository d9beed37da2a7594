package ast

import (
	"strings"

	"github.com/ferrite-lang/ferrite/internal/token"
)

// NamedType is a (possibly path-qualified) type reference with optional
// generic arguments: Int, Vec<Int>, collections::Map<Int, String>.
type NamedType struct {
	Token    token.Token
	Path     []*Identifier
	Generics *GenericArgList
}

func (nt *NamedType) typeNode()             {}
func (nt *NamedType) TokenLiteral() string  { return nt.Token.Lexeme }
func (nt *NamedType) GetToken() token.Token { return nt.Token }
func (nt *NamedType) Span() Span {
	end := nt.Token.End()
	if len(nt.Path) > 0 {
		end = nt.Path[len(nt.Path)-1].Span().End
	}
	if nt.Generics != nil {
		end = nt.Generics.Span().End
	}
	return Span{Start: nt.Token.Offset, End: end}
}

// Name returns the unqualified final name of the type path.
func (nt *NamedType) Name() string {
	if len(nt.Path) == 0 {
		return ""
	}
	return nt.Path[len(nt.Path)-1].Name
}

// PathString returns the full `::`-joined path.
func (nt *NamedType) PathString() string {
	parts := make([]string, len(nt.Path))
	for i, id := range nt.Path {
		parts[i] = id.Name
	}
	return strings.Join(parts, "::")
}

// RefType is a reference type: &T.
type RefType struct {
	Token token.Token // the '&' token
	Elem  Type
}

func (rt *RefType) typeNode()             {}
func (rt *RefType) TokenLiteral() string  { return rt.Token.Lexeme }
func (rt *RefType) GetToken() token.Token { return rt.Token }
func (rt *RefType) Span() Span {
	end := rt.Token.End()
	if rt.Elem != nil {
		end = rt.Elem.Span().End
	}
	return Span{Start: rt.Token.Offset, End: end}
}

// TupleType is (T, U); an empty element list is the unit type ().
type TupleType struct {
	Token  token.Token // the '(' token
	Elems  []Type
	RParen token.Token
}

func (tt *TupleType) typeNode()             {}
func (tt *TupleType) TokenLiteral() string  { return tt.Token.Lexeme }
func (tt *TupleType) GetToken() token.Token { return tt.Token }
func (tt *TupleType) Span() Span {
	end := tt.RParen.End()
	if tt.RParen.Lexeme == "" && len(tt.Elems) > 0 {
		end = tt.Elems[len(tt.Elems)-1].Span().End
	}
	return Span{Start: tt.Token.Offset, End: end}
}

// IdentifierPattern binds a simple name.
type IdentifierPattern struct {
	Token token.Token
	Name  string
}

func (ip *IdentifierPattern) patternNode()          {}
func (ip *IdentifierPattern) TokenLiteral() string  { return ip.Token.Lexeme }
func (ip *IdentifierPattern) GetToken() token.Token { return ip.Token }
func (ip *IdentifierPattern) Span() Span            { return tokenSpan(ip.Token) }

// WildcardPattern is the discarding pattern `_`.
type WildcardPattern struct {
	Token token.Token
}

func (wp *WildcardPattern) patternNode()          {}
func (wp *WildcardPattern) TokenLiteral() string  { return wp.Token.Lexeme }
func (wp *WildcardPattern) GetToken() token.Token { return wp.Token }
func (wp *WildcardPattern) Span() Span            { return tokenSpan(wp.Token) }

// TuplePattern destructures a tuple: (a, b).
type TuplePattern struct {
	Token    token.Token // the '(' token
	Elements []Pattern
	RParen   token.Token
}

func (tp *TuplePattern) patternNode()          {}
func (tp *TuplePattern) TokenLiteral() string  { return tp.Token.Lexeme }
func (tp *TuplePattern) GetToken() token.Token { return tp.Token }
func (tp *TuplePattern) Span() Span {
	end := tp.RParen.End()
	if tp.RParen.Lexeme == "" && len(tp.Elements) > 0 {
		end = tp.Elements[len(tp.Elements)-1].Span().End
	}
	return Span{Start: tp.Token.Offset, End: end}
}
