package ast

import (
	"github.com/ferrite-lang/ferrite/internal/token"
)

// Identifier is a single name in expression position.
type Identifier struct {
	Token token.Token
	Name  string
}

func (i *Identifier) expressionNode()       {}
func (i *Identifier) TokenLiteral() string  { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token { return i.Token }
func (i *Identifier) Span() Span            { return tokenSpan(i.Token) }

// PathSegment is one `name` step of a path, optionally carrying explicit
// generic arguments: name::<T, U>.
type PathSegment struct {
	Name     *Identifier
	Generics *GenericArgList
}

func (ps *PathSegment) end() int {
	if ps.Generics != nil {
		return ps.Generics.Span().End
	}
	return ps.Name.Span().End
}

// PathExpression is a `::`-separated path in expression position,
// e.g. Shape::Circle or collections::Vec::<Int>.
type PathExpression struct {
	Token    token.Token // first segment's token
	Segments []*PathSegment
}

func (pe *PathExpression) expressionNode()       {}
func (pe *PathExpression) TokenLiteral() string  { return pe.Token.Lexeme }
func (pe *PathExpression) GetToken() token.Token { return pe.Token }
func (pe *PathExpression) Span() Span {
	end := pe.Token.End()
	if len(pe.Segments) > 0 {
		end = pe.Segments[len(pe.Segments)-1].end()
	}
	return Span{Start: pe.Token.Offset, End: end}
}

// SegmentNames returns the plain names of all segments in order.
func (pe *PathExpression) SegmentNames() []string {
	names := make([]string, len(pe.Segments))
	for i, seg := range pe.Segments {
		names[i] = seg.Name.Name
	}
	return names
}

// GenericArgs returns the generic-argument list of the last segment that
// carries one, or nil.
func (pe *PathExpression) GenericArgs() *GenericArgList {
	for i := len(pe.Segments) - 1; i >= 0; i-- {
		if pe.Segments[i].Generics != nil {
			return pe.Segments[i].Generics
		}
	}
	return nil
}

// ArgList is the parenthesized argument list of a call or method call.
// The span covers both parentheses. For an unterminated list (the user is
// still typing) EndOff marks where parsing stopped, so that a cursor past
// the last argument still falls inside the list.
type ArgList struct {
	LParen     token.Token
	Args       []Expression
	RParen     token.Token
	Terminated bool
	EndOff     int
}

func (al *ArgList) TokenLiteral() string { return al.LParen.Lexeme }
func (al *ArgList) Span() Span {
	end := al.EndOff
	if al.Terminated {
		end = al.RParen.End()
	}
	return Span{Start: al.LParen.Offset, End: end}
}

// GenericArgList is an explicit generic-argument list: ::<T, U> in
// expression position or <T, U> in type position.
type GenericArgList struct {
	Token      token.Token // the '::' token, or '<' in type position
	Lt         token.Token
	Args       []Type
	Gt         token.Token
	Terminated bool
	EndOff     int
}

func (gl *GenericArgList) TokenLiteral() string { return gl.Token.Lexeme }
func (gl *GenericArgList) Span() Span {
	end := gl.EndOff
	if gl.Terminated {
		end = gl.Gt.End()
	}
	return Span{Start: gl.Token.Offset, End: end}
}

// CallExpression is an ordinary call: callee(args).
type CallExpression struct {
	Token    token.Token // the '(' token
	Function Expression
	Args     *ArgList
}

func (ce *CallExpression) expressionNode()       {}
func (ce *CallExpression) TokenLiteral() string  { return ce.Token.Lexeme }
func (ce *CallExpression) GetToken() token.Token { return ce.Token }
func (ce *CallExpression) Span() Span {
	start := ce.Token.Offset
	if ce.Function != nil {
		start = ce.Function.Span().Start
	}
	end := ce.Token.End()
	if ce.Args != nil {
		end = ce.Args.Span().End
	}
	return Span{Start: start, End: end}
}

// MethodCallExpression is recv.name(args), optionally with explicit
// generic arguments: recv.name::<T>(args). Args is nil when the source
// has no argument list at all (e.g. the user typed only `recv.name`).
type MethodCallExpression struct {
	Token    token.Token // the '.' token
	Receiver Expression
	Name     *Identifier
	Generics *GenericArgList
	Args     *ArgList
}

func (mc *MethodCallExpression) expressionNode()       {}
func (mc *MethodCallExpression) TokenLiteral() string  { return mc.Token.Lexeme }
func (mc *MethodCallExpression) GetToken() token.Token { return mc.Token }
func (mc *MethodCallExpression) Span() Span {
	start := mc.Token.Offset
	if mc.Receiver != nil {
		start = mc.Receiver.Span().Start
	}
	end := mc.Token.End()
	if mc.Name != nil {
		end = mc.Name.Span().End
	}
	if mc.Generics != nil {
		end = mc.Generics.Span().End
	}
	if mc.Args != nil {
		end = mc.Args.Span().End
	}
	return Span{Start: start, End: end}
}

// RefExpression is a borrow: &expr.
type RefExpression struct {
	Token token.Token // the '&' token
	Value Expression
}

func (re *RefExpression) expressionNode()       {}
func (re *RefExpression) TokenLiteral() string  { return re.Token.Lexeme }
func (re *RefExpression) GetToken() token.Token { return re.Token }
func (re *RefExpression) Span() Span {
	end := re.Token.End()
	if re.Value != nil {
		end = re.Value.Span().End
	}
	return Span{Start: re.Token.Offset, End: end}
}

// PrefixExpression is -expr or !expr.
type PrefixExpression struct {
	Token    token.Token
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) expressionNode()       {}
func (pe *PrefixExpression) TokenLiteral() string  { return pe.Token.Lexeme }
func (pe *PrefixExpression) GetToken() token.Token { return pe.Token }
func (pe *PrefixExpression) Span() Span {
	end := pe.Token.End()
	if pe.Right != nil {
		end = pe.Right.Span().End
	}
	return Span{Start: pe.Token.Offset, End: end}
}

// InfixExpression is left op right.
type InfixExpression struct {
	Token    token.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (ie *InfixExpression) expressionNode()       {}
func (ie *InfixExpression) TokenLiteral() string  { return ie.Token.Lexeme }
func (ie *InfixExpression) GetToken() token.Token { return ie.Token }
func (ie *InfixExpression) Span() Span {
	start := ie.Token.Offset
	if ie.Left != nil {
		start = ie.Left.Span().Start
	}
	end := ie.Token.End()
	if ie.Right != nil {
		end = ie.Right.Span().End
	}
	return Span{Start: start, End: end}
}

// TupleLiteral is (a, b) or the unit literal ().
type TupleLiteral struct {
	Token    token.Token // the '(' token
	Elements []Expression
	RParen   token.Token
}

func (tl *TupleLiteral) expressionNode()       {}
func (tl *TupleLiteral) TokenLiteral() string  { return tl.Token.Lexeme }
func (tl *TupleLiteral) GetToken() token.Token { return tl.Token }
func (tl *TupleLiteral) Span() Span {
	end := tl.RParen.End()
	if tl.RParen.Lexeme == "" && len(tl.Elements) > 0 {
		end = tl.Elements[len(tl.Elements)-1].Span().End
	}
	return Span{Start: tl.Token.Offset, End: end}
}

// ParenExpression is a parenthesized sub-expression.
type ParenExpression struct {
	Token  token.Token // the '(' token
	Inner  Expression
	RParen token.Token
}

func (pe *ParenExpression) expressionNode()       {}
func (pe *ParenExpression) TokenLiteral() string  { return pe.Token.Lexeme }
func (pe *ParenExpression) GetToken() token.Token { return pe.Token }
func (pe *ParenExpression) Span() Span {
	end := pe.RParen.End()
	if pe.RParen.Lexeme == "" && pe.Inner != nil {
		end = pe.Inner.Span().End
	}
	return Span{Start: pe.Token.Offset, End: end}
}

type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()       {}
func (il *IntegerLiteral) TokenLiteral() string  { return il.Token.Lexeme }
func (il *IntegerLiteral) GetToken() token.Token { return il.Token }
func (il *IntegerLiteral) Span() Span            { return tokenSpan(il.Token) }

type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (fl *FloatLiteral) expressionNode()       {}
func (fl *FloatLiteral) TokenLiteral() string  { return fl.Token.Lexeme }
func (fl *FloatLiteral) GetToken() token.Token { return fl.Token }
func (fl *FloatLiteral) Span() Span            { return tokenSpan(fl.Token) }

type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()       {}
func (sl *StringLiteral) TokenLiteral() string  { return sl.Token.Lexeme }
func (sl *StringLiteral) GetToken() token.Token { return sl.Token }
func (sl *StringLiteral) Span() Span            { return tokenSpan(sl.Token) }

type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()       {}
func (bl *BooleanLiteral) TokenLiteral() string  { return bl.Token.Lexeme }
func (bl *BooleanLiteral) GetToken() token.Token { return bl.Token }
func (bl *BooleanLiteral) Span() Span            { return tokenSpan(bl.Token) }
