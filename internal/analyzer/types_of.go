package analyzer

import (
	"github.com/ferrite-lang/ferrite/internal/ast"
	"github.com/ferrite-lang/ferrite/internal/symbols"
	"github.com/ferrite-lang/ferrite/internal/typesystem"
)

// TypeOfExpr computes the type of an expression. Resolution failures
// yield TUnknown rather than an error; broken code is the normal input
// here and the callers treat unknown as "no answer".
func (s *Semantics) TypeOfExpr(expr ast.Expression) typesystem.Type {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return typesystem.TCon{Name: "Int"}
	case *ast.FloatLiteral:
		return typesystem.TCon{Name: "Float"}
	case *ast.StringLiteral:
		return typesystem.TCon{Name: "String"}
	case *ast.BooleanLiteral:
		return typesystem.TCon{Name: "Bool"}

	case *ast.Identifier:
		path := ast.FindNodePath(s.Prog, e.Token.Offset)
		if b, ok := s.lookupLocal(e.Name, e.Token.Offset, path); ok {
			return b.typ
		}
		return s.typeOfResolution(s.resolveSingle(e.Name))

	case *ast.PathExpression:
		res, ok := s.ResolvePath(e)
		if !ok {
			return typesystem.TUnknown{}
		}
		if res.Kind == symbols.ResolvedLocal {
			if b, ok := s.lookupLocal(res.LocalName, e.Token.Offset, ast.FindNodePath(s.Prog, e.Token.Offset)); ok {
				return b.typ
			}
			return typesystem.TUnknown{}
		}
		return s.typeOfResolution(res)

	case *ast.CallExpression:
		callee := typesystem.Adjusted(s.TypeOfExpr(e.Function))
		if ft, ok := callee.(*typesystem.TFunc); ok {
			if ft.Return == nil {
				return typesystem.TUnit{}
			}
			return ft.Return
		}
		return typesystem.TUnknown{}

	case *ast.MethodCallExpression:
		fn, ok := s.ResolveMethodCall(e)
		if !ok {
			return typesystem.TUnknown{}
		}
		if fn.Decl == nil || fn.Decl.ReturnType == nil {
			return typesystem.TUnit{}
		}
		return s.typeFromAst(fn.Decl.ReturnType)

	case *ast.RefExpression:
		return typesystem.TRef{Elem: s.TypeOfExpr(e.Value)}

	case *ast.ParenExpression:
		return s.TypeOfExpr(e.Inner)

	case *ast.TupleLiteral:
		if len(e.Elements) == 0 {
			return typesystem.TUnit{}
		}
		elems := make([]typesystem.Type, len(e.Elements))
		for i, el := range e.Elements {
			elems[i] = s.TypeOfExpr(el)
		}
		return typesystem.TTuple{Elems: elems}

	case *ast.PrefixExpression:
		if e.Operator == "!" {
			return typesystem.TCon{Name: "Bool"}
		}
		return s.TypeOfExpr(e.Right)

	case *ast.InfixExpression:
		switch e.Operator {
		case "==", "!=", "<", ">", "<=", ">=":
			return typesystem.TCon{Name: "Bool"}
		}
		return s.TypeOfExpr(e.Left)
	}
	return typesystem.TUnknown{}
}

// resolveSingle resolves a bare name against the definition table.
func (s *Semantics) resolveSingle(name string) symbols.Resolution {
	res, ok := s.Table.ResolvePath([]string{name})
	if !ok {
		return symbols.Resolution{}
	}
	return res
}

func (s *Semantics) typeOfResolution(res symbols.Resolution) typesystem.Type {
	switch res.Kind {
	case symbols.ResolvedFunction, symbols.ResolvedAssocFunction:
		return s.functionType(res.Function)
	case symbols.ResolvedVariant:
		return s.variantType(res.Variant)
	case symbols.ResolvedConst, symbols.ResolvedAssocConst:
		if res.Const.Decl != nil && res.Const.Decl.Type != nil {
			return s.typeFromAst(res.Const.Decl.Type)
		}
	case symbols.ResolvedStatic:
		if res.Static.Decl != nil && res.Static.Decl.Type != nil {
			return s.typeFromAst(res.Static.Decl.Type)
		}
	}
	return typesystem.TUnknown{}
}

// functionType mints a fresh function type for a definition and records
// its origin. Receivers contribute the owning type as the first
// parameter, which is what a path call to a method passes explicitly.
func (s *Semantics) functionType(fn *symbols.Function) *typesystem.TFunc {
	ft := &typesystem.TFunc{}
	if fn.Decl != nil {
		for _, param := range fn.Decl.Params {
			if param.IsSelf {
				ft.Params = append(ft.Params, typesystem.TCon{Name: fn.Owner})
				continue
			}
			ft.Params = append(ft.Params, s.typeFromAst(param.Type))
		}
		if fn.Decl.ReturnType != nil {
			ft.Return = s.typeFromAst(fn.Decl.ReturnType)
		} else {
			ft.Return = typesystem.TUnit{}
		}
	}
	s.fnOrigins[ft] = fn
	return ft
}

// variantType mints the constructor type of a payload-carrying variant.
func (s *Semantics) variantType(v *symbols.Variant) typesystem.Type {
	if v.Decl == nil || len(v.Decl.Params) == 0 {
		return typesystem.TCon{Name: v.Enum.Name}
	}
	ft := &typesystem.TFunc{Return: typesystem.TCon{Name: v.Enum.Name}}
	for _, t := range v.Decl.Params {
		ft.Params = append(ft.Params, s.typeFromAst(t))
	}
	s.variantOrigins[ft] = v
	return ft
}

// typeFromAst converts a syntactic type to a semantic one.
func (s *Semantics) typeFromAst(t ast.Type) typesystem.Type {
	switch tt := t.(type) {
	case *ast.NamedType:
		name := tt.Name()
		if name == "" {
			return typesystem.TUnknown{}
		}
		var base typesystem.Type = typesystem.TCon{Name: name}
		if tt.Generics != nil && len(tt.Generics.Args) > 0 {
			args := make([]typesystem.Type, len(tt.Generics.Args))
			for i, a := range tt.Generics.Args {
				args[i] = s.typeFromAst(a)
			}
			return typesystem.TApp{Constructor: base, Args: args}
		}
		return base
	case *ast.RefType:
		return typesystem.TRef{Elem: s.typeFromAst(tt.Elem)}
	case *ast.TupleType:
		if len(tt.Elems) == 0 {
			return typesystem.TUnit{}
		}
		elems := make([]typesystem.Type, len(tt.Elems))
		for i, e := range tt.Elems {
			elems[i] = s.typeFromAst(e)
		}
		return typesystem.TTuple{Elems: elems}
	}
	return typesystem.TUnknown{}
}

// typeName extracts the nominal name used for method lookup, or "".
func typeName(t typesystem.Type) string {
	switch tt := t.(type) {
	case typesystem.TCon:
		return tt.Name
	case typesystem.TApp:
		return typeName(tt.Constructor)
	}
	return ""
}
