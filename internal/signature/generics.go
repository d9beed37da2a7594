package signature

import (
	"github.com/ferrite-lang/ferrite/internal/analyzer"
	"github.com/ferrite-lang/ferrite/internal/ast"
	"github.com/ferrite-lang/ferrite/internal/symbols"
	"github.com/ferrite-lang/ferrite/internal/token"
)

// GenericsForToken finds the innermost generic-argument list spanning
// the token's position and resolves the definition it applies to. The
// index counts the type arguments ending at or before the position; it
// is not clamped to the definition's parameter count.
func GenericsForToken(sem *analyzer.Semantics, tok token.Token) (analyzer.GenericDef, int, bool) {
	path := ast.FindNodePath(sem.Prog, tok.Offset)

	listAt := -1
	var list *ast.GenericArgList
	for i := len(path) - 1; i >= 0; i-- {
		if g, ok := path[i].(*ast.GenericArgList); ok && g.Span().Contains(tok.Offset) {
			list = g
			listAt = i
			break
		}
	}
	if list == nil {
		return analyzer.GenericDef{}, 0, false
	}

	idx := 0
	for _, arg := range list.Args {
		if arg.Span().End > tok.Offset {
			break
		}
		idx++
	}

	// A list hanging off a path applies to whatever the path names. A
	// list directly on a method call is the method's turbofish.
	for i := listAt - 1; i >= 0; i-- {
		switch owner := path[i].(type) {
		case *ast.PathExpression:
			res, ok := sem.ResolvePath(owner)
			if !ok {
				return analyzer.GenericDef{}, 0, false
			}
			def, ok := classifyGenericTarget(res)
			if !ok {
				return analyzer.GenericDef{}, 0, false
			}
			return def, idx, true
		case *ast.NamedType:
			res, ok := sem.ResolveNamedType(owner)
			if !ok {
				return analyzer.GenericDef{}, 0, false
			}
			def, ok := classifyGenericTarget(res)
			if !ok {
				return analyzer.GenericDef{}, 0, false
			}
			return def, idx, true
		case *ast.MethodCallExpression:
			if owner.Generics != list {
				return analyzer.GenericDef{}, 0, false
			}
			fn, ok := sem.ResolveMethodCall(owner)
			if !ok {
				return analyzer.GenericDef{}, 0, false
			}
			return analyzer.GenericDef{Kind: analyzer.GenericFunction, Function: fn}, idx, true
		}
	}
	return analyzer.GenericDef{}, 0, false
}

// classifyGenericTarget maps a path resolution onto the definitions
// that can take generic arguments. Every other kind means the list is
// misplaced and there is nothing to offer.
func classifyGenericTarget(res symbols.Resolution) (analyzer.GenericDef, bool) {
	switch res.Kind {
	case symbols.ResolvedStruct:
		return analyzer.GenericDef{Kind: analyzer.GenericAdt, Struct: res.Struct}, true
	case symbols.ResolvedEnum:
		return analyzer.GenericDef{Kind: analyzer.GenericAdt, Enum: res.Enum}, true
	case symbols.ResolvedVariant:
		return analyzer.GenericDef{Kind: analyzer.GenericVariant, Variant: res.Variant}, true
	case symbols.ResolvedFunction, symbols.ResolvedAssocFunction:
		return analyzer.GenericDef{Kind: analyzer.GenericFunction, Function: res.Function}, true
	case symbols.ResolvedTrait:
		return analyzer.GenericDef{Kind: analyzer.GenericTrait, Trait: res.Trait}, true
	case symbols.ResolvedTypeAlias, symbols.ResolvedAssocTypeAlias:
		return analyzer.GenericDef{Kind: analyzer.GenericTypeAlias, Alias: res.TypeAlias}, true
	case symbols.ResolvedNone, symbols.ResolvedModule, symbols.ResolvedConst,
		symbols.ResolvedAssocConst, symbols.ResolvedStatic, symbols.ResolvedBuiltinType,
		symbols.ResolvedLocal, symbols.ResolvedTypeParam, symbols.ResolvedSelfType:
		return analyzer.GenericDef{}, false
	}
	return analyzer.GenericDef{}, false
}
