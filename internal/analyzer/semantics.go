package analyzer

import (
	"github.com/ferrite-lang/ferrite/internal/ast"
	"github.com/ferrite-lang/ferrite/internal/config"
	"github.com/ferrite-lang/ferrite/internal/symbols"
	"github.com/ferrite-lang/ferrite/internal/typesystem"
)

// Semantics answers name and type questions about one parsed snapshot.
// It wraps the definition table with the scope-sensitive parts: local
// bindings, type parameters and Self, which depend on where in the tree
// a name occurs.
//
// Function types are minted fresh per resolution; the origin maps tie
// each minted type back to the defining symbol so a callable can
// recover parameter bindings from the declaration. Queries record into
// these maps, so a Semantics value is not safe for concurrent use; give
// each goroutine its own.
type Semantics struct {
	Prog  *ast.Program
	Table *symbols.Table

	fnOrigins      map[*typesystem.TFunc]*symbols.Function
	variantOrigins map[*typesystem.TFunc]*symbols.Variant
}

func NewSemantics(prog *ast.Program) *Semantics {
	return &Semantics{
		Prog:           prog,
		Table:          symbols.Build(prog),
		fnOrigins:      make(map[*typesystem.TFunc]*symbols.Function),
		variantOrigins: make(map[*typesystem.TFunc]*symbols.Variant),
	}
}

// localBinding is a name introduced by a let pattern or a parameter.
type localBinding struct {
	decl ast.Node
	typ  typesystem.Type
}

// ResolvePath resolves a path expression in its lexical scope. Locals,
// type parameters and Self shadow module-level definitions, so they are
// checked first; everything else goes through the definition table.
func (s *Semantics) ResolvePath(pe *ast.PathExpression) (symbols.Resolution, bool) {
	names := pe.SegmentNames()
	if len(names) == 0 {
		return symbols.Resolution{}, false
	}
	offset := pe.Token.Offset
	path := ast.FindNodePath(s.Prog, offset)

	if len(names) == 1 {
		if b, ok := s.lookupLocal(names[0], offset, path); ok {
			return symbols.Resolution{
				Kind:      symbols.ResolvedLocal,
				LocalName: names[0],
				LocalDecl: b.decl,
			}, true
		}
		if s.isTypeParam(names[0], path) {
			return symbols.Resolution{Kind: symbols.ResolvedTypeParam}, true
		}
	}
	if names[0] == config.SelfTypeName {
		if len(names) == 1 {
			return symbols.Resolution{Kind: symbols.ResolvedSelfType}, true
		}
		selfName, ok := s.enclosingSelfName(path)
		if !ok {
			return symbols.Resolution{}, false
		}
		names = append([]string{selfName}, names[1:]...)
	}
	return s.Table.ResolvePath(names)
}

// ResolveNamedType resolves a path in type position. Type parameters
// and Self are checked before the definition table, mirroring
// expression-path resolution.
func (s *Semantics) ResolveNamedType(nt *ast.NamedType) (symbols.Resolution, bool) {
	if len(nt.Path) == 0 {
		return symbols.Resolution{}, false
	}
	names := make([]string, len(nt.Path))
	for i, id := range nt.Path {
		names[i] = id.Name
	}
	path := ast.FindNodePath(s.Prog, nt.Token.Offset)
	if len(names) == 1 && s.isTypeParam(names[0], path) {
		return symbols.Resolution{Kind: symbols.ResolvedTypeParam}, true
	}
	if names[0] == config.SelfTypeName {
		if len(names) == 1 {
			return symbols.Resolution{Kind: symbols.ResolvedSelfType}, true
		}
		selfName, ok := s.enclosingSelfName(path)
		if !ok {
			return symbols.Resolution{}, false
		}
		names = append([]string{selfName}, names[1:]...)
	}
	return s.Table.ResolvePath(names)
}

// lookupLocal finds the innermost binding of name visible at offset.
// path is the ancestor chain from FindNodePath, root first.
func (s *Semantics) lookupLocal(name string, offset int, path []ast.Node) (localBinding, bool) {
	for i := len(path) - 1; i >= 0; i-- {
		switch node := path[i].(type) {
		case *ast.BlockStatement:
			if b, ok := s.bindingInBlock(node, name, offset); ok {
				return b, true
			}
		case *ast.FnDecl:
			if b, ok := s.bindingInParams(node, name, path[:i]); ok {
				return b, true
			}
		}
	}
	return localBinding{}, false
}

func (s *Semantics) bindingInBlock(block *ast.BlockStatement, name string, offset int) (localBinding, bool) {
	var found localBinding
	var ok bool
	for _, stmt := range block.Statements {
		let, isLet := stmt.(*ast.LetStatement)
		if !isLet || let.Span().Start >= offset {
			continue
		}
		// A let's initializer sees only earlier bindings. Without this
		// a self-referential `let x = x;` would type itself through
		// itself and never terminate.
		if let.Value != nil && let.Value.Span().Contains(offset) {
			continue
		}
		if !patternBinds(let.Pattern, name) {
			continue
		}
		// Later lets shadow earlier ones, so keep scanning.
		found = localBinding{decl: let, typ: s.letType(let)}
		ok = true
	}
	return found, ok
}

func (s *Semantics) bindingInParams(fn *ast.FnDecl, name string, outer []ast.Node) (localBinding, bool) {
	for _, param := range fn.Params {
		if param.IsSelf {
			if name != "self" {
				continue
			}
			typ := typesystem.Type(typesystem.TUnknown{})
			if selfName, ok := s.enclosingSelfName(outer); ok {
				typ = typesystem.TCon{Name: selfName}
			}
			return localBinding{decl: fn, typ: typ}, true
		}
		if param.Pattern != nil && patternBinds(param.Pattern, name) {
			return localBinding{decl: fn, typ: s.typeFromAst(param.Type)}, true
		}
	}
	return localBinding{}, false
}

// letType is the binding's type: the annotation when present, otherwise
// the initializer's type. A function-typed initializer is copied to a
// fresh instance so the binding does not inherit the origin symbol; a
// call through such a binding still has a signature, but no parameter
// names to offer.
func (s *Semantics) letType(let *ast.LetStatement) typesystem.Type {
	if let.Type != nil {
		return s.typeFromAst(let.Type)
	}
	if let.Value == nil {
		return typesystem.TUnknown{}
	}
	t := s.TypeOfExpr(let.Value)
	if ft, ok := t.(*typesystem.TFunc); ok {
		return &typesystem.TFunc{Params: ft.Params, Return: ft.Return}
	}
	return t
}

func patternBinds(pat ast.Pattern, name string) bool {
	switch p := pat.(type) {
	case *ast.IdentifierPattern:
		return p.Name == name
	case *ast.TuplePattern:
		for _, el := range p.Elements {
			if patternBinds(el, name) {
				return true
			}
		}
	}
	return false
}

// isTypeParam reports whether name is a generic parameter of any
// enclosing declaration.
func (s *Semantics) isTypeParam(name string, path []ast.Node) bool {
	for i := len(path) - 1; i >= 0; i-- {
		var gp *ast.GenericParamList
		switch node := path[i].(type) {
		case *ast.FnDecl:
			gp = node.Generics
		case *ast.StructDecl:
			gp = node.Generics
		case *ast.EnumDecl:
			gp = node.Generics
		case *ast.TraitDecl:
			gp = node.Generics
		case *ast.TypeAliasDecl:
			gp = node.Generics
		}
		if gp == nil {
			continue
		}
		for _, p := range gp.Params {
			if p.Name == name {
				return true
			}
		}
	}
	return false
}

// enclosingSelfName is the self type's name of the innermost enclosing
// impl or trait block.
func (s *Semantics) enclosingSelfName(path []ast.Node) (string, bool) {
	for i := len(path) - 1; i >= 0; i-- {
		switch node := path[i].(type) {
		case *ast.ImplDecl:
			if node.SelfType != nil {
				return node.SelfType.Name(), true
			}
		case *ast.TraitDecl:
			if node.Name != nil {
				return node.Name.Name, true
			}
		}
	}
	return "", false
}
