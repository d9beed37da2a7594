package symbols

import (
	"github.com/ferrite-lang/ferrite/internal/ast"
	"github.com/ferrite-lang/ferrite/internal/config"
)

// ResolutionKind is the closed set of things a path can resolve to.
// The generic-target classifier switches over it exhaustively; kinds it
// does not support map to "not applicable", never to a fault.
type ResolutionKind int

const (
	ResolvedNone ResolutionKind = iota
	ResolvedFunction
	ResolvedStruct
	ResolvedEnum
	ResolvedVariant
	ResolvedTrait
	ResolvedTypeAlias
	ResolvedAssocFunction
	ResolvedAssocTypeAlias
	ResolvedAssocConst
	ResolvedModule
	ResolvedConst
	ResolvedStatic
	ResolvedBuiltinType
	ResolvedLocal
	ResolvedTypeParam
	ResolvedSelfType
)

// Resolution is the tagged result of path resolution. Exactly the field
// matching Kind is set.
type Resolution struct {
	Kind      ResolutionKind
	Function  *Function
	Struct    *Struct
	Enum      *Enum
	Variant   *Variant
	Trait     *Trait
	TypeAlias *TypeAlias
	Const     *Const
	Static    *Static
	Module    *Module

	// Local bindings are resolved lexically by the analyzer, not from
	// this table; it fills these in when wrapping a local.
	LocalName string
	LocalDecl ast.Node
}

// ResolvePath resolves a `::`-separated path from the root module.
// Locals, type parameters and Self are scope-dependent and therefore
// handled by the analyzer before it falls back to this table.
func (t *Table) ResolvePath(names []string) (Resolution, bool) {
	if len(names) == 0 {
		return Resolution{}, false
	}
	cur := t.Root
	for i, name := range names {
		last := i == len(names)-1
		if last {
			if r, ok := lookupInModule(cur, name); ok {
				return r, true
			}
			if i == 0 && config.BuiltinTypeNames[name] {
				return Resolution{Kind: ResolvedBuiltinType}, true
			}
			return Resolution{}, false
		}
		if child, ok := cur.Children[name]; ok {
			cur = child
			continue
		}
		if r, ok := lookupInModule(cur, name); ok {
			return t.resolveQualified(r, names[i+1:])
		}
		return Resolution{}, false
	}
	return Resolution{}, false
}

func lookupInModule(mod *Module, name string) (Resolution, bool) {
	if child, ok := mod.Children[name]; ok {
		return Resolution{Kind: ResolvedModule, Module: child}, true
	}
	if s, ok := mod.Structs[name]; ok {
		return Resolution{Kind: ResolvedStruct, Struct: s}, true
	}
	if e, ok := mod.Enums[name]; ok {
		return Resolution{Kind: ResolvedEnum, Enum: e}, true
	}
	if tr, ok := mod.Traits[name]; ok {
		return Resolution{Kind: ResolvedTrait, Trait: tr}, true
	}
	if a, ok := mod.Aliases[name]; ok {
		return Resolution{Kind: ResolvedTypeAlias, TypeAlias: a}, true
	}
	if f, ok := mod.Functions[name]; ok {
		return Resolution{Kind: ResolvedFunction, Function: f}, true
	}
	if c, ok := mod.Consts[name]; ok {
		return Resolution{Kind: ResolvedConst, Const: c}, true
	}
	if st, ok := mod.Statics[name]; ok {
		return Resolution{Kind: ResolvedStatic, Static: st}, true
	}
	return Resolution{}, false
}

// resolveQualified resolves the remaining segments after a non-module
// base: Enum::Variant, Type::assoc_item, Trait::method.
func (t *Table) resolveQualified(base Resolution, rest []string) (Resolution, bool) {
	if len(rest) != 1 {
		return Resolution{}, false
	}
	name := rest[0]
	switch base.Kind {
	case ResolvedEnum:
		for _, v := range base.Enum.Variants {
			if v.Name == name {
				return Resolution{Kind: ResolvedVariant, Variant: v}, true
			}
		}
		return t.resolveAssoc(base.Enum.Name, name)
	case ResolvedStruct:
		return t.resolveAssoc(base.Struct.Name, name)
	case ResolvedTrait:
		if m, ok := base.Trait.Methods[name]; ok {
			return Resolution{Kind: ResolvedAssocFunction, Function: m}, true
		}
	}
	return Resolution{}, false
}

func (t *Table) resolveAssoc(typeName, name string) (Resolution, bool) {
	if fn, ok := t.MethodOn(typeName, name); ok {
		return Resolution{Kind: ResolvedAssocFunction, Function: fn}, true
	}
	for _, imp := range t.Impls {
		if imp.SelfName != typeName {
			continue
		}
		if c, ok := imp.Consts[name]; ok {
			return Resolution{Kind: ResolvedAssocConst, Const: c}, true
		}
		if a, ok := imp.Aliases[name]; ok {
			return Resolution{Kind: ResolvedAssocTypeAlias, TypeAlias: a}, true
		}
	}
	return Resolution{}, false
}
