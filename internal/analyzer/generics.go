package analyzer

import (
	"github.com/ferrite-lang/ferrite/internal/ast"
	"github.com/ferrite-lang/ferrite/internal/symbols"
)

// GenericDefKind classifies the definitions that can own generic
// parameters.
type GenericDefKind int

const (
	GenericFunction GenericDefKind = iota
	GenericAdt
	GenericVariant
	GenericTrait
	GenericTypeAlias
)

// GenericDef is a definition a generic-argument list applies to.
// Exactly the field matching Kind is set; variants borrow the generic
// parameters of their enum.
type GenericDef struct {
	Kind     GenericDefKind
	Function *symbols.Function
	Struct   *symbols.Struct
	Enum     *symbols.Enum
	Variant  *symbols.Variant
	Trait    *symbols.Trait
	Alias    *symbols.TypeAlias
}

func (g GenericDef) Name() string {
	switch g.Kind {
	case GenericFunction:
		return g.Function.Name
	case GenericAdt:
		if g.Struct != nil {
			return g.Struct.Name
		}
		return g.Enum.Name
	case GenericVariant:
		return g.Variant.Enum.Name + "::" + g.Variant.Name
	case GenericTrait:
		return g.Trait.Name
	case GenericTypeAlias:
		return g.Alias.Name
	}
	return ""
}

// Params returns the declared generic parameter list, or nil when the
// definition has none.
func (g GenericDef) Params() *ast.GenericParamList {
	switch g.Kind {
	case GenericFunction:
		if g.Function.Decl != nil {
			return g.Function.Decl.Generics
		}
	case GenericAdt:
		if g.Struct != nil && g.Struct.Decl != nil {
			return g.Struct.Decl.Generics
		}
		if g.Enum != nil && g.Enum.Decl != nil {
			return g.Enum.Decl.Generics
		}
	case GenericVariant:
		if g.Variant.Enum != nil && g.Variant.Enum.Decl != nil {
			return g.Variant.Enum.Decl.Generics
		}
	case GenericTrait:
		if g.Trait.Decl != nil {
			return g.Trait.Decl.Generics
		}
	case GenericTypeAlias:
		if g.Alias.Decl != nil {
			return g.Alias.Decl.Generics
		}
	}
	return nil
}
