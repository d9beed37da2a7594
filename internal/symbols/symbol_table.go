package symbols

import (
	"github.com/ferrite-lang/ferrite/internal/ast"
)

// Function is a callable definition: a free function, a trait method, or
// an associated function from an impl block.
type Function struct {
	Name    string
	Decl    *ast.FnDecl
	Owner   string // self-type name for impl items, trait name for trait methods
	Trait   string // trait name when declared in a trait or trait impl
	HasSelf bool
}

// IsAssociated reports whether the function lives under a type or trait.
func (f *Function) IsAssociated() bool { return f.Owner != "" || f.Trait != "" }

type Struct struct {
	Name string
	Decl *ast.StructDecl
}

type Enum struct {
	Name     string
	Decl     *ast.EnumDecl
	Variants []*Variant
}

type Variant struct {
	Name string
	Enum *Enum
	Decl *ast.VariantDef
}

type Trait struct {
	Name    string
	Decl    *ast.TraitDecl
	Methods map[string]*Function
}

type TypeAlias struct {
	Name  string
	Decl  *ast.TypeAliasDecl
	Owner string // self-type name for associated type aliases
}

type Const struct {
	Name  string
	Decl  *ast.ConstDecl
	Owner string // self-type name for associated consts
}

type Static struct {
	Name string
	Decl *ast.StaticDecl
}

// Module is one scope level of definitions. The root module has no name.
type Module struct {
	Name      string
	Parent    *Module
	Children  map[string]*Module
	Functions map[string]*Function
	Structs   map[string]*Struct
	Enums     map[string]*Enum
	Traits    map[string]*Trait
	Aliases   map[string]*TypeAlias
	Consts    map[string]*Const
	Statics   map[string]*Static
}

func newModule(name string, parent *Module) *Module {
	return &Module{
		Name:      name,
		Parent:    parent,
		Children:  make(map[string]*Module),
		Functions: make(map[string]*Function),
		Structs:   make(map[string]*Struct),
		Enums:     make(map[string]*Enum),
		Traits:    make(map[string]*Trait),
		Aliases:   make(map[string]*TypeAlias),
		Consts:    make(map[string]*Const),
		Statics:   make(map[string]*Static),
	}
}

// Impl is one impl block keyed by the self type's unqualified name.
type Impl struct {
	SelfName  string
	TraitName string // empty for inherent impls
	Decl      *ast.ImplDecl
	Functions map[string]*Function
	Consts    map[string]*Const
	Aliases   map[string]*TypeAlias
}

// Table is the definition table for one program snapshot. It is built
// once per analysis and read-only afterwards.
type Table struct {
	Root  *Module
	Impls []*Impl
}

// MethodsOn returns all associated functions available on the named
// type, inherent impls first, then trait impls in declaration order.
func (t *Table) MethodsOn(typeName string) []*Function {
	var inherent, fromTraits []*Function
	for _, imp := range t.Impls {
		if imp.SelfName != typeName {
			continue
		}
		for _, fn := range imp.Functions {
			if imp.TraitName == "" {
				inherent = append(inherent, fn)
			} else {
				fromTraits = append(fromTraits, fn)
			}
		}
	}
	return append(inherent, fromTraits...)
}

// MethodOn looks up a single associated function by name.
func (t *Table) MethodOn(typeName, name string) (*Function, bool) {
	var fromTrait *Function
	for _, imp := range t.Impls {
		if imp.SelfName != typeName {
			continue
		}
		fn, ok := imp.Functions[name]
		if !ok {
			continue
		}
		if imp.TraitName == "" {
			return fn, true
		}
		if fromTrait == nil {
			fromTrait = fn
		}
	}
	if fromTrait != nil {
		return fromTrait, true
	}
	return nil, false
}
