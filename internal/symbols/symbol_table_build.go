package symbols

import (
	"github.com/ferrite-lang/ferrite/internal/ast"
)

// Build collects every definition in the program into a fresh table.
// Later duplicates do not replace earlier ones; duplicate reporting is
// the analyzer's job, resolution just needs a stable winner.
func Build(prog *ast.Program) *Table {
	t := &Table{Root: newModule("", nil)}
	t.collect(t.Root, prog.Statements)
	return t
}

func (t *Table) collect(mod *Module, stmts []ast.Statement) {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.ModDecl:
			if s.Name == nil {
				continue
			}
			child, ok := mod.Children[s.Name.Name]
			if !ok {
				child = newModule(s.Name.Name, mod)
				mod.Children[s.Name.Name] = child
			}
			t.collect(child, s.Items)
		case *ast.FnDecl:
			if s.Name == nil {
				continue
			}
			if _, exists := mod.Functions[s.Name.Name]; !exists {
				mod.Functions[s.Name.Name] = &Function{
					Name:    s.Name.Name,
					Decl:    s,
					HasSelf: hasSelfParam(s),
				}
			}
		case *ast.StructDecl:
			if s.Name == nil {
				continue
			}
			if _, exists := mod.Structs[s.Name.Name]; !exists {
				mod.Structs[s.Name.Name] = &Struct{Name: s.Name.Name, Decl: s}
			}
		case *ast.EnumDecl:
			if s.Name == nil {
				continue
			}
			if _, exists := mod.Enums[s.Name.Name]; exists {
				continue
			}
			e := &Enum{Name: s.Name.Name, Decl: s}
			for _, v := range s.Variants {
				if v.Name == nil {
					continue
				}
				e.Variants = append(e.Variants, &Variant{Name: v.Name.Name, Enum: e, Decl: v})
			}
			mod.Enums[s.Name.Name] = e
		case *ast.TraitDecl:
			if s.Name == nil {
				continue
			}
			if _, exists := mod.Traits[s.Name.Name]; exists {
				continue
			}
			tr := &Trait{Name: s.Name.Name, Decl: s, Methods: make(map[string]*Function)}
			for _, m := range s.Methods {
				if m.Name == nil {
					continue
				}
				tr.Methods[m.Name.Name] = &Function{
					Name:    m.Name.Name,
					Decl:    m,
					Trait:   tr.Name,
					HasSelf: hasSelfParam(m),
				}
			}
			mod.Traits[s.Name.Name] = tr
		case *ast.TypeAliasDecl:
			if s.Name == nil {
				continue
			}
			if _, exists := mod.Aliases[s.Name.Name]; !exists {
				mod.Aliases[s.Name.Name] = &TypeAlias{Name: s.Name.Name, Decl: s}
			}
		case *ast.ConstDecl:
			if s.Name == nil {
				continue
			}
			if _, exists := mod.Consts[s.Name.Name]; !exists {
				mod.Consts[s.Name.Name] = &Const{Name: s.Name.Name, Decl: s}
			}
		case *ast.StaticDecl:
			if s.Name == nil {
				continue
			}
			if _, exists := mod.Statics[s.Name.Name]; !exists {
				mod.Statics[s.Name.Name] = &Static{Name: s.Name.Name, Decl: s}
			}
		case *ast.ImplDecl:
			t.collectImpl(s)
		}
	}
}

func (t *Table) collectImpl(decl *ast.ImplDecl) {
	if decl.SelfType == nil {
		return
	}
	imp := &Impl{
		SelfName:  decl.SelfType.Name(),
		Decl:      decl,
		Functions: make(map[string]*Function),
		Consts:    make(map[string]*Const),
		Aliases:   make(map[string]*TypeAlias),
	}
	if decl.Trait != nil {
		imp.TraitName = decl.Trait.Name()
	}
	for _, item := range decl.Items {
		switch it := item.(type) {
		case *ast.FnDecl:
			if it.Name == nil {
				continue
			}
			imp.Functions[it.Name.Name] = &Function{
				Name:    it.Name.Name,
				Decl:    it,
				Owner:   imp.SelfName,
				Trait:   imp.TraitName,
				HasSelf: hasSelfParam(it),
			}
		case *ast.ConstDecl:
			if it.Name == nil {
				continue
			}
			imp.Consts[it.Name.Name] = &Const{Name: it.Name.Name, Decl: it, Owner: imp.SelfName}
		case *ast.TypeAliasDecl:
			if it.Name == nil {
				continue
			}
			imp.Aliases[it.Name.Name] = &TypeAlias{Name: it.Name.Name, Decl: it, Owner: imp.SelfName}
		}
	}
	t.Impls = append(t.Impls, imp)
}

func hasSelfParam(fn *ast.FnDecl) bool {
	return len(fn.Params) > 0 && fn.Params[0].IsSelf
}
