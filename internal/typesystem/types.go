package typesystem

import (
	"strings"
)

// Type is the interface for all types in our system.
type Type interface {
	String() string
}

// TCon is a type constant: Int, Bool, or a user-declared named type.
type TCon struct {
	Name string
}

func (t TCon) String() string { return t.Name }

// TApp applies a type constructor to arguments: Vec<Int>.
type TApp struct {
	Constructor Type
	Args        []Type
}

func (t TApp) String() string {
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return t.Constructor.String() + "<" + strings.Join(parts, ", ") + ">"
}

// TFunc is a function type. It is deliberately a pointer type: each
// resolution mints a fresh value, and the analyzer tracks the defining
// symbol per instance so a callable can recover parameter bindings.
type TFunc struct {
	Params []Type
	Return Type
}

func (t *TFunc) String() string {
	parts := make([]string, len(t.Params))
	for i, p := range t.Params {
		parts[i] = p.String()
	}
	ret := "()"
	if t.Return != nil {
		ret = t.Return.String()
	}
	return "fn(" + strings.Join(parts, ", ") + ") -> " + ret
}

// TRef is a reference type: &T.
type TRef struct {
	Elem Type
}

func (t TRef) String() string {
	if t.Elem == nil {
		return "&_"
	}
	return "&" + t.Elem.String()
}

// TTuple is a tuple type: (Int, Bool).
type TTuple struct {
	Elems []Type
}

func (t TTuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// TUnit is the unit type ().
type TUnit struct{}

func (t TUnit) String() string { return "()" }

// TUnknown stands in where resolution failed; it keeps printing stable
// without propagating nils.
type TUnknown struct{}

func (t TUnknown) String() string { return "?" }

// Adjusted strips implicit adjustments from a type before callable
// conversion: references auto-dereference. Identity is preserved for
// already-adjusted types, so a *TFunc survives untouched.
func Adjusted(t Type) Type {
	for {
		ref, ok := t.(TRef)
		if !ok {
			return t
		}
		t = ref.Elem
	}
}
