package analyzer

import (
	"github.com/ferrite-lang/ferrite/internal/ast"
	"github.com/ferrite-lang/ferrite/internal/symbols"
	"github.com/ferrite-lang/ferrite/internal/typesystem"
)

// CallableParam is one formal parameter as seen from a call site.
// Receiver marks a self parameter; Pattern is the declared binding and
// is nil when the signature comes from a bare function type.
type CallableParam struct {
	Receiver bool
	Pattern  ast.Pattern
	Type     typesystem.Type
}

// Callable is a resolved call target's signature.
type Callable struct {
	Params []CallableParam
	Return typesystem.Type
}

// AsCallable converts a function type into a callable signature. When
// the type's defining symbol is known, parameters carry the declared
// patterns; otherwise only the types are available.
func (s *Semantics) AsCallable(t typesystem.Type) (*Callable, bool) {
	ft, ok := t.(*typesystem.TFunc)
	if !ok {
		return nil, false
	}
	if fn, ok := s.fnOrigins[ft]; ok && fn.Decl != nil {
		c := &Callable{Return: ft.Return}
		for i, param := range fn.Decl.Params {
			cp := CallableParam{Receiver: param.IsSelf, Pattern: param.Pattern}
			if i < len(ft.Params) {
				cp.Type = ft.Params[i]
			}
			c.Params = append(c.Params, cp)
		}
		return c, true
	}
	if v, ok := s.variantOrigins[ft]; ok && v != nil {
		c := &Callable{Return: ft.Return}
		for _, pt := range ft.Params {
			c.Params = append(c.Params, CallableParam{Type: pt})
		}
		return c, true
	}
	c := &Callable{Return: ft.Return}
	for _, pt := range ft.Params {
		c.Params = append(c.Params, CallableParam{Type: pt})
	}
	return c, true
}

// ResolveMethodCall resolves recv.name(...) to the definition invoked:
// an associated function with a receiver, found on the receiver's type
// after reference adjustment.
func (s *Semantics) ResolveMethodCall(mc *ast.MethodCallExpression) (*symbols.Function, bool) {
	if mc.Name == nil {
		return nil, false
	}
	recv := typesystem.Adjusted(s.TypeOfExpr(mc.Receiver))
	name := typeName(recv)
	if name == "" {
		return nil, false
	}
	fn, ok := s.Table.MethodOn(name, mc.Name.Name)
	if !ok || !fn.HasSelf {
		return nil, false
	}
	return fn, true
}

// ResolveMethodCallAsCallable is ResolveMethodCall shaped as a
// signature. The receiver is consumed by the dot syntax and therefore
// excluded; the parameters line up with the explicit arguments.
func (s *Semantics) ResolveMethodCallAsCallable(mc *ast.MethodCallExpression) (*Callable, bool) {
	fn, ok := s.ResolveMethodCall(mc)
	if !ok || fn.Decl == nil {
		return nil, false
	}
	c := &Callable{Return: typesystem.TUnit{}}
	if fn.Decl.ReturnType != nil {
		c.Return = s.typeFromAst(fn.Decl.ReturnType)
	}
	for _, param := range fn.Decl.Params {
		if param.IsSelf {
			continue
		}
		c.Params = append(c.Params, CallableParam{
			Pattern: param.Pattern,
			Type:    s.typeFromAst(param.Type),
		})
	}
	return c, true
}
