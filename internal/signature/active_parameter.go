// Package signature locates the call site and formal parameter a cursor
// position belongs to. It is the query layer behind signature help:
// given the token at the cursor, it finds the innermost enclosing
// argument list, resolves the callee, and counts which argument slot
// the cursor sits in.
package signature

import (
	"github.com/ferrite-lang/ferrite/internal/analyzer"
	"github.com/ferrite-lang/ferrite/internal/ast"
	"github.com/ferrite-lang/ferrite/internal/token"
	"github.com/ferrite-lang/ferrite/internal/typesystem"
)

// tooManyArgumentsHook fires when the cursor sits past the last formal
// parameter. Tests swap it to count hits.
var tooManyArgumentsHook = func() {}

// ActiveParameter is the formal parameter under the cursor.
type ActiveParameter struct {
	Type     typesystem.Type
	Receiver bool
	// Pattern is the declared binding, nil only for a receiver.
	Pattern ast.Pattern
}

// Ident returns the parameter's simple name binding, if it has one.
// Wildcards, tuple patterns and receivers have none.
func (ap *ActiveParameter) Ident() (*ast.IdentifierPattern, bool) {
	ident, ok := ap.Pattern.(*ast.IdentifierPattern)
	return ident, ok
}

// ActiveParameterAt resolves the formal parameter the token's position
// falls on. It reports false when the position is not inside a call's
// argument list, the callee cannot be resolved, the position is past
// the last declared parameter, or the parameter has no declared binding
// to offer.
func ActiveParameterAt(sem *analyzer.Semantics, tok token.Token) (*ActiveParameter, bool) {
	callable, idx, ok := CallableForToken(sem, tok)
	if !ok || idx < 0 {
		return nil, false
	}
	if idx >= len(callable.Params) {
		tooManyArgumentsHook()
		return nil, false
	}
	param := callable.Params[idx]
	if param.Pattern == nil && !param.Receiver {
		return nil, false
	}
	return &ActiveParameter{
		Type:     param.Type,
		Receiver: param.Receiver,
		Pattern:  param.Pattern,
	}, true
}

// CallableForToken finds the innermost call or method call whose
// argument list spans the token's position and resolves its signature.
// The returned index is the zero-based argument slot at the position.
func CallableForToken(sem *analyzer.Semantics, tok token.Token) (*analyzer.Callable, int, bool) {
	path := ast.FindNodePath(sem.Prog, tok.Offset)
	for i := len(path) - 1; i >= 0; i-- {
		switch node := path[i].(type) {
		case *ast.CallExpression:
			if node.Args != nil && node.Args.Span().Contains(tok.Offset) {
				return CallableForNode(sem, node, tok.Offset)
			}
		case *ast.MethodCallExpression:
			if node.Args != nil && node.Args.Span().Contains(tok.Offset) {
				return CallableForNode(sem, node, tok.Offset)
			}
		}
	}
	return nil, 0, false
}

// CallableForNode resolves the signature of a specific call node. The
// index is -1 when the node has no argument list at all, which happens
// for a method name that has not been called yet.
func CallableForNode(sem *analyzer.Semantics, node ast.Expression, offset int) (*analyzer.Callable, int, bool) {
	var callable *analyzer.Callable
	var args *ast.ArgList
	switch call := node.(type) {
	case *ast.CallExpression:
		if call.Function == nil {
			return nil, 0, false
		}
		calleeType := typesystem.Adjusted(sem.TypeOfExpr(call.Function))
		c, ok := sem.AsCallable(calleeType)
		if !ok {
			return nil, 0, false
		}
		callable = c
		args = call.Args
	case *ast.MethodCallExpression:
		c, ok := sem.ResolveMethodCallAsCallable(call)
		if !ok {
			return nil, 0, false
		}
		callable = c
		args = call.Args
	default:
		return nil, 0, false
	}
	if args == nil {
		return callable, -1, true
	}
	return callable, activeArgIndex(args, offset), true
}

// activeArgIndex counts the arguments that end at or before the
// position. The count is the slot being typed; it can exceed the
// argument count when the cursor sits after a trailing comma.
func activeArgIndex(args *ast.ArgList, offset int) int {
	idx := 0
	for _, arg := range args.Args {
		if arg.Span().End > offset {
			break
		}
		idx++
	}
	return idx
}
