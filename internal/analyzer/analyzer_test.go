package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferrite-lang/ferrite/internal/ast"
	"github.com/ferrite-lang/ferrite/internal/lexer"
	"github.com/ferrite-lang/ferrite/internal/parser"
	"github.com/ferrite-lang/ferrite/internal/symbols"
	"github.com/ferrite-lang/ferrite/internal/typesystem"
)

func analyze(t *testing.T, input string) *Semantics {
	t.Helper()
	p := parser.New(lexer.Tokenize(input))
	return NewSemantics(p.ParseProgram())
}

// exprIn digs the nth statement out of the named function's body.
func exprIn(t *testing.T, sem *Semantics, fnName string, n int) ast.Expression {
	t.Helper()
	for _, stmt := range sem.Prog.Statements {
		fn, ok := stmt.(*ast.FnDecl)
		if !ok || fn.Name == nil || fn.Name.Name != fnName {
			continue
		}
		require.NotNil(t, fn.Body)
		require.Greater(t, len(fn.Body.Statements), n)
		es, ok := fn.Body.Statements[n].(*ast.ExpressionStatement)
		require.True(t, ok, "statement %d of %s is %T", n, fnName, fn.Body.Statements[n])
		return es.Expression
	}
	t.Fatalf("function %s not found", fnName)
	return nil
}

func TestTypeOfExpr_Literals(t *testing.T) {
	sem := analyze(t, `fn main() { 1; 1.5; "s"; true; }`)

	assert.Equal(t, "Int", sem.TypeOfExpr(exprIn(t, sem, "main", 0)).String())
	assert.Equal(t, "Float", sem.TypeOfExpr(exprIn(t, sem, "main", 1)).String())
	assert.Equal(t, "String", sem.TypeOfExpr(exprIn(t, sem, "main", 2)).String())
	assert.Equal(t, "Bool", sem.TypeOfExpr(exprIn(t, sem, "main", 3)).String())
}

func TestTypeOfExpr_Locals(t *testing.T) {
	sem := analyze(t, `
fn main() {
	let x = 1;
	let p: Point = mk();
	x;
	p;
}
struct Point { x: Int }
fn mk() -> Point { mk() }
`)

	assert.Equal(t, "Int", sem.TypeOfExpr(exprIn(t, sem, "main", 2)).String())
	assert.Equal(t, "Point", sem.TypeOfExpr(exprIn(t, sem, "main", 3)).String())
}

func TestTypeOfExpr_SelfReferentialLet(t *testing.T) {
	// The initializer must not see the binding it defines, or typing
	// `x` would never terminate.
	sem := analyze(t, `
fn main() {
	let x = x;
	x;
}
`)

	assert.Equal(t, "?", sem.TypeOfExpr(exprIn(t, sem, "main", 1)).String())
}

func TestTypeOfExpr_ShadowingLetSeesEarlierBinding(t *testing.T) {
	sem := analyze(t, `
fn main() {
	let x = 1;
	let x = x;
	x;
}
`)

	assert.Equal(t, "Int", sem.TypeOfExpr(exprIn(t, sem, "main", 2)).String())
}

func TestTypeOfExpr_CallReturnsDeclaredType(t *testing.T) {
	sem := analyze(t, `
fn dist(a: Int, b: Int) -> Float { 0.0 }
fn main() { dist(1, 2); }
`)

	assert.Equal(t, "Float", sem.TypeOfExpr(exprIn(t, sem, "main", 0)).String())
}

func TestTypeOfExpr_RefAdjustment(t *testing.T) {
	sem := analyze(t, `
fn main() {
	let x = 1;
	&x;
}
`)

	typ := sem.TypeOfExpr(exprIn(t, sem, "main", 1))
	assert.Equal(t, "&Int", typ.String())
	assert.Equal(t, "Int", typesystem.Adjusted(typ).String())
}

func TestAsCallable_DirectFunctionHasPatterns(t *testing.T) {
	sem := analyze(t, `
fn dist(a: Int, b: Int) -> Float { 0.0 }
fn main() { dist; }
`)

	typ := sem.TypeOfExpr(exprIn(t, sem, "main", 0))
	callable, ok := sem.AsCallable(typesystem.Adjusted(typ))
	require.True(t, ok)
	require.Len(t, callable.Params, 2)

	first, ok := callable.Params[0].Pattern.(*ast.IdentifierPattern)
	require.True(t, ok, "expected a named pattern")
	assert.Equal(t, "a", first.Name)
	assert.Equal(t, "Int", callable.Params[0].Type.String())
	assert.Equal(t, "Float", callable.Return.String())
}

func TestAsCallable_FnTypedLocalDropsPatterns(t *testing.T) {
	sem := analyze(t, `
fn dist(a: Int, b: Int) -> Float { 0.0 }
fn main() {
	let f = dist;
	f;
}
`)

	typ := sem.TypeOfExpr(exprIn(t, sem, "main", 1))
	callable, ok := sem.AsCallable(typesystem.Adjusted(typ))
	require.True(t, ok)
	require.Len(t, callable.Params, 2)

	assert.Nil(t, callable.Params[0].Pattern, "a binding's signature must not carry the definition's patterns")
	assert.Equal(t, "Int", callable.Params[0].Type.String())
}

func TestAsCallable_NonFunction(t *testing.T) {
	sem := analyze(t, `fn main() { 1; }`)

	_, ok := sem.AsCallable(typesystem.TCon{Name: "Int"})
	assert.False(t, ok)
}

func TestResolveMethodCall(t *testing.T) {
	sem := analyze(t, `
struct Point { x: Int }
impl Point {
	fn dist(&self, other: Point) -> Float { 0.0 }
	fn origin() -> Point { origin() }
}
fn main() {
	let p: Point = Point::origin();
	p.dist(p);
}
`)

	mc, ok := exprIn(t, sem, "main", 1).(*ast.MethodCallExpression)
	require.True(t, ok)

	fn, ok := sem.ResolveMethodCall(mc)
	require.True(t, ok)
	assert.Equal(t, "dist", fn.Name)
	assert.True(t, fn.HasSelf)
}

func TestResolveMethodCall_AssociatedWithoutReceiver(t *testing.T) {
	sem := analyze(t, `
struct Point { x: Int }
impl Point { fn origin() -> Point { origin() } }
fn main() {
	let p: Point = Point::origin();
	p.origin();
}
`)

	mc := exprIn(t, sem, "main", 1).(*ast.MethodCallExpression)
	_, ok := sem.ResolveMethodCall(mc)
	assert.False(t, ok, "dot syntax must not reach receiverless functions")
}

func TestResolveMethodCall_ThroughReference(t *testing.T) {
	sem := analyze(t, `
struct Point { x: Int }
impl Point { fn dist(&self, other: Point) -> Float { 0.0 } }
fn use_it(p: &Point) { p.dist(p); }
`)

	mc := exprIn(t, sem, "use_it", 0).(*ast.MethodCallExpression)
	fn, ok := sem.ResolveMethodCall(mc)
	require.True(t, ok, "receiver adjustment must strip the reference")
	assert.Equal(t, "dist", fn.Name)
}

func TestResolveMethodCallAsCallable_ExcludesReceiver(t *testing.T) {
	sem := analyze(t, `
struct Point { x: Int }
impl Point { fn dist(&self, other: Point) -> Float { 0.0 } }
fn main() {
	let p: Point = p;
	p.dist(p);
}
`)

	mc := exprIn(t, sem, "main", 1).(*ast.MethodCallExpression)
	callable, ok := sem.ResolveMethodCallAsCallable(mc)
	require.True(t, ok)
	require.Len(t, callable.Params, 1, "the receiver is consumed by the dot syntax")
	assert.False(t, callable.Params[0].Receiver)
}

func TestResolvePath_LocalShadowsFunction(t *testing.T) {
	sem := analyze(t, `
fn dist(a: Int) -> Int { a }
fn main() {
	let dist = 1;
	dist;
}
`)

	ident, ok := exprIn(t, sem, "main", 1).(*ast.Identifier)
	require.True(t, ok)
	pe := &ast.PathExpression{
		Token:    ident.Token,
		Segments: []*ast.PathSegment{{Name: ident}},
	}
	res, ok := sem.ResolvePath(pe)
	require.True(t, ok)
	assert.Equal(t, symbols.ResolvedLocal, res.Kind)
}

func TestResolvePath_SelfQualified(t *testing.T) {
	sem := analyze(t, `
struct Point { x: Int }
impl Point {
	fn origin() -> Point { Self::origin(); origin() }
}
`)

	var inner *ast.PathExpression
	impl := sem.Prog.Statements[1].(*ast.ImplDecl)
	fn := impl.Items[0].(*ast.FnDecl)
	es := fn.Body.Statements[0].(*ast.ExpressionStatement)
	call := es.Expression.(*ast.CallExpression)
	inner = call.Function.(*ast.PathExpression)

	res, ok := sem.ResolvePath(inner)
	require.True(t, ok)
	assert.Equal(t, symbols.ResolvedAssocFunction, res.Kind)
	assert.Equal(t, "origin", res.Function.Name)
}

func TestResolveNamedType_TypeParam(t *testing.T) {
	sem := analyze(t, `fn identity<T>(x: T) -> T { x }`)

	fn := sem.Prog.Statements[0].(*ast.FnDecl)
	nt := fn.Params[0].Type.(*ast.NamedType)

	res, ok := sem.ResolveNamedType(nt)
	require.True(t, ok)
	assert.Equal(t, symbols.ResolvedTypeParam, res.Kind)
}

func TestVariantConstructorType(t *testing.T) {
	sem := analyze(t, `
enum Shape { Circle(Float), Empty }
fn main() { Shape::Circle; Shape::Empty; }
`)

	ctor := sem.TypeOfExpr(exprIn(t, sem, "main", 0))
	ft, ok := ctor.(*typesystem.TFunc)
	require.True(t, ok, "payload variant resolves to a constructor type")
	require.Len(t, ft.Params, 1)
	assert.Equal(t, "Shape", ft.Return.String())

	plain := sem.TypeOfExpr(exprIn(t, sem, "main", 1))
	assert.Equal(t, "Shape", plain.String(), "payloadless variant is a value of the enum")
}
