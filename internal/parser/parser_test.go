package parser

import (
	"testing"

	"github.com/ferrite-lang/ferrite/internal/ast"
	"github.com/ferrite-lang/ferrite/internal/lexer"
)

func parse(t *testing.T, input string) *ast.Program {
	t.Helper()
	p := New(lexer.Tokenize(input))
	prog := p.ParseProgram()
	if prog == nil {
		t.Fatal("ParseProgram returned nil")
	}
	return prog
}

func parseClean(t *testing.T, input string) *ast.Program {
	t.Helper()
	p := New(lexer.Tokenize(input))
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	return prog
}

func firstExpr(t *testing.T, prog *ast.Program) ast.Expression {
	t.Helper()
	if len(prog.Statements) == 0 {
		t.Fatal("program has no statements")
	}
	es, ok := prog.Statements[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("statement is %T, not expression", prog.Statements[0])
	}
	return es.Expression
}

func TestParseCallExpression(t *testing.T) {
	prog := parseClean(t, "add(1, 2, 3);")

	call, ok := firstExpr(t, prog).(*ast.CallExpression)
	if !ok {
		t.Fatalf("expected call expression")
	}
	if call.Args == nil || len(call.Args.Args) != 3 {
		t.Fatalf("expected 3 arguments, got %+v", call.Args)
	}
	if !call.Args.Terminated {
		t.Error("expected terminated argument list")
	}
	ident, ok := call.Function.(*ast.Identifier)
	if !ok || ident.Name != "add" {
		t.Errorf("expected callee add, got %v", call.Function)
	}
}

func TestParsePathCall(t *testing.T) {
	prog := parseClean(t, "geometry::Point::origin();")

	call, ok := firstExpr(t, prog).(*ast.CallExpression)
	if !ok {
		t.Fatalf("expected call expression")
	}
	path, ok := call.Function.(*ast.PathExpression)
	if !ok {
		t.Fatalf("expected path callee, got %T", call.Function)
	}
	names := path.SegmentNames()
	if len(names) != 3 || names[0] != "geometry" || names[2] != "origin" {
		t.Errorf("unexpected path segments: %v", names)
	}
}

func TestParseMethodCall(t *testing.T) {
	prog := parseClean(t, "p.dist(q);")

	mc, ok := firstExpr(t, prog).(*ast.MethodCallExpression)
	if !ok {
		t.Fatalf("expected method call")
	}
	if mc.Name == nil || mc.Name.Name != "dist" {
		t.Errorf("expected method dist, got %v", mc.Name)
	}
	if mc.Args == nil || len(mc.Args.Args) != 1 {
		t.Errorf("expected 1 argument, got %+v", mc.Args)
	}
}

func TestParseMethodCallWithoutArgList(t *testing.T) {
	prog := parse(t, "p.dist;")

	mc, ok := firstExpr(t, prog).(*ast.MethodCallExpression)
	if !ok {
		t.Fatalf("expected method call, got %T", firstExpr(t, prog))
	}
	if mc.Args != nil {
		t.Error("expected absent argument list, got one")
	}
}

func TestParseTurbofish(t *testing.T) {
	prog := parseClean(t, "identity::<Int>(1);")

	call, ok := firstExpr(t, prog).(*ast.CallExpression)
	if !ok {
		t.Fatalf("expected call expression")
	}
	path, ok := call.Function.(*ast.PathExpression)
	if !ok {
		t.Fatalf("expected path callee, got %T", call.Function)
	}
	gl := path.GenericArgs()
	if gl == nil {
		t.Fatal("expected generic arguments on path")
	}
	if len(gl.Args) != 1 || !gl.Terminated {
		t.Errorf("expected 1 terminated generic arg, got %+v", gl)
	}
}

func TestParseMethodTurbofish(t *testing.T) {
	prog := parseClean(t, "v.map::<Int>(f);")

	mc, ok := firstExpr(t, prog).(*ast.MethodCallExpression)
	if !ok {
		t.Fatalf("expected method call")
	}
	if mc.Generics == nil || len(mc.Generics.Args) != 1 {
		t.Fatalf("expected method turbofish, got %+v", mc.Generics)
	}
	if mc.Args == nil || len(mc.Args.Args) != 1 {
		t.Errorf("expected 1 argument after turbofish")
	}
}

func TestParseUnterminatedArgList(t *testing.T) {
	input := "fn main() { foo(1, }"
	p := New(lexer.Tokenize(input))
	prog := p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatal("expected parse errors for unterminated list")
	}

	fn, ok := prog.Statements[0].(*ast.FnDecl)
	if !ok || fn.Body == nil || len(fn.Body.Statements) == 0 {
		t.Fatalf("expected fn with body, got %+v", prog.Statements[0])
	}
	es := fn.Body.Statements[0].(*ast.ExpressionStatement)
	call := es.Expression.(*ast.CallExpression)
	if call.Args.Terminated {
		t.Error("expected unterminated argument list")
	}
	// The open span must run up to the token that stopped the list, so a
	// cursor after the comma is still inside it.
	commaOff := 17 // the ',' in "foo(1,"
	if !call.Args.Span().Contains(commaOff) {
		t.Errorf("open arg list span %+v does not cover offset %d", call.Args.Span(), commaOff)
	}
}

func TestParseUnterminatedGenericList(t *testing.T) {
	input := "let x = make::<Int, ;"
	p := New(lexer.Tokenize(input))
	prog := p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatal("expected parse errors")
	}

	let := prog.Statements[0].(*ast.LetStatement)
	path, ok := let.Value.(*ast.PathExpression)
	if !ok {
		t.Fatalf("expected path value, got %T", let.Value)
	}
	gl := path.GenericArgs()
	if gl == nil {
		t.Fatal("expected generic arg list")
	}
	if gl.Terminated {
		t.Error("expected unterminated generic list")
	}
	if len(gl.Args) != 1 {
		t.Errorf("expected 1 parsed generic arg, got %d", len(gl.Args))
	}
}

func TestParseFnDecl(t *testing.T) {
	prog := parseClean(t, "fn dist<T>(a: T, b: &T) -> Float { 0.0 }")

	fn, ok := prog.Statements[0].(*ast.FnDecl)
	if !ok {
		t.Fatalf("expected fn decl, got %T", prog.Statements[0])
	}
	if fn.Name.Name != "dist" {
		t.Errorf("expected name dist, got %q", fn.Name.Name)
	}
	if fn.Generics == nil || len(fn.Generics.Params) != 1 {
		t.Errorf("expected 1 generic param")
	}
	if len(fn.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(fn.Params))
	}
	if _, ok := fn.Params[1].Type.(*ast.RefType); !ok {
		t.Errorf("expected second param to be a reference type")
	}
	if fn.ReturnType == nil {
		t.Error("expected return type")
	}
}

func TestParseImplWithReceiver(t *testing.T) {
	input := "struct Point { x: Int, y: Int }\n" +
		"impl Point {\n" +
		"fn dist(&self, other: Point) -> Float { 0.0 }\n" +
		"fn origin() -> Point { origin() }\n" +
		"}"
	prog := parseClean(t, input)

	impl, ok := prog.Statements[1].(*ast.ImplDecl)
	if !ok {
		t.Fatalf("expected impl decl, got %T", prog.Statements[1])
	}
	if impl.SelfType == nil || impl.SelfType.Name() != "Point" {
		t.Fatalf("expected impl Point")
	}
	if len(impl.Items) != 2 {
		t.Fatalf("expected 2 impl items, got %d", len(impl.Items))
	}
	dist := impl.Items[0].(*ast.FnDecl)
	if len(dist.Params) != 2 || !dist.Params[0].IsSelf {
		t.Errorf("expected dist to have a receiver and one param")
	}
	origin := impl.Items[1].(*ast.FnDecl)
	if len(origin.Params) != 0 {
		t.Errorf("expected origin to have no params")
	}
}

func TestParseTraitImpl(t *testing.T) {
	input := "trait Show { fn show(&self) -> String; }\n" +
		"impl Show for Point { fn show(&self) -> String { \"p\" } }"
	prog := parseClean(t, input)

	impl, ok := prog.Statements[1].(*ast.ImplDecl)
	if !ok {
		t.Fatalf("expected impl decl, got %T", prog.Statements[1])
	}
	if impl.Trait == nil || impl.Trait.Name() != "Show" {
		t.Errorf("expected trait Show")
	}
	if impl.SelfType == nil || impl.SelfType.Name() != "Point" {
		t.Errorf("expected self type Point")
	}
}

func TestParseEnumDecl(t *testing.T) {
	prog := parseClean(t, "enum Shape { Circle(Float), Rect(Float, Float), Empty }")

	en, ok := prog.Statements[0].(*ast.EnumDecl)
	if !ok {
		t.Fatalf("expected enum decl")
	}
	if len(en.Variants) != 3 {
		t.Fatalf("expected 3 variants, got %d", len(en.Variants))
	}
	if len(en.Variants[1].Params) != 2 {
		t.Errorf("expected Rect payload of 2, got %d", len(en.Variants[1].Params))
	}
	if len(en.Variants[2].Params) != 0 {
		t.Errorf("expected Empty to carry no payload")
	}
}

func TestParseNestedModules(t *testing.T) {
	prog := parseClean(t, "mod outer { mod inner { fn f() { } } }")

	outer, ok := prog.Statements[0].(*ast.ModDecl)
	if !ok {
		t.Fatalf("expected mod decl")
	}
	inner, ok := outer.Items[0].(*ast.ModDecl)
	if !ok {
		t.Fatalf("expected nested mod")
	}
	if _, ok := inner.Items[0].(*ast.FnDecl); !ok {
		t.Errorf("expected fn inside inner mod")
	}
}

func TestParserNeverAborts(t *testing.T) {
	inputs := []string{
		"fn",
		"fn main( {",
		"let = ;",
		"impl { }",
		"foo(bar(baz(",
		"x.",
		"::<",
	}
	for _, input := range inputs {
		p := New(lexer.Tokenize(input))
		prog := p.ParseProgram()
		if prog == nil {
			t.Errorf("input %q: nil program", input)
		}
	}
}
