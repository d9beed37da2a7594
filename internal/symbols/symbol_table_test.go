package symbols

import (
	"testing"

	"github.com/ferrite-lang/ferrite/internal/lexer"
	"github.com/ferrite-lang/ferrite/internal/parser"
)

func build(t *testing.T, input string) *Table {
	t.Helper()
	p := parser.New(lexer.Tokenize(input))
	return Build(p.ParseProgram())
}

const fixture = `
struct Point { x: Int, y: Int }
enum Shape { Circle(Float), Empty }
trait Show { fn show(&self) -> String; }
fn dist(a: Point, b: Point) -> Float { 0.0 }

impl Point {
	fn dist(&self, other: Point) -> Float { 0.0 }
	fn origin() -> Point { origin() }
	const DIM: Int = 2;
}
impl Show for Point {
	fn show(&self) -> String { "p" }
}

mod geometry {
	fn area(s: Shape) -> Float { 0.0 }
	mod deep { fn hidden() { } }
}
`

func TestResolvePath_TopLevel(t *testing.T) {
	table := build(t, fixture)

	res, ok := table.ResolvePath([]string{"Point"})
	if !ok || res.Kind != ResolvedStruct {
		t.Fatalf("Point: got kind %v, ok %v", res.Kind, ok)
	}

	res, ok = table.ResolvePath([]string{"dist"})
	if !ok || res.Kind != ResolvedFunction {
		t.Fatalf("dist: got kind %v, ok %v", res.Kind, ok)
	}
	if res.Function.HasSelf {
		t.Error("free dist must not have a receiver")
	}

	res, ok = table.ResolvePath([]string{"Show"})
	if !ok || res.Kind != ResolvedTrait {
		t.Fatalf("Show: got kind %v, ok %v", res.Kind, ok)
	}
}

func TestResolvePath_Variant(t *testing.T) {
	table := build(t, fixture)

	res, ok := table.ResolvePath([]string{"Shape", "Circle"})
	if !ok || res.Kind != ResolvedVariant {
		t.Fatalf("Shape::Circle: got kind %v, ok %v", res.Kind, ok)
	}
	if res.Variant.Enum.Name != "Shape" {
		t.Errorf("variant parent: got %q", res.Variant.Enum.Name)
	}
}

func TestResolvePath_AssocItems(t *testing.T) {
	table := build(t, fixture)

	res, ok := table.ResolvePath([]string{"Point", "origin"})
	if !ok || res.Kind != ResolvedAssocFunction {
		t.Fatalf("Point::origin: got kind %v, ok %v", res.Kind, ok)
	}
	if res.Function.HasSelf {
		t.Error("origin must not have a receiver")
	}

	res, ok = table.ResolvePath([]string{"Point", "dist"})
	if !ok || res.Kind != ResolvedAssocFunction {
		t.Fatalf("Point::dist: got kind %v, ok %v", res.Kind, ok)
	}
	if !res.Function.HasSelf {
		t.Error("method dist must have a receiver")
	}

	res, ok = table.ResolvePath([]string{"Point", "DIM"})
	if !ok || res.Kind != ResolvedAssocConst {
		t.Fatalf("Point::DIM: got kind %v, ok %v", res.Kind, ok)
	}
}

func TestResolvePath_TraitMethod(t *testing.T) {
	table := build(t, fixture)

	res, ok := table.ResolvePath([]string{"Show", "show"})
	if !ok || res.Kind != ResolvedAssocFunction {
		t.Fatalf("Show::show: got kind %v, ok %v", res.Kind, ok)
	}
}

func TestResolvePath_Modules(t *testing.T) {
	table := build(t, fixture)

	res, ok := table.ResolvePath([]string{"geometry"})
	if !ok || res.Kind != ResolvedModule {
		t.Fatalf("geometry: got kind %v, ok %v", res.Kind, ok)
	}

	res, ok = table.ResolvePath([]string{"geometry", "area"})
	if !ok || res.Kind != ResolvedFunction {
		t.Fatalf("geometry::area: got kind %v, ok %v", res.Kind, ok)
	}

	res, ok = table.ResolvePath([]string{"geometry", "deep", "hidden"})
	if !ok || res.Kind != ResolvedFunction {
		t.Fatalf("geometry::deep::hidden: got kind %v, ok %v", res.Kind, ok)
	}

	if _, ok := table.ResolvePath([]string{"geometry", "missing"}); ok {
		t.Error("geometry::missing must not resolve")
	}
}

func TestResolvePath_Builtin(t *testing.T) {
	table := build(t, fixture)

	res, ok := table.ResolvePath([]string{"Int"})
	if !ok || res.Kind != ResolvedBuiltinType {
		t.Fatalf("Int: got kind %v, ok %v", res.Kind, ok)
	}
	// Builtins only apply to single-segment paths.
	if _, ok := table.ResolvePath([]string{"geometry", "Int"}); ok {
		t.Error("geometry::Int must not resolve")
	}
}

func TestMethodOn_InherentBeatsTrait(t *testing.T) {
	input := `
struct Point { x: Int }
trait Show { fn render(&self) -> String; }
impl Show for Point { fn render(&self) -> String { "trait" } }
impl Point { fn render(&self) -> String { "inherent" } }
`
	table := build(t, input)

	fn, ok := table.MethodOn("Point", "render")
	if !ok {
		t.Fatal("render not found")
	}
	if fn.Trait != "" {
		t.Errorf("expected the inherent impl to win, got trait %q", fn.Trait)
	}
}

func TestMethodsOn(t *testing.T) {
	table := build(t, fixture)

	methods := table.MethodsOn("Point")
	if len(methods) != 3 {
		t.Fatalf("expected 3 associated functions on Point, got %d", len(methods))
	}
}
