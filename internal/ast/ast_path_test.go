package ast

import (
	"testing"

	"github.com/ferrite-lang/ferrite/internal/token"
)

func tok(lexeme string, offset int) token.Token {
	return token.Token{Type: token.IDENT, Lexeme: lexeme, Offset: offset, Line: 1, Column: offset + 1}
}

// buildCall constructs the tree for `foo(1, 2)` by hand.
func buildCall() (*Program, *CallExpression) {
	// foo(1, 2)
	// 0123456789
	callee := &Identifier{Token: tok("foo", 0), Name: "foo"}
	one := &IntegerLiteral{Token: token.Token{Type: token.INT, Lexeme: "1", Offset: 4}, Value: 1}
	two := &IntegerLiteral{Token: token.Token{Type: token.INT, Lexeme: "2", Offset: 7}, Value: 2}
	args := &ArgList{
		LParen:     token.Token{Type: token.LPAREN, Lexeme: "(", Offset: 3},
		Args:       []Expression{one, two},
		RParen:     token.Token{Type: token.RPAREN, Lexeme: ")", Offset: 8},
		Terminated: true,
	}
	call := &CallExpression{Token: args.LParen, Function: callee, Args: args}
	prog := &Program{Statements: []Statement{&ExpressionStatement{Token: callee.Token, Expression: call}}}
	return prog, call
}

func TestFindNodePath_Innermost(t *testing.T) {
	prog, call := buildCall()

	// Offset 7 is inside the literal 2.
	path := FindNodePath(prog, 7)
	if len(path) == 0 {
		t.Fatal("empty path")
	}
	last := path[len(path)-1]
	lit, ok := last.(*IntegerLiteral)
	if !ok || lit.Value != 2 {
		t.Fatalf("expected innermost node to be literal 2, got %T", last)
	}

	// The path must pass through the arg list and the call.
	var sawArgs, sawCall bool
	for _, n := range path {
		if n == call.Args {
			sawArgs = true
		}
		if n == call {
			sawCall = true
		}
	}
	if !sawArgs || !sawCall {
		t.Errorf("path misses call (%v) or arg list (%v)", sawCall, sawArgs)
	}
}

func TestFindNodePath_BetweenArguments(t *testing.T) {
	prog, call := buildCall()

	// Offset 5 is the comma: inside the arg list, not inside any arg.
	path := FindNodePath(prog, 5)
	last := path[len(path)-1]
	if last != Node(call.Args) {
		t.Fatalf("expected innermost node to be the arg list, got %T", last)
	}
}

func TestFindNodePath_OutsideRoot(t *testing.T) {
	prog, _ := buildCall()

	path := FindNodePath(prog, 100)
	if len(path) != 1 {
		t.Fatalf("expected only the root, got %d nodes", len(path))
	}
}

func TestSpanContains(t *testing.T) {
	s := Span{Start: 3, End: 9}
	if !s.Contains(3) {
		t.Error("span must contain its start")
	}
	if s.Contains(9) {
		t.Error("span must not contain its end (half-open)")
	}
	if s.Contains(2) || s.Contains(10) {
		t.Error("span must not contain outside offsets")
	}
}

func TestArgListSpan_Unterminated(t *testing.T) {
	al := &ArgList{
		LParen: token.Token{Type: token.LPAREN, Lexeme: "(", Offset: 3},
		EndOff: 10,
	}
	sp := al.Span()
	if sp.Start != 3 || sp.End != 10 {
		t.Errorf("expected span [3,10), got %+v", sp)
	}
}
