// sigq answers "which parameter is the cursor on" from the command
// line: point it at a source file and a position and it prints the
// enclosing call signature with the active slot marked. Output is
// colorized when stdout is a terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/ferrite-lang/ferrite/internal/analyzer"
	"github.com/ferrite-lang/ferrite/internal/ast"
	"github.com/ferrite-lang/ferrite/internal/lexer"
	"github.com/ferrite-lang/ferrite/internal/parser"
	"github.com/ferrite-lang/ferrite/internal/pipeline"
	"github.com/ferrite-lang/ferrite/internal/signature"
)

const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorCyan  = "\033[36m"
	colorRed   = "\033[31m"
)

func main() {
	offsetFlag := flag.Int("offset", -1, "byte offset of the cursor (alternative to line:col)")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		usage()
		os.Exit(2)
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sigq: %v\n", err)
		os.Exit(1)
	}
	content := string(data)

	offset := *offsetFlag
	if offset < 0 {
		if len(args) < 2 {
			usage()
			os.Exit(2)
		}
		offset, err = parsePosition(content, args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "sigq: %v\n", err)
			os.Exit(2)
		}
	}

	ctx := pipeline.NewPipelineContext(content)
	ctx.FilePath = path
	final := pipeline.New(
		lexer.NewLexerProcessor(),
		parser.NewParserProcessor(),
		analyzer.NewSemanticAnalyzerProcessor(),
	).Run(ctx)

	sem, ok := final.Semantics.(*analyzer.Semantics)
	if !ok {
		fmt.Fprintln(os.Stderr, "sigq: analysis produced no semantics")
		os.Exit(1)
	}

	tok, ok := lexer.TokenAt(content, offset)
	if !ok {
		fmt.Println("no token at position")
		return
	}

	color := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	if callable, idx, ok := signature.CallableForToken(sem, tok); ok {
		printCallable(callable, idx, color)
		if ap, ok := signature.ActiveParameterAt(sem, tok); ok {
			printActiveParameter(ap, color)
		}
		return
	}
	if def, idx, ok := signature.GenericsForToken(sem, tok); ok {
		printGenerics(def, idx, color)
		return
	}
	fmt.Println("no call or generic argument list at position")
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: sigq [-offset N] <file.fe> [line:col]")
	fmt.Fprintln(os.Stderr, "  line and col are 1-based")
}

// parsePosition converts a 1-based "line:col" into a byte offset.
func parsePosition(content, arg string) (int, error) {
	line, col, ok := strings.Cut(arg, ":")
	if !ok {
		return 0, fmt.Errorf("position %q is not line:col", arg)
	}
	l, err := strconv.Atoi(line)
	if err != nil || l < 1 {
		return 0, fmt.Errorf("bad line in %q", arg)
	}
	c, err := strconv.Atoi(col)
	if err != nil || c < 1 {
		return 0, fmt.Errorf("bad column in %q", arg)
	}

	cur := 1
	offset := 0
	for cur < l && offset < len(content) {
		if content[offset] == '\n' {
			cur++
		}
		offset++
	}
	if cur != l {
		return 0, fmt.Errorf("line %d past end of file", l)
	}
	return offset + c - 1, nil
}

func printCallable(callable *analyzer.Callable, idx int, color bool) {
	parts := make([]string, 0, len(callable.Params))
	for i, p := range callable.Params {
		label := paramLabel(p)
		if i == idx && color {
			label = colorBold + colorCyan + label + colorReset
		} else if i == idx {
			label = "[" + label + "]"
		}
		parts = append(parts, label)
	}
	ret := ""
	if callable.Return != nil {
		ret = " -> " + callable.Return.String()
	}
	fmt.Printf("fn(%s)%s\n", strings.Join(parts, ", "), ret)
	if idx >= len(callable.Params) {
		warn := "cursor is past the last parameter"
		if color {
			warn = colorRed + warn + colorReset
		}
		fmt.Println(warn)
	}
}

func printActiveParameter(ap *signature.ActiveParameter, color bool) {
	name := "_"
	if ident, ok := ap.Ident(); ok {
		name = ident.Name
	} else if ap.Receiver {
		name = "self"
	}
	typeStr := "?"
	if ap.Type != nil {
		typeStr = ap.Type.String()
	}
	if color {
		fmt.Printf("active: %s%s%s: %s\n", colorBold, name, colorReset, typeStr)
	} else {
		fmt.Printf("active: %s: %s\n", name, typeStr)
	}
}

func printGenerics(def analyzer.GenericDef, idx int, color bool) {
	var names []string
	if gp := def.Params(); gp != nil {
		for _, p := range gp.Params {
			names = append(names, p.Name)
		}
	}
	for i := range names {
		if i != idx {
			continue
		}
		if color {
			names[i] = colorBold + colorCyan + names[i] + colorReset
		} else {
			names[i] = "[" + names[i] + "]"
		}
	}
	fmt.Printf("%s<%s> (arg %d)\n", def.Name(), strings.Join(names, ", "), idx)
}

func paramLabel(p analyzer.CallableParam) string {
	if p.Receiver {
		return "self"
	}
	typeStr := "?"
	if p.Type != nil {
		typeStr = p.Type.String()
	}
	if ident, ok := p.Pattern.(*ast.IdentifierPattern); ok {
		return ident.Name + ": " + typeStr
	}
	return typeStr
}
