package parser

import (
	"github.com/ferrite-lang/ferrite/internal/pipeline"
)

// ParserProcessor builds ctx.AstRoot from ctx.TokenStream. Parse errors
// are appended to ctx.Errors; the (partial) AST is attached either way so
// downstream stages can work with incomplete code.
type ParserProcessor struct{}

func NewParserProcessor() *ParserProcessor {
	return &ParserProcessor{}
}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	p := New(ctx.TokenStream)
	ctx.AstRoot = p.ParseProgram()
	for _, err := range p.Errors() {
		err.File = ctx.FilePath
		ctx.Errors = append(ctx.Errors, err)
	}
	return ctx
}
