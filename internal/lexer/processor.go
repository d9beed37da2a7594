package lexer

import (
	"github.com/ferrite-lang/ferrite/internal/pipeline"
)

// LexerProcessor tokenizes ctx.Source into ctx.TokenStream.
type LexerProcessor struct{}

func NewLexerProcessor() *LexerProcessor {
	return &LexerProcessor{}
}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	ctx.TokenStream = Tokenize(ctx.Source)
	return ctx
}
