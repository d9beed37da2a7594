package analyzer

import (
	"github.com/ferrite-lang/ferrite/internal/pipeline"
)

// SemanticAnalyzerProcessor attaches a Semantics instance to the
// context. It runs even over error-carrying ASTs; queries degrade to
// "no answer" on the broken parts.
type SemanticAnalyzerProcessor struct{}

func NewSemanticAnalyzerProcessor() *SemanticAnalyzerProcessor {
	return &SemanticAnalyzerProcessor{}
}

func (sp *SemanticAnalyzerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil {
		return ctx
	}
	ctx.Semantics = NewSemantics(ctx.AstRoot)
	return ctx
}
