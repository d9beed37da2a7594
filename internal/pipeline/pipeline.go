package pipeline

import (
	"github.com/google/uuid"

	"github.com/ferrite-lang/ferrite/internal/ast"
	"github.com/ferrite-lang/ferrite/internal/diagnostics"
	"github.com/ferrite-lang/ferrite/internal/token"
)

// PipelineContext carries one source snapshot through the stages.
// SnapshotID identifies the analysis run in logs; a fresh ID is minted
// per (re)analysis so concurrent queries over different snapshots can be
// told apart.
type PipelineContext struct {
	SnapshotID  uuid.UUID
	Source      string
	FilePath    string
	TokenStream []token.Token
	AstRoot     *ast.Program
	Semantics   interface{} // *analyzer.Semantics, attached by the analyzer stage
	Errors      []*diagnostics.DiagnosticError
}

func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{
		SnapshotID: uuid.New(),
		Source:     source,
	}
}

// Processor is a single pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		// Continue on errors to collect diagnostics from all stages
		// (the LSP needs both parse and semantic errors).
	}
	return ctx
}
