package main

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/ferrite-lang/ferrite/internal/analyzer"
	"github.com/ferrite-lang/ferrite/internal/lexer"
	"github.com/ferrite-lang/ferrite/internal/parser"
	"github.com/ferrite-lang/ferrite/internal/pipeline"
)

// DocumentState stores the state of a single open document
type DocumentState struct {
	Content string                    // Current file content
	Context *pipeline.PipelineContext // Result of the last analysis (AST, symbols, semantics)
	Mu      sync.RWMutex              // Mutex to protect access to state
}

func (s *LanguageServer) handleDidOpen(params DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	content := params.TextDocument.Text

	if len(content) > s.cfg.MaxDocumentBytes {
		log.Printf("Refusing oversized document %s (%d bytes)", uri, len(content))
		return nil
	}

	docState := &DocumentState{
		Content: content,
	}

	finalCtx := s.analyzeDocument(content, uri)
	docState.Context = finalCtx

	s.mu.Lock()
	s.documents[uri] = docState
	s.mu.Unlock()

	log.Printf("Opened file: %s (snapshot %s)", uri, finalCtx.SnapshotID)

	return s.publishDiagnostics(uri, finalCtx)
}

func (s *LanguageServer) handleDidChange(params DidChangeTextDocumentParams) error {
	// Full content sync (TextDocumentSyncKind.Full)
	if len(params.ContentChanges) == 0 {
		return nil
	}
	uri := params.TextDocument.URI
	newContent := params.ContentChanges[0].Text

	if len(newContent) > s.cfg.MaxDocumentBytes {
		log.Printf("Refusing oversized change for %s (%d bytes)", uri, len(newContent))
		return nil
	}

	s.mu.RLock()
	docState, exists := s.documents[uri]
	s.mu.RUnlock()

	if !exists {
		return fmt.Errorf("document %s not found", uri)
	}

	finalCtx := s.analyzeDocument(newContent, uri)

	docState.Mu.Lock()
	docState.Content = newContent
	docState.Context = finalCtx
	docState.Mu.Unlock()

	log.Printf("Changed file: %s (snapshot %s)", uri, finalCtx.SnapshotID)

	return s.publishDiagnostics(uri, finalCtx)
}

func (s *LanguageServer) handleDidClose(params DidCloseTextDocumentParams) error {
	s.mu.Lock()
	delete(s.documents, params.TextDocument.URI)
	s.mu.Unlock()
	log.Printf("Closed file: %s", params.TextDocument.URI)
	return nil
}

func (s *LanguageServer) analyzeDocument(content string, uri string) *pipeline.PipelineContext {
	ctx := pipeline.NewPipelineContext(content)
	ctx.FilePath = s.uriToPath(uri)

	// lexer -> parser -> analyzer
	processingPipeline := pipeline.New(
		lexer.NewLexerProcessor(),
		parser.NewParserProcessor(),
		analyzer.NewSemanticAnalyzerProcessor(),
	)

	return processingPipeline.Run(ctx)
}

// semanticsFor returns the analyzed state of an open document.
func (s *LanguageServer) semanticsFor(uri string) (*analyzer.Semantics, string, bool) {
	s.mu.RLock()
	docState, exists := s.documents[uri]
	s.mu.RUnlock()
	if !exists {
		return nil, "", false
	}

	docState.Mu.RLock()
	defer docState.Mu.RUnlock()
	if docState.Context == nil {
		return nil, "", false
	}
	sem, ok := docState.Context.Semantics.(*analyzer.Semantics)
	if !ok || sem == nil {
		return nil, "", false
	}
	return sem, docState.Content, true
}

func (s *LanguageServer) uriToPath(uri string) string {
	if strings.HasPrefix(uri, "file://") {
		return strings.TrimPrefix(uri, "file://")
	}
	return uri
}
