package main

import (
	"log"

	"github.com/ferrite-lang/ferrite/internal/config"
)

func (s *LanguageServer) handleInitialize(id interface{}, params InitializeParams) error {
	log.Printf("Handling initialize request with ID: %v", id)

	if params.RootURI != nil && *params.RootURI != "" {
		s.rootPath = s.uriToPath(*params.RootURI)
	} else if params.RootPath != nil && *params.RootPath != "" {
		s.rootPath = *params.RootPath
	}

	if s.rootPath != "" {
		cfg, err := config.LoadLSPConfig(s.rootPath)
		if err != nil {
			log.Printf("Config load failed, using defaults: %v", err)
		}
		s.cfg = cfg
	}

	result := InitializeResult{
		Capabilities: ServerCapabilities{
			TextDocumentSync: 1, // Full sync
			SignatureHelpProvider: &SignatureHelpOptions{
				TriggerCharacters:   []string{"(", ",", "<"},
				RetriggerCharacters: []string{","},
			},
		},
	}

	response := ResponseMessage{
		Jsonrpc: "2.0",
		ID:      id,
		Result:  result,
	}

	log.Printf("Sending initialize response")
	return s.sendResponse(response)
}

func (s *LanguageServer) handleShutdown(id interface{}) error {
	response := ResponseMessage{
		Jsonrpc: "2.0",
		ID:      id,
		Result:  nil,
	}

	return s.sendResponse(response)
}
