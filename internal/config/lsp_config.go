package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LSPConfigFileName is looked up in the workspace root.
const LSPConfigFileName = ".ferrite-lsp.yaml"

// LSPConfig tunes the language server. All fields are optional in the
// file; zero values fall back to defaults.
type LSPConfig struct {
	// LogRequests echoes every incoming JSON-RPC message to the log.
	LogRequests bool `yaml:"log_requests"`
	// MaxDocumentBytes rejects oversized didOpen/didChange payloads.
	MaxDocumentBytes int `yaml:"max_document_bytes"`
	// PublishDiagnostics can be switched off for clients that run their
	// own checker.
	PublishDiagnostics *bool `yaml:"publish_diagnostics"`
}

func DefaultLSPConfig() *LSPConfig {
	on := true
	return &LSPConfig{
		MaxDocumentBytes:   16 << 20,
		PublishDiagnostics: &on,
	}
}

// LoadLSPConfig reads the config file under rootPath. A missing file is
// not an error; defaults are returned.
func LoadLSPConfig(rootPath string) (*LSPConfig, error) {
	cfg := DefaultLSPConfig()
	data, err := os.ReadFile(filepath.Join(rootPath, LSPConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return DefaultLSPConfig(), err
	}
	if cfg.MaxDocumentBytes <= 0 {
		cfg.MaxDocumentBytes = 16 << 20
	}
	if cfg.PublishDiagnostics == nil {
		on := true
		cfg.PublishDiagnostics = &on
	}
	return cfg, nil
}
