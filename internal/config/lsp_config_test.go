package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadLSPConfig_MissingFile(t *testing.T) {
	cfg, err := LoadLSPConfig(t.TempDir())
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.MaxDocumentBytes != 16<<20 {
		t.Errorf("MaxDocumentBytes = %d, want default", cfg.MaxDocumentBytes)
	}
	if cfg.PublishDiagnostics == nil || !*cfg.PublishDiagnostics {
		t.Error("diagnostics should default to on")
	}
}

func TestLoadLSPConfig_File(t *testing.T) {
	dir := t.TempDir()
	content := "log_requests: true\nmax_document_bytes: 1024\npublish_diagnostics: false\n"
	if err := os.WriteFile(filepath.Join(dir, LSPConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLSPConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.LogRequests {
		t.Error("log_requests not applied")
	}
	if cfg.MaxDocumentBytes != 1024 {
		t.Errorf("MaxDocumentBytes = %d, want 1024", cfg.MaxDocumentBytes)
	}
	if cfg.PublishDiagnostics == nil || *cfg.PublishDiagnostics {
		t.Error("publish_diagnostics: false not applied")
	}
}

func TestLoadLSPConfig_BadYaml(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, LSPConfigFileName), []byte(":\t not yaml ["), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLSPConfig(dir)
	if err == nil {
		t.Error("expected a parse error")
	}
	if cfg == nil || cfg.MaxDocumentBytes != 16<<20 {
		t.Error("bad config should fall back to defaults")
	}
}
