package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func parseLSPOutput(t *testing.T, output string) string {
	parts := strings.SplitN(output, "\r\n\r\n", 2)
	if len(parts) != 2 {
		t.Fatalf("Invalid LSP output format (header/body split failed): %q", output)
	}
	return parts[1]
}

func setupServer(t *testing.T, uri, code string) (*LanguageServer, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	server := NewLanguageServer(buf)

	didOpenParams := DidOpenTextDocumentParams{
		TextDocument: TextDocumentItem{
			URI:        uri,
			LanguageID: "ferrite",
			Version:    1,
			Text:       code,
		},
	}
	if err := server.handleDidOpen(didOpenParams); err != nil {
		t.Fatalf("handleDidOpen failed: %v", err)
	}
	buf.Reset() // Clear diagnostics output
	return server, buf
}

func signatureHelpAt(t *testing.T, server *LanguageServer, buf *bytes.Buffer, uri string, line, char int) *SignatureHelp {
	t.Helper()
	params := SignatureHelpParams{
		TextDocument: TextDocumentIdentifier{URI: uri},
		Position:     Position{Line: line, Character: char},
	}
	if err := server.handleSignatureHelp(1, params); err != nil {
		t.Fatalf("handleSignatureHelp failed: %v", err)
	}

	body := parseLSPOutput(t, buf.String())
	buf.Reset()
	var resp ResponseMessage
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Result == nil {
		return nil
	}

	resBytes, _ := json.Marshal(resp.Result)
	var help SignatureHelp
	if err := json.Unmarshal(resBytes, &help); err != nil {
		t.Fatalf("result is not signature help: %s", resBytes)
	}
	return &help
}

func TestLSP_SignatureHelp_Call(t *testing.T) {
	uri := "file:///test.fe"
	code := "fn dist(a: Int, b: Int) -> Float {\n" +
		"0.0\n" +
		"}\n" +
		"fn main() {\n" +
		"dist(1, 2);\n" +
		"}"
	server, buf := setupServer(t, uri, code)

	// Cursor on '2' (Line 4, Char 8)
	help := signatureHelpAt(t, server, buf, uri, 4, 8)
	if help == nil {
		t.Fatal("expected signature help, got null")
	}
	if len(help.Signatures) != 1 {
		t.Fatalf("got %d signatures, want 1", len(help.Signatures))
	}
	label := help.Signatures[0].Label
	if !strings.Contains(label, "a: Int") || !strings.Contains(label, "-> Float") {
		t.Errorf("unexpected label: %s", label)
	}
	if help.ActiveParameter == nil || *help.ActiveParameter != 1 {
		t.Errorf("activeParameter = %v, want 1", help.ActiveParameter)
	}
}

func TestLSP_SignatureHelp_MethodCall(t *testing.T) {
	uri := "file:///method.fe"
	code := "struct Point { x: Int }\n" +
		"impl Point {\n" +
		"fn dist(&self, other: Point) -> Float { 0.0 }\n" +
		"}\n" +
		"fn main() {\n" +
		"let p: Point = q;\n" +
		"p.dist(p);\n" +
		"}"
	server, buf := setupServer(t, uri, code)

	// Cursor on the argument 'p' (Line 6, Char 7)
	help := signatureHelpAt(t, server, buf, uri, 6, 7)
	if help == nil {
		t.Fatal("expected signature help, got null")
	}
	label := help.Signatures[0].Label
	if strings.Contains(label, "self") {
		t.Errorf("dot call label must not list the receiver: %s", label)
	}
	if !strings.Contains(label, "other: Point") {
		t.Errorf("unexpected label: %s", label)
	}
}

func TestLSP_SignatureHelp_Generics(t *testing.T) {
	uri := "file:///generics.fe"
	code := "fn identity<T>(x: T) -> T {\n" +
		"x\n" +
		"}\n" +
		"fn main() {\n" +
		"identity::<Int>(1);\n" +
		"}"
	server, buf := setupServer(t, uri, code)

	// Cursor on 'Int' inside the turbofish (Line 4, Char 11)
	help := signatureHelpAt(t, server, buf, uri, 4, 11)
	if help == nil {
		t.Fatal("expected signature help, got null")
	}
	if got := help.Signatures[0].Label; got != "identity<T>" {
		t.Errorf("label = %q, want identity<T>", got)
	}
	if help.ActiveParameter == nil || *help.ActiveParameter != 0 {
		t.Errorf("activeParameter = %v, want 0", help.ActiveParameter)
	}
}

func TestLSP_SignatureHelp_NullOutsideCall(t *testing.T) {
	uri := "file:///null.fe"
	code := "fn main() {\n" +
		"let x = 1;\n" +
		"}"
	server, buf := setupServer(t, uri, code)

	if help := signatureHelpAt(t, server, buf, uri, 1, 4); help != nil {
		t.Errorf("expected null result, got %+v", help)
	}
}

func TestLSP_PublishDiagnosticsOnOpen(t *testing.T) {
	uri := "file:///broken.fe"
	code := "fn main() {\n" +
		"dist(1,\n" +
		"}"

	buf := new(bytes.Buffer)
	server := NewLanguageServer(buf)
	err := server.handleDidOpen(DidOpenTextDocumentParams{
		TextDocument: TextDocumentItem{URI: uri, LanguageID: "ferrite", Version: 1, Text: code},
	})
	if err != nil {
		t.Fatalf("handleDidOpen failed: %v", err)
	}

	body := parseLSPOutput(t, buf.String())
	if !strings.Contains(body, "textDocument/publishDiagnostics") {
		t.Fatalf("expected a diagnostics notification, got: %s", body)
	}
	if !strings.Contains(body, "P002") {
		t.Errorf("expected an unterminated-list diagnostic, got: %s", body)
	}
}

func TestLSP_DidChangeReanalyzes(t *testing.T) {
	uri := "file:///change.fe"
	server, buf := setupServer(t, uri, "fn main() {\n}")

	newCode := "fn dist(a: Int, b: Int) -> Float {\n" +
		"0.0\n" +
		"}\n" +
		"fn main() {\n" +
		"dist(1, 2);\n" +
		"}"
	err := server.handleDidChange(DidChangeTextDocumentParams{
		TextDocument:   VersionedTextDocumentIdentifier{URI: uri, Version: 2},
		ContentChanges: []TextDocumentContentChangeEvent{{Text: newCode}},
	})
	if err != nil {
		t.Fatalf("handleDidChange failed: %v", err)
	}
	buf.Reset()

	help := signatureHelpAt(t, server, buf, uri, 4, 8)
	if help == nil {
		t.Fatal("expected signature help after the change")
	}
	if help.ActiveParameter == nil || *help.ActiveParameter != 1 {
		t.Errorf("activeParameter = %v, want 1", help.ActiveParameter)
	}
}

func TestLSP_DidCloseDropsDocument(t *testing.T) {
	uri := "file:///close.fe"
	server, buf := setupServer(t, uri, "fn main() {\n}")

	if err := server.handleDidClose(DidCloseTextDocumentParams{
		TextDocument: TextDocumentIdentifier{URI: uri},
	}); err != nil {
		t.Fatalf("handleDidClose failed: %v", err)
	}

	if help := signatureHelpAt(t, server, buf, uri, 0, 0); help != nil {
		t.Error("a closed document should yield a null result")
	}
}
