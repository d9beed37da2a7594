package main

import (
	"strings"

	"github.com/ferrite-lang/ferrite/internal/analyzer"
	"github.com/ferrite-lang/ferrite/internal/ast"
	"github.com/ferrite-lang/ferrite/internal/lexer"
	"github.com/ferrite-lang/ferrite/internal/signature"
)

func (s *LanguageServer) handleSignatureHelp(id interface{}, params SignatureHelpParams) error {
	sem, content, ok := s.semanticsFor(params.TextDocument.URI)
	if !ok {
		return s.sendNullResult(id)
	}

	offset := positionToOffset(content, params.Position)
	tok, ok := lexer.TokenAt(content, offset)
	if !ok {
		return s.sendNullResult(id)
	}

	if callable, idx, ok := signature.CallableForToken(sem, tok); ok {
		help := callSignatureHelp(callable, idx)
		return s.sendResponse(ResponseMessage{Jsonrpc: "2.0", ID: id, Result: help})
	}

	if def, idx, ok := signature.GenericsForToken(sem, tok); ok {
		help := genericSignatureHelp(def, idx)
		return s.sendResponse(ResponseMessage{Jsonrpc: "2.0", ID: id, Result: help})
	}

	return s.sendNullResult(id)
}

func (s *LanguageServer) sendNullResult(id interface{}) error {
	return s.sendResponse(ResponseMessage{Jsonrpc: "2.0", ID: id, Result: nil})
}

func callSignatureHelp(callable *analyzer.Callable, idx int) *SignatureHelp {
	labels := make([]string, 0, len(callable.Params))
	infos := make([]ParameterInformation, 0, len(callable.Params))
	for _, p := range callable.Params {
		label := paramLabel(p)
		labels = append(labels, label)
		infos = append(infos, ParameterInformation{Label: label})
	}

	sigLabel := "fn(" + strings.Join(labels, ", ") + ")"
	if callable.Return != nil {
		sigLabel += " -> " + callable.Return.String()
	}

	help := &SignatureHelp{
		Signatures: []SignatureInformation{{
			Label:      sigLabel,
			Parameters: infos,
		}},
	}
	if idx >= 0 {
		help.ActiveParameter = &idx
	}
	return help
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

func genericSignatureHelp(def analyzer.GenericDef, idx int) *SignatureHelp {
	var labels []string
	var infos []ParameterInformation
	if gp := def.Params(); gp != nil {
		for _, p := range gp.Params {
			labels = append(labels, p.Name)
			infos = append(infos, ParameterInformation{Label: p.Name})
		}
	}

	help := &SignatureHelp{
		Signatures: []SignatureInformation{{
			Label:      def.Name() + "<" + strings.Join(labels, ", ") + ">",
			Parameters: infos,
		}},
		ActiveParameter: &idx,
	}
	return help
}
