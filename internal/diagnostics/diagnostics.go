package diagnostics

import (
	"fmt"

	"github.com/ferrite-lang/ferrite/internal/token"
)

type ErrorCode string

const (
	// Lexer
	ErrL001 ErrorCode = "L001" // illegal character

	// Parser
	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // unterminated delimiter
	ErrP003 ErrorCode = "P003" // expected identifier
	ErrP004 ErrorCode = "P004" // expected type
	ErrP005 ErrorCode = "P005" // malformed parameter

	// Analyzer
	ErrA001 ErrorCode = "A001" // unresolved name
	ErrA002 ErrorCode = "A002" // duplicate definition
)

// DiagnosticError is a coded diagnostic bound to the token where it was
// detected. It accumulates on the pipeline context; stages never abort.
type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	File    string
	Message string
}

func NewError(code ErrorCode, tok token.Token, format string, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code:    code,
		Token:   tok,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *DiagnosticError) Error() string {
	if e.Token.Line > 0 {
		return fmt.Sprintf("[%s] %d:%d: %s", e.Code, e.Token.Line, e.Token.Column, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}
