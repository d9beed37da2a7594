package token

// TokenType discriminates tokens by their syntactic role.
type TokenType string

// Token is one lexeme with its position in the source text. Offset is
// the byte index of the first character; Line and Column are 1-based
// and only used for reporting.
type Token struct {
	Type   TokenType
	Lexeme string
	Offset int
	Line   int
	Column int
}

// End is the byte offset just past the lexeme.
func (t Token) End() int { return t.Offset + len(t.Lexeme) }

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers and literals
	IDENT      TokenType = "IDENT"
	INT        TokenType = "INT"
	FLOAT      TokenType = "FLOAT"
	STRING     TokenType = "STRING"
	UNDERSCORE TokenType = "UNDERSCORE"

	// Operators
	ASSIGN  TokenType = "="
	PLUS    TokenType = "+"
	MINUS   TokenType = "-"
	STAR    TokenType = "*"
	SLASH   TokenType = "/"
	PERCENT TokenType = "%"
	AMP     TokenType = "&"
	BANG    TokenType = "!"

	EQ     TokenType = "=="
	NOT_EQ TokenType = "!="
	LT     TokenType = "<"
	GT     TokenType = ">"
	LT_EQ  TokenType = "<="
	GT_EQ  TokenType = ">="

	ARROW      TokenType = "->"
	FATARROW   TokenType = "=>"
	COLONCOLON TokenType = "::"

	// Delimiters
	COMMA     TokenType = ","
	SEMICOLON TokenType = ";"
	COLON     TokenType = ":"
	DOT       TokenType = "."
	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"
	LBRACE    TokenType = "{"
	RBRACE    TokenType = "}"
	LBRACKET  TokenType = "["
	RBRACKET  TokenType = "]"

	// Keywords
	FN     TokenType = "FN"
	LET    TokenType = "LET"
	MOD    TokenType = "MOD"
	STRUCT TokenType = "STRUCT"
	ENUM   TokenType = "ENUM"
	TRAIT  TokenType = "TRAIT"
	IMPL   TokenType = "IMPL"
	TYPE   TokenType = "TYPE"
	CONST  TokenType = "CONST"
	STATIC TokenType = "STATIC"
	FOR    TokenType = "FOR"
	SELF   TokenType = "SELF"
	RETURN TokenType = "RETURN"
	TRUE   TokenType = "TRUE"
	FALSE  TokenType = "FALSE"
)

var keywords = map[string]TokenType{
	"fn":     FN,
	"let":    LET,
	"mod":    MOD,
	"struct": STRUCT,
	"enum":   ENUM,
	"trait":  TRAIT,
	"impl":   IMPL,
	"type":   TYPE,
	"const":  CONST,
	"static": STATIC,
	"for":    FOR,
	"self":   SELF,
	"return": RETURN,
	"true":   TRUE,
	"false":  FALSE,
}

// LookupIdent distinguishes keywords from plain identifiers.
func LookupIdent(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return IDENT
}
