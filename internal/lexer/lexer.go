package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/ferrite-lang/ferrite/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = len(l.input)
		l.readPosition++
		l.column++
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	line, column, offset := l.line, l.column, l.position

	var tok token.Token
	switch l.ch {
	case 0:
		return token.Token{Type: token.EOF, Lexeme: "", Offset: offset, Line: line, Column: column}
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = newToken(token.EQ, "==", offset, line, column)
		} else if l.peekChar() == '>' {
			l.readChar()
			tok = newToken(token.FATARROW, "=>", offset, line, column)
		} else {
			tok = newToken(token.ASSIGN, "=", offset, line, column)
		}
	case '+':
		tok = newToken(token.PLUS, "+", offset, line, column)
	case '-':
		if l.peekChar() == '>' {
			l.readChar()
			tok = newToken(token.ARROW, "->", offset, line, column)
		} else {
			tok = newToken(token.MINUS, "-", offset, line, column)
		}
	case '*':
		tok = newToken(token.STAR, "*", offset, line, column)
	case '/':
		tok = newToken(token.SLASH, "/", offset, line, column)
	case '%':
		tok = newToken(token.PERCENT, "%", offset, line, column)
	case '&':
		tok = newToken(token.AMP, "&", offset, line, column)
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = newToken(token.NOT_EQ, "!=", offset, line, column)
		} else {
			tok = newToken(token.BANG, "!", offset, line, column)
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = newToken(token.LT_EQ, "<=", offset, line, column)
		} else {
			tok = newToken(token.LT, "<", offset, line, column)
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = newToken(token.GT_EQ, ">=", offset, line, column)
		} else {
			tok = newToken(token.GT, ">", offset, line, column)
		}
	case ',':
		tok = newToken(token.COMMA, ",", offset, line, column)
	case ';':
		tok = newToken(token.SEMICOLON, ";", offset, line, column)
	case ':':
		if l.peekChar() == ':' {
			l.readChar()
			tok = newToken(token.COLONCOLON, "::", offset, line, column)
		} else {
			tok = newToken(token.COLON, ":", offset, line, column)
		}
	case '.':
		tok = newToken(token.DOT, ".", offset, line, column)
	case '(':
		tok = newToken(token.LPAREN, "(", offset, line, column)
	case ')':
		tok = newToken(token.RPAREN, ")", offset, line, column)
	case '{':
		tok = newToken(token.LBRACE, "{", offset, line, column)
	case '}':
		tok = newToken(token.RBRACE, "}", offset, line, column)
	case '[':
		tok = newToken(token.LBRACKET, "[", offset, line, column)
	case ']':
		tok = newToken(token.RBRACKET, "]", offset, line, column)
	case '"':
		lexeme := l.readString()
		return token.Token{Type: token.STRING, Lexeme: lexeme, Offset: offset, Line: line, Column: column}
	default:
		if isLetter(l.ch) {
			lexeme := l.readIdentifier()
			tt := token.LookupIdent(lexeme)
			if lexeme == "_" {
				tt = token.UNDERSCORE
			}
			return token.Token{Type: tt, Lexeme: lexeme, Offset: offset, Line: line, Column: column}
		}
		if isDigit(l.ch) {
			lexeme, tt := l.readNumber()
			return token.Token{Type: tt, Lexeme: lexeme, Offset: offset, Line: line, Column: column}
		}
		tok = newToken(token.ILLEGAL, string(l.ch), offset, line, column)
	}

	l.readChar()
	return tok
}

func newToken(tt token.TokenType, lexeme string, offset, line, column int) token.Token {
	return token.Token{Type: tt, Lexeme: lexeme, Offset: offset, Line: line, Column: column}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
			l.readChar()
		}
		if l.ch == '/' && l.peekChar() == '/' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}
		if l.ch == '/' && l.peekChar() == '*' {
			l.readChar()
			l.readChar()
			for l.ch != 0 {
				if l.ch == '*' && l.peekChar() == '/' {
					l.readChar()
					l.readChar()
					break
				}
				l.readChar()
			}
			continue
		}
		return
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readNumber() (string, token.TokenType) {
	start := l.position
	tt := token.TokenType(token.INT)
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		tt = token.FLOAT
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.input[start:l.position], tt
}

func (l *Lexer) readString() string {
	start := l.position
	l.readChar() // opening quote
	for l.ch != '"' && l.ch != 0 {
		if l.ch == '\\' {
			l.readChar()
		}
		l.readChar()
	}
	if l.ch == '"' {
		l.readChar()
	}
	return l.input[start:l.position]
}

func isLetter(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize scans the whole input into a token slice ending with EOF.
func Tokenize(input string) []token.Token {
	l := New(input)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

// TokenAt returns the token whose lexeme covers the given byte offset.
// A cursor sitting in the whitespace between two tokens (or exactly at a
// token's end boundary) belongs to the token to its left, which is how
// editors anchor a typing position. Returns false only for an offset
// outside the input or before the first token.
func TokenAt(input string, offset int) (token.Token, bool) {
	if offset < 0 || offset > len(input) {
		return token.Token{}, false
	}
	var prev token.Token
	havePrev := false
	l := New(input)
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
		if tok.Offset <= offset && offset < tok.End() {
			return tok, true
		}
		if tok.Offset > offset {
			if havePrev {
				return prev, true
			}
			return token.Token{}, false
		}
		prev = tok
		havePrev = true
	}
	if havePrev {
		return prev, true
	}
	return token.Token{}, false
}
