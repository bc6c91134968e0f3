package parser

import "fmt"

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError
	TokenWhitespace

	TokenNumber
	TokenIdent

	TokenPlus
	TokenStar
	TokenLParen
	TokenRParen
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:        "EOF",
	TokenError:      "Error",
	TokenWhitespace: "Whitespace",
	TokenNumber:     "Number",
	TokenIdent:      "Ident",
	TokenPlus:       "+",
	TokenStar:       "*",
	TokenLParen:     "(",
	TokenRParen:     ")",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
}
