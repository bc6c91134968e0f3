package parser

import (
	"unicode"
	"unicode/utf8"
)

type Lexer struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{
		input:  input,
		file:   file,
		line:   1,
		column: 1,
	}
}

func (l *Lexer) Position() Position {
	return Position{
		File:   l.file,
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) NextToken() Token {
	startPos := l.Position()

	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Span: Span{Start: startPos, End: startPos}}
	}

	ch := l.peek()

	if isSpace(ch) {
		return l.scanWhitespace(startPos)
	}
	if isLetter(ch) {
		return l.scanIdent(startPos)
	}
	if isDigit(ch) {
		return l.scanNumber(startPos)
	}

	switch ch {
	case '+':
		return l.single(TokenPlus, startPos)
	case '*':
		return l.single(TokenStar, startPos)
	case '(':
		return l.single(TokenLParen, startPos)
	case ')':
		return l.single(TokenRParen, startPos)
	}

	return l.scanError(startPos)
}

func (l *Lexer) single(kind TokenKind, start Position) Token {
	l.advance()
	return l.token(kind, start)
}

func (l *Lexer) token(kind TokenKind, start Position) Token {
	end := l.Position()
	return Token{
		Kind:    kind,
		Span:    Span{Start: start, End: end},
		Literal: string(l.input[start.Offset:end.Offset]),
	}
}

func (l *Lexer) scanWhitespace(start Position) Token {
	for isSpace(l.peek()) {
		l.advance()
	}
	return l.token(TokenWhitespace, start)
}

func (l *Lexer) scanIdent(start Position) Token {
	for isLetter(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}
	return l.token(TokenIdent, start)
}

// scanNumber accepts digits with an optional fraction. A trailing dot
// without digits is left for the next token.
func (l *Lexer) scanNumber(start Position) Token {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekN(1)) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	return l.token(TokenNumber, start)
}

func (l *Lexer) scanError(start Position) Token {
	_, size := utf8.DecodeRune(l.input[l.pos:])
	for i := 0; i < size; i++ {
		l.advance()
	}
	return l.token(TokenError, start)
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isLetter(ch byte) bool {
	return ch == '_' || (ch < utf8.RuneSelf && unicode.IsLetter(rune(ch)))
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
