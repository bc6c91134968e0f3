// Package parser turns expression text into an expr tree.
//
// The grammar has the usual precedence of * over +, both left to right,
// with parentheses for grouping:
//
//	sum     = product { "+" product }
//	product = factor { "*" factor }
//	factor  = number | identifier | "(" sum ")"
//
// A run of the same operator becomes one n-ary chain: "a+b+c" yields a
// single chain with three operands.
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/exped/expr"
)

// ErrParse is matched by every error the parser returns.
var ErrParse = errors.New("parse failure")

// Error describes why the input is not a well-formed expression.
type Error struct {
	Message string
	Pos     Position
	Got     string
}

func (e *Error) Error() string {
	if e.Got != "" {
		return fmt.Sprintf("%s: %s, got %q", e.Pos, e.Message, e.Got)
	}
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

func (e *Error) Unwrap() error {
	return ErrParse
}

type Option func(*Parser)

func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// WithPartial accepts input that is still being typed: a trailing
// operator is dropped and parentheses left open at the end of the input
// are closed.
func WithPartial() Option {
	return func(p *Parser) {
		p.partial = true
	}
}

type Parser struct {
	file       string
	partial    bool
	reader     io.Reader
	input      []byte
	lexer      *Lexer
	tokens     []Token
	pos        int
	incomplete bool
	err        *Error
}

func New(r io.Reader, opts ...Option) *Parser {
	p := &Parser{reader: r}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses text. When complete is false the input may be a prefix
// of an expression, as with WithPartial.
func Parse(text string, complete bool) (expr.Expression, error) {
	var opts []Option
	if !complete {
		opts = append(opts, WithPartial())
	}
	return New(strings.NewReader(text), opts...).Finish()
}

func (p *Parser) readAll() error {
	if p.input != nil {
		return nil
	}
	data, err := io.ReadAll(p.reader)
	if err != nil {
		return err
	}
	p.input = data
	return nil
}

// IsComplete reports whether the input is a whole expression. "1 + " and
// "(1" are incomplete; they fail to parse unless WithPartial is given.
func (p *Parser) IsComplete() bool {
	if err := p.readAll(); err != nil {
		return false
	}
	if len(bytes.TrimSpace(p.input)) == 0 {
		return false
	}
	p.run()
	return !p.incomplete && p.err == nil
}

// Finish parses the whole input. The result is nil exactly when the
// error is non-nil.
func (p *Parser) Finish() (expr.Expression, error) {
	if err := p.readAll(); err != nil {
		return nil, fmt.Errorf("read expression: %w", err)
	}
	result := p.run()
	if p.err != nil {
		return nil, p.err
	}
	return result, nil
}

func (p *Parser) run() expr.Expression {
	p.lexer = NewLexer(p.input, p.file)
	p.tokens = nil
	p.pos = 0
	p.incomplete = false
	p.err = nil
	p.tokenize()

	if p.check(TokenEOF) {
		p.incomplete = true
		p.fail("empty expression")
		return nil
	}

	result := p.parseSum()
	if result == nil {
		return nil
	}
	if !p.check(TokenEOF) {
		if p.check(TokenRParen) {
			p.fail("unbalanced )")
		} else {
			p.fail("expected + or * between operands")
		}
		return nil
	}
	return result
}

func (p *Parser) tokenize() {
	for {
		tok := p.lexer.NextToken()
		if tok.Kind == TokenWhitespace {
			continue
		}
		p.tokens = append(p.tokens, tok)
		if tok.Kind == TokenEOF {
			break
		}
	}
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Kind: TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) expect(kind TokenKind) *Token {
	tok := p.peek()
	if tok.Kind == kind {
		p.advance()
		return &tok
	}
	return nil
}

// fail records the first error; later ones are consequences of it.
func (p *Parser) fail(msg string) {
	if p.err != nil {
		return
	}
	tok := p.peek()
	p.err = &Error{
		Message: msg,
		Pos:     tok.Span.Start,
		Got:     tok.Literal,
	}
}

// danglingOperator consumes nothing; it reports whether the operator
// just consumed ends the input and, in partial mode, can be ignored.
func (p *Parser) danglingOperator() bool {
	if !p.check(TokenEOF) {
		return false
	}
	p.incomplete = true
	return p.partial
}

func (p *Parser) parseSum() expr.Expression {
	return p.parseChain(expr.Add, TokenPlus, p.parseProduct)
}

func (p *Parser) parseProduct() expr.Expression {
	return p.parseChain(expr.Multiply, TokenStar, p.parseFactor)
}

func (p *Parser) parseChain(op expr.Operator, sep TokenKind, operand func() expr.Expression) expr.Expression {
	first := operand()
	if first == nil {
		return nil
	}

	operands := []expr.Expression{first}
	for p.check(sep) {
		p.advance()
		if p.danglingOperator() {
			break
		}
		next := operand()
		if next == nil {
			return nil
		}
		operands = append(operands, next)
	}

	if len(operands) == 1 {
		return first
	}
	return expr.NewChain(op, operands...)
}

func (p *Parser) parseFactor() expr.Expression {
	switch p.peek().Kind {
	case TokenNumber, TokenIdent:
		tok := p.advance()
		return expr.NewLiteral(tok.Literal)

	case TokenLParen:
		p.advance()
		inner := p.parseSum()
		if inner == nil {
			return nil
		}
		if p.expect(TokenRParen) == nil {
			if !p.check(TokenEOF) {
				p.fail("expected )")
				return nil
			}
			p.incomplete = true
			if !p.partial {
				p.fail("unclosed (")
				return nil
			}
		}
		return expr.NewParen(inner)

	case TokenEOF:
		p.incomplete = true
		p.fail("unexpected end of expression")
		return nil

	case TokenError:
		p.fail("unexpected character")
		return nil

	default:
		p.fail("expected number, identifier or (")
		return nil
	}
}
