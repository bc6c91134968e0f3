package lsp

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/dhamidi/exped/expr/parser"
	"github.com/dhamidi/exped/layout"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

const diagnosticSource = "exped"

// Diagnostics reports why text is not a well-formed expression. A valid
// document has no diagnostics.
func Diagnostics(text string) []protocol.Diagnostic {
	_, err := parser.Parse(text, true)
	if err == nil {
		return []protocol.Diagnostic{}
	}

	var perr *parser.Error
	if !errors.As(err, &perr) {
		return []protocol.Diagnostic{newDiagnostic(protocol.Range{}, err.Error())}
	}

	start := toProtocol(perr.Pos)
	end := start
	end.Character += protocol.UInteger(utf8.RuneCountInString(perr.Got))
	return []protocol.Diagnostic{newDiagnostic(protocol.Range{Start: start, End: end}, perr.Message)}
}

func newDiagnostic(r protocol.Range, message string) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := diagnosticSource
	return protocol.Diagnostic{
		Range:    r,
		Severity: &severity,
		Source:   &source,
		Message:  message,
	}
}

// HoverAt returns the tree dump of the deepest expression whose token is
// under the cursor. line and character are zero-based.
func HoverAt(text string, line, character int) (string, bool) {
	root, err := parser.Parse(text, true)
	if err != nil {
		return "", false
	}

	// The layout renders one run per source token, in source order, so
	// the n-th token belongs to the owner of the n-th run.
	runs := layout.New(root, layout.DefaultMetrics, layout.Point{}).Runs()

	lexer := parser.NewLexer([]byte(text), "")
	for i := 0; ; {
		tok := lexer.NextToken()
		if tok.Kind == parser.TokenEOF {
			return "", false
		}
		if tok.Kind == parser.TokenWhitespace {
			continue
		}
		if covers(tok.Span, line, character) && i < len(runs) {
			return runs[i].Owner.ConvertToString(0), true
		}
		i++
	}
}

func covers(span parser.Span, line, character int) bool {
	if span.Start.Line != line+1 {
		return false
	}
	col := character + 1
	return col >= span.Start.Column && col < span.End.Column
}

// Format returns the flattened infix form of text.
func Format(text string) (string, error) {
	e, err := parser.Parse(text, true)
	if err != nil {
		return "", err
	}
	e.Flatten()
	return e.String() + "\n", nil
}

// formatEdits replaces the whole document with its formatted form.
func formatEdits(text string) ([]protocol.TextEdit, error) {
	formatted, err := Format(text)
	if err != nil {
		return nil, err
	}
	if formatted == text {
		return []protocol.TextEdit{}, nil
	}
	return []protocol.TextEdit{{
		Range:   protocol.Range{End: endOf(text)},
		NewText: formatted,
	}}, nil
}

func endOf(text string) protocol.Position {
	lines := strings.Split(text, "\n")
	last := lines[len(lines)-1]
	return protocol.Position{
		Line:      protocol.UInteger(len(lines) - 1),
		Character: protocol.UInteger(utf8.RuneCountInString(last)),
	}
}

func toProtocol(pos parser.Position) protocol.Position {
	p := protocol.Position{}
	if pos.Line > 0 {
		p.Line = protocol.UInteger(pos.Line - 1)
	}
	if pos.Column > 0 {
		p.Character = protocol.UInteger(pos.Column - 1)
	}
	return p
}
