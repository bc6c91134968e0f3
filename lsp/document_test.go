package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDiagnostics(t *testing.T) {
	tests := []struct {
		input   string
		message string
		start   protocol.Position
		end     protocol.Position
	}{
		{"1 + 2 x", "expected + or * between operands", protocol.Position{Line: 0, Character: 6}, protocol.Position{Line: 0, Character: 7}},
		{"(1", "unclosed (", protocol.Position{Line: 0, Character: 2}, protocol.Position{Line: 0, Character: 2}},
		{"a +\n  $", "unexpected character", protocol.Position{Line: 1, Character: 2}, protocol.Position{Line: 1, Character: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			diags := Diagnostics(tt.input)
			if len(diags) != 1 {
				t.Fatalf("got %d diagnostics, want 1", len(diags))
			}
			d := diags[0]
			if d.Message != tt.message {
				t.Errorf("message = %q, want %q", d.Message, tt.message)
			}
			if d.Range.Start != tt.start || d.Range.End != tt.end {
				t.Errorf("range = %+v, want %+v..%+v", d.Range, tt.start, tt.end)
			}
			if d.Severity == nil || *d.Severity != protocol.DiagnosticSeverityError {
				t.Error("severity is not error")
			}
			if d.Source == nil || *d.Source != "exped" {
				t.Error("source is not exped")
			}
		})
	}

	if diags := Diagnostics("2*x + 3"); diags == nil || len(diags) != 0 {
		t.Errorf("valid document: got %v, want an empty list", diags)
	}
}

func TestHoverAt(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		line      int
		character int
		dump      string
		ok        bool
	}{
		{"literal", "2*x + 3", 0, 2, "x\n", true},
		{"inner operator", "2*x + 3", 0, 1, "*\n\t2\n\tx\n", true},
		{"outer operator", "2*x + 3", 0, 4, "+\n\t*\n\t\t2\n\t\tx\n\t3\n", true},
		{"paren", "(a)", 0, 0, "()\n\ta\n", true},
		{"closing paren", "(a)", 0, 2, "()\n\ta\n", true},
		{"second line", "a +\n b", 1, 1, "b\n", true},
		{"multi-character literal", "abc+1", 0, 2, "abc\n", true},
		{"whitespace", "2*x + 3", 0, 3, "", false},
		{"past the end", "2*x", 0, 9, "", false},
		{"invalid document", "2*", 0, 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dump, ok := HoverAt(tt.input, tt.line, tt.character)
			if ok != tt.ok || dump != tt.dump {
				t.Errorf("HoverAt = %q, %v, want %q, %v", dump, ok, tt.dump, tt.ok)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	got, err := Format(" a + (b+c) *  d ")
	if err != nil {
		t.Fatalf("Format error = %v", err)
	}
	if got != "a+(b+c)*d\n" {
		t.Errorf("Format = %q", got)
	}
	if _, err := Format("a+"); err == nil {
		t.Error("Format succeeded on invalid input")
	}
}

func TestFormatEdits(t *testing.T) {
	edits, err := formatEdits("a + b\n* c")
	if err != nil {
		t.Fatalf("formatEdits error = %v", err)
	}
	if len(edits) != 1 {
		t.Fatalf("got %d edits, want 1", len(edits))
	}
	want := protocol.Range{End: protocol.Position{Line: 1, Character: 3}}
	if edits[0].Range != want || edits[0].NewText != "a+b*c\n" {
		t.Errorf("edit = %+v", edits[0])
	}

	edits, err = formatEdits("a+b\n")
	if err != nil || len(edits) != 0 {
		t.Errorf("formatted document: got %v, %v", edits, err)
	}
}

func TestServerDocuments(t *testing.T) {
	ls := NewServer("test")
	uri := protocol.DocumentUri("file:///tmp/a.expr")
	ls.update(uri, "1 + 2*y")

	hover, err := ls.textDocumentHover(nil, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: 0, Character: 6},
		},
	})
	if err != nil || hover == nil {
		t.Fatalf("hover = %v, %v", hover, err)
	}
	if content, ok := hover.Contents.(protocol.MarkupContent); !ok || content.Value != "y\n" {
		t.Errorf("hover contents = %+v", hover.Contents)
	}

	edits, err := ls.textDocumentFormatting(nil, &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	if err != nil || len(edits) != 1 || edits[0].NewText != "1+2*y\n" {
		t.Errorf("formatting = %+v, %v", edits, err)
	}

	ls.textDocumentDidClose(nil, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	if _, ok := ls.document(uri); ok {
		t.Error("document survived close")
	}
}
