// Package lsp serves .expr documents to editors over the language server
// protocol: parse errors as diagnostics, the tree under the cursor on
// hover, and formatting to the flattened infix form.
package lsp

import (
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "exped"

var log = commonlog.GetLogger("exped.lsp")

type Server struct {
	mu        sync.Mutex
	documents map[protocol.DocumentUri]string

	handler protocol.Handler
	server  *server.Server
	version string
}

func NewServer(version string) *Server {
	ls := &Server{
		documents: make(map[protocol.DocumentUri]string),
		version:   version,
	}

	ls.handler = protocol.Handler{
		Initialize:             ls.initialize,
		Initialized:            ls.initialized,
		Shutdown:               ls.shutdown,
		SetTrace:               ls.setTrace,
		TextDocumentDidOpen:    ls.textDocumentDidOpen,
		TextDocumentDidChange:  ls.textDocumentDidChange,
		TextDocumentDidClose:   ls.textDocumentDidClose,
		TextDocumentHover:      ls.textDocumentHover,
		TextDocumentFormatting: ls.textDocumentFormatting,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *Server) RunStdio() error {
	log.Noticef("%s %s serving on stdio", lsName, ls.version)
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
	}
	capabilities.HoverProvider = true
	capabilities.DocumentFormattingProvider = true

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.update(params.TextDocument.URI, params.TextDocument.Text)
	ls.publish(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		ls.update(params.TextDocument.URI, textChange.Text)
		ls.publish(ctx, params.TextDocument.URI, textChange.Text)
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.mu.Lock()
	delete(ls.documents, params.TextDocument.URI)
	ls.mu.Unlock()
	return nil
}

func (ls *Server) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	text, ok := ls.document(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	dump, ok := HoverAt(text, int(params.Position.Line), int(params.Position.Character))
	if !ok {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindPlainText,
			Value: dump,
		},
	}, nil
}

func (ls *Server) textDocumentFormatting(ctx *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	text, ok := ls.document(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	edits, err := formatEdits(text)
	if err != nil {
		// Diagnostics already explain the failure.
		return nil, nil
	}
	return edits, nil
}

func (ls *Server) update(uri protocol.DocumentUri, text string) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.documents[uri] = text
}

func (ls *Server) document(uri protocol.DocumentUri) (string, bool) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	text, ok := ls.documents[uri]
	return text, ok
}

func (ls *Server) publish(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	diagnostics := Diagnostics(text)
	if len(diagnostics) > 0 {
		log.Infof("%s: %s", uri, diagnostics[0].Message)
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
