package main

import (
	"context"
	"fmt"

	"github.com/signadot/flowdoc"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

type Server struct {
	tool   *flowdoc.Tool
	docs   *documentStore
	client protocol.Client
	logger *zap.Logger
}

var _ protocol.Server = (*Server)(nil)

func NewServer(tool *flowdoc.Tool, logger *zap.Logger) *Server {
	return &Server{
		tool:   tool,
		docs:   newDocumentStore(),
		logger: logger,
	}
}

func (s *Server) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	capabilities := protocol.ServerCapabilities{
		TextDocumentSync: &protocol.TextDocumentSyncOptions{
			Change:    protocol.TextDocumentSyncKindFull,
			OpenClose: true,
		},
		HoverProvider:              true,
		DocumentFormattingProvider: true,
		DocumentSymbolProvider:     true,
	}
	return &protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.ServerInfo{
			Name:    lsName,
			Version: version,
		},
	}, nil
}

func (s *Server) Initialized(ctx context.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return nil
}

func (s *Server) Exit(ctx context.Context) error {
	return nil
}

func (s *Server) SetTrace(ctx context.Context, params *protocol.SetTraceParams) error {
	return nil
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	td := &params.TextDocument
	s.put(ctx, string(td.URI), td.Text, td.Version)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	// full sync: the last change holds the whole text
	text := params.ContentChanges[len(params.ContentChanges)-1].Text
	s.put(ctx, string(params.TextDocument.URI), text, params.TextDocument.Version)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

func (s *Server) put(ctx context.Context, uri, text string, version int32) {
	doc := s.docs.put(uri, text, version)
	if doc.err == nil {
		return
	}
	s.logger.Debug("cannot parse document", zap.String("uri", uri), zap.Error(doc.err))
	if s.client == nil {
		return
	}
	s.client.LogMessage(ctx, &protocol.LogMessageParams{
		Type:    protocol.MessageTypeWarning,
		Message: fmt.Sprintf("%s: %v", uri, doc.err),
	})
}
