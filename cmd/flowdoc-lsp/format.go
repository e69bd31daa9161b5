package main

import (
	"bytes"
	"context"
	"strings"

	"github.com/signadot/flowdoc/encode"
	"github.com/signadot/flowdoc/format"
	"github.com/signadot/flowdoc/ir"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.err != nil {
		return nil, nil
	}

	sorted := make([]*ir.Node, len(doc.nodes))
	for i, node := range doc.nodes {
		res, err := s.tool.Sort(node)
		if err != nil {
			s.logger.Error("refusing to format", zap.String("uri", doc.uri), zap.Error(err))
			return nil, nil
		}
		sorted[i] = res
	}
	formatted, err := formatDocs(sorted, doc.format)
	if err != nil {
		s.logger.Error("cannot encode", zap.String("uri", doc.uri), zap.Error(err))
		return nil, nil
	}
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}

	lines := strings.Count(doc.content, "\n")
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines),
					Character: 0,
				},
			},
			NewText: formatted,
		},
	}, nil
}

func formatDocs(nodes []*ir.Node, f format.Format) (string, error) {
	var buf bytes.Buffer
	for i, node := range nodes {
		if i > 0 && f.IsYAML() {
			buf.WriteString("---\n")
		}
		if err := encode.Encode(node, &buf, encode.EncodeFormat(f)); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
