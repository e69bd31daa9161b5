package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/flowdoc/camel"

	"go.lsp.dev/protocol"
)

var symbolKinds = map[camel.NodeType]protocol.SymbolKind{
	camel.EntityType:       protocol.SymbolKindModule,
	camel.PatternType:      protocol.SymbolKindFunction,
	camel.ComponentType:    protocol.SymbolKindInterface,
	camel.LanguageType:     protocol.SymbolKindOperator,
	camel.DataFormatType:   protocol.SymbolKindStruct,
	camel.LoadBalancerType: protocol.SymbolKindEvent,
}

func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.err != nil {
		return nil, nil
	}
	var res []interface{}
	for i, node := range doc.nodes {
		for _, t := range s.tool.Trees(node) {
			if sym, ok := doc.symbol(i, t); ok {
				res = append(res, sym)
			}
		}
	}
	return res, nil
}

// symbol returns the symbol for the tree node n of document i. Nodes
// with no known source position are dropped along with their children.
func (d *document) symbol(i int, n *camel.Node) (protocol.DocumentSymbol, bool) {
	r, ok := d.rangeOf(i, n.Data().Path())
	if !ok {
		return protocol.DocumentSymbol{}, false
	}
	sym := protocol.DocumentSymbol{
		Name:           n.Name(),
		Detail:         detail(n),
		Kind:           symbolKinds[n.Type()],
		Range:          r,
		SelectionRange: protocol.Range{Start: r.Start, End: r.Start},
	}
	sym.SelectionRange.End.Character += uint32(len(n.Name()))
	for _, c := range n.Children() {
		if cs, ok := d.symbol(i, c); ok {
			sym.Children = append(sym.Children, cs)
		}
	}
	return sym, true
}

func detail(n *camel.Node) string {
	if e, ok := n.CatalogEntry(); ok && e.Title != "" {
		return fmt.Sprintf("%s: %s", n.Type(), e.Title)
	}
	return n.Type().String()
}

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.err != nil {
		return nil, nil
	}
	n, r := doc.innermost(s, params.Position)
	if n == nil {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText(n),
		},
		Range: &r,
	}, nil
}

// innermost finds the deepest tree node whose source range holds pos.
func (d *document) innermost(s *Server, pos protocol.Position) (*camel.Node, protocol.Range) {
	var (
		found *camel.Node
		fr    protocol.Range
	)
	for i, node := range d.nodes {
		for _, t := range s.tool.Trees(node) {
			t.Walk(func(n *camel.Node) bool {
				r, ok := d.rangeOf(i, n.Data().Path())
				if !ok || !contains(r, pos) {
					return false
				}
				found, fr = n, r
				return true
			})
		}
	}
	return found, fr
}

func contains(r protocol.Range, p protocol.Position) bool {
	return !before(p, r.Start) && before(p, r.End)
}

func before(a, b protocol.Position) bool {
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Character < b.Character
}

func hoverText(n *camel.Node) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** _%s_\n\n", n.Name(), n.Type())
	if e, ok := n.CatalogEntry(); ok {
		if e.Title != "" {
			fmt.Fprintf(&b, "%s\n\n", e.Title)
		}
		if e.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", e.Description)
		}
	}
	fmt.Fprintf(&b, "`%s`", n.Path())
	return b.String()
}
