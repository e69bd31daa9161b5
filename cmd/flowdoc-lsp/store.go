package main

import (
	"sync"

	"github.com/signadot/flowdoc/format"
	"github.com/signadot/flowdoc/ir"
	"github.com/signadot/flowdoc/parse"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	format  format.Format
	nodes   []*ir.Node
	err     error

	// ranges[i] maps the paths of document i to their source ranges
	ranges []map[string]protocol.Range
}

func newDocumentStore() *documentStore {
	return &documentStore{
		docs: make(map[string]*document),
	}
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri, content string, version int32) *document {
	doc := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func newDocument(uri, content string, version int32) *document {
	doc := &document{
		uri:     uri,
		content: content,
		version: version,
		format:  format.FromPath(uri),
	}
	doc.nodes, doc.err = parse.ParseMulti([]byte(content), parse.ParseFormat(doc.format))
	if doc.err != nil {
		return doc
	}
	doc.ranges = sourceRanges([]byte(content))
	return doc
}

// rangeOf returns the source range of the node at path in document i.
func (d *document) rangeOf(i int, path string) (protocol.Range, bool) {
	if i >= len(d.ranges) {
		return protocol.Range{}, false
	}
	r, ok := d.ranges[i][path]
	return r, ok
}

// sourceRanges maps the document paths of every key and array element in
// src to their range in src. It returns nil if src does not parse.
func sourceRanges(src []byte) []map[string]protocol.Range {
	file, err := parser.ParseBytes(src, 0)
	if err != nil {
		return nil
	}
	res := make([]map[string]protocol.Range, 0, len(file.Docs))
	for _, doc := range file.Docs {
		if doc.Body == nil {
			continue
		}
		ranges := map[string]protocol.Range{}
		ranges["$"] = protocol.Range{Start: start(doc.Body), End: end(doc.Body)}
		walkRanges(doc.Body, "$", ranges)
		res = append(res, ranges)
	}
	return res
}

func walkRanges(node ast.Node, path string, out map[string]protocol.Range) {
	switch n := node.(type) {
	case *ast.TagNode:
		walkRanges(n.Value, path, out)
	case *ast.AnchorNode:
		walkRanges(n.Value, path, out)
	case *ast.MappingNode:
		for _, mv := range n.Values {
			walkRanges(mv, path, out)
		}
	case *ast.MappingValueNode:
		p := ir.FieldPath(path, n.Key.GetToken().Value)
		out[p] = protocol.Range{Start: start(n.Key), End: end(n.Value)}
		walkRanges(n.Value, p, out)
	case *ast.SequenceNode:
		for i, v := range n.Values {
			p := ir.IndexPath(path, i)
			out[p] = protocol.Range{Start: start(v), End: end(v)}
			walkRanges(v, p, out)
		}
	}
}

func start(node ast.Node) protocol.Position {
	return position(node.GetToken(), 0)
}

// end approximates the position after the last token of node.
func end(node ast.Node) protocol.Position {
	switch n := node.(type) {
	case nil:
		return protocol.Position{}
	case *ast.TagNode:
		return end(n.Value)
	case *ast.AnchorNode:
		return end(n.Value)
	case *ast.MappingValueNode:
		return end(n.Value)
	case *ast.MappingNode:
		if n.IsFlowStyle && n.End != nil {
			return position(n.End, 1)
		}
		if len(n.Values) > 0 {
			return end(n.Values[len(n.Values)-1])
		}
	case *ast.SequenceNode:
		if n.IsFlowStyle && n.End != nil {
			return position(n.End, 1)
		}
		if len(n.Values) > 0 {
			return end(n.Values[len(n.Values)-1])
		}
	}
	tk := node.GetToken()
	if tk == nil {
		return protocol.Position{}
	}
	return position(tk, len(tk.Value))
}

func position(tk *token.Token, offset int) protocol.Position {
	if tk == nil || tk.Position == nil {
		return protocol.Position{}
	}
	return protocol.Position{
		Line:      uint32(max(tk.Position.Line-1, 0)),
		Character: uint32(max(tk.Position.Column-1+offset, 0)),
	}
}
