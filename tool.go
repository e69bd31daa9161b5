package flowdoc

import (
	"fmt"

	"github.com/signadot/flowdoc/camel"
	"github.com/signadot/flowdoc/catalog"
	"github.com/signadot/flowdoc/debug"
	"github.com/signadot/flowdoc/ir"
)

type Tool struct {
	Cache    catalog.Cache
	Resolver *camel.Resolver
	Sorter   *camel.Sorter
}

// NewTool returns a Tool over cache. A nil cache knows nothing, so every
// object is sorted alphabetically.
func NewTool(cache catalog.Cache) *Tool {
	if cache == nil {
		cache = catalog.Empty
	}
	return &Tool{
		Cache:    cache,
		Resolver: camel.NewResolver(cache),
		Sorter:   camel.NewSorter(cache),
	}
}

// Canonicalize returns a canonical copy of doc.
func (t *Tool) Canonicalize(doc *ir.Node) *ir.Node {
	return t.Sorter.CanonicalizeDocument(doc)
}

// Sort canonicalizes doc and verifies the result holds the same data.
func (t *Tool) Sort(doc *ir.Node) (*ir.Node, error) {
	res := t.Canonicalize(doc)
	if err := Lossless(doc, res); err != nil {
		return nil, err
	}
	return res, nil
}

// IsCanonical reports whether doc is already in canonical order.
func (t *Tool) IsCanonical(doc *ir.Node) bool {
	return ir.EqualOrdered(doc, t.Canonicalize(doc))
}

// Trees returns a tree for each top-level construct of doc. A document is
// either a list of single-key wrappers or an object of constructs.
func (t *Tool) Trees(doc *ir.Node) []*camel.Node {
	var res []*camel.Node
	switch {
	case doc.IsArray():
		for _, el := range doc.Values {
			if !el.IsObject() || len(el.Fields) == 0 {
				continue
			}
			res = append(res, t.Resolver.NewTree(el.Fields[0].String, el.Values[0]))
		}
	case doc.IsObject():
		for i, f := range doc.Fields {
			res = append(res, t.Resolver.NewTree(f.String, doc.Values[i]))
		}
	}
	return res
}

// CanonicalizeAt canonicalizes only the construct at path in doc, such as
// "$[0].route.from.steps[2].to", leaving the rest of doc as it is. name is
// the construct name; if empty it is the last field of path. Endpoint
// parameters use the uri of the nearest enclosing construct.
func (t *Tool) CanonicalizeAt(doc *ir.Node, path, name string) (*ir.Node, error) {
	res := doc.Clone()
	res.Parent = nil
	target, err := res.GetPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPath, err)
	}
	if target == nil {
		return nil, fmt.Errorf("%w: nothing at %s", ErrPath, path)
	}
	if name == "" {
		if target.Parent == nil || !target.Parent.IsObject() {
			return nil, fmt.Errorf("%w: %s does not name a construct", ErrPath, path)
		}
		name = target.ParentField
	}
	if debug.Sort() {
		debug.Logf("canonicalize %s as %s\n", path, name)
	}
	sorted := t.Sorter.CanonicalizeWithURI(name, target, enclosingURI(target))
	parent := target.Parent
	if parent == nil {
		return sorted, nil
	}
	sorted.Parent = parent
	sorted.ParentIndex = target.ParentIndex
	sorted.ParentField = target.ParentField
	parent.Values[target.ParentIndex] = sorted
	return res, nil
}

func enclosingURI(y *ir.Node) string {
	for p := y.Parent; p != nil; p = p.Parent {
		if u := ir.Get(p, "uri"); u != nil && u.Type == ir.StringType {
			return u.String
		}
	}
	return ""
}
