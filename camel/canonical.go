package camel

import (
	"cmp"
	"slices"
	"strings"

	"github.com/signadot/flowdoc/catalog"
	"github.com/signadot/flowdoc/debug"
	"github.com/signadot/flowdoc/ir"
	"github.com/signadot/flowdoc/tree"
)

// Sorter rewrites route documents so that the keys of every object
// follow catalog order. It never modifies its input.
type Sorter struct {
	*Classifier
}

var _ tree.Visitor[NodeType, *catalog.Entry, *ir.Node] = (*Sorter)(nil)

func NewSorter(cache catalog.Cache) *Sorter {
	return &Sorter{Classifier: NewClassifier(cache)}
}

// Canonicalize returns a copy of data, the body of the construct name,
// with its keys in canonical order. It may be called on a construct at
// any depth of a document.
func (s *Sorter) Canonicalize(name string, data *ir.Node) *ir.Node {
	return s.construct(name, data, "")
}

// CanonicalizeWithURI is Canonicalize for a construct nested in a
// processor whose endpoint uri is uri.
func (s *Sorter) CanonicalizeWithURI(name string, data *ir.Node, uri string) *ir.Node {
	return s.construct(name, data, uri)
}

// Visit canonicalizes the data of n, using the endpoint uri of the
// nearest ancestor for parameters n does not own.
func (s *Sorter) Visit(n *Node) *ir.Node {
	uri := ""
	for p := n.Parent(); p != nil; p = p.Parent() {
		if u, ok := ownURI(p.Data()); ok {
			uri = u
			break
		}
	}
	return s.construct(n.Name(), n.Data(), uri)
}

// CanonicalizeDocument canonicalizes a whole document: either a list of
// single-key construct wrappers or an object of constructs. The order of
// the constructs themselves is kept.
func (s *Sorter) CanonicalizeDocument(doc *ir.Node) *ir.Node {
	switch {
	case doc.IsArray():
		res := make([]*ir.Node, len(doc.Values))
		for i, el := range doc.Values {
			if el.IsObject() {
				res[i] = s.wrapper(el, "")
			} else {
				res[i] = clone(el)
			}
		}
		return ir.FromSlice(res)
	case doc.IsObject():
		kvs := make([]ir.KeyVal, len(doc.Fields))
		for i, f := range doc.Fields {
			kvs[i] = ir.KeyVal{Key: f.String, Val: s.construct(f.String, doc.Values[i], "")}
		}
		return ir.FromKeyVals(kvs)
	default:
		return clone(doc)
	}
}

func (s *Sorter) construct(name string, data *ir.Node, uri string) *ir.Node {
	switch {
	case data.IsArray():
		return s.elements(name, data, uri)
	case !data.IsObject():
		return clone(data)
	}
	if u, ok := ownURI(data); ok {
		uri = u
	}
	var index map[string]int
	if e, ok := s.EntityOrPatternEntry(name); ok {
		index = e.PropertyIndex()
	}
	keys := SortKeys(data.Keys(), index)
	if debug.Sort() {
		debug.Logf("sort %s %v -> %v\n", name, data.Keys(), keys)
	}
	kvs := make([]ir.KeyVal, len(keys))
	for i, key := range keys {
		kvs[i] = ir.KeyVal{Key: key, Val: s.value(key, ir.Get(data, key), uri)}
	}
	return ir.FromKeyVals(kvs)
}

// value canonicalizes the value of property key of a construct.
func (s *Sorter) value(key string, val *ir.Node, uri string) *ir.Node {
	if val == nil {
		return ir.Null()
	}
	switch val.Type {
	case ir.ArrayType:
		if stepsProps[key] {
			res := make([]*ir.Node, len(val.Values))
			for i, el := range val.Values {
				if el.IsObject() {
					res[i] = s.wrapper(el, uri)
				} else {
					res[i] = clone(el)
				}
			}
			return ir.FromSlice(res)
		}
		return s.elements(key, val, uri)

	case ir.ObjectType:
		if key == parametersProp {
			return s.parameters(val, uri)
		}
		if s.IsConstruct(key) {
			return s.construct(key, val, uri)
		}
		if i, ok := s.embeddedObject(val); ok {
			res := make([]ir.KeyVal, len(val.Fields))
			for j, f := range val.Fields {
				v := val.Values[j]
				if j == i {
					v = s.construct(f.String, v, uri)
				} else {
					v = clone(v)
				}
				res[j] = ir.KeyVal{Key: f.String, Val: v}
			}
			return ir.FromKeyVals(res)
		}
		return generic(val)

	default:
		return clone(val)
	}
}

// wrapper canonicalizes a {name: config} step wrapper. Keys after the
// first are kept as they are.
func (s *Sorter) wrapper(el *ir.Node, uri string) *ir.Node {
	kvs := make([]ir.KeyVal, len(el.Fields))
	for i, f := range el.Fields {
		if i == 0 {
			kvs[i] = ir.KeyVal{Key: f.String, Val: s.construct(f.String, el.Values[i], uri)}
			continue
		}
		kvs[i] = ir.KeyVal{Key: f.String, Val: clone(el.Values[i])}
	}
	return ir.FromKeyVals(kvs)
}

// elements canonicalizes each object of an array as a construct called
// name.
func (s *Sorter) elements(name string, arr *ir.Node, uri string) *ir.Node {
	res := make([]*ir.Node, len(arr.Values))
	for i, el := range arr.Values {
		if el.IsObject() {
			res[i] = s.construct(name, el, uri)
		} else {
			res[i] = clone(el)
		}
	}
	return ir.FromSlice(res)
}

// embeddedObject returns the position of the only key of obj that names
// an embedded category and holds an object.
func (s *Sorter) embeddedObject(obj *ir.Node) (int, bool) {
	found := -1
	for i, f := range obj.Fields {
		if !obj.Values[i].IsObject() || !s.IsEmbedded(f.String) {
			continue
		}
		if found != -1 {
			return -1, false
		}
		found = i
	}
	return found, found != -1
}

// parameters orders an endpoint parameter bag by the component catalog of
// the uri scheme. Values are kept as they are.
func (s *Sorter) parameters(params *ir.Node, uri string) *ir.Node {
	var index map[string]int
	if scheme := Scheme(uri); scheme != "" {
		if e, ok := s.cache.GetEntity(catalog.ComponentKind, scheme); ok {
			index = e.PropertyIndex()
		}
	}
	keys := SortKeys(params.Keys(), index)
	if debug.Sort() {
		debug.Logf("sort parameters of %q %v -> %v\n", uri, params.Keys(), keys)
	}
	kvs := make([]ir.KeyVal, len(keys))
	for i, key := range keys {
		kvs[i] = ir.KeyVal{Key: key, Val: clone(ir.Get(params, key))}
	}
	return ir.FromKeyVals(kvs)
}

// generic sorts the keys of y and of every object below it
// alphabetically.
func generic(y *ir.Node) *ir.Node {
	switch y.Type {
	case ir.ObjectType:
		keys := SortKeys(y.Keys(), nil)
		kvs := make([]ir.KeyVal, len(keys))
		for i, key := range keys {
			kvs[i] = ir.KeyVal{Key: key, Val: generic(ir.Get(y, key))}
		}
		return ir.FromKeyVals(kvs)
	case ir.ArrayType:
		res := make([]*ir.Node, len(y.Values))
		for i, el := range y.Values {
			res[i] = generic(el)
		}
		return ir.FromSlice(res)
	default:
		return clone(y)
	}
}

// SortKeys returns keys in canonical order: keys found in index by
// ascending index, then the remaining keys alphabetically. A nil index
// sorts everything alphabetically.
func SortKeys(keys []string, index map[string]int) []string {
	res := slices.Clone(keys)
	slices.SortFunc(res, func(a, b string) int {
		ia, aok := index[a]
		ib, bok := index[b]
		switch {
		case aok && bok:
			if c := cmp.Compare(ia, ib); c != 0 {
				return c
			}
		case aok:
			return -1
		case bok:
			return 1
		}
		return strings.Compare(a, b)
	})
	return res
}

// Scheme returns the component name of an endpoint uri: the text before
// the first ':', or the whole uri.
func Scheme(uri string) string {
	scheme, _, _ := strings.Cut(uri, ":")
	return scheme
}

func ownURI(data *ir.Node) (string, bool) {
	u := ir.Get(data, uriProp)
	if u == nil || u.Type != ir.StringType {
		return "", false
	}
	return u.String, true
}

func clone(y *ir.Node) *ir.Node {
	if y == nil {
		return ir.Null()
	}
	res := y.Clone()
	res.Parent = nil
	res.ParentIndex = 0
	res.ParentField = ""
	return res
}
