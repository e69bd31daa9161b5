package tree

import (
	"strconv"

	"github.com/signadot/flowdoc/debug"
	"github.com/signadot/flowdoc/ir"
)

// Node is one classified position in a document. Its children are
// computed from the resolver on first use and then kept; a Node is a
// snapshot, so the data it wraps must not change after construction.
type Node[T comparable, E any] struct {
	name     string
	path     string
	typ      T
	data     *ir.Node
	entry    E
	hasEntry bool
	arrayEl  bool

	resolver Resolver[T, E]
	parent   *Node[T, E]
	siblings []*Node[T, E]
	index    int

	children []*Node[T, E]
	built    bool
}

// New builds the root of a tree over data.
func New[T comparable, E any](name string, data *ir.Node, resolver Resolver[T, E]) *Node[T, E] {
	return newNode(name, name, data, resolver, nil, false)
}

func newNode[T comparable, E any](name, path string, data *ir.Node, resolver Resolver[T, E], parent *Node[T, E], arrayEl bool) *Node[T, E] {
	typ := resolver.NodeType(name, data)
	entry, ok := resolver.CatalogEntry(name, typ)
	return &Node[T, E]{
		name:     name,
		path:     path,
		typ:      typ,
		data:     data,
		entry:    entry,
		hasEntry: ok,
		arrayEl:  arrayEl,
		resolver: resolver,
		parent:   parent,
		index:    -1,
	}
}

func (n *Node[T, E]) Name() string   { return n.name }
func (n *Node[T, E]) Path() string   { return n.path }
func (n *Node[T, E]) Type() T        { return n.typ }
func (n *Node[T, E]) Data() *ir.Node { return n.data }

// CatalogEntry returns the entry backing the node, if the resolver found
// one.
func (n *Node[T, E]) CatalogEntry() (E, bool) {
	return n.entry, n.hasEntry
}

// PropertiesMetadata returns the ordering metadata of the node's entry.
func (n *Node[T, E]) PropertiesMetadata() map[string]int {
	if !n.hasEntry {
		return nil
	}
	return n.resolver.PropertiesMetadata(n.entry)
}

func (n *Node[T, E]) Parent() *Node[T, E] {
	return n.parent
}

func (n *Node[T, E]) IsArrayElement() bool {
	return n.arrayEl
}

// Index is the node's position among its siblings, -1 for a root.
func (n *Node[T, E]) Index() int {
	return n.index
}

func (n *Node[T, E]) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Children returns the node's children. The first call builds them; later
// calls return the same slice.
func (n *Node[T, E]) Children() []*Node[T, E] {
	if n.built {
		return n.children
	}
	n.built = true
	if !n.data.IsObject() {
		n.children = []*Node[T, E]{}
		return n.children
	}
	descs := n.resolver.ChildNodes(n.name, n.data, n.typ)
	children := make([]*Node[T, E], len(descs))
	for i := range descs {
		desc := &descs[i]
		child := newNode(desc.Name, childPath(n.path, desc), desc.Data, n.resolver, n, desc.IsArrayElement)
		child.index = i
		child.siblings = children
		children[i] = child
	}
	n.children = children
	if debug.Tree() {
		debug.Logf("built %d children of %s\n", len(children), n.path)
	}
	return n.children
}

func childPath(parent string, desc *ChildDescriptor) string {
	switch {
	case desc.Property != "" && desc.IsArrayElement:
		return parent + "." + desc.Property + "[" + strconv.Itoa(desc.Index) + "]." + desc.Name
	case desc.Property != "":
		return parent + "." + desc.Property + "." + desc.Name
	case desc.IsArrayElement:
		return parent + "." + desc.Name + "[" + strconv.Itoa(desc.Index) + "]"
	default:
		return parent + "." + desc.Name
	}
}

func (n *Node[T, E]) HasChildren() bool {
	return len(n.Children()) > 0
}

func (n *Node[T, E]) NextSibling() *Node[T, E] {
	if n.siblings == nil || n.index+1 >= len(n.siblings) {
		return nil
	}
	return n.siblings[n.index+1]
}

func (n *Node[T, E]) PreviousSibling() *Node[T, E] {
	if n.siblings == nil || n.index <= 0 {
		return nil
	}
	return n.siblings[n.index-1]
}

// Walk calls f on n and its descendants in pre-order. Returning false
// from f skips the node's children.
func (n *Node[T, E]) Walk(f func(*Node[T, E]) bool) {
	if !f(n) {
		return
	}
	for _, c := range n.Children() {
		c.Walk(f)
	}
}
