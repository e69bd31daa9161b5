package tree

// Visitor is an operation over tree nodes, kept out of Node itself.
type Visitor[T comparable, E any, R any] interface {
	Visit(n *Node[T, E]) R
}

// Accept dispatches n to v.
func Accept[T comparable, E any, R any](n *Node[T, E], v Visitor[T, E, R]) R {
	return v.Visit(n)
}

type VisitorFunc[T comparable, E any, R any] func(n *Node[T, E]) R

func (f VisitorFunc[T, E, R]) Visit(n *Node[T, E]) R {
	return f(n)
}
