// Package tree builds lazily evaluated, classified trees over ir documents.
//
// The tree is generic over a dialect's node type set T and catalog entry
// type E. Everything dialect specific lives behind [Resolver]: what type a
// node has, which catalog entry backs it, and which of its properties are
// child nodes. A dialect adds no code here; it supplies a Resolver.
//
//	root := tree.New("route", routeData, resolver)
//	for _, step := range root.Children() {
//	    fmt.Println(step.Path(), step.Type())
//	}
//
// Paths join names with "." and mark array members with "[i]":
//
//	route.from                 plain child
//	route.when[0]              array element
//	route.from.steps[0].to     child unwrapped from the "steps" list
//
// Operations over a whole tree implement [Visitor] and are applied with
// [Accept].
package tree
