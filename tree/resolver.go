package tree

import "github.com/signadot/flowdoc/ir"

// ChildDescriptor declares one child a Resolver wants materialized.
type ChildDescriptor struct {
	Name           string
	Data           *ir.Node
	IsArrayElement bool
	Index          int

	// Property, when set, is the container property the child was
	// unwrapped from, such as the step list a step was found in. It only
	// affects the child's path.
	Property string
}

// Resolver is the per-dialect strategy a tree consults.
//
// NodeType must be total: every (name, data) pair maps to exactly one
// type, with unknown names falling back to a default. ChildNodes must not
// modify data and returns children in document order.
type Resolver[T comparable, E any] interface {
	NodeType(name string, data *ir.Node) T
	CatalogEntry(name string, t T) (E, bool)
	ChildNodes(name string, data *ir.Node, t T) []ChildDescriptor
	// PropertiesMetadata maps property names to their ordering index, or
	// returns nil if entry carries no ordering information.
	PropertiesMetadata(entry E) map[string]int
}
