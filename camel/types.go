package camel

import (
	"fmt"

	"github.com/signadot/flowdoc/catalog"
	"github.com/signadot/flowdoc/tree"
)

// NodeType classifies a node of a route document.
type NodeType int

const (
	// EntityType is a top-level construct such as a route or an error
	// handler.
	EntityType NodeType = iota
	// PatternType is a step. Unknown names are steps.
	PatternType
	// ComponentType tags endpoint components. Classification never
	// produces it; it exists so component entries can be asked for by
	// type.
	ComponentType
	LanguageType
	DataFormatType
	LoadBalancerType
)

var typeNames = map[NodeType]string{
	EntityType:       "entity",
	PatternType:      "pattern",
	ComponentType:    "component",
	LanguageType:     "language",
	DataFormatType:   "dataformat",
	LoadBalancerType: "loadbalancer",
}

var typeKinds = map[NodeType]catalog.Kind{
	EntityType:       catalog.EntityKind,
	PatternType:      catalog.PatternKind,
	ComponentType:    catalog.ComponentKind,
	LanguageType:     catalog.LanguageKind,
	DataFormatType:   catalog.DataFormatKind,
	LoadBalancerType: catalog.LoadBalancerKind,
}

func Types() []NodeType {
	return []NodeType{
		EntityType,
		PatternType,
		ComponentType,
		LanguageType,
		DataFormatType,
		LoadBalancerType,
	}
}

func (t NodeType) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("<type %d>", int(t))
}

// Kind returns the catalog holding entries of type t.
func (t NodeType) Kind() catalog.Kind {
	return typeKinds[t]
}

func (t NodeType) MarshalText() ([]byte, error) {
	s, ok := typeNames[t]
	if !ok {
		return nil, fmt.Errorf("%d is not a node type", int(t))
	}
	return []byte(s), nil
}

func (t *NodeType) UnmarshalText(d []byte) error {
	for nt, name := range typeNames {
		if name == string(d) {
			*t = nt
			return nil
		}
	}
	return fmt.Errorf("unknown node type %q", string(d))
}

// Node is a node of a route document tree.
type Node = tree.Node[NodeType, *catalog.Entry]
