package camel

import (
	"github.com/signadot/flowdoc/catalog"
	"github.com/signadot/flowdoc/ir"
	"github.com/signadot/flowdoc/tree"
)

// Resolver classifies route document nodes and finds their children.
type Resolver struct {
	*Classifier
}

var _ tree.Resolver[NodeType, *catalog.Entry] = (*Resolver)(nil)

func NewResolver(cache catalog.Cache) *Resolver {
	return &Resolver{Classifier: NewClassifier(cache)}
}

// NewTree builds a tree over data rooted at name.
func (r *Resolver) NewTree(name string, data *ir.Node) *Node {
	return tree.New(name, data, r)
}

// NodeType classifies name. Top-level constructs win, then languages,
// data formats and load balancers in that order; anything else is a step.
func (r *Resolver) NodeType(name string, _ *ir.Node) NodeType {
	switch {
	case r.IsEntity(name):
		return EntityType
	case r.IsLanguage(name):
		return LanguageType
	case r.IsDataFormat(name):
		return DataFormatType
	case r.IsLoadBalancer(name):
		return LoadBalancerType
	default:
		return PatternType
	}
}

func (r *Resolver) CatalogEntry(name string, t NodeType) (*catalog.Entry, bool) {
	return r.cache.GetEntity(t.Kind(), name)
}

func (r *Resolver) PropertiesMetadata(e *catalog.Entry) map[string]int {
	return e.PropertyIndex()
}

// ChildNodes returns the child descriptors of a construct, in document
// order.
func (r *Resolver) ChildNodes(_ string, data *ir.Node, _ NodeType) []tree.ChildDescriptor {
	if !data.IsObject() {
		return nil
	}
	var res []tree.ChildDescriptor
	for i, f := range data.Fields {
		prop, val := f.String, data.Values[i]
		if primitiveProps[prop] {
			continue
		}
		switch val.Type {
		case ir.ArrayType:
			if stepsProps[prop] {
				res = r.appendSteps(res, prop, val)
				continue
			}
			for j, el := range val.Values {
				if el.IsObject() {
					res = append(res, tree.ChildDescriptor{
						Name:           prop,
						Data:           el,
						IsArrayElement: true,
						Index:          j,
					})
				}
			}
		case ir.ObjectType:
			if prop == parametersProp {
				continue
			}
			if r.IsConstruct(prop) {
				res = append(res, tree.ChildDescriptor{Name: prop, Data: val})
				continue
			}
			if key, inner, ok := r.EmbeddedKey(val); ok {
				res = append(res, tree.ChildDescriptor{
					Name:     key,
					Data:     inner,
					Property: prop,
				})
			}
		}
	}
	return res
}

// appendSteps unwraps a list of {name: config} wrappers. Only the first
// key of a wrapper is used; empty wrappers and non-objects are skipped.
func (r *Resolver) appendSteps(res []tree.ChildDescriptor, prop string, steps *ir.Node) []tree.ChildDescriptor {
	for j, el := range steps.Values {
		if !el.IsObject() || len(el.Fields) == 0 {
			continue
		}
		res = append(res, tree.ChildDescriptor{
			Name:           el.Fields[0].String,
			Data:           el.Values[0],
			IsArrayElement: true,
			Index:          j,
			Property:       prop,
		})
	}
	return res
}
