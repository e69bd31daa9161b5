package camel

import (
	"github.com/signadot/flowdoc/catalog"
	"github.com/signadot/flowdoc/ir"
)

// Classifier answers what a name denotes in a route document, backed by a
// catalog.
type Classifier struct {
	cache catalog.Cache
}

// NewClassifier returns a Classifier over cache. A nil cache knows
// nothing.
func NewClassifier(cache catalog.Cache) *Classifier {
	if cache == nil {
		cache = catalog.Empty
	}
	return &Classifier{cache: cache}
}

func (c *Classifier) Cache() catalog.Cache {
	return c.cache
}

func (c *Classifier) has(kind catalog.Kind, name string) bool {
	_, ok := c.cache.GetEntity(kind, name)
	return ok
}

// IsEntity reports whether name is a top-level construct.
func (c *Classifier) IsEntity(name string) bool {
	return entityNames[name]
}

func (c *Classifier) IsPattern(name string) bool {
	return c.has(catalog.PatternKind, name)
}

func (c *Classifier) IsLanguage(name string) bool {
	return c.has(catalog.LanguageKind, name)
}

func (c *Classifier) IsDataFormat(name string) bool {
	return c.has(catalog.DataFormatKind, name)
}

func (c *Classifier) IsLoadBalancer(name string) bool {
	return c.has(catalog.LoadBalancerKind, name)
}

// IsEmbedded reports whether name is an expression language, data format
// or load balancer, the categories that appear wrapped inside steps.
func (c *Classifier) IsEmbedded(name string) bool {
	return c.IsLanguage(name) || c.IsDataFormat(name) || c.IsLoadBalancer(name)
}

// IsConstruct reports whether name is recognized in any category.
func (c *Classifier) IsConstruct(name string) bool {
	return c.IsEntity(name) || c.IsPattern(name) || c.IsEmbedded(name)
}

// EmbeddedKey returns the first key of obj naming an embedded category,
// with its value.
func (c *Classifier) EmbeddedKey(obj *ir.Node) (string, *ir.Node, bool) {
	if !obj.IsObject() {
		return "", nil, false
	}
	for i, f := range obj.Fields {
		if c.IsEmbedded(f.String) {
			return f.String, obj.Values[i], true
		}
	}
	return "", nil, false
}

// EntityOrPatternEntry looks name up in the entity catalog, then the
// pattern catalog.
func (c *Classifier) EntityOrPatternEntry(name string) (*catalog.Entry, bool) {
	if e, ok := c.cache.GetEntity(catalog.EntityKind, name); ok {
		return e, true
	}
	return c.cache.GetEntity(catalog.PatternKind, name)
}
