package camel

import (
	"slices"

	"github.com/signadot/flowdoc/ir"
)

// Components returns the distinct component schemes named by the uri
// properties of doc, sorted.
func Components(doc *ir.Node) []string {
	if doc == nil {
		return nil
	}
	seen := map[string]bool{}
	_ = doc.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		if y.Type == ir.StringType && y.ParentField == uriProp && y.Parent.IsObject() {
			if scheme := Scheme(y.String); scheme != "" {
				seen[scheme] = true
			}
		}
		return true, nil
	})
	res := make([]string, 0, len(seen))
	for scheme := range seen {
		res = append(res, scheme)
	}
	slices.Sort(res)
	return res
}
