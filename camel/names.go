package camel

import "slices"

// Top-level constructs of a route document. These are recognized without
// consulting the catalog.
var entityList = []string{
	"route",
	"routeConfiguration",
	"routeTemplate",
	"templatedRoute",
	"intercept",
	"interceptFrom",
	"interceptSendToEndpoint",
	"onCompletion",
	"onException",
	"errorHandler",
	"rest",
	"restConfiguration",
	"beans",
}

var entityNames = map[string]bool{}

func init() {
	for _, name := range entityList {
		entityNames[name] = true
	}
}

// properties which never hold child nodes
var primitiveProps = map[string]bool{
	"id":          true,
	"description": true,
	"disabled":    true,
	"uri":         true,
}

// properties holding lists of single-key step wrappers
var stepsProps = map[string]bool{
	"steps": true,
}

const (
	parametersProp = "parameters"
	uriProp        = "uri"
)

// EntityNames returns the names of the top-level constructs.
func EntityNames() []string {
	return slices.Clone(entityList)
}
