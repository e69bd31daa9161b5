// Package camel is the route document dialect: it classifies the names
// found in Camel style route documents, resolves their children for
// package tree, and rewrites documents into catalog order.
//
// A route document is a list of top-level constructs, each a single-key
// wrapper:
//
//	# routes.yaml
//	- route:
//	    id: r1
//	    from:
//	      uri: timer:tick
//	      parameters:
//	        period: 1000
//	      steps:
//	        - log:
//	            message: tick
//
// Steps appear in "steps" lists as {name: config} wrappers. Expression
// languages, data formats and load balancers appear embedded in steps,
// either directly under their own name or inside a wrapper property such
// as "expression". Endpoint parameters are ordered by the catalog entry of
// the component named by the uri scheme.
//
// Names unknown to the catalog are steps, and an object without catalog
// metadata has its keys sorted alphabetically. Nothing in this package
// fails on the shape of a document.
package camel
