// Package flowdoc canonicalizes route documents against a catalog.
//
// A [Tool] bundles a catalog with the route dialect of package camel. It
// builds trees over the constructs of a document, rewrites documents so
// every object lists its keys in catalog order, and checks that a rewrite
// kept the data intact:
//
//	tool := flowdoc.NewTool(registry)
//	out, err := tool.Sort(doc)
//
// The trees and the canonicalization themselves live in packages tree and
// camel; this package is what command line and editor front ends use.
package flowdoc
