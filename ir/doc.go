// Package ir holds flow documents as ordered trees.
//
// A document decoded from YAML or JSON is a tree of [Node] values. Unlike
// map[string]any, an object node keeps its keys in document order, which
// is what key canonicalization rewrites.
//
// # Node Structure
//
// The Type field selects which other fields are meaningful:
//
//   - NullType: no value
//   - BoolType: Bool
//   - NumberType: Int64 if integral, else Float64, else the text in Number
//   - StringType: String
//   - ArrayType: Values, in order
//   - ObjectType: Fields and Values, where Fields[i] is the string key node
//     for Values[i]
//
// Every child records its Parent, its ParentIndex and, for object members,
// its ParentField, so [Node.Path] can name any position:
//
//	$.route.from.steps[0].to
//
// # Creating Nodes
//
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "uri", Val: ir.FromString("timer:foo")},
//	    {Key: "steps", Val: ir.FromSlice(nil)},
//	})
//
// Keys must be unique within an object. Nodes are treated as values: code
// that rewrites a document builds new nodes rather than editing a tree that
// others may hold.
package ir
