// Package encode writes [ir.Node] documents as YAML or JSON without
// disturbing the order of object keys.
package encode
