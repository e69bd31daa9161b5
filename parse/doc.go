// Package parse decodes YAML and JSON flow documents into [ir.Node] trees,
// keeping object keys in document order.
//
// JSON input is decoded by the YAML decoder; with [ParseJSON] it is first
// checked to be valid JSON so JSON errors are not reported as YAML errors.
package parse
